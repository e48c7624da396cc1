package hudu

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeBaseDomain(t *testing.T) {
	cases := map[string]string{
		"":                           "",
		" acme.huducloud.com ":       "acme.huducloud.com",
		"https://acme.huducloud.com": "acme.huducloud.com",
		"http://acme.huducloud.com/": "acme.huducloud.com",
		"acme.huducloud.com/":        "acme.huducloud.com",
	}
	for raw, want := range cases {
		if got := sanitizeBaseDomain(raw); got != want {
			t.Fatalf("sanitizeBaseDomain(%q)=%q want %q", raw, got, want)
		}
	}
}

// testClient points a Client at an httptest server.
func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient("placeholder", "test-key")
	c.baseURL = srv.URL + "/api/v1"
	return c
}

func TestFindCompaniesEncodesNameAndSendsHeaders(t *testing.T) {
	var gotQuery, gotKey, gotAccept string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/companies", r.URL.Path)
		gotQuery = r.URL.RawQuery
		gotKey = r.Header.Get("x-api-key")
		gotAccept = r.Header.Get("Accept")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"companies": []Company{{ID: 7, Name: "Acme Corp & Sons", IDNumber: "4821"}},
		})
	}))

	companies, err := c.FindCompanies(context.Background(), "Acme Corp & Sons")
	require.NoError(t, err)
	require.Len(t, companies, 1)
	require.Equal(t, "4821", companies[0].IDNumber)
	require.Equal(t, "name=Acme+Corp+%26+Sons", gotQuery)
	require.Equal(t, "test-key", gotKey)
	require.Equal(t, "application/json", gotAccept)
}

func TestErrorCarriesStatusAndBody(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid api key"}`))
	}))

	_, err := c.FindCompanies(context.Background(), "Acme Corp")
	require.Error(t, err)
	require.Contains(t, err.Error(), "401")
	require.Contains(t, err.Error(), "invalid api key")
}

func TestCreateFolderBodyShape(t *testing.T) {
	var body map[string]map[string]interface{}
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/folders", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		json.NewEncoder(w).Encode(map[string]Folder{"folder": {ID: 42, Name: "Networking"}})
	}))

	folder, err := c.CreateFolder(context.Background(), FolderParams{
		CompanyID:   7,
		Name:        "Networking",
		Description: "Network diagrams and device configs",
	})
	require.NoError(t, err)
	require.Equal(t, 42, folder.ID)

	inner := body["folder"]
	require.Equal(t, float64(7), inner["company_id"])
	require.Equal(t, "Networking", inner["name"])
	_, hasParent := inner["parent_folder_id"]
	require.False(t, hasParent, "parent_folder_id must be omitted for top-level folders")
}

func TestCreateFolderWithParent(t *testing.T) {
	var body map[string]map[string]interface{}
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		json.NewEncoder(w).Encode(map[string]Folder{"folder": {ID: 43}})
	}))

	parent := 42
	_, err := c.CreateFolder(context.Background(), FolderParams{
		CompanyID:      7,
		Name:           "PreOnboarding",
		ParentFolderID: &parent,
	})
	require.NoError(t, err)
	require.Equal(t, float64(42), body["folder"]["parent_folder_id"])
}

func TestFindFolderMatchesExactName(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "7", r.URL.Query().Get("company_id"))
		json.NewEncoder(w).Encode(map[string][]Folder{"folders": {
			{ID: 1, Name: "Networking Archive"},
			{ID: 2, Name: "Networking"},
		}})
	}))

	folder, err := c.FindFolder(context.Background(), 7, "Networking")
	require.NoError(t, err)
	require.NotNil(t, folder)
	require.Equal(t, 2, folder.ID)
}

func TestFindFolderAbsent(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string][]Folder{"folders": {}})
	}))

	folder, err := c.FindFolder(context.Background(), 7, "Networking")
	require.NoError(t, err)
	require.Nil(t, folder)
}

func TestCreateAssetPathAndBody(t *testing.T) {
	var raw string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/companies/7/assets", r.URL.Path)
		data, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		raw = string(data)
		json.NewEncoder(w).Encode(map[string]Asset{"asset": {ID: 99, Name: "WS-0042"}})
	}))

	asset, err := c.CreateAsset(context.Background(), 7, AssetParams{
		AssetLayoutID: 3,
		Name:          "WS-0042",
		Fields:        []AssetField{{AssetLayoutFieldID: 11, Value: "Dell"}},
	})
	require.NoError(t, err)
	require.Equal(t, 99, asset.ID)
	require.Contains(t, raw, `"asset_layout_field_id":11`)
	require.Contains(t, raw, `"asset_layout_id":3`)
}
