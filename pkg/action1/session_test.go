package action1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegionBaseURL(t *testing.T) {
	cases := map[Region]string{
		RegionNorthAmerica: "https://app.action1.com/api/3.0",
		RegionEurope:       "https://app.eu.action1.com/api/3.0",
	}
	for region, want := range cases {
		if got := region.BaseURL(); got != want {
			t.Fatalf("BaseURL(%s)=%q want %q", region, got, want)
		}
	}
}

func TestParseRegion(t *testing.T) {
	for _, v := range []string{"", "NorthAmerica", "na", "US"} {
		got, err := ParseRegion(v)
		require.NoError(t, err)
		require.Equal(t, RegionNorthAmerica, got, "input %q", v)
	}
	got, err := ParseRegion("eu")
	require.NoError(t, err)
	require.Equal(t, RegionEurope, got)

	_, err = ParseRegion("mars")
	require.Error(t, err)
}

func TestConnectExchangesCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/oauth2/token", r.URL.Path)
		require.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		require.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		require.Equal(t, "api-key-1", r.PostForm.Get("client_id"))
		require.Equal(t, "secret-1", r.PostForm.Get("client_secret"))
		json.NewEncoder(w).Encode(map[string]interface{}{"access_token": "tok-abc", "token_type": "Bearer"})
	}))
	defer srv.Close()

	s := NewSession(Config{ClientID: "api-key-1", ClientSecret: "secret-1", BaseURL: srv.URL})
	require.NoError(t, s.Connect(context.Background()))
}

func TestConnectFailureSurfacesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_client"}`))
	}))
	defer srv.Close()

	s := NewSession(Config{ClientID: "api-key-1", ClientSecret: "bad", BaseURL: srv.URL})
	err := s.Connect(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "400")
	require.Contains(t, err.Error(), "invalid_client")
}

func TestConnectMissingCredentials(t *testing.T) {
	s := NewSession(Config{Region: RegionNorthAmerica})
	require.Error(t, s.Connect(context.Background()))
}

func TestEndpointsSendsBearerAndDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth2/token":
			json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-abc"})
		case "/endpoints/managed/4821":
			require.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(map[string][]EndpointRecord{"items": {
				{Name: "WS-0042", Manufacturer: "Dell", Disk: "512 GB", Serial: "7FX2K93", RAM: "16 GB", OS: "Windows 11 Pro"},
				{Name: "WS-0043"},
			}})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	s := NewSession(Config{ClientID: "k", ClientSecret: "s", BaseURL: srv.URL})
	require.NoError(t, s.Connect(context.Background()))
	records, err := s.Endpoints(context.Background(), "4821")
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "Dell", records[0].Manufacturer)
}

func TestEndpointsRequiresConnect(t *testing.T) {
	s := NewSession(Config{ClientID: "k", ClientSecret: "s"})
	_, err := s.Endpoints(context.Background(), "4821")
	require.Error(t, err)
}
