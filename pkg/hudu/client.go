// Package hudu interacts with the Hudu REST API.
package hudu

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const requestTimeout = 30 * time.Second

// Client issues requests against one Hudu tenant.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds a Hudu client for the tenant base domain, e.g.
// "acme.huducloud.com". A scheme prefix or trailing slash in the domain is
// tolerated.
func NewClient(baseDomain, apiKey string) *Client {
	return &Client{
		baseURL:    fmt.Sprintf("https://%s/api/v1", sanitizeBaseDomain(baseDomain)),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// FindCompanies looks up companies by exact name, server-side matched.
func (c *Client) FindCompanies(ctx context.Context, name string) ([]Company, error) {
	query := url.Values{}
	query.Set("name", name)
	var payload struct {
		Companies []Company `json:"companies"`
	}
	if err := c.do(ctx, http.MethodGet, "/companies", query, nil, &payload); err != nil {
		return nil, err
	}
	return payload.Companies, nil
}

// FindFolder returns the company's folder with the given name, or nil when
// absent. Used as the lookup-before-create guard so repeated provisioning
// runs reuse folders instead of duplicating them.
func (c *Client) FindFolder(ctx context.Context, companyID int, name string) (*Folder, error) {
	query := url.Values{}
	query.Set("company_id", fmt.Sprint(companyID))
	query.Set("name", name)
	var payload struct {
		Folders []Folder `json:"folders"`
	}
	if err := c.do(ctx, http.MethodGet, "/folders", query, nil, &payload); err != nil {
		return nil, err
	}
	for i := range payload.Folders {
		if payload.Folders[i].Name == name {
			return &payload.Folders[i], nil
		}
	}
	return nil, nil
}

// CreateFolder creates a folder and returns it with the server-assigned id.
func (c *Client) CreateFolder(ctx context.Context, params FolderParams) (*Folder, error) {
	body := map[string]FolderParams{"folder": params}
	var payload struct {
		Folder Folder `json:"folder"`
	}
	if err := c.do(ctx, http.MethodPost, "/folders", nil, body, &payload); err != nil {
		return nil, err
	}
	return &payload.Folder, nil
}

// ListAssetLayouts returns every asset layout in the tenant.
func (c *Client) ListAssetLayouts(ctx context.Context) ([]AssetLayout, error) {
	var payload struct {
		AssetLayouts []AssetLayout `json:"asset_layouts"`
	}
	if err := c.do(ctx, http.MethodGet, "/asset_layouts", nil, nil, &payload); err != nil {
		return nil, err
	}
	return payload.AssetLayouts, nil
}

// GetAssetLayout fetches one layout with its full field list.
func (c *Client) GetAssetLayout(ctx context.Context, id int) (*AssetLayout, error) {
	var payload struct {
		AssetLayout AssetLayout `json:"asset_layout"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/asset_layouts/%d", id), nil, nil, &payload); err != nil {
		return nil, err
	}
	return &payload.AssetLayout, nil
}

// CreateAssetLayout creates a layout and returns it with assigned field ids.
func (c *Client) CreateAssetLayout(ctx context.Context, params LayoutParams) (*AssetLayout, error) {
	body := map[string]LayoutParams{"asset_layout": params}
	var payload struct {
		AssetLayout AssetLayout `json:"asset_layout"`
	}
	if err := c.do(ctx, http.MethodPost, "/asset_layouts", nil, body, &payload); err != nil {
		return nil, err
	}
	return &payload.AssetLayout, nil
}

// CreateAsset creates one asset under the company.
func (c *Client) CreateAsset(ctx context.Context, companyID int, params AssetParams) (*Asset, error) {
	body := map[string]AssetParams{"asset": params}
	var payload struct {
		Asset Asset `json:"asset"`
	}
	path := fmt.Sprintf("/companies/%d/assets", companyID)
	if err := c.do(ctx, http.MethodPost, path, nil, body, &payload); err != nil {
		return nil, err
	}
	return &payload.Asset, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "encode %s %s", method, path)
		}
		reader = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return errors.Wrapf(err, "build %s %s", method, path)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "hudu %s %s", method, path)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return errors.Errorf("hudu %s %s failed: %s: %s", method, path, resp.Status, strings.TrimSpace(string(raw)))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decode %s %s", method, path)
	}
	return nil
}

func sanitizeBaseDomain(raw string) string {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(trimmed, "https://")
	trimmed = strings.TrimPrefix(trimmed, "http://")
	return strings.TrimRight(trimmed, "/")
}
