// Package action1 interacts with the Action1 endpoint-management REST API.
// A Session carries region, credentials, and the bearer token; it is an
// explicit value handed to callers, never package-level state.
package action1

import (
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

// Region selects the Action1 data center hosting the organization.
type Region string

const (
	RegionNorthAmerica Region = "NorthAmerica"
	RegionEurope       Region = "Europe"
)

// BaseURL returns the API base URL for the region.
func (r Region) BaseURL() string {
	switch r {
	case RegionEurope:
		return "https://app.eu.action1.com/api/3.0"
	default:
		return "https://app.action1.com/api/3.0"
	}
}

// ParseRegion converts operator input to a Region.
func ParseRegion(v string) (Region, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "northamerica", "na", "us":
		return RegionNorthAmerica, nil
	case "europe", "eu":
		return RegionEurope, nil
	}
	return "", errors.Errorf("unknown Action1 region %q (NorthAmerica or Europe)", v)
}

// Config holds the credential pair and region for one session.
type Config struct {
	ClientID     string
	ClientSecret string
	Region       Region
	BaseURL      string // overrides Region when set; used for tests
}

// Session is a configured Action1 API context.
type Session struct {
	cfg        Config
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewSession builds an unconnected session.
func NewSession(cfg Config) *Session {
	base := cfg.BaseURL
	if base == "" {
		base = cfg.Region.BaseURL()
	}
	return &Session{cfg: cfg, baseURL: strings.TrimRight(base, "/"), httpClient: &http.Client{Timeout: requestTimeout}}
}

// Connect performs the OAuth2 client-credentials exchange and stores the
// bearer token on the session. Any failure leaves the session unusable; the
// caller treats that as fatal.
func (s *Session) Connect(ctx context.Context) error {
	if s.cfg.ClientID == "" || s.cfg.ClientSecret == "" {
		return errors.New("action1 credential pair missing")
	}
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", s.cfg.ClientID)
	form.Set("client_secret", s.cfg.ClientSecret)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "action1 token request")
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return errors.Errorf("action1 token request failed: %s: %s", resp.Status, strings.TrimSpace(string(raw)))
	}
	var payload struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return errors.Wrap(err, "decode action1 token")
	}
	if payload.AccessToken == "" {
		return errors.New("action1 access token empty")
	}
	if payload.TokenType != "" && !strings.EqualFold(payload.TokenType, "bearer") {
		return errors.Errorf("action1 unexpected token type %q", payload.TokenType)
	}
	s.token = payload.AccessToken
	return nil
}

// EndpointRecord is one managed device as returned by the inventory query.
type EndpointRecord struct {
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
	Disk         string `json:"disk"`
	Serial       string `json:"serial"`
	RAM          string `json:"RAM"`
	OS           string `json:"OS"`
}

// Endpoints fetches the managed-endpoint inventory for the org.
func (s *Session) Endpoints(ctx context.Context, orgID string) ([]EndpointRecord, error) {
	if s.token == "" {
		return nil, errors.New("action1 session not connected")
	}
	endpoint := fmt.Sprintf("%s/endpoints/managed/%s?limit=1000", s.baseURL, url.PathEscape(orgID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Accept", "application/json")
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "action1 endpoints query")
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return nil, errors.Errorf("action1 endpoints query failed: %s: %s", resp.Status, strings.TrimSpace(string(raw)))
	}
	var payload struct {
		Items []EndpointRecord `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "decode action1 endpoints")
	}
	return payload.Items, nil
}
