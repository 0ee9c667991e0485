// Package pbx talks to the upstream PBX directory API
package pbx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/devNevtis/salesToolsAdminSpace/internal/config"
)

// Domain is one tenant domain as returned by the PBX directory
type Domain struct {
	DomainUUID        string  `json:"domain_uuid"`
	DomainParentUUID  *string `json:"domain_parent_uuid"`
	DomainName        string  `json:"domain_name"`
	DomainEnabled     string  `json:"domain_enabled"`
	DomainDescription *string `json:"domain_description"`
	InsertDate        *string `json:"insert_date"`
	InsertUser        *string `json:"insert_user"`
	UpdateDate        *string `json:"update_date"`
	UpdateUser        *string `json:"update_user"`
}

// Enabled interprets the directory's string flag ("true"/"false")
func (d Domain) Enabled() bool {
	return strings.EqualFold(d.DomainEnabled, "true")
}

// Client fetches tenant domains from the PBX directory API
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a new PBX directory client
func NewClient(cfg *config.PBXConfig) *Client {
	timeout := cfg.RequestTimeoutDuration()
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
	}
}

// GetDomains fetches the full domain directory
func (c *Client) GetDomains(ctx context.Context) ([]Domain, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/domains", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create domains request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call PBX directory: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("PBX directory returned status %d", resp.StatusCode)
	}

	var domains []Domain
	if err := json.NewDecoder(resp.Body).Decode(&domains); err != nil {
		return nil, fmt.Errorf("failed to decode domains response: %w", err)
	}
	return domains, nil
}
