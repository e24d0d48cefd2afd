// Package rolimons reads trade valuation statistics from the third-party
// Rolimons player API. Most accounts are not tracked there, so a not-found
// answer is routine.
package rolimons

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"lookout/internal/upstream"
)

// Source is the name used in errors, logs and metrics.
const Source = "valuation"

// DefaultBaseURL is the production API host.
const DefaultBaseURL = "https://api.rolimons.com"

// TradeData summarises an account's trading history.
type TradeData struct {
	Completed int     `json:"completed"`
	Score     float64 `json:"score"`
	Ratio     float64 `json:"ratio"`
}

// PlayerInfo is the valuation record for one account.
type PlayerInfo struct {
	Success        bool       `json:"success"`
	Name           string     `json:"name"`
	Value          int64      `json:"value"`
	RAP            int64      `json:"rap"`
	Premium        bool       `json:"premium"`
	PrivacyEnabled bool       `json:"privacy_enabled"`
	LastOnline     int64      `json:"last_online"`
	TradeData      *TradeData `json:"trade_data"`
}

// Client queries the player info endpoint.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New constructs a Client; an empty baseURL selects DefaultBaseURL.
func New(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{BaseURL: baseURL, HTTPClient: httpClient}
}

// PlayerInfo fetches the valuation record. An untracked account is reported
// as a not-found upstream error.
func (c *Client) PlayerInfo(ctx context.Context, userID int64) (*PlayerInfo, error) {
	endpoint := fmt.Sprintf("%s/players/v1/playerinfo/%d", c.BaseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, upstream.NewError(upstream.ErrorBadData, Source, endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := upstream.Do(ctx, c.HTTPClient, Source, req)
	if err != nil {
		return nil, err
	}
	info, err := upstream.DecodeJSON[PlayerInfo](Source, endpoint, resp)
	if err != nil {
		return nil, err
	}
	if !info.Success {
		return nil, &upstream.Error{
			Category: upstream.ErrorNotFound,
			Source:   Source,
			Endpoint: endpoint,
			Status:   resp.Status,
			Messages: []string{"player not tracked"},
		}
	}
	return &info, nil
}
