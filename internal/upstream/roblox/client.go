// Package roblox is a read-only client for the public platform APIs the
// lookup pipeline consults.
package roblox

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"lookout/internal/upstream"
)

// Source names used in errors, logs and metrics.
const (
	SourceSearch      = "search"
	SourceUsernames   = "usernames"
	SourceProfile     = "profile"
	SourceAvatar      = "avatar"
	SourcePresence    = "presence"
	SourceInventory   = "inventory"
	SourceBadges      = "badges"
	SourceCSRF        = "csrf"
	SourceProfilePage = "profile_page"
)

const searchLimit = 10

// Endpoints holds the base URL of every platform host.
type Endpoints struct {
	Users       string
	Thumbnails  string
	Presence    string
	Inventory   string
	AccountInfo string
	Auth        string
	Web         string
}

// DefaultEndpoints returns the production hosts.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		Users:       "https://users.roblox.com",
		Thumbnails:  "https://thumbnails.roblox.com",
		Presence:    "https://presence.roblox.com",
		Inventory:   "https://inventory.roblox.com",
		AccountInfo: "https://accountinformation.roblox.com",
		Auth:        "https://auth.roblox.com",
		Web:         "https://www.roblox.com",
	}
}

// Client talks to the platform APIs. It never retries.
type Client struct {
	endpoints  Endpoints
	httpClient *http.Client
	cookie     string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.httpClient = c
		}
	}
}

// WithSessionCookie sets the session cookie sent to endpoints that need it.
func WithSessionCookie(cookie string) Option {
	return func(cl *Client) {
		cl.cookie = cookie
	}
}

// New constructs a Client.
func New(endpoints Endpoints, opts ...Option) *Client {
	c := &Client{
		endpoints:  endpoints,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchUsers runs a keyword search and returns candidates in upstream order.
func (c *Client) SearchUsers(ctx context.Context, keyword string) ([]User, error) {
	q := url.Values{}
	q.Set("keyword", keyword)
	q.Set("limit", strconv.Itoa(searchLimit))
	endpoint := c.endpoints.Users + "/v1/users/search?" + q.Encode()

	resp, err := c.get(ctx, SourceSearch, endpoint, false)
	if err != nil {
		return nil, err
	}
	env, err := upstream.DecodeJSON[listEnvelope[User]](SourceSearch, endpoint, resp)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// UsersByUsernames resolves exact usernames to accounts.
func (c *Client) UsersByUsernames(ctx context.Context, usernames []string, excludeBanned bool) ([]User, error) {
	endpoint := c.endpoints.Users + "/v1/usernames/users"
	resp, err := c.post(ctx, SourceUsernames, endpoint, usernamesRequest{
		Usernames:          usernames,
		ExcludeBannedUsers: excludeBanned,
	}, nil)
	if err != nil {
		return nil, err
	}
	env, err := upstream.DecodeJSON[listEnvelope[User]](SourceUsernames, endpoint, resp)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// UserByID fetches the canonical profile record.
func (c *Client) UserByID(ctx context.Context, userID int64) (*UserDetails, error) {
	endpoint := fmt.Sprintf("%s/v1/users/%d", c.endpoints.Users, userID)
	resp, err := c.get(ctx, SourceProfile, endpoint, false)
	if err != nil {
		return nil, err
	}
	details, err := upstream.DecodeJSON[UserDetails](SourceProfile, endpoint, resp)
	if err != nil {
		return nil, err
	}
	return &details, nil
}

// AvatarHeadshots fetches the 420x420 headshot entries for one account.
func (c *Client) AvatarHeadshots(ctx context.Context, userID int64) ([]Thumbnail, error) {
	q := url.Values{}
	q.Set("userIds", strconv.FormatInt(userID, 10))
	q.Set("size", "420x420")
	q.Set("format", "Png")
	endpoint := c.endpoints.Thumbnails + "/v1/users/avatar-headshot?" + q.Encode()

	resp, err := c.get(ctx, SourceAvatar, endpoint, false)
	if err != nil {
		return nil, err
	}
	env, err := upstream.DecodeJSON[listEnvelope[Thumbnail]](SourceAvatar, endpoint, resp)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// CSRFToken obtains a cross-site request token for the configured session by
// provoking the token challenge on the logout endpoint.
func (c *Client) CSRFToken(ctx context.Context) (string, error) {
	endpoint := c.endpoints.Auth + "/v2/logout"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return "", upstream.NewError(upstream.ErrorBadData, SourceCSRF, endpoint, err)
	}
	c.authorize(req, "")

	resp, err := upstream.Do(ctx, c.httpClient, SourceCSRF, req)
	if err != nil {
		return "", err
	}
	token := resp.Header.Get("x-csrf-token")
	if token == "" {
		return "", upstream.StatusError(SourceCSRF, endpoint, resp)
	}
	return token, nil
}

// Presences fetches presence records. The token comes from CSRFToken; an
// empty token is sent as-is and the upstream decides.
func (c *Client) Presences(ctx context.Context, csrfToken string, userIDs []int64) ([]Presence, error) {
	endpoint := c.endpoints.Presence + "/v1/presence/users"
	resp, err := c.post(ctx, SourcePresence, endpoint, presenceRequest{UserIDs: userIDs}, func(r *http.Request) {
		c.authorize(r, csrfToken)
	})
	if err != nil {
		return nil, err
	}
	env, err := upstream.DecodeJSON[presenceEnvelope](SourcePresence, endpoint, resp)
	if err != nil {
		return nil, err
	}
	return env.UserPresences, nil
}

// OwnsItem probes whether the account owns one specific item. A private
// inventory is a valid answer, not an error.
func (c *Client) OwnsItem(ctx context.Context, userID int64, itemType string, itemID int64) (*Ownership, error) {
	endpoint := fmt.Sprintf("%s/v1/users/%d/items/%s/%d", c.endpoints.Inventory, userID, url.PathEscape(itemType), itemID)
	resp, err := c.get(ctx, SourceInventory, endpoint, false)
	if err != nil {
		return nil, err
	}
	if resp.Status == http.StatusForbidden {
		return &Ownership{Private: true}, nil
	}
	env, err := upstream.DecodeJSON[listEnvelope[InventoryItem]](SourceInventory, endpoint, resp)
	if err != nil {
		return nil, err
	}
	for _, item := range env.Data {
		if item.ID == itemID {
			return &Ownership{Owns: true}, nil
		}
	}
	return &Ownership{}, nil
}

// Badges fetches the platform badges of an account.
func (c *Client) Badges(ctx context.Context, userID int64) ([]Badge, error) {
	endpoint := fmt.Sprintf("%s/v1/users/%d/roblox-badges", c.endpoints.AccountInfo, userID)
	resp, err := c.get(ctx, SourceBadges, endpoint, false)
	if err != nil {
		return nil, err
	}
	return upstream.DecodeJSON[[]Badge](SourceBadges, endpoint, resp)
}

// ProfilePageByID returns the public HTML profile page text. The not-found
// page is returned as text too, since termination notices are served that way.
func (c *Client) ProfilePageByID(ctx context.Context, userID int64) (string, error) {
	return c.page(ctx, fmt.Sprintf("%s/users/%d/profile", c.endpoints.Web, userID))
}

// ProfilePageByUsername is ProfilePageByID addressed by username.
func (c *Client) ProfilePageByUsername(ctx context.Context, username string) (string, error) {
	q := url.Values{}
	q.Set("username", username)
	return c.page(ctx, c.endpoints.Web+"/users/profile?"+q.Encode())
}

func (c *Client) page(ctx context.Context, endpoint string) (string, error) {
	resp, err := c.get(ctx, SourceProfilePage, endpoint, true)
	if err != nil {
		return "", err
	}
	if !resp.OK() && resp.Status != http.StatusNotFound {
		return "", upstream.StatusError(SourceProfilePage, endpoint, resp)
	}
	return string(resp.Body), nil
}

func (c *Client) get(ctx context.Context, source, endpoint string, html bool) (*upstream.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, upstream.NewError(upstream.ErrorBadData, source, endpoint, err)
	}
	if html {
		req.Header.Set("Accept", "text/html")
	} else {
		req.Header.Set("Accept", "application/json")
	}
	return upstream.Do(ctx, c.httpClient, source, req)
}

func (c *Client) post(ctx context.Context, source, endpoint string, body any, decorate func(*http.Request)) (*upstream.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, upstream.NewError(upstream.ErrorBadData, source, endpoint, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, upstream.NewError(upstream.ErrorBadData, source, endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if decorate != nil {
		decorate(req)
	}
	return upstream.Do(ctx, c.httpClient, source, req)
}

func (c *Client) authorize(req *http.Request, csrfToken string) {
	if strings.TrimSpace(c.cookie) != "" {
		req.Header.Set("Cookie", ".ROBLOSECURITY="+c.cookie)
	}
	if csrfToken != "" {
		req.Header.Set("X-CSRF-TOKEN", csrfToken)
	}
}
