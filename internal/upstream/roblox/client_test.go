package roblox

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lookout/internal/upstream"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Endpoints{
		Users:       srv.URL,
		Thumbnails:  srv.URL,
		Presence:    srv.URL,
		Inventory:   srv.URL,
		AccountInfo: srv.URL,
		Auth:        srv.URL,
		Web:         srv.URL,
	}, WithSessionCookie("cookie-value"))
}

func TestSearchUsers(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/users/search", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Builderman", r.URL.Query().Get("keyword"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"data":[{"id":156,"name":"builderman","displayName":"Builderman"},{"id":2,"name":"builderman2","displayName":"b2"}]}`))
	})
	c := newTestClient(t, mux)

	users, err := c.SearchUsers(context.Background(), "Builderman")
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, int64(156), users[0].ID)
	assert.Equal(t, "builderman", users[0].Name)
}

func TestUsersByUsernamesIncludesBanned(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/usernames/users", func(w http.ResponseWriter, r *http.Request) {
		var body usernamesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"someone"}, body.Usernames)
		assert.False(t, body.ExcludeBannedUsers)
		_, _ = w.Write([]byte(`{"data":[{"id":42,"name":"someone","displayName":"Someone"}]}`))
	})
	c := newTestClient(t, mux)

	users, err := c.UsersByUsernames(context.Background(), []string{"someone"}, false)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, int64(42), users[0].ID)
}

func TestUserByID(t *testing.T) {
	t.Run("decodes the profile record", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET /v1/users/42", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id":42,"name":"someone","displayName":"Someone","description":"hi","created":"2015-01-02T03:04:05Z","isBanned":true}`))
		})
		c := newTestClient(t, mux)

		details, err := c.UserByID(context.Background(), 42)
		require.NoError(t, err)
		assert.True(t, details.IsBanned)
		assert.Equal(t, "hi", details.Description)
		assert.Equal(t, 2015, details.Created.Year())
	})

	t.Run("error envelope keeps upstream messages", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET /v1/users/9", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"errors":[{"code":3,"message":"The user id is invalid."}]}`))
		})
		c := newTestClient(t, mux)

		_, err := c.UserByID(context.Background(), 9)
		require.Error(t, err)
		assert.Equal(t, upstream.ErrorNotFound, upstream.GetCategory(err))
		assert.Equal(t, []string{"The user id is invalid."}, upstream.Messages(err))
	})

	t.Run("malformed body is bad data", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET /v1/users/7", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{not json`))
		})
		c := newTestClient(t, mux)

		_, err := c.UserByID(context.Background(), 7)
		assert.Equal(t, upstream.ErrorBadData, upstream.GetCategory(err))
	})
}

func TestCSRFTokenAndPresence(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v2/logout", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, ".ROBLOSECURITY=cookie-value", r.Header.Get("Cookie"))
		w.Header().Set("x-csrf-token", "tok-123")
		w.WriteHeader(http.StatusForbidden)
	})
	mux.HandleFunc("POST /v1/presence/users", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tok-123", r.Header.Get("X-CSRF-TOKEN"))
		_, _ = w.Write([]byte(`{"userPresences":[{"userPresenceType":2,"lastLocation":"Website","userId":42}]}`))
	})
	c := newTestClient(t, mux)

	token, err := c.CSRFToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)

	presences, err := c.Presences(context.Background(), token, []int64{42})
	require.NoError(t, err)
	require.Len(t, presences, 1)
	assert.Equal(t, 2, presences[0].UserPresenceType)
}

func TestCSRFTokenMissingHeader(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v2/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	c := newTestClient(t, mux)

	token, err := c.CSRFToken(context.Background())
	assert.Error(t, err)
	assert.Empty(t, token)
}

func TestOwnsItem(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		want     *Ownership
		category upstream.ErrorCategory
		messages []string
	}{
		{name: "owns the item", status: 200, body: `{"data":[{"id":102611803,"name":"Verified hat"}]}`, want: &Ownership{Owns: true}},
		{name: "does not own the item", status: 200, body: `{"data":[]}`, want: &Ownership{}},
		{name: "private inventory", status: 403, body: `{"errors":[{"code":0,"message":"Forbidden"}]}`, want: &Ownership{Private: true}},
		{
			name:     "user does not exist",
			status:   400,
			body:     `{"errors":[{"code":1,"message":"The user does not exist"}]}`,
			category: upstream.ErrorRejected,
			messages: []string{"The user does not exist"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("GET /v1/users/42/items/Hat/102611803", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			c := newTestClient(t, mux)

			got, err := c.OwnsItem(context.Background(), 42, "Hat", 102611803)
			if tt.want != nil {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.category, upstream.GetCategory(err))
			assert.Equal(t, tt.messages, upstream.Messages(err))
		})
	}
}

func TestBadgesAndAvatar(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/users/42/roblox-badges", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1,"name":"Veteran Badge"},{"id":2,"name":"Friendship"}]`))
	})
	mux.HandleFunc("GET /v1/users/avatar-headshot", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "42", r.URL.Query().Get("userIds"))
		assert.Equal(t, "420x420", r.URL.Query().Get("size"))
		_, _ = w.Write([]byte(`{"data":[{"targetId":42,"state":"Completed","imageUrl":"https://tr.rbxcdn.com/x.png"}]}`))
	})
	c := newTestClient(t, mux)

	badges, err := c.Badges(context.Background(), 42)
	require.NoError(t, err)
	assert.Len(t, badges, 2)

	thumbs, err := c.AvatarHeadshots(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, thumbs, 1)
	assert.Equal(t, "https://tr.rbxcdn.com/x.png", thumbs[0].ImageURL)
}

func TestProfilePages(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/profile", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "gone_user", r.URL.Query().Get("username"))
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`<html>This account has been terminated</html>`))
	})
	mux.HandleFunc("GET /users/5/profile", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	c := newTestClient(t, mux)

	text, err := c.ProfilePageByUsername(context.Background(), "gone_user")
	require.NoError(t, err)
	assert.Contains(t, text, "has been terminated")

	_, err = c.ProfilePageByID(context.Background(), 5)
	assert.Equal(t, upstream.ErrorOutage, upstream.GetCategory(err))
}

func TestProfilePageErrorStatuses(t *testing.T) {
	tests := []struct {
		status   int
		category upstream.ErrorCategory
	}{
		{http.StatusTooManyRequests, upstream.ErrorRateLimited},
		{http.StatusForbidden, upstream.ErrorAuthentication},
		{http.StatusUnauthorized, upstream.ErrorAuthentication},
		{http.StatusBadRequest, upstream.ErrorRejected},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("GET /users/profile", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`<html>Too many requests</html>`))
			})
			mux.HandleFunc("GET /users/5/profile", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			c := newTestClient(t, mux)

			text, err := c.ProfilePageByUsername(context.Background(), "someone")
			require.Error(t, err)
			assert.Empty(t, text)
			assert.Equal(t, tt.category, upstream.GetCategory(err))

			_, err = c.ProfilePageByID(context.Background(), 5)
			assert.Equal(t, tt.category, upstream.GetCategory(err))
		})
	}
}

func TestDeadlineIsTimeout(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/users/42", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	})
	c := newTestClient(t, mux)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := c.UserByID(ctx, 42)
	require.Error(t, err)
	assert.Equal(t, upstream.ErrorTimeout, upstream.GetCategory(err))
}
