package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoBodyLimit(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{name: "body at the limit is read whole", size: maxBodyBytes},
		{name: "body over the limit is bad data", size: maxBodyBytes + 1, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(strings.Repeat("a", tt.size)))
			}))
			t.Cleanup(srv.Close)

			req, err := http.NewRequest(http.MethodGet, srv.URL+"/page", nil)
			require.NoError(t, err)

			resp, err := Do(context.Background(), srv.Client(), "profile_page", req)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, resp)
				assert.Equal(t, ErrorBadData, GetCategory(err))
				return
			}
			require.NoError(t, err)
			assert.Len(t, resp.Body, tt.size)
		})
	}
}
