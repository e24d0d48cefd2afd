package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"lookout/pkg/platform/sentinel"
)

func TestCategoryForStatus(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorCategory
	}{
		{http.StatusNotFound, ErrorNotFound},
		{http.StatusBadRequest, ErrorRejected},
		{http.StatusUnauthorized, ErrorAuthentication},
		{http.StatusForbidden, ErrorAuthentication},
		{http.StatusTooManyRequests, ErrorRateLimited},
		{http.StatusBadGateway, ErrorOutage},
		{http.StatusOK, ErrorBadData},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryForStatus(tt.status))
		})
	}
}

func TestErrorSentinelMapping(t *testing.T) {
	notFound := NewError(ErrorNotFound, "users", "/v1/users/1", nil)
	assert.True(t, errors.Is(notFound, sentinel.ErrNotFound))
	assert.False(t, errors.Is(notFound, sentinel.ErrTimeout))

	wrapped := fmt.Errorf("fetch profile: %w", NewError(ErrorTimeout, "users", "", context.DeadlineExceeded))
	assert.True(t, errors.Is(wrapped, sentinel.ErrTimeout))
	assert.True(t, errors.Is(wrapped, context.DeadlineExceeded))
	assert.Equal(t, ErrorTimeout, GetCategory(wrapped))
}

func TestGetCategory(t *testing.T) {
	t.Run("bare deadline is a timeout", func(t *testing.T) {
		assert.Equal(t, ErrorTimeout, GetCategory(context.DeadlineExceeded))
	})

	t.Run("unknown errors are outages", func(t *testing.T) {
		assert.Equal(t, ErrorOutage, GetCategory(assert.AnError))
	})
}

func TestIsAnswered(t *testing.T) {
	rejected := &Error{Category: ErrorRejected, Source: "inventory", Messages: []string{"The user does not exist"}}
	assert.True(t, IsAnswered(rejected))
	assert.Equal(t, []string{"The user does not exist"}, Messages(rejected))

	assert.False(t, IsAnswered(NewError(ErrorOutage, "inventory", "", nil)))
	assert.Nil(t, Messages(assert.AnError))
}

func TestErrorString(t *testing.T) {
	err := &Error{Category: ErrorRejected, Source: "users", Status: 400, Messages: []string{"bad id"}}
	assert.Equal(t, "upstream users [rejected] status 400: bad id", err.Error())
}
