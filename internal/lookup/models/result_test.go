package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lookout/internal/upstream"
)

func TestFromError(t *testing.T) {
	t.Run("answered errors are unavailable with messages", func(t *testing.T) {
		err := &upstream.Error{Category: upstream.ErrorRejected, Source: "inventory", Messages: []string{"The user does not exist"}}
		r := FromError[Ownership](err)
		assert.True(t, r.IsUnavailable())
		assert.True(t, r.Answered())
		assert.Equal(t, []string{"The user does not exist"}, r.Messages)
		_, ok := r.Get()
		assert.False(t, ok)
	})

	t.Run("transport errors are degraded", func(t *testing.T) {
		r := FromError[Ownership](upstream.NewError(upstream.ErrorTimeout, "inventory", "", nil))
		assert.True(t, r.IsDegraded())
		assert.False(t, r.Answered())
		assert.NotEmpty(t, r.Reason)
	})
}

func TestOK(t *testing.T) {
	r := OK(Avatar{ImageURL: "https://example/x.png"})
	v, ok := r.Get()
	assert.True(t, ok)
	assert.Equal(t, "https://example/x.png", v.ImageURL)
}

func TestNewVerdictDedupesAndSorts(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	v := NewVerdict(StatusBanned, []Signal{SignalUsernameLexicon, SignalDenylistedID, SignalUsernameLexicon}, at)
	assert.Equal(t, []Signal{SignalDenylistedID, SignalUsernameLexicon}, v.Signals)
	assert.True(t, v.Has(SignalDenylistedID))
	assert.False(t, v.Has(SignalKnownBanned))

	empty := NewVerdict(StatusActive, nil, at)
	assert.NotNil(t, empty.Signals)
	assert.Empty(t, empty.Signals)
}

func TestTerminatedIdentity(t *testing.T) {
	id := TerminatedIdentity("gone")
	assert.True(t, id.IsTerminatedSentinel())
	assert.Equal(t, int64(0), id.ID)
	assert.Equal(t, ResolvedByTerminatedPage, id.ResolutionMethod)

	assert.False(t, Identity{ID: 5, Name: "live"}.IsTerminatedSentinel())
}

func TestPresenceTypeString(t *testing.T) {
	assert.Equal(t, "in_game", PresenceInGame.String())
	assert.Equal(t, "offline", PresenceType(99).String())
}
