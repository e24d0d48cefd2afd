package classifier

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lookout/internal/lookup/models"
	"lookout/internal/lookup/registry"
	"lookout/internal/upstream"
	"lookout/pkg/requestcontext"
)

var allSignals = []models.Signal{
	models.SignalKnownBanned,
	models.SignalProfileBannedFlag,
	models.SignalDescriptionText,
	models.SignalProfileErrorMessage,
	models.SignalPresenceAvatarAbsent,
	models.SignalAvatarUnavailable,
	models.SignalUsernameLexicon,
	models.SignalDenylistedID,
	models.SignalOwnershipUserMissing,
}

func cleanBundle(id int64) *models.Bundle {
	return &models.Bundle{
		UserID:    id,
		Profile:   models.OK(models.Profile{ID: id, Name: "regular", Description: "hello there"}),
		Avatar:    models.OK(models.Avatar{ImageURL: "https://img/x.png", State: "Completed"}),
		Valuation: models.Unavailable[models.Valuation]("not tracked", nil),
		Presence:  models.OK(models.Presence{Found: true, Type: models.PresenceOnline}),
		Ownership: models.OK(models.Ownership{Owns: true}),
		Badges:    models.OK([]models.Badge{}),
		Reconfirm: models.Reconfirmation{
			Ownership:      models.OK(models.Ownership{Owns: true}),
			PageTerminated: models.OK(false),
		},
	}
}

func degradedBundle(id int64) *models.Bundle {
	return &models.Bundle{
		UserID:    id,
		Profile:   models.Degraded[models.Profile]("timeout"),
		Avatar:    models.Degraded[models.Avatar]("timeout"),
		Valuation: models.Degraded[models.Valuation]("timeout"),
		Presence:  models.Degraded[models.Presence]("timeout"),
		Ownership: models.Degraded[models.Ownership]("timeout"),
		Badges:    models.Degraded[[]models.Badge]("timeout"),
		Reconfirm: models.Reconfirmation{
			Ownership:      models.Degraded[models.Ownership]("timeout"),
			PageTerminated: models.Degraded[bool]("timeout"),
		},
	}
}

// scenario builds inputs in which exactly the signals selected by mask hold.
// A description can only be read from a profile record, so when the
// profile-error bit is set the description bit cannot hold and is dropped.
func scenario(mask int, reg *registry.Registry) (int64, string, *models.Bundle, []models.Signal) {
	has := func(i int) bool { return mask&(1<<i) != 0 }

	id := int64(42)
	if has(7) {
		id = 1126
	}
	username := "regular"
	if has(6) {
		username = "Terminated_Guy"
	}
	b := cleanBundle(id)

	if has(0) {
		reg.MarkBanned(context.Background(), id)
	}
	if has(1) {
		b.Reconfirm.PageTerminated = models.OK(true)
	}
	if has(2) {
		b.Profile = models.OK(models.Profile{ID: id, Description: "Account Deleted"})
	}
	if has(3) {
		b.Profile = models.Unavailable[models.Profile]("rejected", []string{"The account was deleted"})
	}
	switch {
	case has(4) && has(5):
		b.Avatar = models.Unavailable[models.Avatar]("empty thumbnail set", nil)
		b.Presence = models.OK(models.Presence{Found: false})
	case has(4):
		b.Avatar = models.OK(models.Avatar{ImageURL: ""})
		b.Presence = models.OK(models.Presence{Found: false})
	case has(5):
		b.Avatar = models.Unavailable[models.Avatar]("empty thumbnail set", nil)
	}
	if has(8) {
		b.Ownership = models.Unavailable[models.Ownership]("rejected", []string{"The user does not exist"})
	}

	var want []models.Signal
	for i, sig := range allSignals {
		if !has(i) || (i == 2 && has(3)) {
			continue
		}
		want = append(want, sig)
	}
	return id, username, b, want
}

func TestClassifyOrFusionOverAllSubsets(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), fixed)

	for mask := 0; mask < 1<<len(allSignals); mask++ {
		reg := registry.New()
		c := New(reg)
		id, username, bundle, want := scenario(mask, reg)

		got := c.Classify(ctx, id, username, bundle)

		expected := models.NewVerdict(models.StatusActive, nil, fixed)
		if len(want) > 0 {
			expected = models.NewVerdict(models.StatusBanned, want, fixed)
		}
		require.Equal(t, expected, got, "mask %09b", mask)
		assert.Equal(t, len(want) > 0, reg.IsBanned(ctx, id), "mask %09b", mask)
	}
}

func TestClassifyDegradedInputsFireNothing(t *testing.T) {
	c := New(registry.New())

	v := c.Classify(context.Background(), 42, "regular", degradedBundle(42))
	assert.Equal(t, models.StatusActive, v.Status)
	assert.Empty(t, v.Signals)
}

func TestClassifyRegistryMonotonic(t *testing.T) {
	ctx := context.Background()
	reg := registry.New()
	c := New(reg)

	b := cleanBundle(42)
	b.Profile = models.OK(models.Profile{ID: 42, IsBanned: true})
	first := c.Classify(ctx, 42, "regular", b)
	require.Equal(t, models.StatusBanned, first.Status)

	later := c.Classify(ctx, 42, "regular", cleanBundle(42))
	assert.Equal(t, models.StatusBanned, later.Status)
	assert.Equal(t, []models.Signal{models.SignalKnownBanned}, later.Signals)
}

func TestClassifyDenylistOverride(t *testing.T) {
	c := New(registry.New())

	v := c.Classify(context.Background(), 1126, "regular", cleanBundle(1126))
	assert.Equal(t, models.StatusBanned, v.Status)
	assert.True(t, v.Has(models.SignalDenylistedID))

	custom := New(registry.New(), WithDenylist(7))
	assert.Equal(t, models.StatusActive, custom.Classify(context.Background(), 1126, "regular", cleanBundle(1126)).Status)
	assert.Equal(t, models.StatusBanned, custom.Classify(context.Background(), 7, "regular", cleanBundle(7)).Status)
}

func TestClassifyUsernameLexiconFalsePositive(t *testing.T) {
	c := New(registry.New())

	v := c.Classify(context.Background(), 42, "bannedUser99", cleanBundle(42))
	assert.Equal(t, models.StatusBanned, v.Status)
	assert.Equal(t, []models.Signal{models.SignalUsernameLexicon}, v.Signals)
}

func TestClassifyUnknownID(t *testing.T) {
	reg := registry.New()
	c := New(reg)

	v := c.Classify(context.Background(), 0, "bannedUser99", cleanBundle(0))
	assert.Equal(t, models.StatusUnknown, v.Status)
	assert.Empty(t, v.Signals)
	assert.Zero(t, reg.Len())
}

func TestClassifyReconfirmOwnershipCounts(t *testing.T) {
	c := New(registry.New())
	b := cleanBundle(42)
	b.Reconfirm.Ownership = models.Unavailable[models.Ownership]("rejected", []string{"The user does not exist"})

	v := c.Classify(context.Background(), 42, "regular", b)
	assert.Equal(t, []models.Signal{models.SignalOwnershipUserMissing}, v.Signals)
}

func TestClassifyDegradedAvatarIsNotAbsence(t *testing.T) {
	c := New(registry.New())
	b := cleanBundle(42)
	b.Avatar = models.Degraded[models.Avatar]("circuit open")
	b.Presence = models.OK(models.Presence{Found: false})

	v := c.Classify(context.Background(), 42, "regular", b)
	assert.Equal(t, models.StatusActive, v.Status)
}

func TestClassifyUpstreamFailuresAreNotAbsence(t *testing.T) {
	c := New(registry.New())
	b := cleanBundle(42)
	b.Avatar = models.FromError[models.Avatar](&upstream.Error{
		Category: upstream.ErrorRateLimited,
		Source:   "avatar",
		Status:   429,
		Messages: []string{"Too many requests"},
	})
	b.Presence = models.FromError[models.Presence](&upstream.Error{
		Category: upstream.ErrorAuthentication,
		Source:   "presence",
		Status:   403,
		Messages: []string{"Token Validation Failed"},
	})
	require.True(t, b.Avatar.IsDegraded())
	require.True(t, b.Presence.IsDegraded())

	v := c.Classify(context.Background(), 42, "regular", b)
	assert.Equal(t, models.StatusActive, v.Status)
	assert.Empty(t, v.Signals)
}
