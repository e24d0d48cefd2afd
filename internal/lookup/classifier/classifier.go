// Package classifier decides whether an account is banned by OR-fusing a
// fixed set of independent signals over the aggregated bundle.
package classifier

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"lookout/internal/lookup/models"
	"lookout/pkg/requestcontext"
)

// KnownBanned is the process-lifetime memo of banned ids.
type KnownBanned interface {
	IsBanned(ctx context.Context, userID int64) bool
	MarkBanned(ctx context.Context, userID int64)
}

// DefaultDenylist holds ids treated as banned regardless of evidence.
var DefaultDenylist = []int64{1126}

var (
	descriptionPhrases = []string{"Account Deleted", "has been terminated", "no longer available"}
	errorPhrases       = []string{"deleted", "terminated", "banned", "does not exist"}
	usernameTerms      = []string{"terminated", "banned", "deleted", "removed"}
)

const userMissingPhrase = "user does not exist"

type Classifier struct {
	registry KnownBanned
	denylist map[int64]struct{}
	logger   *slog.Logger
}

type Option func(*Classifier)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Classifier) {
		c.logger = logger
	}
}

// WithDenylist replaces the default denylist.
func WithDenylist(ids ...int64) Option {
	return func(c *Classifier) {
		c.denylist = toSet(ids)
	}
}

// New creates a Classifier. The registry is required; it is both read
// (known_banned) and written (every banned verdict).
func New(registry KnownBanned, opts ...Option) *Classifier {
	c := &Classifier{
		registry: registry,
		denylist: toSet(DefaultDenylist),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify evaluates every signal and returns the fused verdict. An id that
// is not positive cannot be classified and yields StatusUnknown.
func (c *Classifier) Classify(ctx context.Context, userID int64, username string, bundle *models.Bundle) models.Verdict {
	now := requestcontext.Now(ctx)
	if userID <= 0 {
		return models.NewVerdict(models.StatusUnknown, nil, now)
	}
	if bundle == nil {
		bundle = &models.Bundle{UserID: userID}
	}

	var fired []models.Signal
	check := func(sig models.Signal, ok bool) {
		if ok {
			fired = append(fired, sig)
		}
	}

	check(models.SignalKnownBanned, c.registry.IsBanned(ctx, userID))
	check(models.SignalProfileBannedFlag, profileBannedFlag(bundle))
	check(models.SignalDescriptionText, descriptionText(bundle))
	check(models.SignalProfileErrorMessage, profileErrorMessage(bundle))
	check(models.SignalPresenceAvatarAbsent, presenceAndAvatarAbsent(bundle))
	check(models.SignalAvatarUnavailable, bundle.Avatar.IsUnavailable())
	check(models.SignalUsernameLexicon, containsAny(strings.ToLower(username), usernameTerms))
	check(models.SignalDenylistedID, c.denylisted(userID))
	check(models.SignalOwnershipUserMissing, ownershipUserMissing(bundle))

	if len(fired) == 0 {
		return models.NewVerdict(models.StatusActive, nil, now)
	}

	c.registry.MarkBanned(ctx, userID)
	c.logger.InfoContext(ctx, "account classified as banned",
		"user_id", userID,
		"signals", fired,
	)
	return models.NewVerdict(models.StatusBanned, fired, now)
}

func (c *Classifier) denylisted(userID int64) bool {
	_, ok := c.denylist[userID]
	return ok
}

func profileBannedFlag(b *models.Bundle) bool {
	if p, ok := b.Profile.Get(); ok && p.IsBanned {
		return true
	}
	terminated, ok := b.Reconfirm.PageTerminated.Get()
	return ok && terminated
}

func descriptionText(b *models.Bundle) bool {
	p, ok := b.Profile.Get()
	return ok && containsAny(p.Description, descriptionPhrases)
}

func profileErrorMessage(b *models.Bundle) bool {
	if !b.Profile.IsUnavailable() {
		return false
	}
	return slices.ContainsFunc(b.Profile.Messages, func(msg string) bool {
		return containsAny(msg, errorPhrases)
	})
}

// presenceAndAvatarAbsent needs a definitive "nothing there" from both
// sources. A degraded fetch of either never counts as absence.
func presenceAndAvatarAbsent(b *models.Bundle) bool {
	presenceAbsent := b.Presence.IsUnavailable()
	if p, ok := b.Presence.Get(); ok && !p.Found {
		presenceAbsent = true
	}
	avatarAbsent := b.Avatar.IsUnavailable()
	if a, ok := b.Avatar.Get(); ok && a.ImageURL == "" {
		avatarAbsent = true
	}
	return presenceAbsent && avatarAbsent
}

func ownershipUserMissing(b *models.Bundle) bool {
	return userMissing(b.Ownership) || userMissing(b.Reconfirm.Ownership)
}

func userMissing(r models.Result[models.Ownership]) bool {
	if !r.IsUnavailable() {
		return false
	}
	return slices.ContainsFunc(r.Messages, func(msg string) bool {
		return strings.Contains(strings.ToLower(msg), userMissingPhrase)
	})
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

func toSet(ids []int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
