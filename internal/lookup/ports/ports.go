// Package ports declares what the lookup pipeline needs from the outside
// world, so resolver and aggregator never depend on HTTP clients directly.
package ports

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"lookout/internal/lookup/models"
)

// Candidate is one account returned by a directory query.
type Candidate struct {
	ID          int64
	Name        string
	DisplayName string
}

// Directory maps usernames to account candidates.
type Directory interface {
	// Search runs a keyword search; results are in upstream order.
	Search(ctx context.Context, keyword string) ([]Candidate, error)
	// LookupUsername resolves an exact username, banned accounts included.
	LookupUsername(ctx context.Context, username string) ([]Candidate, error)
}

// TerminationProbe checks the public profile page for termination text.
// It returns (false, nil) when the page was read and nothing matched.
type TerminationProbe interface {
	ProbeUsername(ctx context.Context, username string) (bool, error)
	ProbeUserID(ctx context.Context, userID int64) (bool, error)
}

// ProfileSource reads the per-account platform records.
type ProfileSource interface {
	SessionToken(ctx context.Context) (string, error)
	Profile(ctx context.Context, userID int64) (models.Profile, error)
	Avatar(ctx context.Context, userID int64) (models.Avatar, error)
	Presence(ctx context.Context, sessionToken string, userID int64) (models.Presence, error)
	Ownership(ctx context.Context, userID int64) (models.Ownership, error)
	Badges(ctx context.Context, userID int64) ([]models.Badge, error)
}

// ValuationSource reads third-party trade statistics.
type ValuationSource interface {
	Valuation(ctx context.Context, userID int64) (models.Valuation, error)
}
