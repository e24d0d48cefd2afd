package service

import (
	"context"

	"lookout/internal/lookup/models"
)

// Resolver maps a username to an identity.
type Resolver interface {
	Resolve(ctx context.Context, username string) (models.Identity, error)
}

// Aggregator gathers the bundle for a resolved id. It never fails.
type Aggregator interface {
	Aggregate(ctx context.Context, userID int64) *models.Bundle
}

// Classifier turns a bundle into a verdict.
type Classifier interface {
	Classify(ctx context.Context, userID int64, username string, bundle *models.Bundle) models.Verdict
}
