// Package probe detects termination notices on the public profile page.
package probe

import (
	"context"
	"strings"

	"lookout/internal/lookup/ports"
)

// DefaultPhrases are the page fragments that mark a terminated or deleted
// account. Matching is case-sensitive.
var DefaultPhrases = []string{
	"This account has been terminated",
	"has been deleted",
	"is no longer available",
}

// PageFetcher returns the text of a public profile page.
type PageFetcher interface {
	ProfilePageByUsername(ctx context.Context, username string) (string, error)
	ProfilePageByID(ctx context.Context, userID int64) (string, error)
}

// PageProbe implements ports.TerminationProbe by scraping the profile page.
type PageProbe struct {
	pages   PageFetcher
	phrases []string
}

var _ ports.TerminationProbe = (*PageProbe)(nil)

// Option configures a PageProbe.
type Option func(*PageProbe)

// WithPhrases replaces the phrase set.
func WithPhrases(phrases ...string) Option {
	return func(p *PageProbe) {
		if len(phrases) > 0 {
			p.phrases = phrases
		}
	}
}

// New creates a PageProbe.
func New(pages PageFetcher, opts ...Option) *PageProbe {
	p := &PageProbe{pages: pages, phrases: DefaultPhrases}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *PageProbe) ProbeUsername(ctx context.Context, username string) (bool, error) {
	text, err := p.pages.ProfilePageByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	return p.matches(text), nil
}

func (p *PageProbe) ProbeUserID(ctx context.Context, userID int64) (bool, error) {
	text, err := p.pages.ProfilePageByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return p.matches(text), nil
}

func (p *PageProbe) matches(text string) bool {
	for _, phrase := range p.phrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}
