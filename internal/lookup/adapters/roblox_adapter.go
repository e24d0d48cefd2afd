package adapters

import (
	"context"

	"lookout/internal/lookup/models"
	"lookout/internal/lookup/ports"
	"lookout/internal/upstream"
	"lookout/internal/upstream/roblox"
)

// DefaultReferenceItemID is the hat whose ownership the probe checks.
const DefaultReferenceItemID int64 = 102611803

// RobloxAdapter implements ports.Directory and ports.ProfileSource on top
// of the platform client, translating wire types into lookup models.
type RobloxAdapter struct {
	client   *roblox.Client
	itemType string
	itemID   int64
}

var (
	_ ports.Directory     = (*RobloxAdapter)(nil)
	_ ports.ProfileSource = (*RobloxAdapter)(nil)
)

// NewRobloxAdapter creates the adapter. itemID selects the reference item
// for the ownership probe; zero selects DefaultReferenceItemID.
func NewRobloxAdapter(client *roblox.Client, itemID int64) *RobloxAdapter {
	if itemID == 0 {
		itemID = DefaultReferenceItemID
	}
	return &RobloxAdapter{client: client, itemType: "Hat", itemID: itemID}
}

func (a *RobloxAdapter) Search(ctx context.Context, keyword string) ([]ports.Candidate, error) {
	users, err := a.client.SearchUsers(ctx, keyword)
	if err != nil {
		return nil, err
	}
	return toCandidates(users), nil
}

func (a *RobloxAdapter) LookupUsername(ctx context.Context, username string) ([]ports.Candidate, error) {
	users, err := a.client.UsersByUsernames(ctx, []string{username}, false)
	if err != nil {
		return nil, err
	}
	return toCandidates(users), nil
}

func (a *RobloxAdapter) SessionToken(ctx context.Context) (string, error) {
	return a.client.CSRFToken(ctx)
}

func (a *RobloxAdapter) Profile(ctx context.Context, userID int64) (models.Profile, error) {
	d, err := a.client.UserByID(ctx, userID)
	if err != nil {
		return models.Profile{}, err
	}
	return models.Profile{
		ID:               d.ID,
		Name:             d.Name,
		DisplayName:      d.DisplayName,
		Description:      d.Description,
		Created:          d.Created,
		IsBanned:         d.IsBanned,
		HasVerifiedBadge: d.HasVerifiedBadge,
	}, nil
}

// Avatar returns the first headshot entry. An empty batch is an answered
// absence, not a transport problem.
func (a *RobloxAdapter) Avatar(ctx context.Context, userID int64) (models.Avatar, error) {
	thumbs, err := a.client.AvatarHeadshots(ctx, userID)
	if err != nil {
		return models.Avatar{}, err
	}
	if len(thumbs) == 0 {
		return models.Avatar{}, &upstream.Error{
			Category: upstream.ErrorNotFound,
			Source:   roblox.SourceAvatar,
			Messages: []string{"empty thumbnail set"},
		}
	}
	return models.Avatar{ImageURL: thumbs[0].ImageURL, State: thumbs[0].State}, nil
}

func (a *RobloxAdapter) Presence(ctx context.Context, sessionToken string, userID int64) (models.Presence, error) {
	presences, err := a.client.Presences(ctx, sessionToken, []int64{userID})
	if err != nil {
		return models.Presence{}, err
	}
	if len(presences) == 0 {
		return models.Presence{Found: false}, nil
	}
	p := presences[0]
	return models.Presence{
		Found:        true,
		Type:         models.PresenceType(p.UserPresenceType),
		LastLocation: p.LastLocation,
		LastOnline:   p.LastOnline,
	}, nil
}

func (a *RobloxAdapter) Ownership(ctx context.Context, userID int64) (models.Ownership, error) {
	o, err := a.client.OwnsItem(ctx, userID, a.itemType, a.itemID)
	if err != nil {
		return models.Ownership{}, err
	}
	return models.Ownership{Owns: o.Owns, Private: o.Private}, nil
}

func (a *RobloxAdapter) Badges(ctx context.Context, userID int64) ([]models.Badge, error) {
	badges, err := a.client.Badges(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]models.Badge, 0, len(badges))
	for _, b := range badges {
		out = append(out, models.Badge{ID: b.ID, Name: b.Name})
	}
	return out, nil
}

func toCandidates(users []roblox.User) []ports.Candidate {
	out := make([]ports.Candidate, 0, len(users))
	for _, u := range users {
		out = append(out, ports.Candidate{ID: u.ID, Name: u.Name, DisplayName: u.DisplayName})
	}
	return out
}
