package handler

import (
	"strconv"
	"time"

	"lookout/internal/lookup/models"
)

// ReportResponse is the JSON body of a successful lookup.
type ReportResponse struct {
	User      UserResponse              `json:"user"`
	Verdict   VerdictResponse           `json:"verdict"`
	Profile   *ProfileResponse          `json:"profile,omitempty"`
	Avatar    *AvatarResponse           `json:"avatar,omitempty"`
	Valuation *ValuationResponse        `json:"valuation,omitempty"`
	Presence  *PresenceResponse         `json:"presence,omitempty"`
	Ownership *OwnershipResponse        `json:"ownership,omitempty"`
	Badges    []BadgeResponse           `json:"badges,omitempty"`
	Sources   map[string]SourceResponse `json:"sources,omitempty"`
	FetchedAt *time.Time                `json:"fetched_at,omitempty"`
}

type UserResponse struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	DisplayName      string `json:"display_name"`
	ResolutionMethod string `json:"resolution_method"`
	ProfileURL       string `json:"profile_url,omitempty"`
}

type VerdictResponse struct {
	Status      string    `json:"status"`
	Signals     []string  `json:"signals"`
	EvaluatedAt time.Time `json:"evaluated_at"`
}

type ProfileResponse struct {
	Description    string    `json:"description"`
	Created        time.Time `json:"created"`
	AccountAgeDays int       `json:"account_age_days"`
	IsBanned       bool      `json:"is_banned"`
	Verified       bool      `json:"verified"`
}

type AvatarResponse struct {
	ImageURL string `json:"image_url"`
	State    string `json:"state"`
}

type ValuationResponse struct {
	Value          int64   `json:"value"`
	RAP            int64   `json:"rap"`
	Premium        bool    `json:"premium"`
	PrivacyEnabled bool    `json:"privacy_enabled"`
	TradesDone     int     `json:"trades_done,omitempty"`
	TradeScore     float64 `json:"trade_score,omitempty"`
	TradeRatio     float64 `json:"trade_ratio,omitempty"`
}

type PresenceResponse struct {
	Status       string     `json:"status"`
	LastLocation string     `json:"last_location,omitempty"`
	LastOnline   *time.Time `json:"last_online,omitempty"`
}

type OwnershipResponse struct {
	OwnsReferenceItem bool `json:"owns_reference_item"`
	InventoryPrivate  bool `json:"inventory_private"`
}

type BadgeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SourceResponse tells the client which parts of the report are missing and why.
type SourceResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

func toReportResponse(report *models.Report) ReportResponse {
	id := report.Identity
	resp := ReportResponse{
		User: UserResponse{
			ID:               id.ID,
			Name:             id.Name,
			DisplayName:      id.DisplayName,
			ResolutionMethod: string(id.ResolutionMethod),
		},
		Verdict: toVerdictResponse(report.Verdict),
	}
	if id.ID > 0 {
		resp.User.ProfileURL = "https://www.roblox.com/users/" + strconv.FormatInt(id.ID, 10) + "/profile"
	}

	b := report.Bundle
	if b == nil {
		return resp
	}
	fetched := b.FetchedAt
	resp.FetchedAt = &fetched
	resp.Sources = map[string]SourceResponse{
		"profile":             source(b.Profile),
		"avatar":              source(b.Avatar),
		"valuation":           source(b.Valuation),
		"presence":            source(b.Presence),
		"ownership":           source(b.Ownership),
		"badges":              source(b.Badges),
		"reconfirm_ownership": source(b.Reconfirm.Ownership),
		"reconfirm_page":      source(b.Reconfirm.PageTerminated),
	}

	if p, ok := b.Profile.Get(); ok {
		resp.Profile = &ProfileResponse{
			Description:    p.Description,
			Created:        p.Created,
			AccountAgeDays: accountAgeDays(p.Created, report.Verdict.EvaluatedAt),
			IsBanned:       p.IsBanned,
			Verified:       p.HasVerifiedBadge,
		}
	}
	if a, ok := b.Avatar.Get(); ok {
		resp.Avatar = &AvatarResponse{ImageURL: a.ImageURL, State: a.State}
	}
	if v, ok := b.Valuation.Get(); ok {
		resp.Valuation = &ValuationResponse{
			Value:          v.Value,
			RAP:            v.RAP,
			Premium:        v.Premium,
			PrivacyEnabled: v.PrivacyEnabled,
		}
		if v.HasTradeData {
			resp.Valuation.TradesDone = v.TradesDone
			resp.Valuation.TradeScore = v.TradeScore
			resp.Valuation.TradeRatio = v.TradeRatio
		}
	}
	if p, ok := b.Presence.Get(); ok && p.Found {
		resp.Presence = &PresenceResponse{
			Status:       p.Type.String(),
			LastLocation: p.LastLocation,
			LastOnline:   p.LastOnline,
		}
	}
	if o, ok := b.Ownership.Get(); ok {
		resp.Ownership = &OwnershipResponse{OwnsReferenceItem: o.Owns, InventoryPrivate: o.Private}
	}
	if badges, ok := b.Badges.Get(); ok {
		for _, badge := range badges {
			resp.Badges = append(resp.Badges, BadgeResponse{ID: badge.ID, Name: badge.Name})
		}
	}
	return resp
}

func toVerdictResponse(v models.Verdict) VerdictResponse {
	signals := make([]string, 0, len(v.Signals))
	for _, s := range v.Signals {
		signals = append(signals, string(s))
	}
	return VerdictResponse{Status: string(v.Status), Signals: signals, EvaluatedAt: v.EvaluatedAt}
}

func source[T any](r models.Result[T]) SourceResponse {
	resp := SourceResponse{Status: string(r.Status)}
	if !r.IsOK() {
		resp.Reason = r.Reason
	}
	return resp
}

func accountAgeDays(created, now time.Time) int {
	if created.IsZero() || now.Before(created) {
		return 0
	}
	return int(now.Sub(created).Hours() / 24)
}
