package models

import "time"

// Profile is the canonical profile record.
type Profile struct {
	ID               int64
	Name             string
	DisplayName      string
	Description      string
	Created          time.Time
	IsBanned         bool
	HasVerifiedBadge bool
}

// Avatar is the headshot answer. ImageURL is empty when the upstream had
// an entry but no rendered image.
type Avatar struct {
	ImageURL string
	State    string
}

// Valuation is the third-party trade statistics record.
type Valuation struct {
	Value          int64
	RAP            int64
	Premium        bool
	PrivacyEnabled bool
	TradesDone     int
	TradeScore     float64
	TradeRatio     float64
	HasTradeData   bool
}

// PresenceType mirrors the platform's presence enumeration.
type PresenceType int

const (
	PresenceOffline PresenceType = iota
	PresenceWebsite
	PresenceOnline
	PresenceInStudio
	PresenceInGame
)

// String returns a stable label for the presence type.
func (p PresenceType) String() string {
	switch p {
	case PresenceWebsite:
		return "website"
	case PresenceOnline:
		return "online"
	case PresenceInStudio:
		return "in_studio"
	case PresenceInGame:
		return "in_game"
	default:
		return "offline"
	}
}

// Presence is the presence answer. Found is false when the upstream returned
// no entry for the account.
type Presence struct {
	Found        bool
	Type         PresenceType
	LastLocation string
	LastOnline   *time.Time
}

// Ownership is the reference-item inventory probe answer.
type Ownership struct {
	Owns    bool
	Private bool
}

// Badge is one platform badge.
type Badge struct {
	ID   int64
	Name string
}

// Reconfirmation holds the sequential checks run after the fetch barrier.
type Reconfirmation struct {
	Ownership      Result[Ownership]
	PageTerminated Result[bool]
}

// Bundle is everything gathered about one account id. Each field is
// independently present or tagged missing.
type Bundle struct {
	UserID    int64
	Profile   Result[Profile]
	Avatar    Result[Avatar]
	Valuation Result[Valuation]
	Presence  Result[Presence]
	Ownership Result[Ownership]
	Badges    Result[[]Badge]
	Reconfirm Reconfirmation
	FetchedAt time.Time
}
