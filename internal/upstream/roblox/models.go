package roblox

import "time"

// User is the compact account shape returned by search and username lookup.
type User struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	DisplayName      string `json:"displayName"`
	HasVerifiedBadge bool   `json:"hasVerifiedBadge"`
}

// UserDetails is the canonical profile record for one account.
type UserDetails struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	DisplayName      string    `json:"displayName"`
	Description      string    `json:"description"`
	Created          time.Time `json:"created"`
	IsBanned         bool      `json:"isBanned"`
	HasVerifiedBadge bool      `json:"hasVerifiedBadge"`
}

// Thumbnail is one entry of the avatar headshot batch.
type Thumbnail struct {
	TargetID int64  `json:"targetId"`
	State    string `json:"state"`
	ImageURL string `json:"imageUrl"`
}

// Presence is one entry of the presence batch.
type Presence struct {
	UserPresenceType int        `json:"userPresenceType"`
	LastLocation     string     `json:"lastLocation"`
	PlaceID          *int64     `json:"placeId"`
	UniverseID       *int64     `json:"universeId"`
	UserID           int64      `json:"userId"`
	LastOnline       *time.Time `json:"lastOnline"`
}

// InventoryItem is one owned asset from the inventory endpoint.
type InventoryItem struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	InstanceID int64  `json:"instanceId"`
}

// Ownership is the outcome of an inventory probe for one item.
type Ownership struct {
	Owns    bool
	Private bool
}

// Badge is one platform badge awarded to an account.
type Badge struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

type listEnvelope[T any] struct {
	Data []T `json:"data"`
}

type presenceEnvelope struct {
	UserPresences []Presence `json:"userPresences"`
}

type usernamesRequest struct {
	Usernames          []string `json:"usernames"`
	ExcludeBannedUsers bool     `json:"excludeBannedUsers"`
}

type presenceRequest struct {
	UserIDs []int64 `json:"userIds"`
}
