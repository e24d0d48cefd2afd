package models

// ResolutionMethod records which fallback produced an identity.
type ResolutionMethod string

const (
	ResolvedBySearch         ResolutionMethod = "search"
	ResolvedByLookup         ResolutionMethod = "lookup"
	ResolvedByTerminatedPage ResolutionMethod = "terminated_page"
)

// Identity is the canonical account a username resolved to.
type Identity struct {
	ID               int64            `json:"id"`
	Name             string           `json:"name"`
	DisplayName      string           `json:"display_name"`
	ResolutionMethod ResolutionMethod `json:"resolution_method"`
	IsBanned         bool             `json:"is_banned"`
}

// TerminatedIdentity builds the sentinel for a username that never resolved
// to a live id but whose profile page reads as terminated.
func TerminatedIdentity(username string) Identity {
	return Identity{
		ID:               0,
		Name:             username,
		DisplayName:      username,
		ResolutionMethod: ResolvedByTerminatedPage,
		IsBanned:         true,
	}
}

// IsTerminatedSentinel reports whether the identity is the sentinel.
func (i Identity) IsTerminatedSentinel() bool {
	return i.ID == 0 && i.IsBanned
}
