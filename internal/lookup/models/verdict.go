package models

import (
	"slices"
	"time"
)

// Status is the classified standing of an account.
type Status string

const (
	StatusUnknown    Status = "unknown"
	StatusActive     Status = "active"
	StatusBanned     Status = "banned"
	StatusTerminated Status = "terminated"
)

// Signal identifies one piece of evidence for banned status.
type Signal string

const (
	SignalKnownBanned          Signal = "known_banned"
	SignalProfileBannedFlag    Signal = "profile_banned_flag"
	SignalDescriptionText      Signal = "description_termination_text"
	SignalProfileErrorMessage  Signal = "profile_error_message"
	SignalPresenceAvatarAbsent Signal = "presence_and_avatar_absent"
	SignalAvatarUnavailable    Signal = "avatar_unavailable"
	SignalUsernameLexicon      Signal = "username_lexicon"
	SignalDenylistedID         Signal = "denylisted_id"
	SignalOwnershipUserMissing Signal = "ownership_user_missing"

	// SignalTerminatedPage marks the sentinel identity, which never reaches
	// the classifier.
	SignalTerminatedPage Signal = "terminated_page"
)

// Verdict is the classification outcome.
type Verdict struct {
	Status      Status    `json:"status"`
	Signals     []Signal  `json:"signals"`
	EvaluatedAt time.Time `json:"evaluated_at"`
}

// NewVerdict builds a verdict with a de-duplicated, sorted signal set.
func NewVerdict(status Status, signals []Signal, at time.Time) Verdict {
	set := slices.Clone(signals)
	slices.Sort(set)
	set = slices.Compact(set)
	if set == nil {
		set = []Signal{}
	}
	return Verdict{Status: status, Signals: set, EvaluatedAt: at}
}

// Has reports whether sig fired.
func (v Verdict) Has(sig Signal) bool {
	return slices.Contains(v.Signals, sig)
}

// Report is what one lookup hands to the presentation layer.
type Report struct {
	Identity Identity
	Bundle   *Bundle
	Verdict  Verdict
}
