package entity

import "github.com/google/uuid"

// SuggestedAction is the linker's recommendation for a new extraction.
type SuggestedAction string

const (
	ActionAttachExisting SuggestedAction = "ATTACH_EXISTING"
	ActionCreateNew      SuggestedAction = "CREATE_NEW"
)

// MatchCandidate is one scored box in a match result.
type MatchCandidate struct {
	BoxID   uuid.UUID `json:"box_id"`
	Score   int       `json:"score"`
	Reasons []string  `json:"reasons"`
}

// MatchResult ranks open boxes for a freshly extracted document.
type MatchResult struct {
	HasMatch        bool             `json:"has_match"`
	Matches         []MatchCandidate `json:"matches"`
	SuggestedAction SuggestedAction  `json:"suggested_action"`
	Reason          string           `json:"reason"`
}
