package onboarding

import "time"

type UserType string

const (
	UserNew           UserType = "new"
	UserReturningIdle UserType = "returning_idle"
	UserActive        UserType = "active"
)

// State is the per-user tutorial record. It is created on first display and
// only ever removed by the caller.
type State struct {
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	SkippedAt   *time.Time `json:"skipped_at,omitempty"`
	LastShownAt *time.Time `json:"last_shown_at,omitempty"`
	ReexposedAt *time.Time `json:"reexposed_at,omitempty"`
}

func (s State) IsZero() bool {
	return s.CompletedAt == nil && s.SkippedAt == nil && s.LastShownAt == nil && s.ReexposedAt == nil
}

type Decision struct {
	ShouldShow bool `json:"should_show"`
	IsReshow   bool `json:"is_reshow"`
}

// Status is what GET /onboarding returns.
type Status struct {
	UserType      UserType `json:"user_type"`
	HasCoreAction bool     `json:"has_core_action"`
	State         State    `json:"state"`
	Decision      Decision `json:"decision"`
}
