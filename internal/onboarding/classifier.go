package onboarding

import "time"

const (
	activeWindow  = 14 * 24 * time.Hour
	newAccountAge = 24 * time.Hour
	reshowAfter   = 7 * 24 * time.Hour
)

// ClassifyUserType buckets a viewer by account age and the time of their
// latest post, vote or RSVP. A nil createdAt never classifies as new.
func ClassifyUserType(createdAt, latestCoreActionAt *time.Time, now time.Time) UserType {
	if latestCoreActionAt != nil && now.Sub(*latestCoreActionAt) <= activeWindow {
		return UserActive
	}
	if latestCoreActionAt == nil && createdAt != nil && now.Sub(*createdAt) < newAccountAge {
		return UserNew
	}
	return UserReturningIdle
}

// ShouldShow decides whether the tutorial is presented. A nil state is a
// first visit.
func ShouldShow(userType UserType, hasCoreAction bool, state *State, now time.Time) Decision {
	switch {
	case hasCoreAction || userType == UserActive:
		return Decision{}
	case state == nil || state.IsZero():
		return Decision{ShouldShow: true}
	case state.CompletedAt != nil:
		return Decision{}
	case state.SkippedAt != nil && state.ReexposedAt == nil && now.Sub(*state.SkippedAt) >= reshowAfter:
		return Decision{ShouldShow: true, IsReshow: true}
	default:
		return Decision{}
	}
}

func MarkShown(state State, now time.Time, isReshow bool) State {
	state.LastShownAt = &now
	if isReshow {
		state.ReexposedAt = &now
	}
	return state
}

func MarkSkipped(state State, now time.Time) State {
	state.SkippedAt = &now
	return state
}

func MarkCompleted(state State, now time.Time) State {
	state.CompletedAt = &now
	return state
}
