package feed

import (
	"sort"
	"time"
)

// RsvpSnapshot partitions a post's RSVPs into the going list and the
// waitlist, both in signup order.
type RsvpSnapshot struct {
	Going    []string    `json:"going"`
	Waitlist []string    `json:"waitlist"`
	Summary  RsvpSummary `json:"summary"`
}

type RsvpSummary struct {
	GoingCount       int  `json:"going_count"`
	WaitlistCount    int  `json:"waitlist_count"`
	IsFull           bool `json:"is_full"`
	IsGoing          bool `json:"is_going"`
	IsWaitlisted     bool `json:"is_waitlisted"`
	HasRsvpd         bool `json:"has_rsvpd"`
	WaitlistPosition int  `json:"waitlist_position"`
}

// BuildRsvpSnapshot orders RSVPs by signup time, keeps each user's earliest
// row and fills capacity in that order. Capacity is not clamped: zero or
// negative capacity waitlists everyone.
func BuildRsvpSnapshot(post Post, viewerID string) RsvpSnapshot {
	rows := make([]Rsvp, len(post.Rsvps))
	copy(rows, post.Rsvps)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CreatedAt.Before(rows[j].CreatedAt)
	})

	seen := make(map[string]struct{}, len(rows))
	ordered := make([]string, 0, len(rows))
	for _, r := range rows {
		if _, dup := seen[r.UserID]; dup {
			continue
		}
		seen[r.UserID] = struct{}{}
		ordered = append(ordered, r.UserID)
	}

	split := post.Capacity
	if split < 0 {
		split = 0
	}
	if split > len(ordered) {
		split = len(ordered)
	}

	snap := RsvpSnapshot{
		Going:    append([]string{}, ordered[:split]...),
		Waitlist: append([]string{}, ordered[split:]...),
	}
	snap.Summary.GoingCount = len(snap.Going)
	snap.Summary.WaitlistCount = len(snap.Waitlist)
	snap.Summary.IsFull = snap.Summary.GoingCount >= post.Capacity

	if viewerID == "" {
		return snap
	}
	for _, id := range snap.Going {
		if id == viewerID {
			snap.Summary.IsGoing = true
			break
		}
	}
	for i, id := range snap.Waitlist {
		if id == viewerID {
			snap.Summary.IsWaitlisted = true
			snap.Summary.WaitlistPosition = i + 1
			break
		}
	}
	snap.Summary.HasRsvpd = snap.Summary.IsGoing || snap.Summary.IsWaitlisted
	return snap
}

// IsRsvpClosed reports whether the post's RSVP deadline has passed. Posts
// without a deadline never close.
func IsRsvpClosed(post Post, now time.Time) bool {
	return post.RsvpDeadline != nil && post.RsvpDeadline.Before(now)
}

func SeatsLeft(snap RsvpSnapshot, capacity int) int {
	left := capacity - snap.Summary.GoingCount
	if left < 0 {
		return 0
	}
	return left
}
