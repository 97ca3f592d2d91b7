package feed

import (
	"sort"
	"time"
)

type Reason string

const (
	ReasonPopular       Reason = "Popular in community"
	ReasonRsvped        Reason = "Because you already RSVPed"
	ReasonVoted         Reason = "Because you voted for this"
	ReasonClosingWithin Reason = "RSVP closes within 24 hours"
	ReasonNewlyPosted   Reason = "Newly posted"
	ReasonClosesSoon    Reason = "Closes soon"
)

const (
	maxCountedVotes = 15
	voteWeight      = 2

	bonusRsvped       = 60
	bonusVoted        = 45
	bonusClosingSoon  = 25
	bonusFreshSignals = 16

	bonusFreshCold   = 32
	bonusClosingCold = 20

	freshWindow   = 72 * time.Hour
	closingWindow = 24 * time.Hour
)

type RankMeta struct {
	Score  int    `json:"score"`
	Reason Reason `json:"reason"`
}

type Ranking struct {
	Posts []Post              `json:"posts"`
	Meta  map[string]RankMeta `json:"meta"`
}

// RankRecommendedPosts scores every post for the viewer and orders them by
// score, newest first on ties. hasUserSignals says whether the viewer has
// voted or RSVPed anywhere; it switches between the personalised and the
// cold-start bonus chains.
func RankRecommendedPosts(posts []Post, userID string, hasUserSignals bool, now time.Time) Ranking {
	meta := make(map[string]RankMeta, len(posts))
	ranked := make([]Post, len(posts))
	copy(ranked, posts)

	for _, p := range ranked {
		meta[p.ID] = scorePost(p, userID, hasUserSignals, now)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := meta[ranked[i].ID], meta[ranked[j].ID]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if !ranked[i].CreatedAt.Equal(ranked[j].CreatedAt) {
			return ranked[i].CreatedAt.After(ranked[j].CreatedAt)
		}
		return ranked[i].ID < ranked[j].ID
	})

	return Ranking{Posts: ranked, Meta: meta}
}

// scorePost applies at most one bonus: the first matching branch wins.
func scorePost(p Post, userID string, hasUserSignals bool, now time.Time) RankMeta {
	votes := len(p.Votes)
	if votes > maxCountedVotes {
		votes = maxCountedVotes
	}
	m := RankMeta{Score: votes * voteWeight, Reason: ReasonPopular}

	fresh := now.Sub(p.CreatedAt) < freshWindow
	closing := closesWithin(p, now, closingWindow)

	if hasUserSignals {
		switch {
		case p.HasRsvpFrom(userID):
			m.Score += bonusRsvped
			m.Reason = ReasonRsvped
		case p.HasVoteFrom(userID):
			m.Score += bonusVoted
			m.Reason = ReasonVoted
		case closing:
			m.Score += bonusClosingSoon
			m.Reason = ReasonClosingWithin
		case fresh:
			m.Score += bonusFreshSignals
			m.Reason = ReasonNewlyPosted
		}
		return m
	}

	switch {
	case fresh:
		m.Score += bonusFreshCold
		m.Reason = ReasonNewlyPosted
	case closing:
		m.Score += bonusClosingCold
		m.Reason = ReasonClosesSoon
	}
	return m
}

func closesWithin(p Post, now time.Time, window time.Duration) bool {
	if p.RsvpDeadline == nil {
		return false
	}
	left := p.RsvpDeadline.Sub(now)
	return left > 0 && left <= window
}

// HasPersonalizationData reports whether the viewer has voted or RSVPed on
// any post.
func HasPersonalizationData(posts []Post, userID string) bool {
	if userID == "" {
		return false
	}
	for _, p := range posts {
		if p.HasVoteFrom(userID) || p.HasRsvpFrom(userID) {
			return true
		}
	}
	return false
}

// MyActivityPosts keeps posts the viewer created, voted on or RSVPed to, in
// input order.
func MyActivityPosts(posts []Post, userID string) []Post {
	out := []Post{}
	if userID == "" {
		return out
	}
	for _, p := range posts {
		if p.UserID == userID || p.HasVoteFrom(userID) || p.HasRsvpFrom(userID) {
			out = append(out, p)
		}
	}
	return out
}
