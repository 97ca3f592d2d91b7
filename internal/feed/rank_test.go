package feed

import (
	"fmt"
	"slices"
	"testing"
	"time"
)

var rankNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func votesFrom(postID string, users ...string) []Vote {
	out := make([]Vote, len(users))
	for i, u := range users {
		out[i] = Vote{ID: fmt.Sprintf("v-%s-%s", postID, u), PostID: postID, UserID: u, CreatedAt: rankNow.Add(-time.Hour)}
	}
	return out
}

func nVotes(postID string, n int) []Vote {
	users := make([]string, n)
	for i := range users {
		users[i] = fmt.Sprintf("voter-%d", i)
	}
	return votesFrom(postID, users...)
}

func ago(d time.Duration) time.Time { return rankNow.Add(-d) }

func ptrTime(t time.Time) *time.Time { return &t }

func ids(posts []Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}
	return out
}

func expectMeta(t *testing.T, r Ranking, want map[string]RankMeta) {
	t.Helper()
	for id, meta := range want {
		if got := r.Meta[id]; got != meta {
			t.Fatalf("post %s: expected %+v, got %+v", id, meta, got)
		}
	}
}

func expectOrder(t *testing.T, r Ranking, want ...string) {
	t.Helper()
	if got := ids(r.Posts); !slices.Equal(got, want) {
		t.Fatalf("expected order %v, got %v", want, got)
	}
}

func TestScorePostBaseCapsVotes(t *testing.T) {
	old := ago(30 * 24 * time.Hour)
	r := RankRecommendedPosts([]Post{
		{ID: "a", CreatedAt: old, Votes: nVotes("a", 3)},
		{ID: "b", CreatedAt: old, Votes: nVotes("b", 40)},
	}, "", false, rankNow)

	expectMeta(t, r, map[string]RankMeta{
		"a": {Score: 6, Reason: ReasonPopular},
		"b": {Score: 30, Reason: ReasonPopular},
	})
	expectOrder(t, r, "b", "a")
}

func TestScorePostWithSignalsFirstMatchWins(t *testing.T) {
	old := ago(10 * 24 * time.Hour)
	closing := ptrTime(rankNow.Add(3 * time.Hour))

	posts := []Post{
		{ID: "rsvped", CreatedAt: ago(time.Hour), RsvpDeadline: closing,
			Votes: votesFrom("rsvped", "me"), Rsvps: []Rsvp{{UserID: "me", CreatedAt: ago(time.Hour)}}},
		{ID: "voted", CreatedAt: ago(time.Hour), RsvpDeadline: closing, Votes: votesFrom("voted", "me")},
		{ID: "closing", CreatedAt: ago(time.Hour), RsvpDeadline: closing},
		{ID: "fresh", CreatedAt: ago(71 * time.Hour)},
		{ID: "stale", CreatedAt: old},
	}

	r := RankRecommendedPosts(posts, "me", true, rankNow)

	expectMeta(t, r, map[string]RankMeta{
		"rsvped":  {Score: 2 + 60, Reason: ReasonRsvped},
		"voted":   {Score: 2 + 45, Reason: ReasonVoted},
		"closing": {Score: 25, Reason: ReasonClosingWithin},
		"fresh":   {Score: 16, Reason: ReasonNewlyPosted},
		"stale":   {Score: 0, Reason: ReasonPopular},
	})
	expectOrder(t, r, "rsvped", "voted", "closing", "fresh", "stale")
}

func TestScorePostWithoutSignals(t *testing.T) {
	posts := []Post{
		{ID: "fresh-and-closing", CreatedAt: ago(time.Hour), RsvpDeadline: ptrTime(rankNow.Add(time.Hour))},
		{ID: "closing", CreatedAt: ago(5 * 24 * time.Hour), RsvpDeadline: ptrTime(rankNow.Add(24 * time.Hour))},
		{ID: "closed", CreatedAt: ago(5 * 24 * time.Hour), RsvpDeadline: ptrTime(rankNow.Add(-time.Minute))},
		{ID: "far", CreatedAt: ago(5 * 24 * time.Hour), RsvpDeadline: ptrTime(rankNow.Add(25 * time.Hour))},
		{ID: "edge", CreatedAt: ago(72 * time.Hour)},
	}

	r := RankRecommendedPosts(posts, "me", false, rankNow)

	expectMeta(t, r, map[string]RankMeta{
		"fresh-and-closing": {Score: 32, Reason: ReasonNewlyPosted},
		"closing":           {Score: 20, Reason: ReasonClosesSoon},
		"closed":            {Score: 0, Reason: ReasonPopular},
		"far":               {Score: 0, Reason: ReasonPopular},
		"edge":              {Score: 0, Reason: ReasonPopular},
	})
}

func TestRankIgnoresViewerActivityWithoutSignals(t *testing.T) {
	post := Post{ID: "p", CreatedAt: ago(10 * 24 * time.Hour), Votes: votesFrom("p", "me")}

	r := RankRecommendedPosts([]Post{post}, "me", false, rankNow)

	expectMeta(t, r, map[string]RankMeta{"p": {Score: 2, Reason: ReasonPopular}})
}

func TestRankTieBreaksNewestFirst(t *testing.T) {
	old := ago(20 * 24 * time.Hour)
	posts := []Post{
		{ID: "older", CreatedAt: old, Votes: nVotes("older", 2)},
		{ID: "newer", CreatedAt: old.Add(time.Minute), Votes: nVotes("newer", 2)},
		{ID: "b-same", CreatedAt: old.Add(-time.Hour), Votes: nVotes("b-same", 2)},
		{ID: "a-same", CreatedAt: old.Add(-time.Hour), Votes: nVotes("a-same", 2)},
	}

	expectOrder(t, RankRecommendedPosts(posts, "", false, rankNow), "newer", "older", "a-same", "b-same")
}

func TestRankRsvpOutranksVoteOutranksNeutral(t *testing.T) {
	old := ago(20 * 24 * time.Hour)
	posts := []Post{
		{ID: "neutral", CreatedAt: old.Add(time.Hour), Votes: nVotes("neutral", 15)},
		{ID: "voted", CreatedAt: old, Votes: votesFrom("voted", "me")},
		{ID: "rsvped", CreatedAt: old.Add(-time.Hour), Rsvps: []Rsvp{{UserID: "me"}}},
	}

	expectOrder(t, RankRecommendedPosts(posts, "me", true, rankNow), "rsvped", "voted", "neutral")
}

func TestRankDoesNotMutateInput(t *testing.T) {
	posts := []Post{
		{ID: "low", CreatedAt: ago(30 * 24 * time.Hour)},
		{ID: "high", CreatedAt: ago(time.Hour)},
	}
	r := RankRecommendedPosts(posts, "", false, rankNow)

	if posts[0].ID != "low" {
		t.Fatalf("input was reordered")
	}
	expectOrder(t, r, "high", "low")
	if len(r.Meta) != 2 {
		t.Fatalf("expected meta for every post, got %d", len(r.Meta))
	}
}

func TestHasPersonalizationData(t *testing.T) {
	posts := []Post{
		{ID: "a", Votes: votesFrom("a", "someone")},
		{ID: "b", Rsvps: []Rsvp{{UserID: "me"}}},
	}

	tests := []struct {
		posts []Post
		user  string
		want  bool
	}{
		{posts, "me", true},
		{posts, "someone", true},
		{posts, "nobody", false},
		{posts, "", false},
		{nil, "me", false},
	}
	for _, tt := range tests {
		if got := HasPersonalizationData(tt.posts, tt.user); got != tt.want {
			t.Fatalf("user %q: expected %v, got %v", tt.user, tt.want, got)
		}
	}
}

func TestMyActivityPosts(t *testing.T) {
	posts := []Post{
		{ID: "other"},
		{ID: "rsvped", Rsvps: []Rsvp{{UserID: "me"}}},
		{ID: "authored-and-voted", UserID: "me", Votes: votesFrom("authored-and-voted", "me")},
		{ID: "voted", Votes: votesFrom("voted", "me")},
	}

	if got := ids(MyActivityPosts(posts, "me")); !slices.Equal(got, []string{"rsvped", "authored-and-voted", "voted"}) {
		t.Fatalf("unexpected activity posts: %v", got)
	}
	if got := MyActivityPosts(posts, ""); len(got) != 0 {
		t.Fatalf("anonymous viewer has no activity, got %v", ids(got))
	}
	if MyActivityPosts(nil, "me") == nil {
		t.Fatalf("expected non-nil empty slice")
	}
}
