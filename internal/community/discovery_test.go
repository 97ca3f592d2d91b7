package community

import (
	"slices"
	"testing"
	"time"
)

var t0 = time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)

func samplePosts() []Post {
	return []Post{
		{ID: "a", UserID: "u1", Author: "Rina", Content: "Anyone up for Sate Padang?", Category: "food", CreatedAt: t0, LikesCount: 3, CommentsCount: 0},
		{ID: "b", UserID: "u2", Author: "Budi", Content: "Lost umbrella near lobby", Category: "other", CreatedAt: t0.Add(time.Hour), LikesCount: 0, CommentsCount: 2},
		{ID: "c", UserID: "u1", Author: "Rina", Content: "Futsal on Friday", Category: "sports", CreatedAt: t0.Add(2 * time.Hour), LikesCount: 1, CommentsCount: 1},
		{ID: "d", UserID: "u3", Author: "Sari", Content: "Best padang place?", Category: "food", CreatedAt: t0.Add(3 * time.Hour), LikesCount: 0, CommentsCount: 0},
	}
}

func postIDs(posts []Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}
	return out
}

func expectIDs(t *testing.T, got []Post, want ...string) {
	t.Helper()
	if ids := postIDs(got); !slices.Equal(ids, want) {
		t.Fatalf("expected %v, got %v", want, ids)
	}
}

func TestFilterPostsTabs(t *testing.T) {
	posts := samplePosts()

	expectIDs(t, FilterPosts(posts, FilterOptions{Tab: TabAll}), "a", "b", "c", "d")
	expectIDs(t, FilterPosts(posts, FilterOptions{Tab: TabMyPosts, CurrentUserID: "u1"}), "a", "c")
	expectIDs(t, FilterPosts(posts, FilterOptions{Tab: TabNeedsReply}), "a", "d")
}

func TestFilterPostsMyPostsWithoutUser(t *testing.T) {
	posts := samplePosts()
	posts = append(posts, Post{ID: "e", UserID: ""})

	got := FilterPosts(posts, FilterOptions{Tab: TabMyPosts})

	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %v", postIDs(got))
	}
}

func TestFilterPostsSearch(t *testing.T) {
	posts := samplePosts()

	expectIDs(t, FilterPosts(posts, FilterOptions{Tab: TabAll, SearchText: "  PADANG "}), "a", "d")
	expectIDs(t, FilterPosts(posts, FilterOptions{Tab: TabAll, SearchText: "rina"}), "a", "c")
	expectIDs(t, FilterPosts(posts, FilterOptions{Tab: TabAll, SearchText: "rina futsal"}), "c")
	expectIDs(t, FilterPosts(posts, FilterOptions{Tab: TabAll, SearchText: "karaoke"}))
}

func TestFilterPostsBlankSearchIsNoop(t *testing.T) {
	posts := samplePosts()

	for _, q := range []string{"", "   ", "\t"} {
		if got := FilterPosts(posts, FilterOptions{Tab: TabAll, SearchText: q}); len(got) != len(posts) {
			t.Fatalf("search %q: expected %d posts, got %d", q, len(posts), len(got))
		}
	}
}

func TestFilterPostsAppliesCategoryThenTabThenSearch(t *testing.T) {
	got := FilterPosts(samplePosts(), FilterOptions{
		Tab:           TabNeedsReply,
		CurrentUserID: "u1",
		SearchText:    "padang",
		Category:      "food",
	})
	expectIDs(t, got, "a", "d")

	got = FilterPosts(samplePosts(), FilterOptions{Tab: TabMyPosts, CurrentUserID: "u1", Category: "food"})
	expectIDs(t, got, "a")
}

func TestSortPostsNewest(t *testing.T) {
	posts := samplePosts()

	expectIDs(t, SortPosts(posts, SortNewest), "d", "c", "b", "a")
	if posts[0].ID != "a" {
		t.Fatalf("input must not be reordered")
	}
}

func TestSortPostsPopular(t *testing.T) {
	// a=6, b=6, c=5, d=0; a and b tie so the newer b comes first.
	expectIDs(t, SortPosts(samplePosts(), SortPopular), "b", "a", "c", "d")
}

func TestSortPostsUnknownOptionIsNewest(t *testing.T) {
	expectIDs(t, SortPosts(samplePosts(), SortOption("random")), "d", "c", "b", "a")
}

func TestBuildOverview(t *testing.T) {
	posts := samplePosts()

	tests := []struct {
		posts  []Post
		viewer string
		want   Overview
	}{
		{posts, "u1", Overview{TotalPosts: 4, NeedsReply: 2, MyPosts: 2, TotalEngagements: 7}},
		{posts, "", Overview{TotalPosts: 4, NeedsReply: 2, MyPosts: 0, TotalEngagements: 7}},
		{nil, "u1", Overview{}},
	}
	for _, tt := range tests {
		if got := BuildOverview(tt.posts, tt.viewer); got != tt.want {
			t.Fatalf("viewer %q: expected %+v, got %+v", tt.viewer, tt.want, got)
		}
	}
}

func TestParseQueryValues(t *testing.T) {
	tabs := map[string]Tab{"MY_POSTS": TabMyPosts, " needs_reply ": TabNeedsReply, "": TabAll, "bogus": TabAll}
	for raw, want := range tabs {
		if got := ParseTab(raw); got != want {
			t.Fatalf("ParseTab(%q): expected %q, got %q", raw, want, got)
		}
	}

	sorts := map[string]SortOption{"popular": SortPopular, "": SortNewest, "oldest": SortNewest}
	for raw, want := range sorts {
		if got := ParseSortOption(raw); got != want {
			t.Fatalf("ParseSortOption(%q): expected %q, got %q", raw, want, got)
		}
	}
}
