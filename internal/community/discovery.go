package community

import (
	"sort"
	"strings"
)

// FilterPosts applies the category, tab and search filters in that order.
// The my_posts tab yields nothing without a current user.
func FilterPosts(posts []Post, opts FilterOptions) []Post {
	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		if opts.Category != "" && p.Category != opts.Category {
			continue
		}
		out = append(out, p)
	}

	switch opts.Tab {
	case TabMyPosts:
		if opts.CurrentUserID == "" {
			return []Post{}
		}
		out = keep(out, func(p Post) bool { return p.UserID == opts.CurrentUserID })
	case TabNeedsReply:
		out = keep(out, func(p Post) bool { return p.CommentsCount == 0 })
	}

	query := strings.ToLower(strings.TrimSpace(opts.SearchText))
	if query == "" {
		return out
	}
	return keep(out, func(p Post) bool {
		return strings.Contains(strings.ToLower(p.Author+" "+p.Content), query)
	})
}

func keep(posts []Post, pred func(Post) bool) []Post {
	out := posts[:0:0]
	for _, p := range posts {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

// SortPosts returns a sorted copy. Popular weighs a comment as 3 and a like
// as 2, newest first on ties.
func SortPosts(posts []Post, option SortOption) []Post {
	out := make([]Post, len(posts))
	copy(out, posts)

	sort.SliceStable(out, func(i, j int) bool {
		if option == SortPopular {
			si, sj := popularity(out[i]), popularity(out[j])
			if si != sj {
				return si > sj
			}
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func popularity(p Post) int {
	return p.LikesCount*2 + p.CommentsCount*3
}

func BuildOverview(posts []Post, currentUserID string) Overview {
	var o Overview
	for _, p := range posts {
		o.TotalPosts++
		if p.CommentsCount == 0 {
			o.NeedsReply++
		}
		if currentUserID != "" && p.UserID == currentUserID {
			o.MyPosts++
		}
		o.TotalEngagements += p.LikesCount + p.CommentsCount
	}
	return o
}

func ParseTab(s string) Tab {
	switch Tab(strings.ToLower(strings.TrimSpace(s))) {
	case TabMyPosts:
		return TabMyPosts
	case TabNeedsReply:
		return TabNeedsReply
	default:
		return TabAll
	}
}

func ParseSortOption(s string) SortOption {
	if SortOption(strings.ToLower(strings.TrimSpace(s))) == SortPopular {
		return SortPopular
	}
	return SortNewest
}
