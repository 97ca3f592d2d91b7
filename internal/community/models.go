package community

import "time"

// Post is a short community post. Likes and comments are carried as counts;
// HasLiked is relative to the viewer the row was loaded for.
type Post struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Author        string    `json:"author"`
	Content       string    `json:"content"`
	Category      string    `json:"category"`
	CreatedAt     time.Time `json:"created_at"`
	LikesCount    int       `json:"likes_count"`
	CommentsCount int       `json:"comments_count"`
	HasLiked      bool      `json:"has_liked"`
}

type Tab string

const (
	TabAll        Tab = "all"
	TabMyPosts    Tab = "my_posts"
	TabNeedsReply Tab = "needs_reply"
)

type SortOption string

const (
	SortNewest  SortOption = "newest"
	SortPopular SortOption = "popular"
)

type FilterOptions struct {
	Tab           Tab
	CurrentUserID string
	SearchText    string
	Category      string
}

type Overview struct {
	TotalPosts       int `json:"total_posts"`
	NeedsReply       int `json:"needs_reply"`
	MyPosts          int `json:"my_posts"`
	TotalEngagements int `json:"total_engagements"`
}
