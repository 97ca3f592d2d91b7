package community

import (
	"context"
	"fmt"

	"github.com/ukuku360/RK-explore-sub000/internal/db"
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

// ListPosts loads visible community posts with like and comment counts.
// has_liked is computed for viewerID; an empty viewer never has liked.
func (s *Service) ListPosts(ctx context.Context, viewerID string) ([]Post, error) {
	rows, err := s.db.Query(ctx, `
		SELECT p.id, p.user_id, COALESCE(p.author, ''), p.content, COALESCE(p.category, ''), p.created_at,
		       (SELECT COUNT(*) FROM community_likes l WHERE l.community_post_id = p.id),
		       (SELECT COUNT(*) FROM community_comments c WHERE c.community_post_id = p.id),
		       EXISTS (SELECT 1 FROM community_likes l WHERE l.community_post_id = p.id AND l.user_id::text = $1)
		FROM community_posts p
		WHERE p.is_hidden = false
		ORDER BY p.created_at DESC
	`, viewerID)
	if err != nil {
		return nil, fmt.Errorf("list community posts: %w", err)
	}
	defer rows.Close()

	posts := []Post{}
	for rows.Next() {
		var p Post
		if err := rows.Scan(&p.ID, &p.UserID, &p.Author, &p.Content, &p.Category, &p.CreatedAt,
			&p.LikesCount, &p.CommentsCount, &p.HasLiked); err != nil {
			return nil, fmt.Errorf("scan community post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list community posts: %w", err)
	}
	return posts, nil
}
