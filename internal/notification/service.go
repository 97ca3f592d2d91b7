package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ukuku360/RK-explore-sub000/internal/db"
	"github.com/ukuku360/RK-explore-sub000/internal/feed"
)

// PostLoader is satisfied by *feed.Service.
type PostLoader interface {
	ListPosts(ctx context.Context) ([]feed.Post, error)
}

type Service struct {
	db            db.Querier
	posts         PostLoader
	retentionDays int
	now           func() time.Time
}

func NewService(db db.Querier, posts PostLoader, retentionDays int) *Service {
	return &Service{db: db, posts: posts, retentionDays: retentionDays, now: time.Now}
}

// Notifications loads everything the feed needs for userID and builds it.
func (s *Service) Notifications(ctx context.Context, userID string) ([]Item, error) {
	posts, err := s.posts.ListPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load posts for notifications: %w", err)
	}
	reports, err := s.Reports(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load notifications: %w", err)
	}
	nickname, err := s.Nickname(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load notifications: %w", err)
	}

	return Build(Input{
		Posts:         posts,
		Reports:       reports,
		UserID:        userID,
		Nickname:      nickname,
		RetentionDays: s.retentionDays,
		Now:           s.now(),
	}), nil
}

// Reports returns the reports filed by reporterID, newest first.
func (s *Service) Reports(ctx context.Context, reporterID string) ([]Report, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, target_type, post_id, community_post_id, reporter_id, COALESCE(reason, ''), status, created_at, reviewed_by, reviewed_at
		FROM reports WHERE reporter_id=$1
		ORDER BY created_at DESC
	`, reporterID)
	if err != nil {
		return nil, fmt.Errorf("load reports: %w", err)
	}
	defer rows.Close()

	var reports []Report
	for rows.Next() {
		var r Report
		var target, status string
		if err := rows.Scan(&r.ID, &target, &r.PostID, &r.CommunityPostID, &r.ReporterID, &r.Reason, &status,
			&r.CreatedAt, &r.ReviewedBy, &r.ReviewedAt); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		r.TargetType = ReportTarget(target)
		r.Status = ReportStatus(status)
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

// Nickname returns the profile nickname used for @mentions, or "" when the
// viewer has no profile row.
func (s *Service) Nickname(ctx context.Context, userID string) (string, error) {
	var nickname string
	err := s.db.QueryRow(ctx, `SELECT COALESCE(nickname, '') FROM profiles WHERE id=$1`, userID).Scan(&nickname)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load nickname: %w", err)
	}
	return nickname, nil
}
