package feed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ukuku360/RK-explore-sub000/internal/db"
)

var ErrPostNotFound = errors.New("post not found")

const postColumns = `
	id, location, COALESCE(author, ''), user_id, proposed_date, category, status, capacity,
	COALESCE(meetup_place, ''), COALESCE(meetup_time, ''), estimated_cost, COALESCE(prep_notes, ''), rsvp_deadline,
	is_hidden, COALESCE(hidden_reason, ''), COALESCE(hidden_by::text, ''), hidden_at, created_at`

// Service loads posts with their votes, rsvps and comments from the hosted
// tables. It never writes.
type Service struct {
	db  db.Querier
	now func() time.Time
}

func NewService(db db.Querier) *Service {
	return &Service{db: db, now: time.Now}
}

func (s *Service) Now() time.Time {
	return s.now()
}

// ListPosts returns every visible post, newest first.
func (s *Service) ListPosts(ctx context.Context) ([]Post, error) {
	rows, err := s.db.Query(ctx, `
		SELECT`+postColumns+`
		FROM posts
		WHERE is_hidden = false
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	if err := s.attachChildren(ctx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPost loads a single post, hidden or not.
func (s *Service) GetPost(ctx context.Context, id string) (Post, error) {
	row := s.db.QueryRow(ctx, `
		SELECT`+postColumns+`
		FROM posts WHERE id=$1
	`, id)
	p, err := scanPost(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Post{}, ErrPostNotFound
	}
	if err != nil {
		return Post{}, fmt.Errorf("get post %s: %w", id, err)
	}

	posts := []Post{p}
	if err := s.attachChildren(ctx, posts); err != nil {
		return Post{}, err
	}
	return posts[0], nil
}

func scanPost(row pgx.Row) (Post, error) {
	var p Post
	var category, status string
	err := row.Scan(
		&p.ID, &p.Location, &p.Author, &p.UserID, &p.ProposedDate, &category, &status, &p.Capacity,
		&p.MeetupPlace, &p.MeetupTime, &p.EstimatedCost, &p.PrepNotes, &p.RsvpDeadline,
		&p.IsHidden, &p.HiddenReason, &p.HiddenBy, &p.HiddenAt, &p.CreatedAt,
	)
	if err != nil {
		return Post{}, err
	}
	p.Category = Category(category)
	p.Status = Status(status)
	return p, nil
}

func (s *Service) attachChildren(ctx context.Context, posts []Post) error {
	if len(posts) == 0 {
		return nil
	}
	ids := make([]string, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}

	votes, err := s.loadVotes(ctx, ids)
	if err != nil {
		return err
	}
	rsvps, err := s.loadRsvps(ctx, ids)
	if err != nil {
		return err
	}
	comments, err := s.loadComments(ctx, ids)
	if err != nil {
		return err
	}

	for i := range posts {
		id := posts[i].ID
		posts[i].Votes = nonNil(votes[id])
		posts[i].Rsvps = nonNil(rsvps[id])
		posts[i].Comments = nonNil(comments[id])
	}
	return nil
}

func (s *Service) loadVotes(ctx context.Context, postIDs []string) (map[string][]Vote, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, post_id, user_id, created_at
		FROM votes WHERE post_id = ANY($1)
		ORDER BY created_at
	`, postIDs)
	if err != nil {
		return nil, fmt.Errorf("load votes: %w", err)
	}
	defer rows.Close()

	votes := map[string][]Vote{}
	for rows.Next() {
		var v Vote
		if err := rows.Scan(&v.ID, &v.PostID, &v.UserID, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan vote: %w", err)
		}
		votes[v.PostID] = append(votes[v.PostID], v)
	}
	return votes, rows.Err()
}

func (s *Service) loadRsvps(ctx context.Context, postIDs []string) (map[string][]Rsvp, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, post_id, user_id, created_at
		FROM rsvps WHERE post_id = ANY($1)
		ORDER BY created_at
	`, postIDs)
	if err != nil {
		return nil, fmt.Errorf("load rsvps: %w", err)
	}
	defer rows.Close()

	rsvps := map[string][]Rsvp{}
	for rows.Next() {
		var r Rsvp
		if err := rows.Scan(&r.ID, &r.PostID, &r.UserID, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan rsvp: %w", err)
		}
		rsvps[r.PostID] = append(rsvps[r.PostID], r)
	}
	return rsvps, rows.Err()
}

func (s *Service) loadComments(ctx context.Context, postIDs []string) (map[string][]Comment, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, post_id, parent_comment_id, user_id, COALESCE(author, ''), text, created_at
		FROM comments WHERE post_id = ANY($1)
		ORDER BY created_at
	`, postIDs)
	if err != nil {
		return nil, fmt.Errorf("load comments: %w", err)
	}
	defer rows.Close()

	comments := map[string][]Comment{}
	for rows.Next() {
		var c Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.ParentCommentID, &c.UserID, &c.Author, &c.Text, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments[c.PostID] = append(comments[c.PostID], c)
	}
	return comments, rows.Err()
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
