package onboarding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ukuku360/RK-explore-sub000/internal/db"
)

type Service struct {
	db     db.Querier
	states *StateRepository
	now    func() time.Time
}

func NewService(db db.Querier, states *StateRepository) *Service {
	return &Service{db: db, states: states, now: time.Now}
}

// Activity returns the profile creation time and the latest core action,
// either of which may be nil.
func (s *Service) Activity(ctx context.Context, userID string) (createdAt, latestCoreActionAt *time.Time, err error) {
	var created time.Time
	err = s.db.QueryRow(ctx, `SELECT created_at FROM profiles WHERE id=$1`, userID).Scan(&created)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
	case err != nil:
		return nil, nil, fmt.Errorf("load profile: %w", err)
	default:
		createdAt = &created
	}

	err = s.db.QueryRow(ctx, `
		SELECT MAX(at) FROM (
			SELECT created_at AS at FROM posts WHERE user_id=$1
			UNION ALL SELECT created_at FROM votes WHERE user_id=$1
			UNION ALL SELECT created_at FROM rsvps WHERE user_id=$1
		) actions
	`, userID).Scan(&latestCoreActionAt)
	if err != nil {
		return nil, nil, fmt.Errorf("load latest core action: %w", err)
	}
	return createdAt, latestCoreActionAt, nil
}

func (s *Service) Status(ctx context.Context, userID string) (Status, error) {
	createdAt, latest, err := s.Activity(ctx, userID)
	if err != nil {
		return Status{}, err
	}
	state, err := s.states.Load(ctx, userID)
	if err != nil {
		return Status{}, err
	}

	now := s.now()
	userType := ClassifyUserType(createdAt, latest, now)
	hasCoreAction := latest != nil
	out := Status{
		UserType:      userType,
		HasCoreAction: hasCoreAction,
		Decision:      ShouldShow(userType, hasCoreAction, state, now),
	}
	if state != nil {
		out.State = *state
	}
	return out, nil
}

func (s *Service) Shown(ctx context.Context, userID string, isReshow bool) (State, error) {
	return s.update(ctx, userID, func(st State, now time.Time) State { return MarkShown(st, now, isReshow) })
}

func (s *Service) Skip(ctx context.Context, userID string) (State, error) {
	return s.update(ctx, userID, MarkSkipped)
}

func (s *Service) Complete(ctx context.Context, userID string) (State, error) {
	return s.update(ctx, userID, MarkCompleted)
}

// update is read-then-write without locking; concurrent writers race and the
// last one wins.
func (s *Service) update(ctx context.Context, userID string, apply func(State, time.Time) State) (State, error) {
	current, err := s.states.Load(ctx, userID)
	if err != nil {
		return State{}, err
	}
	var base State
	if current != nil {
		base = *current
	}
	next := apply(base, s.now())
	if err := s.states.Save(ctx, userID, next); err != nil {
		return State{}, err
	}
	return next, nil
}
