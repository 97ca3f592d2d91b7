package postform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ukuku360/RK-explore-sub000/internal/kvstore"
)

const (
	draftFeature = "post-draft"
	draftKeyVer  = "v1"

	DraftVersion = 1
	DraftMaxAge  = 24 * time.Hour
	MinStep      = 1
	MaxStep      = 3
)

var ErrInvalidStep = errors.New("step must be between 1 and 3")

// Draft is the stored snapshot of an unfinished post form.
type Draft struct {
	Version   int           `json:"version"`
	UpdatedAt time.Time     `json:"updated_at"`
	Step      int           `json:"step"`
	Form      PostFormState `json:"form"`
}

type DraftRepository struct {
	store  kvstore.Store
	ttl    time.Duration
	logger *slog.Logger
	now    func() time.Time
}

// NewDraftRepository stores drafts with the given ttl. A ttl of zero leaves
// expiry to Load's age check alone.
func NewDraftRepository(store kvstore.Store, ttl time.Duration, logger *slog.Logger) *DraftRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &DraftRepository{store: store, ttl: ttl, logger: logger, now: time.Now}
}

func (r *DraftRepository) Now() time.Time {
	return r.now()
}

func draftKey(userID string) string {
	return kvstore.Key(kvstore.AppNamespace, draftFeature, draftKeyVer, userID)
}

// Load returns nil when there is no usable draft. Unusable entries are
// removed; a failed removal is logged and the draft still reads as absent.
func (r *DraftRepository) Load(ctx context.Context, userID string) (*Draft, error) {
	raw, ok, err := r.store.Get(ctx, draftKey(userID))
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}
	if !ok {
		return nil, nil
	}

	draft, ok := kvstore.DecodeJSON[Draft](raw)
	switch {
	case !ok:
		r.logger.Warn("discarding malformed draft", slog.String("user_id", userID))
	case draft.Version != DraftVersion, draft.Step < MinStep, draft.Step > MaxStep:
		r.logger.Warn("discarding incompatible draft", slog.String("user_id", userID),
			slog.Int("version", draft.Version), slog.Int("step", draft.Step))
	case r.now().Sub(draft.UpdatedAt) > DraftMaxAge:
		r.logger.Debug("discarding expired draft", slog.String("user_id", userID))
	default:
		return &draft, nil
	}
	if err := r.Clear(ctx, userID); err != nil {
		r.logger.Warn("could not remove unusable draft", slog.String("user_id", userID), slog.Any("error", err))
	}
	return nil, nil
}

// Save stores the form at step. A pristine form is not saved and clears any
// earlier draft instead, in which case the returned draft is nil.
func (r *DraftRepository) Save(ctx context.Context, userID string, step int, form PostFormState) (*Draft, error) {
	if step < MinStep || step > MaxStep {
		return nil, ErrInvalidStep
	}
	if !HasDraftContent(form) {
		return nil, r.Clear(ctx, userID)
	}

	draft := Draft{Version: DraftVersion, UpdatedAt: r.now(), Step: step, Form: form}
	raw, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("encode draft: %w", err)
	}
	if err := r.store.Set(ctx, draftKey(userID), string(raw), r.ttl); err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}
	return &draft, nil
}

func (r *DraftRepository) Clear(ctx context.Context, userID string) error {
	if err := r.store.Remove(ctx, draftKey(userID)); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}
