package onboarding

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ukuku360/RK-explore-sub000/internal/kvstore"
)

const (
	stateFeature = "onboarding"
	stateVersion = "v1"
)

// StateRepository persists State as JSON in the scoped store. Entries never
// expire.
type StateRepository struct {
	store  kvstore.Store
	logger *slog.Logger
}

func NewStateRepository(store kvstore.Store, logger *slog.Logger) *StateRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &StateRepository{store: store, logger: logger}
}

func stateKey(userID string) string {
	return kvstore.Key(kvstore.AppNamespace, stateFeature, stateVersion, userID)
}

// Load returns nil when nothing usable is stored.
func (r *StateRepository) Load(ctx context.Context, userID string) (*State, error) {
	raw, ok, err := r.store.Get(ctx, stateKey(userID))
	if err != nil {
		return nil, fmt.Errorf("load onboarding state: %w", err)
	}
	if !ok {
		return nil, nil
	}
	state, ok := kvstore.DecodeJSON[State](raw)
	if !ok {
		r.logger.Warn("discarding malformed onboarding state", slog.String("user_id", userID))
		return nil, nil
	}
	return &state, nil
}

func (r *StateRepository) Save(ctx context.Context, userID string, state State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode onboarding state: %w", err)
	}
	if err := r.store.Set(ctx, stateKey(userID), string(raw), 0); err != nil {
		return fmt.Errorf("save onboarding state: %w", err)
	}
	return nil
}
