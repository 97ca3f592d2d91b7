package kvstore

import (
	"context"
	"encoding/json"
	"strings"
	"time"
)

const AppNamespace = "roomingkos"

// Store is a scoped string key-value store. A zero ttl means the entry does
// not expire.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Remove(ctx context.Context, key string) error
}

// Key builds "<app>:<feature>:<version>:<userID>".
func Key(app, feature, version, userID string) string {
	return strings.Join([]string{app, feature, version, userID}, ":")
}

// DecodeJSON reports false for anything that is not a JSON document of the
// requested shape.
func DecodeJSON[T any](raw string) (T, bool) {
	var v T
	if strings.TrimSpace(raw) == "" {
		return v, false
	}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		var zero T
		return zero, false
	}
	return v, true
}
