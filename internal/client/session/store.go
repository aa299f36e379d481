package session

import (
	"context"
	"time"

	"github.com/dmitrijs2005/fittrack/internal/client/storage"
	"github.com/dmitrijs2005/fittrack/internal/common"
)

// Store is the single durable slot holding the bearer token.
type Store struct {
	storage storage.Storage
	now     func() time.Time
}

func NewStore(s storage.Storage) *Store {
	return &Store{storage: s, now: time.Now}
}

// Save persists token together with the time it was written.
func (s *Store) Save(ctx context.Context, token string) error {
	if token == "" {
		return &StorageError{Op: "save", Err: ErrEmptyToken}
	}

	err := s.storage.SetItems(ctx, map[string]string{
		common.AuthTokenKey:        token,
		common.AuthTokenSavedAtKey: s.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	return nil
}

// Load returns the stored token, or "" when there is none.
func (s *Store) Load(ctx context.Context) (string, error) {
	token, _, err := s.storage.GetItem(ctx, common.AuthTokenKey)
	if err != nil {
		return "", &StorageError{Op: "load", Err: err}
	}
	return token, nil
}

// Clear removes the token. Clearing an empty store is not an error.
func (s *Store) Clear(ctx context.Context) error {
	for _, key := range []string{common.AuthTokenKey, common.AuthTokenSavedAtKey} {
		if err := s.storage.RemoveItem(ctx, key); err != nil {
			return &StorageError{Op: "clear", Err: err}
		}
	}
	return nil
}

// SavedAt reports when the current token was stored.
func (s *Store) SavedAt(ctx context.Context) (time.Time, bool, error) {
	v, ok, err := s.storage.GetItem(ctx, common.AuthTokenSavedAtKey)
	if err != nil {
		return time.Time{}, false, &StorageError{Op: "load", Err: err}
	}
	if !ok {
		return time.Time{}, false, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, false, nil
	}
	return t, true, nil
}
