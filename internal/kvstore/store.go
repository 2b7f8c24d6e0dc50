package kvstore

import (
	"context"
	"encoding/json"

	"github.com/visitdesk/visitdesk/internal/logging"
	"github.com/visitdesk/visitdesk/internal/obs"
)

// Store is the fail-soft JSON layer over a Repository. Every operation
// converts a backend failure into a false/nil result after logging it and
// bumping the diagnostic counter; callers can rely on never seeing an error.
type Store struct {
	repo Repository
	log  logging.Logger
}

func NewStore(repo Repository, log logging.Logger) *Store {
	return &Store{repo: repo, log: log}
}

// Set serializes v to JSON and writes it under key. Returns false when
// serialization or the backend write fails.
func (s *Store) Set(ctx context.Context, key string, v any) bool {
	data, err := json.Marshal(v)
	if err != nil {
		s.degrade(ctx, "set", key, err)
		return false
	}
	if err := s.repo.Set(ctx, key, data); err != nil {
		s.degrade(ctx, "set", key, err)
		return false
	}
	return true
}

// Get reads key and deserializes it into dest. Returns false when the key is
// absent, the stored value does not parse, or the backend read fails; dest is
// left untouched in every false case except a partial json.Unmarshal.
func (s *Store) Get(ctx context.Context, key string, dest any) bool {
	data, err := s.repo.Get(ctx, key)
	if err != nil {
		s.degrade(ctx, "get", key, err)
		return false
	}
	if data == nil {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		s.degrade(ctx, "get", key, err)
		return false
	}
	return true
}

// Remove deletes key. Removing an absent key still succeeds.
func (s *Store) Remove(ctx context.Context, key string) bool {
	if err := s.repo.Delete(ctx, key); err != nil {
		s.degrade(ctx, "remove", key, err)
		return false
	}
	return true
}

// Clear drops every key.
func (s *Store) Clear(ctx context.Context) bool {
	if err := s.repo.Clear(ctx); err != nil {
		s.degrade(ctx, "clear", "", err)
		return false
	}
	return true
}

func (s *Store) degrade(ctx context.Context, op, key string, err error) {
	obs.StorageFailure(op)
	s.log.Warn(ctx, "storage operation degraded", "op", op, "key", key, "err", err)
}
