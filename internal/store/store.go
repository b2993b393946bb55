// Package store keeps a client-side cache of the rack inventory. All reads
// serve from the cached snapshot; every write goes to the server first and
// then refetches, so the cache never drifts from what the server accepted.
package store

import (
	"context"
	"sync"

	"github.com/NamanHarbola/Rack-Management/internal/client"
	"github.com/NamanHarbola/Rack-Management/internal/models"
)

// Store is a concurrency-safe snapshot of racks grouped by floor.
type Store struct {
	client *client.Client

	mu     sync.RWMutex
	floors map[string][]models.Rack
}

// New creates an empty store backed by the given API client.
func New(c *client.Client) *Store {
	return &Store{
		client: c,
		floors: map[string][]models.Rack{},
	}
}

// Refresh fetches all racks and replaces the snapshot in one step. On
// failure the previous snapshot stays in place so the UI keeps showing the
// last known inventory.
func (s *Store) Refresh(ctx context.Context) error {
	floors, err := s.client.FetchAllRacks(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.floors = floors
	s.mu.Unlock()
	return nil
}

// Snapshot returns the current floor map. Callers must treat it as
// read-only; it is replaced wholesale on every refresh, never mutated.
func (s *Store) Snapshot() map[string][]models.Rack {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.floors
}

// Empty reports whether the snapshot holds no racks at all.
func (s *Store) Empty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, racks := range s.floors {
		if len(racks) > 0 {
			return false
		}
	}
	return true
}

// CreateRack adds a rack on the server and refreshes the snapshot.
func (s *Store) CreateRack(ctx context.Context, input client.RackInput) (*models.Rack, error) {
	rack, err := s.client.CreateRack(ctx, input)
	if err != nil {
		return nil, err
	}
	if err := s.Refresh(ctx); err != nil {
		// The write succeeded; the stale snapshot is still the best we have
		return rack, err
	}
	return rack, nil
}

// UpdateRack replaces a rack on the server and refreshes the snapshot.
func (s *Store) UpdateRack(ctx context.Context, id string, input client.RackInput) (*models.Rack, error) {
	rack, err := s.client.UpdateRack(ctx, id, input)
	if err != nil {
		return nil, err
	}
	if err := s.Refresh(ctx); err != nil {
		return rack, err
	}
	return rack, nil
}

// DeleteRack removes a rack on the server and refreshes the snapshot.
func (s *Store) DeleteRack(ctx context.Context, id string) error {
	if err := s.client.DeleteRack(ctx, id); err != nil {
		return err
	}
	return s.Refresh(ctx)
}
