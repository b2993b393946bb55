package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/NamanHarbola/Rack-Management/internal/client"
	"github.com/NamanHarbola/Rack-Management/internal/models"
)

// fakeServer is a minimal in-memory rack API for store tests.
type fakeServer struct {
	mu    sync.Mutex
	racks []models.Rack
	next  int

	failList bool // make GET /api/racks answer 500
}

func (f *fakeServer) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/racks":
			if f.failList {
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{"error": "Failed to get racks"})
				return
			}
			// Single page holding everything, then an empty page
			if r.URL.Query().Get("page") != "1" {
				json.NewEncoder(w).Encode(map[string][]models.Rack{})
				return
			}
			floors := map[string][]models.Rack{}
			for _, rack := range f.racks {
				floors[rack.Floor] = append(floors[rack.Floor], rack)
			}
			json.NewEncoder(w).Encode(floors)

		case r.Method == http.MethodPost && r.URL.Path == "/api/racks":
			var input client.RackInput
			json.NewDecoder(r.Body).Decode(&input)
			f.next++
			rack := models.Rack{
				ID:         fmt.Sprintf("id-%d", f.next),
				RackNumber: input.RackNumber,
				Floor:      input.Floor,
				Items:      input.Items,
			}
			f.racks = append(f.racks, rack)
			json.NewEncoder(w).Encode(rack)

		case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/api/racks/"):
			id := strings.TrimPrefix(r.URL.Path, "/api/racks/")
			for i, rack := range f.racks {
				if rack.ID == id {
					f.racks = append(f.racks[:i], f.racks[i+1:]...)
					json.NewEncoder(w).Encode(map[string]string{"message": "Rack deleted successfully"})
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "Rack not found"})

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func newTestStore(t *testing.T) (*Store, *fakeServer) {
	t.Helper()
	fake := &fakeServer{}
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)
	return New(client.New(srv.URL)), fake
}

func TestRefreshReplacesSnapshot(t *testing.T) {
	s, fake := newTestStore(t)
	fake.racks = []models.Rack{
		{ID: "a1", RackNumber: "R-001", Floor: "Ground Floor"},
		{ID: "a2", RackNumber: "R-002", Floor: "First Floor"},
	}

	if !s.Empty() {
		t.Error("New store should be empty before refresh")
	}

	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	snap := s.Snapshot()
	if len(snap) != 2 {
		t.Errorf("Snapshot has %d floors, want 2", len(snap))
	}
	if s.Empty() {
		t.Error("Store should not be empty after refresh")
	}
}

func TestRefreshFailureKeepsOldSnapshot(t *testing.T) {
	s, fake := newTestStore(t)
	fake.racks = []models.Rack{{ID: "a1", RackNumber: "R-001", Floor: "Ground Floor"}}

	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("Initial refresh failed: %v", err)
	}

	fake.failList = true
	if err := s.Refresh(context.Background()); err == nil {
		t.Fatal("Refresh against a failing server succeeded, want error")
	}

	snap := s.Snapshot()
	if len(snap["Ground Floor"]) != 1 {
		t.Errorf("Old snapshot was lost on failed refresh: %v", snap)
	}
}

func TestCreateRackRefetches(t *testing.T) {
	s, _ := newTestStore(t)

	rack, err := s.CreateRack(context.Background(), client.RackInput{
		RackNumber: "R-001",
		Floor:      "Ground Floor",
		Items:      []string{"Cables"},
	})
	if err != nil {
		t.Fatalf("CreateRack failed: %v", err)
	}
	if rack.ID == "" {
		t.Error("Created rack has no id")
	}

	snap := s.Snapshot()
	if len(snap["Ground Floor"]) != 1 {
		t.Errorf("Snapshot not refreshed after create: %v", snap)
	}
}

func TestDeleteRackRefetches(t *testing.T) {
	s, fake := newTestStore(t)
	fake.racks = []models.Rack{{ID: "a1", RackNumber: "R-001", Floor: "Ground Floor"}}

	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if err := s.DeleteRack(context.Background(), "a1"); err != nil {
		t.Fatalf("DeleteRack failed: %v", err)
	}

	if !s.Empty() {
		t.Errorf("Store still holds racks after deleting the only one: %v", s.Snapshot())
	}
}

func TestDeleteFailureLeavesSnapshotAlone(t *testing.T) {
	s, fake := newTestStore(t)
	fake.racks = []models.Rack{{ID: "a1", RackNumber: "R-001", Floor: "Ground Floor"}}

	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if err := s.DeleteRack(context.Background(), "no-such-id"); err == nil {
		t.Fatal("Deleting a missing rack succeeded, want error")
	}

	if s.Empty() {
		t.Error("Failed delete must not clear the snapshot")
	}
}
