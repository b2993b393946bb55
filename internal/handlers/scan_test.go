package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/NamanHarbola/Rack-Management/internal/models"
)

func TestHandleScanRejectsBadRequests(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"malformed json", `{"code": `, 400},
		{"empty code", `{"code": ""}`, 400},
		{"whitespace code", `{"code": "   "}`, 400},
		// A label whose id slot is not a uuid can never resolve; the
		// lookup stops before touching the database.
		{"label with bad id", `{"code": "MADAN$1$not-a-uuid"}`, 404},
	}

	for _, tc := range testCases {
		router := &Router{}
		req := httptest.NewRequest("POST", "/api/scan", strings.NewReader(tc.body))
		rec := httptest.NewRecorder()

		router.handleScan(rec, req)

		if rec.Code != tc.wantStatus {
			t.Errorf("%s: status = %d, want %d", tc.name, rec.Code, tc.wantStatus)
		}
		var payload map[string]string
		if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
			t.Errorf("%s: response body is not JSON: %v", tc.name, err)
			continue
		}
		if payload["error"] == "" {
			t.Errorf("%s: response carries no error message", tc.name)
		}
	}
}

func TestItemSuggestion(t *testing.T) {
	racks := []models.Rack{
		{
			ID:         "a7f3c2d1-0000-4000-8000-000000000001",
			RackNumber: "R-001",
			Floor:      "Ground Floor",
			Items:      []string{"Patch Cables", "Switches"},
		},
		{
			ID:         "a7f3c2d1-0000-4000-8000-000000000002",
			RackNumber: "R-201",
			Floor:      "Second Floor",
			Items:      []string{"Cable Ties", "Brackets"},
		},
	}

	resp := itemSuggestion("cable", racks)

	if resp.Type != "item" || resp.Action != "suggested" {
		t.Errorf("Response kind = (%s, %s), want (item, suggested)", resp.Type, resp.Action)
	}
	if !strings.Contains(resp.Message, "2 rack(s)") {
		t.Errorf("Message = %q, want rack count", resp.Message)
	}

	suggestion, ok := resp.Data.(ItemSuggestion)
	if !ok {
		t.Fatalf("Data is %T, want ItemSuggestion", resp.Data)
	}
	if suggestion.Query != "cable" {
		t.Errorf("Query = %q, want %q", suggestion.Query, "cable")
	}
	if len(suggestion.Racks) != 2 {
		t.Fatalf("Got %d racks, want 2", len(suggestion.Racks))
	}

	wantMatched := map[string][]string{
		racks[0].ID: {"Patch Cables"},
		racks[1].ID: {"Cable Ties"},
	}
	for rackID, wantItems := range wantMatched {
		gotItems := suggestion.MatchedItems[rackID]
		if len(gotItems) != len(wantItems) {
			t.Errorf("MatchedItems[%s] = %v, want %v", rackID, gotItems, wantItems)
			continue
		}
		for i, item := range wantItems {
			if gotItems[i] != item {
				t.Errorf("MatchedItems[%s] = %v, want %v", rackID, gotItems, wantItems)
				break
			}
		}
	}
}
