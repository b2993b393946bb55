package main

import (
	"encoding/json"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"github.com/NamanHarbola/Rack-Management/internal/client"
	"github.com/NamanHarbola/Rack-Management/internal/models"
	"github.com/NamanHarbola/Rack-Management/internal/store"
	"github.com/NamanHarbola/Rack-Management/internal/view"
)

func TestParseRackSpec(t *testing.T) {
	testCases := []struct {
		name    string
		spec    string
		number  string
		floor   string
		items   []string
		wantErr bool
	}{
		{
			name:   "full spec",
			spec:   "R-001 @ Ground Floor = Cables, Switches",
			number: "R-001",
			floor:  "Ground Floor",
			items:  []string{"Cables", "Switches"},
		},
		{
			name:   "no items",
			spec:   "R-101 @ First Floor",
			number: "R-101",
			floor:  "First Floor",
		},
		{
			name:   "empty item list",
			spec:   "R-101 @ First Floor =",
			number: "R-101",
			floor:  "First Floor",
			items:  []string{},
		},
		{
			name:    "missing floor",
			spec:    "R-001",
			wantErr: true,
		},
		{
			name:    "blank floor",
			spec:    "R-001 @",
			wantErr: true,
		},
		{
			name:    "empty spec",
			spec:    "",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			input, err := parseRackSpec(tc.spec)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("parseRackSpec(%q) succeeded, want error", tc.spec)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseRackSpec(%q) failed: %v", tc.spec, err)
			}
			if input.RackNumber != tc.number {
				t.Errorf("RackNumber = %q, want %q", input.RackNumber, tc.number)
			}
			if input.Floor != tc.floor {
				t.Errorf("Floor = %q, want %q", input.Floor, tc.floor)
			}
			if len(input.Items) != len(tc.items) {
				t.Fatalf("Items = %v, want %v", input.Items, tc.items)
			}
			for i := range tc.items {
				if input.Items[i] != tc.items[i] {
					t.Errorf("Items[%d] = %q, want %q", i, input.Items[i], tc.items[i])
				}
			}
		})
	}
}

func TestRunCommandValidation(t *testing.T) {
	// Commands with bad or missing arguments must set a status line and never
	// produce a network command.
	testCases := []struct {
		line       string
		wantStatus string // substring
		wantCmd    bool
	}{
		{":help", helpText, false},
		{":nope", "Unknown command :nope", false},
		{":add", ":add expects", false},
		{":del", ":del expects", false},
		{":scan", ":scan expects", false},
		{":ask", ":ask expects", false},
		{":scan R-001", "Scanning R-001", true},
		{":ask where are the cables?", "Asking", true},
	}

	for _, tc := range testCases {
		updated, cmd := model{}.runCommand(tc.line)
		m := updated.(model)

		if !strings.Contains(m.status, tc.wantStatus) {
			t.Errorf("%s: status = %q, want it to contain %q", tc.line, m.status, tc.wantStatus)
		}
		if tc.wantCmd && cmd == nil {
			t.Errorf("%s: no command produced, want one", tc.line)
		}
		if !tc.wantCmd && cmd != nil {
			t.Errorf("%s: produced a command, want none", tc.line)
		}
	}
}

func TestApplyScanSuggestionRendersLikeSearch(t *testing.T) {
	suggestion := client.ScanSuggestion{
		Query: "cable",
		Racks: []models.Rack{
			{ID: "a1", RackNumber: "R-001", Floor: "Ground Floor", Items: []string{"Patch Cables", "Switches"}},
		},
		MatchedItems: map[string][]string{"a1": {"Patch Cables"}},
	}
	data, err := json.Marshal(suggestion)
	if err != nil {
		t.Fatalf("Failed to marshal suggestion: %v", err)
	}
	result := &client.ScanResult{
		Type:    "item",
		Action:  "suggested",
		Message: `"cable" matches items on 1 rack(s)`,
		Data:    data,
	}

	m := model{
		composer: view.NewComposer(language.English),
		store:    store.New(client.New("http://127.0.0.1:0")),
	}

	updated, _ := m.applyScan(result)
	got := updated.(model)

	if !got.display.Searching {
		t.Error("Searching = false, suggestion must render through the search view")
	}
	if len(got.display.Floors) != 1 || len(got.display.Floors[0].Cards) != 1 {
		t.Fatalf("Display = %+v, want one floor with one card", got.display.Floors)
	}
	card := got.display.Floors[0].Cards[0]
	if !card.Items[0].Matched || card.Items[1].Matched {
		t.Errorf("Item match flags = [%v %v], want [true false]",
			card.Items[0].Matched, card.Items[1].Matched)
	}
	if !strings.Contains(got.status, "matches items") {
		t.Errorf("status = %q, want the scan message", got.status)
	}
}
