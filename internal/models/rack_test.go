package models

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestParseItems(t *testing.T) {
	testCases := []struct {
		input string
		want  []string
	}{
		{"A, B ,, C", []string{"A", "B", "C"}},
		{"Cables", []string{"Cables"}},
		{"  Fan , Charger  ", []string{"Fan", "Charger"}},
		{"", []string{}},     // empty input -> no items
		{" ,  , ", []string{}}, // separators only -> no items
		{"Screw Driver, Screw Driver", []string{"Screw Driver", "Screw Driver"}}, // duplicates kept
	}

	for _, tc := range testCases {
		got := ParseItems(tc.input)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("ParseItems(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestNormalizeItemsNeverNil(t *testing.T) {
	got := NormalizeItems(nil)
	if got == nil {
		t.Fatal("NormalizeItems(nil) returned nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("NormalizeItems(nil) = %v, want empty", got)
	}
}

func TestMatchItems(t *testing.T) {
	items := []string{"Cables", "USB Cable", "Fan", "fancy lamp"}

	testCases := []struct {
		query string
		want  []string
	}{
		{"cab", []string{"Cables", "USB Cable"}}, // substring, case-insensitive
		{"FAN", []string{"Fan", "fancy lamp"}},
		{"usb cable", []string{"USB Cable"}},
		{"lamp", []string{"fancy lamp"}},
		{"drill", nil}, // no match
		{"", nil},      // empty query matches nothing
	}

	for _, tc := range testCases {
		got := MatchItems(items, tc.query)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("MatchItems(%q) = %v, want %v", tc.query, got, tc.want)
		}
	}
}

func TestMatchItemsLiteralMetachars(t *testing.T) {
	// Queries with regex metacharacters must match literally, not as patterns.
	items := []string{"Bolt (M6)", "Washer", "C++ Manual"}

	if got := MatchItems(items, "(m6)"); !reflect.DeepEqual(got, []string{"Bolt (M6)"}) {
		t.Errorf("MatchItems((m6)) = %v, want [Bolt (M6)]", got)
	}
	if got := MatchItems(items, "c++"); !reflect.DeepEqual(got, []string{"C++ Manual"}) {
		t.Errorf("MatchItems(c++) = %v, want [C++ Manual]", got)
	}
	if got := MatchItems(items, "."); got != nil {
		t.Errorf("MatchItems(.) = %v, want no matches", got)
	}
}

func TestRackItemsSerializeAsArray(t *testing.T) {
	// An empty rack must serialize items as [], never null, so clients can
	// iterate without nil checks.
	rack := Rack{
		ID:         "0d4f6f10-8a43-4f0e-b9ac-2f1f4ff9f001",
		RackNumber: "R-001",
		Floor:      "Ground Floor",
		Items:      NormalizeItems(nil),
	}

	data, err := json.Marshal(rack)
	if err != nil {
		t.Fatalf("Failed to marshal rack: %v", err)
	}

	if !strings.Contains(string(data), `"items":[]`) {
		t.Errorf("Empty rack serialized as %s, want \"items\":[]", data)
	}
	if !strings.Contains(string(data), `"rackNumber":"R-001"`) {
		t.Errorf("Rack serialized as %s, want camelCase rackNumber key", data)
	}
}
