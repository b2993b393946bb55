package highlight

import (
	"reflect"
	"testing"
)

func TestMark(t *testing.T) {
	testCases := []struct {
		name  string
		text  string
		query string
		want  []Segment
	}{
		{
			name:  "empty query returns text unmarked",
			text:  "USB Cables",
			query: "",
			want:  []Segment{{Text: "USB Cables"}},
		},
		{
			name:  "match in the middle keeps original casing",
			text:  "USB Cables",
			query: "cab",
			want: []Segment{
				{Text: "USB "},
				{Text: "Cab", Match: true},
				{Text: "les"},
			},
		},
		{
			name:  "whole text match",
			text:  "FAN",
			query: "fan",
			want:  []Segment{{Text: "FAN", Match: true}},
		},
		{
			name:  "multiple occurrences stay separate segments",
			text:  "banana",
			query: "an",
			want: []Segment{
				{Text: "b"},
				{Text: "an", Match: true},
				{Text: "an", Match: true},
				{Text: "a"},
			},
		},
		{
			name:  "no match",
			text:  "Charger",
			query: "fan",
			want:  []Segment{{Text: "Charger"}},
		},
		{
			name:  "query longer than text",
			text:  "Fan",
			query: "fan heater",
			want:  []Segment{{Text: "Fan"}},
		},
		{
			name:  "metacharacters are literal",
			text:  "Bolt (M6)",
			query: "(m6)",
			want: []Segment{
				{Text: "Bolt "},
				{Text: "(M6)", Match: true},
			},
		},
		{
			name:  "dot does not act as a wildcard",
			text:  "abc",
			query: ".",
			want:  []Segment{{Text: "abc"}},
		},
		{
			name:  "unicode case folding",
			text:  "Überkabel",
			query: "über",
			want: []Segment{
				{Text: "Über", Match: true},
				{Text: "kabel"},
			},
		},
	}

	for _, tc := range testCases {
		got := Mark(tc.text, tc.query)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s: Mark(%q, %q) = %v, want %v", tc.name, tc.text, tc.query, got, tc.want)
		}
	}
}

func TestMarkEmptyText(t *testing.T) {
	if got := Mark("", "fan"); got != nil {
		t.Errorf("Mark on empty text = %v, want nil", got)
	}
}

func TestMarkCoversWholeText(t *testing.T) {
	// Concatenating the segments must always rebuild the input exactly.
	inputs := []struct{ text, query string }{
		{"USB Cables and more cables", "cable"},
		{"aaa", "aa"}, // non-overlapping: one match plus remainder
		{"Screw Driver", "e"},
	}

	for _, in := range inputs {
		var rebuilt string
		for _, seg := range Mark(in.text, in.query) {
			rebuilt += seg.Text
		}
		if rebuilt != in.text {
			t.Errorf("Mark(%q, %q) segments rebuild to %q", in.text, in.query, rebuilt)
		}
	}
}

func TestHasMatch(t *testing.T) {
	testCases := []struct {
		text  string
		query string
		want  bool
	}{
		{"USB Cables", "cab", true},
		{"USB Cables", "CABLES", true},
		{"USB Cables", "drill", false},
		{"", "x", false},
		{"x", "", false},
		{"R0*1", "0*1", true},
	}

	for _, tc := range testCases {
		if got := HasMatch(tc.text, tc.query); got != tc.want {
			t.Errorf("HasMatch(%q, %q) = %v, want %v", tc.text, tc.query, got, tc.want)
		}
	}
}
