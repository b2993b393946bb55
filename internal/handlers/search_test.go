package handlers

import "testing"

func TestEscapeLike(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"cab", "cab"},
		{"50%", `50\%`},
		{"a_b", `a\_b`},
		{`back\slash`, `back\\slash`},
		{"R0*1", "R0*1"},         // * is not a LIKE wildcard
		{"100%_done", `100\%\_done`},
		{"", ""},
	}

	for _, tc := range testCases {
		if got := escapeLike(tc.input); got != tc.want {
			t.Errorf("escapeLike(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
