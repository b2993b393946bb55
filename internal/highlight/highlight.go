// Package highlight marks query matches inside item and rack names so the
// UI can emphasize them. Matching is a case-insensitive literal substring
// scan; the query is never interpreted as a pattern, so names like "R0*1"
// and searches like "c++" behave as plain text.
package highlight

import "unicode"

// Segment is a run of text. Match is true when the run equals the query
// under case folding.
type Segment struct {
	Text  string `json:"text"`
	Match bool   `json:"match"`
}

// Mark splits text into segments covering it completely, marking every
// non-overlapping occurrence of query from left to right. The original
// casing is preserved in the output. An empty query yields the whole text
// as a single unmarked segment.
func Mark(text, query string) []Segment {
	if text == "" {
		return nil
	}
	if query == "" {
		return []Segment{{Text: text}}
	}

	textRunes := []rune(text)
	haystack := lowerRunes(textRunes)
	needle := lowerRunes([]rune(query))

	var segments []Segment
	start := 0 // start of the pending unmarked run
	i := 0
	for i+len(needle) <= len(haystack) {
		if !runesEqual(haystack[i:i+len(needle)], needle) {
			i++
			continue
		}
		if i > start {
			segments = append(segments, Segment{Text: string(textRunes[start:i])})
		}
		segments = append(segments, Segment{Text: string(textRunes[i : i+len(needle)]), Match: true})
		i += len(needle)
		start = i
	}
	if start < len(textRunes) {
		segments = append(segments, Segment{Text: string(textRunes[start:])})
	}
	return segments
}

// HasMatch reports whether text contains the query, under the same rules
// Mark uses.
func HasMatch(text, query string) bool {
	if text == "" || query == "" {
		return false
	}
	haystack := lowerRunes([]rune(text))
	needle := lowerRunes([]rune(query))
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if runesEqual(haystack[i:i+len(needle)], needle) {
			return true
		}
	}
	return false
}

// lowerRunes lowercases rune-by-rune, which keeps positions aligned with
// the original text.
func lowerRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = unicode.ToLower(r)
	}
	return out
}

func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
