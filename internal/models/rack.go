package models

import (
	"strings"
	"time"

	"github.com/NamanHarbola/Rack-Management/internal/highlight"
	"gorm.io/datatypes"
)

// Rack represents a storage rack on a floor of the store.
// Standardized: Go (PascalCase) -> DB (snake_case) -> JSON (camelCase)
type Rack struct {
	ID         string                      `gorm:"primaryKey;type:uuid" json:"id"`
	RackNumber string                      `gorm:"not null;index" json:"rackNumber"`
	Floor      string                      `gorm:"not null;index" json:"floor"`
	Items      datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"items"`
	CreatedAt  time.Time                   `json:"createdAt"`
	UpdatedAt  time.Time                   `json:"updatedAt"`
}

// TableName specifies the table name for Rack model
func (Rack) TableName() string {
	return "racks"
}

// SearchResult is the wire shape of GET /api/racks/search: the matching
// racks plus, per rack id, the item names that matched the query. A rack
// can appear in Racks without an entry in MatchedItems when only its
// number or floor matched.
type SearchResult struct {
	Racks        []Rack              `json:"racks"`
	MatchedItems map[string][]string `json:"matchedItems"`
}

// NormalizeItems trims every entry and drops the empty ones. The result is
// never nil so the items column always serializes as a JSON array.
func NormalizeItems(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}

// ParseItems splits comma-separated form input into item names.
// "A, B ,, C" becomes ["A","B","C"].
func ParseItems(input string) []string {
	return NormalizeItems(strings.Split(input, ","))
}

// MatchItems returns the items containing the query as a case-insensitive
// literal substring, preserving item order. Empty query matches nothing.
// Containment follows the same rules highlight.Mark marks by.
func MatchItems(items []string, query string) []string {
	var matches []string
	for _, item := range items {
		if highlight.HasMatch(item, query) {
			matches = append(matches, item)
		}
	}
	return matches
}
