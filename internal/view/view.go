// Package view turns the rack snapshot and the current search state into a
// ready-to-render display set: floors in locale order, cards with match
// highlighting, and the right empty-state message.
package view

import (
	"github.com/NamanHarbola/Rack-Management/internal/highlight"
	"github.com/NamanHarbola/Rack-Management/internal/models"
	"github.com/NamanHarbola/Rack-Management/internal/search"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ItemChip is one item name on a rack card.
type ItemChip struct {
	Segments []highlight.Segment
	Matched  bool // the search query matched this item
}

// Card is one rack, ready to render.
type Card struct {
	ID          string
	RackNumber  []highlight.Segment
	Floor       string
	Items       []ItemChip
	Highlighted bool // the card belongs to the active search's results
}

// FloorGroup is a floor heading with its racks.
type FloorGroup struct {
	Floor    string
	Segments []highlight.Segment
	Cards    []Card
}

// EmptyState distinguishes an empty inventory from a search with no hits,
// so the UI can offer the right call to action.
type EmptyState int

const (
	EmptyNone EmptyState = iota
	EmptyNoRacks
	EmptyNoMatches
)

// DisplaySet is everything a renderer needs for one frame.
type DisplaySet struct {
	Searching bool
	Query     string
	Floors    []FloorGroup
	Empty     EmptyState
}

// Composer builds display sets. Floor names sort in the collation order of
// the configured language, with embedded numbers compared numerically so
// "Floor 2" comes before "Floor 10".
type Composer struct {
	collator *collate.Collator
}

// NewComposer creates a composer for the given display language.
func NewComposer(lang language.Tag) *Composer {
	return &Composer{
		collator: collate.New(lang, collate.Numeric),
	}
}

// Compose renders the idle inventory or, when a search is active, its
// results. The search state's matched-items map drives the item chips.
func (c *Composer) Compose(snapshot map[string][]models.Rack, state search.State) DisplaySet {
	if state.Mode == search.ModeSearching && state.Result != nil {
		return c.composeSearch(state)
	}
	return c.composeInventory(snapshot)
}

func (c *Composer) composeInventory(snapshot map[string][]models.Rack) DisplaySet {
	set := DisplaySet{}

	for _, floor := range c.sortedFloors(floorNames(snapshot)) {
		racks := snapshot[floor]
		if len(racks) == 0 {
			continue
		}
		group := FloorGroup{
			Floor:    floor,
			Segments: highlight.Mark(floor, ""),
		}
		for _, rack := range racks {
			group.Cards = append(group.Cards, c.card(rack, "", nil))
		}
		set.Floors = append(set.Floors, group)
	}

	if len(set.Floors) == 0 {
		set.Empty = EmptyNoRacks
	}
	return set
}

func (c *Composer) composeSearch(state search.State) DisplaySet {
	set := DisplaySet{
		Searching: true,
		Query:     state.Query,
	}

	byFloor := map[string][]models.Rack{}
	for _, rack := range state.Result.Racks {
		byFloor[rack.Floor] = append(byFloor[rack.Floor], rack)
	}

	for _, floor := range c.sortedFloors(floorNames(byFloor)) {
		group := FloorGroup{
			Floor:    floor,
			Segments: highlight.Mark(floor, state.Query),
		}
		for _, rack := range byFloor[floor] {
			group.Cards = append(group.Cards, c.card(rack, state.Query, state.Result.MatchedItems[rack.ID]))
		}
		set.Floors = append(set.Floors, group)
	}

	if len(set.Floors) == 0 {
		set.Empty = EmptyNoMatches
	}
	return set
}

// card renders a single rack. matched lists the item names the server
// reported as hits for the query; only those chips carry match marks.
func (c *Composer) card(rack models.Rack, query string, matched []string) Card {
	card := Card{
		ID:          rack.ID,
		RackNumber:  highlight.Mark(rack.RackNumber, query),
		Floor:       rack.Floor,
		Highlighted: query != "",
	}

	matchedSet := make(map[string]bool, len(matched))
	for _, item := range matched {
		matchedSet[item] = true
	}

	for _, item := range rack.Items {
		chip := ItemChip{Matched: matchedSet[item]}
		if chip.Matched {
			chip.Segments = highlight.Mark(item, query)
		} else {
			chip.Segments = highlight.Mark(item, "")
		}
		card.Items = append(card.Items, chip)
	}

	return card
}

func (c *Composer) sortedFloors(floors []string) []string {
	c.collator.SortStrings(floors)
	return floors
}

func floorNames(m map[string][]models.Rack) []string {
	names := make([]string, 0, len(m))
	for floor := range m {
		names = append(names, floor)
	}
	return names
}
