package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/NamanHarbola/Rack-Management/internal/highlight"
	"github.com/NamanHarbola/Rack-Management/internal/view"
)

// styles is the console color scheme. Amber for the brand, a yellow
// highlight block for matched text so hits are visible at a glance.
type styles struct {
	header  lipgloss.Style
	live    lipgloss.Style
	floor   lipgloss.Style
	rack    lipgloss.Style
	item    lipgloss.Style
	matched lipgloss.Style
	mark    lipgloss.Style
	muted   lipgloss.Style
	status  lipgloss.Style
	confirm lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFB300")),
		live:    lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A")),
		floor:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4FC3F7")),
		rack:    lipgloss.NewStyle().Bold(true),
		item:    lipgloss.NewStyle().Foreground(lipgloss.Color("#B0BEC5")),
		matched: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A")),
		mark:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1A1A1A")).Background(lipgloss.Color("#FFD54F")),
		muted:   lipgloss.NewStyle().Faint(true),
		status:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB300")),
		confirm: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E53935")),
	}
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.header.Render("📦 MADAN STORE"))
	if m.events != nil {
		b.WriteString("  " + m.styles.live.Render("· live"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.confirm != nil {
		prompt := fmt.Sprintf("Delete rack %s on %s? This cannot be undone. (y/N)",
			m.confirm.rackNumber, m.confirm.floor)
		b.WriteString(m.styles.confirm.Render(prompt))
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderDisplay())
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n" + m.styles.status.Render(m.status))
	}
	b.WriteString("\n" + m.styles.muted.Render("type to search · esc clears · :add :edit :del :scan :ask :refresh :quit · :help"))
	return b.String()
}

func (m model) renderDisplay() string {
	set := m.display

	switch set.Empty {
	case view.EmptyNoRacks:
		return m.styles.muted.Render(`No racks yet. Add the first one with ":add R-001 @ Ground Floor = Cables"`)
	case view.EmptyNoMatches:
		return m.styles.muted.Render(fmt.Sprintf("No racks or items match %q.", set.Query))
	}

	divider := m.styles.muted.Render(strings.Repeat("─", min(max(m.width-2, 20), 60)))

	var b strings.Builder
	for i, group := range set.Floors {
		if i > 0 {
			b.WriteString(divider + "\n")
		}
		b.WriteString(m.renderSegments(group.Segments, m.styles.floor))
		b.WriteString(m.styles.muted.Render(fmt.Sprintf("  (%d racks)", len(group.Cards))))
		b.WriteString("\n")
		for _, card := range group.Cards {
			b.WriteString(m.renderCard(card))
		}
	}
	return b.String()
}

func (m model) renderCard(card view.Card) string {
	bullet := "  • "
	if card.Highlighted {
		bullet = "  ▸ "
	}

	var b strings.Builder
	b.WriteString(bullet)
	b.WriteString(m.renderSegments(card.RackNumber, m.styles.rack))
	for _, chip := range card.Items {
		b.WriteString("  " + m.renderChip(chip))
	}
	b.WriteString("\n")
	return b.String()
}

func (m model) renderChip(chip view.ItemChip) string {
	bracket := m.styles.item
	if chip.Matched {
		bracket = m.styles.matched
	}
	return bracket.Render("[") + m.renderSegments(chip.Segments, m.styles.item) + bracket.Render("]")
}

// renderSegments styles each segment on its own so the highlight block
// never bleeds into the surrounding text.
func (m model) renderSegments(segs []highlight.Segment, base lipgloss.Style) string {
	var b strings.Builder
	for _, seg := range segs {
		if seg.Match {
			b.WriteString(m.styles.mark.Render(seg.Text))
		} else {
			b.WriteString(base.Render(seg.Text))
		}
	}
	return b.String()
}
