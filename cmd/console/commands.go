package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/NamanHarbola/Rack-Management/internal/client"
	"github.com/NamanHarbola/Rack-Management/internal/models"
	"github.com/NamanHarbola/Rack-Management/internal/search"
)

const helpText = ":add R-001 @ Ground Floor = Cables, Switches · :edit R-001 [@ Floor] [= items] · :del R-001 · :scan <code> · :ask <question> · :clear · :refresh · :quit"

// runCommand executes one : command from the input line.
func (m model) runCommand(line string) (tea.Model, tea.Cmd) {
	name, rest, _ := strings.Cut(strings.TrimPrefix(line, ":"), " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(name) {
	case "help", "h":
		m.status = helpText
		return m, nil
	case "add", "a":
		return m.commandAdd(rest)
	case "edit", "e":
		return m.commandEdit(rest)
	case "del", "delete", "rm":
		return m.commandDelete(rest)
	case "scan", "s":
		return m.commandScan(rest)
	case "ask":
		return m.commandAsk(rest)
	case "clear":
		m.status = ""
		return m, nil
	case "refresh", "r":
		m.status = "Refreshing..."
		return m, m.refresh()
	case "quit", "q":
		m.controller.Close()
		return m, tea.Quit
	default:
		m.status = fmt.Sprintf("⚠️ Unknown command :%s (try :help)", name)
		return m, nil
	}
}

// parseRackSpec reads "R-001 @ Ground Floor = Cables, Switches". The item
// list is optional.
func parseRackSpec(spec string) (client.RackInput, error) {
	head, itemPart, hasItems := strings.Cut(spec, "=")
	number, floor, hasFloor := strings.Cut(head, "@")

	input := client.RackInput{
		RackNumber: strings.TrimSpace(number),
		Floor:      strings.TrimSpace(floor),
	}
	if hasItems {
		input.Items = models.ParseItems(itemPart)
	}
	if input.RackNumber == "" || !hasFloor || input.Floor == "" {
		return input, errors.New(`expects "R-001 @ Ground Floor = Cables, Switches"`)
	}
	return input, nil
}

func (m model) commandAdd(spec string) (tea.Model, tea.Cmd) {
	input, err := parseRackSpec(spec)
	if err != nil {
		m.status = "⚠️ :add " + err.Error()
		return m, nil
	}

	m.status = "Adding " + input.RackNumber + "..."
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		rack, err := m.store.CreateRack(ctx, input)
		if err != nil {
			if rack == nil {
				return errMsg{err}
			}
			return statusMsg(fmt.Sprintf("⚠️ Added %s, but refresh failed: %v", rack.RackNumber, err))
		}
		return statusMsg(fmt.Sprintf("✅ Added %s on %s", rack.RackNumber, rack.Floor))
	}
}

// commandEdit changes floor and/or items of a rack found by its number.
// ":edit R-001 =" with nothing after the equals sign empties the rack.
func (m model) commandEdit(spec string) (tea.Model, tea.Cmd) {
	head, itemPart, hasItems := strings.Cut(spec, "=")
	number, floorPart, hasFloor := strings.Cut(head, "@")
	number = strings.TrimSpace(number)

	if number == "" || (!hasFloor && !hasItems) {
		m.status = `⚠️ :edit expects "R-001 [@ New Floor] [= item, item]"`
		return m, nil
	}

	rack := m.findRack(number)
	if rack == nil {
		m.status = fmt.Sprintf("⚠️ No rack %q in the store", number)
		return m, nil
	}

	input := client.RackInput{
		RackNumber: rack.RackNumber,
		Floor:      rack.Floor,
		Items:      rack.Items,
	}
	if hasFloor {
		input.Floor = strings.TrimSpace(floorPart)
		if input.Floor == "" {
			m.status = "⚠️ :edit needs a floor name after @"
			return m, nil
		}
	}
	if hasItems {
		input.Items = models.ParseItems(itemPart)
	}

	id := rack.ID
	m.status = "Updating " + rack.RackNumber + "..."
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		updated, err := m.store.UpdateRack(ctx, id, input)
		if err != nil {
			if updated == nil {
				return errMsg{err}
			}
			return statusMsg(fmt.Sprintf("⚠️ Updated %s, but refresh failed: %v", updated.RackNumber, err))
		}
		return statusMsg(fmt.Sprintf("✅ Updated %s on %s", updated.RackNumber, updated.Floor))
	}
}

func (m model) commandDelete(spec string) (tea.Model, tea.Cmd) {
	number := strings.TrimSpace(spec)
	if number == "" {
		m.status = `⚠️ :del expects a rack number, e.g. ":del R-001"`
		return m, nil
	}

	rack := m.findRack(number)
	if rack == nil {
		m.status = fmt.Sprintf("⚠️ No rack %q in the store", number)
		return m, nil
	}

	m.confirm = &deleteTarget{id: rack.ID, rackNumber: rack.RackNumber, floor: rack.Floor}
	m.status = ""
	return m, nil
}

func (m model) deleteRack(target deleteTarget) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := m.store.DeleteRack(ctx, target.id); err != nil {
			if errors.Is(err, client.ErrNotFound) {
				_ = m.store.Refresh(ctx)
				return statusMsg(fmt.Sprintf("⚠️ %s was already deleted", target.rackNumber))
			}
			return errMsg{err}
		}
		return statusMsg("🗑️ Deleted " + target.rackNumber)
	}
}

// commandScan resolves a code the way the scan endpoint does: label payload,
// rack id, rack number, or an item-name suggestion.
func (m model) commandScan(code string) (tea.Model, tea.Cmd) {
	if code == "" {
		m.status = `⚠️ :scan expects a code, e.g. ":scan R-001" or a pasted label payload`
		return m, nil
	}

	m.status = "Scanning " + code + "..."
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		result, err := m.api.Scan(ctx, code)
		if err != nil {
			if errors.Is(err, client.ErrNotFound) {
				return statusMsg(fmt.Sprintf("🔍 Nothing matches %q", code))
			}
			return errMsg{err}
		}
		return scanDoneMsg{result: result}
	}
}

// applyScan shows a scan answer. Found racks land in the status line;
// item suggestions reuse the search rendering so matched items light up.
func (m model) applyScan(result *client.ScanResult) (tea.Model, tea.Cmd) {
	if result.Action == "suggested" {
		suggestion, err := result.Suggestion()
		if err != nil {
			m.status = "⚠️ " + err.Error()
			return m, nil
		}
		m.searchState = search.State{
			Mode:  search.ModeSearching,
			Query: suggestion.Query,
			Result: &models.SearchResult{
				Racks:        suggestion.Racks,
				MatchedItems: suggestion.MatchedItems,
			},
		}
		m.recompose()
		m.status = "🔍 " + result.Message + " (esc clears)"
		return m, nil
	}

	rack, err := result.Rack()
	if err != nil {
		m.status = "⚠️ " + err.Error()
		return m, nil
	}
	m.status = "📦 " + result.Message
	if len(rack.Items) > 0 {
		m.status += ": " + strings.Join(rack.Items, ", ")
	}
	return m, nil
}

// commandAsk sends a free-form question to the inventory assistant.
func (m model) commandAsk(question string) (tea.Model, tea.Cmd) {
	if question == "" {
		m.status = `⚠️ :ask expects a question, e.g. ":ask where are the cables?"`
		return m, nil
	}

	m.status = "🤖 Asking..."
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), assistantTimeout)
		defer cancel()

		reply, err := m.api.Ask(ctx, question)
		if err != nil {
			return errMsg{err}
		}
		return askDoneMsg{reply: reply}
	}
}

func (m model) findRack(number string) *models.Rack {
	for _, racks := range m.store.Snapshot() {
		for i := range racks {
			if strings.EqualFold(racks[i].RackNumber, number) {
				rack := racks[i]
				return &rack
			}
		}
	}
	return nil
}
