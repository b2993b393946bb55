package main

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/NamanHarbola/Rack-Management/internal/client"
	"github.com/NamanHarbola/Rack-Management/internal/search"
	"github.com/NamanHarbola/Rack-Management/internal/store"
	"github.com/NamanHarbola/Rack-Management/internal/view"
	"github.com/NamanHarbola/Rack-Management/internal/websocket"
)

const (
	requestTimeout = 10 * time.Second

	// The assistant round-trips through a language model; give it longer.
	assistantTimeout = 60 * time.Second
)

type (
	searchStateMsg search.State
	refreshedMsg   struct{}
	rackEventMsg   websocket.Event
	feedOpenedMsg  struct{ events <-chan websocket.Event }
	watchClosedMsg struct{}
	statusMsg      string
	errMsg         struct{ err error }
	scanDoneMsg    struct{ result *client.ScanResult }
	askDoneMsg     struct{ reply *client.AssistantReply }
)

// deleteTarget is a rack awaiting y/N confirmation before deletion.
type deleteTarget struct {
	id         string
	rackNumber string
	floor      string
}

// model drives the console: a search box on top, the floor sections below,
// and : commands for changes.
type model struct {
	input  textinput.Model
	styles styles

	api        *client.Client
	store      *store.Store
	controller *search.Controller
	composer   *view.Composer

	// stateCh carries debounced search results out of the controller's
	// goroutine and into the update loop.
	stateCh chan search.State
	events  <-chan websocket.Event
	watch   bool

	searchState search.State
	display     view.DisplaySet
	status      string
	confirm     *deleteTarget

	width  int
	height int
}

func newModel(api *client.Client, st *store.Store, composer *view.Composer, watch bool) model {
	ti := textinput.New()
	ti.Placeholder = "Search racks and items, or type :help"
	ti.Prompt = "🔍 "
	ti.Width = 48
	ti.Focus()

	stateCh := make(chan search.State, 16)
	m := model{
		input:    ti,
		styles:   defaultStyles(),
		api:      api,
		store:    st,
		composer: composer,
		stateCh:  stateCh,
		watch:    watch,
		status:   "Loading racks...",
	}
	m.controller = search.NewController(api, search.DefaultDelay, func(state search.State) {
		pushState(stateCh, state)
	})
	return m
}

// pushState delivers the newest search state even when the update loop lags:
// a full channel drops the oldest queued state, never the incoming one.
func pushState(ch chan search.State, state search.State) {
	for {
		select {
		case ch <- state:
			return
		default:
			select {
			case <-ch:
			default:
			}
		}
	}
}

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.refresh(), m.waitForSearch()}
	if m.watch {
		cmds = append(cmds, m.openFeed())
	}
	return tea.Batch(cmds...)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case searchStateMsg:
		m.searchState = search.State(msg)
		m.recompose()
		return m, m.waitForSearch()

	case refreshedMsg:
		m.recompose()
		if m.status == "Loading racks..." {
			m.status = ""
		}
		return m, nil

	case feedOpenedMsg:
		m.events = msg.events
		m.status = "📡 Following live changes"
		return m, m.waitForEvent()

	case rackEventMsg:
		m.status = describeEvent(websocket.Event(msg))
		return m, tea.Batch(m.refresh(), m.waitForEvent())

	case watchClosedMsg:
		m.events = nil
		m.status = "📴 Change feed disconnected"
		return m, nil

	case statusMsg:
		m.status = string(msg)
		m.recompose()
		return m, nil

	case scanDoneMsg:
		return m.applyScan(msg.result)

	case askDoneMsg:
		m.status = "🤖 " + msg.reply.Answer
		if len(msg.reply.Racks) > 0 {
			m.status += "  (" + strings.Join(msg.reply.Racks, ", ") + ")"
		}
		return m, nil

	case errMsg:
		m.status = "⚠️ " + msg.err.Error()
		return m, nil
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A pending delete owns the keyboard until answered.
	if m.confirm != nil {
		switch msg.String() {
		case "y", "Y":
			target := *m.confirm
			m.confirm = nil
			m.status = "Deleting " + target.rackNumber + "..."
			return m, m.deleteRack(target)
		case "n", "N", "esc", "enter":
			m.confirm = nil
			m.status = "Delete canceled"
			return m, nil
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		m.controller.Close()
		return m, tea.Quit
	case "esc":
		m.input.SetValue("")
		m.controller.SetQuery("")
		return m, nil
	case "enter":
		line := strings.TrimSpace(m.input.Value())
		if strings.HasPrefix(line, ":") {
			m.input.SetValue("")
			m.controller.SetQuery("")
			return m.runCommand(line)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	// Command lines never hit the server; everything else searches as typed.
	value := m.input.Value()
	if strings.HasPrefix(strings.TrimSpace(value), ":") {
		m.controller.SetQuery("")
	} else {
		m.controller.SetQuery(value)
	}
	return m, cmd
}

func (m *model) recompose() {
	m.display = m.composer.Compose(m.store.Snapshot(), m.searchState)
}

func (m model) waitForSearch() tea.Cmd {
	return func() tea.Msg {
		return searchStateMsg(<-m.stateCh)
	}
}

func (m model) refresh() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if err := m.store.Refresh(ctx); err != nil {
			return errMsg{err}
		}
		return refreshedMsg{}
	}
}

// openFeed connects to the server's change feed. The feed lives for the
// whole session, the process exit tears it down.
func (m model) openFeed() tea.Cmd {
	return func() tea.Msg {
		events, err := m.api.Watch(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return feedOpenedMsg{events: events}
	}
}

func (m model) waitForEvent() tea.Cmd {
	events := m.events
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return watchClosedMsg{}
		}
		return rackEventMsg(event)
	}
}

func describeEvent(event websocket.Event) string {
	switch event.Type {
	case websocket.EventRackCreated:
		if event.Rack != nil {
			return "📦 Rack " + event.Rack.RackNumber + " was added elsewhere"
		}
	case websocket.EventRackUpdated:
		if event.Rack != nil {
			return "✏️ Rack " + event.Rack.RackNumber + " was updated elsewhere"
		}
	case websocket.EventRackDeleted:
		return "🗑️ A rack was deleted elsewhere"
	}
	return ""
}
