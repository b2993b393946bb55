// Package search drives the as-you-type rack search. It debounces keystroke
// bursts, clears synchronously when the input empties, and discards
// responses that arrive for a query the user has already left behind.
package search

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/NamanHarbola/Rack-Management/internal/models"
)

// DefaultDelay is how long typing must pause before a search fires.
const DefaultDelay = 300 * time.Millisecond

// Mode says whether the UI shows the full inventory or search results.
type Mode int

const (
	ModeIdle Mode = iota
	ModeSearching
)

// State is a renderable snapshot of the controller. In ModeIdle the result
// is nil and the full inventory should be shown; in ModeSearching the
// result belongs to Query.
type State struct {
	Mode   Mode
	Query  string
	Result *models.SearchResult
}

// Searcher runs one search. *client.Client satisfies it.
type Searcher interface {
	Search(ctx context.Context, query string) (*models.SearchResult, error)
}

// Controller serializes query input into at most one in-flight search and
// publishes every state change through the onChange callback. Responses
// for superseded queries are dropped, and callbacks arrive in the order
// the states were produced, even when a clear races a finishing search.
type Controller struct {
	searcher Searcher
	delay    time.Duration
	onChange func(State)

	mu        sync.Mutex
	timer     *time.Timer
	seq       uint64 // sequence of the latest dispatched request
	state     State
	pending   []State // states queued for callback delivery
	notifying bool    // a goroutine is draining pending
	closed    bool
}

// NewController creates a controller. A delay of 0 uses DefaultDelay.
// onChange may be nil when the caller polls State instead.
func NewController(searcher Searcher, delay time.Duration, onChange func(State)) *Controller {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Controller{
		searcher: searcher,
		delay:    delay,
		onChange: onChange,
	}
}

// SetQuery feeds the current input value to the controller. A blank query
// cancels any pending search and returns to idle before this call returns;
// anything else (re)starts the debounce timer.
func (c *Controller) SetQuery(query string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	if strings.TrimSpace(query) == "" {
		if c.timer != nil {
			c.timer.Stop()
			c.timer = nil
		}
		// Bump the sequence so an in-flight response cannot resurface
		c.seq++
		c.state = State{Mode: ModeIdle}
		c.notifyLocked()
		return
	}

	if c.timer != nil {
		c.timer.Stop()
	}
	q := query
	c.timer = time.AfterFunc(c.delay, func() { c.dispatch(q) })
	c.mu.Unlock()
}

// State returns the latest published state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Close stops the controller; pending timers are canceled and any in-flight
// response is dropped.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// dispatch runs one search after the debounce window closed.
func (c *Controller) dispatch(query string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	result, err := c.searcher.Search(context.Background(), query)

	c.mu.Lock()
	if c.closed || seq != c.seq {
		// The user typed on or cleared; this response is stale
		c.mu.Unlock()
		return
	}

	if err != nil {
		// Searching stays active with no hits; the inventory view must not
		// flicker back in because a request failed
		log.Printf("⚠️  Search for %q failed: %v", query, err)
		result = &models.SearchResult{
			Racks:        []models.Rack{},
			MatchedItems: map[string][]string{},
		}
	}

	c.state = State{Mode: ModeSearching, Query: query, Result: result}
	c.notifyLocked()
}

// notifyLocked queues the current state and drains the queue unless another
// goroutine already is. Queueing under c.mu keeps delivery in state-change
// order; draining outside it lets the callback call back into the
// controller, and anything it enqueues is picked up before the drain ends.
func (c *Controller) notifyLocked() {
	if c.onChange == nil {
		c.mu.Unlock()
		return
	}

	c.pending = append(c.pending, c.state)
	if c.notifying {
		c.mu.Unlock()
		return
	}

	c.notifying = true
	for len(c.pending) > 0 {
		state := c.pending[0]
		c.pending = c.pending[1:]
		c.mu.Unlock()
		c.onChange(state)
		c.mu.Lock()
	}
	c.notifying = false
	c.mu.Unlock()
}
