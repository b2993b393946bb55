package websocket

import (
	"testing"
	"time"
)

func TestHubDropsSlowViewer(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	// A viewer with a single-slot buffer and no pump draining it
	viewer := &Client{
		hub:  hub,
		send: make(chan []byte, 1),
		ID:   "viewer_slow",
	}
	hub.register <- viewer
	waitFor(t, func() bool { return hub.ClientCount() == 1 }, "viewer never registered")

	// The first event fills the buffer; the second finds it full and must
	// evict the viewer instead of stalling the feed
	hub.BroadcastEvent(Event{Type: EventRackCreated, RackID: "a1"})
	hub.BroadcastEvent(Event{Type: EventRackUpdated, RackID: "a1"})
	waitFor(t, func() bool { return hub.ClientCount() == 0 }, "slow viewer was not dropped")

	// The send channel closes on eviction so the write pump can exit; one
	// buffered message may still be pending in front of the close
	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-viewer.send:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("send channel was never closed")
		}
	}
}

func TestHubRegisterAndUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	viewer := &Client{
		hub:  hub,
		send: make(chan []byte, 1),
		ID:   "viewer_once",
	}
	hub.register <- viewer
	waitFor(t, func() bool { return hub.ClientCount() == 1 }, "viewer never registered")

	hub.unregister <- viewer
	waitFor(t, func() bool { return hub.ClientCount() == 0 }, "viewer never unregistered")

	// A duplicate unregister must not panic on the already-closed channel,
	// and the loop must keep serving afterwards
	hub.unregister <- viewer

	second := &Client{
		hub:  hub,
		send: make(chan []byte, 1),
		ID:   "viewer_twice",
	}
	hub.register <- second
	waitFor(t, func() bool { return hub.ClientCount() == 1 }, "hub stopped serving after duplicate unregister")
}

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal(msg)
		}
		time.Sleep(10 * time.Millisecond)
	}
}
