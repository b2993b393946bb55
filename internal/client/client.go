// Package client is a typed Go client for the MADAN STORE REST API and its
// websocket change feed. The console UI is built on it, and other tools can
// use it to script the inventory.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/NamanHarbola/Rack-Management/internal/models"
	"github.com/NamanHarbola/Rack-Management/internal/websocket"
	gws "github.com/gorilla/websocket"
)

// ErrNotFound reports a 404 from the server, typically a rack id that was
// deleted by another client.
var ErrNotFound = errors.New("not found")

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// RackInput is the payload for creating or replacing a rack. Updates always
// send every field, so an edit replaces the rack's content as a whole.
type RackInput struct {
	RackNumber string   `json:"rackNumber"`
	Floor      string   `json:"floor"`
	Items      []string `json:"items"`
}

// ScanResult is the server's answer to a scanned code. A "found" action
// carries the resolved rack; a "suggested" action carries the racks whose
// item names matched a code that is not a rack.
type ScanResult struct {
	Type    string          `json:"type"`
	Message string          `json:"message"`
	Action  string          `json:"action"`
	Data    json.RawMessage `json:"data"`
}

// ScanSuggestion is the payload of a "suggested" answer, shaped like a
// search result so callers reuse their highlighting path.
type ScanSuggestion struct {
	Query        string              `json:"query"`
	Racks        []models.Rack       `json:"racks"`
	MatchedItems map[string][]string `json:"matchedItems"`
}

// Rack decodes the payload of a "found" answer.
func (s *ScanResult) Rack() (*models.Rack, error) {
	var rack models.Rack
	if err := json.Unmarshal(s.Data, &rack); err != nil {
		return nil, fmt.Errorf("scan data is not a rack: %w", err)
	}
	return &rack, nil
}

// Suggestion decodes the payload of a "suggested" answer.
func (s *ScanResult) Suggestion() (*ScanSuggestion, error) {
	var suggestion ScanSuggestion
	if err := json.Unmarshal(s.Data, &suggestion); err != nil {
		return nil, fmt.Errorf("scan data is not a suggestion: %w", err)
	}
	return &suggestion, nil
}

// AssistantReply mirrors the inventory assistant's structured answer.
type AssistantReply struct {
	Answer string   `json:"answer"`
	Racks  []string `json:"racks,omitempty"`
}

// Client talks to a MADAN STORE server.
type Client struct {
	BaseURL string
	Token   string // optional Bearer token for protected endpoints
	HTTP    *http.Client
}

// New creates a client for the server at baseURL, e.g. "http://localhost:8001".
func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchRacks returns one page of floors with their racks. Past the last
// floor the map is empty.
func (c *Client) FetchRacks(ctx context.Context, page, limit int) (map[string][]models.Rack, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))

	var floors map[string][]models.Rack
	if err := c.do(ctx, http.MethodGet, "/api/racks?"+params.Encode(), nil, &floors); err != nil {
		return nil, err
	}
	return floors, nil
}

// FetchAllRacks pages through every floor and merges the results.
func (c *Client) FetchAllRacks(ctx context.Context) (map[string][]models.Rack, error) {
	const pageSize = 20

	all := make(map[string][]models.Rack)
	for page := 1; ; page++ {
		floors, err := c.FetchRacks(ctx, page, pageSize)
		if err != nil {
			return nil, err
		}
		if len(floors) == 0 {
			return all, nil
		}
		for floor, racks := range floors {
			all[floor] = append(all[floor], racks...)
		}
	}
}

// Search finds racks matching the query by number, floor or item name.
func (c *Client) Search(ctx context.Context, query string) (*models.SearchResult, error) {
	if query == "" {
		return nil, fmt.Errorf("query must not be empty")
	}

	params := url.Values{}
	params.Set("q", query)

	var result models.SearchResult
	if err := c.do(ctx, http.MethodGet, "/api/racks/search?"+params.Encode(), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetRack fetches a single rack by id.
func (c *Client) GetRack(ctx context.Context, id string) (*models.Rack, error) {
	var rack models.Rack
	if err := c.do(ctx, http.MethodGet, "/api/racks/"+url.PathEscape(id), nil, &rack); err != nil {
		return nil, err
	}
	return &rack, nil
}

// CreateRack adds a new rack and returns it with its assigned id.
func (c *Client) CreateRack(ctx context.Context, input RackInput) (*models.Rack, error) {
	var rack models.Rack
	if err := c.do(ctx, http.MethodPost, "/api/racks", input, &rack); err != nil {
		return nil, err
	}
	return &rack, nil
}

// UpdateRack replaces a rack's number, floor and items.
func (c *Client) UpdateRack(ctx context.Context, id string, input RackInput) (*models.Rack, error) {
	var rack models.Rack
	if err := c.do(ctx, http.MethodPut, "/api/racks/"+url.PathEscape(id), input, &rack); err != nil {
		return nil, err
	}
	return &rack, nil
}

// DeleteRack removes a rack.
func (c *Client) DeleteRack(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/racks/"+url.PathEscape(id), nil, nil)
}

// Scan resolves a scanned code: a QR label payload, a rack id, or a rack
// number. Codes that only match item names come back as a suggestion.
func (c *Client) Scan(ctx context.Context, code string) (*ScanResult, error) {
	var result ScanResult
	body := map[string]string{"code": code}
	if err := c.do(ctx, http.MethodPost, "/api/scan", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Ask sends a free-form question to the inventory assistant.
func (c *Client) Ask(ctx context.Context, question string) (*AssistantReply, error) {
	var reply AssistantReply
	body := map[string]string{"question": question}
	if err := c.do(ctx, http.MethodPost, "/api/assistant", body, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Watch subscribes to the server's change feed. The returned channel closes
// when the context is canceled or the connection drops.
func (c *Client) Watch(ctx context.Context) (<-chan websocket.Event, error) {
	wsURL, err := c.feedURL()
	if err != nil {
		return nil, err
	}

	conn, _, err := gws.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to change feed: %w", err)
	}

	events := make(chan websocket.Event, 16)
	go func() {
		defer close(events)
		defer conn.Close()

		// Unblock the reader when the caller gives up; done reaps the
		// waiter when the connection drops first
		done := make(chan struct{})
		defer close(done)
		go func() {
			select {
			case <-ctx.Done():
				conn.Close()
			case <-done:
			}
		}()

		for {
			var event websocket.Event
			if err := conn.ReadJSON(&event); err != nil {
				return
			}
			select {
			case events <- event:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events, nil
}

// feedURL derives the websocket endpoint from the base URL.
func (c *Client) feedURL() (string, error) {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/ws"
	return u.String(), nil
}

// do sends one JSON request and decodes the response into out when given.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func newAPIError(resp *http.Response) *APIError {
	var body struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)
	if body.Error == "" {
		body.Error = resp.Status
	}
	return &APIError{StatusCode: resp.StatusCode, Message: body.Error}
}
