package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
)

func TestParseFloorPaging(t *testing.T) {
	testCases := []struct {
		url       string
		wantPage  int
		wantLimit int
		wantErr   bool
	}{
		{"/api/racks", 1, 5, false}, // defaults
		{"/api/racks?page=3", 3, 5, false},
		{"/api/racks?page=2&limit=20", 2, 20, false},
		{"/api/racks?limit=1", 1, 1, false},
		{"/api/racks?page=0", 0, 0, true},      // page must be >= 1
		{"/api/racks?page=-1", 0, 0, true},
		{"/api/racks?limit=0", 0, 0, true},     // limit must be >= 1
		{"/api/racks?limit=21", 0, 0, true},    // limit capped at 20
		{"/api/racks?page=abc", 0, 0, true},    // not a number
		{"/api/racks?limit=2.5", 0, 0, true},
	}

	for _, tc := range testCases {
		req := httptest.NewRequest("GET", tc.url, nil)
		page, limit, err := parseFloorPaging(req)

		if tc.wantErr {
			if err == nil {
				t.Errorf("parseFloorPaging(%q) succeeded, want error", tc.url)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseFloorPaging(%q) failed: %v", tc.url, err)
			continue
		}
		if page != tc.wantPage || limit != tc.wantLimit {
			t.Errorf("parseFloorPaging(%q) = (%d, %d), want (%d, %d)",
				tc.url, page, limit, tc.wantPage, tc.wantLimit)
		}
	}
}

func TestRackHandlersAnswer404ForMalformedIDs(t *testing.T) {
	// Path ids that are not uuids cannot exist. The handlers must answer 404
	// before querying, not surface a database type error as a 500.
	router := &Router{}

	testCases := []struct {
		name    string
		handler http.HandlerFunc
		method  string
		body    string
	}{
		{"get", router.getRack, http.MethodGet, ""},
		{"update", router.updateRack, http.MethodPut, `{"floor":"Ground Floor"}`},
		{"delete", router.deleteRack, http.MethodDelete, ""},
		{"label png", router.rackLabelPNG, http.MethodGet, ""},
	}

	for _, tc := range testCases {
		var body io.Reader
		if tc.body != "" {
			body = strings.NewReader(tc.body)
		}
		req := httptest.NewRequest(tc.method, "/api/racks/not-a-uuid", body)
		req = mux.SetURLVars(req, map[string]string{"id": "not-a-uuid"})
		rec := httptest.NewRecorder()

		tc.handler(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("%s: status = %d, want 404", tc.name, rec.Code)
		}
	}
}
