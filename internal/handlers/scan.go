package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/NamanHarbola/Rack-Management/internal/models"
	"github.com/NamanHarbola/Rack-Management/internal/services/printer"
	"gorm.io/gorm"
)

// ScanRequest represents the payload from a scanner
type ScanRequest struct {
	Code string `json:"code"`
}

// ScanResponse standardizes the scan result
type ScanResponse struct {
	Type    string      `json:"type"`           // rack or item
	Message string      `json:"message"`        // Human readable status
	Action  string      `json:"action"`         // found or suggested
	Data    interface{} `json:"data,omitempty"` // The resulting object
}

// ItemSuggestion is the fallback payload when a scanned code is not a rack
// but matches item names: the racks holding those items, in the same shape
// the search endpoint uses.
type ItemSuggestion struct {
	Query        string              `json:"query"`
	Racks        []models.Rack       `json:"racks"`
	MatchedItems map[string][]string `json:"matchedItems"`
}

// handleScan is the universal entry point for all scanned codes
func (r *Router) handleScan(w http.ResponseWriter, req *http.Request) {
	var body ScanRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	code := strings.TrimSpace(body.Code)
	if code == "" {
		respondError(w, http.StatusBadRequest, "Empty code")
		return
	}

	resp, err := r.resolveScan(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "Nothing matches the scanned code")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to resolve scan")
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// resolveScan tries each reading of the code in turn: printed label, bare
// rack id, rack number, and finally an item-name suggestion.
func (r *Router) resolveScan(code string) (ScanResponse, error) {
	// 1. Printed label payload. Label ids are authoritative; a label that
	// points at a missing or malformed id does not fall through.
	if rackID, err := printer.ParseLabelPayload(code); err == nil {
		rack, err := r.findRack(rackID)
		if err != nil {
			return ScanResponse{}, err
		}
		return rackFound(rack), nil
	}

	// 2. Bare rack id, as copied from the API or another client
	rack, err := r.findRack(code)
	if err == nil {
		return rackFound(rack), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return ScanResponse{}, err
	}

	// 3. Literal rack number, case-insensitive for hand-typed codes
	err = r.db.Where("LOWER(rack_number) = LOWER(?)", code).First(&rack).Error
	if err == nil {
		return rackFound(rack), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return ScanResponse{}, err
	}

	// 4. Not a rack at all; suggest the racks holding matching items
	return r.suggestByItem(code)
}

// suggestByItem runs the item leg of the search predicate and shapes the
// hits into a suggestion.
func (r *Router) suggestByItem(code string) (ScanResponse, error) {
	pattern := "%" + escapeLike(code) + "%"

	var racks []models.Rack
	err := r.db.
		Where(
			`EXISTS (
				SELECT 1 FROM jsonb_array_elements_text(items) AS item
				WHERE item ILIKE ? ESCAPE '\'
			)`,
			pattern,
		).
		Order("floor, rack_number").
		Find(&racks).Error
	if err != nil {
		return ScanResponse{}, err
	}
	if len(racks) == 0 {
		return ScanResponse{}, gorm.ErrRecordNotFound
	}

	return itemSuggestion(code, racks), nil
}

// rackFound shapes the response for a code that resolved to one rack.
func rackFound(rack models.Rack) ScanResponse {
	return ScanResponse{
		Type:    "rack",
		Action:  "found",
		Message: rack.RackNumber + " on " + rack.Floor,
		Data:    rack,
	}
}

// itemSuggestion shapes the response for a code that only matched item
// names. The matched-items map mirrors the search endpoint, so clients
// reuse their highlighting path.
func itemSuggestion(code string, racks []models.Rack) ScanResponse {
	suggestion := ItemSuggestion{
		Query:        code,
		Racks:        racks,
		MatchedItems: map[string][]string{},
	}
	for _, rack := range racks {
		if matches := models.MatchItems(rack.Items, code); len(matches) > 0 {
			suggestion.MatchedItems[rack.ID] = matches
		}
	}

	return ScanResponse{
		Type:    "item",
		Action:  "suggested",
		Message: fmt.Sprintf("%q matches items on %d rack(s)", code, len(racks)),
		Data:    suggestion,
	}
}
