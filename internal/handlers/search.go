package handlers

import (
	"net/http"
	"strings"

	"github.com/NamanHarbola/Rack-Management/internal/models"
)

// searchRacks finds racks whose number, floor or any item contains the query
// as a case-insensitive substring. The response also maps each rack id to
// the item names that matched, so the UI can highlight them.
func (r *Router) searchRacks(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query().Get("q")
	if q == "" {
		respondError(w, http.StatusUnprocessableEntity, "q must not be empty")
		return
	}

	pattern := "%" + escapeLike(q) + "%"

	var racks []models.Rack
	err := r.db.
		Where(
			`rack_number ILIKE ? ESCAPE '\' OR floor ILIKE ? ESCAPE '\' OR EXISTS (
				SELECT 1 FROM jsonb_array_elements_text(items) AS item
				WHERE item ILIKE ? ESCAPE '\'
			)`,
			pattern, pattern, pattern,
		).
		Order("floor, rack_number").
		Find(&racks).Error
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to search racks")
		return
	}
	if racks == nil {
		// No hits still serializes as "racks": []
		racks = []models.Rack{}
	}

	result := models.SearchResult{
		Racks:        racks,
		MatchedItems: map[string][]string{},
	}
	for _, rack := range racks {
		if matches := models.MatchItems(rack.Items, q); len(matches) > 0 {
			result.MatchedItems[rack.ID] = matches
		}
	}

	respondJSON(w, http.StatusOK, result)
}

// escapeLike neutralizes LIKE wildcards so the query is matched literally.
// "50%" must only match item names that contain "50%".
func escapeLike(s string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`%`, `\%`,
		`_`, `\_`,
	)
	return replacer.Replace(s)
}
