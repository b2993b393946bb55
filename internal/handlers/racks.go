package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/NamanHarbola/Rack-Management/internal/models"
	"github.com/NamanHarbola/Rack-Management/internal/websocket"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

const (
	defaultFloorLimit = 5
	maxFloorLimit     = 20
)

// CreateRackRequest is the payload for POST /api/racks
type CreateRackRequest struct {
	RackNumber string   `json:"rackNumber"`
	Floor      string   `json:"floor"`
	Items      []string `json:"items"`
}

// UpdateRackRequest carries a partial update; nil fields are left untouched
type UpdateRackRequest struct {
	RackNumber *string   `json:"rackNumber"`
	Floor      *string   `json:"floor"`
	Items      *[]string `json:"items"`
}

// listRacks returns racks grouped by floor, paginated over the sorted list
// of floors. Past the last floor the response is an empty object.
func (r *Router) listRacks(w http.ResponseWriter, req *http.Request) {
	page, limit, err := parseFloorPaging(req)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	// 1. All distinct floors in sorted order
	var floors []string
	if err := r.db.Model(&models.Rack{}).Distinct("floor").Order("floor").Pluck("floor", &floors).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to get racks")
		return
	}

	// 2. Page the floor list
	skip := (page - 1) * limit
	if skip >= len(floors) {
		// No more floors
		respondJSON(w, http.StatusOK, map[string][]models.Rack{})
		return
	}
	end := skip + limit
	if end > len(floors) {
		end = len(floors)
	}
	pageFloors := floors[skip:end]

	// 3. Racks for only those floors
	var racks []models.Rack
	if err := r.db.Where("floor IN ?", pageFloors).Order("floor, created_at").Find(&racks).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to get racks")
		return
	}

	// 4. Group them; every paged floor keeps its key even when a concurrent
	// delete just emptied it
	grouped := make(map[string][]models.Rack, len(pageFloors))
	for _, floor := range pageFloors {
		grouped[floor] = []models.Rack{}
	}
	for _, rack := range racks {
		grouped[rack.Floor] = append(grouped[rack.Floor], rack)
	}

	respondJSON(w, http.StatusOK, grouped)
}

// createRack creates a new rack
func (r *Router) createRack(w http.ResponseWriter, req *http.Request) {
	var body CreateRackRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if body.RackNumber == "" || body.Floor == "" {
		respondError(w, http.StatusUnprocessableEntity, "rackNumber and floor are required")
		return
	}

	rack := models.Rack{
		ID:         uuid.NewString(),
		RackNumber: body.RackNumber,
		Floor:      body.Floor,
		Items:      models.NormalizeItems(body.Items),
	}

	if err := r.db.Create(&rack).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create rack")
		return
	}

	r.hub.BroadcastEvent(websocket.Event{Type: websocket.EventRackCreated, Rack: &rack})

	// Existing clients expect 200 on create, not 201
	respondJSON(w, http.StatusOK, rack)
}

// findRack loads one rack by id. A malformed id cannot exist, so it reports
// not-found instead of tripping a type error on the uuid column.
func (r *Router) findRack(id string) (models.Rack, error) {
	var rack models.Rack
	if uuid.Validate(id) != nil {
		return rack, gorm.ErrRecordNotFound
	}
	err := r.db.First(&rack, "id = ?", id).Error
	return rack, err
}

// getRack returns a specific rack by ID
func (r *Router) getRack(w http.ResponseWriter, req *http.Request) {
	rack, err := r.findRack(mux.Vars(req)["id"])
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "Rack not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to get rack")
		return
	}

	respondJSON(w, http.StatusOK, rack)
}

// updateRack applies a partial update to a rack
func (r *Router) updateRack(w http.ResponseWriter, req *http.Request) {
	var body UpdateRackRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	rack, err := r.findRack(mux.Vars(req)["id"])
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "Rack not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to update rack")
		return
	}

	if body.RackNumber != nil {
		rack.RackNumber = *body.RackNumber
	}
	if body.Floor != nil {
		rack.Floor = *body.Floor
	}
	if body.Items != nil {
		rack.Items = models.NormalizeItems(*body.Items)
	}

	if err := r.db.Save(&rack).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update rack")
		return
	}

	r.hub.BroadcastEvent(websocket.Event{Type: websocket.EventRackUpdated, Rack: &rack})
	respondJSON(w, http.StatusOK, rack)
}

// deleteRack removes a rack
func (r *Router) deleteRack(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	if uuid.Validate(id) != nil {
		respondError(w, http.StatusNotFound, "Rack not found")
		return
	}

	result := r.db.Delete(&models.Rack{}, "id = ?", id)
	if result.Error != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete rack")
		return
	}
	if result.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "Rack not found")
		return
	}

	r.hub.BroadcastEvent(websocket.Event{Type: websocket.EventRackDeleted, RackID: id})
	respondJSON(w, http.StatusOK, map[string]string{"message": "Rack deleted successfully"})
}

// parseFloorPaging validates the page/limit query parameters for listRacks
func parseFloorPaging(req *http.Request) (page, limit int, err error) {
	page, err = queryInt(req, "page", 1)
	if err != nil || page < 1 {
		return 0, 0, fmt.Errorf("page must be a positive integer")
	}
	limit, err = queryInt(req, "limit", defaultFloorLimit)
	if err != nil || limit < 1 || limit > maxFloorLimit {
		return 0, 0, fmt.Errorf("limit must be between 1 and %d", maxFloorLimit)
	}
	return page, limit, nil
}

func queryInt(req *http.Request, key string, def int) (int, error) {
	raw := req.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
