package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/NamanHarbola/Rack-Management/internal/models"
	"github.com/google/uuid"
)

// StatusCheckRequest is the payload for POST /api/status
type StatusCheckRequest struct {
	ClientName string `json:"client_name"`
}

// createStatusCheck records a client heartbeat
func (r *Router) createStatusCheck(w http.ResponseWriter, req *http.Request) {
	var body StatusCheckRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if body.ClientName == "" {
		respondError(w, http.StatusUnprocessableEntity, "client_name is required")
		return
	}

	check := models.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: body.ClientName,
		Timestamp:  time.Now().UTC(),
	}

	if err := r.db.Create(&check).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create status check")
		return
	}

	respondJSON(w, http.StatusOK, check)
}

// listStatusChecks returns recorded heartbeats, capped at 1000
func (r *Router) listStatusChecks(w http.ResponseWriter, req *http.Request) {
	var checks []models.StatusCheck
	if err := r.db.Limit(1000).Find(&checks).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load status checks")
		return
	}
	if checks == nil {
		checks = []models.StatusCheck{}
	}

	respondJSON(w, http.StatusOK, checks)
}
