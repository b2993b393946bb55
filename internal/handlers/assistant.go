package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/NamanHarbola/Rack-Management/internal/models"
)

// AssistantRequest carries a free-form inventory question
type AssistantRequest struct {
	Question string `json:"question"`
}

// askAssistant answers inventory questions against the current racks using
// the configured Gemini model.
func (r *Router) askAssistant(w http.ResponseWriter, req *http.Request) {
	if r.assistant == nil {
		respondError(w, http.StatusServiceUnavailable, "Assistant is not configured")
		return
	}

	var body AssistantRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	question := strings.TrimSpace(body.Question)
	if question == "" {
		respondError(w, http.StatusUnprocessableEntity, "question must not be empty")
		return
	}

	var racks []models.Rack
	if err := r.db.Order("floor, rack_number").Limit(1000).Find(&racks).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load racks")
		return
	}

	reply, err := r.assistant.Ask(req.Context(), question, racks)
	if err != nil {
		respondError(w, http.StatusBadGateway, "Assistant request failed")
		return
	}

	respondJSON(w, http.StatusOK, reply)
}
