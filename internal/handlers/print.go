package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/NamanHarbola/Rack-Management/internal/models"
	"github.com/NamanHarbola/Rack-Management/internal/services/printer"
	"github.com/gorilla/mux"
	"github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

// LabelRequest selects the racks to print and the sheet layout.
// An empty rackIds list prints labels for every rack.
type LabelRequest struct {
	RackIDs []string `json:"rackIds"`
	printer.LabelConfig
}

// rackLabels handles the PDF generation request
func (r *Router) rackLabels(w http.ResponseWriter, req *http.Request) {
	var body LabelRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	query := r.db.Order("floor, rack_number")
	if len(body.RackIDs) > 0 {
		query = query.Where("id IN ?", body.RackIDs)
	}

	var racks []models.Rack
	if err := query.Find(&racks).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load racks")
		return
	}
	if len(racks) == 0 {
		respondError(w, http.StatusNotFound, "No racks to print")
		return
	}

	pdfBytes, err := printer.GenerateRackLabelsPDF(racks, body.LabelConfig)
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to generate PDF: %v", err))
		return
	}

	// Set headers for download
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="rack_labels.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(pdfBytes)))

	w.Write(pdfBytes)
}

// rackLabelPNG serves a single rack's QR code as a PNG, for on-screen
// display or quick reprints without a full sheet.
func (r *Router) rackLabelPNG(w http.ResponseWriter, req *http.Request) {
	rack, err := r.findRack(mux.Vars(req)["id"])
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "Rack not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to load rack")
		return
	}

	png, err := qrcode.Encode(printer.LabelPayload(rack.ID), qrcode.Low, 256)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate QR")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
