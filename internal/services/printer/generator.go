package printer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/NamanHarbola/Rack-Management/internal/models"
	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"
)

// labelScheme is the QR payload prefix. The digit is the payload version so
// scanners can keep accepting old stickers if the format ever changes.
const labelScheme = "MADAN$1$"

// LabelPayload builds the QR content for a rack label.
// Protocol: MADAN$1${rack-id}
func LabelPayload(rackID string) string {
	return labelScheme + rackID
}

// ParseLabelPayload extracts the rack id from a scanned QR payload.
func ParseLabelPayload(payload string) (string, error) {
	if !strings.HasPrefix(payload, labelScheme) {
		return "", fmt.Errorf("not a rack label: %q", payload)
	}
	id := strings.TrimPrefix(payload, labelScheme)
	if id == "" {
		return "", fmt.Errorf("rack label carries no id")
	}
	return id, nil
}

// LabelConfig holds configuration for PDF generation
type LabelConfig struct {
	Cols       int     `json:"cols"`
	Rows       int     `json:"rows"`
	MarginTop  float64 `json:"marginTop"`
	MarginLeft float64 `json:"marginLeft"`
	GapX       float64 `json:"gapX"`
	GapY       float64 `json:"gapY"`
}

// withDefaults fills unset grid values with a 3x8 sticker sheet layout.
func (cfg LabelConfig) withDefaults() LabelConfig {
	if cfg.Cols <= 0 {
		cfg.Cols = 3
	}
	if cfg.Rows <= 0 {
		cfg.Rows = 8
	}
	if cfg.MarginTop <= 0 {
		cfg.MarginTop = 10
	}
	if cfg.MarginLeft <= 0 {
		cfg.MarginLeft = 10
	}
	return cfg
}

// GenerateRackLabelsPDF renders one QR sticker per rack onto A4 sheets.
// Each label shows the rack number, its floor and a QR code that resolves
// back to the rack via the scan endpoint.
func GenerateRackLabelsPDF(racks []models.Rack, cfg LabelConfig) ([]byte, error) {
	cfg = cfg.withDefaults()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	// Default font
	pdf.SetFont("Arial", "B", 10)

	// A4 dimensions
	pageWidth, pageHeight := 210.0, 297.0

	totalGapX := float64(cfg.Cols-1) * cfg.GapX
	totalGapY := float64(cfg.Rows-1) * cfg.GapY

	// Available space, symmetric margins
	availW := pageWidth - (cfg.MarginLeft * 2)
	availH := pageHeight - (cfg.MarginTop * 2)

	labelW := (availW - totalGapX) / float64(cfg.Cols)
	labelH := (availH - totalGapY) / float64(cfg.Rows)

	labelsPerPage := cfg.Cols * cfg.Rows

	for i, rack := range racks {
		// New page logic
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		indexOnPage := i % labelsPerPage
		col := indexOnPage % cfg.Cols
		row := indexOnPage / cfg.Cols

		// Top-left of label
		x := cfg.MarginLeft + float64(col)*(labelW+cfg.GapX)
		y := cfg.MarginTop + float64(row)*(labelH+cfg.GapY)

		qrPng, err := qrcode.Encode(LabelPayload(rack.ID), qrcode.Low, 256)
		if err != nil {
			return nil, err
		}

		imgName := fmt.Sprintf("qr_%d", i)
		imgOptions := gofpdf.ImageOptions{
			ImageType: "PNG",
			ReadDpi:   true,
		}
		reader := bytes.NewReader(qrPng)
		_ = pdf.RegisterImageOptionsReader(imgName, imgOptions, reader)

		// Draw QR Code (centered, taking up 60% of label height)
		qrSize := labelH * 0.6
		if qrSize > labelW {
			qrSize = labelW * 0.9
		}

		qrX := x + (labelW-qrSize)/2
		qrY := y + (labelH-qrSize)/2 - 2 // Shift up slightly for text space

		pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, imgOptions, 0, "")

		// Rack number below the QR
		pdf.SetXY(x, y+labelH-9)
		pdf.SetFontSize(9)
		pdf.CellFormat(labelW, 4, rack.RackNumber, "", 0, "C", false, 0, "")

		// Floor at the bottom edge
		pdf.SetXY(x, y+labelH-5)
		pdf.SetFontSize(6)
		pdf.CellFormat(labelW, 3, rack.Floor, "", 0, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
