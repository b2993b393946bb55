package printer

import (
	"strings"
	"testing"

	"github.com/NamanHarbola/Rack-Management/internal/models"
)

func TestLabelPayloadRoundTrip(t *testing.T) {
	rackID := "bc7de1a2-5a44-4b7e-9a63-7a0a5be2f0a9"

	payload := LabelPayload(rackID)
	if payload != "MADAN$1$"+rackID {
		t.Errorf("LabelPayload = %q, want MADAN$1$ prefix", payload)
	}

	got, err := ParseLabelPayload(payload)
	if err != nil {
		t.Fatalf("Failed to parse payload: %v", err)
	}
	if got != rackID {
		t.Errorf("Parsed id = %q, want %q", got, rackID)
	}
}

func TestParseLabelPayloadRejectsForeignCodes(t *testing.T) {
	testCases := []string{
		"",
		"MADAN$1$",            // no id
		"https://example.com", // arbitrary URL
		"R-001",               // bare rack number is not a label
		"madan$1$abc",         // scheme is case-sensitive
	}

	for _, payload := range testCases {
		if _, err := ParseLabelPayload(payload); err == nil {
			t.Errorf("ParseLabelPayload(%q) succeeded, want error", payload)
		}
	}
}

func TestGenerateRackLabelsPDF(t *testing.T) {
	racks := []models.Rack{
		{ID: "a1", RackNumber: "R-001", Floor: "Ground Floor"},
		{ID: "a2", RackNumber: "R-002", Floor: "First Floor"},
	}

	pdf, err := GenerateRackLabelsPDF(racks, LabelConfig{})
	if err != nil {
		t.Fatalf("Failed to generate PDF: %v", err)
	}

	if len(pdf) == 0 {
		t.Fatal("Generated PDF is empty")
	}
	if !strings.HasPrefix(string(pdf[:5]), "%PDF-") {
		t.Errorf("Output does not look like a PDF: %q", pdf[:5])
	}
}
