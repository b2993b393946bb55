package ai

import (
	"strings"
	"testing"

	"github.com/NamanHarbola/Rack-Management/internal/models"
)

func TestParseReply(t *testing.T) {
	// Well-formed JSON, possibly wrapped in a Markdown fence
	raw := "```json\n{\"answer\": \"Cables are on rack R-001, Ground Floor.\", \"racks\": [\"R-001\"]}\n```"

	reply := parseReply(raw)
	if reply.Answer != "Cables are on rack R-001, Ground Floor." {
		t.Errorf("Answer = %q, want parsed JSON answer", reply.Answer)
	}
	if len(reply.Racks) != 1 || reply.Racks[0] != "R-001" {
		t.Errorf("Racks = %v, want [R-001]", reply.Racks)
	}
}

func TestParseReplyFallsBackToPlainText(t *testing.T) {
	raw := "  The cables are on the ground floor.  "

	reply := parseReply(raw)
	if reply.Answer != "The cables are on the ground floor." {
		t.Errorf("Answer = %q, want trimmed raw text", reply.Answer)
	}
	if reply.Racks != nil {
		t.Errorf("Racks = %v, want none for plain text reply", reply.Racks)
	}
}

func TestBuildPromptEmbedsInventory(t *testing.T) {
	racks := []models.Rack{
		{ID: "id-1", RackNumber: "R-001", Floor: "Ground Floor", Items: []string{"Cables", "Fan"}},
	}

	prompt, err := buildPrompt("Where are the cables?", racks)
	if err != nil {
		t.Fatalf("Failed to build prompt: %v", err)
	}

	if !strings.Contains(prompt, `"rackNumber":"R-001"`) {
		t.Error("Prompt is missing the rack snapshot")
	}
	if strings.Contains(prompt, "id-1") {
		t.Error("Prompt should not leak internal rack ids")
	}
	if !strings.Contains(prompt, "Where are the cables?") {
		t.Error("Prompt is missing the question")
	}
}
