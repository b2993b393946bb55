package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/NamanHarbola/Rack-Management/internal/models"
	"github.com/NamanHarbola/Rack-Management/internal/utils"
)

// Reply is the structured answer the assistant returns to the UI.
type Reply struct {
	Answer string   `json:"answer"`
	Racks  []string `json:"racks,omitempty"`
}

// Assistant answers free-form inventory questions against the current racks.
type Assistant struct {
	client *GeminiClient
}

// NewAssistant wraps an initialized Gemini client.
func NewAssistant(client *GeminiClient) *Assistant {
	return &Assistant{client: client}
}

// Close releases the underlying client.
func (a *Assistant) Close() {
	if a.client != nil {
		a.client.Close()
	}
}

// Ask sends the question plus an inventory snapshot to the model and parses
// the structured reply. A model response that is not valid JSON is still
// returned verbatim as the answer rather than failing the request.
func (a *Assistant) Ask(ctx context.Context, question string, racks []models.Rack) (*Reply, error) {
	prompt, err := buildPrompt(question, racks)
	if err != nil {
		return nil, err
	}

	raw, err := a.client.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return parseReply(raw), nil
}

// snapshotRack is the trimmed rack view embedded in the prompt. IDs and
// timestamps are noise to the model and only inflate the context.
type snapshotRack struct {
	RackNumber string   `json:"rackNumber"`
	Floor      string   `json:"floor"`
	Items      []string `json:"items"`
}

func buildPrompt(question string, racks []models.Rack) (string, error) {
	snapshot := make([]snapshotRack, 0, len(racks))
	for _, r := range racks {
		snapshot = append(snapshot, snapshotRack{
			RackNumber: r.RackNumber,
			Floor:      r.Floor,
			Items:      r.Items,
		})
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("failed to encode inventory snapshot: %w", err)
	}

	var b strings.Builder
	b.WriteString(StoreAssistantPrompt)
	b.WriteString("\n### CURRENT INVENTORY\n")
	b.Write(data)
	b.WriteString("\n\n### QUESTION\n")
	b.WriteString(question)
	return b.String(), nil
}

func parseReply(raw string) *Reply {
	cleaned := utils.SanitizeJSON(raw)

	var reply Reply
	if err := json.Unmarshal([]byte(cleaned), &reply); err == nil && reply.Answer != "" {
		return &reply
	}

	// Model ignored the format; hand the text through as-is
	return &Reply{Answer: strings.TrimSpace(raw)}
}
