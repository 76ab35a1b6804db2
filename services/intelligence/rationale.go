package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/ao561/cues-hackathon/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// RationaleService rewrites an already-decided recommendation's rationale as
// one friendly paragraph. The decision itself is final before this runs; a
// phrasing failure costs nothing but the nicer wording.
type RationaleService struct {
	model *genai.GenerativeModel
}

const rationaleSystemPrompt = `You summarize a meetup plan for a group chat.
You will receive the chosen venue, the time window, and the reasons behind
the choice. Write ONE short friendly paragraph (2-3 sentences) explaining the
plan. If the plan is infeasible, explain gently why no plan worked.
Do not invent facts. Do not use markdown.`

// NewRationaleService builds a Gemini-backed phrasing service.
func NewRationaleService(ctx context.Context, apiKey string) (*RationaleService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	model := client.GenerativeModel("models/gemini-1.5-flash")
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(rationaleSystemPrompt)}}
	return &RationaleService{model: model}, nil
}

func (s *RationaleService) Summarize(ctx context.Context, rec *models.Recommendation) (string, error) {
	resp, err := s.model.GenerateContent(ctx, genai.Text(describePlan(rec)))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	summary := strings.TrimSpace(sb.String())
	if summary == "" {
		return "", fmt.Errorf("gemini returned an empty summary")
	}
	return summary, nil
}

// describePlan flattens the decision into the prompt. Only facts already in
// the recommendation go in.
func describePlan(rec *models.Recommendation) string {
	var sb strings.Builder
	if rec.Infeasible {
		fmt.Fprintf(&sb, "No plan was possible. Reason: %s\n", rec.Reason)
	} else {
		fmt.Fprintf(&sb, "Chosen venue: %s (%s)\n", rec.Venue.Name, rec.Venue.Address)
		fmt.Fprintf(&sb, "Time: %s to %s\n",
			rec.Window.Start.Format("Mon 15:04"), rec.Window.End.Format("15:04"))
	}
	if len(rec.Rationale.Satisfied) > 0 {
		fmt.Fprintf(&sb, "Why it works: %s\n", strings.Join(rec.Rationale.Satisfied, "; "))
	}
	if len(rec.Rationale.Notes) > 0 {
		fmt.Fprintf(&sb, "Notes: %s\n", strings.Join(rec.Rationale.Notes, "; "))
	}
	fmt.Fprintf(&sb, "Confidence: %.0f%%\n", rec.Confidence*100)
	return sb.String()
}
