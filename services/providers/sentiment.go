package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ao561/cues-hackathon/models"
	"github.com/ao561/cues-hackathon/services/chat"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// TranscriptSource supplies the recent chat window the extractor reads.
type TranscriptSource interface {
	Recent(ctx context.Context, limit int) ([]chat.WeightedMessage, error)
}

// GeminiSentimentProvider extracts food sentiment signals from the recent
// chat transcript with Gemini. The model only classifies; weighting and any
// decision-making stay in the planner.
type GeminiSentimentProvider struct {
	model      *genai.GenerativeModel
	transcript TranscriptSource
	limit      int
}

const sentimentSystemPrompt = `You are a food sentiment analyzer. Analyze chat messages to detect:
1. Food items or cuisines mentioned (sushi, pizza, italian, chinese, ...)
2. Each sender's sentiment toward each food

Sentiment categories:
- loved: very positive ("I would kill for", "obsessed with", "love")
- liked: positive ("like", "good", "enjoy")
- neutral: named without opinion
- dislike: negative ("not a fan", "meh")
- hated: very negative ("hate", "disgusting", "can't stand")

Return ONLY a JSON object in this exact format, nothing else:
{"signals":[{"participant":"Alice","food":"sushi","sentiment":"loved","mentions":2}]}

mentions is how many distinct messages from that participant mention the food.
If no food is mentioned, return {"signals":[]}.`

// NewGeminiSentimentProvider builds a sentiment extractor backed by Gemini.
func NewGeminiSentimentProvider(ctx context.Context, apiKey string, transcript TranscriptSource) (*GeminiSentimentProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	model := client.GenerativeModel("models/gemini-1.5-flash")
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(sentimentSystemPrompt)}}
	return &GeminiSentimentProvider{model: model, transcript: transcript, limit: 100}, nil
}

type sentimentResult struct {
	Signals []struct {
		Participant string `json:"participant"`
		Food        string `json:"food"`
		Sentiment   string `json:"sentiment"`
		Mentions    int    `json:"mentions"`
	} `json:"signals"`
}

func (p *GeminiSentimentProvider) Extract(ctx context.Context, participants []models.Participant) ([]models.SentimentSignal, error) {
	window, err := p.transcript.Recent(ctx, p.limit)
	if err != nil {
		return nil, NewProviderError(models.FailureUnavailable, err)
	}
	if len(window) == 0 {
		return nil, nil
	}

	names := make(map[string]string, len(participants))
	var nameList []string
	for _, part := range participants {
		names[strings.ToLower(part.Name)] = part.ID
		nameList = append(nameList, part.Name)
	}

	prompt := buildTranscriptPrompt(window, nameList)
	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, NewProviderError(models.FailureUnavailable, fmt.Errorf("gemini generate error: %w", err))
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, NewProviderError(models.FailureUnavailable, fmt.Errorf("gemini returned no candidates"))
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}

	var result sentimentResult
	if err := json.Unmarshal([]byte(stripCodeFence(sb.String())), &result); err != nil {
		return nil, NewProviderError(models.FailureUnavailable,
			fmt.Errorf("failed to parse sentiment analysis: %w", err))
	}

	var signals []models.SentimentSignal
	for _, s := range result.Signals {
		participantID, known := names[strings.ToLower(s.Participant)]
		if !known || s.Food == "" || !validSentiment(s.Sentiment) {
			continue
		}
		mentions := s.Mentions
		if mentions < 1 {
			mentions = 1
		}
		signals = append(signals, models.SentimentSignal{
			ParticipantID: participantID,
			Food:          strings.ToLower(s.Food),
			Sentiment:     s.Sentiment,
			Mentions:      mentions,
			Recency:       recencyOf(window, s.Food),
		})
	}
	return signals, nil
}

// buildTranscriptPrompt emphasizes recent messages the way the recency
// weighting scores them: high-weight messages first, older ones as background.
func buildTranscriptPrompt(window []chat.WeightedMessage, participants []string) string {
	const highWeight = 0.6

	var recent, older []string
	for _, msg := range window {
		line := fmt.Sprintf("%s: %s", msg.Sender, msg.Text)
		if msg.Weight >= highWeight {
			recent = append(recent, line)
		} else {
			older = append(older, line)
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Participants: %s\n\n", strings.Join(participants, ", "))
	if len(recent) > 0 {
		sb.WriteString("Recent conversation (high importance):\n")
		sb.WriteString(strings.Join(recent, "\n"))
	}
	if len(older) > 0 {
		if len(recent) > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString("Earlier messages (background context):\n")
		sb.WriteString(strings.Join(older, "\n"))
	}
	return sb.String()
}

// recencyOf is the highest recency weight among messages mentioning the food.
func recencyOf(window []chat.WeightedMessage, food string) float64 {
	needle := strings.ToLower(food)
	recency := 0.5
	for _, msg := range window {
		if strings.Contains(strings.ToLower(msg.Text), needle) && msg.Weight > recency {
			recency = msg.Weight
		}
	}
	return recency
}

func validSentiment(s string) bool {
	switch s {
	case models.SentimentLoved, models.SentimentLiked, models.SentimentNeutral,
		models.SentimentDislike, models.SentimentHated:
		return true
	}
	return false
}

// stripCodeFence removes a markdown code fence if the model wrapped its JSON.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}
