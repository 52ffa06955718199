// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/cashcoach/backend/internal/domain/entity"
)

// GeminiService implements the NarrativeService using Google Gemini. It
// writes a short coaching summary over the already-computed report; the
// report numbers are produced by the analysis engine and never by the model.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey, modelName string) *GeminiService {
	if modelName == "" {
		modelName = "gemini-2.5-flash-lite"
	}
	return &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Summarize generates a narrative summary of the coaching report.
func (s *GeminiService) Summarize(ctx context.Context, userName string, report *entity.CoachingReport) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.7)

	prompt := s.buildPrompt(userName, report)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	narrative, err := s.parseResponse(resp)
	if err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	return narrative, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(userName string, report *entity.CoachingReport) string {
	var sb strings.Builder

	sb.WriteString(`You are a friendly personal finance coach. Write a short summary (at most 150 words) of the user's financial report below. Be encouraging but honest, address the user by their first name, and mention at most three concrete points. Plain text only, no markdown, no lists.

`)
	sb.WriteString(fmt.Sprintf("USER: %s\n\nSPENDING PATTERNS (current month):\n", userName))

	if len(report.Patterns) == 0 {
		sb.WriteString("(no spending recorded)\n")
	}
	for _, p := range report.Patterns {
		sb.WriteString(fmt.Sprintf("- %s: $%s (%d%% of spending, trend %s, last month $%s)\n",
			p.Category, p.Amount.StringFixed(2), p.Percentage, p.Trend, p.LastMonth.StringFixed(2)))
	}

	sb.WriteString("\nRECOMMENDATIONS:\n")
	for _, r := range report.Recommendations {
		sb.WriteString(fmt.Sprintf("- [%s/%s] %s: %s\n", r.Type, r.Impact, r.Title, r.Description))
	}

	sb.WriteString("\nINSIGHTS:\n")
	for _, in := range report.Insights {
		sb.WriteString(fmt.Sprintf("- [%s] %s: %s\n", in.Type, in.Title, in.Description))
	}

	sb.WriteString("\nGOALS:\n")
	for _, g := range report.Goals {
		sb.WriteString(fmt.Sprintf("- %s: $%s of $%s (%s)\n",
			g.Title, g.Current.StringFixed(2), g.Target.StringFixed(2), g.Status))
	}

	return sb.String()
}

// parseResponse extracts the narrative text from the Gemini response.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	textContent = strings.TrimSpace(textContent)
	if textContent == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return textContent, nil
}
