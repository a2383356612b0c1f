// File: services/intelligence/geminiClient.go
package intelligence

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Generator abstracts the two generative calls the cascade makes so tests
// can substitute failing fakes.
type Generator interface {
	GenerateWithHistory(ctx context.Context, history []Exchange, prompt string) (string, error)
	GenerateOnce(ctx context.Context, prompt string) (string, error)
}

// GeminiClient holds the primary (pro, multi-turn, larger token budget) and
// secondary (flash, single-shot) models.
type GeminiClient struct {
	pro   *genai.GenerativeModel
	flash *genai.GenerativeModel
}

func NewGeminiClient(apiKey string) (*GeminiClient, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	pro := client.GenerativeModel("models/gemini-1.5-pro")
	pro.SetMaxOutputTokens(1024)
	flash := client.GenerativeModel("models/gemini-1.5-flash")
	flash.SetMaxOutputTokens(256)

	return &GeminiClient{pro: pro, flash: flash}, nil
}

// GenerateWithHistory runs the primary model as a chat session seeded with
// the recent conversation.
func (g *GeminiClient) GenerateWithHistory(ctx context.Context, history []Exchange, prompt string) (string, error) {
	cs := g.pro.StartChat()
	for _, ex := range history {
		cs.History = append(cs.History,
			&genai.Content{Role: "user", Parts: []genai.Part{genai.Text(ex.User)}},
			&genai.Content{Role: "model", Parts: []genai.Part{genai.Text(ex.Assistant)}},
		)
	}
	resp, err := cs.SendMessage(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini chat error: %w", err)
	}
	return flattenResponse(resp)
}

// GenerateOnce runs the secondary model without any chat context.
func (g *GeminiClient) GenerateOnce(ctx context.Context, prompt string) (string, error) {
	resp, err := g.flash.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	return flattenResponse(resp)
}

func flattenResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("gemini returned an empty reply")
	}
	return sb.String(), nil
}
