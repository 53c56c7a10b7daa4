package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-2.0-flash"

// GeminiProvider implements CompletionProvider using Google's Gemini models.
type GeminiProvider struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	persona string
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey, persona string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(geminiModel)
	model.SetTemperature(0.7)

	return &GeminiProvider{
		client:  client,
		model:   model,
		persona: persona,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// Complete answers a general inquiry in the business persona.
func (p *GeminiProvider) Complete(ctx context.Context, userMessage, bookingContext string) (string, error) {
	if strings.TrimSpace(userMessage) == "" {
		return "", fmt.Errorf("gemini: empty message")
	}

	fullPrompt := fmt.Sprintf("%s\n\nCustomer Message: %s", buildSystemPrompt(p.persona, bookingContext), userMessage)

	resp, err := p.model.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response candidates from Gemini")
	}

	var reply strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			reply.WriteString(string(txt))
		}
	}
	if strings.TrimSpace(reply.String()) == "" {
		return "", fmt.Errorf("gemini: API returned empty text parts")
	}

	return strings.TrimSpace(reply.String()), nil
}

// buildSystemPrompt constructs the instructions for the AI.
func buildSystemPrompt(persona, bookingContext string) string {
	prompt := fmt.Sprintf(`Role: You are %s.
Answer customer questions about the business (hours, menu, rooms, policies) politely and concisely.
Do not invent booking confirmations; bookings are handled by a separate system.
Keep replies short and conversational, plain text only.`, persona)

	if bookingContext != "" {
		prompt += fmt.Sprintf("\n\nCurrent bookings for reference:\n%s", bookingContext)
	}
	return prompt
}
