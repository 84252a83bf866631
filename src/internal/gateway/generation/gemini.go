package generation

import (
	"context"

	"google.golang.org/genai"
)

const geminiModel = "gemini-2.5-flash"

// GeminiGenerator adapts the Gen AI SDK to the TextGenerator surface.
type GeminiGenerator struct {
	Client *genai.Client
}

func NewGeminiGenerator(ctx context.Context, apiKey string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiGenerator{Client: client}, nil
}

func (g *GeminiGenerator) GenerateText(ctx context.Context, prompt string, jsonOutput bool) (string, error) {
	var config *genai.GenerateContentConfig
	if jsonOutput {
		config = &genai.GenerateContentConfig{ResponseMIMEType: "application/json"}
	}
	resp, err := g.Client.Models.GenerateContent(ctx, geminiModel, genai.Text(prompt), config)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
