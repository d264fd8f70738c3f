package service

import (
	"context"
	"errors"

	"adaptive_learning_backend/internal/config"

	"google.golang.org/genai"
)

// GeminiResponder 通过 Gemini API 生成回复
type GeminiResponder struct {
	client *genai.Client
	model  string
}

func NewGeminiResponder(ctx context.Context, cfg config.ChatConfig) (*GeminiResponder, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("chat API key not configured")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	return &GeminiResponder{client: client, model: cfg.Model}, nil
}

func (r *GeminiResponder) Reply(ctx context.Context, history []ChatTurn, query string) (string, error) {
	contents := make([]*genai.Content, 0, len(history)+1)

	for _, turn := range history {
		role := "user"
		if turn.Role == "model" {
			role = "model"
		}
		parts := make([]*genai.Part, 0, len(turn.Parts))
		for _, p := range turn.Parts {
			parts = append(parts, &genai.Part{Text: p.Text})
		}
		contents = append(contents, &genai.Content{Role: role, Parts: parts})
	}

	contents = append(contents, &genai.Content{
		Role:  "user",
		Parts: []*genai.Part{{Text: query}},
	})

	result, err := r.client.Models.GenerateContent(ctx, r.model, contents, nil)
	if err != nil {
		return "", err
	}

	text := result.Text()
	if text == "" {
		return "", errors.New("model returned empty response")
	}
	return text, nil
}
