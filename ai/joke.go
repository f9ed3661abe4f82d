package ai

import (
	"context"
	"daily-pick/errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
)

// DefaultModel is the model the joke prompt was tuned for.
const DefaultModel = "gemini-1.5-flash"

const jokePrompt = "Ти відомий популярний стендап-комік. Напиши найкращий та найсмішніший жарт про %s. " +
	"Жарт має бути абсурдним, добродушним і не надто довгим."

// ContentGenerator is the part of *genai.GenerativeModel the joke generator needs.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type JokeGenerator struct {
	model ContentGenerator
	log   *slog.Logger
}

func NewJokeGenerator(model ContentGenerator, log *slog.Logger) *JokeGenerator {
	return &JokeGenerator{model: model, log: log}
}

// JokePrompt embeds name into the fixed prompt template.
func JokePrompt(name string) string {
	return fmt.Sprintf(jokePrompt, name)
}

// GenerateJoke sends a single prompt and returns the text of the first completion.
// Failures are returned as is; there is no retry and no fallback text.
func (j *JokeGenerator) GenerateJoke(ctx context.Context, name string) (string, error) {
	resp, err := j.model.GenerateContent(ctx, genai.Text(JokePrompt(name)))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	text := firstText(resp)
	if text == "" {
		return "", errors.ErrEmptyCompletion
	}
	j.log.Debug("Joke generated", "name", name, "length", len(text))
	return text, nil
}

// firstText concatenates the text parts of the first candidate that has any.
func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		var sb strings.Builder
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
		if s := strings.TrimSpace(sb.String()); s != "" {
			return s
		}
	}
	return ""
}
