// Package narrative turns a computed regulation report into a short
// human-readable headline and summary. Generation is best effort: when
// no API key is configured or the model call fails, callers fall back
// to the fixed per-band text.
package narrative

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/mviana/trainflow/internal/logger"
	"github.com/mviana/trainflow/internal/models"
)

const (
	DefaultModel   = openai.GPT4oMini
	requestTimeout = 15 * time.Second
	maxRetries     = 2
	baseRetryDelay = 500 * time.Millisecond
	temperature    = 0.4
)

// Narrative is the generated text pair attached to a regulation report.
type Narrative struct {
	Headline string `json:"headline"`
	Summary  string `json:"summary"`
}

// chatClient is the subset of the OpenAI client the generator needs,
// extracted so tests can stub it.
type chatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Generator produces report narratives via the OpenAI chat API.
type Generator struct {
	client chatClient
	model  string
}

// New creates a Generator. Returns nil when apiKey is empty; callers
// treat a nil Generator as "fallback text only".
func New(apiKey, model string) *Generator {
	if apiKey == "" {
		return nil
	}
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: openai.NewClient(apiKey), model: model}
}

const systemPrompt = `You are a coach's assistant writing a one-day readiness note for a youth athlete's parent.
Given component scores (0-100) and an overall band (green, yellow, red), write:
1. headline: one short sentence, plain and encouraging, no exclamation marks
2. summary: two to three sentences naming the strongest and weakest components and what to watch today

Return ONLY a JSON object with fields "headline" and "summary". No additional text.`

// Generate writes a narrative for the given report. The report's
// Headline and Summary fields are ignored; only scores and band feed
// the prompt.
func (g *Generator) Generate(ctx context.Context, report models.RegulationReport) (Narrative, error) {
	log := logger.FromContext(ctx).WithPrefix("narrative")

	payload, err := json.Marshal(struct {
		Scores    models.ComponentScores `json:"scores"`
		Composite int                    `json:"composite"`
		Band      models.Band            `json:"band"`
	}{report.Scores, report.Composite, report.Band})
	if err != nil {
		return Narrative{}, err
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(baseRetryDelay * time.Duration(attempt))
		}

		reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
		resp, err := g.client.CreateChatCompletion(reqCtx, openai.ChatCompletionRequest{
			Model: g.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: string(payload),
				},
			},
			Temperature: temperature,
		})
		cancel()

		if err != nil {
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			continue
		}
		if len(resp.Choices) == 0 {
			lastErr = fmt.Errorf("attempt %d: no completion choices returned", attempt+1)
			continue
		}

		var n Narrative
		if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &n); err != nil {
			lastErr = fmt.Errorf("attempt %d: failed to parse response: %w", attempt+1, err)
			continue
		}
		if n.Headline == "" {
			lastErr = fmt.Errorf("attempt %d: empty headline", attempt+1)
			continue
		}
		return n, nil
	}

	log.Warn("narrative generation failed after %d attempts: %v", maxRetries+1, lastErr)
	return Narrative{}, lastErr
}

// FallbackFor returns the fixed narrative used when generation is
// unavailable. Deterministic per band.
func FallbackFor(band models.Band) Narrative {
	switch band {
	case models.BandGreen:
		return Narrative{
			Headline: "Ready for a normal training day",
			Summary:  "Today's check-ins look solid across the board. Train as planned and keep the usual warm-up.",
		}
	case models.BandYellow:
		return Narrative{
			Headline: "Train, but keep an eye on recovery",
			Summary:  "A few readiness signals are below their usual range. A full session is fine, but favor quality over volume and watch how the day feels.",
		}
	default:
		return Narrative{
			Headline: "Take it easy today",
			Summary:  "Several readiness signals are low. Treat today as a light movement or recovery day rather than a full session.",
		}
	}
}
