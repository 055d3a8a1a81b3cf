package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/samber/lo"
	"github.com/sashabaranov/go-openai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/huddle-ai/huddle-ai/pkg/ai"
)

const (
	NAME = "gemini"

	DEFAULT_MODEL = "gemini-2.5-flash"
)

type Driver struct {
	client *genai.Client
	model  string
}

func New(token, model string) *Driver {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(token))
	if err != nil {
		panic(err)
	}

	if model == "" {
		model = DEFAULT_MODEL
	}

	return &Driver{
		client: client,
		model:  model,
	}
}

// Generate replays the full history into a fresh chat session and sends the
// new turn, returning the model's single synchronous reply.
func (s *Driver) Generate(ctx context.Context, history []ai.Turn, turn ai.Turn) (ai.GenerateResponse, error) {
	var result ai.GenerateResponse

	model := s.client.GenerativeModel(s.model)
	cs := model.StartChat()
	cs.History = lo.Map(history, func(item ai.Turn, _ int) *genai.Content {
		return &genai.Content{
			Role:  item.Role,
			Parts: convertParts(item.Parts),
		}
	})

	slog.Debug("Generate", slog.String("driver", NAME), slog.String("model", s.model), slog.Int("history", len(history)))

	resp, err := cs.SendMessage(ctx, convertParts(turn.Parts)...)
	if err != nil {
		return result, classifyError(err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return result, fmt.Errorf("%w: empty response content", ai.ErrUnavailable)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason != genai.FinishReasonStop {
		slog.Warn("Generate, ai finished without stop", slog.String("reason", candidate.FinishReason.String()))
	}

	b := strings.Builder{}
	for _, part := range candidate.Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	result.Message = b.String()

	if resp.UsageMetadata != nil {
		result.Usage = &openai.Usage{
			PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(resp.UsageMetadata.TotalTokenCount),
		}
	}

	return result, nil
}

func convertParts(parts []ai.Part) []genai.Part {
	return lo.Map(parts, func(item ai.Part, _ int) genai.Part {
		if len(item.Data) > 0 {
			return genai.Blob{MIMEType: item.MIMEType, Data: item.Data}
		}
		return genai.Text(item.Text)
	})
}

// classifyError maps upstream failures onto the ai sentinel kinds so the
// caller can choose a user-facing message per cause.
func classifyError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %v", ai.ErrAuth, err)
		case http.StatusTooManyRequests:
			if strings.Contains(strings.ToLower(gerr.Message), "quota") {
				return fmt.Errorf("%w: %v", ai.ErrQuota, err)
			}
			return fmt.Errorf("%w: %v", ai.ErrRateLimit, err)
		}
	}

	lower := strings.ToLower(err.Error())
	switch {
	case strings.Contains(lower, "api key") || strings.Contains(lower, "api_key"):
		return fmt.Errorf("%w: %v", ai.ErrAuth, err)
	case strings.Contains(lower, "quota"):
		return fmt.Errorf("%w: %v", ai.ErrQuota, err)
	case strings.Contains(lower, "429"):
		return fmt.Errorf("%w: %v", ai.ErrRateLimit, err)
	}

	return fmt.Errorf("%w: %v", ai.ErrUnavailable, err)
}
