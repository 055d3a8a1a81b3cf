package gemini

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"

	"github.com/huddle-ai/huddle-ai/pkg/ai"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"googleapi 401", &googleapi.Error{Code: 401, Message: "unauthorized"}, ai.ErrAuth},
		{"googleapi 403", &googleapi.Error{Code: 403, Message: "forbidden"}, ai.ErrAuth},
		{"googleapi 429 quota", &googleapi.Error{Code: 429, Message: "Quota exceeded for model"}, ai.ErrQuota},
		{"googleapi 429 plain", &googleapi.Error{Code: 429, Message: "resource exhausted"}, ai.ErrRateLimit},
		{"wrapped googleapi", fmt.Errorf("call failed: %w", &googleapi.Error{Code: 401}), ai.ErrAuth},
		{"api key string", errors.New("API key not valid. Please pass a valid API key."), ai.ErrAuth},
		{"api_key string", errors.New("missing API_KEY"), ai.ErrAuth},
		{"quota string", errors.New("you have exceeded your quota"), ai.ErrQuota},
		{"429 string", errors.New("got HTTP 429 from upstream"), ai.ErrRateLimit},
		{"anything else", errors.New("connection reset by peer"), ai.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyError(tt.err)
			assert.True(t, errors.Is(got, tt.want), "classified as %v", got)
		})
	}
}

func TestConvertParts(t *testing.T) {
	parts := convertParts([]ai.Part{
		ai.TextPart("describe this"),
		ai.BlobPart("image/jpeg", []byte{0xff, 0xd8}),
	})

	assert.Len(t, parts, 2)
}
