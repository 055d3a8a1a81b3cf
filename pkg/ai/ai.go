package ai

import (
	"context"
	"errors"

	"github.com/sashabaranov/go-openai"
)

const (
	ROLE_USER  = "user"
	ROLE_MODEL = "model"
)

// Part is one piece of a turn's content: plain text, or inline binary data
// with its MIME type. Exactly one of the two is set.
type Part struct {
	Text     string
	Data     []byte
	MIMEType string
}

func TextPart(text string) Part {
	return Part{Text: text}
}

func BlobPart(mimeType string, data []byte) Part {
	return Part{MIMEType: mimeType, Data: data}
}

// Turn is one exchange unit of a conversation.
type Turn struct {
	Role  string
	Parts []Part
}

type GenerateResponse struct {
	Message string
	Usage   *openai.Usage
}

// ChatProvider is the external model capability: the full prior history plus
// the new turn go in, one synchronous reply comes out. The provider keeps no
// state between calls, which keeps the logic layer testable with a fake.
type ChatProvider interface {
	Generate(ctx context.Context, history []Turn, turn Turn) (GenerateResponse, error)
}

// Failure kinds surfaced by drivers. Callers match with errors.Is to pick a
// user-facing message per cause.
var (
	ErrAuth        = errors.New("model authentication failed")
	ErrQuota       = errors.New("model quota exhausted")
	ErrRateLimit   = errors.New("model rate limited")
	ErrUnavailable = errors.New("model unavailable")
)
