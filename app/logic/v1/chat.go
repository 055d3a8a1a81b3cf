package v1

import (
	"context"
	"database/sql"
	"encoding/base64"
	stderrors "errors"
	"net/http"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/huddle-ai/huddle-ai/app/core"
	"github.com/huddle-ai/huddle-ai/pkg/ai"
	"github.com/huddle-ai/huddle-ai/pkg/errors"
	"github.com/huddle-ai/huddle-ai/pkg/i18n"
	"github.com/huddle-ai/huddle-ai/pkg/types"
	"github.com/huddle-ai/huddle-ai/pkg/utils"
)

// TITLE_WORD_LIMIT caps auto-derived chat titles at the first words of the
// opening user message.
const TITLE_WORD_LIMIT = 5

type ChatLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewChatLogic(ctx context.Context, core *core.Core) *ChatLogic {
	return &ChatLogic{
		ctx:  ctx,
		core: core,
	}
}

type CreateChatResult struct {
	ChatID    int64  `json:"chat_id"`
	SessionID int64  `json:"session_id"`
	GroupName string `json:"group_name"`
}

func (l *ChatLogic) CreateChat(sessionID int64) (*CreateChatResult, error) {
	session, err := l.core.Store().GroupSessionStore().Get(l.ctx, sessionID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New("ChatLogic.CreateChat.GroupSessionStore.Get.nil", i18n.ERROR_SESSION_NOT_FOUND, nil).Code(http.StatusNotFound)
		}
		return nil, errors.New("ChatLogic.CreateChat.GroupSessionStore.Get", i18n.ERROR_INTERNAL, err)
	}

	chat := types.Chat{
		ID:               utils.GenSpecID(),
		SessionID:        sessionID,
		Title:            types.DEFAULT_CHAT_TITLE,
		LatestAccessTime: time.Now().Unix(),
	}
	if err = l.core.Store().ChatStore().Create(l.ctx, chat); err != nil {
		return nil, errors.New("ChatLogic.CreateChat.ChatStore.Create", i18n.ERROR_INTERNAL, err)
	}

	return &CreateChatResult{
		ChatID:    chat.ID,
		SessionID: sessionID,
		GroupName: session.GroupName,
	}, nil
}

func (l *ChatLogic) ListChats(sessionID int64) ([]types.Chat, error) {
	list, err := l.core.Store().ChatStore().ListBySession(l.ctx, sessionID)
	if err != nil {
		return nil, errors.New("ChatLogic.ListChats.ChatStore.ListBySession", i18n.ERROR_INTERNAL, err)
	}
	return list, nil
}

type MessageDetail struct {
	Sender   string `json:"sender"`
	Text     string `json:"text"`
	SendTime int64  `json:"timestamp"`
}

type ChatDetail struct {
	Messages []MessageDetail `json:"messages"`
	Title    string          `json:"title"`
}

// ListMessages returns the chat history in chronological order. A missing
// chat yields an empty history with the placeholder title instead of an
// error.
func (l *ChatLogic) ListMessages(chatID int64) (*ChatDetail, error) {
	list, err := l.core.Store().ChatMessageStore().ListByChat(l.ctx, chatID)
	if err != nil {
		return nil, errors.New("ChatLogic.ListMessages.ChatMessageStore.ListByChat", i18n.ERROR_INTERNAL, err)
	}

	title := types.DEFAULT_CHAT_TITLE
	chat, err := l.core.Store().ChatStore().Get(l.ctx, chatID)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("ChatLogic.ListMessages.ChatStore.Get", i18n.ERROR_INTERNAL, err)
	}
	if chat != nil && err == nil {
		title = chat.Title
	}

	return &ChatDetail{
		Messages: lo.Map(list, func(item types.ChatMessage, _ int) MessageDetail {
			return MessageDetail{
				Sender:   item.Sender,
				Text:     item.Content,
				SendTime: item.SendTime,
			}
		}),
		Title: title,
	}, nil
}

type PollResult struct {
	HasNew      bool            `json:"has_new_messages"`
	CurrentTime int64           `json:"current_time"`
	NewMessages []MessageDetail `json:"new_messages"`
}

// PollMessages returns messages strictly newer than the caller's watermark
// plus the advanced watermark. Pure read; callers re-poll on an interval.
func (l *ChatLogic) PollMessages(chatID, lastCheck int64) (*PollResult, error) {
	list, err := l.core.Store().ChatMessageStore().ListAfter(l.ctx, chatID, lastCheck)
	if err != nil {
		return nil, errors.New("ChatLogic.PollMessages.ChatMessageStore.ListAfter", i18n.ERROR_INTERNAL, err)
	}

	watermark := lastCheck
	for _, item := range list {
		if item.SendTime > watermark {
			watermark = item.SendTime
		}
	}

	return &PollResult{
		HasNew:      len(list) > 0,
		CurrentTime: watermark,
		NewMessages: lo.Map(list, func(item types.ChatMessage, _ int) MessageDetail {
			return MessageDetail{
				Sender:   item.Sender,
				Text:     item.Content,
				SendTime: item.SendTime,
			}
		}),
	}, nil
}

type SendMessageArgs struct {
	ChatID    int64
	Message   string
	ImageData string
	MimeType  string
}

// SendMessage replays the chat's history to the model together with the new
// turn and persists the exchange. Validation happens before the model call;
// the model call happens before any write; a write failure after a
// successful reply is reported distinctly because the answer was already
// produced but may not be durable.
func (l *ChatLogic) SendMessage(args SendMessageArgs) (string, error) {
	if _, err := l.core.Store().ChatStore().Get(l.ctx, args.ChatID); err != nil {
		if err == sql.ErrNoRows {
			return "", errors.New("ChatLogic.SendMessage.ChatStore.Get.nil", i18n.ERROR_CHAT_NOT_FOUND, nil).Code(http.StatusNotFound)
		}
		return "", errors.New("ChatLogic.SendMessage.ChatStore.Get", i18n.ERROR_INTERNAL, err)
	}

	history, err := l.core.Store().ChatMessageStore().ListByChat(l.ctx, args.ChatID)
	if err != nil {
		return "", errors.New("ChatLogic.SendMessage.ChatMessageStore.ListByChat", i18n.ERROR_INTERNAL, err)
	}

	historyTurns := lo.Map(history, func(item types.ChatMessage, _ int) ai.Turn {
		role := ai.ROLE_MODEL
		if item.Sender == types.USER_SENDER {
			role = ai.ROLE_USER
		}
		return ai.Turn{
			Role:  role,
			Parts: []ai.Part{ai.TextPart(strings.TrimSpace(item.Content))},
		}
	})

	parts, err := buildTurnParts(args)
	if err != nil {
		return "", errors.Trace("ChatLogic.SendMessage", err)
	}

	ctx, cancel := context.WithTimeout(l.ctx, l.core.Cfg().AI.Gemini.Timeout())
	defer cancel()

	timer := l.core.Metrics().ModelRequestTimer(l.core.Cfg().AI.Gemini.Model)
	resp, err := l.core.AI().Generate(ctx, historyTurns, ai.Turn{Role: ai.ROLE_USER, Parts: parts})
	timer.ObserveDuration()
	if err != nil {
		return "", l.classifyModelError(err)
	}

	userText := strings.TrimSpace(args.Message)
	if userText == "" {
		userText = types.IMAGE_SENT_PLACEHOLDER
	}

	err = l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		if err := l.core.Store().ChatMessageStore().Create(ctx, types.ChatMessage{
			ID:       utils.GenSpecID(),
			ChatID:   args.ChatID,
			Sender:   types.USER_SENDER,
			Content:  userText,
			SendTime: time.Now().Unix(),
		}); err != nil {
			return err
		}

		if err := l.core.Store().ChatMessageStore().Create(ctx, types.ChatMessage{
			ID:       utils.GenSpecID(),
			ChatID:   args.ChatID,
			Sender:   types.ASSISTANT_SENDER,
			Content:  strings.TrimSpace(resp.Message),
			SendTime: time.Now().Unix(),
		}); err != nil {
			return err
		}

		if len(history) == 0 {
			return l.core.Store().ChatStore().UpdateTitle(ctx, args.ChatID, deriveChatTitle(args.Message), time.Now().Unix())
		}
		return l.core.Store().ChatStore().UpdateLatestAccessTime(ctx, args.ChatID, time.Now().Unix())
	})
	if err != nil {
		// The reply was produced but is not durable; callers must be able to
		// tell this apart from a model failure.
		return "", errors.New("ChatLogic.SendMessage.Transaction", i18n.ERROR_REPLY_UNSAVED, err)
	}

	return resp.Message, nil
}

func (l *ChatLogic) classifyModelError(err error) error {
	kind := i18n.ERROR_AI_UNAVAILABLE
	metricKind := "unavailable"
	switch {
	case stderrors.Is(err, ai.ErrAuth):
		kind = i18n.ERROR_AI_AUTH
		metricKind = "auth"
	case stderrors.Is(err, ai.ErrQuota):
		kind = i18n.ERROR_AI_QUOTA
		metricKind = "quota"
	case stderrors.Is(err, ai.ErrRateLimit):
		kind = i18n.ERROR_AI_RATE_LIMIT
		metricKind = "ratelimit"
	}
	l.core.Metrics().ModelErrorInc(metricKind)
	return errors.New("ChatLogic.SendMessage.AI.Generate", kind, err)
}

// buildTurnParts validates and assembles the new turn's content. Image data
// is decoded here so a bad payload fails before the model is ever called.
func buildTurnParts(args SendMessageArgs) ([]ai.Part, error) {
	var parts []ai.Part
	if args.ImageData != "" && args.MimeType != "" {
		raw, err := base64.StdEncoding.DecodeString(args.ImageData)
		if err != nil {
			return nil, errors.New("buildTurnParts.base64.DecodeString", i18n.ERROR_INVALID_IMAGE, err).Code(http.StatusBadRequest)
		}
		parts = append(parts, ai.BlobPart(args.MimeType, raw))
	}
	if args.Message != "" {
		parts = append(parts, ai.TextPart(args.Message))
	}
	if len(parts) == 0 {
		return nil, errors.New("buildTurnParts.empty", i18n.ERROR_EMPTY_MESSAGE, nil).Code(http.StatusBadRequest)
	}
	return parts, nil
}

// deriveChatTitle builds a chat title from the first words of the opening
// user message, newlines collapsed, with a trailing ellipsis.
func deriveChatTitle(message string) string {
	if strings.TrimSpace(message) == "" {
		message = types.IMAGE_QUERY_TITLE_SEED
	}

	words := strings.Fields(message)
	if len(words) > TITLE_WORD_LIMIT {
		words = words[:TITLE_WORD_LIMIT]
	}
	return strings.Join(words, " ") + "..."
}
