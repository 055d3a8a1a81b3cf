package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/huddle-ai/huddle-ai/app/logic/v1"
	"github.com/huddle-ai/huddle-ai/app/response"
	"github.com/huddle-ai/huddle-ai/pkg/types"
	"github.com/huddle-ai/huddle-ai/pkg/utils"
)

type CreateChatRequest struct {
	SessionID int64 `json:"session_id" form:"session_id" binding:"required"`
}

func (s *HttpSrv) CreateChat(c *gin.Context) {
	var (
		err error
		req CreateChatRequest
	)

	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	result, err := v1.NewChatLogic(c, s.Core).CreateChat(req.SessionID)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, result)
}

type ListChatsResponse struct {
	List []types.Chat `json:"list"`
}

func (s *HttpSrv) ListChats(c *gin.Context) {
	sessionID, err := paramID(c, "session")
	if err != nil {
		response.APIError(c, err)
		return
	}

	list, err := v1.NewChatLogic(c, s.Core).ListChats(sessionID)
	if err != nil {
		response.APIErrorWithData(c, err, ListChatsResponse{
			List: []types.Chat{},
		})
		return
	}

	response.APISuccess(c, ListChatsResponse{
		List: list,
	})
}

func (s *HttpSrv) ListMessages(c *gin.Context) {
	chatID, err := paramID(c, "chat")
	if err != nil {
		response.APIError(c, err)
		return
	}

	detail, err := v1.NewChatLogic(c, s.Core).ListMessages(chatID)
	if err != nil {
		// Read paths degrade: hand the client an empty history it can render.
		response.APIErrorWithData(c, err, &v1.ChatDetail{
			Messages: []v1.MessageDetail{},
			Title:    types.DEFAULT_CHAT_TITLE,
		})
		return
	}

	response.APISuccess(c, detail)
}

type PollMessagesRequest struct {
	LastCheck int64 `json:"last_check" form:"last_check"`
}

func (s *HttpSrv) PollMessages(c *gin.Context) {
	chatID, err := paramID(c, "chat")
	if err != nil {
		response.APIError(c, err)
		return
	}

	var req PollMessagesRequest
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	result, err := v1.NewChatLogic(c, s.Core).PollMessages(chatID, req.LastCheck)
	if err != nil {
		// Pollers keep their watermark and just try again next tick.
		response.APIErrorWithData(c, err, &v1.PollResult{
			CurrentTime: req.LastCheck,
			NewMessages: []v1.MessageDetail{},
		})
		return
	}

	response.APISuccess(c, result)
}

type SendMessageRequest struct {
	Message   string `json:"message" form:"message"`
	ImageData string `json:"image_data" form:"image_data"`
	MimeType  string `json:"mime_type" form:"mime_type"`
}

type SendMessageResponse struct {
	Response string `json:"response"`
}

func (s *HttpSrv) SendMessage(c *gin.Context) {
	chatID, err := paramID(c, "chat")
	if err != nil {
		response.APIError(c, err)
		return
	}

	var req SendMessageRequest
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	reply, err := v1.NewChatLogic(c, s.Core).SendMessage(v1.SendMessageArgs{
		ChatID:    chatID,
		Message:   req.Message,
		ImageData: req.ImageData,
		MimeType:  req.MimeType,
	})
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, SendMessageResponse{
		Response: reply,
	})
}
