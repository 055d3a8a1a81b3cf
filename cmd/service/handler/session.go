package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	v1 "github.com/huddle-ai/huddle-ai/app/logic/v1"
	"github.com/huddle-ai/huddle-ai/app/response"
	"github.com/huddle-ai/huddle-ai/pkg/errors"
	"github.com/huddle-ai/huddle-ai/pkg/i18n"
	"github.com/huddle-ai/huddle-ai/pkg/utils"
)

type JoinSessionRequest struct {
	Passcode string `json:"passcode" form:"passcode"`
}

func (s *HttpSrv) JoinSession(c *gin.Context) {
	var (
		err error
		req JoinSessionRequest
	)

	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	if strings.TrimSpace(req.Passcode) == "" {
		response.APIError(c, errors.New("api.JoinSession.passcode.nil", i18n.ERROR_EMPTY_PASSCODE, nil).Code(http.StatusBadRequest))
		return
	}

	result, err := v1.NewSessionLogic(c, s.Core).JoinSession(strings.TrimSpace(req.Passcode))
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, result)
}

func (s *HttpSrv) GetSessionInfo(c *gin.Context) {
	sessionID, err := paramID(c, "session")
	if err != nil {
		response.APIError(c, err)
		return
	}

	session, err := v1.NewSessionLogic(c, s.Core).GetSessionInfo(sessionID)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, session)
}
