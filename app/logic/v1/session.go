package v1

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/huddle-ai/huddle-ai/app/core"
	"github.com/huddle-ai/huddle-ai/pkg/errors"
	"github.com/huddle-ai/huddle-ai/pkg/i18n"
	"github.com/huddle-ai/huddle-ai/pkg/types"
	"github.com/huddle-ai/huddle-ai/pkg/utils"
)

type SessionLogic struct {
	ctx  context.Context
	core *core.Core

	// passcode -> group name, fixed at process start.
	passcodes map[string]string
}

func NewSessionLogic(ctx context.Context, core *core.Core) *SessionLogic {
	return &SessionLogic{
		ctx:       ctx,
		core:      core,
		passcodes: core.Cfg().Passcodes,
	}
}

type JoinSessionResult struct {
	SessionID int64  `json:"session_id"`
	ChatID    int64  `json:"chat_id"`
	GroupName string `json:"group_name"`
}

// JoinSession resolves a configured passcode to its group session, creating
// the session row on first use, and guarantees the session has at least one
// chat. Idempotent for any valid passcode.
func (l *SessionLogic) JoinSession(passcode string) (*JoinSessionResult, error) {
	groupName, ok := l.passcodes[passcode]
	if !ok {
		return nil, errors.New("SessionLogic.JoinSession.passcodes.check", i18n.ERROR_INVALID_PASSCODE, nil).Code(http.StatusBadRequest)
	}

	session, err := l.core.Store().GroupSessionStore().GetByPasscode(l.ctx, passcode)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("SessionLogic.JoinSession.GroupSessionStore.GetByPasscode", i18n.ERROR_INTERNAL, err)
	}

	var sessionID int64
	if session != nil && err == nil {
		sessionID = session.ID
	} else {
		sessionID = utils.GenSpecID()
		if err = l.core.Store().GroupSessionStore().Create(l.ctx, types.GroupSession{
			ID:        sessionID,
			Passcode:  passcode,
			GroupName: groupName,
			CreatedAt: time.Now().Unix(),
		}); err != nil {
			return nil, errors.New("SessionLogic.JoinSession.GroupSessionStore.Create", i18n.ERROR_INTERNAL, err)
		}
	}

	chat, err := l.core.Store().ChatStore().GetLatestBySession(l.ctx, sessionID)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("SessionLogic.JoinSession.ChatStore.GetLatestBySession", i18n.ERROR_INTERNAL, err)
	}

	var chatID int64
	if chat != nil && err == nil {
		chatID = chat.ID
	} else {
		chatID = utils.GenSpecID()
		if err = l.core.Store().ChatStore().Create(l.ctx, types.Chat{
			ID:               chatID,
			SessionID:        sessionID,
			Title:            types.DEFAULT_CHAT_TITLE,
			LatestAccessTime: time.Now().Unix(),
		}); err != nil {
			return nil, errors.New("SessionLogic.JoinSession.ChatStore.Create", i18n.ERROR_INTERNAL, err)
		}
	}

	return &JoinSessionResult{
		SessionID: sessionID,
		ChatID:    chatID,
		GroupName: groupName,
	}, nil
}

func (l *SessionLogic) GetSessionInfo(sessionID int64) (*types.GroupSession, error) {
	session, err := l.core.Store().GroupSessionStore().Get(l.ctx, sessionID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New("SessionLogic.GetSessionInfo.GroupSessionStore.Get.nil", i18n.ERROR_SESSION_NOT_FOUND, nil).Code(http.StatusNotFound)
		}
		return nil, errors.New("SessionLogic.GetSessionInfo.GroupSessionStore.Get", i18n.ERROR_INTERNAL, err)
	}

	return session, nil
}
