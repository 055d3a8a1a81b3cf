package i18n

var ALLOW_LANG = map[string]bool{
	"en":    true,
	"zh-CN": true,
}

const DEFAULT_LANG = "en"

const (
	ERROR_INTERNAL        = "error.internal"
	ERROR_INVALIDARGUMENT = "error.invalidargument"

	ERROR_INVALID_PASSCODE  = "error.passcode.invalid"
	ERROR_EMPTY_PASSCODE    = "error.passcode.empty"
	ERROR_SESSION_NOT_FOUND = "error.session.notfound"
	ERROR_CHAT_NOT_FOUND    = "error.chat.notfound"

	ERROR_EMPTY_MESSAGE = "error.message.empty"
	ERROR_INVALID_IMAGE = "error.image.invalid"

	ERROR_AI_AUTH        = "error.ai.auth"
	ERROR_AI_QUOTA       = "error.ai.quota"
	ERROR_AI_RATE_LIMIT  = "error.ai.ratelimit"
	ERROR_AI_UNAVAILABLE = "error.ai.unavailable"

	ERROR_REPLY_UNSAVED = "error.reply.unsaved"
)
