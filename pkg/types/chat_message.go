package types

type ChatMessage struct {
	ID       int64  `json:"message_id" db:"id"`
	ChatID   int64  `json:"chat_id" db:"chat_id"`
	Sender   string `json:"sender" db:"sender"`
	Content  string `json:"text" db:"content"`
	SendTime int64  `json:"timestamp" db:"send_time"`
}

const (
	USER_SENDER      = "user"
	ASSISTANT_SENDER = "gemini"

	// IMAGE_SENT_PLACEHOLDER stands in for the user's text when a turn
	// carries only an image.
	IMAGE_SENT_PLACEHOLDER = "[Image Sent]"
	// IMAGE_QUERY_TITLE_SEED seeds title derivation for image-only first turns.
	IMAGE_QUERY_TITLE_SEED = "Image Query"
)
