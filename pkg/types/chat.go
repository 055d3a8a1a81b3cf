package types

type Chat struct {
	ID               int64  `json:"chat_id" db:"id"`
	SessionID        int64  `json:"session_id" db:"session_id"`
	Title            string `json:"title" db:"title"`
	LatestAccessTime int64  `json:"timestamp" db:"latest_access_time"`
}

const (
	// DEFAULT_CHAT_TITLE is the placeholder title a chat carries until its
	// first exchange derives a real one.
	DEFAULT_CHAT_TITLE = "New Chat"
)
