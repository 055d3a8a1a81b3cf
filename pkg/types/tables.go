package types

import "fmt"

type TableName string

func (s TableName) Name() string {
	return fmt.Sprintf("%s%s", TABLE_PREFIX, s)
}

const TABLE_PREFIX = "huddle_"

const (
	TABLE_GROUP_SESSION = TableName("group_sessions")
	TABLE_CHAT          = TableName("chats")
	TABLE_CHAT_MESSAGE  = TableName("messages")
)
