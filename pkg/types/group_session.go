package types

// GroupSession binds one configured passcode to a group identity.
// Created on the first successful join, never updated or deleted.
type GroupSession struct {
	ID        int64  `json:"session_id" db:"id"`
	Passcode  string `json:"passcode" db:"passcode"`
	GroupName string `json:"group_name" db:"group_name"`
	CreatedAt int64  `json:"created_at" db:"created_at"`
}
