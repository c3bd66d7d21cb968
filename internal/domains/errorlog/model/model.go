package model

import "time"

const (
	TableName  = "error_logs"
	EntityName = "error log"

	FieldID        = "id"
	FieldMessage   = "message"
	FieldStack     = "stack"
	FieldTimestamp = "timestamp"
)

type ErrorLog struct {
	ID        string    `db:"id"        json:"id"`
	Message   string    `db:"message"   json:"message"`
	Stack     string    `db:"stack"     json:"stack"`
	Timestamp time.Time `db:"timestamp" json:"timestamp"`
}
