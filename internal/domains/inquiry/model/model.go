package model

import "time"

const (
	TableName  = "inquiries"
	EntityName = "inquiry"

	FieldID        = "id"
	FieldName      = "name"
	FieldEmail     = "email"
	FieldEventDate = "event_date"
	FieldMessage   = "message"
	FieldCreatedAt = "created_at"
)

// Inquiry is append-only: a lead is created by a visitor and later deleted by
// an admin, never edited.
type Inquiry struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	EventDate string    `db:"event_date"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}
