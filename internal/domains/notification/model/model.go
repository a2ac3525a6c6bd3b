package model

import (
	"time"
)

const (
	TableName  = "notifications"
	EntityName = "notification"

	FieldID             = "id"
	FieldOrganizationID = "organization_id"
	FieldUserID         = "user_id"
	FieldType           = "type"
	FieldTitle          = "title"
	FieldMessage        = "message"
	FieldLinkTo         = "link_to"
	FieldIsRead         = "is_read"
	FieldCreatedAt      = "created_at"
)

// Notification rows are append-only, there is no updated_at column.
type Notification struct {
	ID             string    `db:"id"`
	OrganizationID string    `db:"organization_id"`
	UserID         string    `db:"user_id"`
	Type           string    `db:"type"`
	Title          string    `db:"title"`
	Message        string    `db:"message"`
	LinkTo         string    `db:"link_to"`
	IsRead         bool      `db:"is_read"`
	CreatedAt      time.Time `db:"created_at"`
}
