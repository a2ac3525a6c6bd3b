package model

import (
	"time"
)

const (
	TableName  = "messages"
	EntityName = "message"

	FieldID             = "id"
	FieldOrganizationID = "organization_id"
	FieldLeadID         = "lead_id"
	FieldChannel        = "channel"
	FieldDirection      = "direction"
	FieldSenderName     = "sender_name"
	FieldContent        = "content"
	FieldIsRead         = "is_read"
	FieldCreatedAt      = "created_at"
)

type Message struct {
	ID             string    `db:"id"`
	OrganizationID string    `db:"organization_id"`
	LeadID         string    `db:"lead_id"`
	Channel        string    `db:"channel"`
	Direction      string    `db:"direction"`
	SenderName     string    `db:"sender_name"`
	Content        string    `db:"content"`
	IsRead         bool      `db:"is_read"`
	CreatedAt      time.Time `db:"created_at"`
}
