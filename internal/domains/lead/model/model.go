package model

import (
	"time"
	"tourcrm/shared/model"
)

const (
	TableName  = "leads"
	EntityName = "lead"

	FieldID             = "id"
	FieldOrganizationID = "organization_id"
	FieldName           = "name"
	FieldEmail          = "email"
	FieldPhone          = "phone"
	FieldStatus         = "status"
	FieldChannel        = "channel"
	FieldLastContact    = "last_contact"
	FieldNotes          = "notes"
)

type Lead struct {
	ID             string     `db:"id"`
	OrganizationID string     `db:"organization_id"`
	Name           string     `db:"name"`
	Email          string     `db:"email"`
	Phone          string     `db:"phone"`
	Status         string     `db:"status"`
	Channel        string     `db:"channel"`
	LastContact    *time.Time `db:"last_contact"`
	Notes          string     `db:"notes"`
	model.Metadata
}
