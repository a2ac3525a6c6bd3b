package model

import (
	"tourcrm/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "tours"
	EntityName = "tour"

	FieldID              = "id"
	FieldOrganizationID  = "organization_id"
	FieldName            = "name"
	FieldDescription     = "description"
	FieldLocation        = "location"
	FieldDuration        = "duration"
	FieldPrice           = "price"
	FieldCurrency        = "currency"
	FieldMaxParticipants = "max_participants"
	FieldIsActive        = "is_active"
	FieldLevel           = "level"
	FieldTags            = "tags"
)

type Tour struct {
	ID              string          `db:"id"`
	OrganizationID  string          `db:"organization_id"`
	Name            string          `db:"name"`
	Description     string          `db:"description"`
	Location        string          `db:"location"`
	Duration        string          `db:"duration"`
	Price           decimal.Decimal `db:"price"`
	Currency        string          `db:"currency"`
	MaxParticipants int             `db:"max_participants"`
	IsActive        bool            `db:"is_active"`
	Level           string          `db:"level"`
	Tags            string          `db:"tags"`
	model.Metadata
}
