package model

import (
	"tourcrm/shared/model"
)

const (
	TableName  = "organizations"
	EntityName = "organization"

	FieldID           = "id"
	FieldName         = "name"
	FieldSlug         = "slug"
	FieldLogoURL      = "logo_url"
	FieldPrimaryColor = "primary_color"
	FieldSettings     = "settings"
)

type Organization struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	Slug         string `db:"slug"`
	LogoURL      string `db:"logo_url"`
	PrimaryColor string `db:"primary_color"`
	// Settings holds free-form organization options as a JSON document.
	Settings string `db:"settings"`
	model.Metadata
}
