package model

import "tourcrm/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID             = "id"
	FieldOrganizationID = "organization_id"
	FieldEmail          = "email"
	FieldPassword       = "password"
	FieldFullName       = "full_name"
	FieldRole           = "role"
	FieldAvatarURL      = "avatar_url"
)

type User struct {
	ID             string `db:"id"`
	OrganizationID string `db:"organization_id"`
	Email          string `db:"email"`
	Password       string `db:"password"`
	FullName       string `db:"full_name"`
	Role           string `db:"role"`
	AvatarURL      string `db:"avatar_url"`
	model.Metadata
}
