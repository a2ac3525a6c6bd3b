package dto

import (
	"mime/multipart"
	"tourcrm/internal/domains/organization/model"
	gDto "tourcrm/shared/dto"
)

type UpdateOrganizationRequest struct {
	Name         string `db:"name"          json:"name"          validate:"omitempty,max=150"`
	Slug         string `db:"slug"          json:"slug"          validate:"omitempty,max=100"`
	PrimaryColor string `db:"primary_color" json:"primary_color" validate:"omitempty,hexcolor"`
	Settings     string `db:"settings"      json:"settings"      validate:"omitempty,json"`
}

type UploadLogoRequest struct {
	Logo     *multipart.FileHeader `validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=5"`
	LogoFile multipart.File
}

type UploadLogoResponse struct {
	LogoURL string `json:"logo_url"`
}

type OrganizationResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	LogoURL      string `json:"logo_url"`
	PrimaryColor string `json:"primary_color"`
	Settings     string `json:"settings"`
	gDto.Metadata
}

func (r *OrganizationResponse) FromModel(model model.Organization) {
	r.ID = model.ID
	r.Name = model.Name
	r.Slug = model.Slug
	r.LogoURL = model.LogoURL
	r.PrimaryColor = model.PrimaryColor
	r.Settings = model.Settings
	r.Metadata.FromModel(model.Metadata)
}
