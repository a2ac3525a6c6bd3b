package dto

import (
	"tourcrm/internal/domains/tour/model"
	"tourcrm/shared"
	gDto "tourcrm/shared/dto"
	gModel "tourcrm/shared/model"
	"tourcrm/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateTourRequest struct {
	Name            string `json:"name"             validate:"required,max=150"`
	Description     string `json:"description"      validate:"omitempty"`
	Location        string `json:"location"         validate:"omitempty,max=150"`
	Duration        string `json:"duration"         validate:"omitempty,max=50"`
	Price           string `json:"price"            validate:"omitempty"`
	Currency        string `json:"currency"         validate:"omitempty,len=3"`
	MaxParticipants int    `json:"max_participants" validate:"omitempty,min=1"`
	Level           string `json:"level"            validate:"omitempty,oneof=easy moderate hard"`
	Tags            string `json:"tags"             validate:"omitempty"`
}

func (c *CreateTourRequest) ToModel(organizationID string) (model.Tour, error) {
	price := decimal.Zero

	if c.Price != "" {
		parsed, err := decimal.NewFromString(c.Price)
		if err != nil {
			return model.Tour{}, err
		}

		price = parsed
	}

	currency := c.Currency
	if currency == "" {
		currency = "USD"
	}

	maxParticipants := c.MaxParticipants
	if maxParticipants == 0 {
		maxParticipants = 10
	}

	return model.Tour{
		ID:              uuid.NewString(),
		OrganizationID:  organizationID,
		Name:            c.Name,
		Description:     c.Description,
		Location:        c.Location,
		Duration:        c.Duration,
		Price:           price,
		Currency:        currency,
		MaxParticipants: maxParticipants,
		IsActive:        true,
		Level:           c.Level,
		Tags:            c.Tags,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}, nil
}

type UpdateTourRequest struct {
	Name            string `db:"name"             json:"name"             validate:"omitempty,max=150"`
	Description     string `db:"description"      json:"description"      validate:"omitempty"`
	Location        string `db:"location"         json:"location"         validate:"omitempty,max=150"`
	Duration        string `db:"duration"         json:"duration"         validate:"omitempty,max=50"`
	Price           string `db:"price"            json:"price"            validate:"omitempty"`
	Currency        string `db:"currency"         json:"currency"         validate:"omitempty,len=3"`
	MaxParticipants int    `db:"max_participants" json:"max_participants" validate:"omitempty,min=1"`
	IsActive        *bool  `db:"is_active"        json:"is_active"        validate:"omitempty"`
	Level           string `db:"level"            json:"level"            validate:"omitempty,oneof=easy moderate hard"`
	Tags            string `db:"tags"             json:"tags"             validate:"omitempty"`
}

type TourResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Location        string `json:"location"`
	Duration        string `json:"duration"`
	Price           string `json:"price"`
	Currency        string `json:"currency"`
	MaxParticipants int    `json:"max_participants"`
	IsActive        bool   `json:"is_active"`
	Level           string `json:"level"`
	Tags            string `json:"tags"`
	gDto.Metadata
}

func (r *TourResponse) FromModel(model model.Tour) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Location = model.Location
	r.Duration = model.Duration
	r.Price = model.Price.String()
	r.Currency = model.Currency
	r.MaxParticipants = model.MaxParticipants
	r.IsActive = model.IsActive
	r.Level = model.Level
	r.Tags = model.Tags
	r.Metadata.FromModel(model.Metadata)
}

type GetToursResponse struct {
	Tours     []TourResponse `json:"tours"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetToursResponse) FromModels(models []model.Tour, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Tours = make([]TourResponse, len(models))
	for i, mod := range models {
		r.Tours[i].FromModel(mod)
	}
}
