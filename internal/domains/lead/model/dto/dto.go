package dto

import (
	"time"
	"tourcrm/internal/domains/lead/model"
	"tourcrm/shared"
	"tourcrm/shared/constant"
	gDto "tourcrm/shared/dto"
	gModel "tourcrm/shared/model"
	"tourcrm/shared/reltime"
	"tourcrm/shared/timezone"

	"github.com/google/uuid"
)

type CreateLeadRequest struct {
	Name    string `json:"name"    validate:"required,max=150"`
	Email   string `json:"email"   validate:"omitempty,email,max=150"`
	Phone   string `json:"phone"   validate:"omitempty,max=30"`
	Status  string `json:"status"  validate:"omitempty,oneof=new contacted qualified lost converted"`
	Channel string `json:"channel" validate:"omitempty,oneof=website telegram whatsapp referral direct email other"`
	Notes   string `json:"notes"   validate:"omitempty"`
}

func (c *CreateLeadRequest) ToModel(organizationID string) model.Lead {
	status := c.Status
	if status == "" {
		status = constant.LeadStatusNew
	}

	channel := c.Channel
	if channel == "" {
		channel = constant.ChannelWebsite
	}

	now := timezone.Now()

	return model.Lead{
		ID:             uuid.NewString(),
		OrganizationID: organizationID,
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		Status:         status,
		Channel:        channel,
		LastContact:    &now,
		Notes:          c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

type UpdateLeadRequest struct {
	Name        string     `db:"name"         json:"name"         validate:"omitempty,max=150"`
	Email       string     `db:"email"        json:"email"        validate:"omitempty,email,max=150"`
	Phone       string     `db:"phone"        json:"phone"        validate:"omitempty,max=30"`
	Status      string     `db:"status"       json:"status"       validate:"omitempty,oneof=new contacted qualified lost converted"`
	Channel     string     `db:"channel"      json:"channel"      validate:"omitempty,oneof=website telegram whatsapp referral direct email other"`
	LastContact *time.Time `db:"last_contact" json:"last_contact" validate:"omitempty"`
	Notes       string     `db:"notes"        json:"notes"        validate:"omitempty"`
}

type LeadResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Status      string `json:"status"`
	Channel     string `json:"channel"`
	LastContact string `json:"last_contact"`
	// LastContactLabel is the human friendly form shown on the inbox list,
	// e.g. "10 mins ago".
	LastContactLabel string `json:"last_contact_label"`
	Notes            string `json:"notes"`
	gDto.Metadata
}

func (r *LeadResponse) FromModel(model model.Lead) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Status = model.Status
	r.Channel = model.Channel
	r.Notes = model.Notes

	if model.LastContact != nil {
		r.LastContact = timezone.Format(*model.LastContact, constant.DateFormat)
		r.LastContactLabel = reltime.Since(*model.LastContact)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetLeadsResponse struct {
	Leads     []LeadResponse `json:"leads"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetLeadsResponse) FromModels(models []model.Lead, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Leads = make([]LeadResponse, len(models))
	for i, mod := range models {
		r.Leads[i].FromModel(mod)
	}
}
