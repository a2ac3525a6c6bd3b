package dto

import (
	"tourcrm/internal/domains/message/model"
	"tourcrm/shared/constant"
	"tourcrm/shared/reltime"
	"tourcrm/shared/timezone"

	"github.com/google/uuid"
)

type CreateMessageRequest struct {
	LeadID     string `json:"lead_id"     validate:"required"`
	Channel    string `json:"channel"     validate:"omitempty,oneof=website telegram whatsapp referral direct email other"`
	Direction  string `json:"direction"   validate:"omitempty,oneof=inbound outbound"`
	SenderName string `json:"sender_name" validate:"omitempty,max=150"`
	Content    string `json:"content"     validate:"required"`
}

func (c *CreateMessageRequest) ToModel(organizationID string) model.Message {
	channel := c.Channel
	if channel == "" {
		channel = constant.ChannelWebsite
	}

	direction := c.Direction
	if direction == "" {
		direction = constant.MessageDirectionInbound
	}

	// Outbound replies are already seen by definition.
	isRead := direction == constant.MessageDirectionOutbound

	return model.Message{
		ID:             uuid.NewString(),
		OrganizationID: organizationID,
		LeadID:         c.LeadID,
		Channel:        channel,
		Direction:      direction,
		SenderName:     c.SenderName,
		Content:        c.Content,
		IsRead:         isRead,
		CreatedAt:      timezone.Now(),
	}
}

type MessageResponse struct {
	ID             string `json:"id"`
	LeadID         string `json:"lead_id"`
	Channel        string `json:"channel"`
	Direction      string `json:"direction"`
	SenderName     string `json:"sender_name"`
	Content        string `json:"content"`
	IsRead         bool   `json:"is_read"`
	CreatedAt      string `json:"created_at"`
	CreatedAtLabel string `json:"created_at_label"`
}

func (r *MessageResponse) FromModel(model model.Message) {
	r.ID = model.ID
	r.LeadID = model.LeadID
	r.Channel = model.Channel
	r.Direction = model.Direction
	r.SenderName = model.SenderName
	r.Content = model.Content
	r.IsRead = model.IsRead
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
	r.CreatedAtLabel = reltime.Since(model.CreatedAt)
}

type GetMessagesResponse struct {
	Messages []MessageResponse `json:"messages"`
}

func (r *GetMessagesResponse) FromModels(models []model.Message) {
	r.Messages = make([]MessageResponse, len(models))
	for i, mod := range models {
		r.Messages[i].FromModel(mod)
	}
}

type UnreadCountResponse struct {
	UnreadCount int `json:"unread_count"`
}
