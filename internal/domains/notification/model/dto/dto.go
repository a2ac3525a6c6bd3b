package dto

import (
	"tourcrm/internal/domains/notification/model"
	"tourcrm/shared/constant"
	"tourcrm/shared/reltime"
	"tourcrm/shared/timezone"

	"github.com/google/uuid"
)

type CreateNotificationRequest struct {
	UserID  string `json:"user_id" validate:"omitempty"`
	Type    string `json:"type"    validate:"required,oneof=new_lead new_message booking_confirmed booking_cancelled payment_received system"`
	Title   string `json:"title"   validate:"required,max=150"`
	Message string `json:"message" validate:"required"`
	LinkTo  string `json:"link_to" validate:"omitempty,max=250"`
}

func (c *CreateNotificationRequest) ToModel(organizationID string) model.Notification {
	return model.Notification{
		ID:             uuid.NewString(),
		OrganizationID: organizationID,
		UserID:         c.UserID,
		Type:           c.Type,
		Title:          c.Title,
		Message:        c.Message,
		LinkTo:         c.LinkTo,
		IsRead:         false,
		CreatedAt:      timezone.Now(),
	}
}

type NotificationResponse struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	LinkTo  string `json:"link_to"`
	IsRead  bool   `json:"is_read"`
	// CreatedAtLabel carries the relative form rendered in the bell dropdown.
	CreatedAt      string `json:"created_at"`
	CreatedAtLabel string `json:"created_at_label"`
}

func (r *NotificationResponse) FromModel(model model.Notification) {
	r.ID = model.ID
	r.Type = model.Type
	r.Title = model.Title
	r.Message = model.Message
	r.LinkTo = model.LinkTo
	r.IsRead = model.IsRead
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
	r.CreatedAtLabel = reltime.Since(model.CreatedAt)
}

type GetNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unread_count"`
}

func (r *GetNotificationsResponse) FromModels(models []model.Notification, unread int) {
	r.UnreadCount = unread

	r.Notifications = make([]NotificationResponse, len(models))
	for i, mod := range models {
		r.Notifications[i].FromModel(mod)
	}
}
