package dto

import (
	"time"
	"tourcrm/internal/domains/booking/model"
	"tourcrm/shared"
	"tourcrm/shared/constant"
	gDto "tourcrm/shared/dto"
	gModel "tourcrm/shared/model"
	"tourcrm/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnknownTourName is shown when a booking references a tour that no longer
// exists.
const UnknownTourName = "Unknown Tour"

type CreateBookingRequest struct {
	TourID          string `json:"tour_id"          validate:"required"`
	LeadID          string `json:"lead_id"          validate:"omitempty"`
	ClientName      string `json:"client_name"      validate:"required,max=150"`
	ClientEmail     string `json:"client_email"     validate:"omitempty,email,max=150"`
	ClientPhone     string `json:"client_phone"     validate:"omitempty,max=30"`
	NumParticipants int    `json:"num_participants" validate:"omitempty,min=1"`
	BookingDate     string `json:"booking_date"     validate:"required"`
	Status          string `json:"status"           validate:"omitempty,oneof=pending confirmed cancelled completed"`
	PaymentStatus   string `json:"payment_status"   validate:"omitempty,oneof=unpaid partial paid refunded"`
	Notes           string `json:"notes"            validate:"omitempty"`
	PickupLocation  string `json:"pickup_location"  validate:"omitempty,max=250"`
	TotalAmount     string `json:"total_amount"     validate:"omitempty"`
	Currency        string `json:"currency"         validate:"omitempty,len=3"`
}

func (c *CreateBookingRequest) ToModel(organizationID string) (model.Booking, error) {
	bookingDate, err := time.Parse(constant.BookingDateFormat, c.BookingDate)
	if err != nil {
		return model.Booking{}, err
	}

	total := decimal.Zero
	if c.TotalAmount != "" {
		total, err = decimal.NewFromString(c.TotalAmount)
		if err != nil {
			return model.Booking{}, err
		}
	}

	status := c.Status
	if status == "" {
		status = constant.BookingStatusPending
	}

	paymentStatus := c.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = constant.PaymentStatusUnpaid
	}

	participants := c.NumParticipants
	if participants == 0 {
		participants = 1
	}

	currency := c.Currency
	if currency == "" {
		currency = "USD"
	}

	return model.Booking{
		ID:              uuid.NewString(),
		OrganizationID:  organizationID,
		TourID:          c.TourID,
		LeadID:          c.LeadID,
		ClientName:      c.ClientName,
		ClientEmail:     c.ClientEmail,
		ClientPhone:     c.ClientPhone,
		NumParticipants: participants,
		BookingDate:     bookingDate,
		Status:          status,
		PaymentStatus:   paymentStatus,
		Notes:           c.Notes,
		PickupLocation:  c.PickupLocation,
		TotalAmount:     total,
		Currency:        currency,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}, nil
}

type UpdateBookingRequest struct {
	ClientName      string `db:"client_name"      json:"client_name"      validate:"omitempty,max=150"`
	ClientEmail     string `db:"client_email"     json:"client_email"     validate:"omitempty,email,max=150"`
	ClientPhone     string `db:"client_phone"     json:"client_phone"     validate:"omitempty,max=30"`
	NumParticipants int    `db:"num_participants" json:"num_participants" validate:"omitempty,min=1"`
	BookingDate     string `db:"booking_date"     json:"booking_date"     validate:"omitempty,datetime=2006-01-02"`
	Status          string `db:"status"           json:"status"           validate:"omitempty,oneof=pending confirmed cancelled completed"`
	PaymentStatus   string `db:"payment_status"   json:"payment_status"   validate:"omitempty,oneof=unpaid partial paid refunded"`
	Notes           string `db:"notes"            json:"notes"            validate:"omitempty"`
	PickupLocation  string `db:"pickup_location"  json:"pickup_location"  validate:"omitempty,max=250"`
	TotalAmount     string `db:"total_amount"     json:"total_amount"     validate:"omitempty"`
}

type BookingResponse struct {
	ID              string `json:"id"`
	TourID          string `json:"tour_id"`
	TourName        string `json:"tour_name"`
	LeadID          string `json:"lead_id"`
	ClientName      string `json:"client_name"`
	ClientEmail     string `json:"client_email"`
	ClientPhone     string `json:"client_phone"`
	NumParticipants int    `json:"num_participants"`
	BookingDate     string `json:"booking_date"`
	Status          string `json:"status"`
	PaymentStatus   string `json:"payment_status"`
	Notes           string `json:"notes"`
	PickupLocation  string `json:"pickup_location"`
	TotalAmount     string `json:"total_amount"`
	Currency        string `json:"currency"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.TourID = model.TourID
	r.LeadID = model.LeadID
	r.ClientName = model.ClientName
	r.ClientEmail = model.ClientEmail
	r.ClientPhone = model.ClientPhone
	r.NumParticipants = model.NumParticipants
	r.BookingDate = model.BookingDate.Format(constant.BookingDateFormat)
	r.Status = model.Status
	r.PaymentStatus = model.PaymentStatus
	r.Notes = model.Notes
	r.PickupLocation = model.PickupLocation
	r.TotalAmount = model.TotalAmount.String()
	r.Currency = model.Currency

	r.TourName = model.TourName
	if r.TourName == "" {
		r.TourName = UnknownTourName
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
