package model

import (
	"time"
	"tourcrm/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldOrganizationID  = "organization_id"
	FieldTourID          = "tour_id"
	FieldLeadID          = "lead_id"
	FieldClientName      = "client_name"
	FieldClientEmail     = "client_email"
	FieldClientPhone     = "client_phone"
	FieldNumParticipants = "num_participants"
	FieldBookingDate     = "booking_date"
	FieldStatus          = "status"
	FieldPaymentStatus   = "payment_status"
	FieldNotes           = "notes"
	FieldPickupLocation  = "pickup_location"
	FieldTotalAmount     = "total_amount"
	FieldCurrency        = "currency"
)

type Booking struct {
	ID              string          `db:"id"`
	OrganizationID  string          `db:"organization_id"`
	TourID          string          `db:"tour_id"`
	LeadID          string          `db:"lead_id"`
	ClientName      string          `db:"client_name"`
	ClientEmail     string          `db:"client_email"`
	ClientPhone     string          `db:"client_phone"`
	NumParticipants int             `db:"num_participants"`
	BookingDate     time.Time       `db:"booking_date"`
	Status          string          `db:"status"`
	PaymentStatus   string          `db:"payment_status"`
	Notes           string          `db:"notes"`
	PickupLocation  string          `db:"pickup_location"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	Currency        string          `db:"currency"`

	// TourName is joined in from the tours table for list and detail views.
	TourName string `db:"tour_name" table:"tours" column:"name"`

	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "LEFT JOIN tours ON tours.id = bookings.tour_id"
}
