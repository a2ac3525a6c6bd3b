package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"
	"tourcrm/infras/localdb"
	"tourcrm/infras/otel"
	"tourcrm/infras/postgres"
	"tourcrm/internal/domains/booking/model"
	notificationModel "tourcrm/internal/domains/notification/model"
	"tourcrm/internal/schema"
	gDto "tourcrm/shared/dto"
	"tourcrm/shared/logger"
	gRepo "tourcrm/shared/repository"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	// InsertWithNotification writes the booking and its notification in one
	// transaction so the bell never announces a booking that was rolled back.
	InsertWithNotification(ctx context.Context, booking model.Booking, notification notificationModel.Notification) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	notifications gRepo.Repository[notificationModel.Notification]
	db            *postgres.Connection
	otel          otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository:    gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		notifications: gRepo.NewRepository[notificationModel.Notification](notificationModel.EntityName, notificationModel.TableName, notificationModel.FieldID, db, otel),
		db:            db,
		otel:          otel,
	}
}

func (r *repositoryImpl) InsertWithNotification(ctx context.Context, booking model.Booking, notification notificationModel.Notification) error {
	tx, err := r.db.Write.Beginx()
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := r.InsertTx(ctx, tx, booking); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to rollback booking insert")
		}

		return err
	}

	if err := r.notifications.InsertTx(ctx, tx, notification); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to rollback notification insert")
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit booking transaction: %w", err)
	}

	return nil
}

type localImpl struct {
	gRepo.Local[model.Booking]
	store *localdb.Store
}

func NewLocal(store *localdb.Store, otel otel.Otel) Booking {
	return &localImpl{
		Local: gRepo.NewLocal[model.Booking](model.EntityName, model.TableName, model.FieldID, store, otel),
		store: store,
	}
}

func (r *localImpl) InsertWithNotification(ctx context.Context, booking model.Booking, notification notificationModel.Notification) error {
	return r.store.Tx(ctx, func(tx *sql.Tx) error { //nolint:wrapcheck
		bookingQuery, bookingArgs, err := schema.BuildInsert(schema.TableBookings, bookingRow(booking))
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, bookingQuery, localdb.ConvertArgs(bookingArgs)...); err != nil {
			return fmt.Errorf("failed to insert booking: %w", err)
		}

		notificationQuery, notificationArgs, err := schema.BuildInsert(schema.TableNotifications, notificationRow(notification))
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, notificationQuery, localdb.ConvertArgs(notificationArgs)...); err != nil {
			return fmt.Errorf("failed to insert notification: %w", err)
		}

		return nil
	})
}

func bookingRow(booking model.Booking) schema.Row {
	return schema.Row{
		"id":               booking.ID,
		"organization_id":  booking.OrganizationID,
		"tour_id":          booking.TourID,
		"lead_id":          booking.LeadID,
		"client_name":      booking.ClientName,
		"client_email":     booking.ClientEmail,
		"client_phone":     booking.ClientPhone,
		"num_participants": booking.NumParticipants,
		"booking_date":     booking.BookingDate.Format("2006-01-02"),
		"status":           booking.Status,
		"payment_status":   booking.PaymentStatus,
		"notes":            booking.Notes,
		"pickup_location":  booking.PickupLocation,
		"total_amount":     booking.TotalAmount.String(),
		"currency":         booking.Currency,
		"created_at":       booking.CreatedAt,
		"updated_at":       booking.UpdatedAt,
	}
}

func notificationRow(notification notificationModel.Notification) schema.Row {
	return schema.Row{
		"id":              notification.ID,
		"organization_id": notification.OrganizationID,
		"user_id":         notification.UserID,
		"type":            notification.Type,
		"title":           notification.Title,
		"message":         notification.Message,
		"link_to":         notification.LinkTo,
		"is_read":         notification.IsRead,
		"created_at":      notification.CreatedAt,
	}
}
