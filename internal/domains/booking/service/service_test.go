package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tourcrm/config"
	"tourcrm/infras/otel/mocks"
	bookingMocks "tourcrm/internal/domains/booking/mocks"
	"tourcrm/internal/domains/booking/model"
	"tourcrm/internal/domains/booking/model/dto"
	"tourcrm/internal/domains/booking/service"
	leadMocks "tourcrm/internal/domains/lead/mocks"
	leadModel "tourcrm/internal/domains/lead/model"
	notificationModel "tourcrm/internal/domains/notification/model"
	tourMocks "tourcrm/internal/domains/tour/mocks"
	tourModel "tourcrm/internal/domains/tour/model"
	"tourcrm/internal/events"
	cacheMocks "tourcrm/shared/cache/mocks"
	"tourcrm/shared/constant"
	gDto "tourcrm/shared/dto"
)

func orgContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyOrgID, "org-id-123")
}

func validTour() tourModel.Tour {
	return tourModel.Tour{
		ID:             "tour-id-123",
		OrganizationID: "org-id-123",
		Name:           "Sunset Kayak",
		Currency:       "EUR",
		IsActive:       true,
	}
}

type bookingFixture struct {
	svc      service.Booking
	repo     *bookingMocks.MockBooking
	tourRepo *tourMocks.MockTour
	leadRepo *leadMocks.MockLead
}

func newBookingService(t *testing.T) bookingFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := bookingFixture{
		repo:     bookingMocks.NewMockBooking(ctrl),
		tourRepo: tourMocks.NewMockTour(ctrl),
		leadRepo: leadMocks.NewMockLead(ctrl),
	}

	cfg := &config.Config{}
	f.svc = service.New(f.repo, f.tourRepo, f.leadRepo, events.NewPublisher(cfg, nil), cfg, cacheMocks.NewCache(), mocks.NewOtel())

	return f
}

func TestBookingService_Create(t *testing.T) {
	req := dto.CreateBookingRequest{
		TourID:      "tour-id-123",
		ClientName:  "Maria Santos",
		BookingDate: "2026-09-15",
	}

	t.Run("inherits the tour currency when none was given", func(t *testing.T) {
		f := newBookingService(t)

		f.tourRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validTour(), nil)
		f.repo.EXPECT().
			InsertWithNotification(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking, notification notificationModel.Notification) error {
				assert.Equal(t, "EUR", booking.Currency)
				assert.Equal(t, "org-id-123", booking.OrganizationID)
				assert.Equal(t, constant.NotificationTypeBookingConfirmed, notification.Type)
				assert.Contains(t, notification.Message, "Sunset Kayak")

				return nil
			})

		err := f.svc.Create(orgContext(), req)
		assert.NoError(t, err)
	})

	t.Run("keeps an explicit currency", func(t *testing.T) {
		f := newBookingService(t)

		explicit := req
		explicit.Currency = "GBP"

		f.tourRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validTour(), nil)
		f.repo.EXPECT().
			InsertWithNotification(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking, _ notificationModel.Notification) error {
				assert.Equal(t, "GBP", booking.Currency)

				return nil
			})

		err := f.svc.Create(orgContext(), explicit)
		assert.NoError(t, err)
	})

	t.Run("rejects a booking for a missing tour", func(t *testing.T) {
		f := newBookingService(t)

		f.tourRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(tourModel.Tour{}, nil)

		err := f.svc.Create(orgContext(), req)
		assert.Error(t, err)
	})

	t.Run("rejects an unparseable booking date", func(t *testing.T) {
		f := newBookingService(t)

		bad := req
		bad.BookingDate = "next tuesday"

		f.tourRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validTour(), nil)

		err := f.svc.Create(orgContext(), bad)
		assert.Error(t, err)
	})

	t.Run("converts the linked lead", func(t *testing.T) {
		f := newBookingService(t)

		linked := req
		linked.LeadID = "lead-id-123"

		f.tourRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validTour(), nil)
		f.repo.EXPECT().
			InsertWithNotification(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		f.leadRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, constant.LeadStatusConverted, fields[leadModel.FieldStatus])

				return nil
			})

		err := f.svc.Create(orgContext(), linked)
		assert.NoError(t, err)
	})

	t.Run("a failed lead conversion does not fail the booking", func(t *testing.T) {
		f := newBookingService(t)

		linked := req
		linked.LeadID = "lead-id-123"

		f.tourRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validTour(), nil)
		f.repo.EXPECT().
			InsertWithNotification(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		f.leadRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("db error"))

		err := f.svc.Create(orgContext(), linked)
		assert.NoError(t, err)
	})

	t.Run("repository error", func(t *testing.T) {
		f := newBookingService(t)

		f.tourRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validTour(), nil)
		f.repo.EXPECT().
			InsertWithNotification(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("db error"))

		err := f.svc.Create(orgContext(), req)
		assert.Error(t, err)
	})
}

func TestBookingService_GetAll(t *testing.T) {
	f := newBookingService(t)

	f.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)
	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
			assert.Equal(t, model.FieldBookingDate, params.SortBy)
			assert.Equal(t, gDto.SortDirAsc, params.SortDir)

			return []model.Booking{{ID: "booking-id-123", ClientName: "Maria Santos"}}, nil
		})

	res, err := f.svc.GetAll(orgContext(), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})
	assert.NoError(t, err)
	assert.Len(t, res.Bookings, 1)
}

func TestBookingService_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newBookingService(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := f.svc.Delete(orgContext(), "missing")
		assert.Error(t, err)
	})

	t.Run("successful delete", func(t *testing.T) {
		f := newBookingService(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		f.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := f.svc.Delete(orgContext(), "booking-id-123")
		assert.NoError(t, err)
	})
}
