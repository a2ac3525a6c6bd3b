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
	"tourcrm/internal/domains/dashboard/service"
	leadMocks "tourcrm/internal/domains/lead/mocks"
	messageMocks "tourcrm/internal/domains/message/mocks"
	cacheMocks "tourcrm/shared/cache/mocks"
	"tourcrm/shared/constant"
)

type dashboardFixture struct {
	svc      service.Dashboard
	leads    *leadMocks.MockLead
	messages *messageMocks.MockMessage
	bookings *bookingMocks.MockBooking
}

func newDashboardService(t *testing.T) dashboardFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := dashboardFixture{
		leads:    leadMocks.NewMockLead(ctrl),
		messages: messageMocks.NewMockMessage(ctrl),
		bookings: bookingMocks.NewMockBooking(ctrl),
	}

	f.svc = service.New(f.leads, f.messages, f.bookings, &config.Config{}, cacheMocks.NewCache(), mocks.NewOtel())

	return f
}

func orgContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyOrgID, "org-id-123")
}

func TestDashboardService_Metrics(t *testing.T) {
	t.Run("aggregates all four counters", func(t *testing.T) {
		f := newDashboardService(t)

		f.leads.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(4, nil)
		f.messages.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(2, nil)
		f.bookings.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)
		f.bookings.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(3, nil)

		res, err := f.svc.Metrics(orgContext())
		assert.NoError(t, err)
		assert.Equal(t, 4, res.NewLeadsToday)
		assert.Equal(t, 2, res.UnreadMessages)
		assert.Equal(t, 1, res.FollowUpsToday)
		assert.Equal(t, 3, res.UpcomingTours)
	})

	t.Run("lead count failure is propagated", func(t *testing.T) {
		f := newDashboardService(t)

		f.leads.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("count failed"))

		_, err := f.svc.Metrics(orgContext())
		assert.Error(t, err)
	})

	t.Run("booking count failure is propagated", func(t *testing.T) {
		f := newDashboardService(t)

		f.leads.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, nil)
		f.messages.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, nil)
		f.bookings.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("count failed"))

		_, err := f.svc.Metrics(orgContext())
		assert.Error(t, err)
	})
}
