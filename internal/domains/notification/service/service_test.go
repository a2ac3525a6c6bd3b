package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tourcrm/config"
	"tourcrm/infras/otel/mocks"
	notificationMocks "tourcrm/internal/domains/notification/mocks"
	"tourcrm/internal/domains/notification/model"
	"tourcrm/internal/domains/notification/model/dto"
	"tourcrm/internal/domains/notification/service"
	"tourcrm/shared/constant"
	gDto "tourcrm/shared/dto"
	"tourcrm/shared/timezone"
)

func orgContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyOrgID, "org-id-123")
}

func newNotificationService(t *testing.T) (service.Notification, *notificationMocks.MockNotification) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := notificationMocks.NewMockNotification(ctrl)
	svc := service.New(mockRepo, &config.Config{}, mocks.NewOtel())

	return svc, mockRepo
}

func TestNotificationService_Create(t *testing.T) {
	t.Run("notification is stamped with the organization", func(t *testing.T) {
		svc, mockRepo := newNotificationService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, notification model.Notification) error {
				assert.Equal(t, "org-id-123", notification.OrganizationID)
				assert.Equal(t, constant.NotificationTypeNewLead, notification.Type)
				assert.False(t, notification.IsRead)

				return nil
			})

		err := svc.Create(orgContext(), dto.CreateNotificationRequest{
			Type:    constant.NotificationTypeNewLead,
			Title:   "New lead",
			Message: "Maria Santos arrived via whatsapp",
		})
		assert.NoError(t, err)
	})

	t.Run("repository failure is propagated", func(t *testing.T) {
		svc, mockRepo := newNotificationService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("insert failed"))

		err := svc.Create(orgContext(), dto.CreateNotificationRequest{
			Type:  constant.NotificationTypeNewLead,
			Title: "New lead",
		})
		assert.Error(t, err)
	})
}

func TestNotificationService_GetAll(t *testing.T) {
	svc, mockRepo := newNotificationService(t)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Notification, error) {
			assert.Equal(t, constant.NotificationListLimit, params.Limit)
			assert.Equal(t, model.FieldCreatedAt, params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)

			return []model.Notification{
				{ID: "notification-1", Type: constant.NotificationTypeNewLead, CreatedAt: timezone.Now()},
				{ID: "notification-2", Type: constant.NotificationTypeNewMessage, CreatedAt: timezone.Now()},
			}, nil
		})
	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)

	res, err := svc.GetAll(orgContext())
	assert.NoError(t, err)
	assert.Len(t, res.Notifications, 2)
	assert.Equal(t, 2, res.UnreadCount)
}

func TestNotificationService_MarkRead(t *testing.T) {
	t.Run("successful mark", func(t *testing.T) {
		svc, mockRepo := newNotificationService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Notification{ID: "notification-1"}, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, true, fields[model.FieldIsRead])

				return nil
			})

		err := svc.MarkRead(orgContext(), "notification-1")
		assert.NoError(t, err)
	})

	t.Run("missing notification returns not found", func(t *testing.T) {
		svc, mockRepo := newNotificationService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Notification{}, nil)

		err := svc.MarkRead(orgContext(), "notification-missing")
		assert.Error(t, err)
	})
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	svc, mockRepo := newNotificationService(t)

	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	err := svc.MarkAllRead(orgContext())
	assert.NoError(t, err)
}
