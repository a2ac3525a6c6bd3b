package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tourcrm/config"
	"tourcrm/infras/otel/mocks"
	leadMocks "tourcrm/internal/domains/lead/mocks"
	leadModel "tourcrm/internal/domains/lead/model"
	messageMocks "tourcrm/internal/domains/message/mocks"
	"tourcrm/internal/domains/message/model"
	"tourcrm/internal/domains/message/model/dto"
	"tourcrm/internal/domains/message/service"
	notificationMocks "tourcrm/internal/domains/notification/mocks"
	"tourcrm/internal/events"
	"tourcrm/shared/constant"
	gDto "tourcrm/shared/dto"
	gModel "tourcrm/shared/model"
	"tourcrm/shared/timezone"
)

func orgContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyOrgID, "org-id-123")
}

func validLead() leadModel.Lead {
	now := timezone.Now()

	return leadModel.Lead{
		ID:             "lead-id-123",
		OrganizationID: "org-id-123",
		Name:           "Maria Santos",
		Status:         constant.LeadStatusNew,
		Channel:        constant.ChannelWhatsApp,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

type messageFixture struct {
	svc      service.Message
	repo     *messageMocks.MockMessage
	leadRepo *leadMocks.MockLead
	notify   *notificationMocks.MockNotificationService
}

func newMessageService(t *testing.T) messageFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := messageFixture{
		repo:     messageMocks.NewMockMessage(ctrl),
		leadRepo: leadMocks.NewMockLead(ctrl),
		notify:   notificationMocks.NewMockNotificationService(ctrl),
	}

	cfg := &config.Config{}
	f.svc = service.New(f.repo, f.leadRepo, f.notify, events.NewPublisher(cfg, nil), cfg, mocks.NewOtel())

	return f
}

func TestMessageService_Create(t *testing.T) {
	t.Run("inbound message notifies and touches the lead", func(t *testing.T) {
		f := newMessageService(t)

		f.leadRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validLead(), nil)
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, message model.Message) error {
				assert.Equal(t, "org-id-123", message.OrganizationID)
				assert.Equal(t, constant.MessageDirectionInbound, message.Direction)
				assert.False(t, message.IsRead)

				return nil
			})
		f.leadRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		f.notify.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)

		err := f.svc.Create(orgContext(), dto.CreateMessageRequest{
			LeadID:     "lead-id-123",
			SenderName: "Maria Santos",
			Content:    "Is the sunset tour available next week?",
		})
		assert.NoError(t, err)
	})

	t.Run("outbound reply is stored read and skips notification", func(t *testing.T) {
		f := newMessageService(t)

		f.leadRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validLead(), nil)
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, message model.Message) error {
				assert.Equal(t, constant.MessageDirectionOutbound, message.Direction)
				assert.True(t, message.IsRead)

				return nil
			})
		f.leadRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := f.svc.Create(orgContext(), dto.CreateMessageRequest{
			LeadID:    "lead-id-123",
			Direction: constant.MessageDirectionOutbound,
			Content:   "Yes, we have seats on Tuesday.",
		})
		assert.NoError(t, err)
	})

	t.Run("unknown lead is rejected", func(t *testing.T) {
		f := newMessageService(t)

		f.leadRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(leadModel.Lead{}, nil)

		err := f.svc.Create(orgContext(), dto.CreateMessageRequest{
			LeadID:  "lead-id-missing",
			Content: "hello?",
		})
		assert.Error(t, err)
	})

	t.Run("repository failure is propagated", func(t *testing.T) {
		f := newMessageService(t)

		f.leadRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validLead(), nil)
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("insert failed"))

		err := f.svc.Create(orgContext(), dto.CreateMessageRequest{
			LeadID:  "lead-id-123",
			Content: "hello",
		})
		assert.Error(t, err)
	})
}

func TestMessageService_GetByLead(t *testing.T) {
	t.Run("thread is returned oldest first", func(t *testing.T) {
		f := newMessageService(t)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Message, error) {
				assert.Equal(t, model.FieldCreatedAt, params.SortBy)
				assert.Equal(t, gDto.SortDirAsc, params.SortDir)

				return []model.Message{
					{ID: "message-1", LeadID: "lead-id-123", Content: "hi", CreatedAt: timezone.Now()},
					{ID: "message-2", LeadID: "lead-id-123", Content: "hello", CreatedAt: timezone.Now()},
				}, nil
			})

		res, err := f.svc.GetByLead(orgContext(), "lead-id-123")
		assert.NoError(t, err)
		assert.Len(t, res.Messages, 2)
	})

	t.Run("repository failure is propagated", func(t *testing.T) {
		f := newMessageService(t)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("query failed"))

		_, err := f.svc.GetByLead(orgContext(), "lead-id-123")
		assert.Error(t, err)
	})
}

func TestMessageService_MarkLeadMessagesRead(t *testing.T) {
	f := newMessageService(t)

	f.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, true, fields[model.FieldIsRead])

			return nil
		})

	err := f.svc.MarkLeadMessagesRead(orgContext(), "lead-id-123")
	assert.NoError(t, err)
}

func TestMessageService_UnreadCount(t *testing.T) {
	f := newMessageService(t)

	f.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(3, nil)

	count, err := f.svc.UnreadCount(orgContext())
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}
