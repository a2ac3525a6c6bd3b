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
	"tourcrm/internal/domains/lead/model"
	"tourcrm/internal/domains/lead/model/dto"
	"tourcrm/internal/domains/lead/service"
	notificationMocks "tourcrm/internal/domains/notification/mocks"
	"tourcrm/internal/events"
	cacheMocks "tourcrm/shared/cache/mocks"
	"tourcrm/shared/constant"
	gDto "tourcrm/shared/dto"
	gModel "tourcrm/shared/model"
	"tourcrm/shared/timezone"
)

func orgContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyOrgID, "org-id-123")
}

func validLead() model.Lead {
	now := timezone.Now()

	return model.Lead{
		ID:             "lead-id-123",
		OrganizationID: "org-id-123",
		Name:           "Maria Santos",
		Email:          "maria@example.com",
		Status:         constant.LeadStatusNew,
		Channel:        constant.ChannelWebsite,
		LastContact:    &now,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

func newLeadService(t *testing.T) (service.Lead, *leadMocks.MockLead, *notificationMocks.MockNotificationService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := leadMocks.NewMockLead(ctrl)
	mockNotify := notificationMocks.NewMockNotificationService(ctrl)
	cfg := &config.Config{}
	publisher := events.NewPublisher(cfg, nil)

	svc := service.New(mockRepo, mockNotify, publisher, cfg, cacheMocks.NewCache(), mocks.NewOtel())

	return svc, mockRepo, mockNotify
}

func TestLeadService_Create(t *testing.T) {
	req := dto.CreateLeadRequest{
		Name:    "Maria Santos",
		Email:   "maria@example.com",
		Channel: constant.ChannelWhatsApp,
	}

	t.Run("successful creation emits a notification", func(t *testing.T) {
		svc, mockRepo, mockNotify := newLeadService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, lead model.Lead) error {
				assert.Equal(t, "org-id-123", lead.OrganizationID)
				assert.Equal(t, constant.LeadStatusNew, lead.Status)
				assert.NotEmpty(t, lead.ID)

				return nil
			})
		mockNotify.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Create(orgContext(), req)
		assert.NoError(t, err)
	})

	t.Run("notification failure does not fail the create", func(t *testing.T) {
		svc, mockRepo, mockNotify := newLeadService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)
		mockNotify.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(errors.New("notify down"))

		err := svc.Create(orgContext(), req)
		assert.NoError(t, err)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo, _ := newLeadService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("db error"))

		err := svc.Create(orgContext(), req)
		assert.Error(t, err)
	})
}

func TestLeadService_Get(t *testing.T) {
	t.Run("successful get", func(t *testing.T) {
		svc, mockRepo, _ := newLeadService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validLead(), nil)

		res, err := svc.Get(orgContext(), "lead-id-123")
		assert.NoError(t, err)
		assert.Equal(t, "lead-id-123", res.ID)
		assert.Equal(t, "Maria Santos", res.Name)
		assert.NotEmpty(t, res.LastContactLabel)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, _ := newLeadService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Lead{}, nil)

		_, err := svc.Get(orgContext(), "missing")
		assert.Error(t, err)
	})
}

func TestLeadService_GetAll(t *testing.T) {
	svc, mockRepo, _ := newLeadService(t)

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)
	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Lead, error) {
			assert.Equal(t, model.FieldLastContact, params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)

			return []model.Lead{validLead()}, nil
		})

	res, err := svc.GetAll(orgContext(), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})
	assert.NoError(t, err)
	assert.Len(t, res.Leads, 1)
}

func TestLeadService_Update(t *testing.T) {
	t.Run("empty request is rejected", func(t *testing.T) {
		svc, _, _ := newLeadService(t)

		err := svc.Update(orgContext(), dto.UpdateLeadRequest{}, "lead-id-123")
		assert.Error(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, _ := newLeadService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Update(orgContext(), dto.UpdateLeadRequest{Status: constant.LeadStatusContacted}, "missing")
		assert.Error(t, err)
	})

	t.Run("successful status move", func(t *testing.T) {
		svc, mockRepo, _ := newLeadService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, constant.LeadStatusConverted, fields[model.FieldStatus])

				return nil
			})

		err := svc.Update(orgContext(), dto.UpdateLeadRequest{Status: constant.LeadStatusConverted}, "lead-id-123")
		assert.NoError(t, err)
	})
}

func TestLeadService_Delete(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		svc, mockRepo, _ := newLeadService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Delete(orgContext(), "lead-id-123")
		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, _ := newLeadService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Delete(orgContext(), "missing")
		assert.Error(t, err)
	})
}
