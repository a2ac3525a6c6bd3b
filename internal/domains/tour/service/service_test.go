package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tourcrm/config"
	"tourcrm/infras/otel/mocks"
	tourMocks "tourcrm/internal/domains/tour/mocks"
	"tourcrm/internal/domains/tour/model"
	"tourcrm/internal/domains/tour/model/dto"
	"tourcrm/internal/domains/tour/service"
	cacheMocks "tourcrm/shared/cache/mocks"
	"tourcrm/shared/constant"
	gDto "tourcrm/shared/dto"
	gModel "tourcrm/shared/model"
	"tourcrm/shared/timezone"
)

func orgContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyOrgID, "org-id-123")
}

func validTour() model.Tour {
	now := timezone.Now()

	return model.Tour{
		ID:              "tour-id-123",
		OrganizationID:  "org-id-123",
		Name:            "Sunset Kayak",
		Location:        "Lisbon",
		Price:           decimal.NewFromInt(45),
		Currency:        "EUR",
		MaxParticipants: 8,
		IsActive:        true,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

func newTourService(t *testing.T) (service.Tour, *tourMocks.MockTour) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := tourMocks.NewMockTour(ctrl)
	svc := service.New(mockRepo, &config.Config{}, cacheMocks.NewCache(), mocks.NewOtel())

	return svc, mockRepo
}

func TestTourService_Create(t *testing.T) {
	t.Run("defaults are applied on creation", func(t *testing.T) {
		svc, mockRepo := newTourService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tour model.Tour) error {
				assert.Equal(t, "org-id-123", tour.OrganizationID)
				assert.Equal(t, "USD", tour.Currency)
				assert.Equal(t, 10, tour.MaxParticipants)
				assert.True(t, tour.IsActive)

				return nil
			})

		err := svc.Create(orgContext(), dto.CreateTourRequest{Name: "City Walk"})
		assert.NoError(t, err)
	})

	t.Run("unparseable price is rejected", func(t *testing.T) {
		svc, _ := newTourService(t)

		err := svc.Create(orgContext(), dto.CreateTourRequest{
			Name:  "City Walk",
			Price: "forty five",
		})
		assert.Error(t, err)
	})

	t.Run("repository failure is propagated", func(t *testing.T) {
		svc, mockRepo := newTourService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("insert failed"))

		err := svc.Create(orgContext(), dto.CreateTourRequest{Name: "City Walk"})
		assert.Error(t, err)
	})
}

func TestTourService_Get(t *testing.T) {
	t.Run("successful get", func(t *testing.T) {
		svc, mockRepo := newTourService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validTour(), nil)

		res, err := svc.Get(orgContext(), "tour-id-123")
		assert.NoError(t, err)
		assert.Equal(t, "Sunset Kayak", res.Name)
		assert.Equal(t, "EUR", res.Currency)
	})

	t.Run("missing tour returns not found", func(t *testing.T) {
		svc, mockRepo := newTourService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Tour{}, nil)

		_, err := svc.Get(orgContext(), "tour-id-missing")
		assert.Error(t, err)
	})
}

func TestTourService_GetAll(t *testing.T) {
	svc, mockRepo := newTourService(t)

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)
	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Tour, error) {
			assert.Equal(t, model.FieldName, params.SortBy)
			assert.Equal(t, gDto.SortDirAsc, params.SortDir)

			return []model.Tour{validTour()}, nil
		})

	res, err := svc.GetAll(orgContext(), gDto.QueryParams{}, gDto.FilterGroup{})
	assert.NoError(t, err)
	assert.Len(t, res.Tours, 1)
	assert.Equal(t, 1, res.TotalData)
}

func TestTourService_Update(t *testing.T) {
	t.Run("empty request is rejected", func(t *testing.T) {
		svc, _ := newTourService(t)

		err := svc.Update(orgContext(), dto.UpdateTourRequest{}, "tour-id-123")
		assert.Error(t, err)
	})

	t.Run("missing tour returns not found", func(t *testing.T) {
		svc, mockRepo := newTourService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Update(orgContext(), dto.UpdateTourRequest{Name: "New Name"}, "tour-id-missing")
		assert.Error(t, err)
	})

	t.Run("deactivating a tour updates the active flag", func(t *testing.T) {
		svc, mockRepo := newTourService(t)
		inactive := false

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Contains(t, fields, model.FieldIsActive)

				return nil
			})

		err := svc.Update(orgContext(), dto.UpdateTourRequest{IsActive: &inactive}, "tour-id-123")
		assert.NoError(t, err)
	})
}

func TestTourService_Delete(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		svc, mockRepo := newTourService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Delete(orgContext(), "tour-id-123")
		assert.NoError(t, err)
	})

	t.Run("missing tour returns not found", func(t *testing.T) {
		svc, mockRepo := newTourService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Delete(orgContext(), "tour-id-missing")
		assert.Error(t, err)
	})
}
