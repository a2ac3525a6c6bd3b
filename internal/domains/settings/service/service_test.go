package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tourcrm/infras/otel/mocks"
	orgDto "tourcrm/internal/domains/organization/model/dto"
	settingsMocks "tourcrm/internal/domains/settings/mocks"
	"tourcrm/internal/domains/settings/model/dto"
	"tourcrm/internal/domains/settings/service"
	"tourcrm/shared/constant"
)

func newSettingsService(t *testing.T) (service.Settings, *settingsMocks.MockPreferences) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockPrefs := settingsMocks.NewMockPreferences(ctrl)
	svc := service.New(mockPrefs, mocks.NewOtel())

	return svc, mockPrefs
}

func TestSettingsService_GetPreferences(t *testing.T) {
	t.Run("defaults fill in missing keys", func(t *testing.T) {
		svc, mockPrefs := newSettingsService(t)

		mockPrefs.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return("", false, nil).
			Times(3)

		res, err := svc.GetPreferences(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, dto.DefaultTheme, res.Theme)
		assert.Equal(t, dto.DefaultLanguage, res.Language)
		assert.Equal(t, "USD", res.Currency)
	})

	t.Run("stored values override defaults", func(t *testing.T) {
		svc, mockPrefs := newSettingsService(t)

		mockPrefs.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, key string) (string, bool, error) {
				if key == constant.PrefKeyTheme {
					return "dark", true, nil
				}

				return "", false, nil
			}).
			Times(3)

		res, err := svc.GetPreferences(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "dark", res.Theme)
		assert.Equal(t, dto.DefaultLanguage, res.Language)
	})

	t.Run("store failure is propagated", func(t *testing.T) {
		svc, mockPrefs := newSettingsService(t)

		mockPrefs.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return("", false, errors.New("store unavailable")).
			MinTimes(1)

		_, err := svc.GetPreferences(context.Background())
		assert.Error(t, err)
	})
}

func TestSettingsService_UpdatePreferences(t *testing.T) {
	t.Run("only provided keys are written", func(t *testing.T) {
		svc, mockPrefs := newSettingsService(t)

		mockPrefs.EXPECT().
			Set(gomock.Any(), constant.PrefKeyTheme, "dark").
			Return(nil)

		err := svc.UpdatePreferences(context.Background(), dto.UpdatePreferencesRequest{Theme: "dark"})
		assert.NoError(t, err)
	})

	t.Run("write failure is propagated", func(t *testing.T) {
		svc, mockPrefs := newSettingsService(t)

		mockPrefs.EXPECT().
			Set(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("write failed"))

		err := svc.UpdatePreferences(context.Background(), dto.UpdatePreferencesRequest{Currency: "EUR"})
		assert.Error(t, err)
	})
}

func TestSettingsService_OrganizationSnapshot(t *testing.T) {
	t.Run("round trip through the store", func(t *testing.T) {
		svc, mockPrefs := newSettingsService(t)

		var stored string

		mockPrefs.EXPECT().
			Set(gomock.Any(), constant.PrefKeyOrganization, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, value string) error {
				stored = value

				return nil
			})

		err := svc.CacheOrganization(context.Background(), orgDto.OrganizationResponse{
			ID:   "org-id-123",
			Name: "Douro Adventures",
		})
		assert.NoError(t, err)

		mockPrefs.EXPECT().
			Get(gomock.Any(), constant.PrefKeyOrganization).
			DoAndReturn(func(_ context.Context, _ string) (string, bool, error) {
				return stored, true, nil
			})

		snapshot, found := svc.CachedOrganization(context.Background())
		assert.True(t, found)
		assert.Equal(t, "Douro Adventures", snapshot.Name)
	})

	t.Run("corrupt snapshot reads as absent", func(t *testing.T) {
		svc, mockPrefs := newSettingsService(t)

		mockPrefs.EXPECT().
			Get(gomock.Any(), constant.PrefKeyOrganization).
			Return("{not json", true, nil)

		_, found := svc.CachedOrganization(context.Background())
		assert.False(t, found)
	})
}
