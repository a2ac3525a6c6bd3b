package settings

import (
	"net/http"
	"tourcrm/infras/otel"
	"tourcrm/internal/domains/settings/model/dto"
	"tourcrm/internal/domains/settings/service"
	"tourcrm/shared/constant"
	"tourcrm/shared/validator"
	"tourcrm/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Settings
	otel    otel.Otel
}

func New(service service.Settings, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/settings", func(routerGroup chi.Router) {
		routerGroup.Get("/preferences", handler.GetPreferences)
		routerGroup.Patch("/preferences", handler.UpdatePreferences)
	})
}

// GetPreferences returns the organization's display preferences.
// @Summary Get preferences
// @Description Retrieve the organization's theme, language, and currency preferences.
// @Tags Settings
// @Accept json
// @Produce json
// @Success 200 {object} dto.PreferencesResponse "Preferences"
// @Failure 500 {object} response.Error
// @Router /v1/settings/preferences [get]
// @Security BearerAuth
func (handler *Handler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPreferences")
	defer scope.End()

	preferences, err := handler.service.GetPreferences(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get preferences")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Preferences retrieved successfully")

	response.WithJSON(w, http.StatusOK, preferences)
}

// UpdatePreferences updates the organization's display preferences.
// @Summary Update preferences
// @Description Update the organization's theme, language, or currency preferences.
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.UpdatePreferencesRequest true "Update Preferences Request"
// @Success 200 {object} response.Message "Preferences updated successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/settings/preferences [patch]
// @Security BearerAuth
func (handler *Handler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePreferences")
	defer scope.End()

	req := dto.UpdatePreferencesRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdatePreferences(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update preferences")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Preferences updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Preferences updated successfully")
}
