package organization

import (
	"net/http"
	"tourcrm/infras/otel"
	"tourcrm/internal/domains/organization/model/dto"
	"tourcrm/internal/domains/organization/service"
	settingsSvc "tourcrm/internal/domains/settings/service"
	"tourcrm/shared/constant"
	"tourcrm/shared/validator"
	"tourcrm/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service  service.Organization
	settings settingsSvc.Settings
	otel     otel.Otel
}

func New(service service.Organization, settings settingsSvc.Settings, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		settings: settings,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/organization", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetOrganization)
		routerGroup.Patch("/", handler.UpdateOrganization)
		routerGroup.Post("/logo", handler.UploadLogo)
	})
}

// GetOrganization returns the caller's organization.
// @Summary Get the current organization
// @Description Retrieve the organization the authenticated user belongs to.
// @Tags Organization
// @Accept json
// @Produce json
// @Success 200 {object} dto.OrganizationResponse "Organization details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/organization [get]
// @Security BearerAuth
func (handler *Handler) GetOrganization(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOrganization")
	defer scope.End()

	organization, err := handler.service.GetCurrent(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get organization")

		response.WithError(w, err)

		return
	}

	if err := handler.settings.CacheOrganization(ctx, organization); err != nil {
		log.Warn().Err(err).Msg("failed to cache organization snapshot")
	}

	scope.AddEvent("Organization retrieved successfully")

	response.WithJSON(w, http.StatusOK, organization)
}

// UpdateOrganization updates the organization's branding and settings.
// @Summary Update the current organization
// @Description Update the organization's name, slug, color, or settings.
// @Tags Organization
// @Accept json
// @Produce json
// @Param request body dto.UpdateOrganizationRequest true "Update Organization Request"
// @Success 200 {object} response.Message "Organization updated successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/organization [patch]
// @Security BearerAuth
func (handler *Handler) UpdateOrganization(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateOrganization")
	defer scope.End()

	req := dto.UpdateOrganizationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update organization")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Organization updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Organization updated successfully")
}

// UploadLogo uploads the organization's logo image.
// @Summary Upload the organization logo
// @Description Upload a logo image and store its URL on the organization.
// @Tags Organization
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Logo image to upload"
// @Success 200 {object} dto.UploadLogoResponse "Logo uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/organization/logo [post]
// @Security BearerAuth
func (handler *Handler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadLogo")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	req := dto.UploadLogoRequest{
		Logo:     fileHeader,
		LogoFile: file,
	}

	url, err := handler.service.UploadLogo(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload logo")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Logo uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusOK, dto.UploadLogoResponse{LogoURL: url})
}
