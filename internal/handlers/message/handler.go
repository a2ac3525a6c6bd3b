package message

import (
	"net/http"
	"tourcrm/infras/otel"
	"tourcrm/internal/domains/message/model/dto"
	"tourcrm/internal/domains/message/service"
	"tourcrm/shared/constant"
	"tourcrm/shared/validator"
	"tourcrm/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Message
	otel    otel.Otel
}

func New(service service.Message, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/messages", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateMessage)
		routerGroup.Get("/unread-count", handler.GetUnreadCount)
		routerGroup.Get("/lead/{id}", handler.GetLeadMessages)
		routerGroup.Post("/lead/{id}/read", handler.MarkLeadMessagesRead)
	})
}

// CreateMessage appends a message to a lead's conversation thread.
// @Summary Create a new message
// @Description Append a message to a lead's conversation thread.
// @Tags Message
// @Accept json
// @Produce json
// @Param request body dto.CreateMessageRequest true "Create Message Request"
// @Success 201 {object} response.Message "Message created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/messages [post]
// @Security BearerAuth
func (handler *Handler) CreateMessage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMessage")
	defer scope.End()

	req := dto.CreateMessageRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create message")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Message created successfully")

	response.WithMessage(writer, http.StatusCreated, "Message created successfully")
}

// GetLeadMessages retrieves the conversation thread for a lead.
// @Summary Get a lead's messages
// @Description Retrieve the full conversation thread for a lead, oldest first.
// @Tags Message
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Success 200 {object} dto.GetMessagesResponse "Conversation thread"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/messages/lead/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetLeadMessages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLeadMessages")
	defer scope.End()

	leadID := chi.URLParam(r, constant.RequestParamID)

	messages, err := handler.service.GetByLead(ctx, leadID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get lead messages")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Messages retrieved successfully")

	response.WithJSON(w, http.StatusOK, messages)
}

// MarkLeadMessagesRead marks every message in a lead's thread as read.
// @Summary Mark a lead's messages as read
// @Description Mark every message in a lead's conversation thread as read.
// @Tags Message
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Success 200 {object} response.Message "Messages marked as read"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/messages/lead/{id}/read [post]
// @Security BearerAuth
func (handler *Handler) MarkLeadMessagesRead(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkLeadMessagesRead")
	defer scope.End()

	leadID := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.MarkLeadMessagesRead(ctx, leadID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark lead messages read")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Messages marked as read")

	response.WithMessage(w, http.StatusOK, "Messages marked as read")
}

// GetUnreadCount returns the number of unread inbound messages.
// @Summary Get the unread message count
// @Description Count unread inbound messages across all leads.
// @Tags Message
// @Accept json
// @Produce json
// @Success 200 {object} dto.UnreadCountResponse "Unread count"
// @Failure 500 {object} response.Error
// @Router /v1/messages/unread-count [get]
// @Security BearerAuth
func (handler *Handler) GetUnreadCount(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUnreadCount")
	defer scope.End()

	count, err := handler.service.UnreadCount(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to count unread messages")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Unread count retrieved successfully")

	response.WithJSON(w, http.StatusOK, dto.UnreadCountResponse{UnreadCount: count})
}
