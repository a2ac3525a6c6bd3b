package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"tourcrm/config"
	"tourcrm/infras/otel"
	leadModel "tourcrm/internal/domains/lead/model"
	leadRepo "tourcrm/internal/domains/lead/repository"
	"tourcrm/internal/domains/message/model"
	"tourcrm/internal/domains/message/model/dto"
	"tourcrm/internal/domains/message/repository"
	notificationDto "tourcrm/internal/domains/notification/model/dto"
	notificationSvc "tourcrm/internal/domains/notification/service"
	"tourcrm/internal/events"
	"tourcrm/shared"
	"tourcrm/shared/constant"
	gDto "tourcrm/shared/dto"
	"tourcrm/shared/failure"
	"tourcrm/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Message interface {
	Create(ctx context.Context, req dto.CreateMessageRequest) error
	GetByLead(ctx context.Context, leadID string) (dto.GetMessagesResponse, error)
	MarkLeadMessagesRead(ctx context.Context, leadID string) error
	UnreadCount(ctx context.Context) (int, error)
}

type serviceImpl struct {
	repo      repository.Message
	leadRepo  leadRepo.Lead
	notifySvc notificationSvc.Notification
	publisher events.Publisher
	cfg       *config.Config
	otel      otel.Otel
}

func New(repo repository.Message, leadRepo leadRepo.Lead, notifySvc notificationSvc.Notification, publisher events.Publisher, cfg *config.Config, otel otel.Otel) Message {
	return &serviceImpl{
		repo:      repo,
		leadRepo:  leadRepo,
		notifySvc: notifySvc,
		publisher: publisher,
		cfg:       cfg,
		otel:      otel,
	}
}

func scoped(ctx context.Context, filter gDto.FilterGroup) gDto.FilterGroup {
	orgID, _ := ctx.Value(constant.ContextKeyOrgID).(string)

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			shared.FilterByOrg(orgID, model.FieldOrganizationID, model.TableName),
			filter,
		},
	}
}

func byLead(leadID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldLeadID,
				Value:    leadID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateMessageRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateMessage")
	defer scope.End()
	defer scope.TraceIfError(err)

	orgID, _ := ctx.Value(constant.ContextKeyOrgID).(string)

	leadFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			shared.FilterByOrg(orgID, leadModel.FieldOrganizationID, leadModel.TableName),
			shared.FilterByID(req.LeadID, leadModel.FieldID, leadModel.TableName),
		},
	}

	lead, err := s.leadRepo.Get(ctx, leadFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to look up lead")

		return fmt.Errorf("failed to look up lead: %w", err)
	}

	if lead.ID == constant.Empty {
		return failure.BadRequestFromString("lead does not exist") // nolint:wrapcheck
	}

	message := req.ToModel(orgID)

	if err = s.repo.Insert(ctx, message); err != nil {
		log.Error().Err(err).Msg("failed to create message")

		return fmt.Errorf("failed to create message: %w", err)
	}

	// Any traffic on the thread counts as contact.
	now := timezone.Now()
	err = s.leadRepo.Update(ctx, map[string]any{
		leadModel.FieldLastContact: now,
		constant.FieldUpdatedAt:    now,
	}, leadFilter)
	if err != nil {
		log.Error().Err(err).Str("lead_id", req.LeadID).Msg("failed to touch lead last contact")
	}

	if message.Direction == constant.MessageDirectionInbound {
		if err := s.notifySvc.Create(ctx, notificationDto.CreateNotificationRequest{
			Type:    constant.NotificationTypeNewMessage,
			Title:   "New message",
			Message: fmt.Sprintf("%s sent a message via %s", lead.Name, message.Channel),
			LinkTo:  "/leads/" + lead.ID,
		}); err != nil {
			log.Error().Err(err).Msg("failed to create message notification")
		}
	}

	s.publisher.Publish(ctx, events.Event{
		Type:           events.TypeMessageReceived,
		OrganizationID: orgID,
		EntityID:       message.ID,
		Payload:        map[string]string{"lead_id": message.LeadID, "direction": message.Direction},
	})

	return nil
}

// GetByLead returns the full thread for one lead, oldest message first.
func (s *serviceImpl) GetByLead(ctx context.Context, leadID string) (res dto.GetMessagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMessagesByLead")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		SortBy:  model.FieldCreatedAt,
		SortDir: gDto.SortDirAsc,
	}

	models, err := s.repo.GetAll(ctx, params, scoped(ctx, byLead(leadID)))
	if err != nil {
		log.Error().Err(err).Msg("failed to get messages")

		return res, fmt.Errorf("failed to get messages: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) MarkLeadMessagesRead(ctx context.Context, leadID string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkLeadMessagesRead")
	defer scope.End()
	defer scope.TraceIfError(nil)

	if err := s.repo.Update(ctx, map[string]any{model.FieldIsRead: true}, scoped(ctx, byLead(leadID))); err != nil {
		log.Error().Err(err).Msg("failed to mark messages read")

		return fmt.Errorf("failed to mark messages read: %w", err)
	}

	return nil
}

func (s *serviceImpl) UnreadCount(ctx context.Context) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UnreadMessageCount")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldIsRead,
				Value:    false,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	res, err = s.repo.Count(ctx, scoped(ctx, filter))
	if err != nil {
		log.Error().Err(err).Msg("failed to count unread messages")

		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}

	return res, nil
}
