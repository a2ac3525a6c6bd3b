package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Notification=MockNotificationService

import (
	"context"
	"fmt"
	"tourcrm/config"
	"tourcrm/infras/otel"
	"tourcrm/internal/domains/notification/model"
	"tourcrm/internal/domains/notification/model/dto"
	"tourcrm/internal/domains/notification/repository"
	"tourcrm/shared"
	"tourcrm/shared/constant"
	gDto "tourcrm/shared/dto"
	"tourcrm/shared/failure"

	"github.com/rs/zerolog/log"
)

type Notification interface {
	Create(ctx context.Context, req dto.CreateNotificationRequest) error
	GetAll(ctx context.Context) (dto.GetNotificationsResponse, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	UnreadCount(ctx context.Context) (int, error)
}

type serviceImpl struct {
	repo repository.Notification
	cfg  *config.Config
	otel otel.Otel
}

// New builds the notification service. The bell dropdown refetches on every
// open and rows flip to read immediately after, so this service skips the
// cache layer entirely.
func New(repo repository.Notification, cfg *config.Config, otel otel.Otel) Notification {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
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

func unreadFilter() gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldIsRead,
				Value:    false,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateNotificationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateNotification")
	defer scope.End()
	defer scope.TraceIfError(err)

	orgID, _ := ctx.Value(constant.ContextKeyOrgID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(orgID)); err != nil {
		log.Error().Err(err).Msg("failed to create notification")

		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetNotificationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllNotifications")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		Limit:   constant.NotificationListLimit,
		SortBy:  model.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	models, err := s.repo.GetAll(ctx, params, scoped(ctx, gDto.FilterGroup{}))
	if err != nil {
		log.Error().Err(err).Msg("failed to get notifications")

		return res, fmt.Errorf("failed to get notifications: %w", err)
	}

	unread, err := s.UnreadCount(ctx)
	if err != nil {
		return res, err
	}

	res.FromModels(models, unread)

	return res, nil
}

func (s *serviceImpl) MarkRead(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkNotificationRead")
	defer scope.End()
	defer scope.TraceIfError(nil)

	filter := scoped(ctx, shared.FilterByID(id, model.FieldID, model.TableName))

	notification, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get notification")

		return fmt.Errorf("failed to get notification: %w", err)
	}

	if notification.ID == constant.Empty {
		return failure.NotFound("notification not found") // nolint:wrapcheck
	}

	if err := s.repo.Update(ctx, map[string]any{model.FieldIsRead: true}, filter); err != nil {
		log.Error().Err(err).Msg("failed to mark notification read")

		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	return nil
}

// MarkAllRead flips every unread notification in the organization in one
// statement.
func (s *serviceImpl) MarkAllRead(ctx context.Context) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkAllNotificationsRead")
	defer scope.End()
	defer scope.TraceIfError(nil)

	if err := s.repo.Update(ctx, map[string]any{model.FieldIsRead: true}, scoped(ctx, unreadFilter())); err != nil {
		log.Error().Err(err).Msg("failed to mark all notifications read")

		return fmt.Errorf("failed to mark all notifications read: %w", err)
	}

	return nil
}

func (s *serviceImpl) UnreadCount(ctx context.Context) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UnreadNotificationCount")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.Count(ctx, scoped(ctx, unreadFilter()))
	if err != nil {
		log.Error().Err(err).Msg("failed to count unread notifications")

		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return res, nil
}
