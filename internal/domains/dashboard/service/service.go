package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"
	"tourcrm/config"
	"tourcrm/infras/otel"
	bookingModel "tourcrm/internal/domains/booking/model"
	bookingRepo "tourcrm/internal/domains/booking/repository"
	"tourcrm/internal/domains/dashboard/model/dto"
	leadModel "tourcrm/internal/domains/lead/model"
	leadRepo "tourcrm/internal/domains/lead/repository"
	messageModel "tourcrm/internal/domains/message/model"
	messageRepo "tourcrm/internal/domains/message/repository"
	"tourcrm/shared"
	"tourcrm/shared/cache"
	"tourcrm/shared/constant"
	gDto "tourcrm/shared/dto"
	"tourcrm/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheMetrics = "dashboard:metrics"

	upcomingWindowDays = 7
)

type Dashboard interface {
	Metrics(ctx context.Context) (dto.MetricsResponse, error)
}

type serviceImpl struct {
	leads    leadRepo.Lead
	messages messageRepo.Message
	bookings bookingRepo.Booking
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(leads leadRepo.Lead, messages messageRepo.Message, bookings bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Dashboard {
	return &serviceImpl{
		leads:    leads,
		messages: messages,
		bookings: bookings,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func orgScope(orgID, fieldOrgID, table string, filters ...gDto.Filter) gDto.FilterGroup {
	group := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{shared.FilterByOrg(orgID, fieldOrgID, table)},
	}

	for _, f := range filters {
		group.Filters = append(group.Filters, f)
	}

	return group
}

func (s *serviceImpl) Metrics(ctx context.Context) (res dto.MetricsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DashboardMetrics")
	defer scope.End()
	defer scope.TraceIfError(err)

	orgID, _ := ctx.Value(constant.ContextKeyOrgID).(string)
	cacheKey := shared.BuildCacheKey(cacheMetrics, orgID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for dashboard metrics")

		return res, nil
	}

	now := timezone.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.Add(24*time.Hour - time.Nanosecond)
	endOfWindow := startOfDay.AddDate(0, 0, upcomingWindowDays).Add(24*time.Hour - time.Nanosecond)

	res.NewLeadsToday, err = s.leads.Count(ctx, orgScope(orgID, leadModel.FieldOrganizationID, leadModel.TableName,
		gDto.Filter{
			Table:    leadModel.TableName,
			Field:    constant.FieldCreatedAt,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    startOfDay,
		}))
	if err != nil {
		log.Error().Err(err).Msg("failed to count new leads")

		return res, fmt.Errorf("failed to count new leads: %w", err)
	}

	res.UnreadMessages, err = s.messages.Count(ctx, orgScope(orgID, messageModel.FieldOrganizationID, messageModel.TableName,
		gDto.Filter{
			Table:    messageModel.TableName,
			Field:    messageModel.FieldIsRead,
			Operator: gDto.FilterOperatorEq,
			Value:    false,
		},
		gDto.Filter{
			Table:    messageModel.TableName,
			Field:    messageModel.FieldDirection,
			Operator: gDto.FilterOperatorEq,
			Value:    constant.MessageDirectionInbound,
		}))
	if err != nil {
		log.Error().Err(err).Msg("failed to count unread messages")

		return res, fmt.Errorf("failed to count unread messages: %w", err)
	}

	res.FollowUpsToday, err = s.countBookingsBetween(ctx, orgID, startOfDay, endOfDay)
	if err != nil {
		log.Error().Err(err).Msg("failed to count today's bookings")

		return res, fmt.Errorf("failed to count today's bookings: %w", err)
	}

	res.UpcomingTours, err = s.countBookingsBetween(ctx, orgID, startOfDay, endOfWindow)
	if err != nil {
		log.Error().Err(err).Msg("failed to count upcoming bookings")

		return res, fmt.Errorf("failed to count upcoming bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard metrics to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) countBookingsBetween(ctx context.Context, orgID string, from, to time.Time) (int, error) {
	return s.bookings.Count(ctx, orgScope(orgID, bookingModel.FieldOrganizationID, bookingModel.TableName, //nolint:wrapcheck
		gDto.Filter{
			ArgName:  "booking_date_from",
			Table:    bookingModel.TableName,
			Field:    bookingModel.FieldBookingDate,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    from,
		},
		gDto.Filter{
			ArgName:  "booking_date_to",
			Table:    bookingModel.TableName,
			Field:    bookingModel.FieldBookingDate,
			Operator: gDto.FilterOperatorLessEq,
			Value:    to,
		},
		gDto.Filter{
			Table:    bookingModel.TableName,
			Field:    bookingModel.FieldStatus,
			Operator: gDto.FilterOperatorNotEq,
			Value:    constant.BookingStatusCancelled,
		}))
}
