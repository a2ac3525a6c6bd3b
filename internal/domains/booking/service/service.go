package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"tourcrm/config"
	"tourcrm/infras/otel"
	"tourcrm/internal/domains/booking/model"
	"tourcrm/internal/domains/booking/model/dto"
	"tourcrm/internal/domains/booking/repository"
	leadModel "tourcrm/internal/domains/lead/model"
	leadRepo "tourcrm/internal/domains/lead/repository"
	notificationModel "tourcrm/internal/domains/notification/model"
	tourModel "tourcrm/internal/domains/tour/model"
	tourRepo "tourcrm/internal/domains/tour/repository"
	"tourcrm/internal/events"
	"tourcrm/shared"
	"tourcrm/shared/cache"
	"tourcrm/shared/constant"
	gDto "tourcrm/shared/dto"
	"tourcrm/shared/failure"
	"tourcrm/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Booking
	tourRepo  tourRepo.Tour
	leadRepo  leadRepo.Lead
	publisher events.Publisher
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Booking, tourRepo tourRepo.Tour, leadRepo leadRepo.Lead, publisher events.Publisher, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:      repo,
		tourRepo:  tourRepo,
		leadRepo:  leadRepo,
		publisher: publisher,
		cfg:       cfg,
		cache:     cache,
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

func scopedTour(ctx context.Context, id string) gDto.FilterGroup {
	orgID, _ := ctx.Value(constant.ContextKeyOrgID).(string)

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			shared.FilterByOrg(orgID, tourModel.FieldOrganizationID, tourModel.TableName),
			shared.FilterByID(id, tourModel.FieldID, tourModel.TableName),
		},
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	orgID, _ := ctx.Value(constant.ContextKeyOrgID).(string)

	tour, err := s.tourRepo.Get(ctx, scopedTour(ctx, req.TourID))
	if err != nil {
		log.Error().Err(err).Msg("failed to look up tour")

		return fmt.Errorf("failed to look up tour: %w", err)
	}

	if tour.ID == constant.Empty {
		return failure.BadRequestFromString("tour does not exist") // nolint:wrapcheck
	}

	booking, err := req.ToModel(orgID)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return failure.BadRequestFromString(fmt.Sprintf("invalid booking request: %v", err)) // nolint:wrapcheck
	}

	if booking.Currency == "USD" && tour.Currency != "" {
		booking.Currency = tour.Currency
	}

	notification := notificationModel.Notification{
		ID:             uuid.NewString(),
		OrganizationID: orgID,
		Type:           constant.NotificationTypeBookingConfirmed,
		Title:          "New booking",
		Message:        fmt.Sprintf("%s booked %s", booking.ClientName, tour.Name),
		LinkTo:         "/bookings/" + booking.ID,
		CreatedAt:      timezone.Now(),
	}

	if err = s.repo.InsertWithNotification(ctx, booking, notification); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return fmt.Errorf("failed to create booking: %w", err)
	}

	// A booking closes the deal, its lead moves to converted.
	if booking.LeadID != "" {
		now := timezone.Now()

		leadFilter := gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				shared.FilterByOrg(orgID, leadModel.FieldOrganizationID, leadModel.TableName),
				shared.FilterByID(booking.LeadID, leadModel.FieldID, leadModel.TableName),
			},
		}

		err := s.leadRepo.Update(ctx, map[string]any{
			leadModel.FieldStatus:      constant.LeadStatusConverted,
			leadModel.FieldLastContact: now,
			constant.FieldUpdatedAt:    now,
		}, leadFilter)
		if err != nil {
			log.Error().Err(err).Str("lead_id", booking.LeadID).Msg("failed to convert lead")
		}
	}

	s.publisher.Publish(ctx, events.Event{
		Type:           events.TypeBookingCreated,
		OrganizationID: orgID,
		EntityID:       booking.ID,
		Payload: map[string]string{
			"tour_id":      booking.TourID,
			"client_name":  booking.ClientName,
			"booking_date": req.BookingDate,
		},
	})

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	// The calendar wants the soonest departures first.
	if req.SortBy == "" {
		req.SortBy = model.FieldBookingDate
		req.SortDir = gDto.SortDirAsc
	}

	scopedFilter := scoped(ctx, filter)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, scopedFilter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, scopedFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CountBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	scopedFilter := scoped(ctx, filter)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, scopedFilter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, scopedFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, scoped(ctx, shared.FilterByID(id, model.FieldID, model.TableName)))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateBooking")
	defer scope.End()
	defer scope.TraceIfError(nil)

	if req == (dto.UpdateBookingRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	orgID, _ := ctx.Value(constant.ContextKeyOrgID).(string)
	filter := scoped(ctx, shared.FilterByID(id, model.FieldID, model.TableName))

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	switch req.Status {
	case constant.BookingStatusConfirmed:
		s.publisher.Publish(ctx, events.Event{
			Type:           events.TypeBookingConfirmed,
			OrganizationID: orgID,
			EntityID:       id,
		})
	case constant.BookingStatusCancelled:
		s.publisher.Publish(ctx, events.Event{
			Type:           events.TypeBookingCancelled,
			OrganizationID: orgID,
			EntityID:       id,
		})
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteBooking")
	defer scope.End()
	defer scope.TraceIfError(nil)

	filter := scoped(ctx, shared.FilterByID(id, model.FieldID, model.TableName))

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}
