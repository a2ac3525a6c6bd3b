package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"tourcrm/config"
	"tourcrm/infras/otel"
	"tourcrm/internal/domains/lead/model"
	"tourcrm/internal/domains/lead/model/dto"
	"tourcrm/internal/domains/lead/repository"
	notificationDto "tourcrm/internal/domains/notification/model/dto"
	notificationSvc "tourcrm/internal/domains/notification/service"
	"tourcrm/internal/events"
	"tourcrm/shared"
	"tourcrm/shared/cache"
	"tourcrm/shared/constant"
	gDto "tourcrm/shared/dto"
	"tourcrm/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetLead    = "lead:get"
	cacheGetAllLead = "lead:gets"
	cacheCountLead  = "lead:count"
)

type Lead interface {
	Create(ctx context.Context, req dto.CreateLeadRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetLeadsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.LeadResponse, error)
	Update(ctx context.Context, req dto.UpdateLeadRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Lead
	notifySvc notificationSvc.Notification
	publisher events.Publisher
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Lead, notifySvc notificationSvc.Notification, publisher events.Publisher, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Lead {
	return &serviceImpl{
		repo:      repo,
		notifySvc: notifySvc,
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

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateLeadRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateLead")
	defer scope.End()
	defer scope.TraceIfError(err)

	orgID, _ := ctx.Value(constant.ContextKeyOrgID).(string)
	lead := req.ToModel(orgID)

	if err = s.repo.Insert(ctx, lead); err != nil {
		log.Error().Err(err).Msg("failed to create lead")

		return fmt.Errorf("failed to create lead: %w", err)
	}

	if err := s.notifySvc.Create(ctx, notificationDto.CreateNotificationRequest{
		Type:    constant.NotificationTypeNewLead,
		Title:   "New lead",
		Message: fmt.Sprintf("%s reached out via %s", lead.Name, lead.Channel),
		LinkTo:  "/leads/" + lead.ID,
	}); err != nil {
		log.Error().Err(err).Msg("failed to create lead notification")
	}

	s.publisher.Publish(ctx, events.Event{
		Type:           events.TypeLeadCreated,
		OrganizationID: orgID,
		EntityID:       lead.ID,
		Payload:        map[string]string{"name": lead.Name, "channel": lead.Channel},
	})

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllLead)
		shared.InvalidateCaches(c, s.cache, cacheCountLead)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetLeadsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllLeads")
	defer scope.End()
	defer scope.TraceIfError(err)

	// The inbox view wants the most recently contacted leads first.
	if req.SortBy == "" {
		req.SortBy = model.FieldLastContact
		req.SortDir = gDto.SortDirDesc
	}

	scopedFilter := scoped(ctx, filter)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllLead, req, scopedFilter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for leads")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count leads")

		return res, fmt.Errorf("failed to count leads: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, scopedFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get leads")

		return res, fmt.Errorf("failed to get leads: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save leads to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CountLeads")
	defer scope.End()
	defer scope.TraceIfError(err)

	scopedFilter := scoped(ctx, filter)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountLead, req, scopedFilter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, scopedFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count leads")

		return res, fmt.Errorf("failed to count leads: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save lead count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.LeadResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetLead")
	defer scope.End()
	defer scope.TraceIfError(err)

	// The relative contact label depends on the current clock, so single lead
	// reads skip the cache.
	lead, err := s.repo.Get(ctx, scoped(ctx, shared.FilterByID(id, model.FieldID, model.TableName)))
	if err != nil {
		log.Error().Err(err).Msg("failed to get lead")

		return res, fmt.Errorf("failed to get lead: %w", err)
	}

	if lead.ID == constant.Empty {
		return res, failure.NotFound("lead not found") // nolint:wrapcheck
	}

	res.FromModel(lead)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateLeadRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateLead")
	defer scope.End()
	defer scope.TraceIfError(nil)

	if req == (dto.UpdateLeadRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	orgID, _ := ctx.Value(constant.ContextKeyOrgID).(string)
	filter := scoped(ctx, shared.FilterByID(id, model.FieldID, model.TableName))

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if lead exists")

		return fmt.Errorf("failed to check if lead exists: %w", err)
	}

	if !exist {
		return failure.NotFound("lead not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update lead")

		return fmt.Errorf("failed to update lead: %w", err)
	}

	if req.Status != "" {
		s.publisher.Publish(ctx, events.Event{
			Type:           events.TypeLeadStatusMoved,
			OrganizationID: orgID,
			EntityID:       id,
			Payload:        map[string]string{"status": req.Status},
		})
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetLead, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete lead from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllLead)
		shared.InvalidateCaches(c, s.cache, cacheCountLead)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteLead")
	defer scope.End()
	defer scope.TraceIfError(nil)

	filter := scoped(ctx, shared.FilterByID(id, model.FieldID, model.TableName))

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if lead exists")

		return fmt.Errorf("failed to check if lead exists: %w", err)
	}

	if !exist {
		return failure.NotFound("lead not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete lead")

		return fmt.Errorf("failed to delete lead: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetLead, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete lead from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllLead)
		shared.InvalidateCaches(c, s.cache, cacheCountLead)
	}()

	return nil
}
