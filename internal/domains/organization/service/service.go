package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"tourcrm/config"
	"tourcrm/infras/otel"
	"tourcrm/infras/s3"
	"tourcrm/internal/domains/organization/model"
	"tourcrm/internal/domains/organization/model/dto"
	"tourcrm/internal/domains/organization/repository"
	"tourcrm/shared"
	"tourcrm/shared/cache"
	"tourcrm/shared/constant"
	"tourcrm/shared/failure"

	"github.com/rs/zerolog/log"
)

const cacheGetOrganization = "organization:get"

type Organization interface {
	GetCurrent(ctx context.Context) (dto.OrganizationResponse, error)
	Update(ctx context.Context, req dto.UpdateOrganizationRequest) error
	UploadLogo(ctx context.Context, req dto.UploadLogoRequest) (string, error)
}

type serviceImpl struct {
	repo  repository.Organization
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Organization, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Organization {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func orgID(ctx context.Context) string {
	id, _ := ctx.Value(constant.ContextKeyOrgID).(string)

	return id
}

func (s *serviceImpl) GetCurrent(ctx context.Context) (res dto.OrganizationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetOrganization")
	defer scope.End()
	defer scope.TraceIfError(err)

	id := orgID(ctx)
	cacheKey := shared.BuildCacheKey(cacheGetOrganization, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for organization")

		return res, nil
	}

	organization, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get organization")

		return res, fmt.Errorf("failed to get organization: %w", err)
	}

	if organization.ID == constant.Empty {
		return res, failure.NotFound("organization not found") // nolint:wrapcheck
	}

	res.FromModel(organization)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save organization to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateOrganizationRequest) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateOrganization")
	defer scope.End()
	defer scope.TraceIfError(nil)

	if req == (dto.UpdateOrganizationRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	id := orgID(ctx)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if organization exists")

		return fmt.Errorf("failed to check if organization exists: %w", err)
	}

	if !exist {
		return failure.NotFound("organization not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update organization")

		return fmt.Errorf("failed to update organization: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetOrganization, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete organization from cache")
		}
	}()

	return nil
}

// UploadLogo stores the logo in the object store and points the organization
// at the new public URL, removing the previous file afterwards.
func (s *serviceImpl) UploadLogo(ctx context.Context, req dto.UploadLogoRequest) (url string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadOrganizationLogo")
	defer scope.End()
	defer scope.TraceIfError(err)

	id := orgID(ctx)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	organization, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get organization")

		return "", fmt.Errorf("failed to get organization: %w", err)
	}

	if organization.ID == constant.Empty {
		return "", failure.NotFound("organization not found") // nolint:wrapcheck
	}

	bucketName := s.cfg.External.S3.BucketName

	url, err = s.s3.UploadFile(ctx, bucketName, model.EntityName, req.LogoFile, req.Logo, req.Logo.Filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload logo")

		return "", fmt.Errorf("failed to upload logo: %w", err)
	}

	if err := s.repo.Update(ctx, map[string]any{model.FieldLogoURL: url}, filter); err != nil {
		log.Error().Err(err).Msg("failed to update logo url")

		return "", fmt.Errorf("failed to update logo url: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if organization.LogoURL != "" {
			objectName := s.s3.GetObjectNameFromURL(bucketName, organization.LogoURL)

			if err := s.s3.DeleteFile(c, bucketName, model.EntityName, objectName); err != nil {
				log.Error().Err(err).Msg("failed to delete previous logo")
			}
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetOrganization, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete organization from cache")
		}
	}()

	return url, nil
}
