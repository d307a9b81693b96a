package service

import (
	"github.com/MKhiriev/go-matjip/internal/config"
	"github.com/MKhiriev/go-matjip/internal/logger"
	"github.com/MKhiriev/go-matjip/internal/store"
	"github.com/MKhiriev/go-matjip/internal/validators"
	"github.com/MKhiriev/go-matjip/models"
)

type Services struct {
	TokenService      TokenService
	AccountService    AccountService
	ReviewService     ReviewService
	RestaurantService RestaurantService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewRequestValidator(cfg.Server.MaxUploadSize)
	tokens := NewTokenService(cfg.App.TokenSignKey, cfg.App.TokenIssuer, logger)

	return &Services{
		TokenService: tokens,
		AccountService: NewAccountService(
			storages.AccountRepository,
			storages.IconStore,
			NewPasswordHasher(cfg.App.PasswordHashCost, logger),
			NewTagAllocator(storages.TagSequence, cfg.App.TagAllocationRetries, logger),
			tokens,
			validator,
			logger,
		),
		ReviewService: NewReviewService(
			storages.ReviewRepository,
			storages.AccountRepository,
			storages.RestaurantRepository,
			validator,
			cfg.App.ReviewPageSize,
			logger,
		),
		RestaurantService: NewRestaurantService(storages.RestaurantRepository, logger),
		AppInfoService:    appInfoService,
	}, nil
}
