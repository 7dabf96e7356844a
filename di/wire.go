//go:build wireinject
// +build wireinject

package di

import (
	"aperture/config"
	"aperture/infras/kafka"
	"aperture/infras/otel"
	"aperture/infras/postgres"
	"aperture/infras/redis"
	"aperture/infras/s3"
	"aperture/shared/cache"
	"aperture/transport/http"
	"aperture/transport/http/middleware"
	"aperture/transport/http/router"

	adminService "aperture/internal/domains/admin/service"
	inquiryRepository "aperture/internal/domains/inquiry/repository"
	inquiryService "aperture/internal/domains/inquiry/service"
	mediaRepository "aperture/internal/domains/media/repository"
	mediaService "aperture/internal/domains/media/service"
	offeringRepository "aperture/internal/domains/offering/repository"
	offeringService "aperture/internal/domains/offering/service"
	adminHandler "aperture/internal/handlers/admin"
	siteHandler "aperture/internal/handlers/site"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var mediaDomain = wire.NewSet(
	mediaRepository.New,
	mediaService.New,
)

var offeringDomain = wire.NewSet(
	offeringRepository.New,
	offeringService.New,
)

var inquiryDomain = wire.NewSet(
	inquiryRepository.New,
	inquiryService.New,
)

var adminDomain = wire.NewSet(
	adminService.New,
)

var domains = wire.NewSet(
	mediaDomain,
	offeringDomain,
	inquiryDomain,
	adminDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	adminHandler.New,
	siteHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
