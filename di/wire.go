//go:build wireinject
// +build wireinject

package di

import (
	"zimmery/config"
	"zimmery/infras/jwt"
	"zimmery/infras/kafka"
	"zimmery/infras/otel"
	"zimmery/infras/postgres"
	"zimmery/infras/redis"
	"zimmery/infras/s3"
	"zimmery/permissions"
	"zimmery/shared/cache"
	"zimmery/transport/http"
	"zimmery/transport/http/middleware"
	"zimmery/transport/http/router"

	"github.com/google/wire"

	authService "zimmery/internal/domains/auth/service"
	bookingRepository "zimmery/internal/domains/booking/repository"
	bookingService "zimmery/internal/domains/booking/service"
	customerRepository "zimmery/internal/domains/customer/repository"
	documentService "zimmery/internal/domains/document/service"
	errorlogRepository "zimmery/internal/domains/errorlog/repository"
	errorlogService "zimmery/internal/domains/errorlog/service"
	preferenceRepository "zimmery/internal/domains/preference/repository"
	preferenceService "zimmery/internal/domains/preference/service"
	signingService "zimmery/internal/domains/signing/service"
	templateFetcher "zimmery/internal/domains/template/fetcher"
	templateRepository "zimmery/internal/domains/template/repository"
	templateService "zimmery/internal/domains/template/service"
	userRepository "zimmery/internal/domains/user/repository"

	authHandler "zimmery/internal/handlers/auth"
	bookingHandler "zimmery/internal/handlers/booking"
	errorlogHandler "zimmery/internal/handlers/errorlog"
	preferenceHandler "zimmery/internal/handlers/preference"
	signingHandler "zimmery/internal/handlers/signing"
	templateHandler "zimmery/internal/handlers/template"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
	wire.Bind(new(middleware.SessionChecker), new(authService.Auth)),
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	customerRepository.New,
	bookingService.New,
)

var templateDomain = wire.NewSet(
	templateRepository.New,
	templateFetcher.New,
	templateService.New,
)

var documentDomain = wire.NewSet(
	documentService.New,
)

var signingDomain = wire.NewSet(
	signingService.New,
)

var errorlogDomain = wire.NewSet(
	errorlogRepository.New,
	errorlogService.New,
)

var preferenceDomain = wire.NewSet(
	preferenceRepository.New,
	preferenceService.New,
)

var domains = wire.NewSet(
	authDomain,
	bookingDomain,
	templateDomain,
	documentDomain,
	signingDomain,
	errorlogDomain,
	preferenceDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	templateHandler.New,
	signingHandler.New,
	errorlogHandler.New,
	preferenceHandler.New,
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
