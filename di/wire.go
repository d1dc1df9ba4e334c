//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"basera/config"
	"basera/infras/jwt"
	"basera/infras/kafka"
	"basera/infras/otel"
	"basera/infras/postgres"
	"basera/infras/redis"
	"basera/infras/s3"
	"basera/shared/cache"
	"basera/transport/http"
	"basera/transport/http/middleware"
	"basera/transport/http/router"

	authService "basera/internal/domains/auth/service"
	bookingRepository "basera/internal/domains/booking/repository"
	bookingService "basera/internal/domains/booking/service"
	roomRepository "basera/internal/domains/room/repository"
	roomService "basera/internal/domains/room/service"
	userRepository "basera/internal/domains/user/repository"
	authHandler "basera/internal/handlers/auth"
	bookingHandler "basera/internal/handlers/booking"
	roomHandler "basera/internal/handlers/room"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuth,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var domains = wire.NewSet(
	roomDomain,
	bookingDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	bookingHandler.New,
	authHandler.New,
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
