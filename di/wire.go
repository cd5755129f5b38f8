//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/Ayy-man/spa-booking-v2-sub002/config"
	"github.com/Ayy-man/spa-booking-v2-sub002/infras/jwt"
	"github.com/Ayy-man/spa-booking-v2-sub002/infras/kafka"
	"github.com/Ayy-man/spa-booking-v2-sub002/infras/otel"
	"github.com/Ayy-man/spa-booking-v2-sub002/infras/postgres"
	"github.com/Ayy-man/spa-booking-v2-sub002/infras/redis"
	"github.com/Ayy-man/spa-booking-v2-sub002/permissions"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/cache"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/lock"
	"github.com/Ayy-man/spa-booking-v2-sub002/transport/http"
	"github.com/Ayy-man/spa-booking-v2-sub002/transport/http/middleware"
	"github.com/Ayy-man/spa-booking-v2-sub002/transport/http/router"

	authService "github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/auth/service"
	bookingRepository "github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/booking/repository"
	bookingService "github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/booking/service"
	catalogRepository "github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/catalog/repository"
	catalogService "github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/catalog/service"
	roomRepository "github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/room/repository"
	roomService "github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/room/service"
	staffRepository "github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/staff/repository"
	staffService "github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/staff/service"
	userRepository "github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/user/repository"

	authHandler "github.com/Ayy-man/spa-booking-v2-sub002/internal/handlers/auth"
	bookingHandler "github.com/Ayy-man/spa-booking-v2-sub002/internal/handlers/booking"
	catalogHandler "github.com/Ayy-man/spa-booking-v2-sub002/internal/handlers/catalog"
	roomHandler "github.com/Ayy-man/spa-booking-v2-sub002/internal/handlers/room"
	staffHandler "github.com/Ayy-man/spa-booking-v2-sub002/internal/handlers/staff"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	permissions.Get,
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	lock.NewKeyed,
)

var schedulingEngine = wire.NewSet(
	provideEngine,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
)

var staffDomain = wire.NewSet(
	staffRepository.New,
	staffService.New,
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
	catalogDomain,
	staffDomain,
	roomDomain,
	bookingDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	catalogHandler.New,
	staffHandler.New,
	roomHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		schedulingEngine,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
