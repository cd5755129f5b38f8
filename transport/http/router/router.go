package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/Ayy-man/spa-booking-v2-sub002/internal/handlers/auth"
	"github.com/Ayy-man/spa-booking-v2-sub002/internal/handlers/booking"
	"github.com/Ayy-man/spa-booking-v2-sub002/internal/handlers/catalog"
	"github.com/Ayy-man/spa-booking-v2-sub002/internal/handlers/room"
	"github.com/Ayy-man/spa-booking-v2-sub002/internal/handlers/staff"
)

type DomainHandlers struct {
	Auth    auth.Handler
	Catalog catalog.Handler
	Staff   staff.Handler
	Room    room.Handler
	Booking booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Catalog.Router(routerGroup)
		r.DomainHandlers.Staff.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
