package router

import (
	"github.com/go-chi/chi/v5"

	"zimmery/internal/handlers/auth"
	"zimmery/internal/handlers/booking"
	"zimmery/internal/handlers/errorlog"
	"zimmery/internal/handlers/preference"
	"zimmery/internal/handlers/signing"
	"zimmery/internal/handlers/template"
)

type DomainHandlers struct {
	Auth       auth.Handler
	Booking    booking.Handler
	Template   template.Handler
	Signing    signing.Handler
	ErrorLog   errorlog.Handler
	Preference preference.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Template.Router(routerGroup)
		r.DomainHandlers.Signing.Router(routerGroup)
		r.DomainHandlers.ErrorLog.Router(routerGroup)
		r.DomainHandlers.Preference.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
