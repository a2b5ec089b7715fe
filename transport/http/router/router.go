package router

import (
	"shareit/internal/handlers/booking"
	"shareit/internal/handlers/comment"
	"shareit/internal/handlers/item"
	"shareit/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Booking booking.Handler
	Item    item.Handler
	Comment comment.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Identity       middleware.Identity
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Booking.Router(routerGroup)

		routerGroup.Route("/items", func(items chi.Router) {
			items.Use(r.Identity.Identify)

			r.DomainHandlers.Item.Router(items)
			r.DomainHandlers.Comment.Router(items)
		})
	})
}

func New(domainHandlers DomainHandlers, identity middleware.Identity) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Identity:       identity,
	}
}
