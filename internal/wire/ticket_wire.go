package wire

import (
	"ticket-service/internal/adaptor"
	"ticket-service/pkg/middleware"
	"ticket-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTicket(
	r chi.Router,
	ticketHandler *adaptor.TicketHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/tickets", func(r chi.Router) {
		// GET /api/tickets/fares - fare table (public)
		r.Get("/fares", ticketHandler.GetFares)

		// POST /api/tickets/purchase - validate, price, pay, reserve
		r.With(middleware.APIKey(config.Auth.APIKeyHash, log)).
			Post("/purchase", ticketHandler.PurchaseTickets)
	})
}
