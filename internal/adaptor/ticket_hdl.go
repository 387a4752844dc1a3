package adaptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"ticket-service/internal/dto/request"
	"ticket-service/internal/usecase"
	"ticket-service/pkg/utils"

	"go.uber.org/zap"
)

type TicketHandler struct {
	service usecase.TicketService
	log     *zap.Logger
}

func NewTicketHandler(service usecase.TicketService, log *zap.Logger) *TicketHandler {
	return &TicketHandler{
		service: service,
		log:     log.With(zap.String("handler", "ticket")),
	}
}

// PurchaseTickets handles POST /api/tickets/purchase
func (h *TicketHandler) PurchaseTickets(w http.ResponseWriter, r *http.Request) {
	var req request.PurchaseTicketsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Shape only; purchase rules run in the service
	if validationErrors := validateTickets(req.Tickets); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	purchase, err := h.service.PurchaseTickets(r.Context(), req.AccountID, req.TicketTypeRequests()...)
	if err != nil {
		h.handleServiceError(w, err, "purchase tickets")
		return
	}

	utils.ResponseCreated(w, "success", purchase)
}

// GetFares handles GET /api/tickets/fares
func (h *TicketHandler) GetFares(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.GetFares(r.Context()))
}

func validateTickets(tickets []*request.TicketRequest) map[string]string {
	var errs map[string]string
	for i, t := range tickets {
		if t == nil {
			continue
		}
		for field, msg := range utils.ValidateStruct(t) {
			if errs == nil {
				errs = make(map[string]string)
			}
			errs[fmt.Sprintf("tickets[%d].%s", i, field)] = msg
		}
	}
	return errs
}

func (h *TicketHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	var purchaseErr *usecase.PurchaseError

	switch {
	case errors.As(err, &purchaseErr):
		h.log.Warn(operation+" rejected",
			zap.Error(err),
			zap.String("reason", purchaseErr.Reason.Code()))
		utils.ResponseUnprocessable(w, usecase.ErrInvalidPurchase.Error(), map[string]string{
			"reason": purchaseErr.Reason.Code(),
			"detail": purchaseErr.Reason.String(),
		})

	case errors.Is(err, usecase.ErrInvalidPurchase):
		h.log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseUnprocessable(w, usecase.ErrInvalidPurchase.Error(), nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
