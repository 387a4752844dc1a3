package response

import (
	"time"

	"ticket-service/internal/data/entity"
)

type TicketResponse struct {
	Type  entity.TicketType `json:"type"`
	Count int               `json:"count"`
}

type PurchaseResponse struct {
	PurchaseID    string           `json:"purchase_id"`
	AccountID     int64            `json:"account_id"`
	AmountDue     int              `json:"amount_due"`
	SeatsReserved int              `json:"seats_reserved"`
	Tickets       []TicketResponse `json:"tickets"`
	CreatedAt     time.Time        `json:"created_at"`
}

type FareResponse struct {
	Type         entity.TicketType `json:"type"`
	Price        int               `json:"price"`
	OccupiesSeat bool              `json:"occupies_seat"`
}

type FareTableResponse struct {
	Fares                 []FareResponse `json:"fares"`
	MaxTicketsPerPurchase int            `json:"max_tickets_per_purchase"`
}

// TicketsToResponse converts validated tickets for the purchase response.
func TicketsToResponse(tickets []entity.TicketTypeRequest) []TicketResponse {
	out := make([]TicketResponse, len(tickets))
	for i, t := range tickets {
		out[i] = TicketResponse{Type: t.Type(), Count: t.Count()}
	}
	return out
}
