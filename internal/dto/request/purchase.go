package request

import (
	"ticket-service/internal/data/entity"
)

type TicketRequest struct {
	Type  string `json:"type" validate:"required,oneof=ADULT CHILD INFANT"`
	Count int    `json:"count"`
}

// PurchaseTicketsRequest keeps account_id and tickets nullable; the purchase
// rules decide what a missing value means.
type PurchaseTicketsRequest struct {
	AccountID *int64           `json:"account_id"`
	Tickets   []*TicketRequest `json:"tickets"`
}

// TicketTypeRequests converts the body, keeping null entries as nil.
// Call only after every non-nil entry passed validation.
func (r *PurchaseTicketsRequest) TicketTypeRequests() []*entity.TicketTypeRequest {
	if r.Tickets == nil {
		return nil
	}

	out := make([]*entity.TicketTypeRequest, len(r.Tickets))
	for i, t := range r.Tickets {
		if t == nil {
			continue
		}
		ticketType, _ := entity.ParseTicketType(t.Type)
		out[i] = entity.NewTicketTypeRequest(ticketType, t.Count)
	}
	return out
}
