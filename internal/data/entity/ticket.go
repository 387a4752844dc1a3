package entity

import "strings"

type TicketType string

const (
	TicketTypeAdult  TicketType = "ADULT"
	TicketTypeChild  TicketType = "CHILD"
	TicketTypeInfant TicketType = "INFANT"
)

// ParseTicketType accepts the type name in any letter case.
func ParseTicketType(s string) (TicketType, bool) {
	switch t := TicketType(strings.ToUpper(strings.TrimSpace(s))); t {
	case TicketTypeAdult, TicketTypeChild, TicketTypeInfant:
		return t, true
	default:
		return "", false
	}
}

// TicketTypeRequest asks for count tickets of one type. It is immutable once built.
type TicketTypeRequest struct {
	ticketType TicketType
	count      int
}

func NewTicketTypeRequest(ticketType TicketType, count int) *TicketTypeRequest {
	return &TicketTypeRequest{ticketType: ticketType, count: count}
}

func (r TicketTypeRequest) Type() TicketType {
	return r.ticketType
}

func (r TicketTypeRequest) Count() int {
	return r.count
}

// PricingResult is what a validated purchase costs and how many seats it takes.
type PricingResult struct {
	AmountDue      int
	SeatsToReserve int
}
