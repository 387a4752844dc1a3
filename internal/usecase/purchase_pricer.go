package usecase

import (
	"ticket-service/internal/data/entity"
)

const (
	AdultFare  = 20
	ChildFare  = 10
	InfantFare = 0
)

// FareTypes lists ticket types in the order fares are published.
var FareTypes = []entity.TicketType{
	entity.TicketTypeAdult,
	entity.TicketTypeChild,
	entity.TicketTypeInfant,
}

// Fare returns the price of one ticket of type t.
func Fare(t entity.TicketType) int {
	switch t {
	case entity.TicketTypeAdult:
		return AdultFare
	case entity.TicketTypeChild:
		return ChildFare
	default:
		return InfantFare
	}
}

// OccupiesSeat reports whether a ticket of type t needs a reserved seat.
// Infants sit on an adult's lap.
func OccupiesSeat(t entity.TicketType) bool {
	return t != entity.TicketTypeInfant
}

type PurchasePricer struct{}

func NewPurchasePricer() PurchasePricer {
	return PurchasePricer{}
}

// Price expects tickets that already passed PurchaseValidator.
func (PurchasePricer) Price(tickets []entity.TicketTypeRequest) entity.PricingResult {
	var result entity.PricingResult
	for _, t := range tickets {
		result.AmountDue += Fare(t.Type()) * t.Count()
		if OccupiesSeat(t.Type()) {
			result.SeatsToReserve += t.Count()
		}
	}
	return result
}
