package usecase

import (
	"ticket-service/internal/data/entity"
)

// MaxTicketsPerPurchase caps the sum of all counts in one purchase, infants included.
const MaxTicketsPerPurchase = 20

// purchase is the input as the rules see it: nil entries already stripped.
type purchase struct {
	accountID *int64
	present   bool
	tickets   []entity.TicketTypeRequest
}

type rule struct {
	reason Reason
	passes func(p purchase) bool
}

// Evaluated in order; the first failing rule decides the reason.
var purchaseRules = []rule{
	{reason: ReasonInvalidAccount, passes: validAccount},
	{reason: ReasonNoTickets, passes: ticketsPresent},
	{reason: ReasonMissingAdult, passes: adultPresent},
	{reason: ReasonNegativeCount, passes: noNegativeCounts},
	{reason: ReasonCapacityExceeded, passes: withinCapacity},
}

func validAccount(p purchase) bool {
	return p.accountID != nil && *p.accountID > 0
}

func ticketsPresent(p purchase) bool {
	return p.present
}

func adultPresent(p purchase) bool {
	for _, t := range p.tickets {
		if t.Type() == entity.TicketTypeAdult {
			return true
		}
	}
	return false
}

func noNegativeCounts(p purchase) bool {
	for _, t := range p.tickets {
		if t.Count() < 0 {
			return false
		}
	}
	return true
}

// withinCapacity runs after noNegativeCounts, so every count is >= 0 here.
func withinCapacity(p purchase) bool {
	total := 0
	for _, t := range p.tickets {
		if t.Count() > MaxTicketsPerPurchase-total {
			return false
		}
		total += t.Count()
	}
	return true
}

type PurchaseValidator struct {
	rules []rule
}

func NewPurchaseValidator() *PurchaseValidator {
	return &PurchaseValidator{rules: purchaseRules}
}

// Validate returns the non-nil requests in their original order, or a *PurchaseError.
// A nil requests slice means no container was supplied; an empty one is checked by the rules.
func (v *PurchaseValidator) Validate(accountID *int64, requests []*entity.TicketTypeRequest) ([]entity.TicketTypeRequest, error) {
	p := purchase{
		accountID: accountID,
		present:   requests != nil,
		tickets:   make([]entity.TicketTypeRequest, 0, len(requests)),
	}
	for _, r := range requests {
		if r != nil {
			p.tickets = append(p.tickets, *r)
		}
	}

	for _, r := range v.rules {
		if !r.passes(p) {
			return nil, &PurchaseError{Reason: r.reason}
		}
	}

	return p.tickets, nil
}
