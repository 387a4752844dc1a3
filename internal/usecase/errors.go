package usecase

import (
	"errors"
	"fmt"
)

// ErrInvalidPurchase is matched by every purchase rejection, whatever the reason.
var ErrInvalidPurchase = errors.New("invalid purchase")

type Reason int

const (
	ReasonInvalidAccount Reason = iota + 1
	ReasonNoTickets
	ReasonMissingAdult
	ReasonNegativeCount
	ReasonCapacityExceeded
)

func (r Reason) String() string {
	switch r {
	case ReasonInvalidAccount:
		return "invalid account id"
	case ReasonNoTickets:
		return "no ticket requests"
	case ReasonMissingAdult:
		return "at least one adult ticket is required"
	case ReasonNegativeCount:
		return "ticket count cannot be negative"
	case ReasonCapacityExceeded:
		return fmt.Sprintf("cannot purchase more than %d tickets at once", MaxTicketsPerPurchase)
	default:
		return "unknown"
	}
}

// Code is the stable machine-readable form used in API responses.
func (r Reason) Code() string {
	switch r {
	case ReasonInvalidAccount:
		return "invalid_account"
	case ReasonNoTickets:
		return "no_tickets"
	case ReasonMissingAdult:
		return "missing_adult"
	case ReasonNegativeCount:
		return "negative_count"
	case ReasonCapacityExceeded:
		return "capacity_exceeded"
	default:
		return "unknown"
	}
}

// PurchaseError is returned for a rejected purchase.
// errors.Is(err, ErrInvalidPurchase) holds for every PurchaseError.
type PurchaseError struct {
	Reason Reason
}

func (e *PurchaseError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidPurchase.Error(), e.Reason)
}

func (e *PurchaseError) Is(target error) bool {
	return target == ErrInvalidPurchase
}
