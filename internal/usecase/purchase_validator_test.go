package usecase_test

import (
	"errors"
	"math"
	"testing"

	"ticket-service/internal/data/entity"
	"ticket-service/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func accountID(id int64) *int64 {
	return &id
}

func adult(n int) *entity.TicketTypeRequest {
	return entity.NewTicketTypeRequest(entity.TicketTypeAdult, n)
}

func child(n int) *entity.TicketTypeRequest {
	return entity.NewTicketTypeRequest(entity.TicketTypeChild, n)
}

func infant(n int) *entity.TicketTypeRequest {
	return entity.NewTicketTypeRequest(entity.TicketTypeInfant, n)
}

func TestPurchaseValidator_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		accountID *int64
		requests  []*entity.TicketTypeRequest
		reason    usecase.Reason
	}{
		{"nil account", nil, []*entity.TicketTypeRequest{adult(1)}, usecase.ReasonInvalidAccount},
		{"zero account", accountID(0), []*entity.TicketTypeRequest{infant(1)}, usecase.ReasonInvalidAccount},
		{"negative account", accountID(-7), []*entity.TicketTypeRequest{adult(1)}, usecase.ReasonInvalidAccount},
		{"account checked before tickets", accountID(0), nil, usecase.ReasonInvalidAccount},
		{"no ticket container", accountID(1), nil, usecase.ReasonNoTickets},
		{"empty tickets", accountID(1), []*entity.TicketTypeRequest{}, usecase.ReasonMissingAdult},
		{"only nil entries", accountID(1), []*entity.TicketTypeRequest{nil, nil}, usecase.ReasonMissingAdult},
		{"children only", accountID(1), []*entity.TicketTypeRequest{child(2)}, usecase.ReasonMissingAdult},
		{"infants only", accountID(1), []*entity.TicketTypeRequest{infant(1)}, usecase.ReasonMissingAdult},
		{"negative child count", accountID(1), []*entity.TicketTypeRequest{adult(1), child(-1)}, usecase.ReasonNegativeCount},
		{"negative adult count", accountID(1), []*entity.TicketTypeRequest{adult(-2)}, usecase.ReasonNegativeCount},
		{"adult check before negative check", accountID(1), []*entity.TicketTypeRequest{child(-1)}, usecase.ReasonMissingAdult},
		{"21 adults", accountID(1), []*entity.TicketTypeRequest{adult(21)}, usecase.ReasonCapacityExceeded},
		{"infants count toward capacity", accountID(1), []*entity.TicketTypeRequest{adult(10), child(5), infant(6)}, usecase.ReasonCapacityExceeded},
		{"huge counts do not wrap", accountID(1), []*entity.TicketTypeRequest{adult(math.MaxInt), child(math.MaxInt)}, usecase.ReasonCapacityExceeded},
	}

	validator := usecase.NewPurchaseValidator()

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			tickets, err := validator.Validate(tt.accountID, tt.requests)

			require.Error(t, err)
			assert.Nil(t, tickets)
			assert.True(t, errors.Is(err, usecase.ErrInvalidPurchase))

			var purchaseErr *usecase.PurchaseError
			require.ErrorAs(t, err, &purchaseErr)
			assert.Equal(t, tt.reason, purchaseErr.Reason)
		})
	}
}

func TestPurchaseValidator_Accepts(t *testing.T) {
	t.Parallel()

	validator := usecase.NewPurchaseValidator()

	t.Run("strips nil entries and keeps order", func(t *testing.T) {
		tickets, err := validator.Validate(accountID(1), []*entity.TicketTypeRequest{nil, child(1), nil, adult(2), infant(1)})

		require.NoError(t, err)
		require.Len(t, tickets, 3)
		assert.Equal(t, entity.TicketTypeChild, tickets[0].Type())
		assert.Equal(t, entity.TicketTypeAdult, tickets[1].Type())
		assert.Equal(t, 2, tickets[1].Count())
		assert.Equal(t, entity.TicketTypeInfant, tickets[2].Type())
	})

	t.Run("exactly 20 tickets", func(t *testing.T) {
		tickets, err := validator.Validate(accountID(1), []*entity.TicketTypeRequest{adult(18), child(1), infant(1)})

		require.NoError(t, err)
		assert.Len(t, tickets, 3)
	})

	t.Run("adult entry with zero count", func(t *testing.T) {
		_, err := validator.Validate(accountID(1), []*entity.TicketTypeRequest{adult(0)})

		assert.NoError(t, err)
	})
}

func TestReason_String(t *testing.T) {
	t.Parallel()

	err := &usecase.PurchaseError{Reason: usecase.ReasonCapacityExceeded}

	assert.Equal(t, "invalid purchase: cannot purchase more than 20 tickets at once", err.Error())
	assert.Equal(t, "capacity_exceeded", err.Reason.Code())
	assert.Equal(t, "unknown", usecase.Reason(0).Code())
}
