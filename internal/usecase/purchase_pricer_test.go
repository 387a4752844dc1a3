package usecase_test

import (
	"testing"

	"ticket-service/internal/data/entity"
	"ticket-service/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func tickets(requests ...*entity.TicketTypeRequest) []entity.TicketTypeRequest {
	out := make([]entity.TicketTypeRequest, len(requests))
	for i, r := range requests {
		out[i] = *r
	}
	return out
}

func TestPurchasePricer_Price(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		tickets []entity.TicketTypeRequest
		amount  int
		seats   int
	}{
		{"two adults", tickets(adult(2)), 40, 2},
		{"family", tickets(adult(2), child(2), infant(2)), 60, 4},
		{"twenty tickets", tickets(adult(18), child(1), infant(1)), 370, 19},
		{"adult and child", tickets(adult(2), child(1)), 50, 3},
		{"adult and infant", tickets(adult(3), infant(1)), 60, 3},
		{"repeated types add up", tickets(adult(1), child(1), adult(1), child(2)), 70, 5},
		{"nothing", nil, 0, 0},
	}

	pricer := usecase.NewPurchasePricer()

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			result := pricer.Price(tt.tickets)

			assert.Equal(t, tt.amount, result.AmountDue)
			assert.Equal(t, tt.seats, result.SeatsToReserve)
		})
	}
}

func TestFare(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 20, usecase.Fare(entity.TicketTypeAdult))
	assert.Equal(t, 10, usecase.Fare(entity.TicketTypeChild))
	assert.Equal(t, 0, usecase.Fare(entity.TicketTypeInfant))
	assert.False(t, usecase.OccupiesSeat(entity.TicketTypeInfant))
	assert.True(t, usecase.OccupiesSeat(entity.TicketTypeChild))
}
