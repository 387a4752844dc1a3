package repository

import (
	"ticket-service/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Payment         PaymentRepository
	SeatReservation SeatReservationRepository
}

func NewRepository(db database.PgxIface, rdb database.RedisIface, log *zap.Logger) *Repository {
	return &Repository{
		Payment:         NewPaymentRepository(db, log),
		SeatReservation: NewSeatReservationRepository(rdb, log),
	}
}
