package repository

import (
	"context"
	"fmt"
	"time"

	"ticket-service/internal/data/entity"
	"ticket-service/pkg/database"

	"go.uber.org/zap"
)

const seatReservationKeyPrefix = "seat_reservations:"

// SeatReservationRepository is the seat reservation service backed by a
// per-account counter in redis.
type SeatReservationRepository interface {
	ReserveSeat(ctx context.Context, accountID int64, seats int) error
}

type seatReservationRepository struct {
	rdb database.RedisIface
	log *zap.Logger
}

func NewSeatReservationRepository(rdb database.RedisIface, log *zap.Logger) SeatReservationRepository {
	return &seatReservationRepository{
		rdb: rdb,
		log: log.With(zap.String("repository", "seat_reservation")),
	}
}

func SeatReservationKey(accountID int64) string {
	return fmt.Sprintf("%s%d", seatReservationKeyPrefix, accountID)
}

func (r *seatReservationRepository) ReserveSeat(ctx context.Context, accountID int64, seats int) error {
	total, err := r.rdb.IncrBy(ctx, SeatReservationKey(accountID), int64(seats)).Result()
	if err != nil {
		r.log.Error("Failed to reserve seats",
			zap.Error(err),
			zap.Int64("account_id", accountID),
			zap.Int("seats", seats),
		)
		return fmt.Errorf("reserve %d seats for account %d: %w", seats, accountID, err)
	}

	reservation := entity.SeatReservation{
		AccountID:  accountID,
		Seats:      seats,
		TotalHeld:  total,
		ReservedAt: time.Now(),
	}

	r.log.Info("Seats reserved",
		zap.Int64("account_id", reservation.AccountID),
		zap.Int("seats", reservation.Seats),
		zap.Int64("total_held", reservation.TotalHeld),
		zap.Time("reserved_at", reservation.ReservedAt),
	)
	return nil
}
