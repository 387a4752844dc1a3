package entity

import "time"

// SeatReservation records seats held for an account by the reservation adapter.
type SeatReservation struct {
	AccountID  int64
	Seats      int
	TotalHeld  int64
	ReservedAt time.Time
}
