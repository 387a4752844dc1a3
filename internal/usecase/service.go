package usecase

import (
	"ticket-service/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Ticket TicketService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Ticket: NewTicketService(repo.Payment, repo.SeatReservation, log),
	}
}
