package usecase

import (
	"context"
	"fmt"
	"time"

	"ticket-service/internal/data/entity"
	"ticket-service/internal/dto/response"
	"ticket-service/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentGateway takes payment of amount from an account.
type PaymentGateway interface {
	MakePayment(ctx context.Context, accountID int64, amount int) error
}

// SeatReservationService reserves seats for an account.
type SeatReservationService interface {
	ReserveSeat(ctx context.Context, accountID int64, seats int) error
}

type TicketService interface {
	PurchaseTickets(ctx context.Context, accountID *int64, requests ...*entity.TicketTypeRequest) (*response.PurchaseResponse, error)
	GetFares(ctx context.Context) *response.FareTableResponse
}

type ticketService struct {
	validator *PurchaseValidator
	pricer    PurchasePricer
	payments  PaymentGateway
	seats     SeatReservationService
	log       *zap.Logger
}

func NewTicketService(payments PaymentGateway, seats SeatReservationService, log *zap.Logger) TicketService {
	return &ticketService{
		validator: NewPurchaseValidator(),
		pricer:    NewPurchasePricer(),
		payments:  payments,
		seats:     seats,
		log:       log.With(zap.String("service", "ticket")),
	}
}

func (s *ticketService) PurchaseTickets(ctx context.Context, accountID *int64, requests ...*entity.TicketTypeRequest) (*response.PurchaseResponse, error) {
	log := s.log
	if requestID, ok := utils.GetRequestIDFromContext(ctx); ok {
		log = log.With(zap.String("request_id", requestID))
	}

	tickets, err := s.validator.Validate(accountID, requests)
	if err != nil {
		log.Warn("Purchase rejected",
			zap.Error(err),
			zap.Int("requests", len(requests)),
		)
		return nil, err
	}

	account := *accountID
	priced := s.pricer.Price(tickets)

	if err := s.payments.MakePayment(ctx, account, priced.AmountDue); err != nil {
		log.Error("Failed to take payment",
			zap.Error(err),
			zap.Int64("account_id", account),
			zap.Int("amount", priced.AmountDue),
		)
		return nil, fmt.Errorf("make payment for account %d: %w", account, err)
	}

	if err := s.seats.ReserveSeat(ctx, account, priced.SeatsToReserve); err != nil {
		log.Error("Failed to reserve seats",
			zap.Error(err),
			zap.Int64("account_id", account),
			zap.Int("seats", priced.SeatsToReserve),
		)
		return nil, fmt.Errorf("reserve %d seats for account %d: %w", priced.SeatsToReserve, account, err)
	}

	purchaseID := uuid.New()
	log.Info("Tickets purchased",
		zap.String("purchase_id", purchaseID.String()),
		zap.Int64("account_id", account),
		zap.Int("amount", priced.AmountDue),
		zap.Int("seats", priced.SeatsToReserve),
	)

	return &response.PurchaseResponse{
		PurchaseID:    purchaseID.String(),
		AccountID:     account,
		AmountDue:     priced.AmountDue,
		SeatsReserved: priced.SeatsToReserve,
		Tickets:       response.TicketsToResponse(tickets),
		CreatedAt:     time.Now(),
	}, nil
}

func (s *ticketService) GetFares(ctx context.Context) *response.FareTableResponse {
	fares := make([]response.FareResponse, len(FareTypes))
	for i, t := range FareTypes {
		fares[i] = response.FareResponse{
			Type:         t,
			Price:        Fare(t),
			OccupiesSeat: OccupiesSeat(t),
		}
	}

	return &response.FareTableResponse{
		Fares:                 fares,
		MaxTicketsPerPurchase: MaxTicketsPerPurchase,
	}
}
