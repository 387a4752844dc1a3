package repository

import (
	"context"
	"fmt"
	"time"

	"ticket-service/internal/data/entity"
	"ticket-service/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentRepository is the payment gateway backed by the ticket_payments ledger.
type PaymentRepository interface {
	MakePayment(ctx context.Context, accountID int64, amount int) error
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
	now func() time.Time
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
		now: time.Now,
	}
}

func (r *paymentRepository) MakePayment(ctx context.Context, accountID int64, amount int) error {
	payment := &entity.Payment{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: r.now(),
		},
		AccountID: accountID,
		Amount:    amount,
		Status:    entity.PaymentStatusCompleted,
	}

	query := `
		INSERT INTO ticket_payments (id, account_id, amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	result, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.AccountID,
		payment.Amount,
		payment.Status,
		payment.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to record payment",
			zap.Error(err),
			zap.Int64("account_id", accountID),
			zap.Int("amount", amount),
		)
		return fmt.Errorf("record payment of %d for account %d: %w", amount, accountID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment %s for account %d was not recorded", payment.ID.String(), accountID)
	}

	r.log.Info("Payment recorded",
		zap.String("payment_id", payment.ID.String()),
		zap.Int64("account_id", accountID),
		zap.Int("amount", amount),
	)
	return nil
}
