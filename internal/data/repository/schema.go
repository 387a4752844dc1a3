package repository

import (
	"context"
	"fmt"

	"ticket-service/pkg/database"
)

// InitSchema creates the payment ledger table if it does not exist yet.
func InitSchema(ctx context.Context, db database.PgxIface) error {
	_, err := db.Exec(ctx, `
CREATE TABLE IF NOT EXISTS ticket_payments (
	id UUID PRIMARY KEY,
	account_id BIGINT NOT NULL CHECK (account_id > 0),
	amount INTEGER NOT NULL CHECK (amount >= 0),
	status VARCHAR(16) NOT NULL,
	created_at TIMESTAMP WITH TIME ZONE NOT NULL
);`)
	if err != nil {
		return fmt.Errorf("create ticket_payments table: %w", err)
	}

	_, err = db.Exec(ctx, `CREATE INDEX IF NOT EXISTS idx_ticket_payments_account ON ticket_payments (account_id);`)
	if err != nil {
		return fmt.Errorf("create ticket_payments index: %w", err)
	}

	return nil
}
