package entity

type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Payment is one ledger row written by the payment gateway adapter.
type Payment struct {
	BaseSimple
	AccountID int64         `db:"account_id"`
	Amount    int           `db:"amount"`
	Status    PaymentStatus `db:"status"`
}
