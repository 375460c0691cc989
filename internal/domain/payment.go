package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusSuccess  PaymentStatus = "SUCCESS"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

type PaymentMethod string

const (
	PaymentMethodCard       PaymentMethod = "CARD"
	PaymentMethodUPI        PaymentMethod = "UPI"
	PaymentMethodNetBanking PaymentMethod = "NET_BANKING"
	PaymentMethodWallet     PaymentMethod = "WALLET"
	PaymentMethodCash       PaymentMethod = "CASH"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodUPI, PaymentMethodNetBanking, PaymentMethodWallet, PaymentMethodCash:
		return true
	}

	return false
}

// Payment records the outcome of a charge. Nothing is processed here.
type Payment struct {
	ID            int64
	TransactionID string
	Amount        decimal.Decimal
	Method        PaymentMethod
	Status        PaymentStatus
	PaidAt        time.Time
	UpdatedAt     time.Time
}

// NewSettledPayment builds a successful payment with a fresh transaction id.
func NewSettledPayment(amount decimal.Decimal, method PaymentMethod, now time.Time) Payment {
	return Payment{
		TransactionID: uuid.NewString(),
		Amount:        amount,
		Method:        method,
		Status:        PaymentStatusSuccess,
		PaidAt:        now,
		UpdatedAt:     now,
	}
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	GetByID(ctx context.Context, id int64) (*Payment, error)
	UpdateStatus(ctx context.Context, id int64, status PaymentStatus) error
}
