package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionStatus string

const (
	StatusPending  TransactionStatus = "PENDING"
	StatusApproved TransactionStatus = "APPROVED"
	StatusFailed   TransactionStatus = "FAILED"
)

// Transaction records one purchase attempt. It is created PENDING before
// the provider is called and transitions exactly once to APPROVED or FAILED.
type Transaction struct {
	ID          uuid.UUID         `json:"id"`
	ProductID   string            `json:"product_id"`
	Quantity    int               `json:"quantity"`
	Status      TransactionStatus `json:"status"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// TransactionFilter narrows FindTransactions. Zero-valued fields are ignored.
type TransactionFilter struct {
	ProductID string
	Status    TransactionStatus
}

type TransactionRepository interface {
	CreateTransaction(tx *Transaction) error
	GetTransactionByID(id uuid.UUID) (*Transaction, error)
	UpdateTransactionStatus(id uuid.UUID, status TransactionStatus) error
	FindTransactions(filter TransactionFilter) ([]Transaction, error)
}
