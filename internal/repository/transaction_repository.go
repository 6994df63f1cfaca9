package repository

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"card-checkout/internal/domain"
	"card-checkout/internal/errors"
)

type transactionRepository struct {
	db     SQLExecutor
	logger *slog.Logger
}

func NewTransactionRepository(db SQLExecutor, logger *slog.Logger) domain.TransactionRepository {
	return &transactionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *transactionRepository) CreateTransaction(tx *domain.Transaction) error {
	query := `
		INSERT INTO transactions (id, product_id, quantity, status, total_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	now := time.Now()
	_, err := r.db.Exec(
		query,
		tx.ID,
		tx.ProductID,
		tx.Quantity,
		string(tx.Status),
		tx.TotalAmount.String(),
		now,
		now,
	)

	if err != nil {
		r.logger.Error("Failed to create transaction",
			"product_id", tx.ProductID,
			"quantity", tx.Quantity,
			"total_amount", tx.TotalAmount,
			"error", err)
		return errors.NewAppError(errors.InternalError, "failed to create transaction").WithDetails(err.Error())
	}

	tx.CreatedAt = now
	tx.UpdatedAt = now
	r.logger.Info("Transaction created successfully", "transaction_id", tx.ID, "status", tx.Status)
	return nil
}

func (r *transactionRepository) GetTransactionByID(id uuid.UUID) (*domain.Transaction, error) {
	query := `
		SELECT id, product_id, quantity, status, total_amount, created_at, updated_at
		FROM transactions WHERE id = $1
	`

	var transaction domain.Transaction
	var amountStr, status string

	err := r.db.QueryRow(query, id).Scan(
		&transaction.ID,
		&transaction.ProductID,
		&transaction.Quantity,
		&status,
		&amountStr,
		&transaction.CreatedAt,
		&transaction.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Failed to get transaction", "transaction_id", id, "error", err)
		return nil, errors.NewAppError(errors.InternalError, "failed to get transaction").WithDetails(err.Error())
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return nil, errors.NewAppError(errors.InternalError, "failed to parse total amount").WithDetails(err.Error())
	}
	transaction.TotalAmount = amount
	transaction.Status = domain.TransactionStatus(status)

	return &transaction, nil
}

// UpdateTransactionStatus moves a transaction out of PENDING. A transaction
// that already reached a final status is never rewritten.
func (r *transactionRepository) UpdateTransactionStatus(id uuid.UUID, status domain.TransactionStatus) error {
	query := `
		UPDATE transactions SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
	`

	result, err := r.db.Exec(query, string(status), time.Now(), id, string(domain.StatusPending))
	if err != nil {
		r.logger.Error("Failed to update transaction status",
			"transaction_id", id, "status", status, "error", err)
		return errors.NewAppError(errors.InternalError, "failed to update transaction status").WithDetails(err.Error())
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.NewAppError(errors.InternalError, "failed to get rows affected").WithDetails(err.Error())
	}

	if rowsAffected == 0 {
		r.logger.Warn("Transaction status transition rejected", "transaction_id", id, "status", status)
		return errors.NewAppError(errors.InternalError, "transaction status is already final")
	}

	r.logger.Info("Transaction status updated", "transaction_id", id, "status", status)
	return nil
}

func (r *transactionRepository) FindTransactions(filter domain.TransactionFilter) ([]domain.Transaction, error) {
	query := `
		SELECT id, product_id, quantity, status, total_amount, created_at, updated_at
		FROM transactions
		WHERE ($1 = '' OR product_id::text = lower($1)) AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, filter.ProductID, string(filter.Status))
	if err != nil {
		r.logger.Error("Failed to find transactions", "error", err)
		return nil, errors.NewAppError(errors.InternalError, "failed to find transactions").WithDetails(err.Error())
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var transaction domain.Transaction
		var amountStr, status string

		if err := rows.Scan(
			&transaction.ID,
			&transaction.ProductID,
			&transaction.Quantity,
			&status,
			&amountStr,
			&transaction.CreatedAt,
			&transaction.UpdatedAt,
		); err != nil {
			return nil, errors.NewAppError(errors.InternalError, "failed to scan transaction").WithDetails(err.Error())
		}

		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, errors.NewAppError(errors.InternalError, "failed to parse total amount").WithDetails(err.Error())
		}
		transaction.TotalAmount = amount
		transaction.Status = domain.TransactionStatus(status)
		transactions = append(transactions, transaction)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.NewAppError(errors.InternalError, "failed to iterate transactions").WithDetails(err.Error())
	}

	return transactions, nil
}
