package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"card-checkout/internal/domain"
	"card-checkout/internal/errors"
	"card-checkout/internal/gateway"
)

// PaymentGateway is the provider-facing port the orchestrator calls. The
// concrete client converts every internal failure into a FAILED result
// instead of returning an error.
type PaymentGateway interface {
	ProcessPayment(ctx context.Context, transactionID uuid.UUID, amount decimal.Decimal, details gateway.CardDetails) *gateway.PaymentResult
}

// PaymentService sequences one purchase: product lookup, stock validation,
// PENDING transaction creation, provider invocation and final reconciliation
// of transaction status and stock.
type PaymentService struct {
	productRepo     domain.ProductRepository
	transactionRepo domain.TransactionRepository
	gateway         PaymentGateway
	taxRate         decimal.Decimal
	logger          *slog.Logger
}

func NewPaymentService(
	productRepo domain.ProductRepository,
	transactionRepo domain.TransactionRepository,
	paymentGateway PaymentGateway,
	taxRate decimal.Decimal,
	logger *slog.Logger,
) *PaymentService {
	return &PaymentService{
		productRepo:     productRepo,
		transactionRepo: transactionRepo,
		gateway:         paymentGateway,
		taxRate:         taxRate,
		logger:          logger,
	}
}

type ProcessPaymentRequest struct {
	ProductID string
	Quantity  int
	CardToken string
	Email     string
}

// ProcessPayment executes the purchase flow. The PENDING transaction is
// persisted before any provider call so an outage still leaves an auditable
// record; stock is decremented only on a confirmed APPROVED result.
func (s *PaymentService) ProcessPayment(ctx context.Context, req *ProcessPaymentRequest) (*gateway.PaymentResult, error) {
	s.logger.Info("Processing payment",
		"product_id", req.ProductID,
		"quantity", req.Quantity,
		"email", req.Email)

	if req.Quantity <= 0 {
		return nil, errors.ErrInvalidQuantity
	}
	if _, err := uuid.Parse(req.ProductID); err != nil {
		return nil, errors.NewAppError(errors.InvalidInput, "product ID must be a valid UUID")
	}

	product, err := s.productRepo.GetProduct(req.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.ErrProductNotFound
	}

	if product.StockQuantity < req.Quantity {
		s.logger.Warn("Insufficient stock",
			"product_id", req.ProductID,
			"stock", product.StockQuantity,
			"quantity", req.Quantity)
		return nil, errors.ErrInsufficientStock
	}

	totalAmount := s.totalAmount(product.Price, req.Quantity)

	transaction := &domain.Transaction{
		ID:          uuid.New(),
		ProductID:   product.ID,
		Quantity:    req.Quantity,
		Status:      domain.StatusPending,
		TotalAmount: totalAmount,
	}
	if err := s.transactionRepo.CreateTransaction(transaction); err != nil {
		return nil, err
	}

	result := s.gateway.ProcessPayment(ctx, transaction.ID, totalAmount, gateway.CardDetails{
		Token: req.CardToken,
		Email: req.Email,
	})
	if result == nil {
		result = &gateway.PaymentResult{
			Status:                domain.StatusFailed,
			InternalTransactionID: transaction.ID,
		}
	}

	if result.Status != domain.StatusApproved {
		// A still-PENDING provider result has exhausted the settlement poll;
		// it is recorded as FAILED while the response keeps the gateway status.
		if err := s.transactionRepo.UpdateTransactionStatus(transaction.ID, domain.StatusFailed); err != nil {
			return nil, err
		}
		s.logger.Warn("Payment not approved",
			"transaction_id", transaction.ID,
			"gateway_status", result.Status)
		return result, nil
	}

	if err := s.productRepo.DecrementStock(product.ID, req.Quantity); err != nil {
		s.logger.Error("Failed to decrement stock after approval",
			"transaction_id", transaction.ID, "error", err)
		if updateErr := s.transactionRepo.UpdateTransactionStatus(transaction.ID, domain.StatusFailed); updateErr != nil {
			s.logger.Error("Failed to mark transaction failed", "transaction_id", transaction.ID, "error", updateErr)
		}
		return nil, err
	}

	if err := s.transactionRepo.UpdateTransactionStatus(transaction.ID, domain.StatusApproved); err != nil {
		return nil, err
	}

	s.logger.Info("Payment completed successfully",
		"transaction_id", transaction.ID,
		"total_amount", totalAmount)
	return result, nil
}

// FindTransactions exposes transaction queries for the API.
func (s *PaymentService) FindTransactions(filter domain.TransactionFilter) ([]domain.Transaction, error) {
	return s.transactionRepo.FindTransactions(filter)
}

// totalAmount is rounded to cents so the stored NUMERIC(20,2) value matches
// the amount signed and charged in minor units.
func (s *PaymentService) totalAmount(price decimal.Decimal, quantity int) decimal.Decimal {
	subtotal := price.Mul(decimal.NewFromInt(int64(quantity)))
	return subtotal.Mul(decimal.NewFromInt(1).Add(s.taxRate)).Round(2)
}
