package handler

import (
	"encoding/json"
	"net/http"

	"card-checkout/internal/domain"
	"card-checkout/internal/errors"
	"card-checkout/internal/gateway"
	"card-checkout/internal/service"
)

type PaymentHandler struct {
	paymentService *service.PaymentService
}

func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

type ProcessPaymentRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	CardToken string `json:"card_token"`
	Email     string `json:"email"`
}

type ProcessPaymentResponse struct {
	Status                string `json:"status"`
	InternalTransactionID string `json:"internal_transaction_id"`
	ExternalTransactionID string `json:"external_transaction_id,omitempty"`
	Amount                string `json:"amount,omitempty"`
	Currency              string `json:"currency,omitempty"`
	Reference             string `json:"reference,omitempty"`
}

func (h *PaymentHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	var req ProcessPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewAppError(errors.InvalidInput, "invalid request body").WithDetails(err.Error()))
		return
	}

	if req.ProductID == "" || req.CardToken == "" || req.Email == "" {
		writeError(w, errors.NewAppError(errors.InvalidInput, "product_id, card_token and email are required"))
		return
	}

	result, err := h.paymentService.ProcessPayment(r.Context(), &service.ProcessPaymentRequest{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		CardToken: req.CardToken,
		Email:     req.Email,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPaymentResponse(result))
}

func toPaymentResponse(result *gateway.PaymentResult) ProcessPaymentResponse {
	resp := ProcessPaymentResponse{
		Status:                string(result.Status),
		InternalTransactionID: result.InternalTransactionID.String(),
		ExternalTransactionID: result.ExternalTransactionID,
		Currency:              result.Currency,
		Reference:             result.Reference,
	}
	if !result.Amount.IsZero() {
		resp.Amount = result.Amount.String()
	}
	return resp
}

type TransactionResponse struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	Quantity    int    `json:"quantity"`
	Status      string `json:"status"`
	TotalAmount string `json:"total_amount"`
}

func (h *PaymentHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	filter := domain.TransactionFilter{
		ProductID: r.URL.Query().Get("product_id"),
		Status:    domain.TransactionStatus(r.URL.Query().Get("status")),
	}

	transactions, err := h.paymentService.FindTransactions(filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	responses := make([]TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		responses = append(responses, TransactionResponse{
			ID:          tx.ID.String(),
			ProductID:   tx.ProductID,
			Quantity:    tx.Quantity,
			Status:      string(tx.Status),
			TotalAmount: tx.TotalAmount.String(),
		})
	}

	writeJSON(w, http.StatusOK, responses)
}
