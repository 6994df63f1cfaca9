package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"card-checkout/internal/config"
	"card-checkout/internal/domain"
)

// CardDetails carries the tokenized payment method for one charge. The raw
// card number never reaches this service.
type CardDetails struct {
	Token string
	Email string
}

// PaymentResult is the gateway's answer for one charge attempt. It is never
// persisted as its own entity; the orchestrator folds it into the stored
// transaction and returns it to the caller.
type PaymentResult struct {
	Status                domain.TransactionStatus `json:"status"`
	InternalTransactionID uuid.UUID                `json:"internal_transaction_id"`
	ExternalTransactionID string                   `json:"external_transaction_id,omitempty"`
	Amount                decimal.Decimal          `json:"amount,omitempty"`
	Currency              string                   `json:"currency,omitempty"`
	Reference             string                   `json:"reference,omitempty"`
}

// Client talks to the external card-payment provider: acceptance token
// retrieval, signed charge submission and bounded settlement polling.
type Client struct {
	http            *resty.Client
	publicKey       string
	integritySecret string
	currency        string
	pollAttempts    int
	pollDelay       time.Duration
	clock           Clock
	logger          *slog.Logger
}

func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.ProviderAPIURL).
		SetAuthToken(cfg.ProviderPublicKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(10 * time.Second)

	return &Client{
		http:            httpClient,
		publicKey:       cfg.ProviderPublicKey,
		integritySecret: cfg.ProviderIntegritySecret,
		currency:        cfg.ProviderCurrency,
		pollAttempts:    cfg.ProviderPollAttempts,
		pollDelay:       cfg.ProviderPollDelay,
		clock:           realClock{},
		logger:          logger,
	}
}

type presignedAcceptance struct {
	AcceptanceToken string `json:"acceptance_token"`
}

type merchantData struct {
	PresignedAcceptance presignedAcceptance `json:"presigned_acceptance"`
}

type merchantResponse struct {
	Data merchantData `json:"data"`
}

type paymentMethod struct {
	Type         string `json:"type"`
	Token        string `json:"token"`
	Installments int    `json:"installments"`
}

type chargeRequest struct {
	AmountInCents   int64         `json:"amount_in_cents"`
	Currency        string        `json:"currency"`
	Signature       string        `json:"signature"`
	CustomerEmail   string        `json:"customer_email"`
	PaymentMethod   paymentMethod `json:"payment_method"`
	Reference       string        `json:"reference"`
	AcceptanceToken string        `json:"acceptance_token"`
}

type transactionData struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type transactionResponse struct {
	Data transactionData `json:"data"`
}

// ProcessPayment runs the full provider protocol for one transaction. It
// never returns an error: every internal failure is logged with the
// transaction id and folded into a FAILED result.
func (c *Client) ProcessPayment(ctx context.Context, transactionID uuid.UUID, amount decimal.Decimal, details CardDetails) *PaymentResult {
	failed := &PaymentResult{
		Status:                domain.StatusFailed,
		InternalTransactionID: transactionID,
	}

	acceptanceToken, err := c.getAcceptanceToken(ctx)
	if err != nil {
		c.logger.Error("Error getting acceptance token", "transaction_id", transactionID, "error", err)
		return failed
	}

	amountInCents := amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	reference := Reference(details.Email, c.clock.Now().UnixMilli())
	signature := Signature([]string{reference, strconv.FormatInt(amountInCents, 10), c.currency}, c.integritySecret)

	charge := chargeRequest{
		AmountInCents: amountInCents,
		Currency:      c.currency,
		Signature:     signature,
		CustomerEmail: details.Email,
		PaymentMethod: paymentMethod{
			Type:         "CARD",
			Token:        details.Token,
			Installments: 1,
		},
		Reference:       reference,
		AcceptanceToken: acceptanceToken,
	}

	var chargeResp transactionResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(charge).
		SetResult(&chargeResp).
		Post("/transactions")
	if err != nil {
		c.logger.Error("Error submitting charge", "transaction_id", transactionID, "error", err)
		return failed
	}
	if resp.IsError() {
		c.logger.Error("Provider rejected charge",
			"transaction_id", transactionID, "status_code", resp.StatusCode())
		return failed
	}

	result := &PaymentResult{
		InternalTransactionID: transactionID,
		ExternalTransactionID: chargeResp.Data.ID,
		Amount:                amount,
		Currency:              c.currency,
		Reference:             reference,
	}

	switch domain.TransactionStatus(chargeResp.Data.Status) {
	case domain.StatusApproved:
		result.Status = domain.StatusApproved
		c.logger.Info("Payment approved", "transaction_id", transactionID, "external_id", chargeResp.Data.ID)
		return result

	case domain.StatusPending:
		if c.pollSettlement(ctx, transactionID, chargeResp.Data.ID) {
			result.Status = domain.StatusApproved
			c.logger.Info("Payment settled after polling",
				"transaction_id", transactionID, "external_id", chargeResp.Data.ID)
			return result
		}
		result.Status = domain.StatusPending
		c.logger.Warn("Payment still pending after polling budget",
			"transaction_id", transactionID, "external_id", chargeResp.Data.ID)
		return result

	default:
		c.logger.Error("Provider returned terminal status",
			"transaction_id", transactionID, "provider_status", chargeResp.Data.Status)
		return failed
	}
}

func (c *Client) getAcceptanceToken(ctx context.Context) (string, error) {
	var merchant merchantResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&merchant).
		Get(fmt.Sprintf("/merchants/%s", c.publicKey))
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("merchant endpoint returned status %d", resp.StatusCode())
	}

	token := merchant.Data.PresignedAcceptance.AcceptanceToken
	if token == "" {
		return "", fmt.Errorf("merchant response carried no acceptance token")
	}
	return token, nil
}

// pollSettlement re-queries the provider-side transaction until it observes
// APPROVED or the attempt budget runs out. Poll errors are logged and count
// against the budget; a cancelled context aborts the wait.
func (c *Client) pollSettlement(ctx context.Context, transactionID uuid.UUID, externalID string) bool {
	for attempt := 1; attempt <= c.pollAttempts; attempt++ {
		var status transactionResponse
		resp, err := c.http.R().
			SetContext(ctx).
			SetResult(&status).
			Get(fmt.Sprintf("/transactions/%s", externalID))

		switch {
		case err != nil:
			c.logger.Error("Error polling settlement",
				"transaction_id", transactionID, "external_id", externalID,
				"attempt", attempt, "error", err)
		case resp.IsError():
			c.logger.Error("Settlement poll rejected",
				"transaction_id", transactionID, "external_id", externalID,
				"attempt", attempt, "status_code", resp.StatusCode())
		case domain.TransactionStatus(status.Data.Status) == domain.StatusApproved:
			return true
		}

		if attempt < c.pollAttempts {
			if err := c.clock.Sleep(ctx, c.pollDelay); err != nil {
				c.logger.Warn("Settlement poll cancelled",
					"transaction_id", transactionID, "external_id", externalID, "error", err)
				return false
			}
		}
	}
	return false
}
