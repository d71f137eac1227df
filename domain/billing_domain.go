package domain

import (
	"errors"
)

// PremiumPrice is the one-off price of the premium subscription in IDR.
const PremiumPrice int64 = 50000

var (
	MessageSuccessWebhook = "webhook processed"
	MessageFailedWebhook  = "failed to process webhook"

	ErrTransactionNotFound = errors.New("transaction not found")
)

type (
	SubscribeResponse struct {
		OrderID     string `json:"order_id"`
		Token       string `json:"token"`
		RedirectURL string `json:"redirect_url"`
	}

	MidtransWebhookRequest struct {
		OrderID           string `json:"order_id"`
		TransactionStatus string `json:"transaction_status"`
		PaymentType       string `json:"payment_type"`
		FraudStatus       string `json:"fraud_status"`
	}
)
