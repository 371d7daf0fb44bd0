// Package payment abstracts the online payment widget flow: the gateway
// creates an order the widget is opened with, then verifies what the widget
// reported and turns it into a placed order.
package payment

import (
	"context"
	"net/http"

	"go-jewel-storefront/internal/pkg/apperror"

	"github.com/shopspring/decimal"
)

const CurrencyINR = "INR"

type Prefill struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"contact"`
}

type CreateOrderRequest struct {
	Amount   decimal.Decimal
	Currency string
	Receipt  string
	Notes    map[string]string
	Customer Prefill
	Lines    []Line
}

// Line is one cart row as the gateway sees it.
type Line struct {
	ItemNo      string          `json:"itemNo"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// Order is what the browser needs to open the checkout widget.
type Order struct {
	Gateway     string `json:"gateway"`
	ID          string `json:"orderId"`
	Amount      int64  `json:"amount"` // minor units
	Currency    string `json:"currency"`
	Key         string `json:"key,omitempty"`
	Token       string `json:"token,omitempty"`
	RedirectURL string `json:"redirectUrl,omitempty"`
}

// Callback is what the widget handed back on success.
type Callback struct {
	GatewayOrderID string `json:"gatewayOrderId"`
	PaymentID      string `json:"paymentId"`
	Signature      string `json:"signature"`
}

type VerifyRequest struct {
	Callback Callback
	CustID   string
	Lines    []Line
	Delivery any
	Total    decimal.Decimal
}

//go:generate mockgen -source=payment.go -destination=../mock/payment/payment_mock.go -package=mock
type Gateway interface {
	Name() string
	CreateOrder(ctx context.Context, req CreateOrderRequest) (Order, error)
	// Verify confirms the payment and returns the storefront order number.
	Verify(ctx context.Context, req VerifyRequest) (string, error)
}

// MinorUnits converts rupees to paise, rounding half up.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

var (
	ErrCreateOrderFailed = apperror.New(
		apperror.CodePaymentFailed,
		"Could not start the payment. Please try again",
		http.StatusBadGateway,
	)

	ErrVerificationFailed = apperror.New(
		apperror.CodePaymentFailed,
		"Payment verification failed",
		http.StatusPaymentRequired,
	)
)
