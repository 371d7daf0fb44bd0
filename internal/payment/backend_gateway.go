package payment

import (
	"context"

	"go-jewel-storefront/internal/apiclient"
	"go-jewel-storefront/internal/pkg/flex"
)

// BackendGateway delegates order creation and signature checks to the
// storefront backend.
type BackendGateway struct {
	api   apiclient.API
	keyID string
}

func NewBackendGateway(api apiclient.API, keyID string) *BackendGateway {
	return &BackendGateway{api: api, keyID: keyID}
}

func (g *BackendGateway) Name() string { return "backend" }

type createOrderBody struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type gatewayOrderDTO struct {
	ID       flex.String `json:"id"`
	OrderID  flex.String `json:"orderId"`
	Amount   flex.Int    `json:"amount"`
	Currency string      `json:"currency"`
	Key      string      `json:"key"`
}

func (g *BackendGateway) CreateOrder(ctx context.Context, req CreateOrderRequest) (Order, error) {
	body := createOrderBody{
		Amount:   MinorUnits(req.Amount),
		Currency: req.Currency,
		Receipt:  req.Receipt,
		Notes:    req.Notes,
	}

	var env struct {
		apiclient.Envelope[gatewayOrderDTO]
		Order gatewayOrderDTO `json:"order"`
	}
	if err := g.api.Post(ctx, "/payment/create-order", body, &env); err != nil {
		return Order{}, err
	}
	if err := env.Err(); err != nil {
		return Order{}, err
	}

	dto := env.Data
	if flex.First(dto.ID, dto.OrderID) == "" {
		dto = env.Order
	}
	id := string(flex.First(dto.ID, dto.OrderID))
	if id == "" {
		return Order{}, ErrCreateOrderFailed
	}

	out := Order{
		Gateway:  g.Name(),
		ID:       id,
		Amount:   int64(dto.Amount),
		Currency: flex.First(dto.Currency, req.Currency),
		Key:      flex.First(dto.Key, g.keyID),
	}
	if out.Amount == 0 {
		out.Amount = body.Amount
	}
	return out, nil
}

type verifyBody struct {
	OrderID         string `json:"razorpay_order_id"`
	PaymentID       string `json:"razorpay_payment_id"`
	Signature       string `json:"razorpay_signature"`
	CustID          string `json:"custId"`
	CartItems       []Line `json:"cartItems"`
	DeliveryDetails any    `json:"deliveryDetails"`
	TotalAmount     string `json:"totalAmount"`
}

type placedDTO struct {
	Success *bool       `json:"success"`
	Message string      `json:"message"`
	OrderNo flex.String `json:"orderNo"`
	Data    struct {
		OrderNo  flex.String `json:"orderNo"`
		CustInNo flex.String `json:"CustInNo"`
	} `json:"data"`
}

// OrderNumber digs the order number out of the shapes the backend uses.
func (p placedDTO) OrderNumber() string {
	return string(flex.First(p.OrderNo, p.Data.OrderNo, p.Data.CustInNo))
}

func (g *BackendGateway) Verify(ctx context.Context, req VerifyRequest) (string, error) {
	body := verifyBody{
		OrderID:         req.Callback.GatewayOrderID,
		PaymentID:       req.Callback.PaymentID,
		Signature:       req.Callback.Signature,
		CustID:          req.CustID,
		CartItems:       req.Lines,
		DeliveryDetails: req.Delivery,
		TotalAmount:     req.Total.String(),
	}

	var res placedDTO
	if err := g.api.Post(ctx, "/payment/verify", body, &res); err != nil {
		return "", err
	}
	if res.Success != nil && !*res.Success {
		if res.Message != "" {
			return "", ErrVerificationFailed.WithMessage(res.Message)
		}
		return "", ErrVerificationFailed
	}
	orderNo := res.OrderNumber()
	if orderNo == "" {
		return "", ErrVerificationFailed
	}
	return orderNo, nil
}

var _ Gateway = (*BackendGateway)(nil)
