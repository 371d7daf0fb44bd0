// Package midtrans is a payment.Gateway that talks to Midtrans directly:
// Snap for the widget token, the Core API for the status check.
package midtrans

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"go-jewel-storefront/internal/order"
	"go-jewel-storefront/internal/payment"
	"go-jewel-storefront/internal/pkg/apperror"

	midtransgo "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=midtrans_gateway.go -destination=../mock/midtrans/midtrans_gateway_mock.go -package=mock
type SnapClient interface {
	CreateTransaction(req *snap.Request) (*snap.Response, *midtransgo.Error)
}

type StatusClient interface {
	CheckTransaction(orderID string) (*coreapi.TransactionStatusResponse, *midtransgo.Error)
}

// OrderPlacer records the order once the payment is confirmed.
type OrderPlacer interface {
	Place(ctx context.Context, req order.PlaceRequest) (string, error)
}

type Config struct {
	ServerKey    string
	ClientKey    string
	IsProduction bool
}

type Deps struct {
	Snap   SnapClient
	Status StatusClient
	Orders OrderPlacer
	Logger *zap.Logger
	Now    func() time.Time
}

type Gateway struct {
	cfg    Config
	snap   SnapClient
	status StatusClient
	orders OrderPlacer
	logger *zap.Logger
	now    func() time.Time
}

// NewClients builds the real Snap and Core API clients for cfg.
func NewClients(cfg Config) (*snap.Client, *coreapi.Client) {
	env := midtransgo.Sandbox
	if cfg.IsProduction {
		env = midtransgo.Production
	}

	s := &snap.Client{}
	s.New(cfg.ServerKey, env)

	c := &coreapi.Client{}
	c.New(cfg.ServerKey, env)

	return s, c
}

func NewGateway(cfg Config, deps Deps) *Gateway {
	if deps.Snap == nil || deps.Status == nil {
		s, c := NewClients(cfg)
		if deps.Snap == nil {
			deps.Snap = s
		}
		if deps.Status == nil {
			deps.Status = c
		}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Gateway{
		cfg:    cfg,
		snap:   deps.Snap,
		status: deps.Status,
		orders: deps.Orders,
		logger: deps.Logger.Named("midtrans"),
		now:    deps.Now,
	}
}

func (g *Gateway) Name() string { return "midtrans" }

// grossAmount is the whole-rupee amount Midtrans charges.
func grossAmount(amount decimal.Decimal) int64 {
	return amount.Round(0).IntPart()
}

// sameGross compares Midtrans' "257500.00" style amount with the whole rupees charged.
func sameGross(reported string, gross int64) bool {
	amt, err := decimal.NewFromString(strings.TrimSpace(reported))
	if err != nil {
		return false
	}
	return amt.Equal(decimal.NewFromInt(gross))
}

// truncate cuts s to at most n characters without splitting a rune.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// itemDetails lists the cart lines plus a tax line for whatever the lines do
// not cover. Midtrans rejects details that do not add up, so they are
// dropped when the lines already exceed the gross amount.
func itemDetails(lines []payment.Line, gross int64) *[]midtransgo.ItemDetails {
	items := make([]midtransgo.ItemDetails, 0, len(lines)+1)
	var sum int64
	for _, l := range lines {
		price := grossAmount(l.UnitPrice)
		name := truncate(l.Description, 50)
		items = append(items, midtransgo.ItemDetails{
			ID:    l.ItemNo,
			Name:  name,
			Price: price,
			Qty:   int32(l.Quantity),
		})
		sum += price * int64(l.Quantity)
	}
	if sum > gross {
		return nil
	}
	if rest := gross - sum; rest > 0 {
		items = append(items, midtransgo.ItemDetails{ID: "GST", Name: "CGST + SGST", Price: rest, Qty: 1})
	}
	return &items
}

func splitName(full string) (string, string) {
	full = strings.TrimSpace(full)
	if i := strings.LastIndex(full, " "); i > 0 {
		return full[:i], full[i+1:]
	}
	return full, ""
}

func (g *Gateway) CreateOrder(ctx context.Context, req payment.CreateOrderRequest) (payment.Order, error) {
	if strings.TrimSpace(g.cfg.ServerKey) == "" {
		return payment.Order{}, ErrServerKeyNotConfigured
	}

	orderID := req.Receipt + "-" + g.now().UTC().Format("20060102150405")
	gross := grossAmount(req.Amount)
	first, last := splitName(req.Customer.Name)

	snapReq := &snap.Request{
		TransactionDetails: midtransgo.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: gross,
		},
		CustomerDetail: &midtransgo.CustomerDetails{
			FName: first,
			LName: last,
			Email: req.Customer.Email,
			Phone: req.Customer.Phone,
		},
		Items: itemDetails(req.Lines, gross),
	}

	resp, merr := g.snap.CreateTransaction(snapReq)
	if merr != nil {
		g.logger.Warn("snap create transaction",
			zap.String("order_id", orderID),
			zap.String("error", merr.Message),
		)
		return payment.Order{}, apperror.Wrap(errors.New(merr.Message), payment.ErrCreateOrderFailed.Code, payment.ErrCreateOrderFailed.Message, payment.ErrCreateOrderFailed.HTTPStatus)
	}

	return payment.Order{
		Gateway:     g.Name(),
		ID:          orderID,
		Amount:      payment.MinorUnits(req.Amount),
		Currency:    req.Currency,
		Key:         g.cfg.ClientKey,
		Token:       resp.Token,
		RedirectURL: resp.RedirectURL,
	}, nil
}

// Notification is the subset of a Midtrans status payload the signature covers.
type Notification struct {
	OrderID           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	TransactionID     string `json:"transaction_id"`
}

// Signature is sha512(order_id + status_code + gross_amount + server_key), hex encoded.
func Signature(orderID, statusCode, grossAmount, serverKey string) string {
	hash := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(hash[:])
}

func VerifySignature(n Notification, serverKey string) error {
	serverKey = strings.TrimSpace(serverKey)
	if serverKey == "" {
		return ErrServerKeyNotConfigured
	}
	expected := Signature(n.OrderID, n.StatusCode, n.GrossAmount, serverKey)
	if expected != strings.ToLower(strings.TrimSpace(n.SignatureKey)) {
		return ErrInvalidSignature
	}
	return nil
}

// Paid reports whether a verified status means the money is in.
func (n Notification) Paid() bool {
	switch strings.ToLower(n.TransactionStatus) {
	case "settlement":
		return true
	case "capture":
		return n.FraudStatus == "" || strings.EqualFold(n.FraudStatus, "accept")
	}
	return false
}

func (g *Gateway) Verify(ctx context.Context, req payment.VerifyRequest) (string, error) {
	orderID := req.Callback.GatewayOrderID
	status, merr := g.status.CheckTransaction(orderID)
	if merr != nil {
		g.logger.Warn("core api check transaction",
			zap.String("order_id", orderID),
			zap.String("error", merr.Message),
		)
		return "", apperror.Wrap(errors.New(merr.Message), payment.ErrVerificationFailed.Code, payment.ErrVerificationFailed.Message, payment.ErrVerificationFailed.HTTPStatus)
	}

	n := Notification{
		OrderID:           status.OrderID,
		StatusCode:        status.StatusCode,
		GrossAmount:       status.GrossAmount,
		SignatureKey:      status.SignatureKey,
		TransactionStatus: status.TransactionStatus,
		FraudStatus:       status.FraudStatus,
		TransactionID:     status.TransactionID,
	}
	if err := VerifySignature(n, g.cfg.ServerKey); err != nil {
		g.logger.Warn("midtrans signature mismatch", zap.String("order_id", orderID))
		return "", err
	}
	if n.OrderID != orderID {
		g.logger.Warn("midtrans status for another order",
			zap.String("order_id", orderID),
			zap.String("status_order_id", n.OrderID),
		)
		return "", ErrOrderMismatch
	}
	if !sameGross(n.GrossAmount, grossAmount(req.Total)) {
		g.logger.Warn("midtrans gross amount mismatch",
			zap.String("order_id", orderID),
			zap.String("gross_amount", n.GrossAmount),
			zap.String("expected", req.Total.String()),
		)
		return "", ErrAmountMismatch
	}
	if !n.Paid() {
		g.logger.Info("midtrans transaction not paid",
			zap.String("order_id", orderID),
			zap.String("status", n.TransactionStatus),
		)
		return "", ErrNotPaid
	}

	cartItems := make([]order.PlaceLine, 0, len(req.Lines))
	for _, l := range req.Lines {
		cartItems = append(cartItems, order.PlaceLine{
			ItemNo:      l.ItemNo,
			Description: l.Description,
			Quantity:    l.Quantity,
			Price:       l.UnitPrice,
		})
	}

	return g.orders.Place(ctx, order.PlaceRequest{
		CustID:          req.CustID,
		CartItems:       cartItems,
		DeliveryDetails: req.Delivery,
		PaymentMethod:   "online",
		PaymentRef:      n.TransactionID,
		TotalAmount:     req.Total.String(),
	})
}
