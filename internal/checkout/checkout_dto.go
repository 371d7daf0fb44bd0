package checkout

import (
	"strings"
	"time"

	"go-jewel-storefront/internal/cart"
	"go-jewel-storefront/internal/payment"
	"go-jewel-storefront/internal/pkg/notify"
	"go-jewel-storefront/internal/pricing"
)

type State string

const (
	StateFormEntry   State = "form_entry"
	StateSubmitting  State = "submitting"
	StateOrderPlaced State = "order_placed"
)

type Method string

const (
	MethodOnline Method = "online"
	MethodCOD    Method = "cod"
)

type Outcome string

const (
	OutcomeSuccess   Outcome = "success"
	OutcomeDismissed Outcome = "dismissed"
	OutcomeFailed    Outcome = "failed"
)

type Delivery struct {
	Name     string `json:"name"`
	Address  string `json:"address" validate:"required"`
	Landmark string `json:"landmark,omitempty"`
	City     string `json:"city" validate:"required"`
	State    string `json:"state" validate:"required"`
	PinCode  string `json:"pinCode" validate:"digits=6"`
	Phone    string `json:"phone" validate:"digits=10"`
}

func (d Delivery) trimmed() Delivery {
	d.Name = strings.TrimSpace(d.Name)
	d.Address = strings.TrimSpace(d.Address)
	d.Landmark = strings.TrimSpace(d.Landmark)
	d.City = strings.TrimSpace(d.City)
	d.State = strings.TrimSpace(d.State)
	d.PinCode = strings.TrimSpace(d.PinCode)
	d.Phone = strings.TrimSpace(d.Phone)
	return d
}

// Session is one checkout attempt, kept in the browser's storage.
type Session struct {
	ID        string         `json:"id"`
	CustID    string         `json:"custId"`
	State     State          `json:"state"`
	Method    Method         `json:"method,omitempty"`
	Items     []cart.Item    `json:"items"`
	Totals    pricing.Totals `json:"totals"`
	Delivery  *Delivery      `json:"delivery,omitempty"`
	Gateway   *payment.Order `json:"gatewayOrder,omitempty"`
	OrderNo   string         `json:"orderNo,omitempty"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// Widget is everything the browser needs to open the payment widget.
type Widget struct {
	payment.Order
	Prefill     payment.Prefill `json:"prefill"`
	Description string          `json:"description"`
}

type Result struct {
	Session Session `json:"checkout"`
	Widget  *Widget `json:"payment,omitempty"`

	Notices notify.List `json:"-"`
}

type SubmitRequest struct {
	Method   Method   `json:"method" binding:"required"`
	Delivery Delivery `json:"delivery"`
}

type OutcomeRequest struct {
	Status      Outcome          `json:"status" binding:"required"`
	Callback    payment.Callback `json:"callback"`
	Description string           `json:"description"`
}

// OrderPlaced is recorded to the outbox and pushed to the live feed.
type OrderPlaced struct {
	OrderNo   string    `json:"orderNo"`
	CustID    string    `json:"custId"`
	BrowserID string    `json:"browserId"`
	Method    Method    `json:"paymentMethod"`
	Total     string    `json:"total"`
	Pieces    int       `json:"pieces"`
	PlacedAt  time.Time `json:"placedAt"`
}

const EventOrderPlaced = "ORDER_PLACED"
