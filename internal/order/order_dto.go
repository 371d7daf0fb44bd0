package order

import (
	"strings"

	"go-jewel-storefront/internal/pkg/flex"

	"github.com/shopspring/decimal"
)

type Order struct {
	OrderNo      string          `json:"orderNo"`
	Date         string          `json:"date"`
	CustID       string          `json:"custId,omitempty"`
	CustomerName string          `json:"customerName,omitempty"`
	Total        decimal.Decimal `json:"total"`
	TotalWeight  decimal.Decimal `json:"totalWeight"`
	CGST         decimal.Decimal `json:"cgst"`
	SGST         decimal.Decimal `json:"sgst"`
	Status       string          `json:"status,omitempty"`
	Payment      string          `json:"paymentMethod,omitempty"`

	// Items are fetched on demand when a row is expanded.
	Items []Item `json:"items,omitempty"`
}

type Item struct {
	ItemNo      string          `json:"itemNo"`
	Description string          `json:"description"`
	Qty         int             `json:"qty"`
	GWt         decimal.Decimal `json:"gWt"`
	OAmt        decimal.Decimal `json:"oAmt"`
}

type rawItem struct {
	ItemNo      flex.String  `json:"ItemNo"`
	Description string       `json:"Description"`
	Qty         flex.Int     `json:"Qty"`
	QtyLong     flex.Int     `json:"Quantity"`
	GWt         flex.Decimal `json:"GWt"`
	OAmt        flex.Decimal `json:"OAmt"`
}

func (r rawItem) normalize() Item {
	return Item{
		ItemNo:      string(r.ItemNo),
		Description: r.Description,
		Qty:         int(flex.First(r.Qty, r.QtyLong)),
		GWt:         r.GWt.Or(),
		OAmt:        r.OAmt.Or(),
	}
}

type rawOrder struct {
	CustInNo    flex.String  `json:"CustInNo"`
	OrderNo     flex.String  `json:"orderNo"`
	TDate       string       `json:"TDate"`
	CustID      flex.String  `json:"CustId"`
	CustName    string       `json:"CustName"`
	OnAmt       flex.Decimal `json:"OnAmt"`
	TotWt       flex.Decimal `json:"TotWt"`
	CGSTAmt     flex.Decimal `json:"CGSTAmt"`
	SGSTAmt     flex.Decimal `json:"SGSTAmt"`
	Status      string       `json:"Status"`
	PaymentMode string       `json:"PaymentMethod"`
	Items       []rawItem    `json:"items"`
}

func (r rawOrder) normalize() Order {
	o := Order{
		OrderNo:      string(flex.First(r.CustInNo, r.OrderNo)),
		Date:         r.TDate,
		CustID:       string(r.CustID),
		CustomerName: strings.TrimSpace(r.CustName),
		Total:        r.OnAmt.Or(),
		TotalWeight:  r.TotWt.Or(),
		CGST:         r.CGSTAmt.Or(),
		SGST:         r.SGSTAmt.Or(),
		Status:       r.Status,
		Payment:      r.PaymentMode,
	}
	for _, it := range r.Items {
		o.Items = append(o.Items, it.normalize())
	}
	return o
}

// PlaceLine is a cart row sent with a new order.
type PlaceLine struct {
	CartID      string          `json:"cartId,omitempty"`
	ItemNo      string          `json:"itemNo"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

type PlaceRequest struct {
	CustID          string      `json:"custId"`
	CartItems       []PlaceLine `json:"cartItems"`
	DeliveryDetails any         `json:"deliveryDetails"`
	PaymentMethod   string      `json:"paymentMethod"`
	PaymentRef      string      `json:"paymentRef,omitempty"`
	TotalAmount     string      `json:"totalAmount,omitempty"`
}

type ListResult struct {
	Orders []Order `json:"orders"`
	Count  int     `json:"count"`
}

// AdminFilter narrows the back-office order list.
type AdminFilter struct {
	Search string `form:"q"`
	From   string `form:"from"`
	To     string `form:"to"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

func (f AdminFilter) normalized() AdminFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 200 {
		f.Limit = 20
	}
	f.Search = strings.ToLower(strings.TrimSpace(f.Search))
	return f
}
