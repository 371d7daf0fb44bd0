package cart

import (
	"go-jewel-storefront/internal/pkg/flex"
	"go-jewel-storefront/internal/pkg/notify"
	"go-jewel-storefront/internal/pricing"

	"github.com/shopspring/decimal"
)

// Item is the one cart row shape used past the API boundary.
type Item struct {
	CartID         string          `json:"cartId"`
	ItemNo         string          `json:"itemNo"`
	LotNo          string          `json:"lotNo,omitempty"`
	Description    string          `json:"description"`
	Quantity       int             `json:"quantity"`
	DisplayPrice   decimal.Decimal `json:"displayPrice"`
	OfferPrice     decimal.Decimal `json:"offerPrice"`
	OAmt           decimal.Decimal `json:"oAmt"`
	EffectivePrice decimal.Decimal `json:"effectivePrice"`
	HasDiscount    bool            `json:"hasDiscount"`
	GWt            decimal.Decimal `json:"gWt"`
	Images         []string        `json:"images"`
}

func (i Item) Prices() (decimal.Decimal, decimal.Decimal, decimal.Decimal) {
	return i.DisplayPrice, i.OfferPrice, i.OAmt
}

func (i Item) Qty() int { return i.Quantity }

// rawItem is what /cart endpoints actually send: casing differs per endpoint
// and numbers sometimes arrive as strings.
type rawItem struct {
	CartID      flex.String  `json:"CartId"`
	CartIDLower flex.String  `json:"cartId"`
	ID          flex.String  `json:"id"`
	ItemNo      flex.String  `json:"ItemNo"`
	ItemNoLower flex.String  `json:"itemNo"`
	LotNo       flex.String  `json:"LotNo"`
	Description string       `json:"Description"`
	DescLower   string       `json:"description"`
	Quantity    flex.Int     `json:"Quantity"`
	QtyLower    flex.Int     `json:"quantity"`
	Display     flex.Decimal `json:"DisplayPrice"`
	Offer       flex.Decimal `json:"OfferPrice"`
	OAmt        flex.Decimal `json:"OAmt"`
	GWt         flex.Decimal `json:"GWt"`
	Images      flex.Images  `json:"images"`
}

func (r rawItem) normalize() Item {
	it := Item{
		CartID:       string(flex.First(r.CartID, r.CartIDLower, r.ID)),
		ItemNo:       string(flex.First(r.ItemNo, r.ItemNoLower)),
		LotNo:        string(r.LotNo),
		Description:  flex.First(r.Description, r.DescLower),
		Quantity:     int(flex.First(r.Quantity, r.QtyLower)),
		DisplayPrice: r.Display.Or(),
		OfferPrice:   r.Offer.Or(),
		OAmt:         r.OAmt.Or(),
		GWt:          r.GWt.Or(),
		Images:       []string(r.Images),
	}
	if it.Images == nil {
		it.Images = []string{}
	}
	return it.priced()
}

func (i Item) priced() Item {
	i.EffectivePrice = pricing.EffectivePrice(i.DisplayPrice, i.OfferPrice, i.OAmt)
	i.HasDiscount = pricing.HasDiscount(i.DisplayPrice, i.OfferPrice)
	return i
}

func normalizeAll(raw []rawItem) []Item {
	out := make([]Item, 0, len(raw))
	for _, r := range raw {
		out = append(out, r.normalize())
	}
	return out
}

type AddRequest struct {
	ItemNo string `json:"itemNo" binding:"required"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// Result is the cart after an action plus what to tell the user.
type Result struct {
	Items    []Item          `json:"items"`
	Count    int             `json:"count"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Source   string          `json:"source,omitempty"`

	Notices notify.List `json:"-"`
}

func newResult(items []Item) Result {
	if items == nil {
		items = []Item{}
	}
	return Result{
		Items:    items,
		Count:    Count(items),
		Subtotal: pricing.Subtotal(items),
	}
}

// Count is the number of pieces in the cart, not the number of rows.
func Count(items []Item) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}
