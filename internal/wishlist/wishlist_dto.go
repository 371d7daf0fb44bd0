package wishlist

import (
	"go-jewel-storefront/internal/pkg/flex"
	"go-jewel-storefront/internal/pkg/notify"
	"go-jewel-storefront/internal/pricing"

	"github.com/shopspring/decimal"
)

type Item struct {
	WishlistID     string          `json:"wishlistId"`
	ItemNo         string          `json:"itemNo"`
	LotNo          string          `json:"lotNo,omitempty"`
	Description    string          `json:"description"`
	DisplayPrice   decimal.Decimal `json:"displayPrice"`
	OfferPrice     decimal.Decimal `json:"offerPrice"`
	OAmt           decimal.Decimal `json:"oAmt"`
	EffectivePrice decimal.Decimal `json:"effectivePrice"`
	HasDiscount    bool            `json:"hasDiscount"`
	Images         []string        `json:"images"`
}

// Key is the presence identity: LotNo when the row has one, else ItemNo.
func (i Item) Key() string {
	return identity(i.LotNo, i.ItemNo)
}

func identity(lotNo, itemNo string) string {
	if lotNo != "" {
		return "lot:" + lotNo
	}
	return "item:" + itemNo
}

type rawItem struct {
	WishlistID      flex.String  `json:"WishlistId"`
	WishlistIDLower flex.String  `json:"wishlistId"`
	ItemNo          flex.String  `json:"ItemNo"`
	ItemNoLower     flex.String  `json:"itemNo"`
	LotNo           flex.String  `json:"LotNo"`
	LotNoLower      flex.String  `json:"lotNo"`
	Description     string       `json:"Description"`
	Display         flex.Decimal `json:"DisplayPrice"`
	Offer           flex.Decimal `json:"OfferPrice"`
	OAmt            flex.Decimal `json:"OAmt"`
	Images          flex.Images  `json:"images"`
}

func (r rawItem) normalize() Item {
	it := Item{
		WishlistID:   string(flex.First(r.WishlistID, r.WishlistIDLower)),
		ItemNo:       string(flex.First(r.ItemNo, r.ItemNoLower)),
		LotNo:        string(flex.First(r.LotNo, r.LotNoLower)),
		Description:  r.Description,
		DisplayPrice: r.Display.Or(),
		OfferPrice:   r.Offer.Or(),
		OAmt:         r.OAmt.Or(),
		Images:       []string(r.Images),
	}
	if it.Images == nil {
		it.Images = []string{}
	}
	it.EffectivePrice = pricing.EffectivePrice(it.DisplayPrice, it.OfferPrice, it.OAmt)
	it.HasDiscount = pricing.HasDiscount(it.DisplayPrice, it.OfferPrice)
	return it
}

type ToggleRequest struct {
	ItemNo      string `json:"itemNo"`
	LotNo       string `json:"lotNo"`
	Description string `json:"description"`
}

type Result struct {
	Items  []Item `json:"items"`
	Count  int    `json:"count"`
	Source string `json:"source,omitempty"`
	// InWishlist is set by Toggle: whether the item is now wishlisted.
	InWishlist *bool `json:"inWishlist,omitempty"`

	Notices notify.List `json:"-"`
}

func newResult(items []Item) Result {
	if items == nil {
		items = []Item{}
	}
	return Result{Items: items, Count: len(items)}
}
