package catalog

import (
	"net/url"
	"strings"

	"go-jewel-storefront/internal/pkg/flex"
	"go-jewel-storefront/internal/pricing"

	"github.com/shopspring/decimal"
)

type Product struct {
	ItemNo         string          `json:"itemNo"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	SubCategory    string          `json:"subCategory,omitempty"`
	Metal          string          `json:"metal,omitempty"`
	Purity         string          `json:"purity,omitempty"`
	GWt            decimal.Decimal `json:"gWt"`
	NetWt          decimal.Decimal `json:"netWt"`
	DisplayPrice   decimal.Decimal `json:"displayPrice"`
	OfferPrice     decimal.Decimal `json:"offerPrice"`
	OAmt           decimal.Decimal `json:"oAmt"`
	EffectivePrice decimal.Decimal `json:"effectivePrice"`
	HasDiscount    bool            `json:"hasDiscount"`
	Images         []string        `json:"images"`
}

type rawProduct struct {
	ItemNo      flex.String  `json:"ItemNo"`
	ItemNoLower flex.String  `json:"itemNo"`
	Description string       `json:"Description"`
	DescLower   string       `json:"description"`
	Category    string       `json:"Category"`
	SubCategory string       `json:"SubCategory"`
	Metal       string       `json:"Metal"`
	Purity      flex.String  `json:"Purity"`
	GWt         flex.Decimal `json:"GWt"`
	NetWt       flex.Decimal `json:"NetWt"`
	Display     flex.Decimal `json:"DisplayPrice"`
	Offer       flex.Decimal `json:"OfferPrice"`
	OAmt        flex.Decimal `json:"OAmt"`
	Images      flex.Images  `json:"images"`
	ImagesUpper flex.Images  `json:"Images"`
}

func (r rawProduct) normalize() Product {
	p := Product{
		ItemNo:       string(flex.First(r.ItemNo, r.ItemNoLower)),
		Description:  flex.First(r.Description, r.DescLower),
		Category:     r.Category,
		SubCategory:  r.SubCategory,
		Metal:        r.Metal,
		Purity:       string(r.Purity),
		GWt:          r.GWt.Or(),
		NetWt:        r.NetWt.Or(),
		DisplayPrice: r.Display.Or(),
		OfferPrice:   r.Offer.Or(),
		OAmt:         r.OAmt.Or(),
		Images:       []string(r.Images),
	}
	if len(p.Images) == 0 {
		p.Images = []string(r.ImagesUpper)
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	p.EffectivePrice = pricing.EffectivePrice(p.DisplayPrice, p.OfferPrice, p.OAmt)
	p.HasDiscount = pricing.HasDiscount(p.DisplayPrice, p.OfferPrice)
	return p
}

type ListQuery struct {
	Category    string `form:"category"`
	SubCategory string `form:"subCategory"`
	Q           string `form:"q"`
	Metal       string `form:"metal"`
	Page        int    `form:"page"`
	Limit       int    `form:"limit"`
}

const (
	defaultLimit = 24
	maxLimit     = 100
)

func (q ListQuery) normalized() ListQuery {
	q.Category = strings.TrimSpace(q.Category)
	q.SubCategory = strings.TrimSpace(q.SubCategory)
	q.Q = strings.TrimSpace(q.Q)
	q.Metal = strings.TrimSpace(q.Metal)
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = defaultLimit
	}
	if q.Limit > maxLimit {
		q.Limit = maxLimit
	}
	return q
}

// values holds only the filters the backend understands; paging is local.
func (q ListQuery) values() url.Values {
	v := url.Values{}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.SubCategory != "" {
		v.Set("subCategory", q.SubCategory)
	}
	if q.Q != "" {
		v.Set("q", q.Q)
	}
	if q.Metal != "" {
		v.Set("metal", q.Metal)
	}
	return v
}

// Home is the landing page payload.
type Home struct {
	Featured   []Product `json:"featured"`
	OnOffer    []Product `json:"onOffer"`
	Categories []string  `json:"categories"`
}
