package inventory

import (
	"strings"

	"go-jewel-storefront/internal/pkg/flex"
	"go-jewel-storefront/internal/pricing"

	"github.com/shopspring/decimal"
)

// Record is a stock-master row looked up by item number before it is listed.
type Record struct {
	ItemNo         string          `json:"itemNo"`
	LotNo          string          `json:"lotNo,omitempty"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	SubCategory    string          `json:"subCategory,omitempty"`
	Metal          string          `json:"metal"`
	Purity         string          `json:"purity"`
	GWt            decimal.Decimal `json:"gwt"`
	LessWt         decimal.Decimal `json:"lessWt"`
	OWt            decimal.Decimal `json:"owt"`
	LabAmt         decimal.Decimal `json:"labAmt"`
	LabType        string          `json:"labType"`
	WastagePercent decimal.Decimal `json:"wastagePercent"`
	Images         []string        `json:"images"`
	InInventory    bool            `json:"inInventory"`
}

type rawRecord struct {
	ItemNo      flex.String  `json:"ItemNo"`
	LotNo       flex.String  `json:"LotNo"`
	Description string       `json:"Description"`
	Category    string       `json:"Category"`
	SubCategory string       `json:"SubCategory"`
	Metal       string       `json:"Metal"`
	Purity      flex.String  `json:"Purity"`
	GWt         flex.Decimal `json:"GWt"`
	LessWt      flex.Decimal `json:"LessWt"`
	OWt         flex.Decimal `json:"OWt"`
	LabAmt      flex.Decimal `json:"LabAmt"`
	LabType     string       `json:"LabType"`
	Wastage     flex.Decimal `json:"WastagePercent"`
	Images      flex.Images  `json:"images"`
	InInventory *bool        `json:"inInventory"`
}

func (r rawRecord) normalize() Record {
	rec := Record{
		ItemNo:         string(r.ItemNo),
		LotNo:          string(r.LotNo),
		Description:    r.Description,
		Category:       r.Category,
		SubCategory:    r.SubCategory,
		Metal:          r.Metal,
		Purity:         string(r.Purity),
		GWt:            r.GWt.Or(),
		LessWt:         r.LessWt.Or(),
		OWt:            r.OWt.Or(),
		LabAmt:         r.LabAmt.Or(),
		LabType:        strings.TrimSpace(r.LabType),
		WastagePercent: r.Wastage.Or(),
		Images:         []string(r.Images),
	}
	if rec.Images == nil {
		rec.Images = []string{}
	}
	if r.InInventory != nil {
		rec.InInventory = *r.InInventory
	}
	return rec
}

// PreviewRequest carries the weights and labour the admin is editing.
type PreviewRequest struct {
	Metal          string          `json:"metal" binding:"required"`
	Purity         string          `json:"purity" binding:"required"`
	GWt            decimal.Decimal `json:"gwt"`
	LessWt         decimal.Decimal `json:"lessWt"`
	OWt            decimal.Decimal `json:"owt"`
	LabAmt         decimal.Decimal `json:"labAmt"`
	LabType        string          `json:"labType"`
	WastagePercent decimal.Decimal `json:"wastagePercent"`
}

func (p PreviewRequest) input(rate pricing.Rate) pricing.Input {
	return pricing.Input{
		GWt:            p.GWt,
		LessWt:         p.LessWt,
		OWt:            p.OWt,
		LabAmt:         p.LabAmt,
		LabType:        p.LabType,
		WastagePercent: p.WastagePercent,
		Rate:           rate,
	}
}

type Preview struct {
	Rate      pricing.Rate      `json:"rate"`
	Breakdown pricing.Breakdown `json:"breakdown"`
}

// AddRequest lists a stock item on the storefront. A zero display price is
// filled from the computed grand total.
type AddRequest struct {
	PreviewRequest
	ItemNo       string          `json:"itemNo" binding:"required"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	SubCategory  string          `json:"subCategory"`
	DisplayPrice decimal.Decimal `json:"displayPrice"`
	OfferPrice   decimal.Decimal `json:"offerPrice"`
	Images       []string        `json:"images"`
}

type addBody struct {
	ItemNo         string          `json:"ItemNo"`
	Description    string          `json:"Description"`
	Category       string          `json:"Category"`
	SubCategory    string          `json:"SubCategory,omitempty"`
	Metal          string          `json:"Metal"`
	Purity         string          `json:"Purity"`
	GWt            decimal.Decimal `json:"GWt"`
	NetWt          decimal.Decimal `json:"NetWt"`
	LabAmt         decimal.Decimal `json:"LabAmt"`
	LabType        string          `json:"LabType"`
	WastagePercent decimal.Decimal `json:"WastagePercent"`
	Rate           decimal.Decimal `json:"Rate"`
	OAmt           decimal.Decimal `json:"OAmt"`
	DisplayPrice   decimal.Decimal `json:"DisplayPrice"`
	OfferPrice     decimal.Decimal `json:"OfferPrice"`
	Images         []string        `json:"Images"`
}

func (r AddRequest) body(b pricing.Breakdown) addBody {
	display := r.DisplayPrice
	if !display.IsPositive() {
		display = b.GrandTotal.Round(2)
	}
	images := r.Images
	if images == nil {
		images = []string{}
	}
	return addBody{
		ItemNo:         r.ItemNo,
		Description:    r.Description,
		Category:       r.Category,
		SubCategory:    r.SubCategory,
		Metal:          r.Metal,
		Purity:         r.Purity,
		GWt:            r.GWt,
		NetWt:          b.NetWt,
		LabAmt:         r.LabAmt,
		LabType:        r.LabType,
		WastagePercent: r.WastagePercent,
		Rate:           b.AdjustedRate,
		OAmt:           b.GrandTotal.Round(2),
		DisplayPrice:   display,
		OfferPrice:     r.OfferPrice,
		Images:         images,
	}
}

type Image struct {
	Data        []byte
	ContentType string
}
