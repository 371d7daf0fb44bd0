package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

type RateStatus string

const (
	RateLoading RateStatus = "loading"
	RateKnown   RateStatus = "known"
	RateFailed  RateStatus = "failed"
)

// Rate is a metal rate per 10g, scaled by per/100 and cper/100.
type Rate struct {
	Status RateStatus      `json:"status"`
	Rate   decimal.Decimal `json:"rate"`
	Per    decimal.Decimal `json:"per"`
	CPer   decimal.Decimal `json:"cper"`
	Error  string          `json:"error,omitempty"`
}

var hundred = decimal.NewFromInt(100)

// FallbackRate previews with a zero rate; it can never be saved.
func FallbackRate(status RateStatus, reason string) Rate {
	return Rate{Status: status, Rate: decimal.Zero, Per: hundred, CPer: hundred, Error: reason}
}

type Input struct {
	GWt            decimal.Decimal `json:"gwt"`
	LessWt         decimal.Decimal `json:"lessWt"`
	OWt            decimal.Decimal `json:"owt"`
	LabAmt         decimal.Decimal `json:"labAmt"`
	LabType        string          `json:"labType"`
	WastagePercent decimal.Decimal `json:"wastagePercent"`
	Rate           Rate            `json:"rate"`
}

type Breakdown struct {
	NetWt         decimal.Decimal `json:"netWt"`
	AdjustedRate  decimal.Decimal `json:"adjustedRate"`
	MetalAmt      decimal.Decimal `json:"metalAmt"`
	LabourAmt     decimal.Decimal `json:"labourAmt"`
	WastageAmount decimal.Decimal `json:"wastageAmount"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	GST           decimal.Decimal `json:"gst"`
	GrandTotal    decimal.Decimal `json:"grandTotal"`
	RateStatus    RateStatus      `json:"rateStatus"`
	Saveable      bool            `json:"saveable"`
}

var (
	ten     = decimal.NewFromInt(10)
	gstRate = decimal.RequireFromString("0.03")
)

// Calculate is the inventory price preview. Unknown labour types add no labour.
func Calculate(in Input) Breakdown {
	rate := in.Rate
	if rate.Status != RateKnown {
		rate = FallbackRate(rate.Status, rate.Error)
	}

	less := in.OWt
	if in.LessWt.IsPositive() {
		less = in.LessWt
	}
	netWt := in.GWt.Sub(less)

	adjusted := rate.Rate.Mul(rate.Per.Div(hundred)).Mul(rate.CPer.Div(hundred))
	metalAmt := netWt.Mul(adjusted.Div(ten))

	var labour decimal.Decimal
	switch strings.TrimSpace(in.LabType) {
	case "Gm", "G":
		labour = netWt.Mul(in.LabAmt)
	case "%":
		labour = metalAmt.Mul(in.LabAmt).Div(hundred)
	case "Fix", "Pc":
		labour = in.LabAmt
	default:
		labour = decimal.Zero
	}

	wastage := metalAmt.Mul(in.WastagePercent).Div(hundred)
	subtotal := metalAmt.Add(labour).Add(wastage)
	gst := subtotal.Mul(gstRate)

	status := in.Rate.Status
	if status == "" {
		status = RateLoading
	}

	return Breakdown{
		NetWt:         netWt,
		AdjustedRate:  adjusted,
		MetalAmt:      metalAmt,
		LabourAmt:     labour,
		WastageAmount: wastage,
		Subtotal:      subtotal,
		GST:           gst,
		GrandTotal:    subtotal.Add(gst),
		RateStatus:    status,
		Saveable:      status == RateKnown,
	}
}
