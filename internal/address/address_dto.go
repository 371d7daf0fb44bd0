package address

import (
	"strings"

	"go-jewel-storefront/internal/pkg/flex"
)

type Address struct {
	ID        string `json:"id"`
	CustID    string `json:"custId"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Landmark  string `json:"landmark,omitempty"`
	City      string `json:"city"`
	State     string `json:"state"`
	PinCode   string `json:"pinCode"`
	IsDefault bool   `json:"isDefault"`
}

type rawAddress struct {
	ID        flex.String `json:"Id"`
	IDLower   flex.String `json:"id"`
	AddressID flex.String `json:"AddressId"`
	CustID    flex.String `json:"CustId"`
	Name      string      `json:"Name"`
	Phone     flex.String `json:"Phone"`
	Address   string      `json:"Address"`
	Line      string      `json:"AddressLine"`
	Landmark  string      `json:"Landmark"`
	City      string      `json:"City"`
	State     string      `json:"State"`
	PinCode   flex.String `json:"PinCode"`
	Pincode   flex.String `json:"Pincode"`
	IsDefault any         `json:"IsDefault"`
}

// truthy accepts true, 1 or "1"/"true" since the backend stores a bit column.
func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t == "1" || strings.EqualFold(t, "true")
	}
	return false
}

func (r rawAddress) normalize() Address {
	return Address{
		ID:        string(flex.First(r.ID, r.IDLower, r.AddressID)),
		CustID:    string(r.CustID),
		Name:      r.Name,
		Phone:     string(r.Phone),
		Address:   flex.First(r.Address, r.Line),
		Landmark:  r.Landmark,
		City:      r.City,
		State:     r.State,
		PinCode:   string(flex.First(r.PinCode, r.Pincode)),
		IsDefault: truthy(r.IsDefault),
	}
}

// Request is the create/update body. The backend expects PascalCase keys.
type Request struct {
	Name      string `json:"name" validate:"required"`
	Phone     string `json:"phone" validate:"digits=10"`
	Address   string `json:"address" validate:"required"`
	Landmark  string `json:"landmark"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	PinCode   string `json:"pinCode" validate:"digits=6"`
	IsDefault bool   `json:"isDefault"`
}

func (r Request) trimmed() Request {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Address = strings.TrimSpace(r.Address)
	r.Landmark = strings.TrimSpace(r.Landmark)
	r.City = strings.TrimSpace(r.City)
	r.State = strings.TrimSpace(r.State)
	r.PinCode = strings.TrimSpace(r.PinCode)
	return r
}

type upstreamBody struct {
	CustID    string `json:"CustId"`
	Name      string `json:"Name"`
	Phone     string `json:"Phone"`
	Address   string `json:"Address"`
	Landmark  string `json:"Landmark,omitempty"`
	City      string `json:"City"`
	State     string `json:"State"`
	PinCode   string `json:"PinCode"`
	IsDefault bool   `json:"IsDefault"`
}

func (r Request) body(custID string) upstreamBody {
	return upstreamBody{
		CustID:    custID,
		Name:      r.Name,
		Phone:     r.Phone,
		Address:   r.Address,
		Landmark:  r.Landmark,
		City:      r.City,
		State:     r.State,
		PinCode:   r.PinCode,
		IsDefault: r.IsDefault,
	}
}

func (a Address) request() Request {
	return Request{
		Name:      a.Name,
		Phone:     a.Phone,
		Address:   a.Address,
		Landmark:  a.Landmark,
		City:      a.City,
		State:     a.State,
		PinCode:   a.PinCode,
		IsDefault: a.IsDefault,
	}
}
