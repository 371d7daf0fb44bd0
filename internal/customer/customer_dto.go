package customer

import (
	"strings"

	"go-jewel-storefront/internal/pkg/flex"
)

type Customer struct {
	ID        string `json:"id"`
	CustID    string `json:"custId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	City      string `json:"city,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type rawCustomer struct {
	ID        flex.String `json:"Id"`
	IDLower   flex.String `json:"id"`
	CustID    flex.String `json:"CustId"`
	Name      string      `json:"Name"`
	CustName  string      `json:"CustName"`
	Email     string      `json:"Email"`
	Phone     flex.String `json:"Phone"`
	Mobile    flex.String `json:"Mobile"`
	City      string      `json:"City"`
	CreatedAt string      `json:"CreatedAt"`
}

func (r rawCustomer) normalize() Customer {
	c := Customer{
		ID:        string(flex.First(r.ID, r.IDLower, r.CustID)),
		CustID:    string(r.CustID),
		Name:      flex.First(r.Name, r.CustName),
		Email:     r.Email,
		Phone:     string(flex.First(r.Phone, r.Mobile)),
		City:      r.City,
		CreatedAt: r.CreatedAt,
	}
	if c.CustID == "" {
		c.CustID = c.ID
	}
	return c
}

type Request struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"digits=10"`
	City  string `json:"city"`
}

func (r Request) trimmed() Request {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.City = strings.TrimSpace(r.City)
	return r
}

type upstreamBody struct {
	Name  string `json:"Name"`
	Email string `json:"Email"`
	Phone string `json:"Phone"`
	City  string `json:"City,omitempty"`
}

func (r Request) body() upstreamBody {
	return upstreamBody{Name: r.Name, Email: r.Email, Phone: r.Phone, City: r.City}
}

type ListQuery struct {
	Search string `form:"q"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

func (q ListQuery) normalized() ListQuery {
	q.Search = strings.ToLower(strings.TrimSpace(q.Search))
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = 20
	}
	if q.Limit > 200 {
		q.Limit = 200
	}
	return q
}

func (c Customer) matches(term string) bool {
	if term == "" {
		return true
	}
	for _, f := range []string{c.CustID, c.Name, c.Email, c.Phone} {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
