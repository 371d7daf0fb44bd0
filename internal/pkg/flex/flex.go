// Package flex decodes backend JSON fields that arrive as either numbers or
// strings depending on the endpoint.
package flex

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var null = []byte("null")

func unquote(b []byte) (string, bool) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, null) {
		return "", false
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return "", false
		}
		return strings.TrimSpace(s), s != ""
	}
	return string(b), true
}

// String accepts "R1" or 1001.
type String string

func (s *String) UnmarshalJSON(b []byte) error {
	v, _ := unquote(b)
	*s = String(v)
	return nil
}

// Int accepts 2, "2" or 2.0. Anything unparseable is 0.
type Int int

func (i *Int) UnmarshalJSON(b []byte) error {
	v, ok := unquote(b)
	if !ok {
		*i = 0
		return nil
	}
	if n, err := strconv.Atoi(v); err == nil {
		*i = Int(n)
		return nil
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		*i = Int(int(f))
		return nil
	}
	*i = 0
	return nil
}

// Decimal accepts 1000, "1000.50", "" or null. Empty and unparseable are invalid.
type Decimal struct {
	decimal.NullDecimal
}

func (d *Decimal) UnmarshalJSON(b []byte) error {
	v, ok := unquote(b)
	if !ok {
		d.NullDecimal = decimal.NullDecimal{}
		return nil
	}
	dec, err := decimal.NewFromString(v)
	if err != nil {
		d.NullDecimal = decimal.NullDecimal{}
		return nil
	}
	d.NullDecimal = decimal.NullDecimal{Decimal: dec, Valid: true}
	return nil
}

// Or returns the value, or zero when absent.
func (d Decimal) Or() decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}

// First returns the first non-empty value.
func First[T comparable](vals ...T) T {
	var zero T
	for _, v := range vals {
		if v != zero {
			return v
		}
	}
	return zero
}

// FirstDecimal returns the first present value.
func FirstDecimal(vals ...Decimal) Decimal {
	for _, v := range vals {
		if v.Valid {
			return v
		}
	}
	return Decimal{}
}

// Images accepts ["a.jpg"], [{"url":"a.jpg"}] or [{"ImageUrl":"a.jpg"}].
type Images []string

func (im *Images) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		*im = nil
		return nil
	}
	out := make(Images, 0, len(raw))
	for _, r := range raw {
		var s string
		if err := json.Unmarshal(r, &s); err == nil {
			if s != "" {
				out = append(out, s)
			}
			continue
		}
		var obj struct {
			URL      string `json:"url"`
			ImageURL string `json:"imageUrl"`
			Path     string `json:"path"`
		}
		if err := json.Unmarshal(r, &obj); err == nil {
			if u := First(obj.URL, obj.ImageURL, obj.Path); u != "" {
				out = append(out, u)
			}
		}
	}
	*im = out
	return nil
}
