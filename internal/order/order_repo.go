package order

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"go-jewel-storefront/internal/apiclient"
	"go-jewel-storefront/internal/pkg/flex"
)

//go:generate mockgen -source=order_repo.go -destination=../mock/order/order_repo_mock.go -package=mock
type Repository interface {
	ListForCustomer(ctx context.Context, custID string) ([]Order, error)
	Get(ctx context.Context, orderNo string) (Order, error)
	ListAll(ctx context.Context) ([]Order, error)

	// Place creates the order on the backend and returns its number.
	Place(ctx context.Context, req PlaceRequest) (string, error)
}

type repository struct {
	api apiclient.API
}

func NewRepository(api apiclient.API) Repository {
	return &repository{api: api}
}

func normalizeAll(raw []rawOrder) []Order {
	out := make([]Order, 0, len(raw))
	for _, r := range raw {
		out = append(out, r.normalize())
	}
	return out
}

func (r *repository) ListForCustomer(ctx context.Context, custID string) ([]Order, error) {
	var env apiclient.Envelope[[]rawOrder]
	if err := r.api.Get(ctx, "/orders/customer/"+url.PathEscape(custID), &env); err != nil {
		return nil, err
	}
	if err := env.Err(); err != nil {
		return nil, err
	}
	return normalizeAll(env.Data), nil
}

func (r *repository) Get(ctx context.Context, orderNo string) (Order, error) {
	var env apiclient.Envelope[json.RawMessage]
	if err := r.api.Get(ctx, "/orders/"+url.PathEscape(orderNo), &env); err != nil {
		if apiclient.StatusOf(err) == http.StatusNotFound {
			return Order{}, ErrOrderNotFound
		}
		return Order{}, err
	}
	if err := env.Err(); err != nil {
		return Order{}, err
	}

	o, err := decodeDetail(env.Data)
	if err != nil {
		return Order{}, err
	}
	if o.OrderNo == "" {
		o.OrderNo = orderNo
	}
	if o.Items == nil {
		o.Items = []Item{}
	}
	return o, nil
}

// decodeDetail accepts {..., "items": [...]} or a bare array of items.
func decodeDetail(raw json.RawMessage) (Order, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		var ro rawOrder
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &ro); err != nil {
				return Order{}, err
			}
		}
		return ro.normalize(), nil
	}

	var items []rawItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return Order{}, err
	}
	var o Order
	for _, it := range items {
		o.Items = append(o.Items, it.normalize())
	}
	return o, nil
}

func (r *repository) ListAll(ctx context.Context) ([]Order, error) {
	var env apiclient.Envelope[[]rawOrder]
	if err := r.api.Get(ctx, "/orders/admin/all", &env); err != nil {
		return nil, err
	}
	if err := env.Err(); err != nil {
		return nil, err
	}
	return normalizeAll(env.Data), nil
}

func (r *repository) Place(ctx context.Context, req PlaceRequest) (string, error) {
	var env struct {
		apiclient.Envelope[rawOrder]
		OrderNo flex.String `json:"orderNo"`
	}
	if err := r.api.Post(ctx, "/orders/place", req, &env); err != nil {
		return "", err
	}
	if err := env.Err(); err != nil {
		return "", err
	}
	orderNo := flex.First(string(env.OrderNo), env.Data.normalize().OrderNo)
	if orderNo == "" {
		return "", ErrOrderFailed
	}
	return orderNo, nil
}
