package cart

import (
	"context"
	"errors"

	"go-jewel-storefront/internal/pkg/apperror"
	"go-jewel-storefront/internal/pkg/notify"
	"go-jewel-storefront/internal/session"

	"go.uber.org/zap"
)

//go:generate mockgen -source=cart_service.go -destination=../mock/cart/cart_service_mock.go -package=mock
type Service interface {
	// Load refreshes the cart from the server, falling back to this
	// browser's cached copy when the server has nothing.
	Load(ctx context.Context, local *session.Local) (Result, error)
	Current(ctx context.Context, local *session.Local) (Result, error)

	Add(ctx context.Context, local *session.Local, itemNo string) (Result, error)
	UpdateQuantity(ctx context.Context, local *session.Local, cartID string, qty int) (Result, error)
	Remove(ctx context.Context, local *session.Local, cartID string) (Result, error)

	// CompleteOrder forgets the cart after checkout. The backend already
	// cleared its side.
	CompleteOrder(ctx context.Context, local *session.Local) (Result, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

type Deps struct {
	Repo   Repository
	Logger *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Repo == nil {
		panic("cart repository cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &service{
		repo:   deps.Repo,
		logger: deps.Logger,
	}
}

// ========================
// helpers
// ========================

func cacheKey(custID string) session.Key[[]Item] {
	return session.CartKey[[]Item](custID)
}

func (s *service) cached(ctx context.Context, local *session.Local, custID string) []Item {
	items, _, err := session.Load(ctx, local, cacheKey(custID))
	if err != nil {
		s.logger.Warn("read cart cache", zap.String("cust_id", custID), zap.Error(err))
		return nil
	}
	return items
}

func (s *service) save(ctx context.Context, local *session.Local, custID string, items []Item) {
	if items == nil {
		items = []Item{}
	}
	if err := session.Save(ctx, local, cacheKey(custID), items); err != nil {
		s.logger.Warn("write cart cache", zap.String("cust_id", custID), zap.Error(err))
		return
	}
	if err := local.Track(ctx, custID); err != nil {
		s.logger.Warn("track browser", zap.String("cust_id", custID), zap.Error(err))
	}
}

func failWith(res Result, err error) (Result, error) {
	res.Notices.Error(notify.CategoryFailure, apperror.ToHTTP(err).Message)
	return res, err
}

func requireSession(ctx context.Context, local *session.Local) (session.Credentials, error) {
	if local == nil {
		return session.Credentials{}, apperror.ErrSessionRequired
	}
	creds, ok := local.Credentials(ctx)
	if !ok {
		return session.Credentials{}, apperror.ErrSessionRequired
	}
	return creds, nil
}

func describe(items []Item, match func(Item) bool, fallback string) string {
	for _, it := range items {
		if match(it) && it.Description != "" {
			return it.Description
		}
	}
	return fallback
}

func holds(items []Item, cartID string) bool {
	for _, it := range items {
		if it.CartID == cartID {
			return true
		}
	}
	return false
}

func (s *service) Load(ctx context.Context, local *session.Local) (Result, error) {
	creds, err := requireSession(ctx, local)
	if err != nil {
		return newResult(nil), nil
	}

	server, ok, err := s.repo.List(ctx, creds.CustID)
	if errors.Is(err, apperror.ErrSessionExpired) {
		return failWith(newResult(nil), err)
	}
	if err != nil {
		s.logger.Warn("fetch cart, using cache", zap.String("cust_id", creds.CustID), zap.Error(err))
		ok = false
	}
	if !ok {
		server = nil
	}

	items, fromServer := session.PreferServer(server, s.cached(ctx, local, creds.CustID))
	res := newResult(items)
	res.Source = "cache"
	if fromServer {
		s.save(ctx, local, creds.CustID, items)
		res.Source = "server"
	}
	return res, nil
}

func (s *service) Current(ctx context.Context, local *session.Local) (Result, error) {
	creds, err := requireSession(ctx, local)
	if err != nil {
		return newResult(nil), nil
	}
	return newResult(s.cached(ctx, local, creds.CustID)), nil
}

func (s *service) Add(ctx context.Context, local *session.Local, itemNo string) (Result, error) {
	creds, err := requireSession(ctx, local)
	if err != nil {
		return failWith(newResult(nil), err)
	}

	before := newResult(s.cached(ctx, local, creds.CustID))
	if itemNo == "" {
		return failWith(before, ErrItemNoRequired)
	}

	if err := s.repo.Add(ctx, creds.CustID, itemNo, 1); err != nil {
		s.logger.Warn("add to cart", zap.String("item_no", itemNo), zap.Error(err))
		return failWith(before, err)
	}

	// the add is only reported once the fresh cart is in hand
	items, ok, err := s.repo.List(ctx, creds.CustID)
	if err == nil && !ok {
		err = ErrCartFailed
	}
	if err != nil {
		s.logger.Warn("refetch cart after add", zap.String("item_no", itemNo), zap.Error(err))
		return failWith(before, err)
	}

	s.save(ctx, local, creds.CustID, items)

	res := newResult(items)
	desc := describe(items, func(it Item) bool { return it.ItemNo == itemNo }, itemNo)
	res.Notices.Success(notify.CategoryAdded, desc+" added to cart")
	return res, nil
}

func (s *service) UpdateQuantity(ctx context.Context, local *session.Local, cartID string, qty int) (Result, error) {
	if qty <= 0 {
		return s.Current(ctx, local)
	}

	creds, err := requireSession(ctx, local)
	if err != nil {
		return failWith(newResult(nil), err)
	}

	items := s.cached(ctx, local, creds.CustID)
	if !holds(items, cartID) {
		return failWith(newResult(items), ErrCartItemNotFound)
	}

	row, err := s.repo.UpdateQuantity(ctx, cartID, qty)
	if err != nil {
		s.logger.Warn("update cart quantity", zap.String("cart_id", cartID), zap.Error(err))
		return failWith(newResult(items), err)
	}

	patched := make([]Item, len(items))
	for i, it := range items {
		if it.CartID == cartID {
			it = it.patchedFrom(row, qty)
		}
		patched[i] = it
	}

	s.save(ctx, local, creds.CustID, patched)
	return newResult(patched), nil
}

// patchedFrom applies the server's row when it sent one, else the requested quantity.
func (i Item) patchedFrom(row *Item, qty int) Item {
	if row == nil {
		i.Quantity = qty
		return i
	}
	i.Quantity = row.Quantity
	if i.Quantity <= 0 {
		i.Quantity = qty
	}
	if row.Description != "" {
		i.Description = row.Description
	}
	if row.DisplayPrice.IsPositive() {
		i.DisplayPrice = row.DisplayPrice
	}
	if row.OfferPrice.IsPositive() {
		i.OfferPrice = row.OfferPrice
	}
	if row.OAmt.IsPositive() {
		i.OAmt = row.OAmt
	}
	if len(row.Images) > 0 {
		i.Images = row.Images
	}
	return i.priced()
}

func (s *service) Remove(ctx context.Context, local *session.Local, cartID string) (Result, error) {
	creds, err := requireSession(ctx, local)
	if err != nil {
		return failWith(newResult(nil), err)
	}

	items := s.cached(ctx, local, creds.CustID)
	if !holds(items, cartID) {
		return failWith(newResult(items), ErrCartItemNotFound)
	}
	desc := describe(items, func(it Item) bool { return it.CartID == cartID }, "Item")

	if err := s.repo.Delete(ctx, cartID); err != nil {
		s.logger.Warn("remove from cart", zap.String("cart_id", cartID), zap.Error(err))
		return failWith(newResult(items), err)
	}

	kept := make([]Item, 0, len(items))
	for _, it := range items {
		if it.CartID != cartID {
			kept = append(kept, it)
		}
	}
	s.save(ctx, local, creds.CustID, kept)

	res := newResult(kept)
	res.Notices.Info(notify.CategoryRemoved, desc+" removed from cart")
	return res, nil
}

func (s *service) CompleteOrder(ctx context.Context, local *session.Local) (Result, error) {
	res := newResult(nil)

	creds, err := requireSession(ctx, local)
	if err != nil {
		return res, nil
	}

	if err := session.Remove(ctx, local, cacheKey(creds.CustID)); err != nil {
		s.logger.Warn("clear cart cache", zap.String("cust_id", creds.CustID), zap.Error(err))
	}

	res.Notices.Success(notify.CategoryOrder, "Order placed successfully")
	return res, nil
}
