package wishlist

import (
	"context"
	"errors"

	"go-jewel-storefront/internal/pkg/apperror"
	"go-jewel-storefront/internal/pkg/notify"
	"go-jewel-storefront/internal/session"

	"go.uber.org/zap"
)

//go:generate mockgen -source=wishlist_service.go -destination=../mock/wishlist/wishlist_service_mock.go -package=mock
type Service interface {
	Load(ctx context.Context, local *session.Local) (Result, error)
	List(ctx context.Context, local *session.Local) (Result, error)
	// Toggle removes the item when it is already wishlisted and adds it otherwise.
	Toggle(ctx context.Context, local *session.Local, req ToggleRequest) (Result, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(r Repository, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		repo:   r,
		logger: logger,
	}
}

func cacheKey(custID string) session.Key[[]Item] {
	return session.WishlistKey[[]Item](custID)
}

func (s *service) cached(ctx context.Context, local *session.Local, custID string) []Item {
	items, _, err := session.Load(ctx, local, cacheKey(custID))
	if err != nil {
		s.logger.Warn("read wishlist cache", zap.String("cust_id", custID), zap.Error(err))
	}
	return items
}

func (s *service) save(ctx context.Context, local *session.Local, custID string, items []Item) {
	if items == nil {
		items = []Item{}
	}
	if err := session.Save(ctx, local, cacheKey(custID), items); err != nil {
		s.logger.Warn("write wishlist cache", zap.String("cust_id", custID), zap.Error(err))
	}
}

func credentials(ctx context.Context, local *session.Local) (session.Credentials, bool) {
	if local == nil {
		return session.Credentials{}, false
	}
	return local.Credentials(ctx)
}

func (s *service) Load(ctx context.Context, local *session.Local) (Result, error) {
	creds, ok := credentials(ctx, local)
	if !ok {
		return newResult(nil), nil
	}

	server, ok, err := s.repo.List(ctx, creds.CustID)
	if errors.Is(err, apperror.ErrSessionExpired) {
		return newResult(nil), err
	}
	if err != nil {
		s.logger.Warn("fetch wishlist, using cache", zap.String("cust_id", creds.CustID), zap.Error(err))
	}
	if err != nil || !ok {
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

func (s *service) List(ctx context.Context, local *session.Local) (Result, error) {
	creds, ok := credentials(ctx, local)
	if !ok {
		return newResult(nil), nil
	}
	return newResult(s.cached(ctx, local, creds.CustID)), nil
}

func (s *service) Toggle(ctx context.Context, local *session.Local, req ToggleRequest) (Result, error) {
	creds, ok := credentials(ctx, local)
	if !ok {
		res := newResult(nil)
		res.Notices.Error(notify.CategoryAuth, apperror.ErrSessionRequired.Message)
		return res, apperror.ErrSessionRequired
	}
	if req.ItemNo == "" && req.LotNo == "" {
		res := newResult(s.cached(ctx, local, creds.CustID))
		res.Notices.Error(notify.CategoryValidation, ErrInvalidItem.Message)
		return res, ErrInvalidItem
	}

	items := s.cached(ctx, local, creds.CustID)
	key := identity(req.LotNo, req.ItemNo)

	for _, it := range items {
		if it.Key() == key {
			return s.remove(ctx, local, creds.CustID, items, it)
		}
	}
	return s.add(ctx, local, creds.CustID, items, req)
}

func (s *service) remove(ctx context.Context, local *session.Local, custID string, items []Item, target Item) (Result, error) {
	if err := s.repo.Delete(ctx, target.WishlistID); err != nil {
		s.logger.Warn("remove from wishlist", zap.String("wishlist_id", target.WishlistID), zap.Error(err))
		res := newResult(items)
		res.Notices.Error(notify.CategoryFailure, apperror.ToHTTP(err).Message)
		return res, err
	}

	kept := make([]Item, 0, len(items))
	for _, it := range items {
		if it.WishlistID != target.WishlistID {
			kept = append(kept, it)
		}
	}
	s.save(ctx, local, custID, kept)

	name := target.Description
	if name == "" {
		name = "Item"
	}
	res := newResult(kept)
	res.InWishlist = boolPtr(false)
	res.Notices.Info(notify.CategoryRemoved, name+" removed from wishlist")
	return res, nil
}

func (s *service) add(ctx context.Context, local *session.Local, custID string, items []Item, req ToggleRequest) (Result, error) {
	fail := func(err error) (Result, error) {
		res := newResult(items)
		res.Notices.Error(notify.CategoryFailure, apperror.ToHTTP(err).Message)
		return res, err
	}

	if err := s.repo.Add(ctx, custID, req.ItemNo, req.LotNo); err != nil {
		s.logger.Warn("add to wishlist", zap.String("item_no", req.ItemNo), zap.Error(err))
		return fail(err)
	}

	fresh, ok, err := s.repo.List(ctx, custID)
	if err == nil && !ok {
		err = ErrWishlistFailed
	}
	if err != nil {
		s.logger.Warn("refetch wishlist after add", zap.String("item_no", req.ItemNo), zap.Error(err))
		return fail(err)
	}
	s.save(ctx, local, custID, fresh)

	name := req.Description
	key := identity(req.LotNo, req.ItemNo)
	for _, it := range fresh {
		if it.Key() == key && it.Description != "" {
			name = it.Description
		}
	}
	if name == "" {
		name = "Item"
	}

	res := newResult(fresh)
	res.InWishlist = boolPtr(true)
	res.Notices.Success(notify.CategoryAdded, name+" added to wishlist")
	return res, nil
}

func boolPtr(b bool) *bool { return &b }
