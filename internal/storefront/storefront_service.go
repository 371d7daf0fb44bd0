// Package storefront restores a browser's cart and wishlist in one call when
// the storefront boots.
package storefront

import (
	"context"
	"errors"

	"go-jewel-storefront/internal/cart"
	"go-jewel-storefront/internal/pkg/apperror"
	"go-jewel-storefront/internal/pkg/notify"
	"go-jewel-storefront/internal/session"
	"go-jewel-storefront/internal/wishlist"

	"go.uber.org/zap"
)

type State struct {
	Cart     cart.Result     `json:"cart"`
	Wishlist wishlist.Result `json:"wishlist"`

	Notices notify.List `json:"-"`
}

type Service interface {
	Load(ctx context.Context, local *session.Local) (State, error)
}

type service struct {
	cart     cart.Service
	wishlist wishlist.Service
	logger   *zap.Logger
}

func NewService(c cart.Service, w wishlist.Service, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{cart: c, wishlist: w, logger: logger}
}

// Load runs the cart load and then the wishlist load. An expired session
// stops the sequence; any other failure leaves that resource empty.
func (s *service) Load(ctx context.Context, local *session.Local) (State, error) {
	var st State

	c, err := s.cart.Load(ctx, local)
	st.Cart = c
	st.Notices = append(st.Notices, c.Notices...)
	if errors.Is(err, apperror.ErrSessionExpired) {
		return st, err
	}
	if err != nil {
		s.logger.Warn("load cart", zap.Error(err))
	}

	w, err := s.wishlist.Load(ctx, local)
	st.Wishlist = w
	st.Notices = append(st.Notices, w.Notices...)
	if errors.Is(err, apperror.ErrSessionExpired) {
		return st, err
	}
	if err != nil {
		s.logger.Warn("load wishlist", zap.Error(err))
	}

	if st.Cart.Items == nil {
		st.Cart.Items = []cart.Item{}
	}
	if st.Wishlist.Items == nil {
		st.Wishlist.Items = []wishlist.Item{}
	}
	return st, nil
}
