package cart_test

import (
	"context"
	"errors"
	"testing"

	"go-jewel-storefront/internal/cart"
	mock "go-jewel-storefront/internal/mock/cart"
	"go-jewel-storefront/internal/pkg/apperror"
	"go-jewel-storefront/internal/pkg/notify"
	"go-jewel-storefront/internal/session"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func loggedIn(t *testing.T, store session.Store, browser, custID string) *session.Local {
	t.Helper()
	local := session.NewLocal(store, browser)
	require.NoError(t, local.SaveSession(context.Background(), "tok", session.User{CustID: custID, Role: "customer"}))
	return local
}

func cached(t *testing.T, local *session.Local, custID string) ([]cart.Item, bool) {
	t.Helper()
	items, ok, err := session.Load(context.Background(), local, session.CartKey[[]cart.Item](custID))
	require.NoError(t, err)
	return items, ok
}

func seed(t *testing.T, local *session.Local, custID string, items []cart.Item) {
	t.Helper()
	require.NoError(t, session.Save(context.Background(), local, session.CartKey[[]cart.Item](custID), items))
}

func ring(qty int) cart.Item {
	return cart.Item{CartID: "11", ItemNo: "R1", Description: "Gold Ring", Quantity: qty, DisplayPrice: decimal.NewFromInt(1000)}
}

func TestCartService_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := cart.NewService(cart.Deps{Repo: repo})
	ctx := context.Background()

	t.Run("no_session_is_noop", func(t *testing.T) {
		local := session.NewLocal(session.NewMemoryStore(), "guest")

		res, err := svc.Load(ctx, local)
		assert.NoError(t, err)
		assert.Empty(t, res.Items)
		assert.Zero(t, res.Count)
	})

	t.Run("server_rows_win_and_overwrite_cache", func(t *testing.T) {
		store := session.NewMemoryStore()
		local := loggedIn(t, store, "b1", "C1")
		seed(t, local, "C1", []cart.Item{{CartID: "old", ItemNo: "OLD", Quantity: 5}})

		repo.EXPECT().List(ctx, "C1").Return([]cart.Item{ring(2)}, true, nil)

		res, err := svc.Load(ctx, local)
		require.NoError(t, err)
		require.Len(t, res.Items, 1)
		assert.Equal(t, "R1", res.Items[0].ItemNo)
		assert.Equal(t, 2, res.Count)
		assert.Equal(t, "server", res.Source)

		got, ok := cached(t, local, "C1")
		assert.True(t, ok)
		assert.Equal(t, "R1", got[0].ItemNo)
	})

	t.Run("empty_server_uses_cache", func(t *testing.T) {
		store := session.NewMemoryStore()
		local := loggedIn(t, store, "b1", "C2")
		seed(t, local, "C2", []cart.Item{ring(3)})

		repo.EXPECT().List(ctx, "C2").Return([]cart.Item{}, true, nil)

		res, err := svc.Load(ctx, local)
		require.NoError(t, err)
		assert.Equal(t, 3, res.Count)
		assert.Equal(t, "cache", res.Source)
	})

	t.Run("empty_server_no_cache_is_empty", func(t *testing.T) {
		local := loggedIn(t, session.NewMemoryStore(), "b1", "C3")

		repo.EXPECT().List(ctx, "C3").Return(nil, false, nil)

		res, err := svc.Load(ctx, local)
		require.NoError(t, err)
		assert.NotNil(t, res.Items)
		assert.Empty(t, res.Items)
	})

	t.Run("fetch_error_falls_back_to_cache", func(t *testing.T) {
		local := loggedIn(t, session.NewMemoryStore(), "b1", "C4")
		seed(t, local, "C4", []cart.Item{ring(1)})

		repo.EXPECT().List(ctx, "C4").Return(nil, false, errors.New("timeout"))

		res, err := svc.Load(ctx, local)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Count)
	})

	t.Run("expired_session_propagates", func(t *testing.T) {
		local := loggedIn(t, session.NewMemoryStore(), "b1", "C5")

		repo.EXPECT().List(ctx, "C5").Return(nil, false, apperror.ErrSessionExpired)

		_, err := svc.Load(ctx, local)
		assert.ErrorIs(t, err, apperror.ErrSessionExpired)
	})
}

func TestCartService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := cart.NewService(cart.Deps{Repo: repo})
	ctx := context.Background()

	t.Run("requires_session", func(t *testing.T) {
		local := session.NewLocal(session.NewMemoryStore(), "guest")

		res, err := svc.Add(ctx, local, "R1")
		assert.ErrorIs(t, err, apperror.ErrSessionRequired)
		require.Len(t, res.Notices, 1)
		assert.Equal(t, notify.SeverityError, res.Notices[0].Severity)
	})

	t.Run("success_refetches_and_names_product", func(t *testing.T) {
		local := loggedIn(t, session.NewMemoryStore(), "b1", "C1")

		gomock.InOrder(
			repo.EXPECT().Add(ctx, "C1", "R1", 1).Return(nil),
			repo.EXPECT().List(ctx, "C1").Return([]cart.Item{ring(1)}, true, nil),
		)

		res, err := svc.Add(ctx, local, "R1")
		require.NoError(t, err)
		assert.Equal(t, 1, res.Count)
		require.Len(t, res.Notices, 1)
		assert.Equal(t, notify.SeveritySuccess, res.Notices[0].Severity)
		assert.Equal(t, notify.CategoryAdded, res.Notices[0].Category)
		assert.Equal(t, "Gold Ring added to cart", res.Notices[0].Message)

		got, _ := cached(t, local, "C1")
		assert.Len(t, got, 1)
	})

	t.Run("refetch_failure_hides_success_and_keeps_state", func(t *testing.T) {
		local := loggedIn(t, session.NewMemoryStore(), "b1", "C2")
		before := []cart.Item{ring(2)}
		seed(t, local, "C2", before)

		repo.EXPECT().Add(ctx, "C2", "N9", 1).Return(nil)
		repo.EXPECT().List(ctx, "C2").Return(nil, false, errors.New("boom"))

		res, err := svc.Add(ctx, local, "N9")
		require.Error(t, err)
		assert.Empty(t, res.Notices.Of(notify.CategoryAdded))
		assert.True(t, res.Notices.HasFailure())
		assert.Equal(t, 2, res.Count)

		got, _ := cached(t, local, "C2")
		assert.Equal(t, "R1", got[0].ItemNo)
		assert.Len(t, got, 1)
	})

	t.Run("server_message_surfaces", func(t *testing.T) {
		local := loggedIn(t, session.NewMemoryStore(), "b1", "C3")
		upstream := apperror.ErrUpstream.WithMessage("Out of stock")

		repo.EXPECT().Add(ctx, "C3", "R1", 1).Return(upstream)

		res, err := svc.Add(ctx, local, "R1")
		require.Error(t, err)
		assert.Equal(t, "Out of stock", res.Notices[0].Message)
	})
}

func TestCartService_UpdateQuantity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := cart.NewService(cart.Deps{Repo: repo})
	ctx := context.Background()

	t.Run("non_positive_is_noop", func(t *testing.T) {
		local := loggedIn(t, session.NewMemoryStore(), "b1", "C1")
		seed(t, local, "C1", []cart.Item{ring(2)})

		for _, q := range []int{0, -3} {
			res, err := svc.UpdateQuantity(ctx, local, "11", q)
			require.NoError(t, err)
			assert.Equal(t, 2, res.Count)
			assert.Empty(t, res.Notices)
		}
	})

	t.Run("patches_from_server_row", func(t *testing.T) {
		local := loggedIn(t, session.NewMemoryStore(), "b1", "C2")
		seed(t, local, "C2", []cart.Item{ring(1)})

		server := ring(4)
		repo.EXPECT().UpdateQuantity(ctx, "11", 3).Return(&server, nil)

		res, err := svc.UpdateQuantity(ctx, local, "11", 3)
		require.NoError(t, err)
		assert.Equal(t, 4, res.Count)
	})

	t.Run("patches_from_request_without_row", func(t *testing.T) {
		local := loggedIn(t, session.NewMemoryStore(), "b1", "C3")
		seed(t, local, "C3", []cart.Item{ring(1)})

		repo.EXPECT().UpdateQuantity(ctx, "11", 3).Return(nil, nil)

		res, err := svc.UpdateQuantity(ctx, local, "11", 3)
		require.NoError(t, err)
		assert.Equal(t, 3, res.Count)

		got, _ := cached(t, local, "C3")
		assert.Equal(t, 3, got[0].Quantity)
	})

	t.Run("unknown_cart_id_never_calls_backend", func(t *testing.T) {
		local := loggedIn(t, session.NewMemoryStore(), "b1", "C5")
		seed(t, local, "C5", []cart.Item{ring(1)})

		res, err := svc.UpdateQuantity(ctx, local, "99", 2)
		assert.ErrorIs(t, err, cart.ErrCartItemNotFound)
		assert.Equal(t, 1, res.Count)
		assert.True(t, res.Notices.HasFailure())
	})

	t.Run("failure_leaves_state", func(t *testing.T) {
		local := loggedIn(t, session.NewMemoryStore(), "b1", "C4")
		seed(t, local, "C4", []cart.Item{ring(1)})

		repo.EXPECT().UpdateQuantity(ctx, "11", 5).Return(nil, errors.New("down"))

		res, err := svc.UpdateQuantity(ctx, local, "11", 5)
		require.Error(t, err)
		assert.Equal(t, 1, res.Count)
	})
}

func TestCartService_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := cart.NewService(cart.Deps{Repo: repo})
	ctx := context.Background()

	t.Run("reports_removed_item_as_info", func(t *testing.T) {
		local := loggedIn(t, session.NewMemoryStore(), "b1", "C1")
		chain := cart.Item{CartID: "12", ItemNo: "N1", Description: "Silver Chain", Quantity: 1}
		seed(t, local, "C1", []cart.Item{ring(1), chain})

		repo.EXPECT().Delete(ctx, "12").Return(nil)

		res, err := svc.Remove(ctx, local, "12")
		require.NoError(t, err)
		require.Len(t, res.Items, 1)
		assert.Equal(t, "R1", res.Items[0].ItemNo)

		require.Len(t, res.Notices, 1)
		assert.Equal(t, notify.SeverityInfo, res.Notices[0].Severity)
		assert.Equal(t, notify.CategoryRemoved, res.Notices[0].Category)
		assert.Contains(t, res.Notices[0].Message, "Silver Chain")
		assert.False(t, res.Notices.HasFailure())
	})

	t.Run("unknown_cart_id_never_calls_backend", func(t *testing.T) {
		local := loggedIn(t, session.NewMemoryStore(), "b1", "C3")
		seed(t, local, "C3", []cart.Item{ring(1)})

		res, err := svc.Remove(ctx, local, "99")
		assert.ErrorIs(t, err, cart.ErrCartItemNotFound)
		assert.Len(t, res.Items, 1)
	})

	t.Run("failure_keeps_item", func(t *testing.T) {
		local := loggedIn(t, session.NewMemoryStore(), "b1", "C2")
		seed(t, local, "C2", []cart.Item{ring(1)})

		repo.EXPECT().Delete(ctx, "11").Return(errors.New("nope"))

		res, err := svc.Remove(ctx, local, "11")
		require.Error(t, err)
		assert.Len(t, res.Items, 1)
	})
}

func TestCartService_CompleteOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := cart.NewService(cart.Deps{Repo: mock.NewMockRepository(ctrl)})
	ctx := context.Background()

	local := loggedIn(t, session.NewMemoryStore(), "b1", "C1")
	seed(t, local, "C1", []cart.Item{ring(2)})

	res, err := svc.CompleteOrder(ctx, local)
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Equal(t, notify.SeveritySuccess, res.Notices[0].Severity)

	_, ok := cached(t, local, "C1")
	assert.False(t, ok)
}
