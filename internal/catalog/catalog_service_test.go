package catalog_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go-jewel-storefront/internal/catalog"
	mock "go-jewel-storefront/internal/mock/catalog"
	"go-jewel-storefront/internal/session"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func product(itemNo, category string, display, offer int64) catalog.Product {
	return catalog.Product{
		ItemNo:         itemNo,
		Category:       category,
		DisplayPrice:   decimal.NewFromInt(display),
		OfferPrice:     decimal.NewFromInt(offer),
		EffectivePrice: decimal.NewFromInt(display),
		HasDiscount:    offer > 0 && offer < display,
		Images:         []string{itemNo + ".jpg"},
	}
}

func TestCatalogService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	many := make([]catalog.Product, 30)
	for i := range many {
		many[i] = product(fmt.Sprintf("R%d", i), "Rings", 1000, 0)
	}

	t.Run("pages_locally_and_caches_by_filter", func(t *testing.T) {
		repo := mock.NewMockRepository(ctrl)
		svc := catalog.NewService(repo, session.NewMemoryStore(), nil)

		repo.EXPECT().
			List(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, q catalog.ListQuery) ([]catalog.Product, error) {
				assert.Equal(t, "Rings", q.Category)
				return many, nil
			}).
			Times(1)

		first, meta, err := svc.List(ctx, catalog.ListQuery{Category: " Rings "})
		require.NoError(t, err)
		assert.Len(t, first, 24)
		assert.Equal(t, int64(30), meta.TotalItems)
		assert.True(t, meta.HasNextPage)

		second, meta, err := svc.List(ctx, catalog.ListQuery{Category: "Rings", Page: 2})
		require.NoError(t, err)
		assert.Len(t, second, 6)
		assert.Equal(t, "R24", second[0].ItemNo)
		assert.False(t, meta.HasNextPage)
	})

	t.Run("page_past_end_is_empty", func(t *testing.T) {
		repo := mock.NewMockRepository(ctrl)
		svc := catalog.NewService(repo, nil, nil)

		repo.EXPECT().List(ctx, gomock.Any()).Return(many[:3], nil)

		items, _, err := svc.List(ctx, catalog.ListQuery{Page: 5})
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("backend_error", func(t *testing.T) {
		repo := mock.NewMockRepository(ctrl)
		svc := catalog.NewService(repo, nil, nil)

		repo.EXPECT().List(ctx, gomock.Any()).Return(nil, errors.New("down"))

		_, _, err := svc.List(ctx, catalog.ListQuery{})
		assert.Error(t, err)
	})
}

func TestCatalogService_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := catalog.NewService(repo, nil, nil)
	ctx := context.Background()

	t.Run("blank_term_never_hits_backend", func(t *testing.T) {
		items, meta, err := svc.Search(ctx, "   ", catalog.ListQuery{})
		require.NoError(t, err)
		assert.Empty(t, items)
		assert.Zero(t, meta.TotalItems)
	})

	t.Run("term_is_passed_as_q", func(t *testing.T) {
		repo.EXPECT().
			List(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, q catalog.ListQuery) ([]catalog.Product, error) {
				assert.Equal(t, "chain", q.Q)
				assert.Equal(t, "Silver", q.Metal)
				return []catalog.Product{product("N1", "Chains", 500, 450)}, nil
			})

		items, _, err := svc.Search(ctx, " chain ", catalog.ListQuery{Metal: "Silver"})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "N1", items[0].ItemNo)
	})
}

func TestCatalogService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := catalog.NewService(repo, nil, nil)
	ctx := context.Background()

	t.Run("empty_item_no", func(t *testing.T) {
		_, err := svc.Get(ctx, " ")
		assert.ErrorIs(t, err, catalog.ErrItemNoRequired)
	})

	t.Run("found", func(t *testing.T) {
		repo.EXPECT().ByItemNo(ctx, "R1").Return(product("R1", "Rings", 1000, 900), nil)

		p, err := svc.Get(ctx, "R1")
		require.NoError(t, err)
		assert.True(t, p.HasDiscount)
	})
}

func TestCatalogService_Home(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := catalog.NewService(repo, nil, nil)
	ctx := context.Background()

	noImage := product("B1", "Bangles", 700, 0)
	noImage.Images = []string{}

	repo.EXPECT().List(ctx, gomock.Any()).Return([]catalog.Product{
		product("R1", "Rings", 1000, 900),
		noImage,
		product("N1", "Chains", 500, 0),
	}, nil)

	home, err := svc.Home(ctx)
	require.NoError(t, err)
	assert.Len(t, home.Featured, 2)
	require.Len(t, home.OnOffer, 1)
	assert.Equal(t, "R1", home.OnOffer[0].ItemNo)
	assert.Equal(t, []string{"Bangles", "Chains", "Rings"}, home.Categories)
}
