package wishlist_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-jewel-storefront/internal/apiclient"
	"go-jewel-storefront/internal/wishlist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_List(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wishlist/C1", r.URL.Path)
		_, _ = io.WriteString(w, `{"success":true,"data":[{"WishlistId":5,"ItemNo":"R1","LotNo":"L1","DisplayPrice":"900"}]}`)
	}))
	defer srv.Close()

	repo := wishlist.NewRepository(apiclient.New(apiclient.Options{BaseURL: srv.URL}))
	items, ok, err := repo.List(context.Background(), "C1")
	require.NoError(t, err)
	assert.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, "5", items[0].WishlistID)
	assert.Equal(t, "lot:L1", items[0].Key())
	assert.Equal(t, "900", items[0].EffectivePrice.String())
}

func TestRepository_Delete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/wishlist/5", r.URL.Path)
		_, _ = io.WriteString(w, `{"success":true}`)
	}))
	defer srv.Close()

	repo := wishlist.NewRepository(apiclient.New(apiclient.Options{BaseURL: srv.URL}))
	assert.NoError(t, repo.Delete(context.Background(), "5"))
}
