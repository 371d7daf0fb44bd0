package wishlist_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-jewel-storefront/internal/middleware"
	"go-jewel-storefront/internal/pkg/notify"
	"go-jewel-storefront/internal/session"
	"go-jewel-storefront/internal/wishlist"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWishlistService struct {
	LoadFn   func(ctx context.Context, local *session.Local) (wishlist.Result, error)
	ListFn   func(ctx context.Context, local *session.Local) (wishlist.Result, error)
	ToggleFn func(ctx context.Context, local *session.Local, req wishlist.ToggleRequest) (wishlist.Result, error)
}

func (f *fakeWishlistService) Load(ctx context.Context, local *session.Local) (wishlist.Result, error) {
	return f.LoadFn(ctx, local)
}
func (f *fakeWishlistService) List(ctx context.Context, local *session.Local) (wishlist.Result, error) {
	return f.ListFn(ctx, local)
}
func (f *fakeWishlistService) Toggle(ctx context.Context, local *session.Local, req wishlist.ToggleRequest) (wishlist.Result, error) {
	return f.ToggleFn(ctx, local, req)
}

func setupTestRouter(svc wishlist.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.BrowserSession(session.NewMemoryStore(), "test-secret", false))
	wishlist.RegisterRoutes(r.Group("/api/v1"), wishlist.NewHandler(svc))
	return r
}

func TestWishlistHandler_Toggle(t *testing.T) {
	t.Run("removal_is_informational", func(t *testing.T) {
		svc := &fakeWishlistService{
			ToggleFn: func(ctx context.Context, local *session.Local, req wishlist.ToggleRequest) (wishlist.Result, error) {
				assert.Equal(t, "L9", req.LotNo)
				in := false
				res := wishlist.Result{Items: []wishlist.Item{}, InWishlist: &in}
				res.Notices.Info(notify.CategoryRemoved, "Pearl Drop removed from wishlist")
				return res, nil
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/wishlist/toggle", strings.NewReader(`{"itemNo":"E1","lotNo":"L9"}`))
		req.Header.Set("Content-Type", "application/json")
		setupTestRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var env struct {
			Success       bool            `json:"success"`
			Data          wishlist.Result `json:"data"`
			Notifications notify.List     `json:"notifications"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Success)
		require.NotNil(t, env.Data.InWishlist)
		assert.False(t, *env.Data.InWishlist)
		require.Len(t, env.Notifications, 1)
		assert.Equal(t, notify.SeverityInfo, env.Notifications[0].Severity)
	})

	t.Run("bad_body", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/wishlist/toggle", strings.NewReader(`{`))
		req.Header.Set("Content-Type", "application/json")
		setupTestRouter(&fakeWishlistService{}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid_item_is_bad_request", func(t *testing.T) {
		svc := &fakeWishlistService{
			ToggleFn: func(ctx context.Context, local *session.Local, req wishlist.ToggleRequest) (wishlist.Result, error) {
				return wishlist.Result{}, wishlist.ErrInvalidItem
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/wishlist/toggle", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		setupTestRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
