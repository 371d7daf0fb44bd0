package customer_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-jewel-storefront/internal/customer"
	"go-jewel-storefront/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeCustomerService struct {
	ListFn   func(ctx context.Context, q customer.ListQuery) ([]customer.Customer, response.Pagination, error)
	CreateFn func(ctx context.Context, req customer.Request) (customer.Customer, error)
	UpdateFn func(ctx context.Context, id string, req customer.Request) (customer.Customer, error)
	DeleteFn func(ctx context.Context, id string) error
}

func (f *fakeCustomerService) List(ctx context.Context, q customer.ListQuery) ([]customer.Customer, response.Pagination, error) {
	return f.ListFn(ctx, q)
}

func (f *fakeCustomerService) Create(ctx context.Context, req customer.Request) (customer.Customer, error) {
	return f.CreateFn(ctx, req)
}

func (f *fakeCustomerService) Update(ctx context.Context, id string, req customer.Request) (customer.Customer, error) {
	return f.UpdateFn(ctx, id, req)
}

func (f *fakeCustomerService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func newTestCustomerHandler(svc customer.Service) *customer.Handler {
	return customer.NewHandler(svc)
}

func TestCustomerHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeCustomerService{
		ListFn: func(ctx context.Context, q customer.ListQuery) ([]customer.Customer, response.Pagination, error) {
			assert.Equal(t, "asha", q.Search)
			assert.Equal(t, 2, q.Page)
			return []customer.Customer{{ID: "C1", Name: "Asha"}}, response.NewPaginationMeta(21, 2, 20), nil
		},
	}

	handler := newTestCustomerHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/admin/customers?q=asha&page=2", nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalItems":21`)
}

func TestCustomerHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success_update", func(t *testing.T) {
		svc := &fakeCustomerService{
			UpdateFn: func(ctx context.Context, id string, req customer.Request) (customer.Customer, error) {
				assert.Equal(t, "C1", id)
				assert.Equal(t, "New Name", req.Name)
				return customer.Customer{ID: id, Name: req.Name}, nil
			},
		}

		handler := newTestCustomerHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"name":"New Name","email":"a@b.in","phone":"9876543210"}`
		req := httptest.NewRequest(http.MethodPut, "/admin/customers/C1", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Params = gin.Params{{Key: "id", Value: "C1"}}

		handler.Update(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("error_invalid_payload", func(t *testing.T) {
		handler := newTestCustomerHandler(&fakeCustomerService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPut, "/admin/customers/C1", strings.NewReader(`{"name": "New Name"`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		handler.Update(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("error_not_found", func(t *testing.T) {
		svc := &fakeCustomerService{
			UpdateFn: func(ctx context.Context, id string, req customer.Request) (customer.Customer, error) {
				return customer.Customer{}, customer.ErrCustomerNotFound
			},
		}

		handler := newTestCustomerHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPut, "/admin/customers/zz", strings.NewReader(`{"name":"X"}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Params = gin.Params{{Key: "id", Value: "zz"}}

		handler.Update(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("error_service_failure", func(t *testing.T) {
		svc := &fakeCustomerService{
			UpdateFn: func(ctx context.Context, id string, req customer.Request) (customer.Customer, error) {
				return customer.Customer{}, errors.New("internal server error")
			},
		}

		handler := newTestCustomerHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPut, "/admin/customers/C1", strings.NewReader(`{"name":"X"}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		handler.Update(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestCustomerHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeCustomerService{
		DeleteFn: func(ctx context.Context, id string) error {
			assert.Equal(t, "C9", id)
			return nil
		},
	}

	handler := newTestCustomerHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/admin/customers/C9", nil)
	c.Params = gin.Params{{Key: "id", Value: "C9"}}

	handler.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
