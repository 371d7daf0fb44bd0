package admin_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-jewel-storefront/internal/admin"
	"go-jewel-storefront/internal/middleware"
	"go-jewel-storefront/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdminService struct {
	admin.Service
	DeleteFn func(ctx context.Context, actorID, id string) error
	CreateFn func(ctx context.Context, req admin.CreateUserRequest) (admin.User, error)
}

func (f *fakeAdminService) Delete(ctx context.Context, actorID, id string) error {
	return f.DeleteFn(ctx, actorID, id)
}

func (f *fakeAdminService) Create(ctx context.Context, req admin.CreateUserRequest) (admin.User, error) {
	return f.CreateFn(ctx, req)
}

func TestAdminHandler_Delete_PassesActor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := session.NewMemoryStore()
	local := session.NewLocal(store, "b1")
	require.NoError(t, local.SaveSession(context.Background(), "tok", session.User{ID: "u1", Role: "admin"}))

	svc := &fakeAdminService{
		DeleteFn: func(ctx context.Context, actorID, id string) error {
			assert.Equal(t, "u1", actorID)
			assert.Equal(t, "u1", id)
			return admin.ErrSelfDelete
		},
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodDelete, "/admin/users/u1", nil)
	c.Request = req.WithContext(session.WithLocal(req.Context(), local))
	c.Params = gin.Params{{Key: "id", Value: "u1"}}

	require.Equal(t, local, middleware.Local(c))
	admin.NewHandler(svc).Delete(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "You cannot delete your own account")
}

func TestAdminHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("created", func(t *testing.T) {
		svc := &fakeAdminService{
			CreateFn: func(ctx context.Context, req admin.CreateUserRequest) (admin.User, error) {
				return admin.User{ID: "u3", Name: req.Name, Role: req.Role}, nil
			},
		}

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"name":"Counter","email":"c@b.in","password":"longenough","role":"staff"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/admin/users", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		admin.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"u3"`)
	})

	t.Run("bad_json", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/admin/users", strings.NewReader(`{`))
		c.Request.Header.Set("Content-Type", "application/json")

		admin.NewHandler(&fakeAdminService{}).Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
