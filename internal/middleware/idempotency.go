package middleware

import (
	"net/http"
	"time"

	"go-jewel-storefront/internal/pkg/apperror"
	"go-jewel-storefront/internal/pkg/response"
	"go-jewel-storefront/internal/session"

	"github.com/gin-gonic/gin"
)

const IdempotencyHeader = "Idempotency-Key"

var ErrDuplicateRequest = apperror.New(
	apperror.CodeConflict,
	"This request is already being processed",
	http.StatusConflict,
)

// Idempotency rejects a replay of the same Idempotency-Key from the same
// browser within ttl. A failed request releases its key so the client may
// retry. Requests without the header pass through.
func Idempotency(store session.Store, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyHeader)
		if key == "" {
			c.Next()
			return
		}

		scope := "anon"
		if local := Local(c); local != nil {
			scope = local.BrowserID()
		}

		lockKey := "idem:" + scope + ":" + c.FullPath() + ":" + key
		ok, err := store.SetNX(c.Request.Context(), lockKey, time.Now().Unix(), ttl)
		if err != nil {
			// fail open
			c.Next()
			return
		}
		if !ok {
			response.FromError(c, ErrDuplicateRequest)
			c.Abort()
			return
		}

		c.Next()

		if c.Writer.Status() >= http.StatusBadRequest {
			_ = store.Delete(c.Request.Context(), lockKey)
		}
	}
}
