package middleware

import (
	"github.com/gin-gonic/gin"
)

// OptionalCustomer exposes the customer id when the browser is logged in and
// otherwise lets the request through as a guest.
func OptionalCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		local := Local(c)
		if local == nil {
			c.Next()
			return
		}

		if creds, ok := local.Credentials(c.Request.Context()); ok {
			c.Set(ctxCustID, creds.CustID)
			c.Set(ctxRole, creds.Role)
		}

		c.Next()
	}
}
