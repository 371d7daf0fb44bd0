package middleware

import (
	"fmt"
	"net/http"
	"time"

	"go-jewel-storefront/internal/pkg/apperror"
	"go-jewel-storefront/internal/pkg/response"
	"go-jewel-storefront/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	BrowserCookie = "sf_browser"
	browserTTL    = 365 * 24 * time.Hour

	ctxLocal  = "local"
	ctxCustID = "cust_id"
	ctxRole   = "role"
)

type browserClaims struct {
	BrowserID string `json:"bid"`
	jwt.RegisteredClaims
}

// SignBrowserID issues the cookie value that pins a browser to its storage.
func SignBrowserID(secret, browserID string, now time.Time) (string, error) {
	claims := browserClaims{
		BrowserID: browserID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(browserTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func parseBrowserID(secret, raw string) (string, error) {
	var claims browserClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid || claims.BrowserID == "" {
		return "", fmt.Errorf("invalid browser cookie: %w", err)
	}
	return claims.BrowserID, nil
}

// BrowserSession binds every request to the storage of the browser that sent
// it, minting a new browser id when the cookie is missing or tampered with.
func BrowserSession(store session.Store, secret string, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var browserID string
		if raw, err := c.Cookie(BrowserCookie); err == nil {
			browserID, _ = parseBrowserID(secret, raw)
		}

		if browserID == "" {
			browserID = uuid.NewString()
			signed, err := SignBrowserID(secret, browserID, time.Now())
			if err != nil {
				response.FromError(c, apperror.Wrap(err, apperror.CodeInternalError, "internal server error", http.StatusInternalServerError))
				c.Abort()
				return
			}
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(BrowserCookie, signed, int(browserTTL.Seconds()), "/", "", secure, true)
		}

		local := session.NewLocal(store, browserID)
		c.Set(ctxLocal, local)
		c.Request = c.Request.WithContext(session.WithLocal(c.Request.Context(), local))

		c.Next()
	}
}

// Local returns the browser storage set by BrowserSession.
func Local(c *gin.Context) *session.Local {
	if v, ok := c.Get(ctxLocal); ok {
		if l, ok := v.(*session.Local); ok {
			return l
		}
	}
	l, _ := session.LocalFromContext(c.Request.Context())
	return l
}

func CustID(c *gin.Context) string { return c.GetString(ctxCustID) }

func RequireCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		local := Local(c)
		if local == nil {
			response.FromError(c, apperror.ErrSessionRequired)
			c.Abort()
			return
		}

		creds, ok := local.Credentials(c.Request.Context())
		if !ok {
			response.FromError(c, apperror.ErrSessionRequired)
			c.Abort()
			return
		}

		c.Set(ctxCustID, creds.CustID)
		c.Set(ctxRole, creds.Role)

		c.Next()
	}
}

func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		local := Local(c)
		if local == nil {
			response.FromError(c, apperror.ErrSessionRequired)
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		if local.Token(ctx) == "" {
			response.FromError(c, apperror.ErrSessionRequired)
			c.Abort()
			return
		}

		userRole, _, _ := session.Load(ctx, local, session.RoleKey)

		isAllowed := false
		for _, role := range allowedRoles {
			if userRole == role {
				isAllowed = true
				break
			}
		}

		if !isAllowed {
			response.FromError(c, apperror.ErrForbidden)
			c.Abort()
			return
		}

		c.Set(ctxRole, userRole)
		c.Next()
	}
}
