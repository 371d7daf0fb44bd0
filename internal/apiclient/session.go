package apiclient

import (
	"context"

	"go-jewel-storefront/internal/session"

	"go.uber.org/zap"
)

// SessionTokens reads the bearer token from the browser's Local carried by ctx.
func SessionTokens(ctx context.Context) string {
	local, ok := session.LocalFromContext(ctx)
	if !ok {
		return ""
	}
	return local.Token(ctx)
}

// ClearSessionOnUnauthorized drops the browser's persisted login after a 401.
func ClearSessionOnUnauthorized(logger *zap.Logger) UnauthorizedHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(ctx context.Context) {
		local, ok := session.LocalFromContext(ctx)
		if !ok {
			return
		}
		if err := local.ClearSession(ctx); err != nil {
			logger.Warn("clear session after 401", zap.String("browser", local.BrowserID()), zap.Error(err))
		}
	}
}
