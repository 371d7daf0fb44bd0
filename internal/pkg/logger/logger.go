package logger

import (
	"go.uber.org/zap"
)

// New returns a development logger outside production so local runs are readable.
func New(env string) *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)
	if env == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return zap.NewNop()
	}
	zap.ReplaceGlobals(l)
	return l
}
