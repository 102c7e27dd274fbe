package api

import (
	"fmt"

	"github.com/alvinbaena/pwd-strength/internal/strength"
	"github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type Options struct {
	Mode           strength.Mode
	Settings       strength.Settings
	CacheSize      int64
	AllowedOrigins []string
}

// NewRouter builds the evaluation service with its middleware chain.
func NewRouter(opts Options) (*gin.Engine, error) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(logger.SetLogger(logger.WithLogger(func(c *gin.Context, z zerolog.Logger) zerolog.Logger {
		return zerolog.New(gin.DefaultWriter).With().Timestamp().Str("request_id", c.GetString(requestIDKey)).Logger()
	})))
	router.Use(Cors(opts.AllowedOrigins))

	if err := RegisterEvaluateApi(&router.RouterGroup, opts.Mode, opts.Settings, opts.CacheSize); err != nil {
		return nil, fmt.Errorf("error initializing API: %w", err)
	}
	RegisterHealthApi(&router.RouterGroup, opts.Mode)

	return router, nil
}
