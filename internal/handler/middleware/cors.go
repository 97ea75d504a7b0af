package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"collective-lifecycle/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// protocolHeaders are read by the booking and public API routes and stay
// allowed even when CORS_ALLOW_HEADERS is overridden.
var protocolHeaders = []string{"Authorization", HeaderIdempotencyKey, HeaderProviderID, HeaderAPIKey}

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     allowedHeaders(cfg.AllowHeaders),
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins, "allow_headers", corsCfg.AllowHeaders)
	return cors.New(corsCfg)
}

func allowedHeaders(configured []string) []string {
	headers := slices.Clone(configured)
	for _, h := range protocolHeaders {
		if !slices.ContainsFunc(headers, func(c string) bool { return strings.EqualFold(c, h) }) {
			headers = append(headers, h)
		}
	}
	return headers
}
