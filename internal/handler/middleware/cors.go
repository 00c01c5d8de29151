package middleware

import (
	"log/slog"

	"zavvi-web/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware lets the browser shell call the local API; the shell's
// current route travels in CurrentPathHeader, so it must be allowed.
func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     withHeader(cfg.AllowHeaders, CurrentPathHeader),
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	logger.Info("CORS middleware initialized", slog.Any("allow_origins", cfg.AllowOrigins))
	return cors.New(corsCfg)
}

func withHeader(headers []string, h string) []string {
	for _, v := range headers {
		if v == h {
			return headers
		}
	}
	return append(append([]string(nil), headers...), h)
}
