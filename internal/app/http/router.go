package routes

import (
	"time"

	"kozytweaks/config"
	"kozytweaks/internal/api/pages"
	"kozytweaks/internal/api/plans"
	"kozytweaks/internal/app/http/middleware"
	"kozytweaks/internal/domain/content"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires middleware and routes for the site. now is passed to the
// page handler (nil means time.Now).
func NewRouter(cfg *config.Config, ct *content.Content, logger *zap.Logger, now func() time.Time) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	// CORS only matters for the JSON endpoint; skip it when no origin is set.
	if cfg.CORSOrigin != "" {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  []string{cfg.CORSOrigin},
			AllowMethods:  []string{"GET", "HEAD", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        12 * time.Hour,
		}))
	}

	RegisterRoutes(r, pages.NewHandler(ct, logger, now), plans.NewHandler(ct))
	return r
}
