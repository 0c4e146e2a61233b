package routes

import (
	"net/http"

	"kozytweaks/internal/api/pages"
	"kozytweaks/internal/api/plans"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, pagesHandler *pages.Handler, plansHandler *plans.Handler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", pagesHandler.Landing)
	r.GET("/terms", pagesHandler.Legal("terms"))
	r.GET("/privacy", pagesHandler.Legal("privacy"))
	r.GET("/refund", pagesHandler.Legal("refund"))

	r.GET("/plans", plansHandler.ListPlans)

	r.NoRoute(pagesHandler.NotFound)
}
