package pages

import (
	"bytes"
	"net/http"
	"time"

	"kozytweaks/internal/domain/content"
	"kozytweaks/internal/ui"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"
)

type Handler struct {
	content *content.Content
	logger  *zap.Logger
	now     func() time.Time
}

// NewHandler serves HTML documents for ct. now supplies the footer year;
// nil means time.Now.
func NewHandler(ct *content.Content, logger *zap.Logger, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{content: ct, logger: logger, now: now}
}

// GET /
func (h *Handler) Landing(c *gin.Context) {
	h.render(c, http.StatusOK, ui.Landing(h.content, h.now()))
}

// GET /terms, /privacy, /refund
func (h *Handler) Legal(slug string) gin.HandlerFunc {
	return func(c *gin.Context) {
		lp, ok := h.content.FindLegal(slug)
		if !ok {
			h.NotFound(c)
			return
		}
		h.render(c, http.StatusOK, ui.LegalPage(h.content, lp, h.now()))
	}
}

// NoRoute
func (h *Handler) NotFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, ui.NotFound(h.content, h.now()))
}

func (h *Handler) render(c *gin.Context, status int, node g.Node) {
	var buf bytes.Buffer
	if err := node.Render(&buf); err != nil {
		h.logger.Error("render failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
