package pages

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kozytweaks/internal/domain/content"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	g "maragu.dev/gomponents"
)

func newTestHandler(t *testing.T) (*Handler, *observer.ObservedLogs) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ct, err := content.Default()
	require.NoError(t, err)

	core, logs := observer.New(zapcore.DebugLevel)
	now := func() time.Time { return time.Date(2032, time.May, 5, 0, 0, 0, 0, time.UTC) }
	return NewHandler(ct, zap.New(core), now), logs
}

func serve(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRenderFailureIs500AndLogged(t *testing.T) {
	h, logs := newTestHandler(t)

	broken := g.NodeFunc(func(io.Writer) error { return errors.New("template exploded") })
	r := gin.New()
	r.GET("/broken", func(c *gin.Context) { h.render(c, http.StatusOK, broken) })

	w := serve(r, "/broken")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal Server Error", w.Body.String())

	entries := logs.FilterMessage("render failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "/broken", entries[0].ContextMap()["path"])
	assert.Equal(t, "template exploded", entries[0].ContextMap()["error"])
}

func TestLandingUsesClock(t *testing.T) {
	h, logs := newTestHandler(t)
	r := gin.New()
	r.GET("/", h.Landing)

	w := serve(r, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "© 2032 KozyTweaks")
	assert.Zero(t, logs.Len())
}

func TestLegalUnknownSlugFallsBackToNotFound(t *testing.T) {
	h, _ := newTestHandler(t)
	r := gin.New()
	r.GET("/cookies", h.Legal("cookies"))

	w := serve(r, "/cookies")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "This page does not exist.")
}

func TestNewHandlerDefaultsClock(t *testing.T) {
	ct, err := content.Default()
	require.NoError(t, err)

	h := NewHandler(ct, zap.NewNop(), nil)
	assert.WithinDuration(t, time.Now(), h.now(), time.Minute)
}
