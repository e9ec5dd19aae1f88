package pricing

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RefreshRunner re-scrapes the lab pages and replaces the price file.
// Implemented by the scraper package; declared here so the handler can
// expose a manual fallback without depending on it.
type RefreshRunner interface {
	Refresh(ctx context.Context) (Table, error)
}

type Handler struct {
	service   *Service
	refresher RefreshRunner
}

func NewHandler(service *Service, refresher RefreshRunner) *Handler {
	return &Handler{service: service, refresher: refresher}
}

// --------------------------------------------------
// GET /prices/tests
// --------------------------------------------------
func (h *Handler) ListTests(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"tests": h.service.ListTests(),
	})
}

// --------------------------------------------------
// GET /prices/compare?test=CBC
// --------------------------------------------------
func (h *Handler) Compare(c *gin.Context) {
	label := c.Query("test")
	if label == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "test query parameter required"})
		return
	}

	c.JSON(http.StatusOK, h.service.Compare(label))
}

// --------------------------------------------------
// POST /prices/refresh (manual fallback)
// --------------------------------------------------
func (h *Handler) Refresh(c *gin.Context) {
	table, err := h.refresher.Refresh(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"labs":   len(table),
	})
}
