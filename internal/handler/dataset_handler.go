package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hardeep652/sihhackathon/internal/dataset"
)

// DatasetHandler exposes read-only views of the loaded dataset.
type DatasetHandler struct {
	store *dataset.Store
}

// NewDatasetHandler creates a new DatasetHandler.
func NewDatasetHandler(store *dataset.Store) *DatasetHandler {
	return &DatasetHandler{store: store}
}

// Districts handles GET /api/v1/districts, returning the distinct district
// names in table order.
func (h *DatasetHandler) Districts(c *gin.Context) {
	snap := h.store.Get(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data":    snap.Districts,
	})
}

// Health handles GET /healthz. The service stays healthy in degraded mode;
// the payload shows whether data and index are loaded.
func (h *DatasetHandler) Health(c *gin.Context) {
	snap := h.store.Get(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"records":    len(snap.Records),
		"indexReady": snap.Index != nil,
	})
}
