package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"artify-backend/internal/models"
	"artify-backend/internal/results"
	"artify-backend/internal/store"
)

type ResultHandler struct {
	store     *store.OrderStore
	persister *results.Persister
}

func NewResultHandler(orderStore *store.OrderStore, persister *results.Persister) *ResultHandler {
	return &ResultHandler{
		store:     orderStore,
		persister: persister,
	}
}

// GetResultImage serves one finished portrait. Expired blobs return 410 so
// the status page can tell "never existed" from "past retention".
func (h *ResultHandler) GetResultImage(c *gin.Context) {
	orderID := c.Param("order_id")
	position, err := strconv.Atoi(c.Param("position"))
	if err != nil || position < 1 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid position"})
		return
	}

	img, err := h.persister.Get(orderID, position)
	if err != nil {
		order, orderErr := h.store.GetOrder(orderID)
		if orderErr == nil && position <= order.CompletedImageCount() {
			c.JSON(http.StatusGone, models.ErrorResponse{
				Error:   "result image expired",
				Message: "this image has passed its retention period and is no longer available",
			})
			return
		}
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "result image not found"})
		return
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, img.ContentType, img.Data)
}

func (h *ResultHandler) GetSourceImage(c *gin.Context) {
	img, err := h.store.GetSourceImage(c.Param("order_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "source image not found"})
		return
	}

	c.Data(http.StatusOK, img.ContentType, img.Data)
}
