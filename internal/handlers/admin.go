package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"artify-backend/internal/middleware"
	"artify-backend/internal/models"
	"artify-backend/internal/processor"
	"artify-backend/internal/styles"
)

// AdminOrderStore is the slice of the store the operator endpoints need.
type AdminOrderStore interface {
	GetOrder(orderID string) (*models.Order, error)
	RequeueOrder(orderID string) (bool, error)
	CancelOrder(orderID string) (bool, error)
}

type AdminHandler struct {
	store    AdminOrderStore
	catalog  *styles.Catalog
	launcher ProcessLauncher
	notifier processor.Notifier
}

func NewAdminHandler(orderStore AdminOrderStore, catalog *styles.Catalog, launcher ProcessLauncher, notifier processor.Notifier) *AdminHandler {
	return &AdminHandler{
		store:    orderStore,
		catalog:  catalog,
		launcher: launcher,
		notifier: notifier,
	}
}

func (h *AdminHandler) operator(c *gin.Context) string {
	if sub, ok := c.Get(middleware.AdminSubjectKey); ok {
		if s, ok := sub.(string); ok {
			return s
		}
	}
	return "unknown"
}

// RequeueOrder forces a new processing attempt. Failed orders go back to
// the paid queue first; paid or stuck processing orders are relaunched as
// they are, without waiting for the next supervisor sweep. Completed
// results are kept and the rerun resumes after them.
func (h *AdminHandler) RequeueOrder(c *gin.Context) {
	orderID := c.Param("order_id")

	order, err := h.store.GetOrder(orderID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "order not found"})
		return
	}

	switch order.Status {
	case models.StatusFailed:
		requeued, err := h.store.RequeueOrder(orderID)
		if err != nil {
			log.Printf("Failed to requeue order %s: %v", orderID, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to requeue order"})
			return
		}
		if requeued {
			order.Status = models.StatusPaid
		}
	case models.StatusPaid, models.StatusProcessing:
		// No status change needed; the launch below kicks a stuck order
		// immediately.
	default:
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "order cannot be requeued",
			Message: "only failed, paid, or processing orders can be requeued; current status: " + order.Status,
		})
		return
	}

	log.Printf("Order %s requeued by %s", orderID, h.operator(c))
	h.launcher.Launch(context.Background(), orderID)
	c.JSON(http.StatusOK, gin.H{"order_id": orderID, "status": order.Status})
}

// ResendNotification re-sends the completion email for a completed order.
func (h *AdminHandler) ResendNotification(c *gin.Context) {
	orderID := c.Param("order_id")

	order, err := h.store.GetOrder(orderID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "order not found"})
		return
	}

	if order.Status != models.StatusCompleted {
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "order is not completed",
			Message: "notifications can only be resent for completed orders; current status: " + order.Status,
		})
		return
	}

	log.Printf("Resending completion email for order %s (by %s)", orderID, h.operator(c))
	h.notifier.SendCompleted(order.ID, order.Email, order.ResultURLs,
		order.StyleName.String, h.catalog.Labels(order.StyleID, order.CompletedImageCount()))
	c.JSON(http.StatusOK, gin.H{"order_id": orderID, "status": order.Status})
}

// CancelOrder stops an order administratively. An active run notices at the
// next image boundary.
func (h *AdminHandler) CancelOrder(c *gin.Context) {
	orderID := c.Param("order_id")

	cancelled, err := h.store.CancelOrder(orderID)
	if err != nil {
		log.Printf("Failed to cancel order %s: %v", orderID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to cancel order"})
		return
	}

	order, getErr := h.store.GetOrder(orderID)
	if getErr != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "order not found"})
		return
	}

	if !cancelled {
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "order is already terminal",
			Message: "current status: " + order.Status,
		})
		return
	}

	log.Printf("Order %s cancelled by %s", orderID, h.operator(c))
	c.JSON(http.StatusOK, gin.H{"order_id": orderID, "status": order.Status})
}
