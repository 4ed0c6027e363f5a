package handlers

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"artify-backend/internal/config"
	"artify-backend/internal/models"
	"artify-backend/internal/store"
	"artify-backend/internal/styles"
)

// ProcessLauncher starts background processing for a paid order.
type ProcessLauncher interface {
	Launch(ctx context.Context, orderID string)
}

type OrderHandler struct {
	store     *store.OrderStore
	catalog   *styles.Catalog
	launcher  ProcessLauncher
	baseURL   string
	uploadDir string
}

func NewOrderHandler(orderStore *store.OrderStore, catalog *styles.Catalog, launcher ProcessLauncher, cfg *config.Config) *OrderHandler {
	return &OrderHandler{
		store:     orderStore,
		catalog:   catalog,
		launcher:  launcher,
		baseURL:   cfg.BaseURL,
		uploadDir: cfg.UploadDir,
	}
}

// newOrderID builds ids like ART-1756646400123-9F2A41BC. The millisecond
// prefix keeps ids roughly sortable by creation time.
func newOrderID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("ART-%d-%s", time.Now().UnixMilli(), suffix)
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	pack, ok := h.catalog.PackByID(req.StyleID)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid style_id"})
		return
	}

	if !strings.HasPrefix(strings.TrimSpace(req.ImageURL), "https://") &&
		!strings.HasPrefix(strings.TrimSpace(req.ImageURL), h.baseURL) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "the uploaded photo URL must be a secure link; please upload your photo again",
		})
		return
	}

	tier := styles.NormalizeTier(req.PackTier)
	paths, _ := h.catalog.Plan(req.StyleID, tier)

	styleURLs := make([]string, 0, len(paths))
	for _, p := range paths {
		styleURLs = append(styleURLs, h.baseURL+p)
	}

	order := &models.Order{
		ID:             newOrderID(),
		Email:          req.Email,
		StyleID:        req.StyleID,
		StyleName:      sql.NullString{String: pack.Name, Valid: true},
		PackTier:       tier,
		PortraitMode:   styles.NormalizeMode(req.PortraitMode),
		SourceImageURL: strings.TrimSpace(req.ImageURL),
		StyleImageURLs: styleURLs,
	}

	if err := h.store.CreateOrder(order); err != nil {
		log.Printf("Failed to create order: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to create order"})
		return
	}
	log.Printf("Order created: %s for %s (%s, tier %d)", order.ID, order.Email, pack.Name, tier)

	// Copy the uploaded photo into the database so processing still has it
	// after a redeploy wipes the upload directory.
	h.persistSourceImage(order.ID, order.SourceImageURL)

	created, err := h.store.GetOrder(order.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load order"})
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(created))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.store.GetOrder(c.Param("order_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "order not found"})
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

func (h *OrderHandler) GetOrderStatus(c *gin.Context) {
	order, err := h.store.GetOrder(c.Param("order_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "order not found"})
		return
	}

	resp := models.StatusResponse{
		OrderID:        order.ID,
		Status:         order.Status,
		StyleID:        order.StyleID,
		StyleName:      order.StyleName.String,
		SourceImageURL: order.SourceImageURL,
		ResultURLs:     order.ResultURLs,
		Error:          order.ErrorMessage.String,
	}

	// Pair each result with its reference so the gallery lines up 1:1 even
	// while results are still arriving.
	n := len(order.ResultURLs)
	if n > len(order.StyleImageURLs) {
		n = len(order.StyleImageURLs)
	}
	resp.StyleImageURLs = order.StyleImageURLs[:n]

	if order.Status == models.StatusCompleted && n > 0 {
		resp.Labels = h.catalog.Labels(order.StyleID, n)
	}

	c.JSON(http.StatusOK, resp)
}

// ConfirmPayment moves a pending order to paid and kicks off processing.
// Duplicate confirmations are acknowledged without effect.
func (h *OrderHandler) ConfirmPayment(c *gin.Context) {
	orderID := c.Param("order_id")

	var req models.PaymentConfirmedRequest
	_ = c.ShouldBindJSON(&req)

	updated, err := h.store.MarkPaid(orderID)
	if err != nil {
		log.Printf("Failed to mark order %s paid: %v", orderID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to confirm payment"})
		return
	}

	order, err := h.store.GetOrder(orderID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "order not found"})
		return
	}

	if updated {
		log.Printf("Order %s paid (provider=%s)", orderID, req.PaymentProvider)
		// The run must outlive this request; it is not tied to the request
		// context. A crash mid-run is recovered by the supervisor.
		h.launcher.Launch(context.Background(), orderID)
	} else {
		log.Printf("Duplicate payment confirmation for order %s (status %s)", orderID, order.Status)
	}

	c.JSON(http.StatusOK, models.PaymentConfirmedResponse{
		OrderID: orderID,
		Status:  order.Status,
	})
}

func (h *OrderHandler) persistSourceImage(orderID, imageURL string) {
	prefix := h.baseURL + "/uploads/"
	if !strings.HasPrefix(imageURL, prefix) {
		return
	}

	rel := strings.TrimPrefix(imageURL, prefix)
	parts := strings.Split(rel, "/")
	if len(parts) != 2 {
		log.Printf("Order %s: unrecognized upload URL shape: %s", orderID, imageURL)
		return
	}

	path := filepath.Join(h.uploadDir, parts[0], parts[1])
	content, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Order %s: upload file missing at %s (redeploy?)", orderID, path)
		return
	}

	img := &models.SourceImage{
		OrderID:     orderID,
		ContentType: contentTypeForExt(filepath.Ext(parts[1])),
		Data:        content,
	}
	if err := h.store.SaveSourceImage(img); err != nil {
		log.Printf("Order %s: could not persist source image: %v", orderID, err)
		return
	}
	log.Printf("Order %s: persisted source image from upload %s", orderID, parts[0])
}

func contentTypeForExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	case ".bmp":
		return "image/bmp"
	default:
		return "image/jpeg"
	}
}

func toOrderResponse(order *models.Order) models.OrderResponse {
	return models.OrderResponse{
		OrderID:        order.ID,
		Status:         order.Status,
		Email:          order.Email,
		StyleID:        order.StyleID,
		StyleName:      order.StyleName.String,
		PackTier:       order.PackTier,
		PortraitMode:   order.PortraitMode,
		StyleImageURLs: order.StyleImageURLs,
		ResultURLs:     order.ResultURLs,
		ErrorMessage:   order.ErrorMessage.String,
		CreatedAt:      order.CreatedAt,
	}
}
