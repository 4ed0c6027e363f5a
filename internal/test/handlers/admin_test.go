package handlers_test

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artify-backend/internal/handlers"
	"artify-backend/internal/models"
	"artify-backend/internal/styles"
)

type fakeAdminStore struct {
	mu     sync.Mutex
	orders map[string]*models.Order
}

func newFakeAdminStore(orders ...*models.Order) *fakeAdminStore {
	s := &fakeAdminStore{orders: make(map[string]*models.Order)}
	for _, o := range orders {
		s.orders[o.ID] = o
	}
	return s
}

func (s *fakeAdminStore) GetOrder(orderID string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok {
		return nil, errors.New("order not found")
	}
	copied := *order
	return &copied, nil
}

func (s *fakeAdminStore) RequeueOrder(orderID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok {
		return false, errors.New("order not found")
	}
	if order.Status != models.StatusFailed {
		return false, nil
	}
	order.Status = models.StatusPaid
	order.ErrorMessage = sql.NullString{}
	return true, nil
}

func (s *fakeAdminStore) CancelOrder(orderID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok {
		return false, errors.New("order not found")
	}
	if models.IsTerminalStatus(order.Status) {
		return false, nil
	}
	order.Status = models.StatusCancelled
	return true, nil
}

type fakeLauncher struct {
	mu       sync.Mutex
	launched []string
}

func (l *fakeLauncher) Launch(ctx context.Context, orderID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.launched = append(l.launched, orderID)
}

type recordingNotifier struct {
	completed []string
	failed    []string
}

func (n *recordingNotifier) SendCompleted(orderID, email string, resultURLs []string, styleName string, labels [][2]string) {
	n.completed = append(n.completed, orderID)
}

func (n *recordingNotifier) SendFailed(orderID, email, reason string) {
	n.failed = append(n.failed, orderID)
}

func adminTestRouter(store *fakeAdminStore, launcher *fakeLauncher, notifier *recordingNotifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewAdminHandler(store, styles.NewCatalog(), launcher, notifier)

	router := gin.New()
	router.POST("/api/admin/orders/:order_id/requeue", handler.RequeueOrder)
	router.POST("/api/admin/orders/:order_id/resend-notification", handler.ResendNotification)
	router.POST("/api/admin/orders/:order_id/cancel", handler.CancelOrder)
	return router
}

func adminOrder(id, status string) *models.Order {
	return &models.Order{
		ID:           id,
		Status:       status,
		Email:        "customer@example.com",
		StyleID:      styles.PackMasters,
		StyleName:    sql.NullString{String: "Masters", Valid: true},
		PackTier:     5,
		PortraitMode: styles.ModeRealistic,
	}
}

func TestAdminRequeue_FailedOrderGoesBackToPaid(t *testing.T) {
	store := newFakeAdminStore(adminOrder("ART-1-CCCC0001", models.StatusFailed))
	launcher := &fakeLauncher{}
	router := adminTestRouter(store, launcher, &recordingNotifier{})

	req, _ := http.NewRequest("POST", "/api/admin/orders/ART-1-CCCC0001/requeue", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	order, err := store.GetOrder("ART-1-CCCC0001")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPaid, order.Status)
	assert.Equal(t, []string{"ART-1-CCCC0001"}, launcher.launched)
}

func TestAdminRequeue_StuckProcessingOrderIsRelaunched(t *testing.T) {
	store := newFakeAdminStore(adminOrder("ART-1-CCCC0002", models.StatusProcessing))
	launcher := &fakeLauncher{}
	router := adminTestRouter(store, launcher, &recordingNotifier{})

	req, _ := http.NewRequest("POST", "/api/admin/orders/ART-1-CCCC0002/requeue", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// The order keeps its status; the launch bypasses the wait for the
	// next supervisor sweep.
	require.Equal(t, http.StatusOK, w.Code)
	order, err := store.GetOrder("ART-1-CCCC0002")
	require.NoError(t, err)
	assert.Equal(t, models.StatusProcessing, order.Status)
	assert.Equal(t, []string{"ART-1-CCCC0002"}, launcher.launched)
}

func TestAdminRequeue_PaidOrderIsRelaunched(t *testing.T) {
	store := newFakeAdminStore(adminOrder("ART-1-CCCC0003", models.StatusPaid))
	launcher := &fakeLauncher{}
	router := adminTestRouter(store, launcher, &recordingNotifier{})

	req, _ := http.NewRequest("POST", "/api/admin/orders/ART-1-CCCC0003/requeue", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"ART-1-CCCC0003"}, launcher.launched)
}

func TestAdminRequeue_TerminalOrderConflicts(t *testing.T) {
	for _, status := range []string{models.StatusCompleted, models.StatusCancelled, models.StatusPending} {
		store := newFakeAdminStore(adminOrder("ART-1-CCCC0004", status))
		launcher := &fakeLauncher{}
		router := adminTestRouter(store, launcher, &recordingNotifier{})

		req, _ := http.NewRequest("POST", "/api/admin/orders/ART-1-CCCC0004/requeue", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code, "status %s", status)
		assert.Empty(t, launcher.launched, "status %s", status)
	}
}

func TestAdminRequeue_UnknownOrderIs404(t *testing.T) {
	router := adminTestRouter(newFakeAdminStore(), &fakeLauncher{}, &recordingNotifier{})

	req, _ := http.NewRequest("POST", "/api/admin/orders/ART-1-MISSING/requeue", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminResendNotification_OnlyForCompletedOrders(t *testing.T) {
	completed := adminOrder("ART-1-CCCC0005", models.StatusCompleted)
	completed.ResultURLs = []string{"https://artify.example/api/orders/ART-1-CCCC0005/results/1"}
	store := newFakeAdminStore(completed, adminOrder("ART-1-CCCC0006", models.StatusProcessing))
	notifier := &recordingNotifier{}
	router := adminTestRouter(store, &fakeLauncher{}, notifier)

	req, _ := http.NewRequest("POST", "/api/admin/orders/ART-1-CCCC0005/resend-notification", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"ART-1-CCCC0005"}, notifier.completed)

	req, _ = http.NewRequest("POST", "/api/admin/orders/ART-1-CCCC0006/resend-notification", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Len(t, notifier.completed, 1)
}

func TestAdminCancel_TerminalOrderConflicts(t *testing.T) {
	store := newFakeAdminStore(
		adminOrder("ART-1-CCCC0007", models.StatusProcessing),
		adminOrder("ART-1-CCCC0008", models.StatusCompleted),
	)
	router := adminTestRouter(store, &fakeLauncher{}, &recordingNotifier{})

	req, _ := http.NewRequest("POST", "/api/admin/orders/ART-1-CCCC0007/cancel", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	order, err := store.GetOrder("ART-1-CCCC0007")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, order.Status)

	req, _ = http.NewRequest("POST", "/api/admin/orders/ART-1-CCCC0008/cancel", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)
}
