package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"

	"artify-backend/internal/models"
)

// OrderStore is the durable record of orders and their image blobs.
// Status updates happen in single UPDATE statements guarded by a status
// predicate, so transitions stay monotonic even if two writers race.
type OrderStore struct {
	db *sql.DB
}

func NewOrderStore(connectionString string) (*OrderStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &OrderStore{db: db}, nil
}

const orderColumns = `order_id, status, email, style_id, style_name, pack_tier, portrait_mode,
	source_image_url, style_image_urls, result_urls, error_message,
	created_at, paid_at, completed_at, failed_at`

func (s *OrderStore) CreateOrder(order *models.Order) error {
	styleURLs, err := json.Marshal(order.StyleImageURLs)
	if err != nil {
		return fmt.Errorf("failed to encode style image urls: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO orders (order_id, status, email, style_id, style_name, pack_tier, portrait_mode, source_image_url, style_image_urls)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, order.ID, models.StatusPending, order.Email, order.StyleID, order.StyleName,
		order.PackTier, order.PortraitMode, order.SourceImageURL, string(styleURLs))
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

func (s *OrderStore) GetOrder(orderID string) (*models.Order, error) {
	row := s.db.QueryRow(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE order_id = $1
	`, orderID)

	order, err := scanOrder(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get order %s: %w", orderID, err)
	}

	return order, nil
}

// ListOrdersInStatus returns orders in any of the given statuses, oldest
// first, so the supervisor works on the longest-waiting orders first.
func (s *OrderStore) ListOrdersInStatus(statuses ...string) ([]models.Order, error) {
	rows, err := s.db.Query(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE status = ANY($1)
		ORDER BY created_at ASC
	`, pq.Array(statuses))
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *order)
	}

	return orders, rows.Err()
}

// MarkPaid moves a pending order to paid. Returns false when the order was
// not pending, which makes duplicate payment confirmations a no-op.
func (s *OrderStore) MarkPaid(orderID string) (bool, error) {
	res, err := s.db.Exec(`
		UPDATE orders
		SET status = $1, paid_at = NOW()
		WHERE order_id = $2 AND status = $3
	`, models.StatusPaid, orderID, models.StatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to mark order paid: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MarkProcessing moves a paid order to processing. Already-processing orders
// pass through unchanged so resumed runs are not rejected.
func (s *OrderStore) MarkProcessing(orderID string) error {
	_, err := s.db.Exec(`
		UPDATE orders
		SET status = $1
		WHERE order_id = $2 AND status IN ($3, $1)
	`, models.StatusProcessing, orderID, models.StatusPaid)
	if err != nil {
		return fmt.Errorf("failed to mark order processing: %w", err)
	}
	return nil
}

// AppendResultURL appends one result reference to the order's result list.
// The processor holds the order's advisory lock, so it is the sole writer;
// the single UPDATE keeps the list consistent for concurrent readers.
func (s *OrderStore) AppendResultURL(orderID, resultURL string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	var raw sql.NullString
	err = tx.QueryRow(`SELECT result_urls FROM orders WHERE order_id = $1 FOR UPDATE`, orderID).Scan(&raw)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to read result urls: %w", err)
	}

	urls := decodeURLList(raw)
	urls = append(urls, resultURL)
	encoded, err := json.Marshal(urls)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to encode result urls: %w", err)
	}

	if _, err := tx.Exec(`UPDATE orders SET result_urls = $1 WHERE order_id = $2`, string(encoded), orderID); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to append result url: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit result url append: %w", err)
	}
	return nil
}

// MarkCompleted finishes a processing order. Terminal states stay stable:
// the status predicate means a completed/failed/cancelled order is never
// touched again.
func (s *OrderStore) MarkCompleted(orderID string) error {
	_, err := s.db.Exec(`
		UPDATE orders
		SET status = $1, completed_at = NOW()
		WHERE order_id = $2 AND status = $3
	`, models.StatusCompleted, orderID, models.StatusProcessing)
	if err != nil {
		return fmt.Errorf("failed to mark order completed: %w", err)
	}
	return nil
}

func (s *OrderStore) MarkFailed(orderID, errorMessage string) error {
	_, err := s.db.Exec(`
		UPDATE orders
		SET status = $1, error_message = $2, failed_at = NOW()
		WHERE order_id = $3 AND status NOT IN ($4, $5, $1)
	`, models.StatusFailed, errorMessage, orderID, models.StatusCompleted, models.StatusCancelled)
	if err != nil {
		return fmt.Errorf("failed to mark order failed: %w", err)
	}
	return nil
}

// RequeueOrder puts a failed order back in the paid queue so the supervisor
// picks it up again. Results already produced are kept; the rerun resumes
// after them. Returns false when the order was not failed.
func (s *OrderStore) RequeueOrder(orderID string) (bool, error) {
	res, err := s.db.Exec(`
		UPDATE orders
		SET status = $1, error_message = NULL, failed_at = NULL
		WHERE order_id = $2 AND status = $3
	`, models.StatusPaid, orderID, models.StatusFailed)
	if err != nil {
		return false, fmt.Errorf("failed to requeue order: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CancelOrder marks a pre-terminal order cancelled. Returns false when the
// order was already terminal.
func (s *OrderStore) CancelOrder(orderID string) (bool, error) {
	res, err := s.db.Exec(`
		UPDATE orders
		SET status = $1
		WHERE order_id = $2 AND status NOT IN ($3, $4, $1)
	`, models.StatusCancelled, orderID, models.StatusCompleted, models.StatusFailed)
	if err != nil {
		return false, fmt.Errorf("failed to cancel order: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// TryAcquireOrderLock takes the per-order advisory lock without blocking.
// The lock lives on a dedicated session connection, so Postgres releases it
// if the process dies, so a crashed worker never strands an order. The caller
// must invoke release exactly once when acquired.
func (s *OrderStore) TryAcquireOrderLock(ctx context.Context, orderID string) (release func(), acquired bool, err error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get lock connection: %w", err)
	}

	var locked bool
	err = conn.QueryRowContext(ctx, `SELECT pg_try_advisory_lock(hashtext($1))`, orderID).Scan(&locked)
	if err != nil {
		conn.Close()
		return nil, false, fmt.Errorf("failed to acquire order lock: %w", err)
	}

	if !locked {
		conn.Close()
		return nil, false, nil
	}

	release = func() {
		// Unlock explicitly; closing the connection would also release it.
		_, _ = conn.ExecContext(context.Background(), `SELECT pg_advisory_unlock(hashtext($1))`, orderID)
		conn.Close()
	}
	return release, true, nil
}

func (s *OrderStore) SaveResultImage(img *models.ResultImage) error {
	_, err := s.db.Exec(`
		INSERT INTO order_result_images (order_id, position, content_type, data)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (order_id, position)
		DO UPDATE SET content_type = EXCLUDED.content_type, data = EXCLUDED.data
	`, img.OrderID, img.Position, img.ContentType, img.Data)
	if err != nil {
		return fmt.Errorf("failed to save result image: %w", err)
	}
	return nil
}

func (s *OrderStore) GetResultImage(orderID string, position int) (*models.ResultImage, error) {
	var img models.ResultImage
	err := s.db.QueryRow(`
		SELECT order_id, position, content_type, data, created_at
		FROM order_result_images
		WHERE order_id = $1 AND position = $2
	`, orderID, position).Scan(&img.OrderID, &img.Position, &img.ContentType, &img.Data, &img.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get result image: %w", err)
	}
	return &img, nil
}

func (s *OrderStore) SaveSourceImage(img *models.SourceImage) error {
	_, err := s.db.Exec(`
		INSERT INTO order_source_images (order_id, content_type, data)
		VALUES ($1, $2, $3)
		ON CONFLICT (order_id)
		DO UPDATE SET content_type = EXCLUDED.content_type, data = EXCLUDED.data
	`, img.OrderID, img.ContentType, img.Data)
	if err != nil {
		return fmt.Errorf("failed to save source image: %w", err)
	}
	return nil
}

func (s *OrderStore) GetSourceImage(orderID string) (*models.SourceImage, error) {
	var img models.SourceImage
	err := s.db.QueryRow(`
		SELECT order_id, content_type, data, created_at
		FROM order_source_images
		WHERE order_id = $1
	`, orderID).Scan(&img.OrderID, &img.ContentType, &img.Data, &img.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get source image: %w", err)
	}
	return &img, nil
}

// DeleteResultImagesBefore removes result blobs created before cutoff.
// Orders and source images are never deleted here.
func (s *OrderStore) DeleteResultImagesBefore(cutoff time.Time) (int64, error) {
	res, err := s.db.Exec(`
		DELETE FROM order_result_images
		WHERE created_at < $1
	`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired result images: %w", err)
	}
	return res.RowsAffected()
}

func (s *OrderStore) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*models.Order, error) {
	var order models.Order
	var styleURLs, resultURLs sql.NullString
	err := row.Scan(
		&order.ID, &order.Status, &order.Email, &order.StyleID, &order.StyleName,
		&order.PackTier, &order.PortraitMode, &order.SourceImageURL,
		&styleURLs, &resultURLs, &order.ErrorMessage,
		&order.CreatedAt, &order.PaidAt, &order.CompletedAt, &order.FailedAt,
	)
	if err != nil {
		return nil, err
	}

	order.StyleImageURLs = decodeURLList(styleURLs)
	order.ResultURLs = decodeURLList(resultURLs)
	return &order, nil
}

func decodeURLList(raw sql.NullString) []string {
	if !raw.Valid || raw.String == "" {
		return nil
	}
	var urls []string
	if err := json.Unmarshal([]byte(raw.String), &urls); err != nil {
		return nil
	}
	return urls
}
