package models

import (
	"database/sql"
	"time"
)

// Order statuses. Transitions are monotonic:
// pending -> paid -> processing -> completed, processing -> failed,
// any pre-terminal status -> cancelled (administrative only).
const (
	StatusPending    = "pending"
	StatusPaid       = "paid"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
	StatusCancelled  = "cancelled"
)

// IsTerminalStatus reports whether no further automatic transition occurs.
func IsTerminalStatus(status string) bool {
	return status == StatusCompleted || status == StatusFailed || status == StatusCancelled
}

type Order struct {
	ID           string
	Status       string
	Email        string
	StyleID      int
	StyleName    sql.NullString
	PackTier     int
	PortraitMode string

	// SourceImageURL points at the customer's uploaded photo. The bytes are
	// also persisted in order_source_images so processing survives redeploys.
	SourceImageURL string

	// StyleImageURLs is the ordered generation plan, fixed at creation and
	// never reordered. ResultURLs grows monotonically with the same indexing,
	// which is what makes crash recovery a pure length comparison.
	StyleImageURLs []string
	ResultURLs     []string

	ErrorMessage sql.NullString

	CreatedAt   time.Time
	PaidAt      sql.NullTime
	CompletedAt sql.NullTime
	FailedAt    sql.NullTime
}

// PlannedImageCount is how many portraits this order must produce.
func (o *Order) PlannedImageCount() int {
	return len(o.StyleImageURLs)
}

// CompletedImageCount is the resume point for a processor run.
func (o *Order) CompletedImageCount() int {
	return len(o.ResultURLs)
}

type ResultImage struct {
	OrderID     string
	Position    int // 1-based
	ContentType string
	Data        []byte
	CreatedAt   time.Time
}

type SourceImage struct {
	OrderID     string
	ContentType string
	Data        []byte
	CreatedAt   time.Time
}
