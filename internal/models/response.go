package models

import "time"

type OrderResponse struct {
	OrderID        string    `json:"order_id"`
	Status         string    `json:"status"`
	Email          string    `json:"email"`
	StyleID        int       `json:"style_id"`
	StyleName      string    `json:"style_name,omitempty"`
	PackTier       int       `json:"pack_tier"`
	PortraitMode   string    `json:"portrait_mode"`
	StyleImageURLs []string  `json:"style_image_urls"`
	ResultURLs     []string  `json:"result_urls"`
	ErrorMessage   string    `json:"error_message,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// StatusResponse is the polling surface for the order status page.
// ResultURLs may be partial while processing; Labels is populated only once
// the order is completed. StyleImageURLs is truncated to the result count so
// the gallery can pair each result with its reference 1:1.
type StatusResponse struct {
	OrderID        string      `json:"order_id"`
	Status         string      `json:"status"`
	StyleID        int         `json:"style_id"`
	StyleName      string      `json:"style_name,omitempty"`
	SourceImageURL string      `json:"initial_image_url,omitempty"`
	StyleImageURLs []string    `json:"style_image_urls,omitempty"`
	ResultURLs     []string    `json:"result_urls"`
	Labels         [][2]string `json:"result_labels,omitempty"`
	Error          string      `json:"error,omitempty"`
}

type UploadResponse struct {
	ImageURL string `json:"image_url"`
}

type PaymentConfirmedResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
