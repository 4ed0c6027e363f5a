package models

type CreateOrderRequest struct {
	Email        string `json:"email" binding:"required,email"`
	StyleID      int    `json:"style_id" binding:"required"`
	PackTier     int    `json:"pack_tier"`
	PortraitMode string `json:"portrait_mode"`
	ImageURL     string `json:"image_url" binding:"required"`
}

type PaymentConfirmedRequest struct {
	PaymentProvider string `json:"payment_provider"`
	TransactionID   string `json:"transaction_id"`
}
