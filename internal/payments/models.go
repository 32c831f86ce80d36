package payments

import (
	"time"

	"dharma/internal/tickets"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Gateway webhook status values
const (
	WebhookStatusSuccess = "SUCCESS"
	WebhookStatusFailed  = "FAILED"
)

type Payment struct {
	ID            uint       `json:"payment_id" gorm:"primaryKey;autoIncrement"`
	BookingID     uint       `json:"booking_id" gorm:"not null;index"`
	Amount        float64    `json:"amount" gorm:"not null"`
	PaymentMethod string     `json:"payment_method" gorm:"size:50"`
	TransactionID string     `json:"transaction_id" gorm:"size:100"`
	PaymentDate   *time.Time `json:"payment_date,omitempty"`
	PaymentStatus string     `json:"payment_status" gorm:"size:20;not null;default:'pending'"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// CreatePaymentRequest opens a pending payment for a booking
type CreatePaymentRequest struct {
	BookingID     uint    `json:"booking_id" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" validate:"required"`
}

// WebhookRequest is the callback payload from the payment gateway
type WebhookRequest struct {
	PaymentID    uint   `json:"our_payment_id" validate:"required"`
	GatewayTxnID string `json:"gateway_txn_id" validate:"required"`
	Status       string `json:"status" validate:"required,oneof=SUCCESS FAILED"`
}

// WebhookResult reports the webhook outcome. Ticket is set only when a
// fresh confirmation issued one; TicketError carries the issue failure
// without failing the webhook itself.
type WebhookResult struct {
	PaymentStatus    string          `json:"payment_status"`
	AlreadyConfirmed bool            `json:"already_confirmed,omitempty"`
	Ticket           *tickets.Ticket `json:"ticket,omitempty"`
	TicketError      string          `json:"ticket_error,omitempty"`
}
