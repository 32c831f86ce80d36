package payments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dharma/internal/bookings"
	"dharma/internal/tickets"
	"dharma/pkg/logger"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrBookingNotFound = errors.New("booking not found")
)

// TicketIssuer is the slice of the ticket service the webhook needs.
type TicketIssuer interface {
	IssueForBooking(ctx context.Context, bookingID uint, txnID string) (*tickets.Ticket, error)
}

type Service interface {
	Create(ctx context.Context, req CreatePaymentRequest) (*Payment, error)
	GetByID(ctx context.Context, id uint) (*Payment, error)
	GetByBooking(ctx context.Context, bookingID uint) ([]Payment, error)
	// HandleWebhook processes the gateway callback. A repeated SUCCESS
	// on an already confirmed payment is a no-op and does not issue a
	// second ticket.
	HandleWebhook(ctx context.Context, req WebhookRequest) (*WebhookResult, error)
}

type service struct {
	repo    Repository
	tickets TicketIssuer
	sms     bookings.SMSPublisher
	log     *logger.Logger
}

func NewService(repo Repository, issuer TicketIssuer, sms bookings.SMSPublisher) Service {
	return &service{
		repo:    repo,
		tickets: issuer,
		sms:     sms,
		log:     logger.GetDefault(),
	}
}

func (s *service) Create(ctx context.Context, req CreatePaymentRequest) (*Payment, error) {
	exists, err := s.repo.BookingExists(ctx, req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to check booking: %w", err)
	}
	if !exists {
		return nil, ErrBookingNotFound
	}

	payment := &Payment{
		BookingID:     req.BookingID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: StatusPending,
	}

	if err := s.repo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	return payment, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*Payment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetByBooking(ctx context.Context, bookingID uint) ([]Payment, error) {
	return s.repo.GetByBooking(ctx, bookingID)
}

func (s *service) HandleWebhook(ctx context.Context, req WebhookRequest) (*WebhookResult, error) {
	payment, err := s.repo.GetByID(ctx, req.PaymentID)
	if err != nil {
		return nil, err
	}

	// Idempotency: a confirmed payment keeps its ticket
	if payment.PaymentStatus == StatusConfirmed && req.Status == WebhookStatusSuccess {
		return &WebhookResult{PaymentStatus: StatusConfirmed, AlreadyConfirmed: true}, nil
	}

	if req.Status == WebhookStatusSuccess {
		now := time.Now()
		payment.PaymentStatus = StatusConfirmed
		payment.TransactionID = req.GatewayTxnID
		payment.PaymentDate = &now

		// Persist the confirmation before issuing the ticket so a
		// ticket failure never loses the payment state.
		if err := s.repo.Save(ctx, payment); err != nil {
			return nil, fmt.Errorf("failed to confirm payment: %w", err)
		}

		s.log.LogPaymentConfirmed(ctx, payment.ID, payment.BookingID)

		result := &WebhookResult{PaymentStatus: StatusConfirmed}

		ticket, err := s.tickets.IssueForBooking(ctx, payment.BookingID, payment.TransactionID)
		if err != nil {
			s.log.ErrorWithContext(ctx, "ticket issuance failed", err, map[string]interface{}{
				"payment_id": payment.ID,
				"booking_id": payment.BookingID,
			})
			result.TicketError = err.Error()
		} else {
			result.Ticket = ticket
		}

		s.notifyConfirmation(ctx, payment, ticket)

		return result, nil
	}

	payment.PaymentStatus = StatusCancelled
	payment.TransactionID = req.GatewayTxnID
	if err := s.repo.Save(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to cancel payment: %w", err)
	}

	return &WebhookResult{PaymentStatus: StatusCancelled}, nil
}

// notifyConfirmation queues a best-effort SMS to the booking's mobile
// number. Failures are logged and dropped.
func (s *service) notifyConfirmation(ctx context.Context, payment *Payment, ticket *tickets.Ticket) {
	if s.sms == nil {
		return
	}

	booking, err := s.repo.GetBooking(ctx, payment.BookingID)
	if err != nil || booking == nil || booking.MobileNumber == "" {
		return
	}

	message := fmt.Sprintf("Your Dharma payment of Rs %.2f is confirmed.", payment.Amount)
	if ticket != nil {
		message = fmt.Sprintf("%s Ticket: %s", message, ticket.ID)
	}

	if err := s.sms.PublishSMS(ctx, booking.MobileNumber, message); err != nil {
		s.log.ErrorWithContext(ctx, "failed to queue payment SMS", err, map[string]interface{}{
			"payment_id": payment.ID,
		})
	}
}
