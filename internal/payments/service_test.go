package payments

import (
	"context"
	"errors"
	"testing"

	"dharma/internal/bookings"
	"dharma/internal/tickets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	payments map[uint]*Payment
	bookings map[uint]*bookings.Booking
	nextID   uint
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		payments: make(map[uint]*Payment),
		bookings: make(map[uint]*bookings.Booking),
		nextID:   1,
	}
}

func (f *fakeRepository) Create(_ context.Context, payment *Payment) error {
	payment.ID = f.nextID
	f.nextID++
	stored := *payment
	f.payments[payment.ID] = &stored
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id uint) (*Payment, error) {
	p, ok := f.payments[id]
	if !ok {
		return nil, ErrPaymentNotFound
	}
	out := *p
	return &out, nil
}

func (f *fakeRepository) GetByBooking(_ context.Context, bookingID uint) ([]Payment, error) {
	var out []Payment
	for _, p := range f.payments {
		if p.BookingID == bookingID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeRepository) Save(_ context.Context, payment *Payment) error {
	stored := *payment
	f.payments[payment.ID] = &stored
	return nil
}

func (f *fakeRepository) BookingExists(_ context.Context, bookingID uint) (bool, error) {
	_, ok := f.bookings[bookingID]
	return ok, nil
}

func (f *fakeRepository) GetBooking(_ context.Context, bookingID uint) (*bookings.Booking, error) {
	b, ok := f.bookings[bookingID]
	if !ok {
		return nil, nil
	}
	out := *b
	return &out, nil
}

type fakeIssuer struct {
	issued []uint
	fail   error
}

func (f *fakeIssuer) IssueForBooking(_ context.Context, bookingID uint, txnID string) (*tickets.Ticket, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	f.issued = append(f.issued, bookingID)
	return &tickets.Ticket{ID: "AB12CD34-EF5", BookingID: bookingID, TxnID: txnID}, nil
}

type fakeSMS struct {
	sent []string
	fail error
}

func (f *fakeSMS) PublishSMS(_ context.Context, mobile, message string) error {
	if f.fail != nil {
		return f.fail
	}
	f.sent = append(f.sent, mobile+": "+message)
	return nil
}

func fixture() (*fakeRepository, *fakeIssuer, *fakeSMS, Service) {
	repo := newFakeRepository()
	repo.bookings[1] = &bookings.Booking{ID: 1, TempleID: 1, MobileNumber: "9876543210"}

	issuer := &fakeIssuer{}
	sms := &fakeSMS{}
	return repo, issuer, sms, NewService(repo, issuer, sms)
}

func TestCreatePayment_StartsPending(t *testing.T) {
	_, _, _, svc := fixture()

	payment, err := svc.Create(context.Background(), CreatePaymentRequest{
		BookingID:     1,
		Amount:        500,
		PaymentMethod: "UPI",
	})

	require.NoError(t, err)
	assert.Equal(t, StatusPending, payment.PaymentStatus)
	assert.Empty(t, payment.TransactionID)
	assert.Nil(t, payment.PaymentDate)
}

func TestCreatePayment_UnknownBooking(t *testing.T) {
	_, _, _, svc := fixture()

	_, err := svc.Create(context.Background(), CreatePaymentRequest{
		BookingID:     99,
		Amount:        500,
		PaymentMethod: "UPI",
	})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestWebhook_SuccessConfirmsAndIssuesTicket(t *testing.T) {
	repo, issuer, sms, svc := fixture()

	payment, err := svc.Create(context.Background(), CreatePaymentRequest{
		BookingID:     1,
		Amount:        500,
		PaymentMethod: "UPI",
	})
	require.NoError(t, err)

	result, err := svc.HandleWebhook(context.Background(), WebhookRequest{
		PaymentID:    payment.ID,
		GatewayTxnID: "txn-001",
		Status:       WebhookStatusSuccess,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusConfirmed, result.PaymentStatus)
	assert.False(t, result.AlreadyConfirmed)
	require.NotNil(t, result.Ticket)
	assert.Equal(t, "txn-001", result.Ticket.TxnID)

	stored := repo.payments[payment.ID]
	assert.Equal(t, StatusConfirmed, stored.PaymentStatus)
	assert.Equal(t, "txn-001", stored.TransactionID)
	require.NotNil(t, stored.PaymentDate)

	assert.Equal(t, []uint{1}, issuer.issued)
	require.Len(t, sms.sent, 1)
	assert.Contains(t, sms.sent[0], "9876543210")
}

func TestWebhook_RepeatedSuccessIsIdempotent(t *testing.T) {
	_, issuer, _, svc := fixture()

	payment, err := svc.Create(context.Background(), CreatePaymentRequest{
		BookingID:     1,
		Amount:        500,
		PaymentMethod: "UPI",
	})
	require.NoError(t, err)

	req := WebhookRequest{PaymentID: payment.ID, GatewayTxnID: "txn-001", Status: WebhookStatusSuccess}

	_, err = svc.HandleWebhook(context.Background(), req)
	require.NoError(t, err)

	result, err := svc.HandleWebhook(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, result.AlreadyConfirmed)
	assert.Nil(t, result.Ticket)
	assert.Len(t, issuer.issued, 1, "ticket must not be issued twice")
}

func TestWebhook_FailedCancelsPayment(t *testing.T) {
	repo, issuer, _, svc := fixture()

	payment, err := svc.Create(context.Background(), CreatePaymentRequest{
		BookingID:     1,
		Amount:        500,
		PaymentMethod: "UPI",
	})
	require.NoError(t, err)

	result, err := svc.HandleWebhook(context.Background(), WebhookRequest{
		PaymentID:    payment.ID,
		GatewayTxnID: "txn-002",
		Status:       WebhookStatusFailed,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusCancelled, result.PaymentStatus)
	assert.Equal(t, StatusCancelled, repo.payments[payment.ID].PaymentStatus)
	assert.Equal(t, "txn-002", repo.payments[payment.ID].TransactionID)
	assert.Empty(t, issuer.issued)
}

func TestWebhook_TicketFailureDoesNotFailWebhook(t *testing.T) {
	repo, issuer, _, svc := fixture()
	issuer.fail = errors.New("ticket store down")

	payment, err := svc.Create(context.Background(), CreatePaymentRequest{
		BookingID:     1,
		Amount:        500,
		PaymentMethod: "UPI",
	})
	require.NoError(t, err)

	result, err := svc.HandleWebhook(context.Background(), WebhookRequest{
		PaymentID:    payment.ID,
		GatewayTxnID: "txn-003",
		Status:       WebhookStatusSuccess,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusConfirmed, result.PaymentStatus)
	assert.Nil(t, result.Ticket)
	assert.Contains(t, result.TicketError, "ticket store down")

	// Payment state survives the ticket failure
	assert.Equal(t, StatusConfirmed, repo.payments[payment.ID].PaymentStatus)
}

func TestWebhook_SMSFailureDoesNotFailWebhook(t *testing.T) {
	repo, issuer, sms, svc := fixture()
	sms.fail = errors.New("broker unavailable")

	payment, err := svc.Create(context.Background(), CreatePaymentRequest{
		BookingID:     1,
		Amount:        500,
		PaymentMethod: "UPI",
	})
	require.NoError(t, err)

	result, err := svc.HandleWebhook(context.Background(), WebhookRequest{
		PaymentID:    payment.ID,
		GatewayTxnID: "txn-004",
		Status:       WebhookStatusSuccess,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusConfirmed, result.PaymentStatus)
	assert.Len(t, issuer.issued, 1)
	assert.Equal(t, StatusConfirmed, repo.payments[payment.ID].PaymentStatus)
	assert.Empty(t, sms.sent)
}

func TestWebhook_UnknownPayment(t *testing.T) {
	_, _, _, svc := fixture()

	_, err := svc.HandleWebhook(context.Background(), WebhookRequest{
		PaymentID:    42,
		GatewayTxnID: "txn-004",
		Status:       WebhookStatusSuccess,
	})

	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestGetPaymentsByBooking(t *testing.T) {
	_, _, _, svc := fixture()

	for i := 0; i < 2; i++ {
		_, err := svc.Create(context.Background(), CreatePaymentRequest{
			BookingID:     1,
			Amount:        100,
			PaymentMethod: "CARD",
		})
		require.NoError(t, err)
	}

	list, err := svc.GetByBooking(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
