package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booknjoy/turf-booking-service/internal/domain"
	"github.com/booknjoy/turf-booking-service/internal/integrations/mailservice"
	"github.com/booknjoy/turf-booking-service/pkg/ptr"
)

type fakeMailClient struct {
	messages []*mailservice.Message
	errs     []error
}

func (f *fakeMailClient) Send(ctx context.Context, msg *mailservice.Message) error {
	f.messages = append(f.messages, msg)
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		return err
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:              7,
		UserEmail:       "user@example.com",
		BookingDate:     time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Slot:            domain.SlotEvening,
		Price:           200,
		DiscountApplied: 20,
		Status:          domain.StatusPaid,
	}
}

func newTestDispatcher(mail MailClient) *Dispatcher {
	d := NewDispatcher(mail, nopLogger{})
	d.retryDelay = time.Millisecond
	return d
}

func TestSendBookingConfirmation_Success(t *testing.T) {
	mail := &fakeMailClient{}
	d := newTestDispatcher(mail)

	err := d.SendBookingConfirmation(context.Background(), testBooking(), "Green Field")
	require.NoError(t, err)
	require.Len(t, mail.messages, 1)

	msg := mail.messages[0]
	assert.Equal(t, "user@example.com", msg.To)
	assert.Equal(t, "Booking Confirmation - BookNJoy", msg.Subject)
	assert.Contains(t, msg.HTMLBody, "Green Field")
	assert.Contains(t, msg.HTMLBody, "₹180.00")
	assert.Contains(t, msg.HTMLBody, "Booking ID: 7")
	assert.NotContains(t, msg.HTMLBody, "Promo Applied")
}

func TestSendBookingConfirmation_PromoLine(t *testing.T) {
	mail := &fakeMailClient{}
	d := newTestDispatcher(mail)

	booking := testBooking()
	booking.PromoCode = ptr.Ptr("SAVE10")

	err := d.SendBookingConfirmation(context.Background(), booking, "Green Field")
	require.NoError(t, err)
	assert.Contains(t, mail.messages[0].HTMLBody, "Promo Applied: SAVE10")
}

func TestSendBookingConfirmation_RetriesOnce(t *testing.T) {
	mail := &fakeMailClient{errs: []error{errors.New("temporary failure")}}
	d := newTestDispatcher(mail)

	err := d.SendBookingConfirmation(context.Background(), testBooking(), "Green Field")
	require.NoError(t, err)
	assert.Len(t, mail.messages, 2)
}

func TestSendBookingConfirmation_FailsAfterRetry(t *testing.T) {
	mail := &fakeMailClient{errs: []error{
		errors.New("temporary failure"),
		errors.New("still failing"),
	}}
	d := newTestDispatcher(mail)

	err := d.SendBookingConfirmation(context.Background(), testBooking(), "Green Field")
	assert.ErrorIs(t, err, ErrDispatchFailed)
	assert.Len(t, mail.messages, 2)
}

func TestSendBookingConfirmation_ContextCancelledBeforeRetry(t *testing.T) {
	mail := &fakeMailClient{errs: []error{errors.New("temporary failure")}}
	d := NewDispatcher(mail, nopLogger{})
	d.retryDelay = time.Minute

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.SendBookingConfirmation(ctx, testBooking(), "Green Field")
	assert.ErrorIs(t, err, ErrDispatchFailed)
	assert.Len(t, mail.messages, 1)
}
