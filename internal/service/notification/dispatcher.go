package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/booknjoy/turf-booking-service/internal/domain"
	"github.com/booknjoy/turf-booking-service/internal/integrations/mailservice"
)

// ErrDispatchFailed возвращается, когда письмо не удалось отправить
// даже после повторной попытки
var ErrDispatchFailed = errors.New("notification: dispatch failed")

const (
	confirmationSubject = "Booking Confirmation - BookNJoy"

	// Одна повторная попытка с ограниченной задержкой
	retryAttempts     = 1
	defaultRetryDelay = 2 * time.Second
)

// Dispatcher формирует и отправляет письмо-подтверждение бронирования
// Для флоу бронирования это fire-and-forget: неуспех логируется,
// но не откатывает уже сохранённое бронирование
type Dispatcher struct {
	mail       MailClient
	logger     Logger
	retryDelay time.Duration
}

// NewDispatcher создает диспетчер уведомлений
func NewDispatcher(mail MailClient, logger Logger) *Dispatcher {
	return &Dispatcher{
		mail:       mail,
		logger:     logger,
		retryDelay: defaultRetryDelay,
	}
}

// SendBookingConfirmation отправляет клиенту подтверждение оплаченного бронирования
func (d *Dispatcher) SendBookingConfirmation(ctx context.Context, booking *domain.Booking, turfName string) error {
	msg := &mailservice.Message{
		To:       booking.UserEmail,
		Subject:  confirmationSubject,
		HTMLBody: confirmationBody(booking, turfName),
	}

	var lastErr error
	for attempt := 0; attempt <= retryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return fmt.Errorf("%w: %v", ErrDispatchFailed, ctx.Err())
			case <-time.After(d.retryDelay):
			}
			d.logger.Warn("SendBookingConfirmation: retrying booking id=%d, attempt=%d", booking.ID, attempt+1)
		}

		if err := d.mail.Send(ctx, msg); err != nil {
			lastErr = err
			continue
		}

		d.logger.Info("SendBookingConfirmation: confirmation sent for booking id=%d to %s", booking.ID, booking.UserEmail)
		return nil
	}

	return fmt.Errorf("%w: booking id=%d: %v", ErrDispatchFailed, booking.ID, lastErr)
}

// confirmationBody собирает HTML письма-квитанции
func confirmationBody(booking *domain.Booking, turfName string) string {
	var sb strings.Builder

	sb.WriteString("<h3>Booking Confirmed</h3>")
	sb.WriteString(fmt.Sprintf(
		"<p>Your booking of <b>%s</b> for the <b>%s</b> slot on <b>%s</b> is confirmed.</p>",
		turfName, booking.Slot, booking.BookingDate.Format(domain.DateFormat),
	))
	sb.WriteString(fmt.Sprintf("<p><b>Amount Paid:</b> ₹%.2f</p>", booking.NetAmount()))

	if booking.PromoCode != nil {
		sb.WriteString(fmt.Sprintf("<p>Promo Applied: %s</p>", *booking.PromoCode))
	}

	sb.WriteString(fmt.Sprintf("<p>Booking ID: %d</p>", booking.ID))

	return sb.String()
}
