package notification

import (
	"context"

	"github.com/booknjoy/turf-booking-service/internal/integrations/mailservice"
)

// MailClient интерфейс клиента почтового транспорта
type MailClient interface {
	Send(ctx context.Context, msg *mailservice.Message) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
