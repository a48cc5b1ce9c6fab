package delete_turf

import "context"

type TurfService interface {
	Delete(ctx context.Context, id int64, requesterEmail string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
