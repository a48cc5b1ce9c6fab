package revenue_dashboard

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("revenue_dashboard: internal error")
)
