package create_booking

import "errors"

var (
	// ErrTurfNotFound возвращается, когда площадка не найдена
	ErrTurfNotFound = errors.New("create_booking: turf not found")

	// ErrPriceMismatch возвращается, когда цена клиента расходится с прайс-листом
	ErrPriceMismatch = errors.New("create_booking: listed price does not match catalog price")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
