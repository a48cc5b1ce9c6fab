package mailservice

import "errors"

var (
	// ErrSendFailed возвращается, когда транспорт не смог доставить письмо
	ErrSendFailed = errors.New("mailservice client: send failed")

	// ErrInvalidMessage возвращается, когда транспорт отклонил письмо как некорректное
	ErrInvalidMessage = errors.New("mailservice client: invalid message")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailservice client: internal error")
)
