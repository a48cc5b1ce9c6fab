package mailservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с внешним почтовым транспортом
// Сервис не инспектирует статус доставки глубже, чем успех/неуспех вызова
type Client struct {
	baseURL    string
	from       string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента почтового транспорта
func NewClient(baseURL, from string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		from:    from,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Send отправляет письмо
// Если From в сообщении пуст, подставляется адрес отправителя из конфигурации
func (c *Client) Send(ctx context.Context, msg *Message) error {
	if msg.From == "" {
		msg.From = c.from
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal message: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/v1/messages", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrSendFailed, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted:
		return nil
	case http.StatusBadRequest:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: %s", ErrInvalidMessage, string(respBody))
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrSendFailed, resp.StatusCode, string(respBody))
	}
}
