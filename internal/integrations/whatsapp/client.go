package whatsapp

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент deep-link чата wa.me.
//
// Handoff устроен как fire-and-forget: сообщение уходит одним GET с
// percent-encoded текстом, доставка не подтверждается и не проверяется.
type Client struct {
	baseURL    string
	phone      string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента WhatsApp
func NewClient(baseURL string, phone string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		phone:   phone,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// MessageURL возвращает deep-link на фиксированного получателя
// с предзаполненным текстом сообщения
func (c *Client) MessageURL(text string) string {
	return fmt.Sprintf("%s/%s?text=%s", c.baseURL, c.phone, url.QueryEscape(text))
}

// Send открывает deep-link с предзаполненным сообщением (best-effort).
// Результат не ожидается: ошибка возвращается только для логирования
// на стороне вызывающего и ни на что не влияет.
func (c *Client) Send(ctx context.Context, text string) error {
	target := c.MessageURL(text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	c.log.Info("WhatsApp handoff opened for %s (%d bytes of text)", c.phone, len(text))
	return nil
}
