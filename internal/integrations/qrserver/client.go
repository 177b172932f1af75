package qrserver

import (
	"fmt"
	"net/url"
	"strings"
)

// Client клиент внешнего сервиса рендеринга QR-кодов.
//
// Сервис - непрозрачный рендерер: GET с параметрами size и data возвращает
// картинку, никаких callback и аутентификации. Клиент только собирает URL,
// саму картинку загружает UI плательщика.
type Client struct {
	baseURL string
	size    string
}

// NewClient создает новый экземпляр клиента QR-сервиса
func NewClient(baseURL string, size string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "?&"),
		size:    size,
	}
}

// ImageURL возвращает URL картинки QR-кода для переданных данных.
// Данные (платёжный URI) передаются percent-encoded в параметре data.
func (c *Client) ImageURL(data string) string {
	return fmt.Sprintf("%s?size=%s&data=%s", c.baseURL, c.size, url.QueryEscape(data))
}
