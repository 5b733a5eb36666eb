// Package roommap содержит клиент сервиса шахматки номеров.
package roommap

import (
	"context"
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

// Client клиент для работы с сервисом шахматки
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента шахматки
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// NotifyDataChanged уведомляет шахматку об изменении данных броней,
// чтобы она перечитала своё состояние. Уведомление best-effort: недоступность
// шахматки не влияет на операции с бронями, ошибка только логируется.
func (c *Client) NotifyDataChanged(ctx context.Context) error {
	url := fmt.Sprintf("%s/internal/room-map/refresh", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("RoomMap notification failed: %v", err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		c.log.Warn("RoomMap notification returned status %d: %s", resp.StatusCode, string(body))
		return fmt.Errorf("%w: unexpected status code %d", ErrInvalidResponse, resp.StatusCode)
	}

	c.log.Info("RoomMap notified about reservation data change")
	return nil
}
