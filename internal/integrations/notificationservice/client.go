package notificationservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
)

// Client клиент сервиса уведомлений (письма клиенту и оператору)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса уведомлений
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// NotifyBookingCreated отправляет событие о новом бронировании
func (c *Client) NotifyBookingCreated(ctx context.Context, event domain.BookingCreatedEvent) error {
	url := fmt.Sprintf("%s/internal/notifications/booking-created", c.baseURL)

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: failed to encode event: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted, http.StatusNoContent:
		c.log.Info("Notification sent for booking id=%s", event.BookingID)
		return nil
	case http.StatusBadRequest:
		var errResp ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Message != "" {
			return fmt.Errorf("%w: rejected: %s", ErrInvalidResponse, errResp.Message)
		}
		return fmt.Errorf("%w: rejected event", ErrInvalidResponse)
	default:
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(data))
	}
}

// Noop получатель уведомлений, когда доставка выключена
type Noop struct{}

// NotifyBookingCreated ничего не отправляет
func (Noop) NotifyBookingCreated(context.Context, domain.BookingCreatedEvent) error {
	return nil
}
