package redisqueue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
)

// EventBookingCreated имя события о новом бронировании
const EventBookingCreated = "booking-created"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Message конверт события в канале
type Message struct {
	Event   string                     `json:"event"`
	Payload domain.BookingCreatedEvent `json:"payload"`
}

// Publisher публикует события бронирований в канал Redis pub/sub
// Доставка не гарантируется: сообщения без подписчиков теряются
type Publisher struct {
	client  redis.UniversalClient
	channel string
	log     Logger
}

// NewPublisher создает новый экземпляр издателя
func NewPublisher(client redis.UniversalClient, channel string, log Logger) *Publisher {
	return &Publisher{
		client:  client,
		channel: channel,
		log:     log,
	}
}

// NotifyBookingCreated публикует событие о новом бронировании
func (p *Publisher) NotifyBookingCreated(ctx context.Context, event domain.BookingCreatedEvent) error {
	data, err := json.Marshal(Message{Event: EventBookingCreated, Payload: event})
	if err != nil {
		return fmt.Errorf("%w: marshal event: %v", ErrPublish, err)
	}

	receivers, err := p.client.Publish(ctx, p.channel, data).Result()
	if err != nil {
		return fmt.Errorf("%w: channel=%s: %v", ErrPublish, p.channel, err)
	}

	if receivers == 0 {
		p.log.Warn("Event %s for booking id=%s published to %s without subscribers", EventBookingCreated, event.BookingID, p.channel)
		return nil
	}

	p.log.Info("Event %s for booking id=%s published to %s", EventBookingCreated, event.BookingID, p.channel)
	return nil
}
