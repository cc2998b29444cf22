package rabbit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Temutjin2k/driver-twin/internal/domain/models"
	"github.com/Temutjin2k/driver-twin/internal/domain/types"
	"github.com/Temutjin2k/driver-twin/pkg/logger"
	wrap "github.com/Temutjin2k/driver-twin/pkg/logger/wrapper"
	"github.com/Temutjin2k/driver-twin/pkg/rabbit"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ActivityExchange   = "activity_topic"
	QueueTripCompleted = "twin_trip_completed"
	TripCompletedKey   = "trip.completed.*"
)

type ActivityConsumer struct {
	client *rabbit.RabbitMQ
	l      logger.Logger
}

func NewActivityConsumer(client *rabbit.RabbitMQ, l logger.Logger) *ActivityConsumer {
	return &ActivityConsumer{client: client, l: l}
}

type TripCompletedHandler func(ctx context.Context, msg models.TripCompletedMessage) error

func (r *ActivityConsumer) declareAndBindQueue(ctx context.Context, queueName, bindingKey, exchangeName string) (amqp.Queue, error) {
	const op = "ActivityConsumer.declareAndBindQueue"

	q, err := r.client.Channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		return q, wrap.Error(ctx, fmt.Errorf("%s: declare queue failed: %w", op, err))
	}

	if err := r.client.Channel.QueueBind(q.Name, bindingKey, exchangeName, false, nil); err != nil {
		return q, wrap.Error(ctx, fmt.Errorf("%s: bind queue failed: %w", op, err))
	}

	return q, nil
}

func (r *ActivityConsumer) handleMessage(ctx context.Context, fn TripCompletedHandler, msg amqp.Delivery) {
	const op = "ActivityConsumer.handleMessage"

	var event models.TripCompletedMessage
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		r.l.Error(ctx, "decode failed", err, "op", op)
		_ = msg.Nack(false, false)
		return
	}

	ctxx := wrap.WithRequestID(ctx, msg.CorrelationId)

	if err := fn(ctxx, event); err != nil {
		r.l.Error(wrap.ErrorCtx(ctx, err), "handler failed", err, "op", op)

		// Malformed events never succeed on retry, drop them.
		if errors.Is(err, types.ErrInvalidActivityEvent) {
			r.l.Warn(ctx, "dropping message", "reason", err.Error())
			_ = msg.Reject(false)
			return
		}

		if isRecoverableError(err) {
			_ = msg.Nack(false, true)
		} else {
			_ = msg.Nack(false, false)
		}
		return
	}

	if err := msg.Ack(false); err != nil {
		r.l.Warn(ctx, "ack failed", "error", err.Error(), "op", op)
	}
}

// ConsumeTripCompleted listens for trip.completed.* events and feeds them to fn.
func (r *ActivityConsumer) ConsumeTripCompleted(ctx context.Context, fn TripCompletedHandler) error {
	const op = "ActivityConsumer.ConsumeTripCompleted"

	for {
		if ctx.Err() != nil {
			r.l.Debug(ctx, "consume trip completed stopped by context")
			return nil
		}

		if err := r.client.EnsureConnection(ctx); err != nil {
			r.l.Error(ctx, "ensure connection failed", err, "op", op)
			time.Sleep(2 * time.Second)
			continue
		}

		if err := r.client.Channel.ExchangeDeclare(ActivityExchange, "topic", true, false, false, false, nil); err != nil {
			r.l.Error(ctx, "declare exchange failed", err, "op", op)
			time.Sleep(3 * time.Second)
			continue
		}

		q, err := r.declareAndBindQueue(ctx, QueueTripCompleted, TripCompletedKey, ActivityExchange)
		if err != nil {
			r.l.Error(ctx, "declare queue failed", err, "op", op)
			time.Sleep(2 * time.Second)
			continue
		}

		msgs, err := r.client.Channel.Consume(q.Name, "", false, false, false, false, nil)
		if err != nil {
			r.l.Error(ctx, "consume failed", err, "op", op)
			time.Sleep(2 * time.Second)
			continue
		}

		r.l.Info(ctx, "start consuming trip completed events", "queue", q.Name)

	consumeLoop:
		for {
			select {
			case <-ctx.Done():
				r.l.Info(ctx, "trip completed consumer shutting down", "op", op)
				return nil

			case msg, ok := <-msgs:
				if !ok {
					r.l.Warn(ctx, "message channel closed, reconnecting...", "op", op)
					time.Sleep(2 * time.Second)
					continue consumeLoop
				}

				go r.handleMessage(ctx, fn, msg)
			}
		}
	}
}
