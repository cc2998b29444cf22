package rabbit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Temutjin2k/driver-twin/internal/domain/models"
	"github.com/Temutjin2k/driver-twin/pkg/logger"
	wrap "github.com/Temutjin2k/driver-twin/pkg/logger/wrapper"
	"github.com/Temutjin2k/driver-twin/pkg/rabbit"
	"github.com/rabbitmq/amqp091-go"
)

const TwinExchange = "twin_topic"

type TwinProducer struct {
	client *rabbit.RabbitMQ
	l      logger.Logger
}

func NewTwinProducer(client *rabbit.RabbitMQ, log logger.Logger) *TwinProducer {
	return &TwinProducer{client: client, l: log}
}

// PublishOptimizationCompleted announces a fresh optimization result.
// Routed as 'twin.optimization.{archetype}' so consumers can subscribe to
// specific recommendations.
func (r *TwinProducer) PublishOptimizationCompleted(ctx context.Context, msg models.OptimizationCompletedMessage) error {
	ctx = wrap.WithAction(ctx, "rabbitmq_publish_optimization_completed")

	if err := r.client.EnsureConnection(ctx); err != nil {
		r.l.Error(ctx, "ensure connection failed", err)
		return wrap.Error(ctx, err)
	}

	if err := r.client.Channel.ExchangeDeclare(TwinExchange, "topic", true, false, false, false, nil); err != nil {
		return wrap.Error(ctx, fmt.Errorf("declare exchange failed: %w", err))
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return wrap.Error(ctx, fmt.Errorf("failed to marshal message: %w", err))
	}

	key := fmt.Sprintf("twin.optimization.%s", msg.Recommended)

	if err := retry(5, time.Second, func() error {
		if err := r.client.Channel.PublishWithContext(
			ctx,
			TwinExchange, // exchange
			key,          // routing key
			false,        // mandatory
			false,        // immediate
			amqp091.Publishing{
				ContentType: "application/json",
				Body:        body,
				Timestamp:   time.Now(),
			},
		); err != nil {
			return fmt.Errorf("failed to publish with context: %w", err)
		}

		return nil
	}); err != nil {
		return wrap.Error(ctx, err)
	}

	return nil
}
