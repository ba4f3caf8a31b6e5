package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/monitoring"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/config"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher is the subset of *amqp.Channel used to publish alerts
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type amqpNotifier struct {
	conn       *amqp.Connection
	channel    Publisher
	exchange   string
	routingKey string
	logger     logger.Logger
}

// NewAMQPNotifier dials the broker and declares a durable topic exchange
func NewAMQPNotifier(settings *config.BrokerSettings, logger logger.Logger) (monitoring.Notifier, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	conn, err := amqp.Dial(settings.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if settings.Exchange != "" {
		if err := ch.ExchangeDeclare(settings.Exchange, "topic", true, false, false, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return nil, fmt.Errorf("failed to declare exchange %s: %w", settings.Exchange, err)
		}
	}

	return &amqpNotifier{
		conn:       conn,
		channel:    ch,
		exchange:   settings.Exchange,
		routingKey: settings.RoutingKey,
		logger:     logger,
	}, nil
}

// NewAMQPNotifierWithPublisher wraps an open channel
func NewAMQPNotifierWithPublisher(publisher Publisher, exchange, routingKey string, logger logger.Logger) monitoring.Notifier {
	return &amqpNotifier{
		channel:    publisher,
		exchange:   exchange,
		routingKey: routingKey,
		logger:     logger,
	}
}

func (n *amqpNotifier) Notify(ctx context.Context, alert *monitoring.CalibrationAlert) error {
	body, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to encode alert: %w", err)
	}

	err = n.channel.PublishWithContext(ctx, n.exchange, n.routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		Timestamp:    time.Now(),
		DeliveryMode: amqp.Persistent,
		MessageId:    alert.EquipmentID + "/" + alert.GeneratedAt.Format("20060102"),
		Type:         string(alert.Status),
	})
	if err != nil {
		return fmt.Errorf("failed to publish alert for %s: %w", alert.JFTNo, err)
	}

	n.logger.Debug("Published calibration alert", "jftNo", alert.JFTNo, "status", alert.Status)
	return nil
}

func (n *amqpNotifier) Close() error {
	if err := n.channel.Close(); err != nil {
		return fmt.Errorf("failed to close channel: %w", err)
	}
	if n.conn != nil {
		if err := n.conn.Close(); err != nil {
			return fmt.Errorf("failed to close connection: %w", err)
		}
	}
	return nil
}
