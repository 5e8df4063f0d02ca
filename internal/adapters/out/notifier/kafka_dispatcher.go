// Package notifier delivers customer notifications over Kafka. The pickup
// core only hands messages to the topic; rendering and actual delivery
// (SMS, email) belong to the downstream notification service.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pickup/internal/core/ports"

	"github.com/IBM/sarama"
)

// KafkaNotificationDispatcher implements ports.NotificationDispatcher on a
// sarama synchronous producer. Send failures are wrapped in
// ports.ErrNotificationDelivery so callers can treat them as non-fatal.
type KafkaNotificationDispatcher struct {
	producer sarama.SyncProducer
	topic    string
}

// notificationMessage is the wire format published to the topic.
type notificationMessage struct {
	ParcelID     string    `json:"parcel_id"`
	TrackingCode string    `json:"tracking_code"`
	Kind         string    `json:"kind"`
	Recipient    string    `json:"recipient"`
	Message      string    `json:"message"`
	SentAt       time.Time `json:"sent_at"`
}

// NewKafkaNotificationDispatcher connects a synchronous producer to the
// given brokers. The caller owns the dispatcher's lifecycle and must Close it.
func NewKafkaNotificationDispatcher(brokers []string, topic string) (*KafkaNotificationDispatcher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, err
	}

	return &KafkaNotificationDispatcher{
		producer: producer,
		topic:    topic,
	}, nil
}

// Dispatch publishes the notification, keyed by parcel ID so retries for the
// same parcel stay ordered within a partition.
func (d *KafkaNotificationDispatcher) Dispatch(_ context.Context, notification ports.Notification) error {
	payload, err := json.Marshal(notificationMessage{
		ParcelID:     notification.ParcelID.String(),
		TrackingCode: notification.TrackingCode,
		Kind:         notification.Kind,
		Recipient:    notification.Recipient,
		Message:      notification.Message,
		SentAt:       time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ports.ErrNotificationDelivery, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: d.topic,
		Key:   sarama.StringEncoder(notification.ParcelID.String()),
		Value: sarama.ByteEncoder(payload),
	}

	if _, _, err = d.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("%w: %w", ports.ErrNotificationDelivery, err)
	}

	return nil
}

// Close shuts down the underlying producer.
func (d *KafkaNotificationDispatcher) Close() error {
	return d.producer.Close()
}
