package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/chasepay/payout-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

const (
	PayoutEventsTopic    = "payout-events"
	RateAdjustmentsTopic = "payout-rate-adjustments"
)

type DefaultKafkaPublisher struct {
	writer *kafka.Writer
}

func NewDefaultKafkaPublisher(brokers []string) *DefaultKafkaPublisher {
	return &DefaultKafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (k *DefaultKafkaPublisher) Publish(topic string, msgs ...domain.Message) error {
	var km []kafka.Message
	for _, m := range msgs {
		km = append(km, kafka.Message{
			Key:   m.Key,
			Value: m.Value,
			Time:  time.Now(),
			Topic: topic,
		})
	}

	return k.writer.WriteMessages(context.Background(), km...)
}

func (k *DefaultKafkaPublisher) PublishPayout(event PayoutEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.Publish(PayoutEventsTopic, domain.Message{Key: []byte(event.PayoutID), Value: v})
}

func (k *DefaultKafkaPublisher) PublishRateAdjustment(event RateAdjustmentEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.Publish(RateAdjustmentsTopic, domain.Message{Key: []byte(event.PayoutID), Value: v})
}

func (k *DefaultKafkaPublisher) Close() error {
	return k.writer.Close()
}
