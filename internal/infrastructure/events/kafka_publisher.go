package events

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strings"

	"seguros_xpto/internal/usecase/interfaces"

	"github.com/segmentio/kafka-go"
)

const defaultClaimEventsTopic = "claim-events"

// KafkaPublisher sends claim stage-transition events to Kafka.
//
// A nil *KafkaPublisher is a valid no-op publisher, so the pipeline runs
// unchanged when no broker is configured.

type KafkaPublisher struct {
	writer *kafka.Writer
}

var _ interfaces.IEventPublisher = (*KafkaPublisher)(nil)

// NewKafkaPublisherFromEnv builds a publisher from KAFKA_BROKERS
// (comma-separated) and CLAIM_EVENTS_TOPIC. Returns nil when no brokers are
// configured.
func NewKafkaPublisherFromEnv() *KafkaPublisher {
	brokersEnv := strings.TrimSpace(os.Getenv("KAFKA_BROKERS"))
	if brokersEnv == "" {
		return nil
	}
	brokers := strings.Split(brokersEnv, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}

	topic := os.Getenv("CLAIM_EVENTS_TOPIC")
	if topic == "" {
		topic = defaultClaimEventsTopic
	}

	log.Printf("[events][infra] Kafka publisher initialized brokers=%v topic=%s", brokers, topic)
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// PublishStageEvent writes one event keyed by transaction id so all events of
// a claim land on the same partition in order.
func (p *KafkaPublisher) PublishStageEvent(ctx context.Context, event interfaces.StageEvent) error {
	if p == nil {
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.TransactionID),
		Value: data,
	})
}

func (p *KafkaPublisher) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
