package kafka

import (
	"context"
	"encoding/json"

	"crm-service/models"

	"github.com/segmentio/kafka-go"
)

// Producer publishes import summary events for downstream consumers.
type Producer struct {
	writer *kafka.Writer
	topic  string
}

func NewProducer(brokers []string, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}

	return &Producer{
		writer: writer,
		topic:  topic,
	}
}

// PublishImportEvent sends one event keyed by target table, so events for
// the same table stay ordered within a partition.
func (p *Producer) PublishImportEvent(ctx context.Context, event models.ImportEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.Table),
		Value: data,
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *Producer) Close() {
	_ = p.writer.Close()
}
