package kafka

import (
	"context"
	"encoding/json"
	"time"

	kafka "github.com/segmentio/kafka-go"

	"cardshop/internal/service"
)

// Publisher writes order lifecycle events keyed by order id, so events for
// one order stay on one partition.
type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(brokers []string, topic string) *Publisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		WriteTimeout:           5 * time.Second,
		BatchTimeout:           50 * time.Millisecond,
	}
	return &Publisher{writer: w}
}

var _ service.EventPublisher = (*Publisher)(nil)

func (p *Publisher) Publish(ctx context.Context, ev service.OrderEvent) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.OrderID),
		Value: b,
	})
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
