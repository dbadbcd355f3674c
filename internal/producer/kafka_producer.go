package producer

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// Publisher emits bet lifecycle events for downstream consumers. Publishing
// happens after the database commit; delivery is best-effort and never fails
// the user-facing operation.
type Publisher interface {
	PublishBetEvent(ctx context.Context, e BetEvent)
	Close() error
}

type KafkaPublisher struct {
	writer *kafka.Writer
	logger zerolog.Logger
}

func NewKafkaPublisher(brokers, topic string, logger zerolog.Logger) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &KafkaPublisher{writer: w, logger: logger}
}

func (p *KafkaPublisher) PublishBetEvent(ctx context.Context, e BetEvent) {
	e.TsUnixMs = time.Now().UnixMilli()
	b, err := json.Marshal(e)
	if err != nil {
		p.logger.Error().Err(err).Msg("failed to marshal bet event")
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(e.BetID, 10)),
		Value: b,
		Time:  time.Now(),
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error().Err(err).Str("type", e.Type).Int64("bet_id", e.BetID).Msg("failed to publish bet event")
	}
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishBetEvent(context.Context, BetEvent) {}
func (NopPublisher) Close() error                              { return nil }
