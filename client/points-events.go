package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"strconv"
	"time"

	"tipovacka/utils"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type PointsChangeReason string

const (
	MatchEvaluated     PointsChangeReason = "MATCH_EVALUATED"
	MatchReset         PointsChangeReason = "MATCH_RESET"
	PlacementEvaluated PointsChangeReason = "PLACEMENT_EVALUATED"
	PlacementReset     PointsChangeReason = "PLACEMENT_RESET"
	ManualAdjustment   PointsChangeReason = "MANUAL_ADJUSTMENT"
	AggregateSync      PointsChangeReason = "AGGREGATE_SYNC"
)

// PointsChangedEvent announces that the aggregates of UserIDs were recomputed.
type PointsChangedEvent struct {
	Reason    PointsChangeReason `json:"reason"`
	MatchID   *int               `json:"match_id,omitempty"`
	EventID   *int               `json:"event_id,omitempty"`
	UserIDs   []uuid.UUID        `json:"user_ids"`
	Timestamp time.Time          `json:"timestamp"`
}

type EventPublisher interface {
	Publish(ctx context.Context, event *PointsChangedEvent) error
	Close() error
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, event *PointsChangedEvent) error {
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(broker string, topic string) (*KafkaPublisher, error) {
	if broker == "" {
		return nil, fmt.Errorf("KAFKA_BROKER environment variable not set")
	}
	if err := EnsureTopic(broker, topic); err != nil {
		return nil, err
	}
	return &KafkaPublisher{
		writer: kafka.NewWriter(kafka.WriterConfig{
			Brokers:  []string{broker},
			Topic:    topic,
			Balancer: &kafka.Hash{},
		}),
	}, nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, event *PointsChangedEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Reason),
		Value: value,
		Time:  event.Timestamp,
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// EnsureTopic creates the topic on the cluster controller. An existing topic is not an error.
func EnsureTopic(broker string, topic string) error {
	conn, err := kafka.Dial("tcp", broker)
	if err != nil {
		return err
	}
	defer utils.Closer(conn)()

	controller, err := conn.Controller()
	if err != nil {
		return err
	}
	controllerConn, err := kafka.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	if err != nil {
		return err
	}
	defer utils.Closer(controllerConn)()

	return controllerConn.CreateTopics(kafka.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
		ConfigEntries: []kafka.ConfigEntry{
			// 30 days retention
			{
				ConfigName:  "retention.ms",
				ConfigValue: "2592000000",
			},
		},
	})
}
