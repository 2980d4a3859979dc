package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jimlawless/whereami"
	"github.com/narahe-ltd/recommendation-ai/internal/cfg"
	"github.com/narahe-ltd/recommendation-ai/internal/usecase"
	"github.com/narahe-ltd/recommendation-ai/pkg/e"
	"github.com/narahe-ltd/recommendation-ai/pkg/logger"
	"github.com/segmentio/kafka-go"
)

// Producer публикует обработанные usage-события для downstream-потребителей.
// Публикация best-effort и выполняется после коммита транзакции.
type Producer struct {
	writer *kafka.Writer
	logger logger.Logger
	cfg    *cfg.KafkaCfg
}

type usageEventMessage struct {
	EventID    string `json:"event_id"`
	CustomerID string `json:"customer_id"`
	Action     string `json:"action"`
	Timestamp  int64  `json:"timestamp"`
}

func NewProducer(logger logger.Logger, cfg *cfg.KafkaCfg) (*Producer, error) {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchSize:    10,
		BatchTimeout: 500 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Warnf("Kafka producer error: %s", err.Error())
			}
		},
	}

	return &Producer{
		writer: writer,
		logger: logger,
		cfg:    cfg,
	}, nil
}

// PublishUsageEvent пишет событие с ключом customer_id: события одного
// клиента попадают в одну партицию и сохраняют порядок.
func (p *Producer) PublishUsageEvent(ctx context.Context, req *usecase.PublishUsageEventReq) error {
	value, err := p.GetPayloadBytes(req)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(req.CustomerID),
		Value: value,
	})
}

func (p *Producer) EnsureTopic(timeout time.Duration) error {
	conn, err := kafka.Dial(p.cfg.NetworkMode, p.cfg.Brokers[0])
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions(p.cfg.Topic)
	if err == nil && len(partitions) > 0 {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		err := conn.CreateTopics(kafka.TopicConfig{
			Topic:             p.cfg.Topic,
			NumPartitions:     p.cfg.Partitions,
			ReplicationFactor: p.cfg.ReplicationFactor,
		})
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), fmt.Errorf("failed to create topic %s: %w", p.cfg.Topic, err))
		}
		return nil
	case <-time.After(timeout):
		_ = conn.Close()
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("timeout: %v, topic: %s", timeout, p.cfg.Topic))
	}
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

func (p *Producer) GetPayloadBytes(req *usecase.PublishUsageEventReq) ([]byte, error) {
	msg := usageEventMessage{
		EventID:    req.EventID,
		CustomerID: req.CustomerID,
		Action:     req.Action,
		Timestamp:  req.Timestamp.UnixNano(),
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return data, nil
}
