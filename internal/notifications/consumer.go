package notifications

import (
	"context"
	"fmt"
	"sync"
	"time"

	"dharma/pkg/logger"

	"github.com/IBM/sarama"
)

type SMSConsumer interface {
	StartConsumers(ctx context.Context, numWorkers int) error
	Stop() error
	HealthCheck(ctx context.Context) error
}

type ConsumerConfig struct {
	Brokers           []string
	GroupID           string
	Topics            []string
	SessionTimeoutMs  int
	HeartbeatMs       int
	RetryBackoffMs    int
	MaxProcessingTime time.Duration
	AutoCommit        bool
	OffsetOldest      bool
}

func DefaultConsumerConfig() *ConsumerConfig {
	return &ConsumerConfig{
		Brokers:           []string{"localhost:9092"},
		GroupID:           "dharma-sms-workers",
		Topics:            []string{"sms-notifications"},
		SessionTimeoutMs:  30000,
		HeartbeatMs:       3000,
		RetryBackoffMs:    100,
		MaxProcessingTime: time.Minute,
		AutoCommit:        true,
		OffsetOldest:      false,
	}
}

type kafkaSMSConsumer struct {
	consumerGroup sarama.ConsumerGroup
	config        *ConsumerConfig
	gateway       GatewaySender
	log           *logger.Logger
	ctx           context.Context
	cancel        context.CancelFunc
	wg            sync.WaitGroup
}

func NewKafkaSMSConsumer(config *ConsumerConfig, gateway GatewaySender) (SMSConsumer, error) {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Consumer.Group.Session.Timeout = time.Duration(config.SessionTimeoutMs) * time.Millisecond
	saramaConfig.Consumer.Group.Heartbeat.Interval = time.Duration(config.HeartbeatMs) * time.Millisecond
	saramaConfig.Consumer.Retry.Backoff = time.Duration(config.RetryBackoffMs) * time.Millisecond
	saramaConfig.Consumer.MaxProcessingTime = config.MaxProcessingTime
	saramaConfig.Consumer.Return.Errors = true

	if config.OffsetOldest {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	} else {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	}

	if config.AutoCommit {
		saramaConfig.Consumer.Offsets.AutoCommit.Enable = true
		saramaConfig.Consumer.Offsets.AutoCommit.Interval = time.Second
	}

	consumerGroup, err := sarama.NewConsumerGroup(config.Brokers, config.GroupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &kafkaSMSConsumer{
		consumerGroup: consumerGroup,
		config:        config,
		gateway:       gateway,
		log:           logger.GetDefault(),
		ctx:           ctx,
		cancel:        cancel,
	}, nil
}

func (c *kafkaSMSConsumer) StartConsumers(ctx context.Context, numWorkers int) error {
	go c.handleErrors()

	for i := 0; i < numWorkers; i++ {
		c.wg.Add(1)
		go func(workerID int) {
			defer c.wg.Done()
			c.runWorker(ctx, workerID)
		}(i)
	}

	c.log.InfoWithContext(ctx, "sms consumer workers started", map[string]interface{}{
		"workers": numWorkers,
		"topics":  c.config.Topics,
	})
	return nil
}

func (c *kafkaSMSConsumer) runWorker(ctx context.Context, workerID int) {
	handler := &smsGroupHandler{
		workerID: workerID,
		gateway:  c.gateway,
		log:      c.log,
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.ctx.Done():
			return
		default:
			if err := c.consumerGroup.Consume(ctx, c.config.Topics, handler); err != nil {
				c.log.ErrorWithContext(ctx, "sms worker consume error", err, map[string]interface{}{
					"worker": workerID,
				})
				time.Sleep(time.Second)
			}
		}
	}
}

func (c *kafkaSMSConsumer) handleErrors() {
	for err := range c.consumerGroup.Errors() {
		c.log.ErrorWithContext(c.ctx, "sms consumer group error", err, nil)
	}
}

func (c *kafkaSMSConsumer) Stop() error {
	c.cancel()
	c.wg.Wait()

	if err := c.consumerGroup.Close(); err != nil {
		return fmt.Errorf("failed to close consumer group: %w", err)
	}
	return nil
}

func (c *kafkaSMSConsumer) HealthCheck(ctx context.Context) error {
	select {
	case <-c.ctx.Done():
		return fmt.Errorf("consumer context is cancelled")
	default:
		if c.gateway == nil {
			return fmt.Errorf("sms gateway not configured")
		}
		return nil
	}
}

type smsGroupHandler struct {
	workerID int
	gateway  GatewaySender
	log      *logger.Logger
}

func (h *smsGroupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *smsGroupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *smsGroupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message := <-claim.Messages():
			if message == nil {
				return nil
			}

			h.processMessage(session.Context(), message)
			// SMS is best-effort: failed deliveries are logged and
			// dropped, never replayed.
			session.MarkMessage(message, "")

		case <-session.Context().Done():
			return nil
		}
	}
}

func (h *smsGroupHandler) processMessage(ctx context.Context, message *sarama.ConsumerMessage) {
	notification, err := SMSNotificationFromJSON(message.Value)
	if err != nil {
		h.log.ErrorWithContext(ctx, "failed to decode sms notification", err, map[string]interface{}{
			"worker":    h.workerID,
			"partition": message.Partition,
			"offset":    message.Offset,
		})
		return
	}

	start := time.Now()
	if err := h.gateway.Send(ctx, notification.Mobile, notification.Message); err != nil {
		h.log.ErrorWithContext(ctx, "sms delivery failed", err, map[string]interface{}{
			"worker": h.workerID,
		})
		return
	}

	h.log.LogSMSDelivered(ctx, notification.Mobile, time.Since(start))
}
