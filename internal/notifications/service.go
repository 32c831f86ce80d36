package notifications

import (
	"context"
	"fmt"

	"dharma/internal/shared/config"
)

// Service bundles the Kafka producer and the consumer workers behind a
// single start/stop surface for main.
type Service struct {
	Producer SMSProducer
	consumer SMSConsumer
	workers  int
}

func NewService(cfg *config.Config) (*Service, error) {
	producerConfig := DefaultProducerConfig()
	producerConfig.Brokers = cfg.Kafka.Brokers
	producerConfig.Topic = cfg.Kafka.SMSTopic

	producer, err := NewKafkaSMSProducer(producerConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create sms producer: %w", err)
	}

	consumerConfig := DefaultConsumerConfig()
	consumerConfig.Brokers = cfg.Kafka.Brokers
	consumerConfig.GroupID = cfg.Kafka.ConsumerGroupID
	consumerConfig.Topics = []string{cfg.Kafka.SMSTopic}

	consumer, err := NewKafkaSMSConsumer(consumerConfig, NewHTTPGatewaySender(cfg))
	if err != nil {
		producer.Close()
		return nil, fmt.Errorf("failed to create sms consumer: %w", err)
	}

	return &Service{
		Producer: producer,
		consumer: consumer,
		workers:  cfg.Kafka.NumWorkers,
	}, nil
}

func (s *Service) Start(ctx context.Context) error {
	return s.consumer.StartConsumers(ctx, s.workers)
}

func (s *Service) Stop() error {
	if err := s.consumer.Stop(); err != nil {
		return err
	}
	return s.Producer.Close()
}

func (s *Service) HealthCheck(ctx context.Context) error {
	if err := s.Producer.HealthCheck(ctx); err != nil {
		return err
	}
	return s.consumer.HealthCheck(ctx)
}
