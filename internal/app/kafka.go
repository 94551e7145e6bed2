package app

import (
	"go.uber.org/dig"

	"shiphub/internal/config"
	"shiphub/internal/logx"
	"shiphub/internal/service/tracking"
	"shiphub/internal/transport/kafka"
)

// registerKafka provides the request event publisher and the delivery event
// consumer. Both are nil when no brokers are configured.
func registerKafka(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config) (*kafka.Publisher, error) {
			if !cfg.Kafka.Enabled() {
				return nil, nil
			}
			return kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.RequestEventsTopic)
		},
		newRetryingPublisher,
		func(cfg *config.Config, logger logx.Logger, p *tracking.Processor) (*kafka.Consumer, error) {
			if !cfg.Kafka.Enabled() {
				return nil, nil
			}
			return kafka.NewConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.DeliveryEventsTopic, p.Handle)
		},
	)
}

func newRetryingPublisher(p *kafka.Publisher, cfg *config.Config, m *appMetrics, logger logx.Logger) *kafka.RetryingPublisher {
	if p == nil {
		logger.Warn("kafka brokers not configured, request events are disabled")
		return nil
	}
	return kafka.NewRetryingPublisher(p, logger, m.publishRetries, kafka.RetryConfig{
		MaxAttempts: cfg.Publish.MaxAttempts,
		BaseDelay:   cfg.Publish.BaseDelay,
		MaxDelay:    cfg.Publish.MaxDelay,
	})
}
