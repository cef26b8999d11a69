package kafka

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"dispatch/internal/pkg/config"
	"dispatch/pkg/logger"
	retrierconfig "dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"

	"github.com/IBM/sarama"
)

const (
	initialInterval = 1 * time.Second
	maxInterval     = 30 * time.Second
	maxElapsedTime  = 2 * time.Minute
	randomization   = 0.5
	multiplier      = 2
)

var ErrTopicNotFound = errors.New("kafka topic not found")

type Consumer struct {
	log     logger.Logger
	client  sarama.ConsumerGroup
	topics  []string
	handler sarama.ConsumerGroupHandler
}

func NewSaramaConfig(
	versionStr string,
	autoCommit bool,
	initialOffset int64,
	rebalanceStrategy sarama.BalanceStrategy,
) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	cfg.Consumer.Offsets.Initial = initialOffset
	cfg.Consumer.Offsets.AutoCommit.Enable = autoCommit
	cfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{rebalanceStrategy}
	cfg.Consumer.Return.Errors = true

	return cfg, nil
}

// ParseBrokers разбирает список брокеров через запятую, пустые элементы отбрасываются.
func ParseBrokers(brokers string) []string {
	result := make([]string, 0, 4)
	for _, broker := range strings.Split(brokers, ",") {
		broker = strings.TrimSpace(broker)
		if broker != "" {
			result = append(result, broker)
		}
	}
	return result
}

func NewConsumer(ctx context.Context, log logger.Logger, cfg *config.Kafka, handler sarama.ConsumerGroupHandler) (*Consumer, error) {
	brokers := ParseBrokers(cfg.Brokers)
	topics := []string{cfg.Topic}

	saramaConfig, err := NewSaramaConfig(
		cfg.Sarama.Version,
		cfg.Sarama.ConsumerOffsetsAutocommit,
		sarama.OffsetOldest,
		sarama.NewBalanceStrategyRoundRobin(),
	)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("group", cfg.ConsumerGroup),
		logger.NewField("topics", topics),
	)

	err = pingKafka(ctx, kafkaLog, brokers, topics, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	client, err := sarama.NewConsumerGroup(brokers, cfg.ConsumerGroup, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &Consumer{
		log:     kafkaLog,
		client:  client,
		topics:  topics,
		handler: handler,
	}, nil
}

// Start блокирует до отмены ctx или ошибки группы. Consume возвращается при каждом
// ребалансе, поэтому вызывается в цикле.
func (c *Consumer) Start(ctx context.Context) error {
	c.log.Info("Kafka consumer starting")

	go c.logGroupErrors(ctx)

	for {
		err := c.client.Consume(ctx, c.topics, c.handler)
		if err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return err
			}
			c.log.With(
				logger.NewField("error", err),
			).Error("Error from consumer")
			return fmt.Errorf("consumer error: %w", err)
		}

		if ctx.Err() != nil {
			c.log.Warn("Context cancelled, stopping consumer")
			return ctx.Err()
		}
	}
}

func (c *Consumer) Close() error {
	return c.client.Close()
}

func (c *Consumer) logGroupErrors(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-c.client.Errors():
			if !ok {
				return
			}
			c.log.With(
				logger.NewField("error", err),
			).Warn("Kafka consumer group error")
		}
	}
}

func pingKafka(ctx context.Context, log logger.Logger, brokers, topics []string, cfg *sarama.Config) error {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil, // все ошибки ретраим
		Notify: func(err error, wait time.Duration) {
			log.With(
				logger.NewField("error", err),
				logger.NewField("retry_in", wait.String()),
			).Warn("Kafka is not ready")
		},
	}

	retrier := backoff_adapter.New(retryConfig)

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.With(
			logger.NewField("attempt", attempt),
		).Info("attempting Kafka connection")

		client, err := sarama.NewClient(brokers, cfg)
		if err != nil {
			return err
		}

		defer func() {
			err := client.Close()
			if err != nil {
				log.With(
					logger.NewField("error", err),
				).Error("failed to close Kafka connection")
			}
		}()

		existing, err := client.Topics()
		if err != nil {
			return err
		}
		return checkTopics(existing, topics)
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("Kafka connection failed after retries")
		return fmt.Errorf("failed to connect to Kafka: %w", err)
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info("Kafka connection established")
	return nil
}

func checkTopics(existing, required []string) error {
	for _, topic := range required {
		if !slices.Contains(existing, topic) {
			return fmt.Errorf("%w: %s", ErrTopicNotFound, topic)
		}
	}
	return nil
}
