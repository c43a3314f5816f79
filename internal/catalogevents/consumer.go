package catalogevents

import (
	"context"
	"fmt"
	"time"

	"cinepulse/internal/shared/config"
	"cinepulse/internal/shared/constants"
	"cinepulse/pkg/cache"
	"cinepulse/pkg/logger"

	"github.com/IBM/sarama"
)

// CacheInvalidator consumes catalog events and clears the affected cache
// entries, so writes made through another instance are not served stale.
type CacheInvalidator struct {
	group sarama.ConsumerGroup
	topic string
	cache cache.Service
	log   *logger.Logger
}

func NewCacheInvalidator(cfg config.KafkaConfig, cacheService cache.Service) (*CacheInvalidator, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Consumer.Group.Session.Timeout = 30 * time.Second
	saramaConfig.Consumer.Group.Heartbeat.Interval = 3 * time.Second
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = true
	saramaConfig.Consumer.Offsets.AutoCommit.Interval = time.Second
	saramaConfig.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.ConsumerGroup, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &CacheInvalidator{
		group: group,
		topic: cfg.CatalogTopic,
		cache: cacheService,
		log:   logger.GetDefault(),
	}, nil
}

// Run consumes until ctx is cancelled.
func (ci *CacheInvalidator) Run(ctx context.Context) {
	go func() {
		for err := range ci.group.Errors() {
			ci.log.WithError(err).Error("Catalog consumer group error")
		}
	}()

	handler := &invalidationHandler{cache: ci.cache, log: ci.log}
	for {
		if err := ci.group.Consume(ctx, []string{ci.topic}, handler); err != nil {
			ci.log.WithError(err).Error("Catalog consumer stopped consuming")
			select {
			case <-ctx.Done():
			case <-time.After(time.Second):
			}
		}
		if ctx.Err() != nil {
			return
		}
	}
}

func (ci *CacheInvalidator) Close() error {
	if err := ci.group.Close(); err != nil {
		return fmt.Errorf("failed to close consumer group: %w", err)
	}
	return nil
}

// invalidationHandler implements sarama.ConsumerGroupHandler
type invalidationHandler struct {
	cache cache.Service
	log   *logger.Logger
}

func (h *invalidationHandler) Setup(sarama.ConsumerGroupSession) error { return nil }

func (h *invalidationHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *invalidationHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			if err := h.handle(session.Context(), message); err != nil {
				h.log.WithError(err).Warn("Skipping catalog event", "offset", message.Offset)
			}
			// malformed events are skipped, never retried
			session.MarkMessage(message, "")

		case <-session.Context().Done():
			return nil
		}
	}
}

func (h *invalidationHandler) handle(ctx context.Context, message *sarama.ConsumerMessage) error {
	event, err := FromJSON(message.Value)
	if err != nil {
		return fmt.Errorf("failed to decode catalog event: %w", err)
	}

	patterns := constants.InvalidationPatterns(event.Entity)
	if len(patterns) == 0 {
		return fmt.Errorf("unknown catalog entity %q", event.Entity)
	}

	cache.Invalidate(ctx, h.cache, patterns...)
	h.log.DebugWithContext(ctx, "Cache invalidated from catalog event", map[string]interface{}{
		"type":      string(event.Type),
		"entity_id": event.EntityID,
	})
	return nil
}
