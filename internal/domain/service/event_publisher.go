package service

import (
	"context"

	"ngopi/internal/domain/entity"
)

// EventPublisher defines the interface for publishing cafe events to a message queue.
// Publishing is best-effort; a failed publish never fails the originating mutation.
type EventPublisher interface {
	// PublishCafeEvent publishes a cafe change for async processing
	PublishCafeEvent(ctx context.Context, event *entity.CafeEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
