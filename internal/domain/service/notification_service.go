package service

import (
	"context"
)

// NotificationService defines the interface for push notification services.
// Delivery is addressed by topic; devices subscribe to the cities they follow.
type NotificationService interface {
	// SendTopicNotification sends one push notification to every device
	// subscribed to the topic. Returns the provider's message ID.
	SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) (string, error)
}
