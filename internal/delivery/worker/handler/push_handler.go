// Package handler processes Pub/Sub push deliveries for the worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"ngopi/config"
	deliverycontext "ngopi/internal/delivery/context"
	"ngopi/internal/domain/constants"
	"ngopi/internal/domain/entity"
	"ngopi/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler turns cafe change events into push notifications for the
// devices subscribed to the cafe's city topic.
type PushHandler struct {
	verifyPushAuth  bool
	pushEnabled     bool
	topicPrefix     string
	logger          *slog.Logger
	notificationSvc service.NotificationService
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc service.NotificationService
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Google deliveries outside development must present a signed token
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		pushEnabled:     params.Config.Push.Enabled,
		topicPrefix:     params.Config.Push.TopicPrefix,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse cafe event
	var event entity.CafeEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse cafe event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing cafe event",
		slog.String("event_type", event.Type),
		slog.String("cafe_id", event.CafeID.String()),
		slog.String("city", event.City),
	)

	if err := h.processEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process cafe event",
			slog.String("event_type", event.Type),
			slog.String("cafe_id", event.CafeID.String()),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *entity.CafeEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processEvent sends the notification for one cafe event. Events that carry
// no city cannot be routed to a topic and are dropped.
func (h *PushHandler) processEvent(ctx context.Context, event *entity.CafeEvent) error {
	if !h.pushEnabled || h.notificationSvc == nil {
		h.logger.Debug("[Worker] Push notifications disabled, dropping event",
			slog.String("event_type", event.Type),
		)

		return nil
	}

	title, body, ok := notificationContent(event)
	if !ok {
		h.logger.Debug("[Worker] No notification for event type",
			slog.String("event_type", event.Type),
		)

		return nil
	}

	slug := citySlug(event.City)
	if slug == "" {
		return errors.Errorf("event %s for cafe %s has no routable city", event.Type, event.CafeID)
	}

	topic := h.topicPrefix + slug
	data := map[string]string{
		"event_type": event.Type,
		"cafe_id":    event.CafeID.String(),
		"name":       event.Name,
		"city":       event.City,
		"latitude":   fmt.Sprintf("%f", event.Latitude),
		"longitude":  fmt.Sprintf("%f", event.Longitude),
	}

	messageID, err := h.notificationSvc.SendTopicNotification(ctx, topic, title, body, data)
	if err != nil {
		// The provider may recover; let Pub/Sub redeliver.
		return newRetryableError(errors.WithStack(err))
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)
	logger.Info("[Worker] Notification sent",
		slog.String("topic", topic),
		slog.String("message_id", messageID),
	)

	return nil
}

// notificationContent renders the user-facing text for an event. Plain
// updates are too noisy to push; only new and verified listings notify.
func notificationContent(event *entity.CafeEvent) (title, body string, ok bool) {
	place := event.City
	if event.District != "" {
		place = event.District + ", " + event.City
	}

	switch event.Type {
	case entity.EventCafeCreated:
		return fmt.Sprintf("Kafe baru di %s", event.City),
			fmt.Sprintf("%s baru saja ditambahkan di %s", event.Name, place),
			true
	case entity.EventCafeVerified:
		return fmt.Sprintf("Kafe terverifikasi di %s", event.City),
			fmt.Sprintf("%s kini terverifikasi", event.Name),
			true
	default:
		return "", "", false
	}
}

// citySlug normalizes a city name into the FCM topic charset.
func citySlug(city string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(city)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			sb.WriteRune('-')
		}
	}

	return sb.String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this push endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
