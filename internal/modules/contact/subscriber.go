package contact

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/nfrund/folio/internal/pubsub"
)

// MessageSubscriber logs every simulated contact message.
type MessageSubscriber struct {
	subscriber pubsub.Subscriber
	handled    atomic.Int64
}

// NewMessageSubscriber creates a subscriber on sub.
func NewMessageSubscriber(sub pubsub.Subscriber) *MessageSubscriber {
	return &MessageSubscriber{subscriber: sub}
}

// Start subscribes until ctx is cancelled.
func (s *MessageSubscriber) Start(ctx context.Context) error {
	slog.Info("Starting contact message subscriber")
	return pubsub.Subscribe(ctx, s.subscriber, TopicMessageSimulated, s.handle)
}

// Handled returns the number of messages seen.
func (s *MessageSubscriber) Handled() int64 { return s.handled.Load() }

func (s *MessageSubscriber) handle(ctx context.Context, visitorID string, msg MessageSimulated) error {
	s.handled.Add(1)
	slog.Info("Simulated contact message",
		"visitor_id", visitorID,
		"subject", msg.Subject,
		"message_length", msg.Length,
	)
	return nil
}
