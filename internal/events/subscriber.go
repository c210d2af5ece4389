package events

import (
	"context"
	"fmt"

	"cloud.google.com/go/pubsub"
	"github.com/castlemilk/bankroll/internal/service"
	"github.com/rs/zerolog"
)

// maxOutstandingMessages bounds concurrent recomputations per instance.
const maxOutstandingMessages = 10

// Subscriber consumes document-change messages from a Pub/Sub subscription.
type Subscriber struct {
	sub     *pubsub.Subscription
	handler ChangeHandler
	logger  zerolog.Logger
}

// NewSubscriber creates a Subscriber on subscriptionID
func NewSubscriber(client *pubsub.Client, subscriptionID string, handler ChangeHandler, logger zerolog.Logger) *Subscriber {
	sub := client.Subscription(subscriptionID)
	sub.ReceiveSettings.MaxOutstandingMessages = maxOutstandingMessages

	return &Subscriber{
		sub:     sub,
		handler: handler,
		logger:  logger.With().Str("component", "Subscriber").Str("subscription", subscriptionID).Logger(),
	}
}

// Run receives messages until ctx is done.
func (s *Subscriber) Run(ctx context.Context) error {
	s.logger.Info().Msg("receiving change events")
	if err := s.sub.Receive(ctx, s.receive); err != nil {
		return fmt.Errorf("receive from subscription: %w", err)
	}
	return nil
}

// receive always acks: recomputation failures are not retried and the next
// change repairs the state.
func (s *Subscriber) receive(ctx context.Context, msg *pubsub.Message) {
	logger := s.logger.With().Str("message_id", msg.ID).Logger()
	ctx = logger.WithContext(ctx)

	handleMessage(ctx, s.handler, msg.Attributes, msg.Data)
	msg.Ack()
}

func handleMessage(ctx context.Context, handler ChangeHandler, attributes map[string]string, data []byte) service.Outcome {
	path, ok := DocumentPath(attributes, data)
	if !ok {
		zerolog.Ctx(ctx).Warn().Msg("change event without document path")
		return service.OutcomeIgnored
	}
	return handler.HandleChange(ctx, path)
}
