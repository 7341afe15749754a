package services

import (
	"context"

	"go.uber.org/zap"

	apperrors "github.com/wiliafri0-dotcom/sayursegar02/common/errors"
	"github.com/wiliafri0-dotcom/sayursegar02/common/logger"
	"github.com/wiliafri0-dotcom/sayursegar02/models"
	awspkg "github.com/wiliafri0-dotcom/sayursegar02/pkg/aws"
	"github.com/wiliafri0-dotcom/sayursegar02/sender"
)

// Counter records business events. *awspkg.MetricsClient satisfies it.
type Counter interface {
	RecordCount(ctx context.Context, metricName string, dimensions map[string]string) error
}

// CheckoutResult is what the client needs to finish the order.
type CheckoutResult struct {
	Message models.OrderMessage
	Channel string
	Link    string
}

type CheckoutService interface {
	// Checkout composes the order for the session's cart and hands it to the
	// configured channel. The cart is left as it was.
	Checkout(ctx context.Context, session *models.Session) (CheckoutResult, error)
}

type checkoutServiceImpl struct {
	carts    CartService
	composer *OrderComposer
	channel  sender.Channel
	metrics  Counter
	logger   *zap.Logger
}

// NewCheckoutService wires checkout; metrics may be nil.
func NewCheckoutService(carts CartService, composer *OrderComposer, channel sender.Channel, metrics Counter, logger *zap.Logger) CheckoutService {
	return &checkoutServiceImpl{
		carts:    carts,
		composer: composer,
		channel:  channel,
		metrics:  metrics,
		logger:   logger,
	}
}

func (s *checkoutServiceImpl) Checkout(ctx context.Context, session *models.Session) (CheckoutResult, error) {
	if !session.Identified() {
		return CheckoutResult{}, apperrors.ErrNotIdentified
	}

	ledger, err := s.carts.Get(ctx, session)
	if err != nil {
		return CheckoutResult{}, err
	}

	msg, err := s.composer.Compose(ledger, session.Identity)
	if err != nil {
		logger.WithRequest(ctx, s.logger).Debug("Checkout refused",
			zap.String("session_id", session.ID),
			zap.Int("cart_size", ledger.Size()),
			zap.Error(err),
		)
		return CheckoutResult{}, err
	}

	log := logger.WithRequest(ctx, s.logger).With(
		zap.String("session_id", session.ID),
		zap.String("channel", s.channel.Name()),
	)

	result := CheckoutResult{Message: msg, Channel: s.channel.Name()}
	sent, err := s.channel.Send(ctx, session.ID, msg.Encoded)
	if err != nil {
		// Not retried; the buyer can check out again.
		log.Error("Failed to dispatch order", zap.Error(err))
		s.count(ctx, awspkg.MetricOrderDispatchFailed)
		return result, nil
	}

	result.Link = sent.Link
	log.Info("Order dispatched",
		zap.String("message_id", sent.MessageID),
		zap.Int64("total", msg.Total),
		zap.Int("items", ledger.ItemCount()),
	)
	s.count(ctx, awspkg.MetricOrdersDispatched)
	return result, nil
}

func (s *checkoutServiceImpl) count(ctx context.Context, metric string) {
	if s.metrics == nil {
		return
	}
	dims := map[string]string{"Channel": s.channel.Name()}
	if err := s.metrics.RecordCount(context.WithoutCancel(ctx), metric, dims); err != nil {
		logger.WithRequest(ctx, s.logger).Warn("Failed to record metric", zap.String("metric", metric), zap.Error(err))
	}
}
