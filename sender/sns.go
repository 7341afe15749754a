package sender

import (
	"context"
	"fmt"
	"time"
)

// SNSPublisher is a minimal interface for publishing messages to SNS. It is
// satisfied by pkg/aws.SNSClient.
type SNSPublisher interface {
	Publish(ctx context.Context, topicArn string, message []byte) error
}

// SNSChannel publishes the plain order text to a topic the vendor's operators
// subscribe to.
type SNSChannel struct {
	publisher SNSPublisher
	topicArn  string
}

func NewSNSChannel(publisher SNSPublisher, topicArn string) *SNSChannel {
	return &SNSChannel{publisher: publisher, topicArn: topicArn}
}

func (c *SNSChannel) Name() string { return "sns" }

func (c *SNSChannel) Send(ctx context.Context, _, encoded string) (SendResult, error) {
	text, err := decode(encoded)
	if err != nil {
		return SendResult{}, fmt.Errorf("decode message: %w", err)
	}
	if err := c.publisher.Publish(ctx, c.topicArn, []byte(text)); err != nil {
		return SendResult{}, err
	}
	now := time.Now()
	return SendResult{MessageID: fmt.Sprintf("sns-%d", now.UnixNano()), SentAt: now}, nil
}
