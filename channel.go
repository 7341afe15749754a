package main

import (
	"fmt"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"

	"github.com/wiliafri0-dotcom/sayursegar02/config"
	awspkg "github.com/wiliafri0-dotcom/sayursegar02/pkg/aws"
	"github.com/wiliafri0-dotcom/sayursegar02/sender"
)

// newChannel builds the order channel named by cfg.OrderChannel. The returned
// close func is nil when the channel holds no resources.
func newChannel(cfg config.Config, awsCfg sdkaws.Config, awsErr error) (sender.Channel, func() error, error) {
	switch cfg.OrderChannel {
	case config.ChannelSNS:
		if awsErr != nil {
			return nil, nil, fmt.Errorf("sns channel: %w", awsErr)
		}
		return sender.NewSNSChannel(awspkg.NewSNSClient(awsCfg), cfg.OrderSNSTopicARN), nil, nil
	case config.ChannelKafka:
		ch := sender.NewKafkaChannel(sender.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic))
		return ch, ch.Close, nil
	case config.ChannelWhatsApp:
		return sender.NewWhatsAppChannel(cfg.WhatsAppPhone), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown order channel %q", cfg.OrderChannel)
	}
}
