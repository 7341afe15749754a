// Package sender delivers composed order messages to the channel a human
// operator watches. Delivery is fire-and-forget: nothing is read back.
package sender

import (
	"context"
	"net/url"
	"strings"
	"time"
)

type SendResult struct {
	MessageID string
	// Link is the deep link the client should open, for channels that are
	// completed in the browser.
	Link   string
	SentAt time.Time
}

// Channel accepts one percent-encoded order message. key identifies the
// originating session and is only used for partitioning.
type Channel interface {
	Name() string
	Send(ctx context.Context, key, encoded string) (SendResult, error)
}

// uriComponentUnescapes restores the characters encodeURIComponent leaves as-is
// but url.QueryEscape encodes.
var uriComponentUnescapes = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent percent-encodes s for use as a single query value the
// way browsers' encodeURIComponent does: spaces as %20, !'()* kept.
func EncodeURIComponent(s string) string {
	return uriComponentUnescapes.Replace(url.QueryEscape(s))
}

// decode reverses EncodeURIComponent for channels that carry plain text.
func decode(encoded string) (string, error) {
	return url.QueryUnescape(encoded)
}
