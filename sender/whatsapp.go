package sender

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

const whatsAppSendURL = "https://api.whatsapp.com/send"

// WhatsAppChannel turns the message into a WhatsApp deep link. The browser
// opens the link; the vendor confirms the order by hand.
type WhatsAppChannel struct {
	phone string
	now   func() time.Time
}

// NewWhatsAppChannel creates a channel addressed to phone, or to a contact
// chosen by the user when phone is empty.
func NewWhatsAppChannel(phone string) *WhatsAppChannel {
	return &WhatsAppChannel{phone: phone, now: time.Now}
}

func (w *WhatsAppChannel) Name() string { return "whatsapp" }

func (w *WhatsAppChannel) Send(_ context.Context, _, encoded string) (SendResult, error) {
	if encoded == "" {
		return SendResult{}, fmt.Errorf("empty message")
	}

	link := whatsAppSendURL + "?"
	if w.phone != "" {
		link += "phone=" + url.QueryEscape(w.phone) + "&"
	}
	link += "text=" + encoded

	sentAt := w.now()
	return SendResult{
		MessageID: fmt.Sprintf("whatsapp-%d", sentAt.UnixNano()),
		Link:      link,
		SentAt:    sentAt,
	}, nil
}
