package services

import (
	"bytes"
	"fmt"
	"text/template"

	apperrors "github.com/wiliafri0-dotcom/sayursegar02/common/errors"
	"github.com/wiliafri0-dotcom/sayursegar02/currency"
	"github.com/wiliafri0-dotcom/sayursegar02/models"
	"github.com/wiliafri0-dotcom/sayursegar02/sender"
)

const orderTemplate = "Hello, I would like to order the following products:\n\n" +
	"[ORDER LIST]\n" +
	"{{range .Lines}}- {{.Name}} ({{.Quantity}}) - {{.Subtotal}}\n{{end}}" +
	"\n\n---------------------------\n" +
	"Total Product Price: {{.Total}}\n" +
	"Orderer Name: {{.Name}}\n" +
	"Shipping Address: {{.Address}}\n\n" +
	"Please confirm availability and total shipping costs. Thank you."

type orderView struct {
	Lines   []models.OrderLine
	Total   string
	Name    string
	Address string
}

// OrderComposer renders a buyer's cart into the order message.
type OrderComposer struct {
	formatter *currency.Formatter
	tmpl      *template.Template
}

func NewOrderComposer(formatter *currency.Formatter) *OrderComposer {
	return &OrderComposer{
		formatter: formatter,
		tmpl:      template.Must(template.New("order").Parse(orderTemplate)),
	}
}

// Compose refuses with ErrCheckoutRefused when the ledger is empty or the
// identity is not a buyer.
func (c *OrderComposer) Compose(ledger models.Ledger, identity models.Identity) (models.OrderMessage, error) {
	if ledger.IsEmpty() {
		return models.OrderMessage{}, apperrors.ErrCheckoutRefused
	}

	var buyer models.Buyer
	switch id := identity.(type) {
	case models.Buyer:
		buyer = id
	case models.Admin:
		return models.OrderMessage{}, apperrors.ErrCheckoutRefused
	default:
		return models.OrderMessage{}, apperrors.ErrCheckoutRefused
	}

	items := ledger.Items()
	view := orderView{
		Lines:   make([]models.OrderLine, 0, len(items)),
		Total:   c.formatter.Format(ledger.Total()),
		Name:    buyer.Name,
		Address: buyer.Address,
	}
	for _, item := range items {
		view.Lines = append(view.Lines, models.OrderLine{
			Name:     item.Name,
			Quantity: item.Quantity,
			Subtotal: c.formatter.Format(item.Subtotal()),
		})
	}

	var buf bytes.Buffer
	if err := c.tmpl.Execute(&buf, view); err != nil {
		return models.OrderMessage{}, fmt.Errorf("render order: %w", err)
	}

	text := buf.String()
	return models.OrderMessage{
		Text:    text,
		Encoded: sender.EncodeURIComponent(text),
		Total:   ledger.Total(),
	}, nil
}
