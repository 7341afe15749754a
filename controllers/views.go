package controllers

import (
	"github.com/wiliafri0-dotcom/sayursegar02/currency"
	"github.com/wiliafri0-dotcom/sayursegar02/models"
)

type productView struct {
	models.Product
	PriceDisplay string `json:"price_display"`
}

func productViews(f *currency.Formatter, products []models.Product) []productView {
	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, productView{Product: p, PriceDisplay: f.Format(p.Price)})
	}
	return views
}

type lineItemView struct {
	models.LineItem
	PriceDisplay    string `json:"price_display"`
	Subtotal        int64  `json:"subtotal"`
	SubtotalDisplay string `json:"subtotal_display"`
}

type cartView struct {
	Items        []lineItemView `json:"items"`
	Total        int64          `json:"total"`
	TotalDisplay string         `json:"total_display"`
	ItemCount    int            `json:"item_count"`
	Size         int            `json:"size"`
}

func newCartView(f *currency.Formatter, ledger models.Ledger) cartView {
	items := ledger.Items()
	view := cartView{
		Items:        make([]lineItemView, 0, len(items)),
		Total:        ledger.Total(),
		TotalDisplay: f.Format(ledger.Total()),
		ItemCount:    ledger.ItemCount(),
		Size:         ledger.Size(),
	}
	for _, item := range items {
		view.Items = append(view.Items, lineItemView{
			LineItem:        item,
			PriceDisplay:    f.Format(item.Price),
			Subtotal:        item.Subtotal(),
			SubtotalDisplay: f.Format(item.Subtotal()),
		})
	}
	return view
}
