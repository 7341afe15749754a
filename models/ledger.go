package models

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// MaxQuantity bounds the quantity of a single line item so totals stay
// within int64.
const MaxQuantity = 999

// LineItem is a product snapshot paired with a quantity between one and
// MaxQuantity.
type LineItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Category  Category  `json:"category"`
	Price     int64     `json:"price"`
	ImageURL  string    `json:"image_url"`
	Quantity  int       `json:"quantity"`
}

// Subtotal is Price × Quantity.
func (li LineItem) Subtotal() int64 {
	return li.Price * int64(li.Quantity)
}

// Ledger is the cart: line items in order of first addition, at most one per
// product. Ledger is a value; every operation returns a new Ledger and never
// touches the receiver's items.
type Ledger struct {
	items []LineItem
}

// NewLedger builds a ledger from items, enforcing the ledger invariants.
func NewLedger(items []LineItem) (Ledger, error) {
	seen := make(map[uuid.UUID]struct{}, len(items))
	for _, it := range items {
		if it.Quantity < 1 {
			return Ledger{}, fmt.Errorf("line item %s: quantity %d below 1", it.ProductID, it.Quantity)
		}
		if it.Quantity > MaxQuantity {
			return Ledger{}, fmt.Errorf("line item %s: quantity %d above %d", it.ProductID, it.Quantity, MaxQuantity)
		}
		if _, dup := seen[it.ProductID]; dup {
			return Ledger{}, fmt.Errorf("line item %s: duplicate product", it.ProductID)
		}
		seen[it.ProductID] = struct{}{}
	}
	return Ledger{items: append([]LineItem(nil), items...)}, nil
}

func (l Ledger) indexOf(productID uuid.UUID) int {
	for i, it := range l.items {
		if it.ProductID == productID {
			return i
		}
	}
	return -1
}

// Add merges quantity into the product's line item, or appends a new one.
// Callers must reject non-positive quantities first. The merged quantity is
// capped at MaxQuantity; use CanAdd to refuse instead.
func (l Ledger) Add(p Product, quantity int) Ledger {
	quantity = min(quantity, MaxQuantity)
	items := append([]LineItem(nil), l.items...)
	if i := l.indexOf(p.ID); i >= 0 {
		items[i].Quantity = min(items[i].Quantity+quantity, MaxQuantity)
		return Ledger{items: items}
	}
	return Ledger{items: append(items, LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price,
		ImageURL:  p.ImageURL,
		Quantity:  quantity,
	})}
}

// CanAdd reports whether adding quantity units of productID keeps the line
// item within MaxQuantity.
func (l Ledger) CanAdd(productID uuid.UUID, quantity int) bool {
	if quantity < 1 || quantity > MaxQuantity {
		return false
	}
	current := 0
	if i := l.indexOf(productID); i >= 0 {
		current = l.items[i].Quantity
	}
	return current <= MaxQuantity-quantity
}

// UpdateQuantity replaces the quantity of a line item. Quantities outside
// 1..MaxQuantity and unknown products leave the ledger unchanged.
func (l Ledger) UpdateQuantity(productID uuid.UUID, quantity int) Ledger {
	if quantity < 1 || quantity > MaxQuantity {
		return l
	}
	i := l.indexOf(productID)
	if i < 0 {
		return l
	}
	items := append([]LineItem(nil), l.items...)
	items[i].Quantity = quantity
	return Ledger{items: items}
}

// Remove drops the product's line item if present.
func (l Ledger) Remove(productID uuid.UUID) Ledger {
	i := l.indexOf(productID)
	if i < 0 {
		return l
	}
	items := make([]LineItem, 0, len(l.items)-1)
	items = append(items, l.items[:i]...)
	items = append(items, l.items[i+1:]...)
	return Ledger{items: items}
}

// Total is the sum of every line subtotal.
func (l Ledger) Total() int64 {
	var total int64
	for _, it := range l.items {
		total += it.Subtotal()
	}
	return total
}

// ItemCount is the number of units in the cart.
func (l Ledger) ItemCount() int {
	n := 0
	for _, it := range l.items {
		n += it.Quantity
	}
	return n
}

// Size is the number of distinct line items.
func (l Ledger) Size() int {
	return len(l.items)
}

func (l Ledger) IsEmpty() bool {
	return len(l.items) == 0
}

// Items returns a copy of the line items in ledger order.
func (l Ledger) Items() []LineItem {
	return append([]LineItem(nil), l.items...)
}

// Get returns the line item for productID.
func (l Ledger) Get(productID uuid.UUID) (LineItem, bool) {
	if i := l.indexOf(productID); i >= 0 {
		return l.items[i], true
	}
	return LineItem{}, false
}

func (l Ledger) MarshalJSON() ([]byte, error) {
	items := l.items
	if items == nil {
		items = []LineItem{}
	}
	return json.Marshal(items)
}

func (l *Ledger) UnmarshalJSON(data []byte) error {
	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	decoded, err := NewLedger(items)
	if err != nil {
		return err
	}
	*l = decoded
	return nil
}
