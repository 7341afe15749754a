package models

// OrderLine is one rendered line of an order message.
type OrderLine struct {
	Name     string
	Quantity int
	Subtotal string
}

// OrderMessage is the text handed to the messaging channel at checkout.
// It is built once and never stored.
type OrderMessage struct {
	Text    string
	Encoded string
	Total   int64
}
