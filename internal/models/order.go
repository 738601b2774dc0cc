package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// FulfillmentType represents how an order reaches the customer
type FulfillmentType string

const (
	Pickup   FulfillmentType = "pickup"
	Delivery FulfillmentType = "delivery"
)

// String returns the label used on receipts
func (f FulfillmentType) String() string {
	if f == Delivery {
		return "Delivery"
	}
	return "Pickup"
}

// OrderLine is one distinct menu item and its quantity within an order
type OrderLine struct {
	Item     *MenuItem
	Quantity int
}

// Subtotal returns unit price times quantity
func (l OrderLine) Subtotal() decimal.Decimal {
	return l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Order represents a customer order taken during the session
type Order struct {
	Number       string
	CreatedAt    time.Time
	Fulfillment  FulfillmentType
	CustomerName string
	Address      string
	Phone        string
	Lines        []OrderLine
	// DeliveryCharge is the surcharge applied when Fulfillment is Delivery.
	DeliveryCharge decimal.Decimal
	TotalCost      decimal.Decimal
}

// NewOrder returns an empty pickup order
func NewOrder() *Order {
	return &Order{Fulfillment: Pickup}
}

// IsDelivery reports whether address, phone and the delivery charge apply
func (o *Order) IsDelivery() bool {
	return o.Fulfillment == Delivery
}

// AddItem records one more unit of item, keeping a single line per item
func (o *Order) AddItem(item *MenuItem) {
	for i := range o.Lines {
		if o.Lines[i].Item.Name == item.Name {
			o.Lines[i].Quantity++
			return
		}
	}
	o.Lines = append(o.Lines, OrderLine{Item: item, Quantity: 1})
}

// ItemCount returns the number of units across all lines
func (o *Order) ItemCount() int {
	count := 0
	for _, line := range o.Lines {
		count += line.Quantity
	}
	return count
}

// CalculateTotalAmount sums line subtotals and adds the delivery charge for delivery orders
func (o *Order) CalculateTotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, line := range o.Lines {
		total = total.Add(line.Subtotal())
	}
	if o.IsDelivery() {
		total = total.Add(o.DeliveryCharge)
	}
	return total
}

// GenerateOrderNumber generates an order number in format ORD_YYYYMMDD_NNN
func GenerateOrderNumber(date time.Time, sequence int) string {
	dateStr := date.Format("20060102")
	return fmt.Sprintf("ORD_%s_%03d", dateStr, sequence)
}
