// Package presenter formats orders for the console.
package presenter

import (
	"fmt"
	"strings"

	"pizza-orders/internal/models"
)

const (
	nameWidth = 22
	ruleWidth = 73
)

// Banner is printed once when the program starts.
func Banner() string {
	return strings.Join([]string{
		"== Pizza Orders ==",
		"==  Order Manager  ==",
		"Enter 'CC' to cancel order, or 'QQ' to exit program at any time",
		"The first letter of a word is usually only required as input",
		"A word [enclosed] in brackets is the default option",
	}, "\n") + "\n"
}

// RenderMenu lists the catalog with two-digit 1-based selection numbers.
func RenderMenu(c *models.Catalog) string {
	var b strings.Builder
	for i, item := range c.Items() {
		fmt.Fprintf(&b, "%02d: %s\n", i+1, item.Name)
	}
	return b.String()
}

// RenderOrder formats a single order as a receipt.
func RenderOrder(o *models.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "| Name: %s\n", o.CustomerName)
	if o.Number != "" {
		fmt.Fprintf(&b, "| Order number: %s\n", o.Number)
	}
	fmt.Fprintf(&b, "| Order type: %s\n", o.Fulfillment)
	if o.IsDelivery() {
		fmt.Fprintf(&b, "| Delivery address: %s\n", o.Address)
		fmt.Fprintf(&b, "| Customer phone number: %s\n", o.Phone)
	}

	b.WriteString("|\n| Order summary:\t\t\t\tPrice each:\tSubtotal:\n")
	for _, line := range o.Lines {
		fmt.Fprintf(&b, "| \t%dx %-*s\t$%-6s\t\t$%5s\n",
			line.Quantity, nameWidth, fitName(line.Item.Name),
			line.Item.Price.StringFixed(2), line.Subtotal().StringFixed(2))
	}
	if o.IsDelivery() {
		fmt.Fprintf(&b, "| \tDelivery charge\t\t\t\t\t$ %5s\n", o.DeliveryCharge.StringFixed(2))
	}

	fmt.Fprintf(&b, "| %61s--------\n", "")
	fmt.Fprintf(&b, "| %54s Total: $%s\n", "", o.TotalCost.StringFixed(2))
	return b.String()
}

// RenderLedger formats every order, each preceded by a rule line.
func RenderLedger(orders []*models.Order) string {
	var b strings.Builder
	rule := strings.Repeat("-", ruleWidth)
	for _, o := range orders {
		b.WriteString(rule)
		b.WriteByte('\n')
		b.WriteString(RenderOrder(o))
	}
	return b.String()
}

func fitName(name string) string {
	r := []rune(name)
	if len(r) > nameWidth {
		return string(r[:nameWidth])
	}
	return name
}
