package order

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"pizza-orders/internal/logger"
	"pizza-orders/internal/models"
	"pizza-orders/internal/presenter"
	"pizza-orders/internal/prompt"
)

var (
	fulfillmentRule = prompt.MustRule(`$|(?:P|D)`)
	nameRule        = prompt.MustRule(`[A-Z]+$`)
	addressRule     = prompt.MustRule(`[\w /-]+$`)
	phoneRule       = prompt.MustRule(`\d+$`)
	countRule       = prompt.MustRule(`\d$`)
	selectionRule   = prompt.MustRule(`\d\d?$`)
)

const selectionError = "Pizza selection number must correspond to those listed above"

// Settings are the menu and business rules an order is built against.
type Settings struct {
	Catalog        *models.Catalog
	MaxItems       int
	DeliveryCharge decimal.Decimal
}

// Builder walks the customer through the questions that make up one order.
type Builder struct {
	settings  Settings
	input     *prompt.Validator
	logger    *logger.Logger
	requestID string
}

func NewBuilder(settings Settings, input *prompt.Validator, log *logger.Logger, requestID string) *Builder {
	return &Builder{
		settings:  settings,
		input:     input,
		logger:    log,
		requestID: requestID,
	}
}

// Assemble asks for fulfillment, customer details, item count and item
// selections, in that order. It returns the priced order, or nil and the
// signal that interrupted it.
func (b *Builder) Assemble() (*models.Order, prompt.Signal) {
	order := models.NewOrder()

	if sig := b.askFulfillment(order); sig != prompt.None {
		return nil, sig
	}
	if sig := b.askCustomerName(order); sig != prompt.None {
		return nil, sig
	}
	if order.IsDelivery() {
		if sig := b.askDeliveryDetails(order); sig != prompt.None {
			return nil, sig
		}
	}

	count, sig := b.askItemCount()
	if sig != prompt.None {
		return nil, sig
	}

	b.input.Print("\nWhat pizzas would you like to order?\n")
	b.input.Print(presenter.RenderMenu(b.settings.Catalog))
	b.input.Print("\nEnter your selection number for each pizza you want to buy\n")

	for i := 1; i <= count; i++ {
		if sig := b.askSelection(order, i, count); sig != prompt.None {
			return nil, sig
		}
	}

	order.TotalCost = order.CalculateTotalAmount()
	return order, prompt.None
}

func (b *Builder) askFulfillment(order *models.Order) prompt.Signal {
	out := b.input.Request(fulfillmentRule,
		"Pickup or delivery? [Pickup]:",
		"Please enter a 'p' (pickup) or a 'd' (delivery)")
	if !out.Matched() {
		return out.Signal
	}
	if strings.HasPrefix(strings.ToLower(out.Value), "d") {
		order.Fulfillment = models.Delivery
		order.DeliveryCharge = b.settings.DeliveryCharge
	}
	return prompt.None
}

func (b *Builder) askCustomerName(order *models.Order) prompt.Signal {
	out := b.input.Request(nameRule,
		"Enter customer name:",
		"Name must only contain letters")
	if !out.Matched() {
		return out.Signal
	}
	order.CustomerName = out.Value
	return prompt.None
}

func (b *Builder) askDeliveryDetails(order *models.Order) prompt.Signal {
	out := b.input.Request(addressRule,
		"Delivery address:",
		"Address must only contain alphanumeric characters")
	if !out.Matched() {
		return out.Signal
	}
	order.Address = out.Value

	out = b.input.Request(phoneRule,
		"Phone number:",
		"Phone number must only contain numbers")
	if !out.Matched() {
		return out.Signal
	}
	order.Phone = out.Value
	return prompt.None
}

// askItemCount accepts a single digit, then insists on 1..MaxItems.
func (b *Builder) askItemCount() (int, prompt.Signal) {
	maxItems := b.settings.MaxItems
	for {
		out := b.input.Request(countRule,
			"Number of pizzas to order:",
			fmt.Sprintf("Must be a digit, %d or less", maxItems))
		if !out.Matched() {
			return 0, out.Signal
		}

		n, err := strconv.Atoi(out.Value)
		if err == nil && n > 0 && n <= maxItems {
			return n, prompt.None
		}
		b.input.Println(fmt.Sprintf("Must be a digit, %d or less (but more than 0)", maxItems))
	}
}

// askSelection reads a menu number. "0" and numbers past the end of the menu
// pass the pattern but are rejected here.
func (b *Builder) askSelection(order *models.Order, n, count int) prompt.Signal {
	for {
		out := b.input.Request(selectionRule,
			fmt.Sprintf("Pizza #%d of %d:", n, count),
			selectionError)
		if !out.Matched() {
			return out.Signal
		}

		index, err := strconv.Atoi(out.Value)
		if err == nil {
			if item, ok := b.settings.Catalog.At(index); ok {
				order.AddItem(item)
				b.logger.Debug("item_selected", b.requestID, "Item added to order",
					slog.String("item", item.Name),
					slog.Int("index", index),
				)
				return prompt.None
			}
		}
		b.input.Println(selectionError)
	}
}
