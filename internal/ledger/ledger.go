package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"pizza-orders/internal/models"
)

// Ledger is the append-only list of orders committed during a session.
type Ledger struct {
	orders []*models.Order
	now    func() time.Time
}

// New creates an empty ledger stamped with the wall clock.
func New() *Ledger {
	return NewWithClock(time.Now)
}

// NewWithClock creates an empty ledger using now for creation times.
func NewWithClock(now func() time.Time) *Ledger {
	return &Ledger{now: now}
}

// Append numbers the order and stores it. The order must not be modified afterwards.
func (l *Ledger) Append(order *models.Order) {
	created := l.now().UTC()
	order.CreatedAt = created
	order.Number = models.GenerateOrderNumber(created, len(l.orders)+1)
	l.orders = append(l.orders, order)
}

// Len returns the number of committed orders
func (l *Ledger) Len() int {
	return len(l.orders)
}

// Orders returns the committed orders in commit order.
func (l *Ledger) Orders() []*models.Order {
	out := make([]*models.Order, len(l.orders))
	copy(out, l.orders)
	return out
}

// Total returns the sum of all committed order totals.
func (l *Ledger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, o := range l.orders {
		total = total.Add(o.TotalCost)
	}
	return total
}
