package presenter

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizza-orders/internal/models"
)

func catalog() *models.Catalog {
	return models.NewCatalog([]models.MenuItem{
		{Name: "Seafood Deluxe", Price: decimal.RequireFromString("13.5")},
		{Name: "Hawaiian", Price: decimal.RequireFromString("8.5")},
		{Name: "An Extremely Long Pizza Name Indeed", Price: decimal.RequireFromString("20")},
	})
}

func sampleOrder(fulfillment models.FulfillmentType) *models.Order {
	c := catalog()
	hawaiian, _ := c.At(1)
	seafood, _ := c.At(2)

	o := models.NewOrder()
	o.Number = "ORD_20240309_001"
	o.CustomerName = "Alice"
	o.Fulfillment = fulfillment
	if fulfillment == models.Delivery {
		o.Address = "12 Queen St"
		o.Phone = "0211234567"
		o.DeliveryCharge = decimal.RequireFromString("3")
	}
	o.AddItem(hawaiian)
	o.AddItem(hawaiian)
	o.AddItem(seafood)
	o.TotalCost = o.CalculateTotalAmount()
	return o
}

func TestRenderMenu(t *testing.T) {
	got := RenderMenu(catalog())
	assert.Equal(t, "01: Hawaiian\n02: Seafood Deluxe\n03: An Extremely Long Pizza Name Indeed\n", got)
}

func TestRenderOrder_Pickup(t *testing.T) {
	got := RenderOrder(sampleOrder(models.Pickup))
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")

	require.Len(t, lines, 9)
	assert.Equal(t, "| Name: Alice", lines[0])
	assert.Equal(t, "| Order number: ORD_20240309_001", lines[1])
	assert.Equal(t, "| Order type: Pickup", lines[2])
	assert.Equal(t, "|", lines[3])
	assert.Equal(t, "| Order summary:\t\t\t\tPrice each:\tSubtotal:", lines[4])
	assert.Equal(t, "| \t2x Hawaiian              \t$8.50  \t\t$17.00", lines[5])
	assert.Equal(t, "| \t1x Seafood Deluxe        \t$13.50 \t\t$13.50", lines[6])
	assert.Equal(t, "| "+strings.Repeat(" ", 61)+"--------", lines[7])
	assert.Equal(t, "| "+strings.Repeat(" ", 54)+" Total: $30.50", lines[8])
	assert.NotContains(t, got, "Delivery")
}

func TestRenderOrder_Delivery(t *testing.T) {
	got := RenderOrder(sampleOrder(models.Delivery))

	assert.Contains(t, got, "| Order type: Delivery\n")
	assert.Contains(t, got, "| Delivery address: 12 Queen St\n")
	assert.Contains(t, got, "| Customer phone number: 0211234567\n")
	assert.Contains(t, got, "| \tDelivery charge\t\t\t\t\t$  3.00\n")
	assert.True(t, strings.HasSuffix(got, " Total: $33.50\n"))
}

func TestRenderOrder_TruncatesLongNames(t *testing.T) {
	c := catalog()
	long, _ := c.At(3)
	o := models.NewOrder()
	o.CustomerName = "Bob"
	o.AddItem(long)
	o.TotalCost = o.CalculateTotalAmount()

	got := RenderOrder(o)
	assert.Contains(t, got, "1x An Extremely Long Pizz\t$20.00")
	assert.NotContains(t, got, "Order number")
}

func TestRenderLedger(t *testing.T) {
	orders := []*models.Order{sampleOrder(models.Pickup), sampleOrder(models.Delivery)}
	rule := strings.Repeat("-", 73) + "\n"

	got := RenderLedger(orders)

	assert.Equal(t, 2, strings.Count(got, rule))
	assert.True(t, strings.HasPrefix(got, rule+"| Name: Alice"))
	assert.Equal(t, rule+RenderOrder(orders[0])+rule+RenderOrder(orders[1]), got)
}

func TestRenderLedger_Empty(t *testing.T) {
	assert.Empty(t, RenderLedger(nil))
}

func TestBanner(t *testing.T) {
	b := Banner()
	assert.Contains(t, b, "'CC' to cancel order")
	assert.Contains(t, b, "'QQ' to exit")
	assert.True(t, strings.HasSuffix(b, "\n"))
}
