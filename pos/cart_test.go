package pos

import (
	"testing"

	"posadmin_server/structs/tables"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeProduct(name, price string, stock int) *tables.Product {
	return &tables.Product{
		ID:            uuid.New(),
		Name:          name,
		Price:         decimal.RequireFromString(price),
		StockQuantity: stock,
	}
}

func TestAddItemCreatesEntryWithSnapshotPrice(t *testing.T) {
	cart := New()
	widget := makeProduct("Widget", "9.99", 5)

	require.NoError(t, cart.AddItem(widget))

	entries := cart.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, widget.ID, entries[0].ProductID)
	assert.Equal(t, 1, entries[0].Quantity)
	assert.True(t, entries[0].UnitPrice.Equal(decimal.RequireFromString("9.99")))

	// Changing the catalog price later must not affect the cart line
	widget.Price = decimal.RequireFromString("19.99")
	assert.True(t, cart.Entries()[0].UnitPrice.Equal(decimal.RequireFromString("9.99")))
}

func TestAddItemIncrementsExistingEntry(t *testing.T) {
	cart := New()
	widget := makeProduct("Widget", "9.99", 5)
	gadget := makeProduct("Gadget", "5.00", 5)

	require.NoError(t, cart.AddItem(widget))
	require.NoError(t, cart.AddItem(widget))
	require.NoError(t, cart.AddItem(gadget))

	require.Equal(t, 2, cart.Len())
	assert.Equal(t, 2, cart.Entries()[0].Quantity)
	assert.True(t, cart.Total().Equal(decimal.RequireFromString("24.98")),
		"expected 24.98, got %s", cart.Total())
}

func TestAddItemRejectsExceedingStock(t *testing.T) {
	cart := New()
	widget := makeProduct("Widget", "1.00", 2)

	require.NoError(t, cart.AddItem(widget))
	require.NoError(t, cart.AddItem(widget))

	err := cart.AddItem(widget)
	var stockErr *StockExceededError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Widget", stockErr.ProductName)
	assert.Equal(t, 2, stockErr.Stock)

	// Cart unchanged after the failed add
	assert.Equal(t, 2, cart.Entries()[0].Quantity)
	assert.True(t, cart.Total().Equal(decimal.RequireFromString("2.00")))
}

func TestAddItemRejectsSoldOutProduct(t *testing.T) {
	cart := New()
	gone := makeProduct("Gone", "3.50", 0)

	err := cart.AddItem(gone)
	var stockErr *StockExceededError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 0, cart.Len())
}

func TestSetQuantityAppliesDelta(t *testing.T) {
	cart := New()
	widget := makeProduct("Widget", "2.00", 10)
	require.NoError(t, cart.AddItem(widget))

	require.NoError(t, cart.SetQuantity(widget.ID, 4))
	assert.Equal(t, 5, cart.Entries()[0].Quantity)

	require.NoError(t, cart.SetQuantity(widget.ID, -2))
	assert.Equal(t, 3, cart.Entries()[0].Quantity)
}

func TestSetQuantityRemovesAtZeroOrBelow(t *testing.T) {
	cart := New()
	widget := makeProduct("Widget", "2.00", 10)
	require.NoError(t, cart.AddItem(widget))
	require.NoError(t, cart.SetQuantity(widget.ID, 2))

	require.NoError(t, cart.SetQuantity(widget.ID, -5))
	assert.Equal(t, 0, cart.Len())
	assert.True(t, cart.Total().IsZero())
}

func TestSetQuantityRejectsExceedingStock(t *testing.T) {
	cart := New()
	widget := makeProduct("Widget", "2.00", 3)
	require.NoError(t, cart.AddItem(widget))

	err := cart.SetQuantity(widget.ID, 5)
	var stockErr *StockExceededError
	require.ErrorAs(t, err, &stockErr)

	// Quantity untouched by the rejected change
	assert.Equal(t, 1, cart.Entries()[0].Quantity)
}

func TestSetQuantityUnknownProductIsNoop(t *testing.T) {
	cart := New()
	require.NoError(t, cart.SetQuantity(uuid.New(), 3))
	assert.Equal(t, 0, cart.Len())
}

func TestRemoveItemKeepsOrder(t *testing.T) {
	cart := New()
	first := makeProduct("First", "1.00", 5)
	second := makeProduct("Second", "2.00", 5)
	third := makeProduct("Third", "3.00", 5)
	require.NoError(t, cart.AddItem(first))
	require.NoError(t, cart.AddItem(second))
	require.NoError(t, cart.AddItem(third))

	cart.RemoveItem(second.ID)

	entries := cart.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "First", entries[0].Name)
	assert.Equal(t, "Third", entries[1].Name)

	// Removing again is a no-op
	cart.RemoveItem(second.ID)
	assert.Equal(t, 2, cart.Len())
}

func TestClearKeepsSelectedCustomer(t *testing.T) {
	cart := New()
	customerID := uuid.New()
	cart.SetCustomer(customerID)
	require.NoError(t, cart.AddItem(makeProduct("Widget", "2.00", 5)))

	cart.Clear()

	assert.Equal(t, 0, cart.Len())
	assert.True(t, cart.Total().IsZero())
	require.NotNil(t, cart.CustomerID())
	assert.Equal(t, customerID, *cart.CustomerID())

	// The cart stays usable after clearing
	require.NoError(t, cart.AddItem(makeProduct("Gadget", "1.00", 5)))
	assert.Equal(t, 1, cart.Len())
}

func TestNewForCustomersDefaultsToWalkIn(t *testing.T) {
	walkIn := tables.Customer{ID: uuid.New(), Name: "Walk-in Customer"}
	other := tables.Customer{ID: uuid.New(), Name: "Alice"}

	cart := NewForCustomers([]tables.Customer{other, walkIn}, "Walk-in Customer")
	require.NotNil(t, cart.CustomerID())
	assert.Equal(t, walkIn.ID, *cart.CustomerID())
}

func TestNewForCustomersWithoutWalkIn(t *testing.T) {
	other := tables.Customer{ID: uuid.New(), Name: "Alice"}

	cart := NewForCustomers([]tables.Customer{other}, "Walk-in Customer")
	assert.Nil(t, cart.CustomerID())
}
