// Package pos holds the in-memory sale builder used by the checkout flow.
// A Cart accumulates line items for one interactive session before they are
// submitted as a sale; it performs no I/O and is owned by a single session.
package pos

import (
	"fmt"
	"posadmin_server/structs/tables"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockExceededError reports an attempt to put more of a product in the
// cart than its last-known stock allows. The cart is left unchanged.
type StockExceededError struct {
	ProductName string
	Stock       int
}

func (e *StockExceededError) Error() string {
	return fmt.Sprintf("cannot add more %s: only %d in stock", e.ProductName, e.Stock)
}

// Entry is one line of the cart: a priced quantity of a single product.
// UnitPrice is a snapshot of the product price; stock is the last-known
// stock quantity bounding Quantity from above.
type Entry struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`

	stock int
}

// Subtotal returns Quantity × UnitPrice. Always computed, never stored.
func (e Entry) Subtotal() decimal.Decimal {
	return e.UnitPrice.Mul(decimal.NewFromInt(int64(e.Quantity)))
}

// Cart is an ordered mapping from product id to entry plus the selected
// customer. All operations are synchronous and total; a failed operation
// leaves the cart exactly as it was.
type Cart struct {
	entries    []*Entry
	index      map[uuid.UUID]*Entry
	customerID *uuid.UUID
}

func New() *Cart {
	return &Cart{
		index: make(map[uuid.UUID]*Entry),
	}
}

// NewForCustomers creates a cart with the customer defaulted to the walk-in
// customer when one exists in the given set.
func NewForCustomers(customers []tables.Customer, walkInName string) *Cart {
	c := New()
	for i := range customers {
		if customers[i].Name == walkInName {
			id := customers[i].ID
			c.customerID = &id
			break
		}
	}
	return c
}

// AddItem puts one unit of the product in the cart. For a product already
// present the quantity grows by one, bounded by the product's current stock;
// exceeding it fails with StockExceededError and the cart is unchanged.
func (c *Cart) AddItem(product *tables.Product) error {
	if entry, ok := c.index[product.ID]; ok {
		if entry.Quantity+1 > product.StockQuantity {
			return &StockExceededError{ProductName: product.Name, Stock: product.StockQuantity}
		}
		entry.Quantity++
		entry.stock = product.StockQuantity
		return nil
	}

	// Callers are expected to pre-filter sold-out products, but guard anyway.
	if product.StockQuantity < 1 {
		return &StockExceededError{ProductName: product.Name, Stock: product.StockQuantity}
	}

	entry := &Entry{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Quantity:  1,
		stock:     product.StockQuantity,
	}
	c.entries = append(c.entries, entry)
	c.index[product.ID] = entry
	return nil
}

// SetQuantity applies a delta to an entry's quantity. A resulting quantity
// of zero or less removes the entry; exceeding the last-known stock fails
// with StockExceededError and the entry is left unchanged. Unknown product
// ids are a no-op.
func (c *Cart) SetQuantity(productID uuid.UUID, delta int) error {
	entry, ok := c.index[productID]
	if !ok {
		return nil
	}

	next := entry.Quantity + delta
	if next <= 0 {
		c.RemoveItem(productID)
		return nil
	}
	if next > entry.stock {
		return &StockExceededError{ProductName: entry.Name, Stock: entry.stock}
	}

	entry.Quantity = next
	return nil
}

// RemoveItem removes an entry unconditionally; no-op if absent
func (c *Cart) RemoveItem(productID uuid.UUID) {
	if _, ok := c.index[productID]; !ok {
		return
	}
	delete(c.index, productID)
	for i := range c.entries {
		if c.entries[i].ProductID == productID {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			break
		}
	}
}

// SetCustomer replaces the selected customer. Existence is validated at
// submission, not here.
func (c *Cart) SetCustomer(customerID uuid.UUID) {
	c.customerID = &customerID
}

// CustomerID returns the selected customer, or nil when none is selected
func (c *Cart) CustomerID() *uuid.UUID {
	return c.customerID
}

// Total returns the sum of all entries' subtotals, recomputed on every call
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, entry := range c.entries {
		total = total.Add(entry.Subtotal())
	}
	return total
}

// Entries returns a copy of the cart lines in insertion order
func (c *Cart) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	for i, entry := range c.entries {
		out[i] = *entry
	}
	return out
}

func (c *Cart) Len() int {
	return len(c.entries)
}

// Clear empties all entries; the selected customer is kept
func (c *Cart) Clear() {
	c.entries = nil
	c.index = make(map[uuid.UUID]*Entry)
}
