package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"posadmin_server/pos"
	"posadmin_server/structs"
	"posadmin_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCustomerLister struct {
	customers []tables.Customer
	err       error
}

func (s *stubCustomerLister) GetCustomers(ctx context.Context) ([]tables.Customer, error) {
	return s.customers, s.err
}

func testCartConfig(ttl time.Duration) *structs.Config {
	return &structs.Config{
		Pos: &structs.PosConfig{
			WalkInCustomerName: "Walk-in Customer",
			LowStockThreshold:  10,
			SessionTTL:         ttl,
		},
	}
}

func newTestCartService(ttl time.Duration, lister customerLister) *CartService {
	return NewCartService(gecho.NewDefaultLogger(), testCartConfig(ttl), lister)
}

func addWidget(t *testing.T, cs *CartService, session string) {
	t.Helper()
	err := cs.WithCart(context.Background(), session, func(cart *pos.Cart) error {
		return cart.AddItem(&tables.Product{
			ID:            uuid.New(),
			Name:          "Widget",
			Price:         decimal.RequireFromString("1.00"),
			StockQuantity: 5,
		})
	})
	require.NoError(t, err)
}

func cartLen(t *testing.T, cs *CartService, session string) int {
	t.Helper()
	var n int
	err := cs.WithCart(context.Background(), session, func(cart *pos.Cart) error {
		n = cart.Len()
		return nil
	})
	require.NoError(t, err)
	return n
}

func TestWithCartReturnsSameCartForSession(t *testing.T) {
	cs := newTestCartService(time.Hour, nil)

	addWidget(t, cs, "register-1")
	addWidget(t, cs, "register-1")

	assert.Equal(t, 2, cartLen(t, cs, "register-1"))
}

func TestSessionsAreIsolated(t *testing.T) {
	cs := newTestCartService(time.Hour, nil)

	addWidget(t, cs, "register-1")

	assert.Equal(t, 1, cartLen(t, cs, "register-1"))
	assert.Equal(t, 0, cartLen(t, cs, "register-2"))
}

func TestNewCartDefaultsToWalkInCustomer(t *testing.T) {
	walkIn := tables.Customer{ID: uuid.New(), Name: "Walk-in Customer"}
	lister := &stubCustomerLister{customers: []tables.Customer{
		{ID: uuid.New(), Name: "Alice"},
		walkIn,
	}}
	cs := newTestCartService(time.Hour, lister)

	var customerID *uuid.UUID
	err := cs.WithCart(context.Background(), "register-1", func(cart *pos.Cart) error {
		customerID = cart.CustomerID()
		return nil
	})
	require.NoError(t, err)

	require.NotNil(t, customerID)
	assert.Equal(t, walkIn.ID, *customerID)
}

func TestNewCartToleratesCustomerLookupFailure(t *testing.T) {
	lister := &stubCustomerLister{err: errors.New("db down")}
	cs := newTestCartService(time.Hour, lister)

	var customerID *uuid.UUID
	err := cs.WithCart(context.Background(), "register-1", func(cart *pos.Cart) error {
		customerID = cart.CustomerID()
		return nil
	})
	require.NoError(t, err)
	assert.Nil(t, customerID)
}

func TestResetDiscardsSession(t *testing.T) {
	cs := newTestCartService(time.Hour, nil)
	addWidget(t, cs, "register-1")

	cs.Reset("register-1")

	assert.Equal(t, 0, cartLen(t, cs, "register-1"))
}

func TestStaleSessionsAreEvicted(t *testing.T) {
	cs := newTestCartService(time.Millisecond, nil)

	addWidget(t, cs, "register-1")
	time.Sleep(5 * time.Millisecond)

	// Touching any session triggers eviction of expired ones
	assert.Equal(t, 0, cartLen(t, cs, "register-2"))
	assert.Equal(t, 0, cartLen(t, cs, "register-1"))
}

func TestZeroTTLDisablesEviction(t *testing.T) {
	cs := newTestCartService(0, nil)

	addWidget(t, cs, "register-1")
	time.Sleep(2 * time.Millisecond)

	assert.Equal(t, 1, cartLen(t, cs, "register-1"))
}
