package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"posadmin_server/pos"
	"posadmin_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decrementCall struct {
	productID uuid.UUID
	quantity  int
}

// recordingRepo records every repository call so tests can assert on the
// exact write sequence of the sale workflow.
type recordingRepo struct {
	insertSaleErr  error
	insertItemsErr error
	deleteSaleErr  error
	decrementErr   map[uuid.UUID]error

	insertedSale  *tables.Sale
	insertedItems []tables.SaleItem
	deletedSales  []uuid.UUID
	decrements    []decrementCall
}

func (r *recordingRepo) InsertSale(ctx context.Context, sale *tables.Sale) (*tables.Sale, error) {
	if r.insertSaleErr != nil {
		return nil, r.insertSaleErr
	}
	r.insertedSale = sale
	return sale, nil
}

func (r *recordingRepo) InsertSaleItems(ctx context.Context, items []tables.SaleItem) error {
	if r.insertItemsErr != nil {
		return r.insertItemsErr
	}
	r.insertedItems = items
	return nil
}

func (r *recordingRepo) DeleteSale(ctx context.Context, saleID uuid.UUID) error {
	r.deletedSales = append(r.deletedSales, saleID)
	return r.deleteSaleErr
}

func (r *recordingRepo) DecrementStock(ctx context.Context, productID uuid.UUID, quantity int) error {
	r.decrements = append(r.decrements, decrementCall{productID: productID, quantity: quantity})
	if err, ok := r.decrementErr[productID]; ok {
		return err
	}
	return nil
}

func newTestSaleService(repo SaleRepository) *SaleService {
	return NewSaleService(gecho.NewDefaultLogger(), nil, repo, nil, nil)
}

func entry(name, price string, quantity int) pos.Entry {
	return pos.Entry{
		ProductID: uuid.New(),
		Name:      name,
		UnitPrice: decimal.RequireFromString(price),
		Quantity:  quantity,
	}
}

func TestProcessSaleRejectsEmptyCart(t *testing.T) {
	repo := &recordingRepo{}
	service := newTestSaleService(repo)
	customerID := uuid.New()

	result := service.ProcessSale(context.Background(), &customerID, decimal.Zero, nil)

	assert.Equal(t, SaleAborted, result.Status)
	assert.Equal(t, CodeEmptyCart, result.Code)
	assert.False(t, result.OK())

	// No write may happen for a rejected submission
	assert.Nil(t, repo.insertedSale)
	assert.Nil(t, repo.insertedItems)
	assert.Empty(t, repo.deletedSales)
	assert.Empty(t, repo.decrements)
}

func TestProcessSaleRejectsMissingCustomer(t *testing.T) {
	repo := &recordingRepo{}
	service := newTestSaleService(repo)

	items := []pos.Entry{entry("Widget", "10.00", 1)}
	result := service.ProcessSale(context.Background(), nil, decimal.RequireFromString("10.00"), items)

	assert.Equal(t, SaleAborted, result.Status)
	assert.Equal(t, CodeNoCustomer, result.Code)
	assert.Nil(t, repo.insertedSale)
	assert.Empty(t, repo.decrements)
}

func TestProcessSaleHeaderInsertFailureStopsWorkflow(t *testing.T) {
	repo := &recordingRepo{insertSaleErr: errors.New("connection refused")}
	service := newTestSaleService(repo)
	customerID := uuid.New()

	items := []pos.Entry{entry("Widget", "10.00", 1)}
	result := service.ProcessSale(context.Background(), &customerID, decimal.RequireFromString("10.00"), items)

	assert.Equal(t, SaleFailed, result.Status)
	assert.Equal(t, CodeSaleCreationFailed, result.Code)

	// Nothing after the failed header insert runs
	assert.Nil(t, repo.insertedItems)
	assert.Empty(t, repo.deletedSales)
	assert.Empty(t, repo.decrements)
}

func TestProcessSaleItemsFailureCompensatesHeader(t *testing.T) {
	repo := &recordingRepo{insertItemsErr: errors.New("batch insert failed")}
	service := newTestSaleService(repo)
	customerID := uuid.New()

	items := []pos.Entry{entry("Widget", "10.00", 2)}
	result := service.ProcessSale(context.Background(), &customerID, decimal.RequireFromString("20.00"), items)

	assert.Equal(t, SaleFailed, result.Status)
	assert.Equal(t, CodeSaleItemsFailed, result.Code)

	// Exactly one compensating delete, targeting the inserted header
	require.NotNil(t, repo.insertedSale)
	require.Len(t, repo.deletedSales, 1)
	assert.Equal(t, repo.insertedSale.ID, repo.deletedSales[0])

	// No stock movement for a sale that did not commit
	assert.Empty(t, repo.decrements)
}

func TestProcessSaleCompensationFailureStillReportsItemsFailure(t *testing.T) {
	repo := &recordingRepo{
		insertItemsErr: errors.New("batch insert failed"),
		deleteSaleErr:  errors.New("delete also failed"),
	}
	service := newTestSaleService(repo)
	customerID := uuid.New()

	items := []pos.Entry{entry("Widget", "10.00", 1)}
	result := service.ProcessSale(context.Background(), &customerID, decimal.RequireFromString("10.00"), items)

	// The original failure wins; the orphan header is logged, not surfaced
	assert.Equal(t, SaleFailed, result.Status)
	assert.Equal(t, CodeSaleItemsFailed, result.Code)
	require.Len(t, repo.deletedSales, 1)
}

func TestProcessSaleSuccessWritesHeaderItemsAndStock(t *testing.T) {
	repo := &recordingRepo{}
	service := newTestSaleService(repo)
	customerID := uuid.New()

	widget := entry("Widget", "10.00", 2)
	result := service.ProcessSale(context.Background(), &customerID, decimal.RequireFromString("20.00"), []pos.Entry{widget})

	require.Equal(t, SaleSucceeded, result.Status)
	assert.True(t, result.OK())
	require.NotNil(t, result.Sale)

	assert.Equal(t, customerID, result.Sale.CustomerID)
	assert.True(t, result.Sale.TotalAmount.Equal(decimal.RequireFromString("20.00")))
	assert.WithinDuration(t, time.Now(), result.Sale.SaleDate, time.Minute)

	require.Len(t, repo.insertedItems, 1)
	item := repo.insertedItems[0]
	assert.Equal(t, result.Sale.ID, item.SaleID)
	assert.Equal(t, widget.ProductID, item.ProductID)
	assert.Equal(t, 2, item.Quantity)
	assert.True(t, item.UnitPrice.Equal(decimal.RequireFromString("10.00")))

	require.Len(t, repo.decrements, 1)
	assert.Equal(t, widget.ProductID, repo.decrements[0].productID)
	assert.Equal(t, 2, repo.decrements[0].quantity)

	assert.Empty(t, repo.deletedSales)
}

func TestProcessSaleDecrementFailureDoesNotFailSale(t *testing.T) {
	first := entry("First", "1.00", 1)
	second := entry("Second", "2.00", 3)
	third := entry("Third", "3.00", 2)

	repo := &recordingRepo{
		decrementErr: map[uuid.UUID]error{
			first.ProductID:  errors.New("decrement failed"),
			second.ProductID: errors.New("decrement failed"),
			third.ProductID:  errors.New("decrement failed"),
		},
	}
	service := newTestSaleService(repo)
	customerID := uuid.New()

	result := service.ProcessSale(context.Background(), &customerID, decimal.RequireFromString("13.00"),
		[]pos.Entry{first, second, third})

	// Stock drift is logged, the sale stands
	assert.Equal(t, SaleSucceeded, result.Status)

	// Every entry's decrement was attempted once, in order
	require.Len(t, repo.decrements, 3)
	assert.Equal(t, first.ProductID, repo.decrements[0].productID)
	assert.Equal(t, second.ProductID, repo.decrements[1].productID)
	assert.Equal(t, third.ProductID, repo.decrements[2].productID)
}

func TestCheckoutClearsCartOnSuccessOnly(t *testing.T) {
	repo := &recordingRepo{}
	service := newTestSaleService(repo)

	cart := pos.New()
	cart.SetCustomer(uuid.New())
	require.NoError(t, cart.AddItem(&tables.Product{
		ID:            uuid.New(),
		Name:          "Widget",
		Price:         decimal.RequireFromString("9.99"),
		StockQuantity: 5,
	}))

	result := service.Checkout(context.Background(), cart)
	require.Equal(t, SaleSucceeded, result.Status)
	assert.Equal(t, 0, cart.Len())

	// Customer selection survives the clear for the next sale
	assert.NotNil(t, cart.CustomerID())
}

func TestCheckoutKeepsCartOnFailure(t *testing.T) {
	repo := &recordingRepo{insertItemsErr: errors.New("batch insert failed")}
	service := newTestSaleService(repo)

	cart := pos.New()
	cart.SetCustomer(uuid.New())
	require.NoError(t, cart.AddItem(&tables.Product{
		ID:            uuid.New(),
		Name:          "Widget",
		Price:         decimal.RequireFromString("9.99"),
		StockQuantity: 5,
	}))

	result := service.Checkout(context.Background(), cart)
	assert.Equal(t, SaleFailed, result.Status)

	// The operator can retry without rebuilding the cart
	assert.Equal(t, 1, cart.Len())
}

func TestCheckoutRejectsEmptyCartWithoutWrites(t *testing.T) {
	repo := &recordingRepo{}
	service := newTestSaleService(repo)

	cart := pos.New()
	cart.SetCustomer(uuid.New())

	result := service.Checkout(context.Background(), cart)
	assert.Equal(t, SaleAborted, result.Status)
	assert.Equal(t, CodeEmptyCart, result.Code)
	assert.Nil(t, repo.insertedSale)
}
