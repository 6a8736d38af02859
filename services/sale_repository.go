package services

import (
	"context"
	"posadmin_server/database"
	"posadmin_server/structs/tables"

	"github.com/google/uuid"
)

// SaleRepository is the slice of the data store the submission workflow
// touches. It is an interface so the workflow can be exercised against a
// fake store in tests.
type SaleRepository interface {
	InsertSale(ctx context.Context, sale *tables.Sale) (*tables.Sale, error)
	// InsertSaleItems writes all line items as one batch; the batch fails
	// as a whole.
	InsertSaleItems(ctx context.Context, items []tables.SaleItem) error
	// DeleteSale is the compensation path for a failed line-item batch.
	DeleteSale(ctx context.Context, saleID uuid.UUID) error
	// DecrementStock calls the stock-decrement procedure for one product.
	DecrementStock(ctx context.Context, productID uuid.UUID, quantity int) error
}

type pgSaleRepository struct {
	db *database.DB
}

func NewSaleRepository(db *database.DB) SaleRepository {
	return &pgSaleRepository{db: db}
}

func (r *pgSaleRepository) InsertSale(ctx context.Context, sale *tables.Sale) (*tables.Sale, error) {
	return database.Create(r.db, ctx, sale)
}

func (r *pgSaleRepository) InsertSaleItems(ctx context.Context, items []tables.SaleItem) error {
	_, err := database.CreateMany(r.db, ctx, items)
	return err
}

func (r *pgSaleRepository) DeleteSale(ctx context.Context, saleID uuid.UUID) error {
	_, err := database.DeleteByID[tables.Sale](r.db, ctx, saleID)
	return err
}

func (r *pgSaleRepository) DecrementStock(ctx context.Context, productID uuid.UUID, quantity int) error {
	_, err := database.RawExec(r.db, ctx, "SELECT decrement_product_stock(?, ?)", productID, quantity)
	return err
}
