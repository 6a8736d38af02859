package services

import (
	"context"
	"posadmin_server/database"
	"posadmin_server/lib"
	"posadmin_server/pos"
	"posadmin_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleStatus is the terminal state of one submission attempt
type SaleStatus string

const (
	SaleSucceeded SaleStatus = "succeeded"
	// SaleAborted means validation stopped the attempt before any write
	SaleAborted SaleStatus = "aborted"
	// SaleFailed means a write failed; compensation has been attempted
	SaleFailed SaleStatus = "failed"
)

// SaleFailureCode identifies why a submission did not succeed
type SaleFailureCode string

const (
	CodeEmptyCart          SaleFailureCode = "empty_cart"
	CodeNoCustomer         SaleFailureCode = "no_customer_selected"
	CodeSaleCreationFailed SaleFailureCode = "sale_creation_failed"
	CodeSaleItemsFailed    SaleFailureCode = "sale_items_failed"
)

// SaleResult is the tagged outcome of a submission attempt. The HTTP edge
// collapses it to a plain success flag plus message; internally it keeps
// enough structure for logging and tests.
type SaleResult struct {
	Status  SaleStatus
	Code    SaleFailureCode
	Message string
	Sale    *tables.Sale
}

func (r SaleResult) OK() bool {
	return r.Status == SaleSucceeded
}

// CustomerDirectory is the customer lookup the receipt path needs
type CustomerDirectory interface {
	GetCustomerByID(ctx context.Context, id uuid.UUID) (*tables.Customer, error)
}

type SaleService struct {
	logger       *gecho.Logger
	db           *database.DB
	repo         SaleRepository
	customers    CustomerDirectory
	emailService *EmailService
}

func NewSaleService(
	logger *gecho.Logger,
	db *database.DB,
	repo SaleRepository,
	customers CustomerDirectory,
	emailService *EmailService,
) *SaleService {
	return &SaleService{
		logger:       logger,
		db:           db,
		repo:         repo,
		customers:    customers,
		emailService: emailService,
	}
}

// ProcessSale turns a set of cart entries into a durable sale: one header,
// one line-item batch, one stock decrement per line. The three writes are
// not atomic in the store, so they run as a saga: a failed line-item batch
// deletes the header again (best effort), while stock decrements after the
// commit point are attempted once each and never fail the sale.
func (ss *SaleService) ProcessSale(ctx context.Context, customerID *uuid.UUID, total decimal.Decimal, items []pos.Entry) SaleResult {
	// Validation happens before any repository call
	if len(items) == 0 {
		return SaleResult{
			Status:  SaleAborted,
			Code:    CodeEmptyCart,
			Message: "Cart is empty.",
		}
	}
	if customerID == nil {
		return SaleResult{
			Status:  SaleAborted,
			Code:    CodeNoCustomer,
			Message: "No customer selected.",
		}
	}

	sale := &tables.Sale{
		ID:          uuid.New(),
		CustomerID:  *customerID,
		TotalAmount: total,
		SaleDate:    time.Now(),
	}

	created, err := ss.repo.InsertSale(ctx, sale)
	if err != nil {
		err = lib.MapPgError(err)
		ss.logger.Error("Failed to create sale",
			gecho.Field("customer_id", customerID),
			gecho.Field("error", err),
		)
		return SaleResult{
			Status:  SaleFailed,
			Code:    CodeSaleCreationFailed,
			Message: err.Error(),
		}
	}

	// A financial record now exists; the rest of the workflow runs to
	// completion even if the caller goes away.
	ctx = context.WithoutCancel(ctx)

	saleItems := make([]tables.SaleItem, 0, len(items))
	for _, item := range items {
		saleItems = append(saleItems, tables.SaleItem{
			ID:        uuid.New(),
			SaleID:    created.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	if err := ss.repo.InsertSaleItems(ctx, saleItems); err != nil {
		err = lib.MapPgError(err)
		ss.logger.Error("Failed to create sale items, deleting sale header",
			gecho.Field("sale_id", created.ID),
			gecho.Field("error", err),
		)

		// Best-effort compensation. If the delete also fails we keep the
		// orphan header and surface the original failure; an empty sale
		// header is a documented inconsistency, not a crash.
		if delErr := ss.repo.DeleteSale(ctx, created.ID); delErr != nil {
			ss.logger.Error("Compensating sale delete failed, orphan sale header remains",
				gecho.Field("sale_id", created.ID),
				gecho.Field("error", delErr),
			)
		}

		return SaleResult{
			Status:  SaleFailed,
			Code:    CodeSaleItemsFailed,
			Message: err.Error(),
		}
	}

	// Every entry's decrement is attempted exactly once; a failure is
	// logged stock drift, never a failed sale. The sale is already real.
	for _, item := range items {
		if err := ss.repo.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			ss.logger.Error("Failed to decrement stock after committed sale",
				gecho.Field("sale_id", created.ID),
				gecho.Field("product_id", item.ProductID),
				gecho.Field("quantity", item.Quantity),
				gecho.Field("error", err),
			)
		}
	}

	ss.logger.Info("Sale created successfully",
		gecho.Field("sale_id", created.ID),
		gecho.Field("total_amount", created.TotalAmount),
		gecho.Field("items", len(saleItems)),
	)

	return SaleResult{
		Status:  SaleSucceeded,
		Message: "Sale created successfully.",
		Sale:    created,
	}
}

// Checkout submits a cart. On success the cart is cleared and, when the
// customer has an email on file, a receipt is sent asynchronously without
// affecting the result.
func (ss *SaleService) Checkout(ctx context.Context, cart *pos.Cart) SaleResult {
	entries := cart.Entries()
	result := ss.ProcessSale(ctx, cart.CustomerID(), cart.Total(), entries)
	if !result.OK() {
		return result
	}

	cart.Clear()

	if ss.emailService != nil && ss.customers != nil {
		sale := result.Sale
		go ss.sendReceipt(sale, entries)
	}

	return result
}

func (ss *SaleService) sendReceipt(sale *tables.Sale, entries []pos.Entry) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	customer, err := ss.customers.GetCustomerByID(ctx, sale.CustomerID)
	if err != nil || customer == nil || customer.Email == nil {
		return
	}

	if err := ss.emailService.SendReceiptEmail(*customer.Email, customer.Name, sale, entries); err != nil {
		ss.logger.Error("Failed to send receipt email",
			gecho.Field("sale_id", sale.ID),
			gecho.Field("error", err),
		)
	}
}

// GetSales retrieves all sales with their customer, newest first
func (ss *SaleService) GetSales(ctx context.Context) ([]tables.Sale, error) {
	sales, err := database.Query[tables.Sale](ss.db).
		Relation("Customer").
		OrderBy("sale_date", database.DESC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return sales, nil
}

// GetSaleDetails retrieves one sale with its line items, product names and
// customer. Returns nil when the sale does not exist.
func (ss *SaleService) GetSaleDetails(ctx context.Context, saleID uuid.UUID) (*tables.Sale, error) {
	sale, err := database.Query[tables.Sale](ss.db).
		Where("s.id", saleID).
		Relation("Customer").
		Relation("Items").
		Relation("Items.Product").
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return sale, nil
}

// SumRevenueBetween sums total_amount over sales in [start, end)
func (ss *SaleService) SumRevenueBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	type revenueRow struct {
		Total decimal.Decimal `bun:"total"`
	}

	row, err := database.RawQueryOne[revenueRow](ss.db, ctx,
		"SELECT COALESCE(SUM(total_amount), 0) AS total FROM sales WHERE sale_date >= ? AND sale_date < ?",
		start, end,
	)
	if err != nil {
		return decimal.Zero, lib.MapPgError(err)
	}
	if row == nil {
		return decimal.Zero, nil
	}
	return row.Total, nil
}
