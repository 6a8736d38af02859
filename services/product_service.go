package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"posadmin_server/database"
	"posadmin_server/lib"
	"posadmin_server/structs"
	"posadmin_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

const productCacheTTL = 5 * time.Minute

// ProductListOptions controls pagination, filtering and ordering of the
// product catalog listing.
type ProductListOptions struct {
	Page          int
	PageSize      int
	SearchTerm    string
	LowStockOnly  bool
	SortBy        string
	SortDirection database.OrderDirection
}

// ProductService handles catalog and stock reads and writes.
type ProductService struct {
	logger *gecho.Logger
	db     *database.DB
	cache  *CacheService
	config *structs.Config
}

func NewProductService(logger *gecho.Logger, db *database.DB, cache *CacheService, cfg *structs.Config) *ProductService {
	return &ProductService{
		logger: logger,
		db:     db,
		cache:  cache,
		config: cfg,
	}
}

func productCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("product:%s", id)
}

// GetAllProducts returns a page of the catalog ordered per opts.
func (ps *ProductService) GetAllProducts(ctx context.Context, opts ProductListOptions) (*database.PaginationResult[tables.Product], error) {
	sortBy := opts.SortBy
	switch sortBy {
	case "name", "price", "stock_quantity", "created_at":
	default:
		sortBy = "name"
	}
	direction := opts.SortDirection
	if direction != database.DESC {
		direction = database.ASC
	}

	query := database.Query[tables.Product](ps.db).
		OrderBy(sortBy, direction)

	if term := strings.TrimSpace(opts.SearchTerm); term != "" {
		query = query.WhereILike("name", "%"+term+"%")
	}
	if opts.LowStockOnly {
		query = query.WhereOp("stock_quantity", "<=", ps.config.Pos.LowStockThreshold)
	}

	result, err := database.Paginate(query, ctx, opts.Page, opts.PageSize)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return result, nil
}

// GetProductByID fetches a single product, serving from cache when possible.
func (ps *ProductService) GetProductByID(ctx context.Context, id uuid.UUID) (*tables.Product, error) {
	if ps.cache != nil {
		var cached tables.Product
		hit, err := ps.cache.GetJSON(productCacheKey(id), &cached)
		if err != nil {
			ps.logger.Warn("Product cache read failed", gecho.Field("error", err.Error()))
		} else if hit {
			return &cached, nil
		}
	}

	product, err := database.FindByID[tables.Product](ps.db, ctx, id)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if product == nil {
		return nil, lib.ErrNotFound
	}

	if ps.cache != nil {
		if err := ps.cache.SetJSON(productCacheKey(id), product, productCacheTTL); err != nil {
			ps.logger.Warn("Product cache write failed", gecho.Field("error", err.Error()))
		}
	}

	return product, nil
}

// CreateProduct inserts a new catalog entry.
func (ps *ProductService) CreateProduct(ctx context.Context, req structs.ProductRequest) (*tables.Product, error) {
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("price cannot be negative")
	}
	if req.StockQuantity < 0 {
		return nil, fmt.Errorf("stock quantity cannot be negative")
	}

	now := time.Now()
	product := &tables.Product{
		ID:            uuid.New(),
		Name:          strings.TrimSpace(req.Name),
		Description:   normalizeOptional(req.Description),
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := database.Create(ps.db, ctx, product)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	ps.logger.Info("Product created",
		gecho.Field("product_id", created.ID.String()),
		gecho.Field("name", created.Name),
	)
	return created, nil
}

// UpdateProduct replaces the mutable fields of an existing product.
func (ps *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, req structs.ProductRequest) (*tables.Product, error) {
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("price cannot be negative")
	}
	if req.StockQuantity < 0 {
		return nil, fmt.Errorf("stock quantity cannot be negative")
	}

	updates := map[string]any{
		"name":           strings.TrimSpace(req.Name),
		"description":    normalizeOptional(req.Description),
		"price":          req.Price,
		"stock_quantity": req.StockQuantity,
		"updated_at":     time.Now(),
	}

	affected, err := database.Query[tables.Product](ps.db).
		Where("id", id).
		Update(ctx, updates)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if affected == 0 {
		return nil, lib.ErrNotFound
	}

	ps.invalidate(id)
	return ps.GetProductByID(ctx, id)
}

// DeleteProduct removes a product unless sale history references it.
func (ps *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	referenced, err := database.Query[tables.SaleItem](ps.db).
		Where("product_id", id).
		Exists(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}
	if referenced {
		return lib.ErrReferenced
	}

	affected, err := database.Query[tables.Product](ps.db).
		Where("id", id).
		Delete(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}

	ps.invalidate(id)
	ps.logger.Info("Product deleted", gecho.Field("product_id", id.String()))
	return nil
}

// CountProducts returns the catalog size.
func (ps *ProductService) CountProducts(ctx context.Context) (int, error) {
	count, err := database.Query[tables.Product](ps.db).Count(ctx)
	if err != nil {
		return 0, lib.MapPgError(err)
	}
	return count, nil
}

// CountLowStock counts products at or below the configured threshold.
func (ps *ProductService) CountLowStock(ctx context.Context) (int, error) {
	count, err := database.Query[tables.Product](ps.db).
		WhereOp("stock_quantity", "<=", ps.config.Pos.LowStockThreshold).
		Count(ctx)
	if err != nil {
		return 0, lib.MapPgError(err)
	}
	return count, nil
}

func (ps *ProductService) invalidate(id uuid.UUID) {
	if ps.cache == nil {
		return
	}
	if err := ps.cache.Delete(productCacheKey(id)); err != nil {
		ps.logger.Warn("Product cache invalidation failed", gecho.Field("error", err.Error()))
	}
}
