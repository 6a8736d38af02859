package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// RawQuery executes a raw SQL query and returns results
func RawQuery[T any](db *DB, ctx context.Context, query string, args ...any) ([]T, error) {
	start := time.Now()
	var data []T

	err := db.NewRaw(query, args...).Scan(ctx, &data)
	if err != nil {
		return nil, fmt.Errorf("failed to execute raw query: %w (took %v)", err, time.Since(start))
	}

	return data, nil
}

// RawQueryOne executes a raw SQL query and returns a single result.
// Returns nil without error when no row matches.
func RawQueryOne[T any](db *DB, ctx context.Context, query string, args ...any) (*T, error) {
	start := time.Now()
	var data T

	err := db.NewRaw(query, args...).Scan(ctx, &data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to execute raw query: %w (took %v)", err, time.Since(start))
	}

	return &data, nil
}

// RawExec executes a raw SQL command (INSERT, UPDATE, DELETE, function call)
// without returning data
func RawExec(db *DB, ctx context.Context, query string, args ...any) (int, error) {
	start := time.Now()

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to execute raw command: %w (took %v)", err, time.Since(start))
	}

	affected, _ := res.RowsAffected()
	return int(affected), nil
}

// Transaction executes a function within a database transaction
func Transaction(ctx context.Context, db *DB, fn func(tx bun.Tx) error) error {
	return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return fn(tx)
	})
}

// Pagination represents pagination parameters
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Total    int `json:"total"`
}

// PaginationResult wraps paginated data with metadata
type PaginationResult[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Paginate applies pagination to a query builder and returns results with metadata
func Paginate[T any](q *QueryBuilder[T], ctx context.Context, page, pageSize int) (*PaginationResult[T], error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100 // Max page size
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get total count: %w", err)
	}

	offset := (page - 1) * pageSize

	data, err := q.Limit(pageSize).Offset(offset).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get paginated data: %w", err)
	}

	return &PaginationResult[T]{
		Data: data,
		Pagination: Pagination{
			Page:     page,
			PageSize: pageSize,
			Total:    total,
		},
	}, nil
}

// FindByID is a helper to find a record by ID
func FindByID[T any](db *DB, ctx context.Context, id any) (*T, error) {
	return Query[T](db).Where("id", id).First(ctx)
}

// Create is a helper to insert a single record
func Create[T any](db *DB, ctx context.Context, data *T) (*T, error) {
	return Query[T](db).Insert(ctx, data)
}

// CreateMany is a helper to insert multiple records as one batch
func CreateMany[T any](db *DB, ctx context.Context, data []T) ([]T, error) {
	return Query[T](db).InsertMany(ctx, data)
}

// UpdateByID is a helper to update a record by ID
func UpdateByID[T any](db *DB, ctx context.Context, id any, data map[string]any) (int, error) {
	return Query[T](db).Where("id", id).Update(ctx, data)
}

// DeleteByID is a helper to delete a record by ID
func DeleteByID[T any](db *DB, ctx context.Context, id any) (int, error) {
	return Query[T](db).Where("id", id).Delete(ctx)
}
