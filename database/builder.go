package database

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// WhereClause represents a WHERE condition
type WhereClause struct {
	Column   string
	Operator string
	Value    any
	IsRaw    bool
	RawSQL   string
	RawArgs  []any
}

// OrderClause represents an ORDER BY clause
type OrderClause struct {
	Column    string
	Direction string
}

// OrderDirection represents sort direction
type OrderDirection string

const (
	ASC  OrderDirection = "ASC"
	DESC OrderDirection = "DESC"
)

// QueryBuilder provides a fluent, type-safe API for building database queries
type QueryBuilder[T any] struct {
	db        *DB
	tableName string

	wheres    []*WhereClause
	orders    []*OrderClause
	relations []string
	limitVal  *int
	offsetVal *int
	timeout   time.Duration
}

// Query creates a new QueryBuilder instance
func Query[T any](db *DB) *QueryBuilder[T] {
	return &QueryBuilder[T]{
		db:        db,
		wheres:    []*WhereClause{},
		orders:    []*OrderClause{},
		relations: []string{},
	}
}

// Table sets the table name explicitly
func (q *QueryBuilder[T]) Table(name string) *QueryBuilder[T] {
	q.tableName = name
	return q
}

// Where adds a simple WHERE condition (column = value)
func (q *QueryBuilder[T]) Where(column string, value any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{Column: column, Operator: "=", Value: value})
	return q
}

// WhereOp adds a WHERE condition with a custom operator
func (q *QueryBuilder[T]) WhereOp(column, operator string, value any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{Column: column, Operator: operator, Value: value})
	return q
}

// WhereIn adds a WHERE IN condition
func (q *QueryBuilder[T]) WhereIn(column string, values []any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{
		IsRaw:   true,
		RawSQL:  fmt.Sprintf("%s IN (?)", column),
		RawArgs: []any{bun.In(values)},
	})
	return q
}

// WhereNull adds a WHERE IS NULL condition
func (q *QueryBuilder[T]) WhereNull(column string) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{Column: column, Operator: "IS NULL"})
	return q
}

// WhereNotNull adds a WHERE IS NOT NULL condition
func (q *QueryBuilder[T]) WhereNotNull(column string) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{Column: column, Operator: "IS NOT NULL"})
	return q
}

// WhereILike adds a case-insensitive pattern match
func (q *QueryBuilder[T]) WhereILike(column, pattern string) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{Column: column, Operator: "ILIKE", Value: pattern})
	return q
}

// WhereRaw adds a raw WHERE condition
func (q *QueryBuilder[T]) WhereRaw(sql string, args ...any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{IsRaw: true, RawSQL: sql, RawArgs: args})
	return q
}

// Relation specifies a bun relation to preload (e.g. "Customer", "Items.Product")
func (q *QueryBuilder[T]) Relation(relation string) *QueryBuilder[T] {
	q.relations = append(q.relations, relation)
	return q
}

// OrderBy adds an ORDER BY clause
func (q *QueryBuilder[T]) OrderBy(column string, direction OrderDirection) *QueryBuilder[T] {
	q.orders = append(q.orders, &OrderClause{Column: column, Direction: string(direction)})
	return q
}

// Limit sets the LIMIT clause
func (q *QueryBuilder[T]) Limit(limit int) *QueryBuilder[T] {
	q.limitVal = &limit
	return q
}

// Offset sets the OFFSET clause
func (q *QueryBuilder[T]) Offset(offset int) *QueryBuilder[T] {
	q.offsetVal = &offset
	return q
}

// Timeout sets a timeout for the query
func (q *QueryBuilder[T]) Timeout(duration time.Duration) *QueryBuilder[T] {
	q.timeout = duration
	return q
}

func (q *QueryBuilder[T]) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if q.timeout > 0 {
		return context.WithTimeout(ctx, q.timeout)
	}
	return ctx, func() {}
}

func whereSQL(w *WhereClause) (string, []any) {
	if w.IsRaw {
		return w.RawSQL, w.RawArgs
	}
	if w.Operator == "IS NULL" || w.Operator == "IS NOT NULL" {
		return fmt.Sprintf("%s %s", w.Column, w.Operator), nil
	}
	return fmt.Sprintf("%s %s ?", w.Column, w.Operator), []any{w.Value}
}

func (q *QueryBuilder[T]) buildSelect(model any) *bun.SelectQuery {
	query := q.db.NewSelect().Model(model)

	if q.tableName != "" {
		query = query.ModelTableExpr(q.tableName)
	}

	for _, where := range q.wheres {
		sql, args := whereSQL(where)
		query = query.Where(sql, args...)
	}

	for _, rel := range q.relations {
		query = query.Relation(rel)
	}

	for _, order := range q.orders {
		query = query.Order(fmt.Sprintf("%s %s", order.Column, order.Direction))
	}

	if q.limitVal != nil {
		query = query.Limit(*q.limitVal)
	}
	if q.offsetVal != nil {
		query = query.Offset(*q.offsetVal)
	}

	return query
}

func (q *QueryBuilder[T]) applyWheresToUpdate(query *bun.UpdateQuery) *bun.UpdateQuery {
	for _, where := range q.wheres {
		sql, args := whereSQL(where)
		query = query.Where(sql, args...)
	}
	return query
}

func (q *QueryBuilder[T]) applyWheresToDelete(query *bun.DeleteQuery) *bun.DeleteQuery {
	for _, where := range q.wheres {
		sql, args := whereSQL(where)
		query = query.Where(sql, args...)
	}
	return query
}
