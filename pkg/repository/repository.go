// Package repository declares the persistence contracts consumers depend on;
// concrete implementations live under internal/.
package repository

import "context"

// Page bounds a list query. Rows are always returned in ascending identity
// order.
type Page struct {
	Offset int
	Limit  int
}

// Filter restricts a list query to exact matches on indexed columns.
type Filter map[string]any

// Store is the persistence contract shared by every resource. Each operation
// is atomic against the store: a failure leaves no partial mutation behind.
type Store[M any] interface {
	Create(ctx context.Context, m M) (M, error)
	Get(ctx context.Context, id int64) (M, error)
	List(ctx context.Context, page Page, filter Filter) ([]M, error)
	Update(ctx context.Context, id int64, set map[string]any) (M, error)
	Delete(ctx context.Context, id int64) error
}
