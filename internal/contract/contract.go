// Package contract provides interfaces and shared utilities for the
// nutriscore CLI's internal architecture.
package contract

import (
	"context"

	"github.com/mealpoint/nutriscore/schema"
)

// CatalogStore defines the interface for food catalog storage. The engine
// is handed a finite in-memory food list per call; this interface is how
// that list gets supplied from durable storage. It can be mocked for
// testing.
type CatalogStore interface {
	ListFoods(ctx context.Context) ([]schema.FoodItem, error)
	PutFood(ctx context.Context, food schema.FoodItem) error
	GetStatus() (schema.CatalogStatus, error)
	Close() error
}
