// Package items provides the repository interface and SQL implementations
// for stored items and their interpolation ranges.
package items

import (
	"context"

	"github.com/tinkertools/tinker-api/internal/entities/ao"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=itemsmock github.com/tinkertools/tinker-api/internal/repositories/items Repository

// Paging limits for SearchItems
const (
	DefaultPageSize = 25
	MaxPageSize     = 100
)

// GetItemInput identifies one stored item
type GetItemInput struct {
	AOID int64
	QL   int
}

// GetItemOutput contains the stored item
type GetItemOutput struct {
	Item *ao.Item
}

// GetInterpolationInfoInput identifies an item family
type GetInterpolationInfoInput struct {
	AOID int64
}

// GetInterpolationInfoOutput contains the family's ranges sorted by MinQL
type GetInterpolationInfoOutput struct {
	AOID   int64
	Ranges []ao.InterpolationRange
}

// SearchItemsInput contains search parameters
type SearchItemsInput struct {
	// Query is a case insensitive substring of the item name
	Query string
	// Filter is an AIP-160 expression over aoid, ql, item_class, is_nano and name
	Filter   string
	PageSize int
	Offset   int
}

// SearchItemsOutput contains one page of matches
type SearchItemsOutput struct {
	Items []*ao.Item
	// Total is the number of matches across all pages
	Total int
}

// UpsertItemsInput contains items to insert or replace by (aoid, ql)
type UpsertItemsInput struct {
	Items []*ao.Item
}

// UpsertItemsOutput reports how many items were written
type UpsertItemsOutput struct {
	Count int
}

// ReplaceRangesInput replaces an item family's ranges
type ReplaceRangesInput struct {
	AOID   int64
	Ranges []ao.InterpolationRange
}

// ReplaceRangesOutput is empty
type ReplaceRangesOutput struct{}

// Repository defines the interface for item storage operations
type Repository interface {
	// GetItem returns the stored item at exactly (aoid, ql)
	GetItem(ctx context.Context, input GetItemInput) (*GetItemOutput, error)

	// GetInterpolationInfo returns the ranges of an item family
	GetInterpolationInfo(ctx context.Context, input GetInterpolationInfoInput) (*GetInterpolationInfoOutput, error)

	// SearchItems returns items matching a name query and filter
	SearchItems(ctx context.Context, input SearchItemsInput) (*SearchItemsOutput, error)

	// UpsertItems inserts or replaces items
	UpsertItems(ctx context.Context, input UpsertItemsInput) (*UpsertItemsOutput, error)

	// ReplaceRanges validates and stores a family's ranges, dropping the old ones
	ReplaceRanges(ctx context.Context, input ReplaceRangesInput) (*ReplaceRangesOutput, error)
}

// Store is a Repository that owns a database handle
type Store interface {
	Repository
	Close() error
}
