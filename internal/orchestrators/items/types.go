package items

import (
	"github.com/tinkertools/tinker-api/internal/entities/ao"
)

// GetItemInput defines the request for a stored item
type GetItemInput struct {
	AOID int64
	QL   int
}

// GetItemOutput defines the response for a stored item
type GetItemOutput struct {
	Item *ao.Item
}

// GetInterpolationInfoInput defines the request for a family's ranges
type GetInterpolationInfoInput struct {
	AOID int64
}

// GetInterpolationInfoOutput defines the response for a family's ranges
type GetInterpolationInfoOutput struct {
	AOID   int64
	Ranges []ao.InterpolationRange
}

// ResolveItemInput defines the request for an item at any QL
type ResolveItemInput struct {
	AOID int64
	QL   int
}

// ResolveItemOutput defines the resolved item. Range is nil when the item
// has no interpolation data and was served as stored.
type ResolveItemOutput struct {
	Item  *ao.Item
	Range *ao.InterpolationRange
}

// SearchItemsInput defines a search request
type SearchItemsInput struct {
	Query    string
	Filter   string
	PageSize int
	Offset   int
}

// SearchItemsOutput defines one page of search results.
// NextOffset is zero on the last page.
type SearchItemsOutput struct {
	Items      []*ao.Item
	Total      int
	NextOffset int
}

// Family is one item family's range list in an import
type Family struct {
	AOID   int64                   `json:"aoid"`
	Ranges []ao.InterpolationRange `json:"ranges"`
}

// ImportInput defines a bulk load of items and range lists
type ImportInput struct {
	Items    []*ao.Item `json:"items"`
	Families []Family   `json:"families"`
}

// ImportOutput reports what was written
type ImportOutput struct {
	Items    int
	Families int
}
