package v1alpha1

import (
	compat "github.com/tinkertools/tinker-api/internal/engine/compatibility"
	"github.com/tinkertools/tinker-api/internal/entities/ao"
)

// GetItemRequest asks for the stored record of an item at a QL
type GetItemRequest struct {
	Aoid int64 `json:"aoid"`
	Ql   int   `json:"ql"`
}

// GetItemResponse carries a stored item
type GetItemResponse struct {
	Item *ao.Item `json:"item"`
}

// GetInterpolationInfoRequest asks for an item family's QL ranges
type GetInterpolationInfoRequest struct {
	Aoid int64 `json:"aoid"`
}

// GetInterpolationInfoResponse lists the family's ranges by min_ql
type GetInterpolationInfoResponse struct {
	Aoid   int64                   `json:"aoid"`
	Ranges []ao.InterpolationRange `json:"ranges"`
}

// ResolveItemRequest asks for an item at any supported QL
type ResolveItemRequest struct {
	Aoid int64 `json:"aoid"`
	Ql   int   `json:"ql"`
}

// ResolveItemResponse carries the stored or interpolated item and the range
// that produced it
type ResolveItemResponse struct {
	Item  *ao.Item               `json:"item"`
	Range *ao.InterpolationRange `json:"range,omitempty"`
}

// SearchItemsRequest is a paged search over item names with an optional
// AIP-160 filter
type SearchItemsRequest struct {
	Query    string `json:"query,omitempty"`
	Filter   string `json:"filter,omitempty"`
	PageSize int    `json:"page_size,omitempty"`
	Offset   int    `json:"offset,omitempty"`
}

// SearchItemsResponse is one page of search results
type SearchItemsResponse struct {
	Items      []*ao.Item `json:"items"`
	Total      int        `json:"total"`
	NextOffset int        `json:"next_offset,omitempty"`
}

// EvaluateRequirementsRequest checks a requirement list against an inline
// profile or a saved one
type EvaluateRequirementsRequest struct {
	Profile      *ao.Profile      `json:"profile,omitempty"`
	ProfileId    string           `json:"profile_id,omitempty"`
	Requirements []ao.Requirement `json:"requirements"`
}

// EvaluateRequirementsResponse carries the verdict
type EvaluateRequirementsResponse struct {
	Result *compat.Result `json:"result"`
}

// EvaluateItemRequest checks one item at a QL against a profile
type EvaluateItemRequest struct {
	Profile   *ao.Profile `json:"profile,omitempty"`
	ProfileId string      `json:"profile_id,omitempty"`
	Aoid      int64       `json:"aoid"`
	Ql        int         `json:"ql"`
}

// EvaluateItemResponse carries the resolved item and its verdict
type EvaluateItemResponse struct {
	Item   *ao.Item       `json:"item"`
	Result *compat.Result `json:"result"`
}

// ItemRef identifies an item at a QL
type ItemRef struct {
	Aoid int64 `json:"aoid"`
	Ql   int   `json:"ql"`
}

// EvaluateItemsRequest checks many items against one profile
type EvaluateItemsRequest struct {
	Profile   *ao.Profile `json:"profile,omitempty"`
	ProfileId string      `json:"profile_id,omitempty"`
	Items     []ItemRef   `json:"items"`
}

// EntryError describes why one batch entry failed. Retryable entries may
// succeed if requested again unchanged.
type EntryError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable,omitempty"`
}

// ItemEvaluation is one batch entry. Error is set instead of Item and Result
// when the entry failed.
type ItemEvaluation struct {
	Aoid   int64          `json:"aoid"`
	Ql     int            `json:"ql"`
	Item   *ao.Item       `json:"item,omitempty"`
	Result *compat.Result `json:"result,omitempty"`
	Error  *EntryError    `json:"error,omitempty"`
}

// EvaluateItemsResponse holds the entries in request order
type EvaluateItemsResponse struct {
	Entries []ItemEvaluation `json:"entries"`
}

// CreateProfileRequest saves a new profile. Any ID in the payload is replaced.
type CreateProfileRequest struct {
	Profile *ao.Profile `json:"profile"`
}

// CreateProfileResponse carries the saved profile
type CreateProfileResponse struct {
	Profile *ao.Profile `json:"profile"`
}

// GetProfileRequest loads a saved profile
type GetProfileRequest struct {
	Id string `json:"id"`
}

// GetProfileResponse carries a saved profile
type GetProfileResponse struct {
	Profile *ao.Profile `json:"profile"`
}

// UpdateProfileRequest replaces a saved profile
type UpdateProfileRequest struct {
	Profile *ao.Profile `json:"profile"`
}

// UpdateProfileResponse carries the updated profile
type UpdateProfileResponse struct {
	Profile *ao.Profile `json:"profile"`
}

// DeleteProfileRequest removes a saved profile
type DeleteProfileRequest struct {
	Id string `json:"id"`
}

// DeleteProfileResponse is empty
type DeleteProfileResponse struct{}

// ListProfilesRequest is empty
type ListProfilesRequest struct{}

// ListProfilesResponse lists saved profiles by name
type ListProfilesResponse struct {
	Profiles []*ao.Profile `json:"profiles"`
}
