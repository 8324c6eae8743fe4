package compatibility

import (
	compat "github.com/tinkertools/tinker-api/internal/engine/compatibility"
	"github.com/tinkertools/tinker-api/internal/entities/ao"
)

// ProfileRef selects the character to evaluate: an inline profile or the ID
// of a saved one. Exactly one must be set.
type ProfileRef struct {
	Profile   *ao.Profile
	ProfileID string
}

// EvaluateRequirementsInput defines a request to check an explicit requirement list
type EvaluateRequirementsInput struct {
	ProfileRef
	Requirements []ao.Requirement
}

// EvaluateRequirementsOutput defines the verdict for a requirement list
type EvaluateRequirementsOutput struct {
	Result *compat.Result
}

// EvaluateItemInput defines a request to check an item at a QL
type EvaluateItemInput struct {
	ProfileRef
	AOID int64
	QL   int
}

// EvaluateItemOutput defines the verdict for one item
type EvaluateItemOutput struct {
	Item   *ao.Item
	Result *compat.Result
}

// ItemRef identifies an item at a QL
type ItemRef struct {
	AOID int64 `json:"aoid"`
	QL   int   `json:"ql"`
}

// EvaluateItemsInput defines a batch evaluation against one profile
type EvaluateItemsInput struct {
	ProfileRef
	Items []ItemRef
}

// ItemEvaluation is one batch entry. Err is set instead of Item and Result
// when that entry could not be resolved.
type ItemEvaluation struct {
	Ref    ItemRef
	Item   *ao.Item
	Result *compat.Result
	Err    error
}

// EvaluateItemsOutput holds the batch entries in request order
type EvaluateItemsOutput struct {
	Entries []ItemEvaluation
}
