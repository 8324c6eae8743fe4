// Package compatibility checks a character profile against an item's
// requirement list.
package compatibility

import (
	"log/slog"

	"github.com/tinkertools/tinker-api/internal/entities/ao"
)

// Tier is the display verdict of an evaluation
type Tier string

// Evaluation tiers
const (
	TierFull         Tier = "full"
	TierPartial      Tier = "partial"
	TierIncompatible Tier = "incompatible"
)

// BreakpointPercents are the over-equip thresholds shown for >= requirements
var BreakpointPercents = [...]int{80, 60, 40, 20}

// RequirementResult is the outcome of one requirement
type RequirementResult struct {
	Requirement ao.Requirement `json:"requirement"`
	Met         bool           `json:"met"`
	Current     int            `json:"current"`
	Breakpoints []int          `json:"breakpoints,omitempty"`
}

// Result aggregates a profile's evaluation against a requirement list
type Result struct {
	Satisfied      bool                `json:"satisfied"`
	PerRequirement []RequirementResult `json:"per_requirement"`
	MetCount       int                 `json:"met_count"`
	UnmetCount     int                 `json:"unmet_count"`
	Score          int                 `json:"score"`
	Tier           Tier                `json:"tier"`
}

// Evaluate checks every requirement against the profile. It does not modify
// its inputs and never fails: unknown operators count as unmet.
func Evaluate(profile *ao.Profile, requirements []ao.Requirement) *Result {
	if profile == nil {
		profile = &ao.Profile{}
	}

	result := &Result{
		PerRequirement: make([]RequirementResult, 0, len(requirements)),
	}

	for _, req := range requirements {
		current := profile.Value(req.Stat)
		rr := RequirementResult{
			Requirement: req,
			Met:         Check(req, current),
			Current:     current,
		}
		if req.Operator == ao.OperatorGreaterOrEqual && !req.IsEmpty() {
			rr.Breakpoints = Breakpoints(req.Value)
		}

		if rr.Met {
			result.MetCount++
		} else {
			result.UnmetCount++
		}
		result.PerRequirement = append(result.PerRequirement, rr)
	}

	result.Satisfied = result.UnmetCount == 0
	result.Tier = TierFor(result.MetCount, result.UnmetCount)
	result.Score = Score(result.MetCount, len(requirements))

	return result
}

// Check applies one requirement to the character's current value
func Check(req ao.Requirement, current int) bool {
	if req.IsEmpty() {
		return true
	}

	switch req.Operator {
	case ao.OperatorEqual:
		return current == req.Value
	case ao.OperatorLessOrEqual:
		return current <= req.Value
	case ao.OperatorGreaterOrEqual:
		return current >= req.Value
	case ao.OperatorNotEqual:
		return current != req.Value
	case ao.OperatorHas:
		return current&req.Value == req.Value
	case ao.OperatorLacks:
		return current&req.Value == 0
	case ao.OperatorUnknown:
		slog.Warn("Unrecognized requirement operator",
			"stat", int(req.Stat),
			"value", req.Value)
		return false
	default:
		slog.Warn("Unrecognized requirement operator",
			"operator", uint8(req.Operator),
			"stat", int(req.Stat),
			"value", req.Value)
		return false
	}
}

// TierFor classifies met and unmet counts
func TierFor(met, unmet int) Tier {
	switch {
	case unmet == 0:
		return TierFull
	case met > unmet:
		return TierPartial
	default:
		return TierIncompatible
	}
}

// Score is the floored percentage of met requirements, 100 when there are none
func Score(met, total int) int {
	if total == 0 {
		return 100
	}
	return 100 * met / total
}

// Breakpoints returns floor(v*p/100) for each over-equip percentage
func Breakpoints(v int) []int {
	out := make([]int, len(BreakpointPercents))
	for i, p := range BreakpointPercents {
		out[i] = floorDiv(v*p, 100)
	}
	return out
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
