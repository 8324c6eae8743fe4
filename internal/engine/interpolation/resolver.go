// Package interpolation resolves an item family at an arbitrary quality
// level. A QL on a range's lower bound, or inside a fixed range, yields the
// stored record. Anything else inside an interpolatable range is computed
// linearly from the range's two stored boundary items.
package interpolation

//go:generate mockgen -destination=mock/mock_fetcher.go -package=interpolationmock github.com/tinkertools/tinker-api/internal/engine/interpolation BoundaryFetcher

import (
	"context"

	"github.com/tinkertools/tinker-api/internal/entities/ao"
)

// BoundaryFetcher loads a stored item by base AOID and QL. A nil item with a
// nil error is treated as missing data.
type BoundaryFetcher interface {
	FetchBoundary(ctx context.Context, aoid int64, ql int) (*ao.Item, error)
}

// FetcherFunc adapts a function to BoundaryFetcher
type FetcherFunc func(ctx context.Context, aoid int64, ql int) (*ao.Item, error)

// FetchBoundary calls f
func (f FetcherFunc) FetchBoundary(ctx context.Context, aoid int64, ql int) (*ao.Item, error) {
	return f(ctx, aoid, ql)
}

// FindRange returns the range containing ql
func FindRange(ranges []ao.InterpolationRange, ql int) (ao.InterpolationRange, bool) {
	for _, r := range ranges {
		if r.Contains(ql) {
			return r, true
		}
	}
	return ao.InterpolationRange{}, false
}

// Resolve returns the item of family aoid at targetQL. ranges must be the
// family's complete, non overlapping range list. The stored item is returned
// as fetched when no interpolation is needed; otherwise a new item marked
// Interpolated is built. Errors are *OutOfRangeError or
// *MissingBoundaryDataError.
func Resolve(ctx context.Context, aoid int64, targetQL int, ranges []ao.InterpolationRange, fetcher BoundaryFetcher) (*ao.Item, error) {
	r, ok := FindRange(ranges, targetQL)
	if !ok {
		minQL, maxQL := bounds(ranges)
		return nil, &OutOfRangeError{AOID: aoid, QL: targetQL, MinQL: minQL, MaxQL: maxQL}
	}

	low, err := fetch(ctx, fetcher, aoid, targetQL, r, r.MinQL)
	if err != nil {
		return nil, err
	}
	if targetQL == r.MinQL || !r.Interpolatable {
		return low, nil
	}

	high, err := fetch(ctx, fetcher, aoid, targetQL, r, r.MaxQL)
	if err != nil {
		return nil, err
	}

	return Interpolate(aoid, targetQL, r, low, high), nil
}

// Interpolate builds the synthetic item at ql between low (r.MinQL) and high
// (r.MaxQL). Stats, attack stats and defense stats are interpolated over the
// union of both sides; a stat absent on one side is 0 there.
func Interpolate(aoid int64, ql int, r ao.InterpolationRange, low, high *ao.Item) *ao.Item {
	reqs := low.Requirements
	if r.Requirements != nil {
		reqs = r.Requirements
	}

	return &ao.Item{
		AOID:         aoid,
		Name:         low.Name,
		QL:           ql,
		ItemClass:    low.ItemClass,
		IsNano:       low.IsNano,
		Description:  low.Description,
		Stats:        interpolateStats(low.Stats, high.Stats, ql, r),
		Requirements: append([]ao.Requirement(nil), reqs...),
		SpellData:    low.SpellData,
		AttackStats:  interpolateStats(low.AttackStats, high.AttackStats, ql, r),
		DefenseStats: interpolateStats(low.DefenseStats, high.DefenseStats, ql, r),
		Interpolated: true,
	}
}

func fetch(ctx context.Context, fetcher BoundaryFetcher, aoid int64, targetQL int, r ao.InterpolationRange, boundaryQL int) (*ao.Item, error) {
	item, err := fetcher.FetchBoundary(ctx, r.BaseAOID, boundaryQL)
	if err != nil || item == nil {
		return nil, &MissingBoundaryDataError{
			AOID:       aoid,
			QL:         targetQL,
			Range:      r,
			BoundaryQL: boundaryQL,
			Err:        err,
		}
	}
	return item, nil
}

func bounds(ranges []ao.InterpolationRange) (int, int) {
	if len(ranges) == 0 {
		return 0, 0
	}
	minQL, maxQL := ranges[0].MinQL, ranges[0].MaxQL
	for _, r := range ranges[1:] {
		minQL = min(minQL, r.MinQL)
		maxQL = max(maxQL, r.MaxQL)
	}
	return minQL, maxQL
}

func interpolateStats(low, high []ao.StatValue, ql int, r ao.InterpolationRange) []ao.StatValue {
	if len(low) == 0 && len(high) == 0 {
		return nil
	}

	low = ao.DedupeStats(low)
	high = ao.DedupeStats(high)

	highValues := make(map[ao.StatID]int, len(high))
	for _, sv := range high {
		highValues[sv.Stat] = sv.Value
	}

	out := make([]ao.StatValue, 0, len(low)+len(high))
	seen := make(map[ao.StatID]struct{}, len(low))
	for _, sv := range low {
		seen[sv.Stat] = struct{}{}
		out = append(out, ao.StatValue{
			Stat:  sv.Stat,
			Value: lerp(sv.Value, highValues[sv.Stat], ql, r.MinQL, r.MaxQL),
		})
	}
	for _, sv := range high {
		if _, ok := seen[sv.Stat]; ok {
			continue
		}
		out = append(out, ao.StatValue{
			Stat:  sv.Stat,
			Value: lerp(0, sv.Value, ql, r.MinQL, r.MaxQL),
		})
	}
	return out
}

// lerp computes lo + (hi-lo)*(q-minQL)/(maxQL-minQL) rounded half away from
// zero, in exact integer arithmetic.
func lerp(lo, hi, q, minQL, maxQL int) int {
	den := int64(maxQL - minQL)
	if den <= 0 {
		return lo
	}
	num := int64(lo)*den + int64(hi-lo)*int64(q-minQL)
	return int(roundDiv(num, den))
}

// roundDiv divides num by a positive den, rounding half away from zero
func roundDiv(num, den int64) int64 {
	q, rem := num/den, num%den
	if rem < 0 {
		rem = -rem
	}
	if 2*rem >= den {
		if num < 0 {
			q--
		} else {
			q++
		}
	}
	return q
}
