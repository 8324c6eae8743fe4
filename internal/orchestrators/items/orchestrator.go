// Package items implements the item orchestrator: stored lookups, QL
// resolution through the interpolation engine, search and bulk import.
package items

//go:generate mockgen -destination=mock/mock_service.go -package=itemsmock github.com/tinkertools/tinker-api/internal/orchestrators/items Service

import (
	"context"
	stderrors "errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/tinkertools/tinker-api/internal/engine/interpolation"
	"github.com/tinkertools/tinker-api/internal/entities/ao"
	"github.com/tinkertools/tinker-api/internal/errors"
	itemsrepo "github.com/tinkertools/tinker-api/internal/repositories/items"
)

var tracer = otel.Tracer("github.com/tinkertools/tinker-api/internal/orchestrators/items")

// Service defines the interface for item operations
type Service interface {
	GetItem(ctx context.Context, input *GetItemInput) (*GetItemOutput, error)
	GetInterpolationInfo(ctx context.Context, input *GetInterpolationInfoInput) (*GetInterpolationInfoOutput, error)

	// ResolveItem returns the stored or interpolated item at any supported QL
	ResolveItem(ctx context.Context, input *ResolveItemInput) (*ResolveItemOutput, error)

	SearchItems(ctx context.Context, input *SearchItemsInput) (*SearchItemsOutput, error)
	Import(ctx context.Context, input *ImportInput) (*ImportOutput, error)
}

// Config holds the dependencies for the item orchestrator
type Config struct {
	ItemRepo itemsrepo.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.ItemRepo == nil {
		vb.RequiredField("ItemRepo")
	}
	return vb.Build()
}

type orchestrator struct {
	itemRepo itemsrepo.Repository
}

// NewOrchestrator creates a new item orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{itemRepo: cfg.ItemRepo}, nil
}

func validateLookup(aoid int64, ql int) error {
	vb := errors.NewValidationBuilder()
	errors.ValidatePositive("aoid", aoid, vb)
	errors.ValidateRange("ql", ql, ao.MinQL, ao.MaxQL, vb)
	return vb.Build()
}

func (o *orchestrator) GetItem(ctx context.Context, input *GetItemInput) (*GetItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateLookup(input.AOID, input.QL); err != nil {
		return nil, err
	}

	out, err := o.itemRepo.GetItem(ctx, itemsrepo.GetItemInput{AOID: input.AOID, QL: input.QL})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get item %d", input.AOID)
	}

	return &GetItemOutput{Item: out.Item}, nil
}

func (o *orchestrator) GetInterpolationInfo(ctx context.Context, input *GetInterpolationInfoInput) (*GetInterpolationInfoOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.AOID <= 0 {
		return nil, errors.InvalidArgument("aoid must be positive")
	}

	out, err := o.itemRepo.GetInterpolationInfo(ctx, itemsrepo.GetInterpolationInfoInput{AOID: input.AOID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get interpolation info for item %d", input.AOID)
	}

	return &GetInterpolationInfoOutput{AOID: out.AOID, Ranges: out.Ranges}, nil
}

func (o *orchestrator) ResolveItem(ctx context.Context, input *ResolveItemInput) (*ResolveItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateLookup(input.AOID, input.QL); err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "items.ResolveItem")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("item.aoid", input.AOID),
		attribute.Int("item.ql", input.QL),
	)

	info, err := o.itemRepo.GetInterpolationInfo(ctx, itemsrepo.GetInterpolationInfoInput{AOID: input.AOID})
	if err != nil {
		if ctxErr := errors.FromContext(ctx, "item resolution interrupted"); ctxErr != nil {
			return nil, ctxErr
		}
		if !errors.IsNotFound(err) {
			return nil, errors.Wrapf(err, "failed to load ranges of item %d", input.AOID)
		}

		// Items without range data only exist at their stored QLs.
		out, err := o.itemRepo.GetItem(ctx, itemsrepo.GetItemInput{AOID: input.AOID, QL: input.QL})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get item %d", input.AOID)
		}
		return &ResolveItemOutput{Item: out.Item}, nil
	}

	item, err := interpolation.Resolve(ctx, input.AOID, input.QL, info.Ranges, o.boundaryFetcher())
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, toServiceError(ctx, err)
	}
	span.SetAttributes(attribute.Bool("item.interpolated", item.Interpolated))

	r, _ := interpolation.FindRange(info.Ranges, input.QL)

	slog.DebugContext(ctx, "Resolved item",
		"aoid", input.AOID,
		"ql", input.QL,
		"min_ql", r.MinQL,
		"max_ql", r.MaxQL,
		"interpolated", item.Interpolated)

	return &ResolveItemOutput{Item: item, Range: &r}, nil
}

func (o *orchestrator) boundaryFetcher() interpolation.BoundaryFetcher {
	return interpolation.FetcherFunc(func(ctx context.Context, aoid int64, ql int) (*ao.Item, error) {
		out, err := o.itemRepo.GetItem(ctx, itemsrepo.GetItemInput{AOID: aoid, QL: ql})
		if err != nil {
			return nil, err
		}
		return out.Item, nil
	})
}

// toServiceError maps engine errors onto service codes with the context a
// caller needs to render the failure. A done request context wins over the
// engine error it caused.
func toServiceError(ctx context.Context, err error) error {
	if ctxErr := errors.FromContext(ctx, "item resolution interrupted"); ctxErr != nil {
		return ctxErr
	}

	var oor *interpolation.OutOfRangeError
	if stderrors.As(err, &oor) {
		return errors.WrapWithCode(err, errors.CodeOutOfRange, oor.Error()).
			WithMeta("aoid", oor.AOID).
			WithMeta("ql", oor.QL).
			WithMeta("min_ql", oor.MinQL).
			WithMeta("max_ql", oor.MaxQL)
	}

	var missing *interpolation.MissingBoundaryDataError
	if stderrors.As(err, &missing) {
		slog.Warn("Boundary item missing for interpolation",
			"aoid", missing.AOID,
			"ql", missing.QL,
			"base_aoid", missing.Range.BaseAOID,
			"boundary_ql", missing.BoundaryQL,
			"error", missing.Err)

		return errors.WrapWithCode(err, errors.CodeUnavailable, missing.Error()).
			WithMeta("aoid", missing.AOID).
			WithMeta("ql", missing.QL).
			WithMeta("min_ql", missing.Range.MinQL).
			WithMeta("max_ql", missing.Range.MaxQL).
			WithMeta("boundary_ql", missing.BoundaryQL)
	}

	return errors.Wrap(err, "failed to resolve item")
}

func (o *orchestrator) SearchItems(ctx context.Context, input *SearchItemsInput) (*SearchItemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.PageSize < 0 {
		vb.Field("page_size", "cannot be negative")
	}
	if input.PageSize > itemsrepo.MaxPageSize {
		vb.Fieldf("page_size", "cannot exceed %d", itemsrepo.MaxPageSize)
	}
	if input.Offset < 0 {
		vb.Field("offset", "cannot be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	pageSize := input.PageSize
	if pageSize == 0 {
		pageSize = itemsrepo.DefaultPageSize
	}

	out, err := o.itemRepo.SearchItems(ctx, itemsrepo.SearchItemsInput{
		Query:    input.Query,
		Filter:   input.Filter,
		PageSize: pageSize,
		Offset:   input.Offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search items")
	}

	next := 0
	if end := input.Offset + len(out.Items); end < out.Total {
		next = end
	}

	return &SearchItemsOutput{Items: out.Items, Total: out.Total, NextOffset: next}, nil
}

func (o *orchestrator) Import(ctx context.Context, input *ImportInput) (*ImportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	// Ranges are validated before anything is written.
	for _, f := range input.Families {
		if err := ao.ValidateRanges(f.Ranges); err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "invalid ranges for item %d", f.AOID)
		}
	}

	if len(input.Items) > 0 {
		if _, err := o.itemRepo.UpsertItems(ctx, itemsrepo.UpsertItemsInput{Items: input.Items}); err != nil {
			return nil, errors.Wrap(err, "failed to import items")
		}
	}

	for _, f := range input.Families {
		if _, err := o.itemRepo.ReplaceRanges(ctx, itemsrepo.ReplaceRangesInput{AOID: f.AOID, Ranges: f.Ranges}); err != nil {
			return nil, errors.Wrapf(err, "failed to import ranges for item %d", f.AOID)
		}
	}

	slog.InfoContext(ctx, "Import complete",
		"items", len(input.Items),
		"families", len(input.Families))

	return &ImportOutput{Items: len(input.Items), Families: len(input.Families)}, nil
}
