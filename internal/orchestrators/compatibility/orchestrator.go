// Package compatibility implements the compatibility orchestrator: it loads
// profiles, resolves items and runs the requirement evaluator over them.
package compatibility

//go:generate mockgen -destination=mock/mock_service.go -package=compatibilitymock github.com/tinkertools/tinker-api/internal/orchestrators/compatibility Service

import (
	"context"
	"log/slog"
	"maps"

	"golang.org/x/sync/errgroup"

	compat "github.com/tinkertools/tinker-api/internal/engine/compatibility"
	"github.com/tinkertools/tinker-api/internal/entities/ao"
	"github.com/tinkertools/tinker-api/internal/errors"
	"github.com/tinkertools/tinker-api/internal/orchestrators/items"
	"github.com/tinkertools/tinker-api/internal/orchestrators/profiles"
)

const (
	// DefaultParallelism bounds concurrent item resolutions in a batch
	DefaultParallelism = 8

	// MaxBatchSize is the largest EvaluateItems request accepted
	MaxBatchSize = 200
)

// Service defines the interface for compatibility operations
type Service interface {
	EvaluateRequirements(ctx context.Context, input *EvaluateRequirementsInput) (*EvaluateRequirementsOutput, error)
	EvaluateItem(ctx context.Context, input *EvaluateItemInput) (*EvaluateItemOutput, error)

	// EvaluateItems reports per-entry failures in the output and only fails
	// as a whole for invalid input or an unloadable profile
	EvaluateItems(ctx context.Context, input *EvaluateItemsInput) (*EvaluateItemsOutput, error)
}

// Config holds the dependencies for the compatibility orchestrator.
// ProfileService may be nil when no profile store is configured; requests
// by profile ID then fail with FailedPrecondition.
type Config struct {
	ItemService    items.Service
	ProfileService profiles.Service
	Parallelism    int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.ItemService == nil {
		vb.RequiredField("ItemService")
	}
	if c.Parallelism < 0 {
		vb.Field("Parallelism", "cannot be negative")
	}
	return vb.Build()
}

type orchestrator struct {
	itemService    items.Service
	profileService profiles.Service
	parallelism    int
}

// NewOrchestrator creates a new compatibility orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	parallelism := cfg.Parallelism
	if parallelism == 0 {
		parallelism = DefaultParallelism
	}

	return &orchestrator{
		itemService:    cfg.ItemService,
		profileService: cfg.ProfileService,
		parallelism:    parallelism,
	}, nil
}

func (o *orchestrator) loadProfile(ctx context.Context, ref ProfileRef) (*ao.Profile, error) {
	switch {
	case ref.Profile != nil && ref.ProfileID != "":
		return nil, errors.InvalidArgument("set either profile or profile_id, not both")
	case ref.Profile != nil:
		profile := normalized(ref.Profile)
		if err := profile.Validate(); err != nil {
			return nil, err
		}
		return profile, nil
	case ref.ProfileID != "":
		if o.profileService == nil {
			return nil, errors.FailedPrecondition("profile store is not configured")
		}
		out, err := o.profileService.GetProfile(ctx, &profiles.GetProfileInput{ID: ref.ProfileID})
		if err != nil {
			return nil, err
		}
		return normalized(out.Profile), nil
	default:
		return nil, errors.InvalidArgument("profile or profile_id is required")
	}
}

// normalized returns a copy of p with identity fields mirrored into its stats
func normalized(p *ao.Profile) *ao.Profile {
	profile := *p
	profile.Stats = maps.Clone(p.Stats)
	profile.Normalize()
	return &profile
}

func (o *orchestrator) EvaluateRequirements(ctx context.Context, input *EvaluateRequirementsInput) (*EvaluateRequirementsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	profile, err := o.loadProfile(ctx, input.ProfileRef)
	if err != nil {
		return nil, err
	}

	return &EvaluateRequirementsOutput{Result: compat.Evaluate(profile, input.Requirements)}, nil
}

func (o *orchestrator) EvaluateItem(ctx context.Context, input *EvaluateItemInput) (*EvaluateItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	profile, err := o.loadProfile(ctx, input.ProfileRef)
	if err != nil {
		return nil, err
	}

	item, result, err := o.evaluateItem(ctx, profile, ItemRef{AOID: input.AOID, QL: input.QL})
	if err != nil {
		return nil, err
	}

	return &EvaluateItemOutput{Item: item, Result: result}, nil
}

func (o *orchestrator) evaluateItem(ctx context.Context, profile *ao.Profile, ref ItemRef) (*ao.Item, *compat.Result, error) {
	out, err := o.itemService.ResolveItem(ctx, &items.ResolveItemInput{AOID: ref.AOID, QL: ref.QL})
	if err != nil {
		return nil, nil, err
	}
	return out.Item, compat.Evaluate(profile, out.Item.Requirements), nil
}

func (o *orchestrator) EvaluateItems(ctx context.Context, input *EvaluateItemsInput) (*EvaluateItemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if len(input.Items) > MaxBatchSize {
		return nil, errors.InvalidArgumentf("at most %d items per batch", MaxBatchSize)
	}

	profile, err := o.loadProfile(ctx, input.ProfileRef)
	if err != nil {
		return nil, err
	}

	entries := make([]ItemEvaluation, len(input.Items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.parallelism)
	for i, ref := range input.Items {
		g.Go(func() error {
			entries[i].Ref = ref
			if err := gctx.Err(); err != nil {
				entries[i].Err = err
				return nil
			}
			entries[i].Item, entries[i].Result, entries[i].Err = o.evaluateItem(gctx, profile, ref)
			return nil
		})
	}
	// Workers never return an error.
	_ = g.Wait()

	if err := errors.FromContext(ctx, "batch evaluation interrupted"); err != nil {
		return nil, err
	}

	failed := 0
	for _, e := range entries {
		if e.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		slog.WarnContext(ctx, "Batch evaluation had failures",
			"items", len(entries),
			"failed", failed)
	}

	return &EvaluateItemsOutput{Entries: entries}, nil
}
