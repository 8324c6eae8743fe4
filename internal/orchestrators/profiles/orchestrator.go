// Package profiles implements the profile orchestrator for saved characters
package profiles

//go:generate mockgen -destination=mock/mock_service.go -package=profilesmock github.com/tinkertools/tinker-api/internal/orchestrators/profiles Service

import (
	"context"
	"log/slog"
	"maps"

	"github.com/tinkertools/tinker-api/internal/entities/ao"
	"github.com/tinkertools/tinker-api/internal/errors"
	"github.com/tinkertools/tinker-api/internal/pkg/clock"
	"github.com/tinkertools/tinker-api/internal/pkg/idgen"
	profilesrepo "github.com/tinkertools/tinker-api/internal/repositories/profiles"
)

// IDPrefix is prepended to every generated profile ID
const IDPrefix = "profile"

// Service defines the interface for profile operations
type Service interface {
	CreateProfile(ctx context.Context, input *CreateProfileInput) (*CreateProfileOutput, error)
	GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error)
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*UpdateProfileOutput, error)
	DeleteProfile(ctx context.Context, input *DeleteProfileInput) (*DeleteProfileOutput, error)
	ListProfiles(ctx context.Context, input *ListProfilesInput) (*ListProfilesOutput, error)
}

// Config holds the dependencies for the profile orchestrator
type Config struct {
	ProfileRepo profilesrepo.Repository
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.ProfileRepo == nil {
		vb.RequiredField("ProfileRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

type orchestrator struct {
	profileRepo profilesrepo.Repository
	idGen       idgen.Generator
	clock       clock.Clock
}

// NewOrchestrator creates a new profile orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		profileRepo: cfg.ProfileRepo,
		idGen:       cfg.IDGenerator,
		clock:       cfg.Clock,
	}, nil
}

func (o *orchestrator) CreateProfile(ctx context.Context, input *CreateProfileInput) (*CreateProfileOutput, error) {
	if input == nil || input.Profile == nil {
		return nil, errors.InvalidArgument("profile is required")
	}

	profile := *input.Profile
	profile.Stats = maps.Clone(input.Profile.Stats)
	profile.ID = o.idGen.Generate()
	profile.Normalize()

	now := o.clock.Now().Unix()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	if err := profile.Validate(); err != nil {
		return nil, err
	}

	out, err := o.profileRepo.Create(ctx, profilesrepo.CreateInput{Profile: &profile})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create profile")
	}

	slog.InfoContext(ctx, "Profile created",
		"profile_id", profile.ID,
		"level", profile.Level,
		"profession", profile.Profession)

	return &CreateProfileOutput{Profile: out.Profile}, nil
}

func (o *orchestrator) GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("profile ID is required")
	}

	out, err := o.profileRepo.Get(ctx, profilesrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get profile %s", input.ID)
	}

	return &GetProfileOutput{Profile: out.Profile}, nil
}

func (o *orchestrator) UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*UpdateProfileOutput, error) {
	if input == nil || input.Profile == nil {
		return nil, errors.InvalidArgument("profile is required")
	}
	if input.Profile.ID == "" {
		return nil, errors.InvalidArgument("profile ID is required")
	}

	existing, err := o.profileRepo.Get(ctx, profilesrepo.GetInput{ID: input.Profile.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get profile %s", input.Profile.ID)
	}

	profile := *input.Profile
	profile.Stats = maps.Clone(input.Profile.Stats)
	profile.Normalize()
	profile.CreatedAt = existing.Profile.CreatedAt
	profile.UpdatedAt = o.clock.Now().Unix()

	if err := profile.Validate(); err != nil {
		return nil, err
	}

	out, err := o.profileRepo.Update(ctx, profilesrepo.UpdateInput{Profile: &profile})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update profile %s", profile.ID)
	}

	return &UpdateProfileOutput{Profile: out.Profile}, nil
}

func (o *orchestrator) DeleteProfile(ctx context.Context, input *DeleteProfileInput) (*DeleteProfileOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("profile ID is required")
	}

	if _, err := o.profileRepo.Delete(ctx, profilesrepo.DeleteInput{ID: input.ID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete profile %s", input.ID)
	}

	slog.InfoContext(ctx, "Profile deleted", "profile_id", input.ID)

	return &DeleteProfileOutput{}, nil
}

func (o *orchestrator) ListProfiles(ctx context.Context, _ *ListProfilesInput) (*ListProfilesOutput, error) {
	out, err := o.profileRepo.List(ctx, profilesrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	profiles := out.Profiles
	if profiles == nil {
		profiles = []*ao.Profile{}
	}
	return &ListProfilesOutput{Profiles: profiles}, nil
}
