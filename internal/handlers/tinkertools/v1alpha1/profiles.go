package v1alpha1

import (
	"context"

	v1alpha1 "github.com/tinkertools/tinker-api/internal/api/tinkertools/v1alpha1"
	"github.com/tinkertools/tinker-api/internal/errors"
	"github.com/tinkertools/tinker-api/internal/orchestrators/profiles"
)

func (h *Handler) requireProfiles() error {
	if h.profileService == nil {
		return errors.ToGRPCError(errors.FailedPrecondition("profile store is not configured"))
	}
	return nil
}

// CreateProfile saves a new profile and returns it with its generated ID
func (h *Handler) CreateProfile(
	ctx context.Context,
	req *v1alpha1.CreateProfileRequest,
) (*v1alpha1.CreateProfileResponse, error) {
	if err := h.requireProfiles(); err != nil {
		return nil, err
	}
	if req.Profile == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("profile is required"))
	}

	out, err := h.profileService.CreateProfile(ctx, &profiles.CreateProfileInput{Profile: req.Profile})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &v1alpha1.CreateProfileResponse{Profile: out.Profile}, nil
}

// GetProfile loads a saved profile
func (h *Handler) GetProfile(
	ctx context.Context,
	req *v1alpha1.GetProfileRequest,
) (*v1alpha1.GetProfileResponse, error) {
	if err := h.requireProfiles(); err != nil {
		return nil, err
	}
	if req.Id == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("id is required"))
	}

	out, err := h.profileService.GetProfile(ctx, &profiles.GetProfileInput{ID: req.Id})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &v1alpha1.GetProfileResponse{Profile: out.Profile}, nil
}

// UpdateProfile replaces a saved profile
func (h *Handler) UpdateProfile(
	ctx context.Context,
	req *v1alpha1.UpdateProfileRequest,
) (*v1alpha1.UpdateProfileResponse, error) {
	if err := h.requireProfiles(); err != nil {
		return nil, err
	}
	if req.Profile == nil || req.Profile.ID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("profile.id is required"))
	}

	out, err := h.profileService.UpdateProfile(ctx, &profiles.UpdateProfileInput{Profile: req.Profile})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &v1alpha1.UpdateProfileResponse{Profile: out.Profile}, nil
}

// DeleteProfile removes a saved profile
func (h *Handler) DeleteProfile(
	ctx context.Context,
	req *v1alpha1.DeleteProfileRequest,
) (*v1alpha1.DeleteProfileResponse, error) {
	if err := h.requireProfiles(); err != nil {
		return nil, err
	}
	if req.Id == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("id is required"))
	}

	if _, err := h.profileService.DeleteProfile(ctx, &profiles.DeleteProfileInput{ID: req.Id}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &v1alpha1.DeleteProfileResponse{}, nil
}

// ListProfiles lists saved profiles by name
func (h *Handler) ListProfiles(
	ctx context.Context,
	_ *v1alpha1.ListProfilesRequest,
) (*v1alpha1.ListProfilesResponse, error) {
	if err := h.requireProfiles(); err != nil {
		return nil, err
	}

	out, err := h.profileService.ListProfiles(ctx, &profiles.ListProfilesInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &v1alpha1.ListProfilesResponse{Profiles: out.Profiles}, nil
}
