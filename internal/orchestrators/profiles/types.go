package profiles

import "github.com/tinkertools/tinker-api/internal/entities/ao"

// CreateProfileInput defines the request for saving a new profile
type CreateProfileInput struct {
	Profile *ao.Profile
}

// CreateProfileOutput defines the response for saving a new profile
type CreateProfileOutput struct {
	Profile *ao.Profile
}

// GetProfileInput defines the request for loading a profile
type GetProfileInput struct {
	ID string
}

// GetProfileOutput defines the response for loading a profile
type GetProfileOutput struct {
	Profile *ao.Profile
}

// UpdateProfileInput defines the request for replacing a profile
type UpdateProfileInput struct {
	Profile *ao.Profile
}

// UpdateProfileOutput defines the response for replacing a profile
type UpdateProfileOutput struct {
	Profile *ao.Profile
}

// DeleteProfileInput defines the request for deleting a profile
type DeleteProfileInput struct {
	ID string
}

// DeleteProfileOutput defines the response for deleting a profile
type DeleteProfileOutput struct{}

// ListProfilesInput defines the request for listing profiles
type ListProfilesInput struct{}

// ListProfilesOutput defines the response for listing profiles
type ListProfilesOutput struct {
	Profiles []*ao.Profile
}
