// Package v1alpha1 handles the TinkerService grpc interface
package v1alpha1

import (
	v1alpha1 "github.com/tinkertools/tinker-api/internal/api/tinkertools/v1alpha1"
	"github.com/tinkertools/tinker-api/internal/errors"
	"github.com/tinkertools/tinker-api/internal/orchestrators/compatibility"
	"github.com/tinkertools/tinker-api/internal/orchestrators/items"
	"github.com/tinkertools/tinker-api/internal/orchestrators/profiles"
)

// HandlerConfig holds dependencies for the handler.
// ProfileService is optional; profile methods return FAILED_PRECONDITION
// without it.
type HandlerConfig struct {
	ItemService          items.Service
	ProfileService       profiles.Service
	CompatibilityService compatibility.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.ItemService == nil {
		vb.RequiredField("ItemService")
	}
	if c.CompatibilityService == nil {
		vb.RequiredField("CompatibilityService")
	}
	return vb.Build()
}

// Handler implements the TinkerService gRPC service
type Handler struct {
	v1alpha1.UnimplementedTinkerServiceServer
	itemService          items.Service
	profileService       profiles.Service
	compatibilityService compatibility.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		itemService:          cfg.ItemService,
		profileService:       cfg.ProfileService,
		compatibilityService: cfg.CompatibilityService,
	}, nil
}
