package v1alpha1

import (
	"context"

	v1alpha1 "github.com/tinkertools/tinker-api/internal/api/tinkertools/v1alpha1"
	"github.com/tinkertools/tinker-api/internal/errors"
	"github.com/tinkertools/tinker-api/internal/orchestrators/items"
)

func validateItemRef(aoid int64, ql int) error {
	vb := errors.NewValidationBuilder()
	if aoid <= 0 {
		vb.Field("aoid", "must be positive")
	}
	if ql <= 0 {
		vb.Field("ql", "must be positive")
	}
	return vb.Build()
}

// GetItem returns the stored record of an item at a QL
func (h *Handler) GetItem(
	ctx context.Context,
	req *v1alpha1.GetItemRequest,
) (*v1alpha1.GetItemResponse, error) {
	if err := validateItemRef(req.Aoid, req.Ql); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.itemService.GetItem(ctx, &items.GetItemInput{AOID: req.Aoid, QL: req.Ql})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &v1alpha1.GetItemResponse{Item: out.Item}, nil
}

// GetInterpolationInfo returns an item family's QL ranges
func (h *Handler) GetInterpolationInfo(
	ctx context.Context,
	req *v1alpha1.GetInterpolationInfoRequest,
) (*v1alpha1.GetInterpolationInfoResponse, error) {
	if req.Aoid <= 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("aoid must be positive"))
	}

	out, err := h.itemService.GetInterpolationInfo(ctx, &items.GetInterpolationInfoInput{AOID: req.Aoid})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &v1alpha1.GetInterpolationInfoResponse{Aoid: out.AOID, Ranges: out.Ranges}, nil
}

// ResolveItem returns an item at any supported QL, interpolating between
// stored boundaries when needed
func (h *Handler) ResolveItem(
	ctx context.Context,
	req *v1alpha1.ResolveItemRequest,
) (*v1alpha1.ResolveItemResponse, error) {
	if err := validateItemRef(req.Aoid, req.Ql); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.itemService.ResolveItem(ctx, &items.ResolveItemInput{AOID: req.Aoid, QL: req.Ql})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &v1alpha1.ResolveItemResponse{Item: out.Item, Range: out.Range}, nil
}

// SearchItems returns one page of items matching the query and filter
func (h *Handler) SearchItems(
	ctx context.Context,
	req *v1alpha1.SearchItemsRequest,
) (*v1alpha1.SearchItemsResponse, error) {
	out, err := h.itemService.SearchItems(ctx, &items.SearchItemsInput{
		Query:    req.Query,
		Filter:   req.Filter,
		PageSize: req.PageSize,
		Offset:   req.Offset,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &v1alpha1.SearchItemsResponse{
		Items:      out.Items,
		Total:      out.Total,
		NextOffset: out.NextOffset,
	}, nil
}
