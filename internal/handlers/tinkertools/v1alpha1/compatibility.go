package v1alpha1

import (
	"context"

	v1alpha1 "github.com/tinkertools/tinker-api/internal/api/tinkertools/v1alpha1"
	"github.com/tinkertools/tinker-api/internal/entities/ao"
	"github.com/tinkertools/tinker-api/internal/errors"
	"github.com/tinkertools/tinker-api/internal/orchestrators/compatibility"
)

func profileRef(profile *ao.Profile, profileID string) compatibility.ProfileRef {
	return compatibility.ProfileRef{Profile: profile, ProfileID: profileID}
}

// EvaluateRequirements checks a requirement list against a profile
func (h *Handler) EvaluateRequirements(
	ctx context.Context,
	req *v1alpha1.EvaluateRequirementsRequest,
) (*v1alpha1.EvaluateRequirementsResponse, error) {
	out, err := h.compatibilityService.EvaluateRequirements(ctx, &compatibility.EvaluateRequirementsInput{
		ProfileRef:   profileRef(req.Profile, req.ProfileId),
		Requirements: req.Requirements,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &v1alpha1.EvaluateRequirementsResponse{Result: out.Result}, nil
}

// EvaluateItem resolves an item at a QL and checks its requirements
func (h *Handler) EvaluateItem(
	ctx context.Context,
	req *v1alpha1.EvaluateItemRequest,
) (*v1alpha1.EvaluateItemResponse, error) {
	if err := validateItemRef(req.Aoid, req.Ql); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.compatibilityService.EvaluateItem(ctx, &compatibility.EvaluateItemInput{
		ProfileRef: profileRef(req.Profile, req.ProfileId),
		AOID:       req.Aoid,
		QL:         req.Ql,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &v1alpha1.EvaluateItemResponse{Item: out.Item, Result: out.Result}, nil
}

// EvaluateItems checks many items against one profile. Entries that fail
// carry an error instead of failing the call.
func (h *Handler) EvaluateItems(
	ctx context.Context,
	req *v1alpha1.EvaluateItemsRequest,
) (*v1alpha1.EvaluateItemsResponse, error) {
	if len(req.Items) == 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("items is required"))
	}

	refs := make([]compatibility.ItemRef, len(req.Items))
	for i, item := range req.Items {
		refs[i] = compatibility.ItemRef{AOID: item.Aoid, QL: item.Ql}
	}

	out, err := h.compatibilityService.EvaluateItems(ctx, &compatibility.EvaluateItemsInput{
		ProfileRef: profileRef(req.Profile, req.ProfileId),
		Items:      refs,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	entries := make([]v1alpha1.ItemEvaluation, len(out.Entries))
	for i, e := range out.Entries {
		entries[i] = v1alpha1.ItemEvaluation{
			Aoid:   e.Ref.AOID,
			Ql:     e.Ref.QL,
			Item:   e.Item,
			Result: e.Result,
		}
		if e.Err != nil {
			entries[i].Error = &v1alpha1.EntryError{
				Code:      errors.GetCode(e.Err).String(),
				Message:   errors.GetMessage(e.Err),
				Retryable: errors.IsRetryable(e.Err),
			}
		}
	}

	return &v1alpha1.EvaluateItemsResponse{Entries: entries}, nil
}
