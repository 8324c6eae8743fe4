package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// TinkerServiceClient is the client API for TinkerService
type TinkerServiceClient interface {
	GetItem(ctx context.Context, in *GetItemRequest, opts ...grpc.CallOption) (*GetItemResponse, error)
	GetInterpolationInfo(ctx context.Context, in *GetInterpolationInfoRequest, opts ...grpc.CallOption) (*GetInterpolationInfoResponse, error)
	ResolveItem(ctx context.Context, in *ResolveItemRequest, opts ...grpc.CallOption) (*ResolveItemResponse, error)
	SearchItems(ctx context.Context, in *SearchItemsRequest, opts ...grpc.CallOption) (*SearchItemsResponse, error)
	EvaluateRequirements(ctx context.Context, in *EvaluateRequirementsRequest, opts ...grpc.CallOption) (*EvaluateRequirementsResponse, error)
	EvaluateItem(ctx context.Context, in *EvaluateItemRequest, opts ...grpc.CallOption) (*EvaluateItemResponse, error)
	EvaluateItems(ctx context.Context, in *EvaluateItemsRequest, opts ...grpc.CallOption) (*EvaluateItemsResponse, error)
	CreateProfile(ctx context.Context, in *CreateProfileRequest, opts ...grpc.CallOption) (*CreateProfileResponse, error)
	GetProfile(ctx context.Context, in *GetProfileRequest, opts ...grpc.CallOption) (*GetProfileResponse, error)
	UpdateProfile(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*UpdateProfileResponse, error)
	DeleteProfile(ctx context.Context, in *DeleteProfileRequest, opts ...grpc.CallOption) (*DeleteProfileResponse, error)
	ListProfiles(ctx context.Context, in *ListProfilesRequest, opts ...grpc.CallOption) (*ListProfilesResponse, error)
}

type tinkerServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewTinkerServiceClient returns a client that sends every call with the
// JSON content-subtype
func NewTinkerServiceClient(cc grpc.ClientConnInterface) TinkerServiceClient {
	return &tinkerServiceClient{cc: cc}
}

func (c *tinkerServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

func (c *tinkerServiceClient) GetItem(ctx context.Context, in *GetItemRequest, opts ...grpc.CallOption) (*GetItemResponse, error) {
	out := new(GetItemResponse)
	if err := c.invoke(ctx, GetItemFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tinkerServiceClient) GetInterpolationInfo(ctx context.Context, in *GetInterpolationInfoRequest, opts ...grpc.CallOption) (*GetInterpolationInfoResponse, error) {
	out := new(GetInterpolationInfoResponse)
	if err := c.invoke(ctx, GetInterpolationInfoFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tinkerServiceClient) ResolveItem(ctx context.Context, in *ResolveItemRequest, opts ...grpc.CallOption) (*ResolveItemResponse, error) {
	out := new(ResolveItemResponse)
	if err := c.invoke(ctx, ResolveItemFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tinkerServiceClient) SearchItems(ctx context.Context, in *SearchItemsRequest, opts ...grpc.CallOption) (*SearchItemsResponse, error) {
	out := new(SearchItemsResponse)
	if err := c.invoke(ctx, SearchItemsFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tinkerServiceClient) EvaluateRequirements(ctx context.Context, in *EvaluateRequirementsRequest, opts ...grpc.CallOption) (*EvaluateRequirementsResponse, error) {
	out := new(EvaluateRequirementsResponse)
	if err := c.invoke(ctx, EvaluateRequirementsFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tinkerServiceClient) EvaluateItem(ctx context.Context, in *EvaluateItemRequest, opts ...grpc.CallOption) (*EvaluateItemResponse, error) {
	out := new(EvaluateItemResponse)
	if err := c.invoke(ctx, EvaluateItemFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tinkerServiceClient) EvaluateItems(ctx context.Context, in *EvaluateItemsRequest, opts ...grpc.CallOption) (*EvaluateItemsResponse, error) {
	out := new(EvaluateItemsResponse)
	if err := c.invoke(ctx, EvaluateItemsFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tinkerServiceClient) CreateProfile(ctx context.Context, in *CreateProfileRequest, opts ...grpc.CallOption) (*CreateProfileResponse, error) {
	out := new(CreateProfileResponse)
	if err := c.invoke(ctx, CreateProfileFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tinkerServiceClient) GetProfile(ctx context.Context, in *GetProfileRequest, opts ...grpc.CallOption) (*GetProfileResponse, error) {
	out := new(GetProfileResponse)
	if err := c.invoke(ctx, GetProfileFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tinkerServiceClient) UpdateProfile(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*UpdateProfileResponse, error) {
	out := new(UpdateProfileResponse)
	if err := c.invoke(ctx, UpdateProfileFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tinkerServiceClient) DeleteProfile(ctx context.Context, in *DeleteProfileRequest, opts ...grpc.CallOption) (*DeleteProfileResponse, error) {
	out := new(DeleteProfileResponse)
	if err := c.invoke(ctx, DeleteProfileFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tinkerServiceClient) ListProfiles(ctx context.Context, in *ListProfilesRequest, opts ...grpc.CallOption) (*ListProfilesResponse, error) {
	out := new(ListProfilesResponse)
	if err := c.invoke(ctx, ListProfilesFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
