// Package v1alpha1 declares the TinkerService gRPC contract: message types,
// the service descriptor, its JSON codec and a typed client.
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "tinkertools.api.v1alpha1.TinkerService"

// Full method names
const (
	GetItemFullMethodName              = "/" + ServiceName + "/GetItem"
	GetInterpolationInfoFullMethodName = "/" + ServiceName + "/GetInterpolationInfo"
	ResolveItemFullMethodName          = "/" + ServiceName + "/ResolveItem"
	SearchItemsFullMethodName          = "/" + ServiceName + "/SearchItems"
	EvaluateRequirementsFullMethodName = "/" + ServiceName + "/EvaluateRequirements"
	EvaluateItemFullMethodName         = "/" + ServiceName + "/EvaluateItem"
	EvaluateItemsFullMethodName        = "/" + ServiceName + "/EvaluateItems"
	CreateProfileFullMethodName        = "/" + ServiceName + "/CreateProfile"
	GetProfileFullMethodName           = "/" + ServiceName + "/GetProfile"
	UpdateProfileFullMethodName        = "/" + ServiceName + "/UpdateProfile"
	DeleteProfileFullMethodName        = "/" + ServiceName + "/DeleteProfile"
	ListProfilesFullMethodName         = "/" + ServiceName + "/ListProfiles"
)

// TinkerServiceServer is the server API for TinkerService
type TinkerServiceServer interface {
	GetItem(context.Context, *GetItemRequest) (*GetItemResponse, error)
	GetInterpolationInfo(context.Context, *GetInterpolationInfoRequest) (*GetInterpolationInfoResponse, error)
	ResolveItem(context.Context, *ResolveItemRequest) (*ResolveItemResponse, error)
	SearchItems(context.Context, *SearchItemsRequest) (*SearchItemsResponse, error)
	EvaluateRequirements(context.Context, *EvaluateRequirementsRequest) (*EvaluateRequirementsResponse, error)
	EvaluateItem(context.Context, *EvaluateItemRequest) (*EvaluateItemResponse, error)
	EvaluateItems(context.Context, *EvaluateItemsRequest) (*EvaluateItemsResponse, error)
	CreateProfile(context.Context, *CreateProfileRequest) (*CreateProfileResponse, error)
	GetProfile(context.Context, *GetProfileRequest) (*GetProfileResponse, error)
	UpdateProfile(context.Context, *UpdateProfileRequest) (*UpdateProfileResponse, error)
	DeleteProfile(context.Context, *DeleteProfileRequest) (*DeleteProfileResponse, error)
	ListProfiles(context.Context, *ListProfilesRequest) (*ListProfilesResponse, error)
}

// UnimplementedTinkerServiceServer must be embedded to have forward compatible implementations
type UnimplementedTinkerServiceServer struct{}

func (UnimplementedTinkerServiceServer) GetItem(context.Context, *GetItemRequest) (*GetItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetItem not implemented")
}

func (UnimplementedTinkerServiceServer) GetInterpolationInfo(context.Context, *GetInterpolationInfoRequest) (*GetInterpolationInfoResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetInterpolationInfo not implemented")
}

func (UnimplementedTinkerServiceServer) ResolveItem(context.Context, *ResolveItemRequest) (*ResolveItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ResolveItem not implemented")
}

func (UnimplementedTinkerServiceServer) SearchItems(context.Context, *SearchItemsRequest) (*SearchItemsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SearchItems not implemented")
}

func (UnimplementedTinkerServiceServer) EvaluateRequirements(context.Context, *EvaluateRequirementsRequest) (*EvaluateRequirementsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method EvaluateRequirements not implemented")
}

func (UnimplementedTinkerServiceServer) EvaluateItem(context.Context, *EvaluateItemRequest) (*EvaluateItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method EvaluateItem not implemented")
}

func (UnimplementedTinkerServiceServer) EvaluateItems(context.Context, *EvaluateItemsRequest) (*EvaluateItemsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method EvaluateItems not implemented")
}

func (UnimplementedTinkerServiceServer) CreateProfile(context.Context, *CreateProfileRequest) (*CreateProfileResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateProfile not implemented")
}

func (UnimplementedTinkerServiceServer) GetProfile(context.Context, *GetProfileRequest) (*GetProfileResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetProfile not implemented")
}

func (UnimplementedTinkerServiceServer) UpdateProfile(context.Context, *UpdateProfileRequest) (*UpdateProfileResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateProfile not implemented")
}

func (UnimplementedTinkerServiceServer) DeleteProfile(context.Context, *DeleteProfileRequest) (*DeleteProfileResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteProfile not implemented")
}

func (UnimplementedTinkerServiceServer) ListProfiles(context.Context, *ListProfilesRequest) (*ListProfilesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListProfiles not implemented")
}

// RegisterTinkerServiceServer registers srv with s
func RegisterTinkerServiceServer(s grpc.ServiceRegistrar, srv TinkerServiceServer) {
	s.RegisterService(&TinkerService_ServiceDesc, srv)
}

// unaryHandler adapts a typed server method to a grpc.MethodHandler
func unaryHandler[Req, Resp any](
	fullMethod string,
	call func(TinkerServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(TinkerServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(TinkerServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// TinkerService_ServiceDesc is the grpc.ServiceDesc for TinkerService
var TinkerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TinkerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetItem",
			Handler:    unaryHandler(GetItemFullMethodName, TinkerServiceServer.GetItem),
		},
		{
			MethodName: "GetInterpolationInfo",
			Handler:    unaryHandler(GetInterpolationInfoFullMethodName, TinkerServiceServer.GetInterpolationInfo),
		},
		{
			MethodName: "ResolveItem",
			Handler:    unaryHandler(ResolveItemFullMethodName, TinkerServiceServer.ResolveItem),
		},
		{
			MethodName: "SearchItems",
			Handler:    unaryHandler(SearchItemsFullMethodName, TinkerServiceServer.SearchItems),
		},
		{
			MethodName: "EvaluateRequirements",
			Handler:    unaryHandler(EvaluateRequirementsFullMethodName, TinkerServiceServer.EvaluateRequirements),
		},
		{
			MethodName: "EvaluateItem",
			Handler:    unaryHandler(EvaluateItemFullMethodName, TinkerServiceServer.EvaluateItem),
		},
		{
			MethodName: "EvaluateItems",
			Handler:    unaryHandler(EvaluateItemsFullMethodName, TinkerServiceServer.EvaluateItems),
		},
		{
			MethodName: "CreateProfile",
			Handler:    unaryHandler(CreateProfileFullMethodName, TinkerServiceServer.CreateProfile),
		},
		{
			MethodName: "GetProfile",
			Handler:    unaryHandler(GetProfileFullMethodName, TinkerServiceServer.GetProfile),
		},
		{
			MethodName: "UpdateProfile",
			Handler:    unaryHandler(UpdateProfileFullMethodName, TinkerServiceServer.UpdateProfile),
		},
		{
			MethodName: "DeleteProfile",
			Handler:    unaryHandler(DeleteProfileFullMethodName, TinkerServiceServer.DeleteProfile),
		},
		{
			MethodName: "ListProfiles",
			Handler:    unaryHandler(ListProfilesFullMethodName, TinkerServiceServer.ListProfiles),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "tinkertools/api/v1alpha1/tinker.json",
}
