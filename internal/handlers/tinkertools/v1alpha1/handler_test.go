package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	apiv1alpha1 "github.com/tinkertools/tinker-api/internal/api/tinkertools/v1alpha1"
	compat "github.com/tinkertools/tinker-api/internal/engine/compatibility"
	"github.com/tinkertools/tinker-api/internal/entities/ao"
	"github.com/tinkertools/tinker-api/internal/errors"
	v1alpha1 "github.com/tinkertools/tinker-api/internal/handlers/tinkertools/v1alpha1"
	"github.com/tinkertools/tinker-api/internal/orchestrators/compatibility"
	compatibilitymock "github.com/tinkertools/tinker-api/internal/orchestrators/compatibility/mock"
	"github.com/tinkertools/tinker-api/internal/orchestrators/items"
	itemsmock "github.com/tinkertools/tinker-api/internal/orchestrators/items/mock"
	"github.com/tinkertools/tinker-api/internal/orchestrators/profiles"
	profilesmock "github.com/tinkertools/tinker-api/internal/orchestrators/profiles/mock"
	"github.com/tinkertools/tinker-api/internal/testutils"
)

const bufSize = 1024 * 1024

type HandlerTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	itemService          *itemsmock.MockService
	profileService       *profilesmock.MockService
	compatibilityService *compatibilitymock.MockService
	server               *grpc.Server
	conn                 *grpc.ClientConn
	client               apiv1alpha1.TinkerServiceClient
	ctx                  context.Context
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.itemService = itemsmock.NewMockService(s.ctrl)
	s.profileService = profilesmock.NewMockService(s.ctrl)
	s.compatibilityService = compatibilitymock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		ItemService:          s.itemService,
		ProfileService:       s.profileService,
		CompatibilityService: s.compatibilityService,
	})
	s.Require().NoError(err)

	s.client = s.serve(handler)
}

// serve starts an in-process server for handler and returns a client for it
func (s *HandlerTestSuite) serve(handler apiv1alpha1.TinkerServiceServer) apiv1alpha1.TinkerServiceClient {
	lis := bufconn.Listen(bufSize)
	s.server = grpc.NewServer()
	apiv1alpha1.RegisterTinkerServiceServer(s.server, handler)
	go func() {
		_ = s.server.Serve(lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.conn = conn

	return apiv1alpha1.NewTinkerServiceClient(conn)
}

func (s *HandlerTestSuite) TearDownTest() {
	if s.conn != nil {
		_ = s.conn.Close()
	}
	if s.server != nil {
		s.server.Stop()
	}
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) TestNewHandlerValidation() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Require().Error(err)
	s.Contains(err.Error(), "ItemService")
	s.Contains(err.Error(), "CompatibilityService")
}

func (s *HandlerTestSuite) TestResolveItem() {
	vestRange := testutils.VestRanges()[1]
	resolved := testutils.VestLow()
	resolved.QL = 150
	resolved.Interpolated = true

	s.itemService.EXPECT().
		ResolveItem(gomock.Any(), &items.ResolveItemInput{AOID: testutils.VestAOID, QL: 150}).
		Return(&items.ResolveItemOutput{Item: resolved, Range: &vestRange}, nil)

	resp, err := s.client.ResolveItem(s.ctx, &apiv1alpha1.ResolveItemRequest{Aoid: testutils.VestAOID, Ql: 150})
	s.Require().NoError(err)

	s.Equal(150, resp.Item.QL)
	s.True(resp.Item.Interpolated)
	s.Equal(resolved.Requirements, resp.Item.Requirements)
	s.Require().NotNil(resp.Range)
	s.Equal(vestRange, *resp.Range)
}

func (s *HandlerTestSuite) TestResolveItemOutOfRange() {
	s.itemService.EXPECT().ResolveItem(gomock.Any(), gomock.Any()).
		Return(nil, errors.OutOfRange("ql 250 is outside 1-200").
			WithMeta("min_ql", 1).
			WithMeta("max_ql", 200))

	_, err := s.client.ResolveItem(s.ctx, &apiv1alpha1.ResolveItemRequest{Aoid: testutils.VestAOID, Ql: 250})
	s.Require().Error(err)
	s.Equal(codes.OutOfRange, status.Code(err))

	converted := errors.FromGRPCError(err)
	s.True(errors.IsOutOfRange(converted))
	s.Equal("200", errors.GetMeta(converted)["max_ql"])
}

func (s *HandlerTestSuite) TestRequestValidation() {
	testCases := []struct {
		name string
		call func() error
	}{
		{
			name: "get item without aoid",
			call: func() error {
				_, err := s.client.GetItem(s.ctx, &apiv1alpha1.GetItemRequest{Ql: 1})
				return err
			},
		},
		{
			name: "resolve without ql",
			call: func() error {
				_, err := s.client.ResolveItem(s.ctx, &apiv1alpha1.ResolveItemRequest{Aoid: 1})
				return err
			},
		},
		{
			name: "interpolation info without aoid",
			call: func() error {
				_, err := s.client.GetInterpolationInfo(s.ctx, &apiv1alpha1.GetInterpolationInfoRequest{})
				return err
			},
		},
		{
			name: "empty batch",
			call: func() error {
				_, err := s.client.EvaluateItems(s.ctx, &apiv1alpha1.EvaluateItemsRequest{ProfileId: "p"})
				return err
			},
		},
		{
			name: "get profile without id",
			call: func() error {
				_, err := s.client.GetProfile(s.ctx, &apiv1alpha1.GetProfileRequest{})
				return err
			},
		},
		{
			name: "update profile without id",
			call: func() error {
				_, err := s.client.UpdateProfile(s.ctx, &apiv1alpha1.UpdateProfileRequest{Profile: &ao.Profile{Level: 1}})
				return err
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.call()
			s.Require().Error(err)
			s.Equal(codes.InvalidArgument, status.Code(err))
		})
	}
}

func (s *HandlerTestSuite) TestSearchItems() {
	s.itemService.EXPECT().
		SearchItems(gomock.Any(), &items.SearchItemsInput{Query: "vest", Filter: "ql >= 100", PageSize: 10}).
		Return(&items.SearchItemsOutput{
			Items:      []*ao.Item{testutils.VestLow()},
			Total:      11,
			NextOffset: 10,
		}, nil)

	resp, err := s.client.SearchItems(s.ctx, &apiv1alpha1.SearchItemsRequest{
		Query:    "vest",
		Filter:   "ql >= 100",
		PageSize: 10,
	})
	s.Require().NoError(err)
	s.Len(resp.Items, 1)
	s.Equal(11, resp.Total)
	s.Equal(10, resp.NextOffset)
}

func (s *HandlerTestSuite) TestEvaluateRequirements() {
	reqs := []ao.Requirement{{Stat: ao.StatLevel, Operator: ao.OperatorGreaterOrEqual, Value: 100}}
	result := compat.Evaluate(testutils.VeteranProfile(), reqs)

	s.compatibilityService.EXPECT().
		EvaluateRequirements(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *compatibility.EvaluateRequirementsInput) (*compatibility.EvaluateRequirementsOutput, error) {
			s.Equal("profile_test_001", in.ProfileID)
			s.Nil(in.Profile)
			s.Equal(reqs, in.Requirements)
			return &compatibility.EvaluateRequirementsOutput{Result: result}, nil
		})

	resp, err := s.client.EvaluateRequirements(s.ctx, &apiv1alpha1.EvaluateRequirementsRequest{
		ProfileId:    "profile_test_001",
		Requirements: reqs,
	})
	s.Require().NoError(err)
	s.False(resp.Result.Satisfied)
	s.Equal(1, resp.Result.UnmetCount)
	s.Equal(compat.TierIncompatible, resp.Result.Tier)
	s.Equal(80, resp.Result.PerRequirement[0].Current)
}

func (s *HandlerTestSuite) TestEvaluateItemsEntryErrors() {
	s.compatibilityService.EXPECT().EvaluateItems(gomock.Any(), gomock.Any()).
		Return(&compatibility.EvaluateItemsOutput{Entries: []compatibility.ItemEvaluation{
			{
				Ref:    compatibility.ItemRef{AOID: testutils.VestAOID, QL: 100},
				Item:   testutils.VestLow(),
				Result: compat.Evaluate(testutils.VeteranProfile(), testutils.VestLow().Requirements),
			},
			{
				Ref: compatibility.ItemRef{AOID: testutils.VestAOID, QL: 250},
				Err: errors.OutOfRange("ql 250 is outside 1-200"),
			},
			{
				Ref: compatibility.ItemRef{AOID: testutils.VestAOID, QL: 150},
				Err: errors.Unavailable("boundary item at QL 200 is missing"),
			},
		}}, nil)

	resp, err := s.client.EvaluateItems(s.ctx, &apiv1alpha1.EvaluateItemsRequest{
		Profile: testutils.VeteranProfile(),
		Items: []apiv1alpha1.ItemRef{
			{Aoid: testutils.VestAOID, Ql: 100},
			{Aoid: testutils.VestAOID, Ql: 250},
			{Aoid: testutils.VestAOID, Ql: 150},
		},
	})
	s.Require().NoError(err)
	s.Require().Len(resp.Entries, 3)

	s.Nil(resp.Entries[0].Error)
	s.Equal(50, resp.Entries[0].Result.Score)

	s.Require().NotNil(resp.Entries[1].Error)
	s.Equal(string(errors.CodeOutOfRange), resp.Entries[1].Error.Code)
	s.Equal(250, resp.Entries[1].Ql)
	s.Nil(resp.Entries[1].Result)
	s.False(resp.Entries[1].Error.Retryable)

	s.Require().NotNil(resp.Entries[2].Error)
	s.Equal(string(errors.CodeUnavailable), resp.Entries[2].Error.Code)
	s.True(resp.Entries[2].Error.Retryable)
}

func (s *HandlerTestSuite) TestProfileLifecycle() {
	created := testutils.VeteranProfile()
	created.ID = "profile_1"

	s.profileService.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).
		Return(&profiles.CreateProfileOutput{Profile: created}, nil)
	s.profileService.EXPECT().ListProfiles(gomock.Any(), gomock.Any()).
		Return(&profiles.ListProfilesOutput{Profiles: []*ao.Profile{created}}, nil)
	s.profileService.EXPECT().DeleteProfile(gomock.Any(), &profiles.DeleteProfileInput{ID: "profile_1"}).
		Return(&profiles.DeleteProfileOutput{}, nil)
	s.profileService.EXPECT().GetProfile(gomock.Any(), &profiles.GetProfileInput{ID: "profile_1"}).
		Return(nil, errors.NotFound("profile not found"))

	createResp, err := s.client.CreateProfile(s.ctx, &apiv1alpha1.CreateProfileRequest{Profile: testutils.VeteranProfile()})
	s.Require().NoError(err)
	s.Equal("profile_1", createResp.Profile.ID)
	s.Equal(500, createResp.Profile.Value(ao.StatFirstAid))

	listResp, err := s.client.ListProfiles(s.ctx, &apiv1alpha1.ListProfilesRequest{})
	s.Require().NoError(err)
	s.Len(listResp.Profiles, 1)

	_, err = s.client.DeleteProfile(s.ctx, &apiv1alpha1.DeleteProfileRequest{Id: "profile_1"})
	s.Require().NoError(err)

	_, err = s.client.GetProfile(s.ctx, &apiv1alpha1.GetProfileRequest{Id: "profile_1"})
	s.Equal(codes.NotFound, status.Code(err))
}

func (s *HandlerTestSuite) TestProfilesWithoutStore() {
	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		ItemService:          s.itemService,
		CompatibilityService: s.compatibilityService,
	})
	s.Require().NoError(err)

	_ = s.conn.Close()
	s.server.Stop()
	client := s.serve(handler)

	_, err = client.ListProfiles(s.ctx, &apiv1alpha1.ListProfilesRequest{})
	s.Equal(codes.FailedPrecondition, status.Code(err))
}
