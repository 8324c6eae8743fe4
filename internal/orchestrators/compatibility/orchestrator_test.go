package compatibility_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	compat "github.com/tinkertools/tinker-api/internal/engine/compatibility"
	"github.com/tinkertools/tinker-api/internal/entities/ao"
	"github.com/tinkertools/tinker-api/internal/errors"
	"github.com/tinkertools/tinker-api/internal/orchestrators/compatibility"
	"github.com/tinkertools/tinker-api/internal/orchestrators/items"
	itemsmock "github.com/tinkertools/tinker-api/internal/orchestrators/items/mock"
	"github.com/tinkertools/tinker-api/internal/orchestrators/profiles"
	profilesmock "github.com/tinkertools/tinker-api/internal/orchestrators/profiles/mock"
	"github.com/tinkertools/tinker-api/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	itemService    *itemsmock.MockService
	profileService *profilesmock.MockService
	svc            compatibility.Service
	ctx            context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.itemService = itemsmock.NewMockService(s.ctrl)
	s.profileService = profilesmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	svc, err := compatibility.NewOrchestrator(&compatibility.Config{
		ItemService:    s.itemService,
		ProfileService: s.profileService,
		Parallelism:    2,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func inline() compatibility.ProfileRef {
	return compatibility.ProfileRef{Profile: testutils.VeteranProfile()}
}

func (s *OrchestratorTestSuite) TestConfigValidation() {
	_, err := compatibility.NewOrchestrator(&compatibility.Config{Parallelism: -1})
	s.Require().Error(err)
	s.Contains(err.Error(), "ItemService")
	s.Contains(err.Error(), "Parallelism")
}

func (s *OrchestratorTestSuite) TestEvaluateRequirementsInline() {
	out, err := s.svc.EvaluateRequirements(s.ctx, &compatibility.EvaluateRequirementsInput{
		ProfileRef: inline(),
		Requirements: []ao.Requirement{
			{Stat: ao.StatLevel, Operator: ao.OperatorGreaterOrEqual, Value: 50},
			{Stat: ao.StatFirstAid, Operator: ao.OperatorGreaterOrEqual, Value: 400},
		},
	})
	s.Require().NoError(err)
	s.True(out.Result.Satisfied)
	s.Equal(compat.TierFull, out.Result.Tier)
	s.Equal(100, out.Result.Score)
}

func (s *OrchestratorTestSuite) TestEvaluateRequirementsIdentityStats() {
	// Identity fields are readable as stats even when the map omits them.
	profile := &ao.Profile{Level: 80, Profession: 10, Breed: 3, Gender: 1}

	out, err := s.svc.EvaluateRequirements(s.ctx, &compatibility.EvaluateRequirementsInput{
		ProfileRef: compatibility.ProfileRef{Profile: profile},
		Requirements: []ao.Requirement{
			{Stat: ao.StatLevel, Operator: ao.OperatorGreaterOrEqual, Value: 100},
		},
	})
	s.Require().NoError(err)
	s.False(out.Result.Satisfied)
	s.Equal(1, out.Result.UnmetCount)
	s.Equal(80, out.Result.PerRequirement[0].Current)
	s.Equal(compat.TierIncompatible, out.Result.Tier)
	s.Nil(profile.Stats)
}

func (s *OrchestratorTestSuite) TestEvaluateRequirementsStoredProfile() {
	s.profileService.EXPECT().
		GetProfile(s.ctx, &profiles.GetProfileInput{ID: "profile_test_001"}).
		Return(&profiles.GetProfileOutput{Profile: testutils.VeteranProfile()}, nil)

	out, err := s.svc.EvaluateRequirements(s.ctx, &compatibility.EvaluateRequirementsInput{
		ProfileRef: compatibility.ProfileRef{ProfileID: "profile_test_001"},
		Requirements: []ao.Requirement{
			{Stat: ao.StatTreatment, Operator: ao.OperatorGreaterOrEqual, Value: 700},
		},
	})
	s.Require().NoError(err)
	s.True(out.Result.Satisfied)
}

func (s *OrchestratorTestSuite) TestStoredProfileStaleLevelStat() {
	stored := testutils.VeteranProfile()
	stored.Level = 150

	s.profileService.EXPECT().
		GetProfile(s.ctx, &profiles.GetProfileInput{ID: stored.ID}).
		Return(&profiles.GetProfileOutput{Profile: stored}, nil)

	out, err := s.svc.EvaluateRequirements(s.ctx, &compatibility.EvaluateRequirementsInput{
		ProfileRef: compatibility.ProfileRef{ProfileID: stored.ID},
		Requirements: []ao.Requirement{
			{Stat: ao.StatLevel, Operator: ao.OperatorGreaterOrEqual, Value: 100},
		},
	})
	s.Require().NoError(err)
	s.True(out.Result.Satisfied)
	s.Equal(150, out.Result.PerRequirement[0].Current)
	s.Equal(80, stored.Stats[ao.StatLevel], "stored profile must not be modified")
}

func (s *OrchestratorTestSuite) TestProfileRefValidation() {
	testCases := []struct {
		name    string
		ref     compatibility.ProfileRef
		wantMsg string
	}{
		{name: "neither", ref: compatibility.ProfileRef{}, wantMsg: "required"},
		{
			name:    "both",
			ref:     compatibility.ProfileRef{Profile: testutils.VeteranProfile(), ProfileID: "x"},
			wantMsg: "not both",
		},
		{
			name:    "invalid inline",
			ref:     compatibility.ProfileRef{Profile: &ao.Profile{Level: 999}},
			wantMsg: "level",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.svc.EvaluateRequirements(s.ctx, &compatibility.EvaluateRequirementsInput{ProfileRef: tc.ref})
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.wantMsg)
		})
	}
}

func (s *OrchestratorTestSuite) TestStoredProfileWithoutStore() {
	svc, err := compatibility.NewOrchestrator(&compatibility.Config{ItemService: s.itemService})
	s.Require().NoError(err)

	_, err = svc.EvaluateRequirements(s.ctx, &compatibility.EvaluateRequirementsInput{
		ProfileRef: compatibility.ProfileRef{ProfileID: "profile_1"},
	})
	s.Equal(errors.CodeFailedPrecondition, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestEvaluateItem() {
	s.itemService.EXPECT().
		ResolveItem(s.ctx, &items.ResolveItemInput{AOID: testutils.VestAOID, QL: 100}).
		Return(&items.ResolveItemOutput{Item: testutils.VestLow()}, nil)

	out, err := s.svc.EvaluateItem(s.ctx, &compatibility.EvaluateItemInput{
		ProfileRef: inline(),
		AOID:       testutils.VestAOID,
		QL:         100,
	})
	s.Require().NoError(err)

	s.Equal(testutils.VestName, out.Item.Name)
	s.False(out.Result.Satisfied)
	s.Equal(1, out.Result.MetCount)
	s.Equal(1, out.Result.UnmetCount)
	s.Equal(50, out.Result.Score)
	s.Equal(compat.TierIncompatible, out.Result.Tier)
	s.Equal([]int{80, 60, 40, 20}, out.Result.PerRequirement[0].Breakpoints)
}

func (s *OrchestratorTestSuite) TestEvaluateItemResolveError() {
	s.itemService.EXPECT().ResolveItem(s.ctx, gomock.Any()).
		Return(nil, errors.OutOfRange("ql 250 outside 1-200"))

	_, err := s.svc.EvaluateItem(s.ctx, &compatibility.EvaluateItemInput{
		ProfileRef: inline(),
		AOID:       testutils.VestAOID,
		QL:         250,
	})
	s.True(errors.IsOutOfRange(err))
}

func (s *OrchestratorTestSuite) TestEvaluateItemsReportsPerEntry() {
	s.itemService.EXPECT().
		ResolveItem(gomock.Any(), &items.ResolveItemInput{AOID: testutils.VestAOID, QL: 100}).
		Return(&items.ResolveItemOutput{Item: testutils.VestLow()}, nil)
	s.itemService.EXPECT().
		ResolveItem(gomock.Any(), &items.ResolveItemInput{AOID: testutils.VestAOID, QL: 250}).
		Return(nil, errors.OutOfRange("ql 250 outside 1-200"))
	s.itemService.EXPECT().
		ResolveItem(gomock.Any(), &items.ResolveItemInput{AOID: 99, QL: 1}).
		Return(&items.ResolveItemOutput{Item: &ao.Item{AOID: 99, QL: 1, Name: "Pen"}}, nil)

	out, err := s.svc.EvaluateItems(s.ctx, &compatibility.EvaluateItemsInput{
		ProfileRef: inline(),
		Items: []compatibility.ItemRef{
			{AOID: testutils.VestAOID, QL: 100},
			{AOID: testutils.VestAOID, QL: 250},
			{AOID: 99, QL: 1},
		},
	})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 3)

	s.NoError(out.Entries[0].Err)
	s.Equal(compat.TierIncompatible, out.Entries[0].Result.Tier)

	s.True(errors.IsOutOfRange(out.Entries[1].Err))
	s.Nil(out.Entries[1].Result)
	s.Equal(compatibility.ItemRef{AOID: testutils.VestAOID, QL: 250}, out.Entries[1].Ref)

	s.NoError(out.Entries[2].Err)
	s.True(out.Entries[2].Result.Satisfied)
	s.Equal(100, out.Entries[2].Result.Score)
}

func (s *OrchestratorTestSuite) TestEvaluateItemsBatchLimit() {
	refs := make([]compatibility.ItemRef, compatibility.MaxBatchSize+1)

	_, err := s.svc.EvaluateItems(s.ctx, &compatibility.EvaluateItemsInput{ProfileRef: inline(), Items: refs})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestEvaluateItemsCanceled() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.svc.EvaluateItems(ctx, &compatibility.EvaluateItemsInput{
		ProfileRef: inline(),
		Items:      []compatibility.ItemRef{{AOID: 1, QL: 1}},
	})
	s.Equal(errors.CodeCanceled, errors.GetCode(err))
}
