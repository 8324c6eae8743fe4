package items_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/tinkertools/tinker-api/internal/entities/ao"
	"github.com/tinkertools/tinker-api/internal/errors"
	"github.com/tinkertools/tinker-api/internal/orchestrators/items"
	itemsrepo "github.com/tinkertools/tinker-api/internal/repositories/items"
	itemsrepomock "github.com/tinkertools/tinker-api/internal/repositories/items/mock"
	"github.com/tinkertools/tinker-api/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	itemRepo *itemsrepomock.MockRepository
	svc      items.Service
	ctx      context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.itemRepo = itemsrepomock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	svc, err := items.NewOrchestrator(&items.Config{ItemRepo: s.itemRepo})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) expectRanges() {
	s.itemRepo.EXPECT().
		GetInterpolationInfo(gomock.Any(), itemsrepo.GetInterpolationInfoInput{AOID: testutils.VestAOID}).
		Return(&itemsrepo.GetInterpolationInfoOutput{AOID: testutils.VestAOID, Ranges: testutils.VestRanges()}, nil)
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidates() {
	_, err := items.NewOrchestrator(&items.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "ItemRepo")
}

func (s *OrchestratorTestSuite) TestGetItem() {
	s.itemRepo.EXPECT().
		GetItem(s.ctx, itemsrepo.GetItemInput{AOID: testutils.VestAOID, QL: 100}).
		Return(&itemsrepo.GetItemOutput{Item: testutils.VestLow()}, nil)

	out, err := s.svc.GetItem(s.ctx, &items.GetItemInput{AOID: testutils.VestAOID, QL: 100})
	s.Require().NoError(err)
	s.Equal(testutils.VestLow(), out.Item)
}

func (s *OrchestratorTestSuite) TestGetItemValidation() {
	testCases := []struct {
		name  string
		input *items.GetItemInput
	}{
		{name: "nil input", input: nil},
		{name: "zero aoid", input: &items.GetItemInput{AOID: 0, QL: 1}},
		{name: "zero ql", input: &items.GetItemInput{AOID: 1, QL: 0}},
		{name: "ql too high", input: &items.GetItemInput{AOID: 1, QL: ao.MaxQL + 1}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.svc.GetItem(s.ctx, tc.input)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestResolveInterpolates() {
	s.expectRanges()
	s.itemRepo.EXPECT().
		GetItem(gomock.Any(), itemsrepo.GetItemInput{AOID: testutils.VestAOID, QL: 100}).
		Return(&itemsrepo.GetItemOutput{Item: testutils.VestLow()}, nil)
	s.itemRepo.EXPECT().
		GetItem(gomock.Any(), itemsrepo.GetItemInput{AOID: testutils.VestAOID, QL: 200}).
		Return(&itemsrepo.GetItemOutput{Item: testutils.VestHigh()}, nil)

	out, err := s.svc.ResolveItem(s.ctx, &items.ResolveItemInput{AOID: testutils.VestAOID, QL: 150})
	s.Require().NoError(err)

	s.True(out.Item.Interpolated)
	s.Equal(150, out.Item.QL)
	s.Equal([]ao.StatValue{
		{Stat: ao.StatStrength, Value: 20},
		{Stat: ao.StatMeleeAC, Value: 180},
	}, out.Item.Stats)
	s.Equal(testutils.VestLow().Requirements, out.Item.Requirements)
	s.Require().NotNil(out.Range)
	s.Equal(100, out.Range.MinQL)
}

func (s *OrchestratorTestSuite) TestResolveAtBoundaryReturnsStored() {
	s.expectRanges()
	s.itemRepo.EXPECT().
		GetItem(gomock.Any(), itemsrepo.GetItemInput{AOID: testutils.VestAOID, QL: 100}).
		Return(&itemsrepo.GetItemOutput{Item: testutils.VestLow()}, nil)

	out, err := s.svc.ResolveItem(s.ctx, &items.ResolveItemInput{AOID: testutils.VestAOID, QL: 100})
	s.Require().NoError(err)
	s.Equal(testutils.VestLow(), out.Item)
}

func (s *OrchestratorTestSuite) TestResolveOutOfRange() {
	s.expectRanges()

	_, err := s.svc.ResolveItem(s.ctx, &items.ResolveItemInput{AOID: testutils.VestAOID, QL: 250})
	s.Require().Error(err)
	s.True(errors.IsOutOfRange(err))
	s.False(errors.IsRetryable(err))

	meta := errors.GetMeta(err)
	s.Equal(testutils.VestAOID, meta["aoid"])
	s.Equal(250, meta["ql"])
	s.Equal(1, meta["min_ql"])
	s.Equal(200, meta["max_ql"])
}

func (s *OrchestratorTestSuite) TestResolveMissingBoundary() {
	s.expectRanges()
	s.itemRepo.EXPECT().
		GetItem(gomock.Any(), itemsrepo.GetItemInput{AOID: testutils.VestAOID, QL: 100}).
		Return(&itemsrepo.GetItemOutput{Item: testutils.VestLow()}, nil)
	s.itemRepo.EXPECT().
		GetItem(gomock.Any(), itemsrepo.GetItemInput{AOID: testutils.VestAOID, QL: 200}).
		Return(nil, errors.NotFound("item not found"))

	_, err := s.svc.ResolveItem(s.ctx, &items.ResolveItemInput{AOID: testutils.VestAOID, QL: 150})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
	s.True(errors.IsRetryable(err))
	s.Equal(200, errors.GetMeta(err)["boundary_ql"])
}

func (s *OrchestratorTestSuite) TestResolveInterruptedByContext() {
	testCases := []struct {
		name        string
		newCtx      func() (context.Context, context.CancelFunc)
		cancelFetch bool
		code        errors.Code
		retryable   bool
	}{
		{
			name:        "canceled",
			newCtx:      func() (context.Context, context.CancelFunc) { return context.WithCancel(s.ctx) },
			cancelFetch: true,
			code:        errors.CodeCanceled,
		},
		{
			name: "deadline exceeded",
			newCtx: func() (context.Context, context.CancelFunc) {
				return context.WithTimeout(s.ctx, time.Millisecond)
			},
			code:      errors.CodeDeadlineExceeded,
			retryable: true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			ctx, cancel := tc.newCtx()
			defer cancel()

			s.expectRanges()
			s.itemRepo.EXPECT().
				GetItem(gomock.Any(), itemsrepo.GetItemInput{AOID: testutils.VestAOID, QL: 100}).
				DoAndReturn(func(ctx context.Context, _ itemsrepo.GetItemInput) (*itemsrepo.GetItemOutput, error) {
					if tc.cancelFetch {
						cancel()
					}
					<-ctx.Done()
					return nil, ctx.Err()
				})

			_, err := s.svc.ResolveItem(ctx, &items.ResolveItemInput{AOID: testutils.VestAOID, QL: 150})
			s.Require().Error(err)
			s.Equal(tc.code, errors.GetCode(err))
			s.False(errors.IsUnavailable(err))
			s.Equal(tc.retryable, errors.IsRetryable(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestResolveWithoutRanges() {
	s.itemRepo.EXPECT().
		GetInterpolationInfo(gomock.Any(), itemsrepo.GetInterpolationInfoInput{AOID: 77}).
		Return(nil, errors.NotFound("no ranges"))
	s.itemRepo.EXPECT().
		GetItem(gomock.Any(), itemsrepo.GetItemInput{AOID: 77, QL: 5}).
		Return(&itemsrepo.GetItemOutput{Item: &ao.Item{AOID: 77, QL: 5, Name: "Notum Chip"}}, nil)

	out, err := s.svc.ResolveItem(s.ctx, &items.ResolveItemInput{AOID: 77, QL: 5})
	s.Require().NoError(err)
	s.Equal("Notum Chip", out.Item.Name)
	s.Nil(out.Range)
}

func (s *OrchestratorTestSuite) TestResolveRangeLoadFails() {
	s.itemRepo.EXPECT().
		GetInterpolationInfo(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("database is locked"))

	_, err := s.svc.ResolveItem(s.ctx, &items.ResolveItemInput{AOID: 77, QL: 5})
	s.True(errors.IsUnavailable(err))
}

func (s *OrchestratorTestSuite) TestSearchItems() {
	testCases := []struct {
		name     string
		input    *items.SearchItemsInput
		repoIn   itemsrepo.SearchItemsInput
		returned int
		total    int
		next     int
	}{
		{
			name:     "default page size",
			input:    &items.SearchItemsInput{Query: "vest"},
			repoIn:   itemsrepo.SearchItemsInput{Query: "vest", PageSize: itemsrepo.DefaultPageSize},
			returned: 25,
			total:    30,
			next:     25,
		},
		{
			name:     "last page",
			input:    &items.SearchItemsInput{Query: "vest", Offset: 25, PageSize: 10},
			repoIn:   itemsrepo.SearchItemsInput{Query: "vest", PageSize: 10, Offset: 25},
			returned: 5,
			total:    30,
			next:     0,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			found := make([]*ao.Item, tc.returned)
			s.itemRepo.EXPECT().SearchItems(s.ctx, tc.repoIn).
				Return(&itemsrepo.SearchItemsOutput{Items: found, Total: tc.total}, nil)

			out, err := s.svc.SearchItems(s.ctx, tc.input)
			s.Require().NoError(err)
			s.Len(out.Items, tc.returned)
			s.Equal(tc.total, out.Total)
			s.Equal(tc.next, out.NextOffset)
		})
	}
}

func (s *OrchestratorTestSuite) TestSearchItemsValidation() {
	_, err := s.svc.SearchItems(s.ctx, &items.SearchItemsInput{PageSize: 500, Offset: -1})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "page_size")
	s.Contains(err.Error(), "offset")
}

func (s *OrchestratorTestSuite) TestImport() {
	input := &items.ImportInput{
		Items:    []*ao.Item{testutils.VestLow(), testutils.VestHigh()},
		Families: []items.Family{{AOID: testutils.VestAOID, Ranges: testutils.VestRanges()}},
	}
	s.itemRepo.EXPECT().UpsertItems(s.ctx, itemsrepo.UpsertItemsInput{Items: input.Items}).
		Return(&itemsrepo.UpsertItemsOutput{Count: 2}, nil)
	s.itemRepo.EXPECT().ReplaceRanges(s.ctx, itemsrepo.ReplaceRangesInput{AOID: testutils.VestAOID, Ranges: testutils.VestRanges()}).
		Return(&itemsrepo.ReplaceRangesOutput{}, nil)

	out, err := s.svc.Import(s.ctx, input)
	s.Require().NoError(err)
	s.Equal(2, out.Items)
	s.Equal(1, out.Families)
}

func (s *OrchestratorTestSuite) TestImportRejectsBadRangesBeforeWriting() {
	_, err := s.svc.Import(s.ctx, &items.ImportInput{
		Items: []*ao.Item{testutils.VestLow()},
		Families: []items.Family{{AOID: 1, Ranges: []ao.InterpolationRange{
			{MinQL: 1, MaxQL: 100, BaseAOID: 1},
			{MinQL: 50, MaxQL: 150, BaseAOID: 1},
		}}},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}
