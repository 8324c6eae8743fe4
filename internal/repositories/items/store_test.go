package items_test

import (
	"context"

	"github.com/stretchr/testify/suite"

	"github.com/tinkertools/tinker-api/internal/entities/ao"
	"github.com/tinkertools/tinker-api/internal/errors"
	"github.com/tinkertools/tinker-api/internal/repositories/items"
)

// StoreTestSuite runs the same behavior checks against every Store
type StoreTestSuite struct {
	suite.Suite
	open  func() items.Store
	store items.Store
	ctx   context.Context
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = s.open()
}

func (s *StoreTestSuite) TearDownTest() {
	if s.store != nil {
		s.Require().NoError(s.store.Close())
	}
}

func vest(aoid int64, ql, str int) *ao.Item {
	return &ao.Item{
		AOID:      aoid,
		Name:      "Kevlar Vest",
		QL:        ql,
		ItemClass: 2,
		Stats:     []ao.StatValue{{Stat: ao.StatStrength, Value: str}, {Stat: ao.StatMeleeAC, Value: ql}},
		Requirements: []ao.Requirement{
			{Stat: ao.StatLevel, Operator: ao.OperatorGreaterOrEqual, Value: ql / 2},
		},
		SpellData: []ao.SpellData{{Event: 14, Spells: []ao.Spell{{SpellID: 53045, Params: map[string]any{"amount": float64(10)}}}}},
	}
}

func (s *StoreTestSuite) seed() {
	_, err := s.store.UpsertItems(s.ctx, items.UpsertItemsInput{Items: []*ao.Item{
		vest(1000, 100, 10),
		vest(1000, 200, 30),
		{AOID: 2000, QL: 50, Name: "Nano Crystal (Ransack)", IsNano: true},
		{AOID: 3000, QL: 1, Name: "100%_Pure Novictum"},
	}})
	s.Require().NoError(err)
}

func (s *StoreTestSuite) TestGetItem() {
	s.seed()

	out, err := s.store.GetItem(s.ctx, items.GetItemInput{AOID: 1000, QL: 200})
	s.Require().NoError(err)

	expected := vest(1000, 200, 30)
	s.NotZero(out.Item.ID)
	s.Equal(expected.Name, out.Item.Name)
	s.Equal(expected.Stats, out.Item.Stats)
	s.Equal(expected.Requirements, out.Item.Requirements)
	s.Equal(expected.SpellData, out.Item.SpellData)
	s.False(out.Item.Interpolated)
}

func (s *StoreTestSuite) TestGetItemNotFound() {
	_, err := s.store.GetItem(s.ctx, items.GetItemInput{AOID: 1000, QL: 150})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal(int64(1000), errors.GetMeta(err)["aoid"])
}

func (s *StoreTestSuite) TestUpsertReplaces() {
	s.seed()

	updated := vest(1000, 100, 11)
	updated.Name = "Kevlar Vest (Improved)"
	_, err := s.store.UpsertItems(s.ctx, items.UpsertItemsInput{Items: []*ao.Item{updated}})
	s.Require().NoError(err)

	out, err := s.store.GetItem(s.ctx, items.GetItemInput{AOID: 1000, QL: 100})
	s.Require().NoError(err)
	s.Equal("Kevlar Vest (Improved)", out.Item.Name)
	v, _ := out.Item.Stat(ao.StatStrength)
	s.Equal(11, v)
}

func (s *StoreTestSuite) TestUpsertValidates() {
	_, err := s.store.UpsertItems(s.ctx, items.UpsertItemsInput{Items: []*ao.Item{{AOID: 0, QL: 0}}})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *StoreTestSuite) TestRanges() {
	override := []ao.Requirement{{Stat: ao.StatStrength, Operator: ao.OperatorGreaterOrEqual, Value: 5}}
	_, err := s.store.ReplaceRanges(s.ctx, items.ReplaceRangesInput{
		AOID: 1000,
		Ranges: []ao.InterpolationRange{
			{MinQL: 201, MaxQL: 300, BaseAOID: 1001, Interpolatable: true},
			{MinQL: 100, MaxQL: 200, BaseAOID: 1000, Interpolatable: true, Requirements: override},
		},
	})
	s.Require().NoError(err)

	out, err := s.store.GetInterpolationInfo(s.ctx, items.GetInterpolationInfoInput{AOID: 1000})
	s.Require().NoError(err)
	s.Equal([]ao.InterpolationRange{
		{MinQL: 100, MaxQL: 200, BaseAOID: 1000, Interpolatable: true, Requirements: override},
		{MinQL: 201, MaxQL: 300, BaseAOID: 1001, Interpolatable: true},
	}, out.Ranges)

	_, err = s.store.ReplaceRanges(s.ctx, items.ReplaceRangesInput{
		AOID:   1000,
		Ranges: []ao.InterpolationRange{{MinQL: 1, MaxQL: 1, BaseAOID: 1000}},
	})
	s.Require().NoError(err)

	out, err = s.store.GetInterpolationInfo(s.ctx, items.GetInterpolationInfoInput{AOID: 1000})
	s.Require().NoError(err)
	s.Len(out.Ranges, 1)
	s.False(out.Ranges[0].Interpolatable)
}

func (s *StoreTestSuite) TestRangesRejectOverlap() {
	_, err := s.store.ReplaceRanges(s.ctx, items.ReplaceRangesInput{
		AOID: 1000,
		Ranges: []ao.InterpolationRange{
			{MinQL: 1, MaxQL: 150, BaseAOID: 1000, Interpolatable: true},
			{MinQL: 100, MaxQL: 200, BaseAOID: 1000, Interpolatable: true},
		},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *StoreTestSuite) TestInterpolationInfoNotFound() {
	_, err := s.store.GetInterpolationInfo(s.ctx, items.GetInterpolationInfoInput{AOID: 42})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *StoreTestSuite) TestSearch() {
	s.seed()

	testCases := []struct {
		name     string
		input    items.SearchItemsInput
		expected []string
		total    int
	}{
		{
			name:     "case insensitive name",
			input:    items.SearchItemsInput{Query: "KEVLAR"},
			expected: []string{"Kevlar Vest", "Kevlar Vest"},
			total:    2,
		},
		{
			name:     "like wildcards are literal",
			input:    items.SearchItemsInput{Query: "100%_"},
			expected: []string{"100%_Pure Novictum"},
			total:    1,
		},
		{
			name:     "filter",
			input:    items.SearchItemsInput{Filter: `ql >= 150 AND item_class = 2`},
			expected: []string{"Kevlar Vest"},
			total:    1,
		},
		{
			name:     "query and filter",
			input:    items.SearchItemsInput{Query: "vest", Filter: `ql < 150`},
			expected: []string{"Kevlar Vest"},
			total:    1,
		},
		{
			name:     "paged",
			input:    items.SearchItemsInput{PageSize: 2, Offset: 2},
			expected: []string{"Kevlar Vest", "Nano Crystal (Ransack)"},
			total:    4,
		},
		{
			name:     "no match",
			input:    items.SearchItemsInput{Query: "zzz"},
			expected: []string{},
			total:    0,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.store.SearchItems(s.ctx, tc.input)
			s.Require().NoError(err)

			names := make([]string, 0, len(out.Items))
			for _, item := range out.Items {
				names = append(names, item.Name)
			}
			s.Equal(tc.expected, names)
			s.Equal(tc.total, out.Total)
		})
	}
}

func (s *StoreTestSuite) TestSearchBadFilter() {
	_, err := s.store.SearchItems(s.ctx, items.SearchItemsInput{Filter: `damage > 1`})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}
