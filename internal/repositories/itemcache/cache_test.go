package itemcache_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/tinkertools/tinker-api/internal/entities/ao"
	"github.com/tinkertools/tinker-api/internal/errors"
	"github.com/tinkertools/tinker-api/internal/redis"
	"github.com/tinkertools/tinker-api/internal/repositories/itemcache"
	"github.com/tinkertools/tinker-api/internal/repositories/items"
	itemsmock "github.com/tinkertools/tinker-api/internal/repositories/items/mock"
)

type CacheTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	mr    *miniredis.Miniredis
	next  *itemsmock.MockRepository
	repo  items.Repository
	ctx   context.Context
	item  *ao.Item
	input items.GetItemInput
}

func TestCacheSuite(t *testing.T) {
	suite.Run(t, new(CacheTestSuite))
}

func (s *CacheTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mr = miniredis.RunT(s.T())
	s.next = itemsmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	client, err := redis.NewClient(s.mr.Addr(), nil)
	s.Require().NoError(err)

	s.repo, err = itemcache.New(&itemcache.Config{
		Client: client,
		Next:   s.next,
		TTL:    time.Minute,
	})
	s.Require().NoError(err)

	s.item = &ao.Item{
		ID:    7,
		AOID:  1000,
		Name:  "Kevlar Vest",
		QL:    100,
		Stats: []ao.StatValue{{Stat: ao.StatStrength, Value: 10}},
	}
	s.input = items.GetItemInput{AOID: 1000, QL: 100}
}

func (s *CacheTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CacheTestSuite) TestGetItemReadThrough() {
	s.next.EXPECT().GetItem(gomock.Any(), s.input).Return(&items.GetItemOutput{Item: s.item}, nil).Times(1)

	first, err := s.repo.GetItem(s.ctx, s.input)
	s.Require().NoError(err)
	s.Equal(s.item, first.Item)
	s.True(s.mr.Exists(itemcache.ItemKey(1000, 100)))
	s.Equal(time.Minute, s.mr.TTL(itemcache.ItemKey(1000, 100)))

	second, err := s.repo.GetItem(s.ctx, s.input)
	s.Require().NoError(err)
	s.Equal(s.item, second.Item)
}

func (s *CacheTestSuite) TestNotFoundIsNotCached() {
	s.next.EXPECT().GetItem(gomock.Any(), s.input).Return(nil, errors.NotFound("item not found")).Times(2)

	for range 2 {
		_, err := s.repo.GetItem(s.ctx, s.input)
		s.True(errors.IsNotFound(err))
	}
	s.False(s.mr.Exists(itemcache.ItemKey(1000, 100)))
}

func (s *CacheTestSuite) TestCorruptEntryFallsThrough() {
	s.Require().NoError(s.mr.Set(itemcache.ItemKey(1000, 100), "{not json"))
	s.next.EXPECT().GetItem(gomock.Any(), s.input).Return(&items.GetItemOutput{Item: s.item}, nil)

	out, err := s.repo.GetItem(s.ctx, s.input)
	s.Require().NoError(err)
	s.Equal(s.item, out.Item)
}

func (s *CacheTestSuite) TestRedisDownFallsThrough() {
	s.mr.Close()
	s.next.EXPECT().GetItem(gomock.Any(), s.input).Return(&items.GetItemOutput{Item: s.item}, nil)

	out, err := s.repo.GetItem(s.ctx, s.input)
	s.Require().NoError(err)
	s.Equal(s.item, out.Item)
}

func (s *CacheTestSuite) TestConcurrentMissesCollapse() {
	release := make(chan struct{})
	s.next.EXPECT().GetItem(gomock.Any(), s.input).DoAndReturn(
		func(context.Context, items.GetItemInput) (*items.GetItemOutput, error) {
			<-release
			return &items.GetItemOutput{Item: s.item}, nil
		}).MinTimes(1).MaxTimes(2)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := s.repo.GetItem(s.ctx, s.input)
			s.NoError(err)
			s.Equal(s.item.Name, out.Item.Name)
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
}

func (s *CacheTestSuite) TestCanceledCallerDoesNotFailSharedMiss() {
	started := make(chan struct{})
	release := make(chan struct{})
	s.next.EXPECT().GetItem(gomock.Any(), s.input).DoAndReturn(
		func(ctx context.Context, _ items.GetItemInput) (*items.GetItemOutput, error) {
			close(started)
			<-release
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return &items.GetItemOutput{Item: s.item}, nil
		}).Times(1)

	firstCtx, cancel := context.WithCancel(s.ctx)
	firstErr := make(chan error, 1)
	go func() {
		_, err := s.repo.GetItem(firstCtx, s.input)
		firstErr <- err
	}()
	<-started

	type result struct {
		out *items.GetItemOutput
		err error
	}
	second := make(chan result, 1)
	go func() {
		out, err := s.repo.GetItem(s.ctx, s.input)
		second <- result{out, err}
	}()

	cancel()
	s.ErrorIs(<-firstErr, context.Canceled)

	time.Sleep(50 * time.Millisecond)
	close(release)

	res := <-second
	s.Require().NoError(res.err)
	s.Equal(s.item.Name, res.out.Item.Name)
	s.True(s.mr.Exists(itemcache.ItemKey(1000, 100)))
}

func (s *CacheTestSuite) TestInterpolationInfo() {
	input := items.GetInterpolationInfoInput{AOID: 1000}
	ranges := []ao.InterpolationRange{{MinQL: 1, MaxQL: 100, BaseAOID: 1000, Interpolatable: true}}
	s.next.EXPECT().GetInterpolationInfo(gomock.Any(), input).
		Return(&items.GetInterpolationInfoOutput{AOID: 1000, Ranges: ranges}, nil).Times(1)

	for range 2 {
		out, err := s.repo.GetInterpolationInfo(s.ctx, input)
		s.Require().NoError(err)
		s.Equal(ranges, out.Ranges)
		s.Equal(int64(1000), out.AOID)
	}
}

func (s *CacheTestSuite) TestWritesInvalidate() {
	s.Require().NoError(s.mr.Set(itemcache.ItemKey(1000, 100), "{}"))
	s.Require().NoError(s.mr.Set(itemcache.InterpolationKey(1000), "[]"))

	upsert := items.UpsertItemsInput{Items: []*ao.Item{s.item}}
	s.next.EXPECT().UpsertItems(gomock.Any(), upsert).Return(&items.UpsertItemsOutput{Count: 1}, nil)
	_, err := s.repo.UpsertItems(s.ctx, upsert)
	s.Require().NoError(err)
	s.False(s.mr.Exists(itemcache.ItemKey(1000, 100)))

	replace := items.ReplaceRangesInput{AOID: 1000}
	s.next.EXPECT().ReplaceRanges(gomock.Any(), replace).Return(&items.ReplaceRangesOutput{}, nil)
	_, err = s.repo.ReplaceRanges(s.ctx, replace)
	s.Require().NoError(err)
	s.False(s.mr.Exists(itemcache.InterpolationKey(1000)))
}

func (s *CacheTestSuite) TestSearchPassesThrough() {
	input := items.SearchItemsInput{Query: "vest"}
	s.next.EXPECT().SearchItems(gomock.Any(), input).Return(&items.SearchItemsOutput{Total: 3}, nil)

	out, err := s.repo.SearchItems(s.ctx, input)
	s.Require().NoError(err)
	s.Equal(3, out.Total)
}

func (s *CacheTestSuite) TestConfigValidate() {
	_, err := itemcache.New(&itemcache.Config{})
	s.True(errors.IsInvalidArgument(err))
	_, err = itemcache.New(nil)
	s.Error(err)
}
