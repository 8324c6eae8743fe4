package client

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiv1alpha1 "github.com/tinkertools/tinker-api/internal/api/tinkertools/v1alpha1"
	compat "github.com/tinkertools/tinker-api/internal/engine/compatibility"
	"github.com/tinkertools/tinker-api/internal/entities/ao"
	"github.com/tinkertools/tinker-api/internal/errors"
)

func TestParseRequirement(t *testing.T) {
	testCases := []struct {
		in   string
		want ao.Requirement
	}{
		{in: "54>=100", want: ao.Requirement{Stat: ao.StatLevel, Operator: ao.OperatorGreaterOrEqual, Value: 100}},
		{in: " 30 has 4 ", want: ao.Requirement{Stat: ao.StatCan, Operator: ao.OperatorHas, Value: 4}},
		{in: "60==-1", want: ao.Requirement{Stat: ao.StatProfession, Operator: ao.OperatorEqual, Value: -1}},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseRequirement(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := parseRequirement("level>=100")
	assert.Error(t, err)
}

func TestParseItemRefs(t *testing.T) {
	refs, err := parseItemRefs([]string{"246817@150", "1@1"})
	require.NoError(t, err)
	assert.Equal(t, []apiv1alpha1.ItemRef{{Aoid: 246817, Ql: 150}, {Aoid: 1, Ql: 1}}, refs)

	_, err = parseItemRefs([]string{"246817"})
	assert.Error(t, err)

	_, err = parseItemRefs([]string{"x@1"})
	assert.Error(t, err)
}

func TestDescribeOutOfRange(t *testing.T) {
	grpcErr := errors.ToGRPCError(errors.OutOfRange("out of range").
		WithMeta("ql", 250).
		WithMeta("min_ql", 1).
		WithMeta("max_ql", 200))

	err := describeError("resolve item", grpcErr)
	assert.EqualError(t, err, "failed to resolve item: QL 250 is outside 1-200")
}

func TestDescribeRetryable(t *testing.T) {
	grpcErr := errors.ToGRPCError(errors.Unavailable("boundary item missing"))
	err := describeError("resolve item", grpcErr)
	assert.EqualError(t, err, "failed to resolve item: boundary item missing, retryable")

	grpcErr = errors.ToGRPCError(errors.NotFound("item not found"))
	err = describeError("get item", grpcErr)
	assert.EqualError(t, err, "failed to get item: item not found")
}

func TestPrintResultShowsBreakpoints(t *testing.T) {
	profile := &ao.Profile{Level: 80, Stats: map[ao.StatID]int{ao.StatLevel: 80}}
	result := compat.Evaluate(profile, []ao.Requirement{
		{Stat: ao.StatLevel, Operator: ao.OperatorGreaterOrEqual, Value: 100},
	})

	var buf bytes.Buffer
	printResult(&buf, result)

	out := buf.String()
	assert.Contains(t, out, "cannot equip")
	assert.Contains(t, out, "Level >= 100")
	assert.Contains(t, out, "80/60/40/20")
}
