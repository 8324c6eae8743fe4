package client

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	compat "github.com/tinkertools/tinker-api/internal/engine/compatibility"
	"github.com/tinkertools/tinker-api/internal/entities/ao"
	"github.com/tinkertools/tinker-api/internal/errors"
)

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal response to JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// describeError renders a gRPC failure with the server's error metadata
func describeError(action string, err error) error {
	converted := errors.FromGRPCError(err)
	meta := errors.GetMeta(converted)
	hint := retryHint(errors.IsRetryable(converted))

	switch {
	case errors.IsOutOfRange(converted):
		return fmt.Errorf("failed to %s: QL %v is outside %v-%v",
			action, meta["ql"], meta["min_ql"], meta["max_ql"])
	case len(meta) == 0:
		return fmt.Errorf("failed to %s: %s%s", action, errors.GetMessage(converted), hint)
	default:
		return fmt.Errorf("failed to %s: %s %v%s", action, errors.GetMessage(converted), meta, hint)
	}
}

func retryHint(retryable bool) string {
	if retryable {
		return ", retryable"
	}
	return ""
}

func printItem(w io.Writer, item *ao.Item) {
	kind := "item"
	if item.IsNano {
		kind = "nano"
	}
	fmt.Fprintf(w, "%s (AOID %d, QL %d, %s)", item.Name, item.AOID, item.QL, kind)
	if item.Interpolated {
		fmt.Fprint(w, " [interpolated]")
	}
	fmt.Fprintln(w)

	if item.Description != "" {
		fmt.Fprintf(w, "\n%s\n", item.Description)
	}

	printStats(w, "Stats", item.Stats)
	printStats(w, "Attack", item.AttackStats)
	printStats(w, "Defense", item.DefenseStats)

	if len(item.Requirements) > 0 {
		fmt.Fprintf(w, "\nRequirements:\n")
		for _, req := range item.Requirements {
			fmt.Fprintf(w, "  %s\n", req)
		}
	}
}

func printStats(w io.Writer, title string, stats []ao.StatValue) {
	if len(stats) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s:\n", title)
	for _, sv := range stats {
		fmt.Fprintf(w, "  %-24s %d\n", sv.Stat, sv.Value)
	}
}

func printResult(w io.Writer, result *compat.Result) {
	verdict := "can equip"
	if !result.Satisfied {
		verdict = "cannot equip"
	}
	fmt.Fprintf(w, "\nVerdict: %s (%s, score %d, %d met, %d unmet)\n",
		verdict, result.Tier, result.Score, result.MetCount, result.UnmetCount)

	for _, r := range result.PerRequirement {
		mark := "ok"
		if !r.Met {
			mark = "--"
		}
		fmt.Fprintf(w, "  [%s] %-32s current %d", mark, r.Requirement, r.Current)
		if !r.Met && len(r.Breakpoints) > 0 {
			fmt.Fprintf(w, "  over-equip at %s", joinInts(r.Breakpoints))
		}
		fmt.Fprintln(w)
	}
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, "/")
}
