package client

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/tinkertools/tinker-api/internal/api/tinkertools/v1alpha1"
	"github.com/tinkertools/tinker-api/internal/entities/ao"
)

var (
	evalProfileID   string
	evalProfileFile string
	evalRequirement []string
	evalItems       []string
)

// requirementPattern matches "<stat><op><value>", e.g. "54>=100" or "30 has 4"
var requirementPattern = regexp.MustCompile(`^(\d+)\s*(==|<=|>=|!=|has|lacks)\s*(-?\d+)$`)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate [aoid] [ql]",
	Short: "Check whether a profile meets requirements",
	Long: `Evaluate one item at a QL, a batch of items (--items 246817@150,246817@200),
or an explicit requirement list (--req '54>=100' --req '30 has 4') against a saved
profile (--profile-id) or a profile JSON file (--profile-file).`,
	Args: cobra.RangeArgs(0, 2),
	RunE: runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringVar(&evalProfileID, "profile-id", "", "ID of a saved profile")
	evaluateCmd.Flags().StringVar(&evalProfileFile, "profile-file", "", "Profile JSON file")
	evaluateCmd.Flags().StringArrayVar(&evalRequirement, "req", nil, "Requirement as <stat><op><value>")
	evaluateCmd.Flags().StringSliceVar(&evalItems, "items", nil, "Items as <aoid>@<ql>")
}

func parseRequirement(s string) (ao.Requirement, error) {
	m := requirementPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return ao.Requirement{}, fmt.Errorf("invalid requirement %q: want <stat><op><value>", s)
	}
	stat, _ := strconv.Atoi(m[1])
	value, _ := strconv.Atoi(m[3])
	return ao.Requirement{Stat: ao.StatID(stat), Operator: ao.ParseOperator(m[2]), Value: value}, nil
}

func parseItemRefs(values []string) ([]apiv1alpha1.ItemRef, error) {
	refs := make([]apiv1alpha1.ItemRef, 0, len(values))
	for _, v := range values {
		aoidArg, qlArg, ok := strings.Cut(v, "@")
		if !ok {
			return nil, fmt.Errorf("invalid item %q: want <aoid>@<ql>", v)
		}
		aoid, ql, err := parseItemRef(aoidArg, qlArg)
		if err != nil {
			return nil, err
		}
		refs = append(refs, apiv1alpha1.ItemRef{Aoid: aoid, Ql: ql})
	}
	return refs, nil
}

func readProfileFile(path string) (*ao.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}
	var profile ao.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile %s: %w", path, err)
	}
	return &profile, nil
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	var profile *ao.Profile
	if evalProfileFile != "" {
		p, err := readProfileFile(evalProfileFile)
		if err != nil {
			return err
		}
		profile = p
	}

	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	w := cmd.OutOrStdout()

	switch {
	case len(evalRequirement) > 0:
		reqs := make([]ao.Requirement, 0, len(evalRequirement))
		for _, s := range evalRequirement {
			req, err := parseRequirement(s)
			if err != nil {
				return err
			}
			reqs = append(reqs, req)
		}

		resp, err := client.EvaluateRequirements(ctx, &apiv1alpha1.EvaluateRequirementsRequest{
			Profile:      profile,
			ProfileId:    evalProfileID,
			Requirements: reqs,
		})
		if err != nil {
			return describeError("evaluate requirements", err)
		}
		if jsonOutput {
			return printJSON(w, resp)
		}
		printResult(w, resp.Result)

	case len(evalItems) > 0:
		refs, err := parseItemRefs(evalItems)
		if err != nil {
			return err
		}

		resp, err := client.EvaluateItems(ctx, &apiv1alpha1.EvaluateItemsRequest{
			Profile:   profile,
			ProfileId: evalProfileID,
			Items:     refs,
		})
		if err != nil {
			return describeError("evaluate items", err)
		}
		if jsonOutput {
			return printJSON(w, resp)
		}
		for _, e := range resp.Entries {
			if e.Error != nil {
				fmt.Fprintf(w, "%d@%d: %s (%s%s)\n", e.Aoid, e.Ql, e.Error.Message, e.Error.Code, retryHint(e.Error.Retryable))
				continue
			}
			fmt.Fprintf(w, "%d@%d %s: %s, score %d\n", e.Aoid, e.Ql, e.Item.Name, e.Result.Tier, e.Result.Score)
		}

	default:
		if len(args) != 2 {
			return fmt.Errorf("evaluate needs [aoid] [ql], --items or --req")
		}
		aoid, ql, err := parseItemRef(args[0], args[1])
		if err != nil {
			return err
		}

		resp, err := client.EvaluateItem(ctx, &apiv1alpha1.EvaluateItemRequest{
			Profile:   profile,
			ProfileId: evalProfileID,
			Aoid:      aoid,
			Ql:        ql,
		})
		if err != nil {
			return describeError("evaluate item", err)
		}
		if jsonOutput {
			return printJSON(w, resp)
		}
		printItem(w, resp.Item)
		printResult(w, resp.Result)
	}

	return nil
}
