package client

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/tinkertools/tinker-api/internal/api/tinkertools/v1alpha1"
)

var (
	searchFilter   string
	searchPageSize int
	searchOffset   int
)

var getItemCmd = &cobra.Command{
	Use:   "get-item [aoid] [ql]",
	Short: "Get a stored item",
	Long:  `Get the stored record of an item at an exact QL. No interpolation is performed.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runGetItem,
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [aoid] [ql]",
	Short: "Resolve an item at any QL",
	Long:  `Resolve an item at any QL inside its family's ranges, interpolating between stored boundaries.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runResolve,
}

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search items by name",
	Long: `Search items by case-insensitive name substring, optionally narrowed by an
AIP-160 filter over aoid, ql, item_class, is_nano and name, e.g. --filter 'ql >= 100 AND is_nano = false'.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchFilter, "filter", "", "AIP-160 filter expression")
	searchCmd.Flags().IntVar(&searchPageSize, "page-size", 0, "Results per page (server default when 0)")
	searchCmd.Flags().IntVar(&searchOffset, "offset", 0, "Results to skip")
}

func parseItemRef(aoidArg, qlArg string) (int64, int, error) {
	aoid, err := strconv.ParseInt(aoidArg, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid aoid %q: %w", aoidArg, err)
	}
	ql, err := strconv.Atoi(qlArg)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid ql %q: %w", qlArg, err)
	}
	return aoid, ql, nil
}

func runGetItem(cmd *cobra.Command, args []string) error {
	aoid, ql, err := parseItemRef(args[0], args[1])
	if err != nil {
		return err
	}

	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Printf("Requesting item %d at QL %d from %s...", aoid, ql, serverAddr)

	resp, err := client.GetItem(ctx, &apiv1alpha1.GetItemRequest{Aoid: aoid, Ql: ql})
	if err != nil {
		return describeError("get item", err)
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), resp)
	}
	printItem(cmd.OutOrStdout(), resp.Item)
	return nil
}

func runResolve(cmd *cobra.Command, args []string) error {
	aoid, ql, err := parseItemRef(args[0], args[1])
	if err != nil {
		return err
	}

	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ResolveItem(ctx, &apiv1alpha1.ResolveItemRequest{Aoid: aoid, Ql: ql})
	if err != nil {
		return describeError("resolve item", err)
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), resp)
	}

	w := cmd.OutOrStdout()
	printItem(w, resp.Item)
	if resp.Range != nil {
		fmt.Fprintf(w, "\nRange: QL %d-%d (base AOID %d, interpolatable %t)\n",
			resp.Range.MinQL, resp.Range.MaxQL, resp.Range.BaseAOID, resp.Range.Interpolatable)
	}
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) == 1 {
		query = args[0]
	}

	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.SearchItems(ctx, &apiv1alpha1.SearchItemsRequest{
		Query:    query,
		Filter:   searchFilter,
		PageSize: searchPageSize,
		Offset:   searchOffset,
	})
	if err != nil {
		return describeError("search items", err)
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), resp)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Found %d items:\n\n", resp.Total)
	for _, item := range resp.Items {
		fmt.Fprintf(w, "  %-8d QL %-4d %s\n", item.AOID, item.QL, item.Name)
	}
	if resp.NextOffset > 0 {
		fmt.Fprintf(w, "\nMore results: --offset %d\n", resp.NextOffset)
	}
	return nil
}
