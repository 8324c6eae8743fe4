package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tinkertools/tinker-api/internal/orchestrators/items"
	"github.com/tinkertools/tinker-api/internal/repositories/itemcache"
	itemsrepo "github.com/tinkertools/tinker-api/internal/repositories/items"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Load an item dump into the configured store",
	Long: `Import reads a JSON document of the form {"items": [...], "families": [{"aoid": N, "ranges": [...]}]}
and upserts it into the configured item store. Use "-" to read from stdin.
When Redis is enabled, cached entries for the imported items are invalidated.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(cfg.Log.Handler()))

	input, err := readImport(cmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	store, err := openStore(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Warn("Failed to close item store", "error", err)
		}
	}()

	var repo itemsrepo.Repository = store
	if cfg.Redis.Enabled {
		redisClient, err := connectRedis(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer func() {
			_ = redisClient.Close() // nolint:errcheck // safe to ignore in cleanup
		}()

		repo, err = itemcache.New(&itemcache.Config{Client: redisClient, Next: store, TTL: cfg.Redis.CacheTTL})
		if err != nil {
			return fmt.Errorf("failed to create item cache: %w", err)
		}
	}

	svc, err := items.NewOrchestrator(&items.Config{ItemRepo: repo})
	if err != nil {
		return fmt.Errorf("failed to create item service: %w", err)
	}

	out, err := svc.Import(ctx, input)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d items and %d range families\n", out.Items, out.Families)
	return nil
}

func readImport(stdin io.Reader, path string) (*items.ImportInput, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer func() {
			_ = f.Close() // nolint:errcheck // read-only
		}()
		r = f
	}

	var input items.ImportInput
	if err := json.NewDecoder(r).Decode(&input); err != nil {
		return nil, fmt.Errorf("failed to decode import %s: %w", path, err)
	}
	return &input, nil
}
