package items

import (
	"context"
	"database/sql"
	_ "embed"
	stderrors "errors"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/tinkertools/tinker-api/internal/entities/ao"
	"github.com/tinkertools/tinker-api/internal/errors"
)

//go:embed schema/sqlite.sql
var sqliteSchema string

type sqliteStore struct {
	db *sql.DB
}

// SQLiteConfig contains configuration for the SQLite item store
type SQLiteConfig struct {
	// Path is the database file
	Path string
}

// Validate validates the SQLiteConfig
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if strings.TrimSpace(cfg.Path) == "" {
		return errors.InvalidArgument("path is required")
	}
	return nil
}

// NewSQLite opens a SQLite item store and applies the schema
func NewSQLite(ctx context.Context, cfg *SQLiteConfig) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dsn := filepath.Clean(cfg.Path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite db")
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to ping sqlite db")
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to apply sqlite schema")
	}

	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func (s *sqliteStore) GetItem(ctx context.Context, input GetItemInput) (*GetItemOutput, error) {
	item, err := scanItem(s.db.QueryRowContext(ctx, selectItemSQL, input.AOID, input.QL))
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("item %d at ql %d not found", input.AOID, input.QL).
				WithMeta("aoid", input.AOID).
				WithMeta("ql", input.QL)
		}
		return nil, errors.Wrapf(err, "failed to get item %d at ql %d", input.AOID, input.QL)
	}

	return &GetItemOutput{Item: item}, nil
}

func (s *sqliteStore) GetInterpolationInfo(ctx context.Context, input GetInterpolationInfoInput) (*GetInterpolationInfoOutput, error) {
	rows, err := s.db.QueryContext(ctx, selectRangesSQL, input.AOID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query ranges of item %d", input.AOID)
	}
	defer func() { _ = rows.Close() }()

	var ranges []ao.InterpolationRange
	for rows.Next() {
		r, err := scanRange(rows)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to scan range of item %d", input.AOID)
		}
		ranges = append(ranges, r)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to iterate ranges of item %d", input.AOID)
	}
	if len(ranges) == 0 {
		return nil, errors.NotFoundf("no interpolation ranges for item %d", input.AOID).
			WithMeta("aoid", input.AOID)
	}

	return &GetInterpolationInfoOutput{AOID: input.AOID, Ranges: ranges}, nil
}

func (s *sqliteStore) SearchItems(ctx context.Context, input SearchItemsInput) (*SearchItemsOutput, error) {
	q, err := buildSearch(input)
	if err != nil {
		return nil, err
	}

	var total int
	if err := s.db.QueryRowContext(ctx, q.countSQL, q.args...).Scan(&total); err != nil {
		return nil, errors.Wrap(err, "failed to count items")
	}

	rows, err := s.db.QueryContext(ctx, q.pageSQL, q.pageArgs...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search items")
	}
	defer func() { _ = rows.Close() }()

	found := make([]*ao.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan item")
		}
		found = append(found, item)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate items")
	}

	return &SearchItemsOutput{Items: found, Total: total}, nil
}

func (s *sqliteStore) UpsertItems(ctx context.Context, input UpsertItemsInput) (*UpsertItemsOutput, error) {
	for _, item := range input.Items {
		if err := validateItem(item); err != nil {
			return nil, err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, upsertItemSQL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare item upsert")
	}
	defer func() { _ = stmt.Close() }()

	for _, item := range input.Items {
		args, err := itemArgs(item)
		if err != nil {
			return nil, err
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return nil, errors.Wrapf(err, "failed to upsert item %d at ql %d", item.AOID, item.QL)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "failed to commit items")
	}

	return &UpsertItemsOutput{Count: len(input.Items)}, nil
}

func (s *sqliteStore) ReplaceRanges(ctx context.Context, input ReplaceRangesInput) (*ReplaceRangesOutput, error) {
	if err := validateRanges(input); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, deleteRangesSQL, input.AOID); err != nil {
		return nil, errors.Wrapf(err, "failed to clear ranges of item %d", input.AOID)
	}
	for _, r := range input.Ranges {
		args, err := rangeArgs(input.AOID, r)
		if err != nil {
			return nil, err
		}
		if _, err := tx.ExecContext(ctx, insertRangeSQL, args...); err != nil {
			return nil, errors.Wrapf(err, "failed to insert range %d-%d of item %d", r.MinQL, r.MaxQL, input.AOID)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "failed to commit ranges")
	}

	return &ReplaceRangesOutput{}, nil
}
