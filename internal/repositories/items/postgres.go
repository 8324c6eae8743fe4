package items

import (
	"context"
	_ "embed"
	stderrors "errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tinkertools/tinker-api/internal/entities/ao"
	"github.com/tinkertools/tinker-api/internal/errors"
)

//go:embed schema/postgres.sql
var postgresSchema string

type postgresStore struct {
	pool *pgxpool.Pool
}

// PostgresConfig contains configuration for the PostgreSQL item store
type PostgresConfig struct {
	DSN string
}

// Validate validates the PostgresConfig
func (cfg *PostgresConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if strings.TrimSpace(cfg.DSN) == "" {
		return errors.InvalidArgument("dsn is required")
	}
	return nil
}

// NewPostgres connects to PostgreSQL and applies the schema
func NewPostgres(ctx context.Context, cfg *PostgresConfig) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pool, err := pgxpool.New(ctx, cfg.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to postgres")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to ping postgres")
	}
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "failed to apply postgres schema")
	}

	return &postgresStore{pool: pool}, nil
}

func (s *postgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *postgresStore) GetItem(ctx context.Context, input GetItemInput) (*GetItemOutput, error) {
	item, err := scanItem(s.pool.QueryRow(ctx, rebind(selectItemSQL), input.AOID, input.QL))
	if err != nil {
		if stderrors.Is(err, pgx.ErrNoRows) {
			return nil, errors.NotFoundf("item %d at ql %d not found", input.AOID, input.QL).
				WithMeta("aoid", input.AOID).
				WithMeta("ql", input.QL)
		}
		return nil, errors.Wrapf(err, "failed to get item %d at ql %d", input.AOID, input.QL)
	}

	return &GetItemOutput{Item: item}, nil
}

func (s *postgresStore) GetInterpolationInfo(ctx context.Context, input GetInterpolationInfoInput) (*GetInterpolationInfoOutput, error) {
	rows, err := s.pool.Query(ctx, rebind(selectRangesSQL), input.AOID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query ranges of item %d", input.AOID)
	}
	defer rows.Close()

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

func (s *postgresStore) SearchItems(ctx context.Context, input SearchItemsInput) (*SearchItemsOutput, error) {
	q, err := buildSearch(input)
	if err != nil {
		return nil, err
	}

	var total int
	if err := s.pool.QueryRow(ctx, rebind(q.countSQL), q.args...).Scan(&total); err != nil {
		return nil, errors.Wrap(err, "failed to count items")
	}

	rows, err := s.pool.Query(ctx, rebind(q.pageSQL), q.pageArgs...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search items")
	}
	defer rows.Close()

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

func (s *postgresStore) UpsertItems(ctx context.Context, input UpsertItemsInput) (*UpsertItemsOutput, error) {
	batch := &pgx.Batch{}
	for _, item := range input.Items {
		if err := validateItem(item); err != nil {
			return nil, err
		}
		args, err := itemArgs(item)
		if err != nil {
			return nil, err
		}
		batch.Queue(rebind(upsertItemSQL), args...)
	}

	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert items")
	}

	return &UpsertItemsOutput{Count: len(input.Items)}, nil
}

func (s *postgresStore) ReplaceRanges(ctx context.Context, input ReplaceRangesInput) (*ReplaceRangesOutput, error) {
	if err := validateRanges(input); err != nil {
		return nil, err
	}

	batch := &pgx.Batch{}
	batch.Queue(rebind(deleteRangesSQL), input.AOID)
	for _, r := range input.Ranges {
		args, err := rangeArgs(input.AOID, r)
		if err != nil {
			return nil, err
		}
		batch.Queue(rebind(insertRangeSQL), args...)
	}

	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to replace ranges of item %d", input.AOID)
	}

	return &ReplaceRangesOutput{}, nil
}
