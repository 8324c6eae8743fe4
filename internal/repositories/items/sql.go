package items

import (
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/tinkertools/tinker-api/internal/entities/ao"
	"github.com/tinkertools/tinker-api/internal/errors"
	"github.com/tinkertools/tinker-api/internal/filter"
)

const (
	itemColumns = `id, aoid, ql, name, item_class, is_nano, description, payload`

	selectItemSQL = `SELECT ` + itemColumns + ` FROM items WHERE aoid = ? AND ql = ?`

	selectRangesSQL = `SELECT min_ql, max_ql, base_aoid, interpolatable, requirements
		FROM interpolation_ranges WHERE aoid = ? ORDER BY min_ql`

	upsertItemSQL = `INSERT INTO items (aoid, ql, name, name_folded, item_class, is_nano, description, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (aoid, ql) DO UPDATE SET
			name = excluded.name,
			name_folded = excluded.name_folded,
			item_class = excluded.item_class,
			is_nano = excluded.is_nano,
			description = excluded.description,
			payload = excluded.payload`

	deleteRangesSQL = `DELETE FROM interpolation_ranges WHERE aoid = ?`

	insertRangeSQL = `INSERT INTO interpolation_ranges (aoid, min_ql, max_ql, base_aoid, interpolatable, requirements)
		VALUES (?, ?, ?, ?, ?, ?)`
)

// scanner is satisfied by database/sql and pgx rows
type scanner interface {
	Scan(dest ...any) error
}

// itemPayload holds the list columns of an item, stored as one JSON document
type itemPayload struct {
	Stats        []ao.StatValue   `json:"stats,omitempty"`
	Requirements []ao.Requirement `json:"requirements,omitempty"`
	SpellData    []ao.SpellData   `json:"spell_data,omitempty"`
	AttackStats  []ao.StatValue   `json:"attack_stats,omitempty"`
	DefenseStats []ao.StatValue   `json:"defense_stats,omitempty"`
}

func scanItem(row scanner) (*ao.Item, error) {
	var (
		item    ao.Item
		payload []byte
	)
	if err := row.Scan(
		&item.ID, &item.AOID, &item.QL, &item.Name,
		&item.ItemClass, &item.IsNano, &item.Description, &payload,
	); err != nil {
		return nil, err
	}

	var p itemPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, errors.Wrapf(err, "failed to decode payload of item %d at ql %d", item.AOID, item.QL)
	}
	item.Stats = p.Stats
	item.Requirements = p.Requirements
	item.SpellData = p.SpellData
	item.AttackStats = p.AttackStats
	item.DefenseStats = p.DefenseStats

	return &item, nil
}

func scanRange(row scanner) (ao.InterpolationRange, error) {
	var (
		r    ao.InterpolationRange
		reqs []byte
	)
	if err := row.Scan(&r.MinQL, &r.MaxQL, &r.BaseAOID, &r.Interpolatable, &reqs); err != nil {
		return ao.InterpolationRange{}, err
	}
	if len(reqs) > 0 {
		if err := json.Unmarshal(reqs, &r.Requirements); err != nil {
			return ao.InterpolationRange{}, errors.Wrapf(err, "failed to decode range %d-%d requirements", r.MinQL, r.MaxQL)
		}
	}
	return r, nil
}

// itemArgs returns the upsert parameters of an item
func itemArgs(item *ao.Item) ([]any, error) {
	payload, err := json.Marshal(itemPayload{
		Stats:        ao.DedupeStats(item.Stats),
		Requirements: item.Requirements,
		SpellData:    item.SpellData,
		AttackStats:  ao.DedupeStats(item.AttackStats),
		DefenseStats: ao.DedupeStats(item.DefenseStats),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode item %d at ql %d", item.AOID, item.QL)
	}

	return []any{
		item.AOID,
		item.QL,
		item.Name,
		filter.Fold(item.Name),
		item.ItemClass,
		item.IsNano,
		item.Description,
		string(payload),
	}, nil
}

// rangeArgs returns the insert parameters of a range. A nil override is
// stored as NULL so it stays distinguishable from an empty one.
func rangeArgs(aoid int64, r ao.InterpolationRange) ([]any, error) {
	var reqs any
	if r.Requirements != nil {
		data, err := json.Marshal(r.Requirements)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode range %d-%d requirements", r.MinQL, r.MaxQL)
		}
		reqs = string(data)
	}
	return []any{aoid, r.MinQL, r.MaxQL, r.BaseAOID, r.Interpolatable, reqs}, nil
}

func validateItem(item *ao.Item) error {
	if item == nil {
		return errors.InvalidArgument("item cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidatePositive("aoid", item.AOID, vb)
	errors.ValidateRange("ql", item.QL, ao.MinQL, ao.MaxQL, vb)
	errors.ValidateRequired("name", item.Name, vb)
	return vb.Build()
}

func validateRanges(input ReplaceRangesInput) error {
	if input.AOID <= 0 {
		return errors.InvalidArgument("aoid must be positive")
	}
	if err := ao.ValidateRanges(input.Ranges); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid interpolation ranges")
	}
	return nil
}

// searchQuery holds the count and page statements of a search
type searchQuery struct {
	countSQL string
	pageSQL  string
	args     []any
	pageArgs []any
}

func normalizePage(pageSize, offset int) (int, int) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return pageSize, offset
}

func buildSearch(input SearchItemsInput) (*searchQuery, error) {
	var (
		where []string
		args  []any
	)

	if q := strings.TrimSpace(input.Query); q != "" {
		where = append(where, `name_folded LIKE ? ESCAPE '\'`)
		args = append(args, "%"+escapeLike(filter.Fold(q))+"%")
	}

	cond, err := filter.ParseItemFilter(input.Filter)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid filter")
	}
	if !cond.IsEmpty() {
		where = append(where, cond.Clause)
		args = append(args, cond.Params...)
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	pageSize, offset := normalizePage(input.PageSize, input.Offset)

	pageArgs := make([]any, 0, len(args)+2)
	pageArgs = append(pageArgs, args...)
	pageArgs = append(pageArgs, pageSize, offset)

	return &searchQuery{
		countSQL: `SELECT COUNT(*) FROM items` + clause,
		pageSQL:  `SELECT ` + itemColumns + ` FROM items` + clause + ` ORDER BY name_folded, ql, id LIMIT ? OFFSET ?`,
		args:     args,
		pageArgs: pageArgs,
	}, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// rebind rewrites ? placeholders to PostgreSQL's $n form. Queries in this
// package never contain ? inside string literals.
func rebind(query string) string {
	var (
		b strings.Builder
		n int
	)
	b.Grow(len(query) + 8)
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}
