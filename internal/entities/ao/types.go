// Package ao holds the Anarchy Online game data entities served by tinker-api:
// items and nano programs, their stat and requirement lists, interpolation
// ranges and character profiles.
package ao

// MinQL is the lowest quality level any item can have
const MinQL = 1

// MaxQL bounds requested quality levels. Game data tops out around 300; the
// extra headroom covers special items.
const MaxQL = 1000

// StatValue is one numeric attribute of an item at a specific quality level
type StatValue struct {
	Stat  StatID `json:"stat"`
	Value int    `json:"value"`
}

// Item is a stored (or interpolated) item or nano program at one QL.
// Items sharing an AOID are QL variants of the same base item.
type Item struct {
	ID           int64         `json:"id"`
	AOID         int64         `json:"aoid"`
	Name         string        `json:"name"`
	QL           int           `json:"ql"`
	ItemClass    int           `json:"item_class"`
	IsNano       bool          `json:"is_nano"`
	Description  string        `json:"description,omitempty"`
	Stats        []StatValue   `json:"stats"`
	Requirements []Requirement `json:"requirements"`
	SpellData    []SpellData   `json:"spell_data,omitempty"`
	AttackStats  []StatValue   `json:"attack_stats,omitempty"`
	DefenseStats []StatValue   `json:"defense_stats,omitempty"`

	// Interpolated is set on synthetic records computed between two stored QLs.
	// Stored items never carry it.
	Interpolated bool `json:"interpolated"`
}

// Stat returns the value of a stat on the item and whether it is present
func (i *Item) Stat(id StatID) (int, bool) {
	for _, sv := range i.Stats {
		if sv.Stat == id {
			return sv.Value, true
		}
	}
	return 0, false
}

// SpellData groups the spells an item fires on one event (equip, use, wield...)
type SpellData struct {
	Event  int     `json:"event"`
	Spells []Spell `json:"spells"`
}

// Spell is a single effect entry with its raw parameters
type Spell struct {
	SpellID      int            `json:"spell_id"`
	Target       int            `json:"target,omitempty"`
	TickCount    int            `json:"tick_count,omitempty"`
	TickInterval int            `json:"tick_interval,omitempty"`
	Params       map[string]any `json:"params,omitempty"`
}

// InterpolationRange is a contiguous QL band belonging to one base item.
// A non interpolatable range is a fixed item and only its MinQL record exists.
type InterpolationRange struct {
	MinQL          int   `json:"min_ql"`
	MaxQL          int   `json:"max_ql"`
	BaseAOID       int64 `json:"base_aoid"`
	Interpolatable bool  `json:"interpolatable"`

	// Requirements, when non-nil, replaces the low boundary's requirement
	// list on items interpolated inside this range.
	Requirements []Requirement `json:"requirements,omitempty"`
}

// Contains reports whether ql falls inside the range, bounds included
func (r InterpolationRange) Contains(ql int) bool {
	return r.MinQL <= ql && ql <= r.MaxQL
}

// DedupeStats collapses repeated stat IDs. The last value wins and the stat
// keeps the position of its first occurrence.
func DedupeStats(stats []StatValue) []StatValue {
	if len(stats) < 2 {
		return stats
	}

	index := make(map[StatID]int, len(stats))
	out := make([]StatValue, 0, len(stats))
	for _, sv := range stats {
		if pos, ok := index[sv.Stat]; ok {
			out[pos].Value = sv.Value
			continue
		}
		index[sv.Stat] = len(out)
		out = append(out, sv)
	}
	return out
}
