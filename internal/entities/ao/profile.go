package ao

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/tinkertools/tinker-api/internal/errors"
)

// ProfileEntityType is the rpg-toolkit entity type of a character profile
const ProfileEntityType = "profile"

// Character limits
const (
	MaxLevel      = 220
	MaxProfession = 15
	MaxBreed      = 7
	MaxGender     = 3
)

// Skill is one trained skill of a character. Total is the value requirements
// are checked against; the rest is the breakdown shown to the player.
type Skill struct {
	Total   int `json:"total"`
	Base    int `json:"base,omitempty"`
	Trickle int `json:"trickle,omitempty"`
	Bonus   int `json:"bonus,omitempty"`
}

// Profile is a saved character whose stats are checked against requirements
type Profile struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Level      int              `json:"level"`
	Profession int              `json:"profession"`
	Breed      int              `json:"breed"`
	Gender     int              `json:"gender"`
	Stats      map[StatID]int   `json:"stats,omitempty"`
	Skills     map[StatID]Skill `json:"skills,omitempty"`
	CreatedAt  int64            `json:"created_at,omitempty"`
	UpdatedAt  int64            `json:"updated_at,omitempty"`
}

var _ core.Entity = (*Profile)(nil)

// GetID returns the profile ID
func (p *Profile) GetID() string {
	return p.ID
}

// GetType returns the entity type for rpg-toolkit
func (p *Profile) GetType() string {
	return ProfileEntityType
}

// Value returns the character's current value for a stat. Stats take
// precedence over skill totals; anything absent is 0.
func (p *Profile) Value(id StatID) int {
	if v, ok := p.Stats[id]; ok {
		return v
	}
	if s, ok := p.Skills[id]; ok {
		return s.Total
	}
	return 0
}

// Normalize mirrors the identity fields into the stat map so requirements on
// level, profession, breed and gender resolve. The identity fields always
// overwrite their stat slots.
func (p *Profile) Normalize() {
	if p.Stats == nil {
		p.Stats = make(map[StatID]int, 4)
	}
	p.Stats[StatLevel] = p.Level
	p.Stats[StatProfession] = p.Profession
	p.Stats[StatBreed] = p.Breed
	p.Stats[StatGender] = p.Gender
}

// Validate checks the profile at load time. The ID is not required so that
// inline profiles can be evaluated without being saved.
func (p *Profile) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("level", p.Level, 1, MaxLevel, vb)
	errors.ValidateRange("profession", p.Profession, 0, MaxProfession, vb)
	errors.ValidateRange("breed", p.Breed, 0, MaxBreed, vb)
	errors.ValidateRange("gender", p.Gender, 0, MaxGender, vb)

	for id := range p.Stats {
		if id < 0 {
			vb.Fieldf("stats", "stat id %d is negative", int(id))
		}
	}
	for id, skill := range p.Skills {
		if id < 0 {
			vb.Fieldf("skills", "skill id %d is negative", int(id))
		}
		if skill.Total < 0 {
			vb.Fieldf("skills", "%s total is negative", id)
		}
	}

	return vb.Build()
}
