package testutils

import (
	"github.com/tinkertools/tinker-api/internal/entities/ao"
)

// Fixture family: a vest with one interpolatable band from QL 100 to 200
const (
	VestAOID int64 = 246817
	VestName       = "Kevlar Vest"
)

// VestRanges returns the fixture family's ranges
func VestRanges() []ao.InterpolationRange {
	return []ao.InterpolationRange{
		{MinQL: 1, MaxQL: 99, BaseAOID: VestAOID - 1, Interpolatable: true},
		{MinQL: 100, MaxQL: 200, BaseAOID: VestAOID, Interpolatable: true},
	}
}

// VestLow returns the stored QL 100 record of the fixture family
func VestLow() *ao.Item {
	return &ao.Item{
		ID:        1,
		AOID:      VestAOID,
		Name:      VestName,
		QL:        100,
		ItemClass: 2,
		Stats: []ao.StatValue{
			{Stat: ao.StatStrength, Value: 10},
			{Stat: ao.StatMeleeAC, Value: 120},
		},
		Requirements: []ao.Requirement{
			{Stat: ao.StatLevel, Operator: ao.OperatorGreaterOrEqual, Value: 100},
			{Stat: ao.StatStamina, Operator: ao.OperatorGreaterOrEqual, Value: 180},
		},
	}
}

// VestHigh returns the stored QL 200 record of the fixture family
func VestHigh() *ao.Item {
	return &ao.Item{
		ID:        2,
		AOID:      VestAOID,
		Name:      VestName,
		QL:        200,
		ItemClass: 2,
		Stats: []ao.StatValue{
			{Stat: ao.StatStrength, Value: 30},
			{Stat: ao.StatMeleeAC, Value: 240},
		},
		Requirements: []ao.Requirement{
			{Stat: ao.StatLevel, Operator: ao.OperatorGreaterOrEqual, Value: 150},
			{Stat: ao.StatStamina, Operator: ao.OperatorGreaterOrEqual, Value: 360},
		},
	}
}

// VeteranProfile returns a level 80 character with trained stamina
func VeteranProfile() *ao.Profile {
	return &ao.Profile{
		ID:         "profile_test_001",
		Name:       "Nanomage Doc",
		Level:      80,
		Profession: 10,
		Breed:      3,
		Gender:     1,
		Stats: map[ao.StatID]int{
			ao.StatLevel:   80,
			ao.StatStamina: 200,
		},
		Skills: map[ao.StatID]ao.Skill{
			ao.StatFirstAid:  {Total: 500, Base: 5, Trickle: 45, Bonus: 50},
			ao.StatTreatment: {Total: 700},
		},
	}
}
