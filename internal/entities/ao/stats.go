package ao

import "strconv"

// StatID identifies a game attribute. The set is fixed by the game client;
// IDs outside the table are still valid values and render as "Stat #<id>".
type StatID int

// StatNone marks an empty requirement slot
const StatNone StatID = 0

// Core attributes
const (
	StatFlags        StatID = 0
	StatMaxHealth    StatID = 1
	StatMass         StatID = 2
	StatAttackSpeed  StatID = 3
	StatBreed        StatID = 4
	StatStrength     StatID = 16
	StatAgility      StatID = 17
	StatStamina      StatID = 18
	StatIntelligence StatID = 19
	StatSense        StatID = 20
	StatPsychic      StatID = 21
	StatHealth       StatID = 27
	StatCan          StatID = 30
	StatSide         StatID = 33
	StatXP           StatID = 52
	StatIP           StatID = 53
	StatLevel        StatID = 54
	StatGender       StatID = 59
	StatProfession   StatID = 60
	StatCash         StatID = 61
	StatItemValue    StatID = 74
	StatItemClass    StatID = 76
	StatIcon         StatID = 79
)

// Armor classes
const (
	StatProjectileAC StatID = 90
	StatMeleeAC      StatID = 91
	StatEnergyAC     StatID = 92
	StatChemicalAC   StatID = 93
	StatRadiationAC  StatID = 94
	StatColdAC       StatID = 95
	StatPoisonAC     StatID = 96
	StatFireAC       StatID = 97
)

// Skills
const (
	StatMartialArts               StatID = 100
	StatMeleeEnergy               StatID = 101
	Stat1hBlunt                   StatID = 102
	Stat1hEdged                   StatID = 103
	StatMeleeEnergyWeapon         StatID = 104
	Stat2hEdged                   StatID = 105
	StatPiercing                  StatID = 106
	Stat2hBlunt                   StatID = 107
	StatSharpObjects              StatID = 108
	StatGrenade                   StatID = 109
	StatHeavyWeapons              StatID = 110
	StatBowSpecialAttack          StatID = 111
	StatPistol                    StatID = 112
	StatRifle                     StatID = 113
	StatMGSMG                     StatID = 114
	StatShotgun                   StatID = 115
	StatAssaultRifle              StatID = 116
	StatDriveWater                StatID = 117
	StatCloseCombatInit           StatID = 118
	StatDistanceWeaponInit        StatID = 119
	StatPhysicalProwessInit       StatID = 120
	StatBowSkill                  StatID = 121
	StatMeleeInit                 StatID = 122
	StatNanoProgramming           StatID = 123
	StatDimach                    StatID = 124
	StatPharmaTech                StatID = 125
	StatQuantumFT                 StatID = 126
	StatWeaponSmithing            StatID = 127
	StatRunspeed                  StatID = 128
	StatElectricalEngineering     StatID = 129
	StatMechanicalEngineering     StatID = 130
	StatTimeAndSpace              StatID = 131
	StatBiologicalMetamorphosis   StatID = 132
	StatPsychologicalModification StatID = 133
	StatMatterCreation            StatID = 134
	StatMatterMetamorphosis       StatID = 135
	StatSensoryImprovement        StatID = 136
	StatFirstAid                  StatID = 137
	StatTreatment                 StatID = 138
	StatChemistry                 StatID = 139
	StatPsychology                StatID = 140
	StatMapNavigation             StatID = 141
	StatTutoring                  StatID = 142
	StatBrawl                     StatID = 143
	StatFastAttack                StatID = 144
	StatFlingShot                 StatID = 145
	StatSneakAttack               StatID = 146
	StatBurst                     StatID = 148
	StatFullAuto                  StatID = 150
	StatAimedShot                 StatID = 151
	StatParry                     StatID = 152
	StatRiposte                   StatID = 153
	StatDodgeRanged               StatID = 154
	StatEvadeClose                StatID = 155
	StatDuck                      StatID = 156
	StatNanoPool                  StatID = 157
	StatVehicleAir                StatID = 158
	StatVehicleGround             StatID = 159
	StatAdventuring               StatID = 160
	StatVehicleHydro              StatID = 161
	StatConcealment               StatID = 162
	StatBreakingEntry             StatID = 163
	StatTrapDisarm                StatID = 164
	StatPerception                StatID = 165
	StatSwimming                  StatID = 166
	StatMultiMelee                StatID = 167
	StatNanoResist                StatID = 168
)

// Derived and bonus stats
const (
	StatMaxNCU                   StatID = 181
	StatSpecialization           StatID = 182
	StatMaxNanoEnergy            StatID = 221
	StatAddAllOffense            StatID = 276
	StatAddAllDefense            StatID = 277
	StatProjectileDamageModifier StatID = 278
	StatMeleeDamageModifier      StatID = 279
	StatEnergyDamageModifier     StatID = 280
	StatChemicalDamageModifier   StatID = 281
	StatRadiationDamageModifier  StatID = 282
	StatHealDelta                StatID = 343
	StatScale                    StatID = 360
	StatNanoDelta                StatID = 364
	StatVisualProfession         StatID = 368
	StatExpansion                StatID = 389
)

var statNames = map[StatID]string{
	StatFlags:        "Flags",
	StatMaxHealth:    "Max Health",
	StatMass:         "Mass",
	StatAttackSpeed:  "Attack Speed",
	StatBreed:        "Breed",
	StatStrength:     "Strength",
	StatAgility:      "Agility",
	StatStamina:      "Stamina",
	StatIntelligence: "Intelligence",
	StatSense:        "Sense",
	StatPsychic:      "Psychic",
	StatHealth:       "Health",
	StatCan:          "Can",
	StatSide:         "Side",
	StatXP:           "XP",
	StatIP:           "IP",
	StatLevel:        "Level",
	StatGender:       "Gender",
	StatProfession:   "Profession",
	StatCash:         "Cash",
	StatItemValue:    "Value",
	StatItemClass:    "Item Class",
	StatIcon:         "Icon",

	StatProjectileAC: "Projectile AC",
	StatMeleeAC:      "Melee AC",
	StatEnergyAC:     "Energy AC",
	StatChemicalAC:   "Chemical AC",
	StatRadiationAC:  "Radiation AC",
	StatColdAC:       "Cold AC",
	StatPoisonAC:     "Poison AC",
	StatFireAC:       "Fire AC",

	StatMartialArts:               "Martial Arts",
	StatMeleeEnergy:               "Melee Energy",
	Stat1hBlunt:                   "1h Blunt",
	Stat1hEdged:                   "1h Edged",
	StatMeleeEnergyWeapon:         "Melee Energy Weapon",
	Stat2hEdged:                   "2h Edged",
	StatPiercing:                  "Piercing",
	Stat2hBlunt:                   "2h Blunt",
	StatSharpObjects:              "Sharp Objects",
	StatGrenade:                   "Grenade",
	StatHeavyWeapons:              "Heavy Weapons",
	StatBowSpecialAttack:          "Bow Special Attack",
	StatPistol:                    "Pistol",
	StatRifle:                     "Rifle",
	StatMGSMG:                     "MG / SMG",
	StatShotgun:                   "Shotgun",
	StatAssaultRifle:              "Assault Rifle",
	StatDriveWater:                "Vehicle Water",
	StatCloseCombatInit:           "Melee Init",
	StatDistanceWeaponInit:        "Ranged Init",
	StatPhysicalProwessInit:       "Physical Init",
	StatBowSkill:                  "Bow",
	StatMeleeInit:                 "Melee Init (legacy)",
	StatNanoProgramming:           "Nano Programming",
	StatDimach:                    "Dimach",
	StatPharmaTech:                "Pharma Tech",
	StatQuantumFT:                 "Quantum FT",
	StatWeaponSmithing:            "Weapon Smithing",
	StatRunspeed:                  "Run Speed",
	StatElectricalEngineering:     "Electrical Engineering",
	StatMechanicalEngineering:     "Mechanical Engineering",
	StatTimeAndSpace:              "Time and Space",
	StatBiologicalMetamorphosis:   "Biological Metamorphosis",
	StatPsychologicalModification: "Psychological Modifications",
	StatMatterCreation:            "Matter Creation",
	StatMatterMetamorphosis:       "Matter Metamorphosis",
	StatSensoryImprovement:        "Sensory Improvement",
	StatFirstAid:                  "First Aid",
	StatTreatment:                 "Treatment",
	StatChemistry:                 "Chemistry",
	StatPsychology:                "Psychology",
	StatMapNavigation:             "Map Navigation",
	StatTutoring:                  "Tutoring",
	StatBrawl:                     "Brawl",
	StatFastAttack:                "Fast Attack",
	StatFlingShot:                 "Fling Shot",
	StatSneakAttack:               "Sneak Attack",
	StatBurst:                     "Burst",
	StatFullAuto:                  "Full Auto",
	StatAimedShot:                 "Aimed Shot",
	StatParry:                     "Parry",
	StatRiposte:                   "Riposte",
	StatDodgeRanged:               "Dodge Ranged",
	StatEvadeClose:                "Evade Close",
	StatDuck:                      "Duck Explosions",
	StatNanoPool:                  "Nano Pool",
	StatVehicleAir:                "Vehicle Air",
	StatVehicleGround:             "Vehicle Ground",
	StatAdventuring:               "Adventuring",
	StatVehicleHydro:              "Vehicle Hydro",
	StatConcealment:               "Concealment",
	StatBreakingEntry:             "Breaking and Entry",
	StatTrapDisarm:                "Trap Disarm",
	StatPerception:                "Perception",
	StatSwimming:                  "Swimming",
	StatMultiMelee:                "Multi Melee",
	StatNanoResist:                "Nano Resist",

	StatMaxNCU:                   "Max NCU",
	StatSpecialization:           "Specialization",
	StatMaxNanoEnergy:            "Max Nano",
	StatAddAllOffense:            "Add All Offense",
	StatAddAllDefense:            "Add All Defense",
	StatProjectileDamageModifier: "Projectile Damage Modifier",
	StatMeleeDamageModifier:      "Melee Damage Modifier",
	StatEnergyDamageModifier:     "Energy Damage Modifier",
	StatChemicalDamageModifier:   "Chemical Damage Modifier",
	StatRadiationDamageModifier:  "Radiation Damage Modifier",
	StatHealDelta:                "Heal Delta",
	StatScale:                    "Scale",
	StatNanoDelta:                "Nano Delta",
	StatVisualProfession:         "Visual Profession",
	StatExpansion:                "Expansion",
}

// Known reports whether the ID is in the stat table
func (s StatID) Known() bool {
	_, ok := statNames[s]
	return ok
}

// String returns the display name, or "Stat #<id>" for unknown IDs
func (s StatID) String() string {
	if name, ok := statNames[s]; ok {
		return name
	}
	return "Stat #" + strconv.Itoa(int(s))
}
