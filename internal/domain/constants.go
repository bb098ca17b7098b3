package domain

// Dice ladder, smallest to largest.
var DieLadder = []string{"d4", "d6", "d8", "d10", "d12"}

// Venture defaults and bounds
const (
	DefaultDie              = "d6"
	DefaultVentureName      = "Venture"
	DefaultGoldPerPoint     = 100.0
	DefaultSuccessThreshold = 3

	MinSuccessThreshold = 1
	MaxSuccessThreshold = 12
	MinLossDieModifier  = -4
	MaxLossDieModifier  = 4
)

// Currency denominations
const (
	DenomPlatinum = "pp"
	DenomGold     = "gp"
	DenomElectrum = "ep"
	DenomSilver   = "sp"
	DenomCopper   = "cp"

	// PrimaryDenomination is the denomination venture amounts are expressed in.
	PrimaryDenomination = DenomGold
)

// DenominationValues maps each denomination to its value in copper.
var DenominationValues = map[string]int{
	DenomPlatinum: 1000,
	DenomGold:     100,
	DenomElectrum: 50,
	DenomSilver:   10,
	DenomCopper:   1,
}

// DenominationsDescending lists denominations from most to least valuable.
var DenominationsDescending = []string{DenomPlatinum, DenomGold, DenomElectrum, DenomSilver, DenomCopper}

// Boon key prefixes
const (
	BoonKeyContentPrefix  = "boon:"
	BoonKeyPositionPrefix = "idx:"
	BoonKeyGroupPrefix    = "group:"
)

// Modifier scope and duration tags
const (
	ModifierScopeAll         = "all"
	DurationTypeNextTurn     = "next_turn"
	EffectDurationTurnsKey   = "turns"
	EffectDurationFormulaKey = "formula"
)
