package dice

// Formula bounds
const (
	MaxDiceCount = 100
	MaxDieSides  = 1000
	MaxModifier  = 1_000_000
)

// Error messages
const (
	ErrMsgInvalidFormula = "invalid dice formula"
	ErrMsgFormulaBounds  = "dice formula out of bounds"
)

// Log messages
const (
	LogMsgRollEvaluated = "Dice roll evaluated"
)
