package dice

import (
	"strconv"
	"strings"

	"github.com/osse101/VentureBot_Go/internal/domain"
)

// Ladder returns a copy of the die ladder, smallest first.
func Ladder() []string {
	out := make([]string, len(domain.DieLadder))
	copy(out, domain.DieLadder)
	return out
}

// Valid reports whether die is a ladder member.
func Valid(die string) bool {
	return domain.DieIndex(die) >= 0
}

// Bottom returns the smallest die on the ladder.
func Bottom() string {
	return domain.DieLadder[0]
}

// Top returns the largest die on the ladder.
func Top() string {
	return domain.DieLadder[len(domain.DieLadder)-1]
}

// AtBottom reports whether die is the smallest ladder die.
func AtBottom(die string) bool {
	return die == Bottom()
}

// Normalize returns die when it is on the ladder, otherwise fallback.
func Normalize(die, fallback string) string {
	return domain.NormalizeDie(die, fallback)
}

// Shift moves die n positions along the ladder, clamping at both ends.
// An unrecognized die shifts from the default die.
func Shift(die string, n int) string {
	idx := domain.DieIndex(die)
	if idx < 0 {
		idx = domain.DieIndex(domain.DefaultDie)
	}
	idx += n
	if idx < 0 {
		idx = 0
	}
	if last := len(domain.DieLadder) - 1; idx > last {
		idx = last
	}
	return domain.DieLadder[idx]
}

// Max returns the larger of a and b by ladder position.
// An unrecognized die loses to a recognized one; two unrecognized dice yield "".
func Max(a, b string) string {
	ia, ib := domain.DieIndex(a), domain.DieIndex(b)
	switch {
	case ia < 0 && ib < 0:
		return ""
	case ia < 0:
		return b
	case ib < 0:
		return a
	case ib > ia:
		return b
	default:
		return a
	}
}

// Min returns the smaller of a and b by ladder position.
// An unrecognized die loses to a recognized one; two unrecognized dice yield "".
func Min(a, b string) string {
	ia, ib := domain.DieIndex(a), domain.DieIndex(b)
	switch {
	case ia < 0 && ib < 0:
		return ""
	case ia < 0:
		return b
	case ib < 0:
		return a
	case ib < ia:
		return b
	default:
		return a
	}
}

// Sides returns the face count of die, or 0 when it is not a ladder die.
func Sides(die string) int {
	if !Valid(die) {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimPrefix(die, "d"))
	if err != nil {
		return 0
	}
	return n
}

// Formula returns the single-die roll formula for die, e.g. "1d8".
// Unrecognized dice roll as the default die.
func Formula(die string) string {
	return "1" + Normalize(die, domain.DefaultDie)
}
