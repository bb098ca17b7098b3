package dice

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/osse101/VentureBot_Go/internal/logger"
)

var (
	// ErrInvalidFormula is returned for formulas that are not NdM[+/-K] or a plain integer.
	ErrInvalidFormula = errors.New(ErrMsgInvalidFormula)
	// ErrFormulaBounds is returned when the dice count or face count is out of range.
	ErrFormulaBounds = errors.New(ErrMsgFormulaBounds)
)

var (
	diceExpr     = regexp.MustCompile(`^(\d*)d(\d+)(?:([+-])(\d+))?$`)
	constantExpr = regexp.MustCompile(`^[+-]?\d+$`)
)

// Expression is a parsed NdM+K formula. Sides is 0 for a constant.
type Expression struct {
	Count    int
	Sides    int
	Modifier int
}

// ParseFormula parses "NdM", "NdM+K", "NdM-K" or a plain integer.
// N defaults to 1. Whitespace and case are ignored.
func ParseFormula(formula string) (Expression, error) {
	f := strings.ToLower(strings.Join(strings.Fields(formula), ""))
	if f == "" {
		return Expression{}, fmt.Errorf("%w: empty", ErrInvalidFormula)
	}
	if constantExpr.MatchString(f) {
		k, err := strconv.Atoi(f)
		if err != nil || k > MaxModifier || k < -MaxModifier {
			return Expression{}, fmt.Errorf("%w: %s", ErrFormulaBounds, formula)
		}
		return Expression{Modifier: k}, nil
	}

	m := diceExpr.FindStringSubmatch(f)
	if m == nil {
		return Expression{}, fmt.Errorf("%w: %s", ErrInvalidFormula, formula)
	}
	bounds := fmt.Errorf("%w: %s", ErrFormulaBounds, formula)

	expr := Expression{Count: 1}
	var err error
	if m[1] != "" {
		if expr.Count, err = strconv.Atoi(m[1]); err != nil {
			return Expression{}, bounds
		}
	}
	if expr.Sides, err = strconv.Atoi(m[2]); err != nil {
		return Expression{}, bounds
	}
	if m[4] != "" {
		if expr.Modifier, err = strconv.Atoi(m[4]); err != nil || expr.Modifier > MaxModifier {
			return Expression{}, bounds
		}
		if m[3] == "-" {
			expr.Modifier = -expr.Modifier
		}
	}
	if expr.Count < 1 || expr.Count > MaxDiceCount || expr.Sides < 1 || expr.Sides > MaxDieSides {
		return Expression{}, bounds
	}
	return expr, nil
}

// Min returns the smallest total the expression can produce.
func (e Expression) Min() int {
	return e.Count + e.Modifier
}

// Max returns the largest total the expression can produce.
func (e Expression) Max() int {
	return e.Count*e.Sides + e.Modifier
}

// RollRequest asks the roll provider to evaluate a formula.
// Interactive requests may be confirmed by a human before resolving.
type RollRequest struct {
	Formula     string `json:"formula"`
	Purpose     string `json:"purpose,omitempty"`
	ActorID     string `json:"actor_id,omitempty"`
	Interactive bool   `json:"interactive,omitempty"`
}

// RollResult is the evaluated total of a roll. Rolls holds the individual die faces.
type RollResult struct {
	Formula string `json:"formula"`
	Total   int    `json:"total"`
	Rolls   []int  `json:"rolls,omitempty"`
}

// Roller evaluates dice formulas. Implementations may suspend until a roll is confirmed.
type Roller interface {
	Roll(ctx context.Context, req RollRequest) (RollResult, error)
}

// Source yields integers in [0, n).
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n) //nolint:gosec // Game logic randomness, not security critical
}

// NewSeededSource returns a deterministic source for reproducible rolls.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed)) //nolint:gosec // Deterministic by intent
}

// RandomRoller evaluates formulas silently against a Source.
type RandomRoller struct {
	mu  sync.Mutex
	src Source
}

// NewRandomRoller creates a roller. A nil source uses the shared global generator.
func NewRandomRoller(src Source) *RandomRoller {
	if src == nil {
		src = globalSource{}
	}
	return &RandomRoller{src: src}
}

// Roll evaluates req.Formula.
func (r *RandomRoller) Roll(ctx context.Context, req RollRequest) (RollResult, error) {
	expr, err := ParseFormula(req.Formula)
	if err != nil {
		return RollResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return RollResult{}, err
	}

	r.mu.Lock()
	rolls := make([]int, 0, expr.Count)
	total := expr.Modifier
	for i := 0; i < expr.Count; i++ {
		face := r.src.IntN(expr.Sides) + 1
		rolls = append(rolls, face)
		total += face
	}
	r.mu.Unlock()

	logger.FromContext(ctx).Debug(LogMsgRollEvaluated, "formula", req.Formula, "purpose", req.Purpose, "total", total)
	return RollResult{Formula: req.Formula, Total: total, Rolls: rolls}, nil
}
