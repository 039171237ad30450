package graph

import (
	"fmt"

	"github.com/cockroachdb/errors"
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/haijima/dsu/internal/dsu"
)

// ErrInvalidVariable is returned when an equation references a variable
// outside 'a'..'z'.
var ErrInvalidVariable = errors.New("graph: variable must be a lowercase letter")

const variableCount = 26

// Equation is a constraint between two single-letter variables.
//
// Equal=true means Left = Ratio × Right (Ratio is 1 for plain equality).
// Equal=false means Left ≠ Right; Ratio is ignored.
type Equation struct {
	Left  byte
	Right byte
	Ratio float64
	Equal bool
}

func (e Equation) String() string {
	if !e.Equal {
		return fmt.Sprintf("%c != %c", e.Left, e.Right)
	}
	if e.Ratio == 1 {
		return fmt.Sprintf("%c == %c", e.Left, e.Right)
	}
	return fmt.Sprintf("%c = %v * %c", e.Left, e.Ratio, e.Right)
}

func variableIndex(v byte) (int, error) {
	if v < 'a' || v > 'z' {
		return 0, errors.Wrapf(ErrInvalidVariable, "variable = %q", string(v))
	}
	return int(v - 'a'), nil
}

// SolveEquations reports whether the constraint set is satisfiable. All
// equalities are unioned into a 26-variable weighted disjoint set first,
// then every inequality is checked for a connectivity conflict: x != x is
// always a conflict, and x != y conflicts when the equalities already force
// x and y into the same set.
//
// Contradicting ratio equalities are not detected; the first derived ratio
// between two variables wins (see dsu.WeightedDisjointSet.Union).
func SolveEquations(eqs []Equation) (bool, error) {
	w, err := solve(eqs)
	if err != nil {
		return false, err
	}
	for _, eq := range eqs {
		if eq.Equal {
			continue
		}
		x, err := variableIndex(eq.Left)
		if err != nil {
			return false, err
		}
		y, err := variableIndex(eq.Right)
		if err != nil {
			return false, err
		}
		if x == y {
			return false, nil
		}
		connected, err := w.Connected(x, y)
		if err != nil {
			return false, err
		}
		if connected {
			return false, nil
		}
	}
	return true, nil
}

// RatioOf evaluates the ratio x/y implied by the equalities in eqs. The
// boolean reports whether the two variables are related at all.
func RatioOf(eqs []Equation, x, y byte) (float64, bool, error) {
	w, err := solve(eqs)
	if err != nil {
		return 0, false, err
	}
	xi, err := variableIndex(x)
	if err != nil {
		return 0, false, err
	}
	yi, err := variableIndex(y)
	if err != nil {
		return 0, false, err
	}
	// x = r × y means x/y = r; Ratio(yi, xi) returns r with xi = r × yi.
	return w.Ratio(yi, xi)
}

// Variables returns the sorted distinct variables referenced by eqs.
func Variables(eqs []Equation) []byte {
	vars := mapset.NewSet[byte]()
	for _, eq := range eqs {
		vars.Add(eq.Left)
		vars.Add(eq.Right)
	}
	return mapset.Sorted(vars)
}

func solve(eqs []Equation) (*dsu.WeightedDisjointSet, error) {
	w, err := dsu.NewWeighted(variableCount)
	if err != nil {
		return nil, err
	}
	for _, eq := range eqs {
		if !eq.Equal {
			continue
		}
		x, err := variableIndex(eq.Left)
		if err != nil {
			return nil, err
		}
		y, err := variableIndex(eq.Right)
		if err != nil {
			return nil, err
		}
		if err := w.Union(x, y, eq.Ratio); err != nil {
			return nil, err
		}
	}
	return w, nil
}
