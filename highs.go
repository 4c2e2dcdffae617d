package fctp

import (
	"math"

	"github.com/lanl/highs"
)

// HiGHSSolver solves formulations through the HiGHS binding. The model is
// rebuilt per call, concurrent solves on independent formulations are fine.
type HiGHSSolver struct{}

func (s *HiGHSSolver) Name() string {
	return SolverHiGHS
}

func (s *HiGHSSolver) Solve(form *Formulation) (*SolveResult, error) {
	var hm highs.Model
	hm.ColCosts = append([]float64(nil), form.Obj...)
	hm.ColLower = append([]float64(nil), form.Lower...)
	hm.ColUpper = append([]float64(nil), form.Upper...)
	hm.VarTypes = make([]highs.VariableType, form.VarCount)
	for i, t := range form.VarTypes {
		if t == VarBinary {
			hm.VarTypes[i] = highs.IntegerType
		} else {
			hm.VarTypes[i] = highs.ContinuousType
		}
	}
	for r, row := range form.Rows {
		lower := math.Inf(-1)
		upper := math.Inf(1)
		switch row.Sense {
		case SenseLE:
			upper = row.RHS
		case SenseGE:
			lower = row.RHS
		default:
			lower = row.RHS
			upper = row.RHS
		}
		hm.RowLower = append(hm.RowLower, lower)
		hm.RowUpper = append(hm.RowUpper, upper)
		for k, col := range row.Ind {
			hm.ConstMatrix = append(hm.ConstMatrix, highs.Nonzero{Row: r, Col: int(col), Val: row.Val[k]})
		}
	}

	hsol, err := hm.Solve()
	if err != nil {
		Log(1, err.Error())
		return nil, err
	}

	result := &SolveResult{Status: StatusFailed}
	switch hsol.Status {
	case highs.Optimal:
		result.Status = StatusOptimal
	case highs.Infeasible:
		result.Status = StatusInfeasible
	case highs.Unbounded:
		result.Status = StatusUnbounded
	case highs.UnboundedOrInfeasible:
		Log(2, "Model is infeasible or unbounded\n")
		result.Status = StatusInfeasible
	default:
		Log(1, "Optimization stopped with status %s\n", hsol.Status.String())
	}

	if result.Status != StatusOptimal {
		return result, nil
	}

	result.Obj = hsol.Objective
	result.Bound = hsol.Objective
	result.X = append([]float64(nil), hsol.ColumnPrimal...)
	return result, nil
}
