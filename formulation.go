package fctp

import "math"

// Infinity marks an unbounded variable bound.
var Infinity = math.Inf(1)

// Solver-neutral variable types and row senses. Adapters translate these to
// whatever their backend expects.
const (
	VarContinuous int8 = 'C'
	VarBinary     int8 = 'B'
)

const (
	SenseLE int8 = '<'
	SenseGE int8 = '>'
	SenseEQ int8 = '='
)

// LinRow is one sparse linear constraint: sum(Val[k]*x[Ind[k]]) Sense RHS.
type LinRow struct {
	Ind   []int32
	Val   []float64
	Sense int8
	RHS   float64
	Name  string
}

// Formulation is the opaque MILP handed to a Solver: a linear minimization
// objective over a flat variable vector plus sparse linear rows. It is built
// once by CreateFCTPModel and not modified afterwards.
type Formulation struct {
	VarCount int
	Obj      []float64
	VarTypes []int8
	Lower    []float64
	Upper    []float64
	VarNames []string
	Rows     []LinRow
}

// NewFormulation allocates a formulation for varCount variables with zero
// objective and free continuous variables. Callers fill in the blocks.
func NewFormulation(varCount int) *Formulation {
	return &Formulation{
		VarCount: varCount,
		Obj:      make([]float64, varCount),
		VarTypes: make([]int8, varCount),
		Lower:    make([]float64, varCount),
		Upper:    make([]float64, varCount),
		VarNames: make([]string, varCount),
	}
}

func (f *Formulation) AddRow(ind []int32, val []float64, sense int8, rhs float64, name string) {
	f.Rows = append(f.Rows, LinRow{Ind: ind, Val: val, Sense: sense, RHS: rhs, Name: name})
}

// SolveResult is the terminal outcome of a single solve attempt. Obj, Bound
// and X are only meaningful when Status is StatusOptimal; X holds one value
// per formulation variable.
type SolveResult struct {
	Status string
	Obj    float64
	Bound  float64
	X      []float64
}

// Solver is the external collaborator contract: one formulation in, one
// terminal status out. A single attempt is issued per call, no retries.
// Statuses other than StatusOptimal carry no variable values and must never
// be treated as solved.
type Solver interface {
	Name() string
	Solve(form *Formulation) (*SolveResult, error)
}
