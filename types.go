package fctp

const (
	StatusOptimal    = "OPTIMAL"
	StatusInfeasible = "INFEASIBLE"
	StatusUnbounded  = "UNBOUNDED"
	StatusFailed     = "FAILED"

	SolverGurobi = "gurobi"
	SolverHiGHS  = "highs"
)

// SelectionTol is the single cutoff used to classify near-zero solver values.
// Open-indicators above it count as selected, flows above it appear in the
// shipment plan. MILP solvers return binaries as floats with noise around
// {0,1}, so a value like 1e-9 must still read as "closed". Mathematically
// fractional values slightly above the cutoff are reported as selected.
const SelectionTol = 1e-6

// FCTPInstance describes a fixed-charge transportation problem: plants with
// a capacity and a fixed ramp-up cost ship a single commodity to retailers
// with a demand. All sequences are ordered and index-aligned: FixedCosts and
// Capacities with PlantCoordinates, Demands with RetailerCoordinates.
type FCTPInstance struct {
	Name    string `json:"name"`
	Comment string `json:"comment"`
	Type    string `json:"type"`

	PlantCount          int         `json:"plant_count"`
	RetailerCount       int         `json:"retailer_count"`
	PlantCoordinates    [][]float64 `json:"plant_coordinates"`
	RetailerCoordinates [][]float64 `json:"retailer_coordinates"`
	FixedCosts          []float64   `json:"fixed_costs"`
	Capacities          []float64   `json:"capacities"`
	Demands             []float64   `json:"demands"`
	CostPerUnit         float64     `json:"cost_per_unit"`

	Solution *FCTPSolution `json:"solution,omitempty"`
}

// Plant is the typed view of one supply site. Built once from the instance
// arrays, never mutated afterwards.
type Plant struct {
	ID        int
	X, Y      float64
	Capacity  float64
	FixedCost float64
}

// Retailer is the typed view of one consumption site.
type Retailer struct {
	ID     int
	X, Y   float64
	Demand float64
}

// Shipment is one entry of the reported plan: Amount units from Plant to
// Retailer. Arcs with numerically zero flow are never reported.
type Shipment struct {
	Plant    int     `json:"plant"`
	Retailer int     `json:"retailer"`
	Amount   float64 `json:"amount"`
}

type FCTPSolution struct {
	Status     string     `json:"status"`
	Obj        float64    `json:"obj"`
	LBound     float64    `json:"lbound"`
	Optimal    bool       `json:"optimal"`
	OpenPlants []int      `json:"open_plants,omitempty"`
	Shipments  []Shipment `json:"shipments,omitempty"`

	Time    string  `json:"time"`
	System  SysInfo `json:"system"`
	Comment string  `json:"comment"`
}

// SysInfo saves the basic system information
type SysInfo struct {
	Platform string
	CPU      string
	RAM      string
}

// FCTPModel holds the instance together with its MILP rendering: the typed
// site views, the unit-cost matrix and the flat variable index layout. Open
// variables occupy [OpenStart, OpenStart+N), flow variables
// [FlowStart, FlowStart+N*M) in plant-major order.
type FCTPModel struct {
	Instance  *FCTPInstance
	Plants    []Plant
	Retailers []Retailer
	UnitCosts [][]float64
	N         int // plant count
	M         int // retailer count
	VarNames  []string
	OpenStart int
	FlowStart int
	VarCount  int
	Form      *Formulation
}

// BuildPlants constructs the immutable typed plant records from the
// instance's parallel arrays. The arrays must have been validated.
func BuildPlants(inst *FCTPInstance) []Plant {
	plants := make([]Plant, len(inst.PlantCoordinates))
	for i, c := range inst.PlantCoordinates {
		plants[i] = Plant{ID: i, X: c[0], Y: c[1], Capacity: inst.Capacities[i], FixedCost: inst.FixedCosts[i]}
	}
	return plants
}

// BuildRetailers constructs the immutable typed retailer records.
func BuildRetailers(inst *FCTPInstance) []Retailer {
	retailers := make([]Retailer, len(inst.RetailerCoordinates))
	for j, c := range inst.RetailerCoordinates {
		retailers[j] = Retailer{ID: j, X: c[0], Y: c[1], Demand: inst.Demands[j]}
	}
	return retailers
}
