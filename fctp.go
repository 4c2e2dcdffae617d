package fctp

import (
	"fmt"
)

// ValidateInstance checks the instance before any model is built: the
// parallel arrays must be index-aligned, coordinates must be 2D and all
// capacities, demands, fixed costs and the cost scalar non-negative.
// Structural infeasibility (total capacity below total demand) is NOT
// checked here - that is a legitimate solver outcome, not an input error.
func ValidateInstance(inst *FCTPInstance) error {
	n := len(inst.PlantCoordinates)
	m := len(inst.RetailerCoordinates)
	if len(inst.Capacities) != n {
		return fmt.Errorf("instance has %d plants but %d capacities", n, len(inst.Capacities))
	}
	if len(inst.FixedCosts) != n {
		return fmt.Errorf("instance has %d plants but %d fixed costs", n, len(inst.FixedCosts))
	}
	if len(inst.Demands) != m {
		return fmt.Errorf("instance has %d retailers but %d demands", m, len(inst.Demands))
	}
	for i, c := range inst.PlantCoordinates {
		if len(c) < 2 {
			return fmt.Errorf("plant %d has a %d-dimensional coordinate, need 2", i, len(c))
		}
	}
	for j, c := range inst.RetailerCoordinates {
		if len(c) < 2 {
			return fmt.Errorf("retailer %d has a %d-dimensional coordinate, need 2", j, len(c))
		}
	}
	for i, v := range inst.Capacities {
		if v < 0 {
			return fmt.Errorf("plant %d has negative capacity %f", i, v)
		}
	}
	for i, v := range inst.FixedCosts {
		if v < 0 {
			return fmt.Errorf("plant %d has negative fixed cost %f", i, v)
		}
	}
	for j, v := range inst.Demands {
		if v < 0 {
			return fmt.Errorf("retailer %d has negative demand %f", j, v)
		}
	}
	if inst.CostPerUnit < 0 {
		return fmt.Errorf("negative cost per unit distance %f", inst.CostPerUnit)
	}
	return nil
}

// CreateFCTPModel validates the instance and builds the MILP formulation:
//
//	min  sum_i fix_i*Open_i + sum_ij c_ij*Flow_ij
//	s.t. sum_j Flow_ij - cap_i*Open_i <= 0   for every plant i
//	     sum_i Flow_ij >= dem_j              for every retailer j
//	     Flow_ij >= 0, Open_i binary
//
// The linking row couples the fixed charge to the flow without a big-M
// constant; the capacity itself is the tightest valid coefficient. Demand
// rows stay ">=" on purpose, over-supply is allowed at positive marginal
// cost and never optimal unless forced.
func CreateFCTPModel(inst *FCTPInstance) (FCTPModel, error) {
	if err := ValidateInstance(inst); err != nil {
		return FCTPModel{}, err
	}

	n := len(inst.PlantCoordinates)
	m := len(inst.RetailerCoordinates)
	unitCosts := CalcUnitCosts(inst.PlantCoordinates, inst.RetailerCoordinates, inst.CostPerUnit)
	Log(4, "Unit costs:\n%s", PrintFloatMatrix(unitCosts))

	openCount := n     //Open_i
	flowCount := n * m //Flow_ij
	varCount := openCount + flowCount

	openStart := 0
	flowStart := openStart + openCount

	form := NewFormulation(varCount)
	for i := 0; i < n; i++ {
		oi := GetOpenIndex(i, openStart)
		form.VarTypes[oi] = VarBinary
		form.Lower[oi] = 0.0
		form.Upper[oi] = 1.0
		form.Obj[oi] = inst.FixedCosts[i]
		form.VarNames[oi] = fmt.Sprintf("Open_%d", i)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			fi := GetFlowIndex(i, j, m, flowStart)
			form.VarTypes[fi] = VarContinuous
			form.Lower[fi] = 0.0
			form.Upper[fi] = Infinity
			form.Obj[fi] = unitCosts[i][j]
			form.VarNames[fi] = fmt.Sprintf("Flow_%d_%d", i, j)
		}
	}

	//Add the capacity-linking constraints coupling flows to the open-indicator
	{
		Log(2, "Creating and setting constraints sum_j(Flow_ij) - cap_i*Open_i <= 0")
		for i := 0; i < n; i++ {
			ind := make([]int32, 0, m+1)
			val := make([]float64, 0, m+1)
			for j := 0; j < m; j++ {
				ind = append(ind, int32(GetFlowIndex(i, j, m, flowStart)))
				val = append(val, 1.0)
			}
			ind = append(ind, int32(GetOpenIndex(i, openStart)))
			val = append(val, -inst.Capacities[i])
			form.AddRow(ind, val, SenseLE, 0.0, fmt.Sprintf("cap_%d", i))
		}
	}

	//Add the demand-satisfaction constraints
	{
		Log(2, "Creating and setting constraints sum_i(Flow_ij) >= dem_j")
		for j := 0; j < m; j++ {
			ind := make([]int32, 0, n)
			val := make([]float64, 0, n)
			for i := 0; i < n; i++ {
				ind = append(ind, int32(GetFlowIndex(i, j, m, flowStart)))
				val = append(val, 1.0)
			}
			form.AddRow(ind, val, SenseGE, inst.Demands[j], fmt.Sprintf("dem_%d", j))
		}
	}

	model := FCTPModel{
		Instance:  inst,
		Plants:    BuildPlants(inst),
		Retailers: BuildRetailers(inst),
		UnitCosts: unitCosts,
		N:         n,
		M:         m,
		VarNames:  form.VarNames,
		OpenStart: openStart,
		FlowStart: flowStart,
		VarCount:  varCount,
		Form:      form,
	}
	return model, nil
}

// ExtractOpenPlants returns the ids of all plants whose open-indicator
// exceeds SelectionTol, in ascending id order.
func ExtractOpenPlants(x []float64, model *FCTPModel) []int {
	var open []int
	for i := 0; i < model.N; i++ {
		if x[GetOpenIndex(i, model.OpenStart)] > SelectionTol {
			open = append(open, i)
		}
	}
	return open
}

// ExtractShipments returns the shipment plan: every arc whose flow exceeds
// SelectionTol, ordered by plant id then retailer id. Arcs with numerically
// zero flow are dropped even though their variables formally exist. The
// result is deterministic for a fixed solution vector.
func ExtractShipments(x []float64, model *FCTPModel) []Shipment {
	var plan []Shipment
	for i := 0; i < model.N; i++ {
		for j := 0; j < model.M; j++ {
			amount := x[GetFlowIndex(i, j, model.M, model.FlowStart)]
			if amount > SelectionTol {
				plan = append(plan, Shipment{Plant: i, Retailer: j, Amount: amount})
			}
		}
	}
	return plan
}

// CaptureSolution fills sol from a terminal solve result. Only an OPTIMAL
// status produces a plan - any other status records the status string and
// short-circuits before reporting.
func CaptureSolution(model *FCTPModel, res *SolveResult, sol *FCTPSolution) {
	sol.Status = res.Status
	if res.Status != StatusOptimal {
		Log(1, "Optimization terminated with status %s, no plan extracted\n", res.Status)
		sol.Comment += fmt.Sprintf(". Terminated with status %s", res.Status)
		return
	}
	sol.Optimal = true
	sol.Obj = res.Obj
	sol.LBound = res.Bound
	sol.OpenPlants = ExtractOpenPlants(res.X, model)
	sol.Shipments = ExtractShipments(res.X, model)
	Log(2, "Found a FCTP-Solution with obj-value %f, opening plants %v\n", sol.Obj, sol.OpenPlants)
}

// CheckSolutionValidity verifies an extracted plan against the typed site
// records: every shipping plant must be open, no plant may exceed its
// capacity and every retailer's demand must be covered within SelectionTol.
func CheckSolutionValidity(openPlants []int, shipments []Shipment, plants []Plant, retailers []Retailer) (bool, string) {
	open := make([]bool, len(plants))
	for _, i := range openPlants {
		if i < 0 || i >= len(plants) {
			return false, fmt.Sprintf("Open plant id %d is out of range!", i)
		}
		open[i] = true
	}
	outflow := make([]float64, len(plants))
	inflow := make([]float64, len(retailers))
	for _, s := range shipments {
		if s.Plant < 0 || s.Plant >= len(plants) || s.Retailer < 0 || s.Retailer >= len(retailers) {
			return false, fmt.Sprintf("Shipment %v references an unknown site!", s)
		}
		if s.Amount < 0 {
			return false, fmt.Sprintf("Shipment %v has a negative amount!", s)
		}
		if !open[s.Plant] {
			return false, fmt.Sprintf("Plant %d ships %f units but is not open!", s.Plant, s.Amount)
		}
		outflow[s.Plant] += s.Amount
		inflow[s.Retailer] += s.Amount
	}
	for i := range plants {
		if outflow[i] > plants[i].Capacity+SelectionTol {
			return false, fmt.Sprintf("Plant %d ships %f units but its capacity is only %f!", i, outflow[i], plants[i].Capacity)
		}
	}
	for j := range retailers {
		if inflow[j] < retailers[j].Demand-SelectionTol {
			return false, fmt.Sprintf("Retailer %d receives %f units but demands %f!", j, inflow[j], retailers[j].Demand)
		}
	}
	return true, ""
}

// EvalObjective recomputes the cost of a reported plan: fixed costs of the
// opened plants plus unit costs times shipped amounts.
func EvalObjective(openPlants []int, shipments []Shipment, model *FCTPModel) float64 {
	obj := 0.0
	for _, i := range openPlants {
		obj += model.Plants[i].FixedCost
	}
	for _, s := range shipments {
		obj += model.UnitCosts[s.Plant][s.Retailer] * s.Amount
	}
	return obj
}
