package fctp

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridInstance is the 4-plant / 3x3-retailer-grid scenario: capacity 60
// each, demand 20 each, plant 1 priced out by its fixed cost of 100.
func gridInstance() *FCTPInstance {
	retailerCoords := make([][]float64, 0, 9)
	demands := make([]float64, 0, 9)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			retailerCoords = append(retailerCoords, []float64{float64(x), float64(y)})
			demands = append(demands, 20)
		}
	}
	return &FCTPInstance{
		Name:                "grid_4_9",
		Type:                "FCTP",
		PlantCount:          4,
		RetailerCount:       9,
		PlantCoordinates:    [][]float64{{0, 1.5}, {2.5, 1.2}, {1.7, 2.3}, {0.7, 1.8}},
		RetailerCoordinates: retailerCoords,
		FixedCosts:          []float64{5, 100, 3, 9},
		Capacities:          []float64{60, 60, 60, 60},
		Demands:             demands,
		CostPerUnit:         1,
	}
}

func TestValidateInstance(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(inst *FCTPInstance)
		errMsg string
	}{
		{"valid", func(inst *FCTPInstance) {}, ""},
		{"missing capacity", func(inst *FCTPInstance) { inst.Capacities = inst.Capacities[:3] }, "capacities"},
		{"missing fixed cost", func(inst *FCTPInstance) { inst.FixedCosts = inst.FixedCosts[:2] }, "fixed costs"},
		{"missing demand", func(inst *FCTPInstance) { inst.Demands = inst.Demands[:8] }, "demands"},
		{"1D plant coordinate", func(inst *FCTPInstance) { inst.PlantCoordinates[1] = []float64{4} }, "coordinate"},
		{"1D retailer coordinate", func(inst *FCTPInstance) { inst.RetailerCoordinates[0] = []float64{} }, "coordinate"},
		{"negative capacity", func(inst *FCTPInstance) { inst.Capacities[2] = -1 }, "negative capacity"},
		{"negative fixed cost", func(inst *FCTPInstance) { inst.FixedCosts[0] = -5 }, "negative fixed cost"},
		{"negative demand", func(inst *FCTPInstance) { inst.Demands[4] = -20 }, "negative demand"},
		{"negative cost per unit", func(inst *FCTPInstance) { inst.CostPerUnit = -1 }, "cost per unit"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inst := gridInstance()
			tc.mutate(inst)
			err := ValidateInstance(inst)
			if tc.errMsg == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errMsg)
			}
		})
	}
}

func TestCreateFCTPModelRejectsInvalidInput(t *testing.T) {
	inst := gridInstance()
	inst.Demands[0] = -1
	_, err := CreateFCTPModel(inst)
	assert.Error(t, err)
}

func TestCreateFCTPModelLayout(t *testing.T) {
	inst := gridInstance()
	model, err := CreateFCTPModel(inst)
	require.NoError(t, err)

	assert.Equal(t, 4, model.N)
	assert.Equal(t, 9, model.M)
	assert.Equal(t, 4+4*9, model.VarCount)
	assert.Equal(t, 0, model.OpenStart)
	assert.Equal(t, 4, model.FlowStart)

	form := model.Form
	require.Equal(t, model.VarCount, form.VarCount)
	require.Len(t, form.Rows, 4+9)

	// open block: binary, bounded by [0,1], fixed cost in the objective
	for i := 0; i < model.N; i++ {
		oi := GetOpenIndex(i, model.OpenStart)
		assert.Equal(t, VarBinary, form.VarTypes[oi])
		assert.Equal(t, 0.0, form.Lower[oi])
		assert.Equal(t, 1.0, form.Upper[oi])
		assert.Equal(t, inst.FixedCosts[i], form.Obj[oi])
		assert.Equal(t, fmt.Sprintf("Open_%d", i), form.VarNames[oi])
	}
	// flow block: continuous, non-negative, unit cost in the objective
	for i := 0; i < model.N; i++ {
		for j := 0; j < model.M; j++ {
			fi := GetFlowIndex(i, j, model.M, model.FlowStart)
			assert.Equal(t, VarContinuous, form.VarTypes[fi])
			assert.Equal(t, 0.0, form.Lower[fi])
			assert.Equal(t, Infinity, form.Upper[fi])
			assert.Equal(t, model.UnitCosts[i][j], form.Obj[fi])
			assert.Equal(t, fmt.Sprintf("Flow_%d_%d", i, j), form.VarNames[fi])
		}
	}
}

func TestCapacityLinkingRows(t *testing.T) {
	inst := gridInstance()
	model, err := CreateFCTPModel(inst)
	require.NoError(t, err)

	// one linking row per plant: sum_j Flow_ij - cap_i*Open_i <= 0. The
	// coefficient on the open-indicator must be the exact capacity, not a
	// separate big-M bound.
	for i := 0; i < model.N; i++ {
		row := model.Form.Rows[i]
		assert.Equal(t, fmt.Sprintf("cap_%d", i), row.Name)
		assert.Equal(t, SenseLE, row.Sense)
		assert.Equal(t, 0.0, row.RHS)
		require.Len(t, row.Ind, model.M+1)
		for j := 0; j < model.M; j++ {
			assert.Equal(t, int32(GetFlowIndex(i, j, model.M, model.FlowStart)), row.Ind[j])
			assert.Equal(t, 1.0, row.Val[j])
		}
		assert.Equal(t, int32(GetOpenIndex(i, model.OpenStart)), row.Ind[model.M])
		assert.Equal(t, -inst.Capacities[i], row.Val[model.M])
	}
}

func TestDemandRows(t *testing.T) {
	inst := gridInstance()
	model, err := CreateFCTPModel(inst)
	require.NoError(t, err)

	// one covering row per retailer: sum_i Flow_ij >= dem_j
	for j := 0; j < model.M; j++ {
		row := model.Form.Rows[model.N+j]
		assert.Equal(t, fmt.Sprintf("dem_%d", j), row.Name)
		assert.Equal(t, SenseGE, row.Sense)
		assert.Equal(t, inst.Demands[j], row.RHS)
		require.Len(t, row.Ind, model.N)
		for i := 0; i < model.N; i++ {
			assert.Equal(t, int32(GetFlowIndex(i, j, model.M, model.FlowStart)), row.Ind[i])
			assert.Equal(t, 1.0, row.Val[i])
		}
	}
}

func TestCheckSolutionValidity(t *testing.T) {
	inst := gridInstance()
	model, err := CreateFCTPModel(inst)
	require.NoError(t, err)

	valid := []Shipment{}
	for j := 0; j < 9; j++ {
		valid = append(valid, Shipment{Plant: j % 3, Retailer: j, Amount: 20})
	}

	tests := []struct {
		name      string
		open      []int
		shipments []Shipment
		ok        bool
		comment   string
	}{
		{"valid plan", []int{0, 1, 2}, valid, true, ""},
		{"closed plant ships", []int{0, 1}, valid, false, "not open"},
		{"capacity exceeded", []int{0}, []Shipment{
			{Plant: 0, Retailer: 0, Amount: 40},
			{Plant: 0, Retailer: 1, Amount: 40},
		}, false, "capacity"},
		{"demand uncovered", []int{0, 1, 2}, valid[:8], false, "demands"},
		{"negative amount", []int{0}, []Shipment{{Plant: 0, Retailer: 0, Amount: -1}}, false, "negative"},
		{"unknown site", []int{0}, []Shipment{{Plant: 0, Retailer: 99, Amount: 20}}, false, "unknown"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ok, comment := CheckSolutionValidity(tc.open, tc.shipments, model.Plants, model.Retailers)
			assert.Equal(t, tc.ok, ok)
			if tc.comment != "" {
				assert.Contains(t, comment, tc.comment)
			}
		})
	}
}

func TestCheckSolutionValidityAllowsOverSupply(t *testing.T) {
	// the demand rows are ">=", a plan shipping more than demanded is legal
	inst := gridInstance()
	model, err := CreateFCTPModel(inst)
	require.NoError(t, err)

	shipments := make([]Shipment, 0, 9)
	for j := 0; j < 9; j++ {
		shipments = append(shipments, Shipment{Plant: j % 3, Retailer: j, Amount: 20})
	}
	shipments[0].Amount = 25

	ok, comment := CheckSolutionValidity([]int{0, 1, 2}, shipments, model.Plants, model.Retailers)
	assert.True(t, ok, comment)
}
