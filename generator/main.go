package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"math/rand"
	"time"

	"git.solver4all.com/azaryc2s/fctp"
)

var plants fctp.ArrayIntFlags
var retailers fctp.ArrayIntFlags
var fixedStrats fctp.ArrayStringFlags
var name *string
var output *string
var count *int
var rngStart *int
var rngEnd *int
var xTo *float64
var yTo *float64
var demandMax *float64
var capSlack *float64
var costPerUnit *float64
var grid *bool

func main() {
	flag.Var(&plants, "n", "List of number of plants")
	flag.Var(&retailers, "m", "List of number of retailers")
	flag.Var(&fixedStrats, "f", "List of fixed-cost-generation strategies. (ONE|RNG)")
	name = flag.String("name", "zarychta", "Name for the instance")
	output = flag.String("outputDir", ".", "Output directory")
	count = flag.Int("count", 1, "Number of instances per combination")
	rngStart = flag.Int("rngStart", 1, "The lowest value for the fixed ramp-up cost")
	rngEnd = flag.Int("rngEnd", 100, "The highest added value for the fixed ramp-up cost (actual max value is start+end-1)")
	xTo = flag.Float64("x", 100, "Max value on the x-axis")
	yTo = flag.Float64("y", 100, "Max value on the y-axis")
	demandMax = flag.Float64("demandMax", 50, "Max demand per retailer")
	capSlack = flag.Float64("capSlack", 1.5, "Total capacity as a multiple of total demand, spread evenly over the plants. Values below 1 generate infeasible instances")
	costPerUnit = flag.Float64("costPerUnit", 1, "Transportation cost per unit and distance")
	grid = flag.Bool("grid", false, "Place retailers on a square unit grid instead of uniformly at random")

	flag.Parse()

	for l := 0; l < *count; l++ {
		rand.Seed(time.Now().UnixNano())
		for i := 0; i < len(plants); i++ {
			n := plants[i]
			plantCoords := make([][]float64, n)
			for p := 0; p < n; p++ {
				plantCoords[p] = []float64{rand.Float64() * *xTo, rand.Float64() * *yTo}
			}
			for j := 0; j < len(retailers); j++ {
				m := retailers[j]
				retailerCoords := make([][]float64, m)
				if *grid {
					side := 1
					for side*side < m {
						side++
					}
					for r := 0; r < m; r++ {
						retailerCoords[r] = []float64{float64(r % side), float64(r / side)}
					}
				} else {
					for r := 0; r < m; r++ {
						retailerCoords[r] = []float64{rand.Float64() * *xTo, rand.Float64() * *yTo}
					}
				}
				demands := make([]float64, m)
				totalDemand := 0.0
				for r := 0; r < m; r++ {
					demands[r] = 1 + rand.Float64()*(*demandMax-1)
					totalDemand += demands[r]
				}
				capacities := make([]float64, n)
				for p := 0; p < n; p++ {
					capacities[p] = totalDemand * *capSlack / float64(n)
				}
				for k := 0; k < len(fixedStrats); k++ {
					s := fixedStrats[k]
					fixedCosts := make([]float64, n)
					if s == "ONE" {
						for p := 0; p < n; p++ {
							fixedCosts[p] = float64(*rngStart)
						}
					} else if s == "RNG" {
						for p := 0; p < n; p++ {
							fixedCosts[p] = float64(*rngStart + rand.Intn(*rngEnd))
						}
					}

					comment := fmt.Sprintf("%s instance Nr. %d with %d plants, %d retailers and fixed costs generated as %s", *name, l, n, m, s)
					instName := fmt.Sprintf("%s_%d_%d_%s_%d", *name, n, m, s, l)
					inst := fctp.FCTPInstance{Name: instName, Comment: comment, Type: "FCTP", PlantCount: n, RetailerCount: m, PlantCoordinates: plantCoords, RetailerCoordinates: retailerCoords, FixedCosts: fixedCosts, Capacities: capacities, Demands: demands, CostPerUnit: *costPerUnit}

					jsonInst, err := json.MarshalIndent(inst, "", "\t")
					if err != nil {
						log.Fatal(err)
					}

					jsonInst = []byte(fctp.SanitizeJsonArrayLineBreaks(string(jsonInst)))
					err = ioutil.WriteFile(fmt.Sprintf("%s/%s.json", *output, instName), jsonInst, 0644)
					if err != nil {
						log.Fatal(err)
					}
				}
			}
		}
	}
}
