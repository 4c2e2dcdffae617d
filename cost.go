package fctp

import "math"

// EuclidDist returns the Euclidean distance between two 2D coordinates.
// Coincident points yield 0. Unlike TSPLIB-style edge weights the result is
// not rounded, distances enter the objective at full double precision.
func EuclidDist(a, b []float64) float64 {
	xDist := a[0] - b[0]
	yDist := a[1] - b[1]
	return math.Sqrt(xDist*xDist + yDist*yDist)
}

// CalcUnitCosts computes the complete plant x retailer unit transportation
// cost matrix: costPerUnit times the Euclidean distance between the sites.
func CalcUnitCosts(plantCoords, retailerCoords [][]float64, costPerUnit float64) [][]float64 {
	costs := make([][]float64, len(plantCoords))
	for i := range plantCoords {
		costs[i] = make([]float64, len(retailerCoords))
		for j := range retailerCoords {
			costs[i][j] = costPerUnit * EuclidDist(plantCoords[i], retailerCoords[j])
		}
	}
	return costs
}
