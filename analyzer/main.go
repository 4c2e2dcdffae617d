package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"math"
	"os"
	"strings"

	"git.solver4all.com/azaryc2s/fctp"
)

func main() {
	if len(os.Args) < 2 {
		log.Printf("No arguments passed!")
		return
	}
	dirName := os.Args[1]
	dir, err := ioutil.ReadDir(dirName)
	if err != nil {
		log.Printf("Couldn't open directory %s: %s\n", os.Args[1], err.Error())
		return
	}
	fmt.Printf("Name,Status,Optimal,Time,Obj,LBound,Gap,Plants,Retailers,Open,Comment\n")
	for _, f := range dir {
		fileName := dirName + "/" + f.Name()
		if strings.Contains(fileName, ".json") {
			inst := fctp.FCTPInstance{}
			instStr, err := ioutil.ReadFile(fileName)
			if err != nil {
				log.Printf("Couldn't read %s: %s\n", f.Name(), err.Error())
				return
			}
			err = json.Unmarshal(instStr, &inst)
			if err != nil {
				log.Printf("Couldn't parse %s: %s\n", f.Name(), err.Error())
				return
			}
			if inst.Solution == nil {
				fmt.Printf("No solution for %s\n", inst.Name)
				continue
			}
			sol := *inst.Solution
			if sol.Optimal {
				solValid, validComment := fctp.CheckSolutionValidity(sol.OpenPlants, sol.Shipments, fctp.BuildPlants(&inst), fctp.BuildRetailers(&inst))
				if !solValid {
					sol.Comment += fmt.Sprintf(" %s", validComment)
				}
			}
			gap := 0.0
			if sol.LBound != 0 {
				gap = math.Round(((sol.Obj-sol.LBound)/sol.LBound)*1000) / 1000.0
			}
			fmt.Printf("%s,%s,%t,%s,%.4f,%.4f,%.4f,%d,%d,%d,%s\n", inst.Name, sol.Status, sol.Optimal, sol.Time, sol.Obj, sol.LBound, gap, len(inst.PlantCoordinates), len(inst.RetailerCoordinates), len(sol.OpenPlants), sol.Comment)
		}
	}

}
