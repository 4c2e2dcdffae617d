/* Copyright 2021, Arkadiusz Zarychta, arkadiusz.zarychta@h-brs.de */

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"strings"
	"time"

	"git.solver4all.com/azaryc2s/fctp"
	"git.solver4all.com/azaryc2s/gorobi/gurobi"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

var (
	sol   fctp.FCTPSolution
	pInst fctp.FCTPInstance

	inputF     *string
	outputF    *string
	solverName *string
	timeLimit  *float64
	writeLP    *bool
	logLvl     *int
)

func main() {
	inputF = flag.String("input", "input.json", "Path to the input instance")
	outputF = flag.String("output", "", "Path to the output file. By default the input file will be overwritten adding the solution")
	solverName = flag.String("solver", fctp.SolverGurobi, "MILP solver backend. gurobi|highs")
	timeLimit = flag.Float64("timeLimit", 0, "Time limit for the solver in seconds. 0 means no limit (gurobi only)")
	writeLP = flag.Bool("lp", false, "Write the model to '<input>.lp' before solving (gurobi only)")
	logLvl = flag.Int("log", 2, "Level of the logging output. Higher value is more verbose. Range 1-4")

	flag.Parse()

	hostStat, _ := host.Info()
	cpuStat, _ := cpu.Info()
	vmStat, _ := mem.VirtualMemory()
	sol = fctp.FCTPSolution{Comment: "", System: fctp.SysInfo{hostStat.Platform, cpuStat[0].ModelName, fmt.Sprintf("%d GB", (vmStat.Total / 1024 / 1024 / 1024))}}

	fctp.InitLoggers(*logLvl)

	instStr, err := ioutil.ReadFile(*inputF)
	if err != nil {
		fctp.Log(1, "At %s: %s\n", *inputF, err.Error())
		return
	}

	err = json.Unmarshal(instStr, &pInst)
	if err != nil {
		fctp.Log(1, "At %s: %s\n", *inputF, err.Error())
		return
	}
	pInst.Solution = &sol

	model, err := fctp.CreateFCTPModel(&pInst)
	if err != nil {
		fctp.Log(1, "At %s: %s\n", *inputF, err.Error())
		return
	}

	var solver fctp.Solver
	switch *solverName {
	case fctp.SolverGurobi:
		// Create environment
		env, err := gurobi.LoadEnv("fctp_gurobi.log")
		if err != nil {
			fctp.Log(1, "At %s: %s\n", *inputF, err.Error())
			return
		}
		defer env.Free()
		env.SetIntParam("LogToConsole", int32(0))
		threads, _ := env.GetIntParam(gurobi.INT_PAR_THREADS)
		sol.Comment = fmt.Sprintf("Solver-Settings: SolverDev: Zarychta, Solver=%s, Threads=%d, TimeLimit=%.0f", *solverName, threads, *timeLimit)
		grb := &fctp.GurobiSolver{Env: env, TimeLimit: *timeLimit}
		if *writeLP {
			grb.LPFile = strings.ReplaceAll(*inputF, ".json", ".lp")
		}
		solver = grb
	case fctp.SolverHiGHS:
		if *timeLimit > 0 {
			fctp.Log(2, "The highs backend ignores -timeLimit\n")
		}
		sol.Comment = fmt.Sprintf("Solver-Settings: SolverDev: Zarychta, Solver=%s", *solverName)
		solver = &fctp.HiGHSSolver{}
	default:
		fctp.Log(1, "Unsupported solver: %s\n", *solverName)
		return
	}

	startTime := time.Now()
	res, err := solver.Solve(model.Form)
	sol.Time = time.Since(startTime).String()
	if err != nil {
		fctp.Log(1, "At %s: %s\n", *inputF, err.Error())
		sol.Status = fctp.StatusFailed
		writeSolution()
		return
	}
	fctp.Log(2, "\n---OPTIMIZATION DONE---\n")

	fctp.CaptureSolution(&model, res, &sol)
	if sol.Optimal {
		solValid, validComment := fctp.CheckSolutionValidity(sol.OpenPlants, sol.Shipments, model.Plants, model.Retailers)
		if !solValid {
			fctp.Log(1, validComment)
			sol.Comment += ". " + validComment
		} else {
			fctp.Log(1, "The computed solution is valid! ")
		}
		fctp.Log(2, "Shipping plan costs %f in total (%d plants open)\n", fctp.EvalObjective(sol.OpenPlants, sol.Shipments, &model), len(sol.OpenPlants))
	}
	writeSolution()
}

func writeSolution() {
	jsonInst, err := json.MarshalIndent(pInst, "", "\t")
	if err != nil {
		fctp.Log(1, "At %s: %s\n", *inputF, err.Error())
		return
	}
	jsonInst = []byte(fctp.SanitizeJsonArrayLineBreaks(string(jsonInst)))
	var fileName string
	if *outputF == "" {
		fileName = *inputF //overwrite the input file
	} else {
		fileName = *outputF
	}
	err = ioutil.WriteFile(fileName, jsonInst, 0644)
	if err != nil {
		fctp.Log(1, "At %s: %s\n", *inputF, err.Error())
		return
	}
}
