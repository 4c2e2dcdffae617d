package fctp

import (
	"fmt"

	"git.solver4all.com/azaryc2s/gorobi/gurobi"
)

// GurobiSolver solves formulations through the gorobi binding. When Env is
// nil a fresh environment is loaded per call and freed afterwards, so the
// adapter holds no process-wide state of its own.
type GurobiSolver struct {
	Env       *gurobi.Env
	LogFile   string
	TimeLimit float64 //seconds, 0 means no limit
	LPFile    string  //when set, the model is dumped there before solving
}

func (s *GurobiSolver) Name() string {
	return SolverGurobi
}

func (s *GurobiSolver) Solve(form *Formulation) (*SolveResult, error) {
	env := s.Env
	if env == nil {
		logFile := s.LogFile
		if logFile == "" {
			logFile = "fctp_gurobi.log"
		}
		var err error
		env, err = gurobi.LoadEnv(logFile)
		if err != nil {
			return nil, err
		}
		defer env.Free()
		env.SetIntParam("LogToConsole", int32(0))
	}

	varType := make([]int8, form.VarCount)
	for i, t := range form.VarTypes {
		if t == VarBinary {
			varType[i] = gurobi.BINARY
		} else {
			varType[i] = gurobi.CONTINUOUS
		}
	}

	model, err := env.NewModel("fctp", int32(form.VarCount), form.Obj, form.Lower, form.Upper, varType, form.VarNames)
	if err != nil {
		Log(1, err.Error())
		return nil, err
	}

	err = model.SetIntAttr(gurobi.INT_ATTR_MODELSENSE, gurobi.MINIMIZE)
	if err != nil {
		Log(1, err.Error())
		return nil, err
	}

	for _, row := range form.Rows {
		var op int8
		switch row.Sense {
		case SenseLE:
			op = gurobi.LESS_EQUAL
		case SenseGE:
			op = gurobi.GREATER_EQUAL
		default:
			op = gurobi.EQUAL
		}
		err = model.AddConstr(row.Ind, row.Val, op, row.RHS, row.Name)
		if err != nil {
			Log(1, "Error adding constraint %s: %s\n", row.Name, err.Error())
			return nil, err
		}
	}

	if s.TimeLimit > 0 {
		err = model.SetDblParam(gurobi.DBL_PAR_TIMELIMIT, s.TimeLimit)
		if err != nil {
			Log(1, "Couldn't set the time limit: %s\n", err.Error())
		}
	}
	if s.LPFile != "" {
		err = model.Write(s.LPFile)
		if err != nil {
			Log(1, "Couldn't write %s: %s\n", s.LPFile, err.Error())
		}
	}

	err = model.Optimize()
	if err != nil {
		Log(1, err.Error())
		return nil, err
	}

	optimstatus, err := model.GetIntAttr(gurobi.INT_ATTR_STATUS)
	if err != nil {
		return nil, fmt.Errorf("couldn't retrieve optimization status: %s", err.Error())
	}

	result := &SolveResult{Status: StatusFailed}
	switch optimstatus {
	case gurobi.OPTIMAL:
		result.Status = StatusOptimal
	case gurobi.INFEASIBLE:
		result.Status = StatusInfeasible
	case gurobi.UNBOUNDED:
		result.Status = StatusUnbounded
	case gurobi.INF_OR_UNBD:
		//presolve couldn't tell the two apart; either way there is no plan
		Log(2, "Model is infeasible or unbounded\n")
		result.Status = StatusInfeasible
	case gurobi.TIME_LIMIT:
		Log(1, "Time limit reached before proving optimality\n")
	}

	if result.Status != StatusOptimal {
		return result, nil
	}

	objval, err := model.GetDblAttr(gurobi.DBL_ATTR_OBJVAL)
	if err != nil {
		return nil, fmt.Errorf("couldn't retrieve the obj-value: %s", err.Error())
	}
	result.Obj = objval

	lb, err := model.GetDblAttr(gurobi.DBL_ATTR_OBJBOUND)
	if err != nil {
		Log(1, "Couldn't retrieve the lower-bound-value: %s\n", err.Error())
		lb = objval
	}
	result.Bound = lb

	solA, err := model.GetDblAttrArray(gurobi.DBL_ATTR_X, 0, int32(form.VarCount))
	if err != nil {
		return nil, fmt.Errorf("couldn't retrieve the variable values: %s", err.Error())
	}
	result.X = solA

	return result, nil
}
