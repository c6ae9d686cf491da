// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ampl drives AMPL-compatible optimization solvers (ipopt, bonmin,
// couenne, scip, ...) through files: the problem is serialized to the NL
// format, the solver runs as a child process, and its SOL result file is
// read back into the model
package ampl

import (
	"math"

	"github.com/cpmech/goampl/expr"
)

// Status defines the outcome of a solve
type Status int

const (
	NotSolved Status = iota
	Optimal
	Infeasible
	Unbounded
	UserLimit
	Error
)

// String returns the name of a status
func (o Status) String() string {
	switch o {
	case NotSolved:
		return "not-solved"
	case Optimal:
		return "optimal"
	case Infeasible:
		return "infeasible"
	case Unbounded:
		return "unbounded"
	case UserLimit:
		return "user-limit"
	}
	return "error"
}

// Sense defines the optimization direction
type Sense int

const (
	Min Sense = iota
	Max
)

// VarType defines the category of a variable
type VarType int

const (
	Cont VarType = iota
	Int
	Bin
)

// Model holds one optimization problem and, after Optimize, its results.
// Variables and constraints are 1-based on the user side; the NL file uses
// the permuted 0-based indices held in Vmap/Cmap
type Model struct {

	// access
	Solver  *Solver // solver to be used
	DirOut  string  // directory for the .nl and .sol files
	FnKey   string  // filename key; e.g. "model" => model.nl, model.sol
	Verbose bool    // show messages

	// problem
	Nvar     int              // number of variables
	Ncon     int              // number of constraints
	Xlow     []float64        // lower bounds of variables
	Xup      []float64        // upper bounds of variables
	Glow     []float64        // lower bounds of constraints (after shifting by extracted constants)
	Gup      []float64        // upper bounds of constraints
	Rcodes   []int            // relation code per constraint
	Jcounts  []int            // number of constraints in which each variable appears linearly
	LinCon   []expr.LinearMap // linear coefficients per constraint
	LinObj   expr.LinearMap   // linear coefficients of objective
	ObjConst float64          // constant extracted from the objective
	ConTrees []*expr.Node     // residual nonlinear tree per constraint (scalar 0 when linear)
	ObjTree  *expr.Node       // residual nonlinear tree of objective; nil when absent
	VlinCon  []expr.Linearity // per-variable linearity with respect to the constraints
	VlinObj  []expr.Linearity // per-variable linearity with respect to the objective
	Clin     []expr.Linearity // per-constraint linearity
	ObjLin   expr.Linearity   // objective linearity
	VarTypes []VarType        // category per variable
	Sense    Sense            // minimize or maximize
	X0       []float64        // warm start (default zeros)

	// permutations (1-based original <-> 0-based NL)
	Vmap    map[int]int // variable => NL index
	VmapRev map[int]int // NL index => variable
	Cmap    map[int]int // constraint => NL index
	CmapRev map[int]int // NL index => constraint

	// results
	Sol    []float64 // solution vector
	Objval float64   // objective at Sol
	Stat   Status    // outcome
	ResNum int       // solve_result_num from the SOL file
	Res    string    // solve result word; e.g. "solved"
	Msg    string    // solver message block from the SOL file
	Exit   int       // solver process exit code
}

// NewModel returns a new Model bound to a solver
func NewModel(solver *Solver) (o *Model) {
	o = new(Model)
	o.Solver = solver
	o.DirOut = "/tmp/goampl"
	o.FnKey = "model"
	o.Objval = math.NaN()
	o.Res = "?"
	return
}

// Status returns the outcome of the solve
func (o *Model) Status() Status { return o.Stat }

// Solution returns the solution vector
func (o *Model) Solution() []float64 { return o.Sol }

// ObjVal returns the objective value at the solution
func (o *Model) ObjVal() float64 { return o.Objval }

// SolveResult returns the result word; e.g. "solved", "failure"
func (o *Model) SolveResult() string { return o.Res }

// SolveResultNum returns the numeric result code from the SOL file
func (o *Model) SolveResultNum() int { return o.ResNum }

// SolveMessage returns the message block printed by the solver
func (o *Model) SolveMessage() string { return o.Msg }

// SolveExitCode returns the exit code of the solver process
func (o *Model) SolveExitCode() int { return o.Exit }
