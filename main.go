// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/goampl/ampl"
	"github.com/cpmech/goampl/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".opt", true)
	solverCmd := io.ArgToString(1, "")
	verbose := io.ArgToBool(2, true)

	// message
	if verbose {
		io.PfWhite("\ngoampl -- interface to AMPL-compatible optimization solvers\n\n")
		io.Pf("%v\n", io.ArgsTable(
			"filename path", "fnamepath", fnamepath,
			"solver command", "solverCmd", solverCmd,
			"show messages", "verbose", verbose,
		))
	}

	// problem data
	prob := inp.ReadProb(fnamepath)
	if solverCmd == "" {
		solverCmd = prob.Solver
	}
	if solverCmd == "" {
		chk.Panic("no solver command: set it in the .opt file or as the second argument")
	}

	// model
	solver := ampl.NewSolver(solverCmd, prob.Options)
	model := ampl.NewModel(solver)
	model.Verbose = verbose
	err := prob.LoadInto(model)
	if err != nil {
		chk.Panic("cannot load problem:\n%v", err)
	}

	// solve
	err = model.Optimize()
	if err != nil {
		chk.Panic("optimization failed:\n%v", err)
	}

	// results
	io.Pf("\nstatus      = %v\n", model.Status())
	io.Pf("result      = %s (%d)\n", model.SolveResult(), model.SolveResultNum())
	io.Pf("exit code   = %d\n", model.SolveExitCode())
	if model.Status() == ampl.Optimal {
		io.Pfgreen("objective   = %g\n", model.ObjVal())
		io.Pf("solution    = %v\n", model.Solution())
	}
	if model.SolveMessage() != "" {
		io.Pfblue2("\n%s\n", model.SolveMessage())
	}
}
