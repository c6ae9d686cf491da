// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ampl

import (
	"os"
	"os/exec"
	"path"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Solver holds the command of an AMPL-compatible solver executable and the
// options passed to it; e.g. {"print_level": "0"} for ipopt
type Solver struct {
	Command string
	Options map[string]string
}

// NewSolver returns a new Solver
func NewSolver(command string, options map[string]string) (o *Solver) {
	o = new(Solver)
	o.Command = command
	if options == nil {
		options = make(map[string]string)
	}
	o.Options = options
	return
}

// CmdArgs assembles the solver's command line arguments:
//  <probfile> -AMPL key1=val1 key2=val2 ...
// with options in sorted key order
func (o *Solver) CmdArgs(probfile string) (args []string) {
	args = []string{probfile, "-AMPL"}
	keys := make([]string, 0, len(o.Options))
	for k := range o.Options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, io.Sf("%s=%s", k, o.Options[k]))
	}
	return
}

// Optimize writes the NL file, runs the solver and reads the SOL results
// back. A solver process exiting with a nonzero code is not an error of
// this call: the failure is recorded in the status fields
func (o *Model) Optimize() (err error) {

	// prepare
	if o.Solver == nil {
		return chk.Err("model has no solver")
	}
	if o.Nvar < 1 {
		return chk.Err("model has no problem loaded")
	}
	err = os.MkdirAll(o.DirOut, 0777)
	if err != nil {
		return chk.Err("cannot create output directory %q:\n%v", o.DirOut, err)
	}

	// orderings and problem file
	o.makeVarIndex()
	o.makeConIndex()
	err = o.WriteNl()
	if err != nil {
		return
	}

	// run solver
	probfile := path.Join(o.DirOut, o.FnKey+".nl")
	cmd := exec.Command(o.Solver.Command, o.Solver.CmdArgs(probfile)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if o.Verbose {
		io.Pf("running %s %v\n", o.Solver.Command, o.Solver.CmdArgs(probfile))
	}
	rerr := cmd.Run()
	if rerr != nil {
		ee, ok := rerr.(*exec.ExitError)
		if !ok {
			return chk.Err("cannot run solver %q:\n%v", o.Solver.Command, rerr)
		}
		o.Exit = ee.ExitCode()
	} else {
		o.Exit = cmd.ProcessState.ExitCode()
	}
	if o.Exit != 0 {
		o.Stat = Error
		o.Res = "failure"
		o.ResNum = 999
		if o.Verbose {
			io.PfRed("solver exited with code %d\n", o.Exit)
		}
		return
	}

	// results
	return o.ReadSol(path.Join(o.DirOut, o.FnKey+".sol"))
}
