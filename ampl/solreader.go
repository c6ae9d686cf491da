// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ampl

import (
	"strconv"
	"strings"

	"github.com/cpmech/goampl/expr"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// solScanner walks the lines of a SOL file
type solScanner struct {
	lines []string
	pos   int
}

func (o *solScanner) more() bool {
	return o.pos < len(o.lines)
}

func (o *solScanner) next() (line string, err error) {
	if !o.more() {
		return "", chk.Err("premature end of SOL file")
	}
	line = o.lines[o.pos]
	o.pos++
	return
}

func (o *solScanner) nextInt() (val int, err error) {
	line, err := o.next()
	if err != nil {
		return
	}
	val, cerr := strconv.Atoi(strings.TrimSpace(line))
	if cerr != nil {
		return 0, chk.Err("cannot parse integer from SOL line %q", line)
	}
	return
}

func (o *solScanner) nextFloat() (val float64, err error) {
	line, err := o.next()
	if err != nil {
		return
	}
	val, cerr := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if cerr != nil {
		return 0, chk.Err("cannot parse float from SOL line %q", line)
	}
	return
}

// ReadSol parses the solver's SOL result file, fills the solution vector,
// decodes the status and reconstitutes the objective value
func (o *Model) ReadSol(fnamepath string) (err error) {
	b, err := io.ReadFile(fnamepath)
	if err != nil {
		return chk.Err("cannot read SOL file:\n%v", err)
	}
	sc := &solScanner{lines: strings.Split(string(b), "\n")}

	// message block: non-blank lines up to a blank line or the Options
	// literal
	var msg []string
	for sc.more() {
		line, _ := sc.next()
		if strings.TrimSpace(line) == "" {
			if len(msg) > 0 {
				break
			}
			continue // leading blank lines
		}
		if strings.TrimSpace(line) == "Options" {
			sc.pos--
			break
		}
		msg = append(msg, line)
	}
	o.Msg = strings.Join(msg, "\n")

	// Options literal
	for sc.more() {
		line, _ := sc.next()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.TrimSpace(line) != "Options" {
			return chk.Err("SOL file: expected \"Options\" (got %q)", line)
		}
		break
	}

	// options block
	numOptions, err := sc.nextInt()
	if err != nil {
		return
	}
	if numOptions < 3 || numOptions > 9 {
		return chk.Err("SOL file: number of options %d is out of range [3,9]", numOptions)
	}
	options := []int{numOptions}
	needVbtol := false
	for k := 0; k < 2; k++ {
		v, cerr := sc.nextInt()
		if cerr != nil {
			return cerr
		}
		options = append(options, v)
	}
	if options[2] == 3 {
		needVbtol = true
		numOptions -= 2
	}
	for k := 0; k < numOptions-3; k++ {
		v, cerr := sc.nextInt()
		if cerr != nil {
			return cerr
		}
		options = append(options, v)
	}

	// counts
	nconsts, err := sc.nextInt()
	if err != nil {
		return
	}
	if nconsts != o.Ncon {
		return chk.Err("SOL file: number of constraints %d differs from ncon=%d", nconsts, o.Ncon)
	}
	nduals, err := sc.nextInt()
	if err != nil {
		return
	}
	if nduals != 0 && nduals != o.Ncon {
		return chk.Err("SOL file: number of duals %d must be 0 or ncon=%d", nduals, o.Ncon)
	}
	nvars, err := sc.nextInt()
	if err != nil {
		return
	}
	if nvars != o.Nvar {
		return chk.Err("SOL file: number of variables %d differs from nvar=%d", nvars, o.Nvar)
	}
	nvread, err := sc.nextInt()
	if err != nil {
		return
	}
	if nvread != 0 && nvread != o.Nvar {
		return chk.Err("SOL file: number of variable values %d must be 0 or nvar=%d", nvread, o.Nvar)
	}

	// vbtol line
	if needVbtol {
		_, err = sc.next()
		if err != nil {
			return
		}
	}

	// duals (skipped) and primal values
	for k := 0; k < nduals; k++ {
		_, err = sc.next()
		if err != nil {
			return
		}
	}
	for p := 0; p < nvread; p++ {
		v, cerr := sc.nextFloat()
		if cerr != nil {
			return cerr
		}
		o.Sol[o.VmapRev[p]-1] = v
	}

	// trailing: objno line
	o.ResNum = -1
	foundObjno := false
	for sc.more() {
		line, _ := sc.next()
		if !strings.HasPrefix(line, "objno ") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return chk.Err("SOL file: malformed objno line %q", line)
		}
		if fields[1] != "0" {
			return chk.Err("SOL file: objno is %s (only 0 is handled)", fields[1])
		}
		num, cerr := strconv.Atoi(fields[2])
		if cerr != nil {
			return chk.Err("SOL file: cannot parse result number from %q", line)
		}
		o.ResNum = num
		foundObjno = true
		break
	}

	// status from the result number
	switch {
	case !foundObjno:
	case o.ResNum >= 0 && o.ResNum < 100:
		o.Stat, o.Res = Optimal, "solved"
	case o.ResNum >= 100 && o.ResNum < 200:
		o.Stat, o.Res = Optimal, "solved?"
		io.Pfred("solver reported result number %d: solution may be inexact\n", o.ResNum)
	case o.ResNum >= 200 && o.ResNum < 300:
		o.Stat, o.Res = Infeasible, "infeasible"
	case o.ResNum >= 300 && o.ResNum < 400:
		o.Stat, o.Res = Unbounded, "unbounded"
	case o.ResNum >= 400 && o.ResNum < 500:
		o.Stat, o.Res = UserLimit, "limit"
	case o.ResNum >= 500 && o.ResNum < 600:
		o.Stat, o.Res = Error, "failure"
	}

	// fallback: infer the status from the message
	if o.Stat == NotSolved {
		msg := strings.ToLower(o.Msg)
		for _, probe := range []struct {
			word string
			stat Status
			res  string
		}{
			{"optimal", Optimal, "solved"},
			{"infeasible", Infeasible, "infeasible"},
			{"unbounded", Unbounded, "unbounded"},
			{"limit", UserLimit, "limit"},
			{"error", Error, "failure"},
		} {
			if strings.Contains(msg, probe.word) {
				o.Stat, o.Res = probe.stat, probe.res
				break
			}
		}
	}

	// objective reconstitution
	if nvread > 0 {
		o.Objval = o.ObjConst
		if o.ObjTree != nil {
			v, cerr := expr.Eval(o.ObjTree, o.Sol)
			if cerr != nil {
				return chk.Err("cannot evaluate objective at solution:\n%v", cerr)
			}
			o.Objval += v
		}
		for j, coef := range o.LinObj {
			o.Objval += coef * o.Sol[j-1]
		}
	}
	return
}
