// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.opt) JSON file
// describing an optimization problem: bounds, variable categories, a linear
// objective/constraint matrix and/or nonlinear expressions in prefix form
package inp

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/cpmech/goampl/ampl"
	"github.com/cpmech/goampl/expr"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Bnd holds one bound value; the strings "inf" and "-inf" are accepted in
// the JSON file
type Bnd float64

// UnmarshalJSON decodes a bound from a number or an "inf"/"-inf" string
func (o *Bnd) UnmarshalJSON(b []byte) (err error) {
	s := strings.ToLower(strings.Trim(strings.TrimSpace(string(b)), `"`))
	switch s {
	case "inf", "+inf":
		*o = Bnd(math.Inf(1))
		return
	case "-inf":
		*o = Bnd(math.Inf(-1))
		return
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return chk.Err("cannot parse bound %q", s)
	}
	*o = Bnd(v)
	return
}

// Prob holds an optimization problem read from a (.opt) JSON file.
// The linear data (c, a) and the nonlinear expressions (obj, con) are
// mutually exclusive: a problem with expressions takes the nonlinear path
type Prob struct {

	// global information
	Desc    string            `json:"desc"`    // description of problem
	DirOut  string            `json:"dirout"`  // directory for output; e.g. /tmp/goampl
	Sense   string            `json:"sense"`   // "min" or "max"
	Solver  string            `json:"solver"`  // solver command; e.g. "ipopt"
	Options map[string]string `json:"options"` // solver options

	// problem definition
	Nvar     int           `json:"nvar"`     // number of variables
	Ncon     int           `json:"ncon"`     // number of constraints
	Xlow     []Bnd         `json:"xlow"`     // lower bounds of variables
	Xup      []Bnd         `json:"xup"`      // upper bounds of variables
	Glow     []Bnd         `json:"glow"`     // lower bounds of constraints
	Gup      []Bnd         `json:"gup"`      // upper bounds of constraints
	VarTypes []string      `json:"vartypes"` // "cont", "int" or "bin" per variable
	C        []float64     `json:"c"`        // linear objective coefficients
	A        [][3]float64  `json:"a"`        // triplets (con, var, coefficient); 1-based
	Obj      interface{}   `json:"obj"`      // nonlinear objective in prefix form
	Con      []interface{} `json:"con"`      // nonlinear constraints in prefix form
	X0       []float64     `json:"x0"`       // warm start

	// derived
	FnameKey string       // problem filename key; e.g. myprob.opt => myprob
	objTree  *expr.Node   // parsed objective
	conTrees []*expr.Node // parsed constraints
}

// SetDefault sets default values
func (o *Prob) SetDefault() {
	o.DirOut = "/tmp/goampl"
	o.Sense = "min"
}

// PostProcess performs a post-processing of the just read json file
func (o *Prob) PostProcess(fnamepath string) {
	if o.DirOut == "" {
		o.DirOut = "/tmp/goampl"
	}
	if o.Sense == "" {
		o.Sense = "min"
	}
	o.FnameKey = io.FnKey(fnamepath)
}

// ReadProb reads a problem from a .opt JSON file
func ReadProb(fnamepath string) (o *Prob) {
	o = new(Prob)
	b, err := io.ReadFile(fnamepath)
	if err != nil {
		chk.Panic("%v", err)
	}
	o.SetDefault()
	err = json.Unmarshal(b, o)
	if err != nil {
		chk.Panic("cannot parse problem file %q:\n%v", fnamepath, err)
	}
	o.PostProcess(fnamepath)
	return
}

// Nonlinear tells whether this problem takes the nonlinear path
func (o *Prob) Nonlinear() bool {
	return o.Obj != nil || len(o.Con) > 0
}

// LoadInto loads this problem into a model, choosing the linear or
// nonlinear path and setting variable categories and warm start
func (o *Prob) LoadInto(m *ampl.Model) (err error) {
	m.DirOut = o.DirOut
	if o.FnameKey != "" {
		m.FnKey = o.FnameKey
	}
	sense := ampl.Min
	if strings.ToLower(o.Sense) == "max" {
		sense = ampl.Max
	}
	xlow, xup := bnds(o.Xlow), bnds(o.Xup)
	glow, gup := bnds(o.Glow), bnds(o.Gup)

	if o.Nonlinear() {
		err = m.LoadNonlinearProblem(o.Nvar, o.Ncon, xlow, xup, glow, gup, sense, o)
	} else {
		A := make([][]float64, o.Ncon)
		for i := 0; i < o.Ncon; i++ {
			A[i] = make([]float64, o.Nvar)
		}
		for _, t := range o.A {
			i, j := int(t[0]), int(t[1])
			if i < 1 || i > o.Ncon || j < 1 || j > o.Nvar {
				return chk.Err("matrix entry (%d,%d) is out of range", i, j)
			}
			A[i-1][j-1] = t[2]
		}
		err = m.LoadLinearProblem(A, xlow, xup, o.C, glow, gup, sense)
	}
	if err != nil {
		return
	}

	if len(o.VarTypes) > 0 {
		types := make([]ampl.VarType, len(o.VarTypes))
		for j, s := range o.VarTypes {
			switch strings.ToLower(s) {
			case "cont", "":
				types[j] = ampl.Cont
			case "int":
				types[j] = ampl.Int
			case "bin":
				types[j] = ampl.Bin
			default:
				return chk.Err("variable %d has unknown category %q", j+1, s)
			}
		}
		err = m.SetVarTypes(types)
		if err != nil {
			return
		}
	}
	if len(o.X0) > 0 {
		err = m.SetWarmStart(o.X0)
	}
	return
}

// NlpProvider interface /////////////////////////////////////////////////////////////////////////

// InitExprGraph parses the prefix-form expressions of the JSON file
func (o *Prob) InitExprGraph() (err error) {
	if o.Obj != nil {
		o.objTree, err = TreeFromJSON(o.Obj)
		if err != nil {
			return
		}
	}
	o.conTrees = make([]*expr.Node, len(o.Con))
	for i, c := range o.Con {
		o.conTrees[i], err = TreeFromJSON(c)
		if err != nil {
			return
		}
	}
	if len(o.conTrees) != o.Ncon {
		return chk.Err("problem has %d constraint expressions (ncon=%d)", len(o.conTrees), o.Ncon)
	}
	return
}

// ConstraintExpr returns the i-th (1-based) constraint expression
func (o *Prob) ConstraintExpr(i int) (*expr.Node, error) {
	if i < 1 || i > len(o.conTrees) {
		return nil, chk.Err("constraint index %d is out of range [1,%d]", i, len(o.conTrees))
	}
	return o.conTrees[i-1], nil
}

// ObjectiveExpr returns the objective expression (nil when absent)
func (o *Prob) ObjectiveExpr() (*expr.Node, error) {
	return o.objTree, nil
}

// TreeFromJSON converts a decoded JSON value into an expression tree:
// numbers are constants, ["v", j] is variable j and ["op", args...] is an
// operator call; e.g. ["+", ["*", 2, ["v", 1]], 3.5]
func TreeFromJSON(v interface{}) (nd *expr.Node, err error) {
	switch t := v.(type) {
	case float64:
		return expr.Num(t), nil
	case []interface{}:
		if len(t) < 2 {
			return nil, chk.Err("expression list %v is too short", t)
		}
		head, ok := t[0].(string)
		if !ok {
			return nil, chk.Err("expression head %v must be a string", t[0])
		}
		if head == "v" {
			j, ok := t[1].(float64)
			if !ok || len(t) != 2 {
				return nil, chk.Err("variable reference %v is malformed", t)
			}
			return expr.Var(int(j)), nil
		}
		op, cerr := expr.OpByName(head)
		if cerr != nil {
			return nil, cerr
		}
		args := make([]*expr.Node, len(t)-1)
		for i, a := range t[1:] {
			args[i], err = TreeFromJSON(a)
			if err != nil {
				return
			}
		}
		return expr.Call(op, args...), nil
	}
	return nil, chk.Err("cannot convert %v to an expression node", v)
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func bnds(in []Bnd) (out []float64) {
	out = make([]float64, len(in))
	for i, v := range in {
		out[i] = float64(v)
	}
	return
}
