// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ampl

import (
	"math"

	"github.com/cpmech/goampl/expr"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// NlpProvider yields the expression trees of a nonlinear problem.
// Constraint expressions arrive as comparison trees: either body-rel-bound
// with two arguments (rel in {<=, >=, ==}) or lo <= body <= hi with three
// arguments under <=. Indices are 1-based
type NlpProvider interface {
	InitExprGraph() error
	ConstraintExpr(i int) (*expr.Node, error)
	ObjectiveExpr() (*expr.Node, error)
}

// LoadNonlinearProblem loads a nonlinear problem: bounds are copied,
// expressions are requested from provider, decomposed into linear
// coefficients plus residual nonlinear trees, and constraint bounds are
// shifted by the extracted constants
func (o *Model) LoadNonlinearProblem(nvar, ncon int, xlow, xup, glow, gup []float64, sense Sense, provider NlpProvider) (err error) {

	// allocate
	err = o.initProblem(nvar, ncon, xlow, xup, glow, gup, sense)
	if err != nil {
		return
	}
	err = provider.InitExprGraph()
	if err != nil {
		return chk.Err("provider cannot initialise expression graph:\n%v", err)
	}

	// objective
	e, err := provider.ObjectiveExpr()
	if err != nil {
		return chk.Err("provider cannot return objective expression:\n%v", err)
	}
	if e != nil {
		err = e.CheckArity(nvar)
		if err != nil {
			return
		}
		res, cnst, lin, resVars := expr.Decompose(e, o.LinObj)
		o.ObjConst = cnst
		o.ObjLin = lin
		for j := range resVars {
			o.VlinObj[j-1] = expr.Nonlin
		}
		if lin == expr.Nonlin {
			o.ObjTree, err = expr.Canon(res)
			if err != nil {
				return
			}
		}
	}

	// constraints
	for i := 1; i <= ncon; i++ {
		e, err = provider.ConstraintExpr(i)
		if err != nil {
			return chk.Err("provider cannot return constraint %d:\n%v", i, err)
		}
		var body *expr.Node
		body, err = o.normalizeConstraint(i, e)
		if err != nil {
			return
		}
		err = body.CheckArity(nvar)
		if err != nil {
			return
		}
		lmap := make(expr.LinearMap)
		res, cnst, lin, resVars := expr.Decompose(body, lmap)
		o.LinCon[i-1] = lmap
		o.Clin[i-1] = lin
		for j := range resVars {
			o.VlinCon[j-1] = expr.Nonlin
		}
		if math.IsInf(o.Glow[i-1], 0) && math.IsInf(o.Gup[i-1], 0) {
			return chk.Err("constraint %d has neither lower nor upper bound", i)
		}
		if !math.IsInf(o.Glow[i-1], 0) {
			o.Glow[i-1] -= cnst
		}
		if !math.IsInf(o.Gup[i-1], 0) {
			o.Gup[i-1] -= cnst
		}
		o.ConTrees[i-1], err = expr.Canon(res)
		if err != nil {
			return
		}
	}

	o.calcJcounts()
	return
}

// LoadLinearProblem loads a linear problem given the dense matrix of
// constraint coefficients A (ncon x nvar) and the objective coefficients c.
// Only nonzero entries of A enter the model
func (o *Model) LoadLinearProblem(A [][]float64, xlow, xup, c, glow, gup []float64, sense Sense) (err error) {
	nvar, ncon := len(c), len(A)
	err = o.initProblem(nvar, ncon, xlow, xup, glow, gup, sense)
	if err != nil {
		return
	}
	for j, coef := range c {
		if coef != 0 {
			o.LinObj[j+1] = coef
		}
	}
	for i := 0; i < ncon; i++ {
		if len(A[i]) != nvar {
			return chk.Err("row %d of A has %d entries (nvar=%d)", i, len(A[i]), nvar)
		}
		for j, coef := range A[i] {
			if coef != 0 {
				o.LinCon[i][j+1] = coef
			}
		}
		if math.IsInf(o.Glow[i], 0) && math.IsInf(o.Gup[i], 0) {
			return chk.Err("constraint %d has neither lower nor upper bound", i+1)
		}
		o.Rcodes[i] = boundCode(o.Glow[i], o.Gup[i])
	}
	o.calcJcounts()
	return
}

// LoadLinearProblemSparse is like LoadLinearProblem with A given as a
// sparse triplet matrix
func (o *Model) LoadLinearProblemSparse(T *la.Triplet, xlow, xup, c, glow, gup []float64, sense Sense) (err error) {
	return o.LoadLinearProblem(T.ToMatrix(nil).ToDense(), xlow, xup, c, glow, gup, sense)
}

// SetVarTypes sets the category of each variable
func (o *Model) SetVarTypes(types []VarType) (err error) {
	if len(types) != o.Nvar {
		return chk.Err("types has %d entries (nvar=%d)", len(types), o.Nvar)
	}
	for j, t := range types {
		if t != Cont && t != Int && t != Bin {
			return chk.Err("variable %d has unknown category %d", j+1, int(t))
		}
	}
	copy(o.VarTypes, types)
	return
}

// SetWarmStart sets the initial guess handed to the solver
func (o *Model) SetWarmStart(x0 []float64) (err error) {
	if len(x0) != o.Nvar {
		return chk.Err("x0 has %d entries (nvar=%d)", len(x0), o.Nvar)
	}
	copy(o.X0, x0)
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// initProblem validates the input vectors and allocates the model arrays
func (o *Model) initProblem(nvar, ncon int, xlow, xup, glow, gup []float64, sense Sense) (err error) {
	if nvar < 1 {
		return chk.Err("nvar=%d is invalid", nvar)
	}
	if ncon < 0 {
		return chk.Err("ncon=%d is invalid", ncon)
	}
	if len(xlow) != nvar || len(xup) != nvar {
		return chk.Err("variable bounds have %d/%d entries (nvar=%d)", len(xlow), len(xup), nvar)
	}
	if len(glow) != ncon || len(gup) != ncon {
		return chk.Err("constraint bounds have %d/%d entries (ncon=%d)", len(glow), len(gup), ncon)
	}
	o.Nvar, o.Ncon = nvar, ncon
	o.Sense = sense
	o.Xlow = append([]float64(nil), xlow...)
	o.Xup = append([]float64(nil), xup...)
	o.Glow = append([]float64(nil), glow...)
	o.Gup = append([]float64(nil), gup...)
	o.Rcodes = make([]int, ncon)
	o.Jcounts = make([]int, nvar)
	o.LinCon = make([]expr.LinearMap, ncon)
	for i := 0; i < ncon; i++ {
		o.LinCon[i] = make(expr.LinearMap)
	}
	o.LinObj = make(expr.LinearMap)
	o.ConTrees = make([]*expr.Node, ncon)
	for i := 0; i < ncon; i++ {
		o.ConTrees[i] = expr.Num(0)
	}
	o.ObjTree = nil
	o.ObjConst = 0
	o.VlinCon = make([]expr.Linearity, nvar)
	o.VlinObj = make([]expr.Linearity, nvar)
	for j := 0; j < nvar; j++ {
		o.VlinCon[j] = expr.Lin
		o.VlinObj[j] = expr.Lin
	}
	o.Clin = make([]expr.Linearity, ncon)
	for i := 0; i < ncon; i++ {
		o.Clin[i] = expr.Lin
	}
	o.ObjLin = expr.Lin
	o.VarTypes = make([]VarType, nvar)
	o.X0 = make([]float64, nvar)
	o.Sol = make([]float64, nvar)
	o.Stat = NotSolved
	o.Objval = math.NaN()
	return
}

// normalizeConstraint extracts the bound(s) and relation code from a
// comparison tree, returning the inner expression. A tree without a
// top-level comparison keeps the bounds provided to LoadNonlinearProblem
func (o *Model) normalizeConstraint(i int, e *expr.Node) (body *expr.Node, err error) {
	neg, pos := math.Inf(-1), math.Inf(1)

	if e.Kind == expr.CallKind {

		// range: lo <= body <= hi
		if e.Op == expr.OpLe && len(e.Args) == 3 {
			lo, errl := constSide(e.Args[0])
			hi, errh := constSide(e.Args[2])
			if errl != nil || errh != nil {
				return nil, chk.Err("constraint %d: range bounds must be constant", i)
			}
			o.Glow[i-1], o.Gup[i-1] = lo, hi
			o.Rcodes[i-1] = 0
			return e.Args[1], nil
		}

		// body rel bound
		if (e.Op == expr.OpLe || e.Op == expr.OpGe || e.Op == expr.OpEq) && len(e.Args) == 2 {
			op := e.Op
			lhs, rhs := e.Args[0], e.Args[1]
			bound, errc := constSide(rhs)
			if errc != nil {
				// constant on the left: mirror the relation
				bound, errc = constSide(lhs)
				if errc != nil {
					return nil, chk.Err("constraint %d: no constant side in comparison", i)
				}
				lhs = rhs
				switch op {
				case expr.OpLe:
					op = expr.OpGe
				case expr.OpGe:
					op = expr.OpLe
				}
			}
			switch op {
			case expr.OpLe:
				o.Glow[i-1], o.Gup[i-1] = neg, bound
				o.Rcodes[i-1] = 1
			case expr.OpGe:
				o.Glow[i-1], o.Gup[i-1] = bound, pos
				o.Rcodes[i-1] = 2
			default:
				o.Glow[i-1], o.Gup[i-1] = bound, bound
				o.Rcodes[i-1] = 4
			}
			return lhs, nil
		}
	}

	// bare body: bounds come from the load call
	o.Rcodes[i-1] = boundCode(o.Glow[i-1], o.Gup[i-1])
	return e, nil
}

// constSide evaluates a constant subtree; an error means the side has
// variables
func constSide(nd *expr.Node) (val float64, err error) {
	set := make(map[int]bool)
	nd.Vars(set)
	if len(set) > 0 {
		return 0, chk.Err("expression is not constant")
	}
	return expr.Eval(nd, nil)
}

// boundCode returns the NL bound code for a (lower, upper) pair
func boundCode(low, up float64) int {
	lf, uf := !math.IsInf(low, 0), !math.IsInf(up, 0)
	switch {
	case lf && uf && low == up:
		return 4
	case lf && uf:
		return 0
	case uf:
		return 1
	case lf:
		return 2
	}
	return 3
}

// calcJcounts counts, per variable, the constraints in which it appears
// linearly (i.e. has an entry in the constraint's coefficient map)
func (o *Model) calcJcounts() {
	for j := 0; j < o.Nvar; j++ {
		o.Jcounts[j] = 0
	}
	for _, lmap := range o.LinCon {
		for j := range lmap {
			o.Jcounts[j-1]++
		}
	}
}
