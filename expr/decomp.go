// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

// LinearMap maps variable indices (1-based) to linear coefficients.
// A zero coefficient is kept only while the variable also shows up in the
// residual nonlinear tree
type LinearMap map[int]float64

// decomposer accumulates the linear part of one expression
type decomposer struct {
	lmap     LinearMap
	constant float64
}

// Decompose splits an expression into a linear coefficient map, a constant
// and a residual nonlinear tree:
//
//   eval(nd, x) == eval(residual, x) + constant + Σ lmap[j]·x[j]
//
// lmap receives the coefficients; resVars collects the variables appearing
// in the residual (these are the ones nonlinear in this context); lin is
// Nonlin if and only if the residual is not the scalar zero
func Decompose(nd *Node, lmap LinearMap) (residual *Node, constant float64, lin Linearity, resVars map[int]bool) {

	// list every variable of the expression, so that the NL linear segment
	// still carries a row for variables kept only in the residual
	seen := make(map[int]bool)
	nd.Vars(seen)
	for j := range seen {
		if _, ok := lmap[j]; !ok {
			lmap[j] = 0
		}
	}

	// decorate, fold constants upward and strip linear terms
	lt := Analyze(nd)
	PullUpConsts(lt)
	o := decomposer{lmap: lmap}
	lt = o.prune(lt, 1)
	residual = lt.Strip()
	constant = o.constant

	// variables surviving in the residual are nonlinear here
	resVars = make(map[int]bool)
	residual.Vars(resVars)

	// dead entries: zero coefficient and no residual occurrence
	for j, coef := range lmap {
		if coef == 0 && !resVars[j] {
			delete(lmap, j)
		}
	}

	lin = Lin
	if !residual.IsNum(0) {
		lin = Nonlin
	}
	return
}

// prune consumes, with the given sign, every extractable term found while
// descending through additive operators: constants, bare variables and
// constant·variable products, replacing each by zero. Everything else
// (nonlinear subtrees, linear shapes with no direct coefficient form such
// as a constant times a sum) is left for the residual
func (o *decomposer) prune(ln *LinNode, sign float64) *LinNode {
	switch ln.N.Kind {
	case NumKind:
		o.constant += sign * ln.N.Val
		return zeroLin()
	case VarKind:
		o.lmap[ln.N.Ind] += sign
		return zeroLin()
	}
	switch ln.N.Op {
	case OpPlus, OpSum:
		return o.pruneArgs(ln, sign, nil)
	case OpNeg:
		return o.pruneArgs(ln, sign, []float64{-1})
	case OpMinus:
		if len(ln.Args) == 1 { // unary minus
			return o.pruneArgs(ln, sign, []float64{-1})
		}
		return o.pruneArgs(ln, sign, []float64{1, -1})
	case OpMult:
		if ln.Tag == Lin {
			a, b := ln.Args[0], ln.Args[1]
			if a.N.Kind == NumKind && b.N.Kind == VarKind {
				o.lmap[b.N.Ind] += sign * a.N.Val
				return zeroLin()
			}
			if a.N.Kind == VarKind && b.N.Kind == NumKind {
				o.lmap[a.N.Ind] += sign * b.N.Val
				return zeroLin()
			}
		}
	}
	return ln
}

// pruneArgs prunes the arguments of an additive node, flipping the sign of
// argument i by signs[i] (nil means all positive). The node collapses to
// zero when every argument was consumed
func (o *decomposer) pruneArgs(ln *LinNode, sign float64, signs []float64) *LinNode {
	allzero := true
	for i, a := range ln.Args {
		s := sign
		if signs != nil {
			s *= signs[i]
		}
		ln.Args[i] = o.prune(a, s)
		if !ln.Args[i].isZero() {
			allzero = false
		}
	}
	if allzero {
		return zeroLin()
	}
	return ln
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func zeroLin() *LinNode {
	return &LinNode{N: Num(0), Tag: Const}
}

func (o *LinNode) isZero() bool {
	return o.N.IsNum(0)
}
