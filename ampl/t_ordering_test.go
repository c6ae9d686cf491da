// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ampl

import (
	"testing"

	"github.com/cpmech/goampl/expr"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// mixed model: 5 variables over all ordering buckets and one linear plus
// one nonlinear constraint
//  x1: linear binary   x2: nonlinear continuous   x3: linear integer
//  x4: nonlinear integer   x5: linear continuous
func makeMixedModel(tst *testing.T) (o *Model) {
	o = NewModel(NewSolver("fake", nil))
	provider := &testProvider{
		obj: expr.Call(expr.OpPow, expr.Var(2), expr.Num(2)),
		cons: []*expr.Node{
			expr.Call(expr.OpLe, expr.Call(expr.OpSum, expr.Var(1), expr.Var(3), expr.Var(5)), expr.Num(1)),
			expr.Call(expr.OpLe, expr.Call(expr.OpMult, expr.Var(4), expr.Var(4)), expr.Num(4)),
		},
	}
	xlow := []float64{0, ninf, 0, ninf, ninf}
	xup := []float64{1, pinf, 10, pinf, pinf}
	err := o.LoadNonlinearProblem(5, 2, xlow, xup, []float64{ninf, ninf}, []float64{pinf, pinf}, Min, provider)
	if err != nil {
		tst.Fatalf("LoadNonlinearProblem failed:\n%v", err)
	}
	err = o.SetVarTypes([]VarType{Bin, Cont, Int, Int, Cont})
	if err != nil {
		tst.Fatalf("SetVarTypes failed:\n%v", err)
	}
	o.makeVarIndex()
	o.makeConIndex()
	return
}

func Test_ordering01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ordering01. variable buckets")

	o := makeMixedModel(tst)

	// nonlinear cont, nonlinear int, linear cont, linear bin, linear int
	chk.IntAssert(o.Vmap[2], 0)
	chk.IntAssert(o.Vmap[4], 1)
	chk.IntAssert(o.Vmap[5], 2)
	chk.IntAssert(o.Vmap[1], 3)
	chk.IntAssert(o.Vmap[3], 4)

	// bijection
	chk.IntAssert(len(o.Vmap), 5)
	chk.IntAssert(len(o.VmapRev), 5)
	for j := 1; j <= 5; j++ {
		p, ok := o.Vmap[j]
		if !ok {
			tst.Errorf("variable %d has no NL index", j)
			return
		}
		if p < 0 || p > 4 {
			tst.Errorf("NL index %d of variable %d is out of range", p, j)
			return
		}
		chk.IntAssert(o.VmapRev[p], j)
	}
}

func Test_ordering02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ordering02. constraints and Jacobian counts")

	o := makeMixedModel(tst)
	io.Pforan("Clin = %v\n", o.Clin)

	// nonlinear constraint first
	chk.IntAssert(int(o.Clin[0]), int(expr.Lin))
	chk.IntAssert(int(o.Clin[1]), int(expr.Nonlin))
	chk.IntAssert(o.Cmap[2], 0)
	chk.IntAssert(o.Cmap[1], 1)
	chk.IntAssert(o.CmapRev[0], 2)
	chk.IntAssert(o.CmapRev[1], 1)

	// x4 shows up with a zero coefficient (present in the residual only)
	chk.Ints(tst, "jcounts", o.Jcounts, []int{1, 0, 1, 1, 1})
}
