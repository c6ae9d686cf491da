// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func checkEval(tst *testing.T, nd *Node, x []float64, correct float64) {
	res, err := Eval(nd, x)
	if err != nil {
		tst.Errorf("cannot evaluate %v:\n%v", nd, err)
		return
	}
	chk.Float64(tst, nd.String(), 1e-14, res, correct)
}

func Test_eval01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eval01. arithmetic")

	x := []float64{2, 3}
	checkEval(tst, Num(1.5), nil, 1.5)
	checkEval(tst, Var(2), x, 3)
	checkEval(tst, Call(OpPlus, Var(1), Var(2)), x, 5)
	checkEval(tst, Call(OpSum, Var(1), Var(2), Num(1)), x, 6)
	checkEval(tst, Call(OpMinus, Var(1), Var(2)), x, -1)
	checkEval(tst, Call(OpNeg, Var(1)), x, -2)
	checkEval(tst, Call(OpMult, Var(1), Var(2)), x, 6)
	checkEval(tst, Call(OpDiv, Var(2), Var(1)), x, 1.5)
	checkEval(tst, Call(OpPow, Var(1), Num(3)), x, 8)
	checkEval(tst, Call(OpAbs, Num(-4)), nil, 4)
	checkEval(tst, Call(OpMin, Var(1), Var(2), Num(-1)), x, -1)
	checkEval(tst, Call(OpMax, Var(1), Var(2)), x, 3)
}

func Test_eval02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eval02. transcendentals and conditionals")

	x := []float64{0.5}
	checkEval(tst, Call(OpExp, Var(1)), x, math.Exp(0.5))
	checkEval(tst, Call(OpLog, Var(1)), x, math.Log(0.5))
	checkEval(tst, Call(OpSqrt, Var(1)), x, math.Sqrt(0.5))
	checkEval(tst, Call(OpSin, Var(1)), x, math.Sin(0.5))
	checkEval(tst, Call(OpCos, Var(1)), x, math.Cos(0.5))
	checkEval(tst, Call(OpAtan2, Var(1), Num(2)), x, math.Atan2(0.5, 2))
	checkEval(tst, Call(OpIf, Call(OpLe, Var(1), Num(1)), Num(10), Num(20)), x, 10)
	checkEval(tst, Call(OpIf, Call(OpGt, Var(1), Num(1)), Num(10), Num(20)), x, 20)

	// out-of-range variable is an error
	_, err := Eval(Var(3), x)
	if err == nil {
		tst.Errorf("out-of-range variable should be an error")
	}
}
