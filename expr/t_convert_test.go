// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_opcodes01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("opcodes01. NL opcode numbers")

	chk.IntAssert(OpPlus.Code(), 0)
	chk.IntAssert(OpMinus.Code(), 1)
	chk.IntAssert(OpMult.Code(), 2)
	chk.IntAssert(OpDiv.Code(), 3)
	chk.IntAssert(OpPow.Code(), 5)
	chk.IntAssert(OpNeg.Code(), 16)
	chk.IntAssert(OpSqrt.Code(), 39)
	chk.IntAssert(OpLog.Code(), 43)
	chk.IntAssert(OpExp.Code(), 44)
	chk.IntAssert(OpSum.Code(), 54)

	op, err := OpByName("exp")
	if err != nil {
		tst.Errorf("OpByName failed:\n%v", err)
		return
	}
	chk.IntAssert(int(op), int(OpExp))
	_, err = OpByName("frobnicate")
	if err == nil {
		tst.Errorf("unknown operator name should be an error")
	}
}

func Test_canon01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("canon01. canonicalization for NL emission")

	// unary minus becomes neg
	res, err := Canon(Call(OpMinus, Var(1)))
	if err != nil {
		tst.Errorf("Canon failed:\n%v", err)
		return
	}
	chk.IntAssert(int(res.Op), int(OpNeg))
	chk.IntAssert(len(res.Args), 1)

	// n-ary plus becomes sum
	res, err = Canon(Call(OpPlus, Var(1), Var(2), Num(3)))
	if err != nil {
		tst.Errorf("Canon failed:\n%v", err)
		return
	}
	chk.IntAssert(int(res.Op), int(OpSum))
	chk.IntAssert(len(res.Args), 3)

	// binary plus is kept
	res, err = Canon(Call(OpPlus, Var(1), Var(2)))
	if err != nil {
		tst.Errorf("Canon failed:\n%v", err)
		return
	}
	chk.IntAssert(int(res.Op), int(OpPlus))

	// two-argument sum becomes plus
	res, err = Canon(Call(OpSum, Var(1), Var(2)))
	if err != nil {
		tst.Errorf("Canon failed:\n%v", err)
		return
	}
	chk.IntAssert(int(res.Op), int(OpPlus))

	// arity checker accepts unary minus and rejects wrong counts
	err = Call(OpMinus, Var(1)).CheckArity(2)
	if err != nil {
		tst.Errorf("unary minus should be accepted:\n%v", err)
		return
	}
	err = Call(OpSin, Var(1), Var(2)).CheckArity(2)
	if err == nil {
		tst.Errorf("sin with two arguments should be rejected")
		return
	}
	err = Var(3).CheckArity(2)
	if err == nil {
		tst.Errorf("out-of-range variable should be rejected")
	}
}
