// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func checkTag(tst *testing.T, nd *Node, correct Linearity) {
	lt := Analyze(nd)
	io.Pforan("%v => %v\n", nd, lt.Tag)
	if lt.Tag != correct {
		tst.Errorf("%v: tag %v is incorrect (%v expected)", nd, lt.Tag, correct)
	}
}

func Test_linearity01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linearity01. leaves and additive operators")

	checkTag(tst, Num(1.5), Const)
	checkTag(tst, Var(1), Lin)
	checkTag(tst, Call(OpPlus, Num(1), Num(2)), Const)
	checkTag(tst, Call(OpPlus, Var(1), Num(2)), Lin)
	checkTag(tst, Call(OpMinus, Var(1), Var(2)), Lin)
	checkTag(tst, Call(OpNeg, Var(1)), Lin)
	checkTag(tst, Call(OpSum, Var(1), Var(2), Num(3)), Lin)
	checkTag(tst, Call(OpSum, Var(1), Call(OpMult, Var(1), Var(2))), Nonlin)
}

func Test_linearity02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linearity02. products, quotients and transcendentals")

	checkTag(tst, Call(OpMult, Num(2), Num(3)), Const)
	checkTag(tst, Call(OpMult, Num(2), Var(1)), Lin)
	checkTag(tst, Call(OpMult, Var(1), Var(2)), Nonlin)
	checkTag(tst, Call(OpMult, Num(2), Var(1), Var(2)), Nonlin)
	checkTag(tst, Call(OpDiv, Num(6), Num(3)), Const)
	checkTag(tst, Call(OpDiv, Var(1), Num(2)), Lin)
	checkTag(tst, Call(OpDiv, Num(2), Var(1)), Nonlin)
	checkTag(tst, Call(OpSin, Var(1)), Nonlin)
	checkTag(tst, Call(OpSin, Num(2)), Const)
	checkTag(tst, Call(OpPow, Var(1), Num(2)), Nonlin)
	checkTag(tst, Call(OpLe, Var(1), Num(2)), Nonlin)
	checkTag(tst, Call(OpIf, Num(1), Num(2), Num(3)), Const)
}

func Test_pullup01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pullup01. constant folding")

	// (2*3) + x => 6 + x
	nd := Call(OpPlus, Call(OpMult, Num(2), Num(3)), Var(1))
	lt := Analyze(nd)
	PullUpConsts(lt)
	chk.IntAssert(int(lt.Tag), int(Lin))
	if lt.Args[0].N.Kind != NumKind {
		tst.Errorf("constant subtree was not folded: %v", lt.Args[0].N)
		return
	}
	chk.Float64(tst, "folded value", 1e-17, lt.Args[0].N.Val, 6)

	// sin(1+1) * x => folded argument of the product
	nd = Call(OpMult, Call(OpSin, Call(OpPlus, Num(1), Num(1))), Var(2))
	lt = Analyze(nd)
	PullUpConsts(lt)
	if lt.Args[0].N.Kind != NumKind {
		tst.Errorf("constant subtree was not folded: %v", lt.Args[0].N)
		return
	}
	chk.Float64(tst, "sin(2)", 1e-15, lt.Args[0].N.Val, 0.9092974268256816)

	// fully constant tree folds at the root
	nd = Call(OpPlus, Call(OpMult, Num(2), Num(3)), Num(4))
	lt = Analyze(nd)
	PullUpConsts(lt)
	if lt.N.Kind != NumKind {
		tst.Errorf("root was not folded: %v", lt.N)
		return
	}
	chk.Float64(tst, "2*3+4", 1e-17, lt.N.Val, 10)
}
