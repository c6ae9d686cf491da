// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Eval evaluates an expression tree at point x (1-based variable j reads
// x[j-1]). x may be nil for trees without variables
func Eval(nd *Node, x []float64) (res float64, err error) {
	switch nd.Kind {
	case NumKind:
		return nd.Val, nil
	case VarKind:
		if nd.Ind < 1 || nd.Ind > len(x) {
			return 0, chk.Err("cannot evaluate: variable index %d is out of range [1,%d]", nd.Ind, len(x))
		}
		return x[nd.Ind-1], nil
	}
	args := make([]float64, len(nd.Args))
	for i, a := range nd.Args {
		args[i], err = Eval(a, x)
		if err != nil {
			return
		}
	}
	switch nd.Op {
	case OpPlus, OpSum:
		for _, v := range args {
			res += v
		}
	case OpMinus:
		if len(args) == 1 {
			res = -args[0]
		} else {
			res = args[0] - args[1]
		}
	case OpNeg:
		res = -args[0]
	case OpMult:
		res = args[0] * args[1]
	case OpDiv:
		res = args[0] / args[1]
	case OpMod:
		res = math.Mod(args[0], args[1])
	case OpPow:
		res = math.Pow(args[0], args[1])
	case OpLess:
		res = math.Max(args[0]-args[1], 0)
	case OpMin:
		res = args[0]
		for _, v := range args[1:] {
			res = math.Min(res, v)
		}
	case OpMax:
		res = args[0]
		for _, v := range args[1:] {
			res = math.Max(res, v)
		}
	case OpFloor:
		res = math.Floor(args[0])
	case OpCeil:
		res = math.Ceil(args[0])
	case OpAbs:
		res = math.Abs(args[0])
	case OpOr:
		res = bool2num(args[0] != 0 || args[1] != 0)
	case OpAnd:
		res = bool2num(args[0] != 0 && args[1] != 0)
	case OpLt:
		res = bool2num(args[0] < args[1])
	case OpLe:
		res = bool2num(args[0] <= args[1])
	case OpEq:
		res = bool2num(args[0] == args[1])
	case OpGe:
		res = bool2num(args[0] >= args[1])
	case OpGt:
		res = bool2num(args[0] > args[1])
	case OpNe:
		res = bool2num(args[0] != args[1])
	case OpNot:
		res = bool2num(args[0] == 0)
	case OpIf:
		if args[0] != 0 {
			res = args[1]
		} else {
			res = args[2]
		}
	case OpTanh:
		res = math.Tanh(args[0])
	case OpTan:
		res = math.Tan(args[0])
	case OpSqrt:
		res = math.Sqrt(args[0])
	case OpSinh:
		res = math.Sinh(args[0])
	case OpSin:
		res = math.Sin(args[0])
	case OpLog10:
		res = math.Log10(args[0])
	case OpLog:
		res = math.Log(args[0])
	case OpExp:
		res = math.Exp(args[0])
	case OpCosh:
		res = math.Cosh(args[0])
	case OpCos:
		res = math.Cos(args[0])
	case OpAtanh:
		res = math.Atanh(args[0])
	case OpAtan2:
		res = math.Atan2(args[0], args[1])
	case OpAtan:
		res = math.Atan(args[0])
	case OpAsinh:
		res = math.Asinh(args[0])
	case OpAsin:
		res = math.Asin(args[0])
	case OpAcosh:
		res = math.Acosh(args[0])
	case OpAcos:
		res = math.Acos(args[0])
	default:
		return 0, chk.Err("cannot evaluate: unsupported operator code %d", int(nd.Op))
	}
	return
}

func bool2num(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
