// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "github.com/cpmech/gosl/chk"

// Canon canonicalizes a residual tree for NL emission:
//  * unary minus becomes neg
//  * n-ary plus with more than two arguments becomes sum
//  * two-argument plus, binary minus, mult, div, pow and the
//    transcendentals keep their shape
// The input tree is not modified. An operator without an NL opcode is an
// error
func Canon(nd *Node) (res *Node, err error) {
	switch nd.Kind {
	case NumKind, VarKind:
		return nd.Clone(), nil
	}
	if _, ok := optable[nd.Op]; !ok {
		return nil, chk.Err("operator code %d has no NL opcode", int(nd.Op))
	}
	args := make([]*Node, len(nd.Args))
	for i, a := range nd.Args {
		args[i], err = Canon(a)
		if err != nil {
			return
		}
	}
	op := nd.Op
	switch {
	case op == OpMinus && len(args) == 1:
		op = OpNeg
	case op == OpPlus && len(args) == 1:
		return args[0], nil
	case op == OpPlus && len(args) > 2:
		op = OpSum
	case op == OpSum && len(args) == 1:
		return args[0], nil
	case op == OpSum && len(args) == 2:
		op = OpPlus
	}
	return &Node{Kind: CallKind, Op: op, Args: args}, nil
}
