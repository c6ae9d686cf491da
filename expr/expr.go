// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package expr implements arithmetic expression trees and the passes needed
// to prepare them for serialization in the NL (AMPL solver) format:
// linearity analysis, constant folding, linear-term extraction and
// canonicalization into NL operators
package expr

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Op defines an operator of an expression tree
type Op int

const (
	OpPlus Op = iota
	OpMinus
	OpMult
	OpDiv
	OpMod
	OpPow
	OpLess
	OpMin
	OpMax
	OpFloor
	OpCeil
	OpAbs
	OpNeg
	OpOr
	OpAnd
	OpLt
	OpLe
	OpEq
	OpGe
	OpGt
	OpNe
	OpNot
	OpIf
	OpTanh
	OpTan
	OpSqrt
	OpSinh
	OpSin
	OpLog10
	OpLog
	OpExp
	OpCosh
	OpCos
	OpAtanh
	OpAtan2
	OpAtan
	OpAsinh
	OpAsin
	OpAcosh
	OpAcos
	OpSum
)

// opinfo holds the NL wire data of one operator
//  nargs: fixed number of arguments, or -1 for variadic operators
type opinfo struct {
	code  int    // NL opcode number
	name  string // display name
	nargs int    // arity; -1 means variadic (at least 1)
}

// optable maps operators to their NL opcodes. Numbers follow the NL standard
var optable = map[Op]opinfo{
	OpPlus:  {0, "+", -1},
	OpMinus: {1, "-", 2},
	OpMult:  {2, "*", 2},
	OpDiv:   {3, "/", 2},
	OpMod:   {4, "mod", 2},
	OpPow:   {5, "^", 2},
	OpLess:  {6, "less", 2},
	OpMin:   {11, "min", -1},
	OpMax:   {12, "max", -1},
	OpFloor: {13, "floor", 1},
	OpCeil:  {14, "ceil", 1},
	OpAbs:   {15, "abs", 1},
	OpNeg:   {16, "neg", 1},
	OpOr:    {20, "or", 2},
	OpAnd:   {21, "and", 2},
	OpLt:    {22, "<", 2},
	OpLe:    {23, "<=", 2},
	OpEq:    {24, "==", 2},
	OpGe:    {28, ">=", 2},
	OpGt:    {29, ">", 2},
	OpNe:    {30, "!=", 2},
	OpNot:   {34, "not", 1},
	OpIf:    {35, "if", 3},
	OpTanh:  {37, "tanh", 1},
	OpTan:   {38, "tan", 1},
	OpSqrt:  {39, "sqrt", 1},
	OpSinh:  {40, "sinh", 1},
	OpSin:   {41, "sin", 1},
	OpLog10: {42, "log10", 1},
	OpLog:   {43, "log", 1},
	OpExp:   {44, "exp", 1},
	OpCosh:  {45, "cosh", 1},
	OpCos:   {46, "cos", 1},
	OpAtanh: {47, "atanh", 1},
	OpAtan2: {48, "atan2", 2},
	OpAtan:  {49, "atan", 1},
	OpAsinh: {50, "asinh", 1},
	OpAsin:  {51, "asin", 1},
	OpAcosh: {52, "acosh", 1},
	OpAcos:  {53, "acos", 1},
	OpSum:   {54, "sum", -1},
}

// opsByName maps operator names to operators; e.g. for reading problem files
var opsByName map[string]Op

func init() {
	opsByName = make(map[string]Op)
	for op, nfo := range optable {
		opsByName[nfo.name] = op
	}
}

// Code returns the NL opcode number of an operator
func (o Op) Code() int {
	return optable[o].code
}

// String returns the display name of an operator
func (o Op) String() string {
	if nfo, ok := optable[o]; ok {
		return nfo.name
	}
	return io.Sf("op(%d)", int(o))
}

// OpByName returns the operator named by s
func OpByName(s string) (op Op, err error) {
	op, ok := opsByName[s]
	if !ok {
		err = chk.Err("unknown operator %q", s)
	}
	return
}

// Kind defines the kind of a node: number, variable or operator call
type Kind int

const (
	NumKind Kind = iota
	VarKind
	CallKind
)

// Node represents one node of an expression tree
//  NumKind  -- Val holds the constant
//  VarKind  -- Ind holds the variable index (1-based)
//  CallKind -- Op and Args hold the operator and its arguments
type Node struct {
	Kind Kind
	Val  float64
	Ind  int
	Op   Op
	Args []*Node
}

// Num returns a new constant node
func Num(val float64) *Node {
	return &Node{Kind: NumKind, Val: val}
}

// Var returns a new variable node; idx is 1-based
func Var(idx int) *Node {
	return &Node{Kind: VarKind, Ind: idx}
}

// Call returns a new operator node
func Call(op Op, args ...*Node) *Node {
	return &Node{Kind: CallKind, Op: op, Args: args}
}

// IsNum tells whether this node is the given constant
func (o *Node) IsNum(val float64) bool {
	return o.Kind == NumKind && o.Val == val
}

// CheckArity checks, recursively, that every operator node has an argument
// count consistent with its opcode and that every variable index is within
// 1..nvar (nvar < 1 disables the range check)
func (o *Node) CheckArity(nvar int) (err error) {
	switch o.Kind {
	case NumKind:
	case VarKind:
		if nvar > 0 && (o.Ind < 1 || o.Ind > nvar) {
			return chk.Err("variable index %d is out of range [1,%d]", o.Ind, nvar)
		}
	case CallKind:
		nfo, ok := optable[o.Op]
		if !ok {
			return chk.Err("unsupported operator code %d", int(o.Op))
		}
		if nfo.nargs < 0 {
			if len(o.Args) < 1 {
				return chk.Err("operator %q requires at least one argument", nfo.name)
			}
		} else if o.Op == OpMinus && len(o.Args) == 1 {
			// unary minus; canonicalized to neg later
		} else if len(o.Args) != nfo.nargs {
			return chk.Err("operator %q requires %d arguments (%d given)", nfo.name, nfo.nargs, len(o.Args))
		}
		for _, a := range o.Args {
			err = a.CheckArity(nvar)
			if err != nil {
				return
			}
		}
	}
	return
}

// Clone returns a deep copy of the tree
func (o *Node) Clone() *Node {
	nd := &Node{Kind: o.Kind, Val: o.Val, Ind: o.Ind, Op: o.Op}
	if len(o.Args) > 0 {
		nd.Args = make([]*Node, len(o.Args))
		for i, a := range o.Args {
			nd.Args[i] = a.Clone()
		}
	}
	return nd
}

// Vars collects, recursively, all variable indices of the tree into set
func (o *Node) Vars(set map[int]bool) {
	switch o.Kind {
	case VarKind:
		set[o.Ind] = true
	case CallKind:
		for _, a := range o.Args {
			a.Vars(set)
		}
	}
}

// String returns a prefix-notation representation; e.g. (* 2 x3)
func (o *Node) String() string {
	switch o.Kind {
	case NumKind:
		return io.Sf("%g", o.Val)
	case VarKind:
		return io.Sf("x%d", o.Ind)
	}
	l := "(" + o.Op.String()
	for _, a := range o.Args {
		l += " " + a.String()
	}
	return l + ")"
}
