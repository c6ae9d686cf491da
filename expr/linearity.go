// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

// Linearity classifies a (sub)expression
type Linearity int

const (
	Const Linearity = iota // no variables at all
	Lin                    // linear in the variables
	Nonlin                 // anything else
)

// String returns the name of a linearity tag
func (o Linearity) String() string {
	switch o {
	case Const:
		return "const"
	case Lin:
		return "lin"
	}
	return "nonlin"
}

// maxLin returns the strongest tag among tags (Const < Lin < Nonlin)
func maxLin(tags ...Linearity) (res Linearity) {
	for _, t := range tags {
		if t > res {
			res = t
		}
	}
	return
}

// LinNode decorates one node of an expression tree with its computed
// linearity. The decoration is a working copy: the input tree is never
// mutated. LinNodes are discarded after decomposition
type LinNode struct {
	N    *Node // shallow copy of the original node; N.Args is ignored
	Tag  Linearity
	Args []*LinNode
}

// Analyze builds the decorated tree with linearity tags computed bottom-up
func Analyze(nd *Node) (ln *LinNode) {
	cp := &Node{Kind: nd.Kind, Val: nd.Val, Ind: nd.Ind, Op: nd.Op}
	ln = &LinNode{N: cp}
	switch nd.Kind {
	case NumKind:
		ln.Tag = Const
		return
	case VarKind:
		ln.Tag = Lin
		return
	}
	ln.Args = make([]*LinNode, len(nd.Args))
	tags := make([]Linearity, len(nd.Args))
	for i, a := range nd.Args {
		ln.Args[i] = Analyze(a)
		tags[i] = ln.Args[i].Tag
	}
	switch nd.Op {
	case OpPlus, OpMinus, OpSum, OpNeg:
		ln.Tag = maxLin(tags...)
	case OpMult:
		nlin, nnon := 0, 0
		for _, t := range tags {
			if t == Lin {
				nlin++
			}
			if t == Nonlin {
				nnon++
			}
		}
		switch {
		case nnon > 0 || nlin > 1:
			ln.Tag = Nonlin
		case nlin == 1:
			ln.Tag = Lin
		default:
			ln.Tag = Const
		}
	case OpDiv:
		num, den := tags[0], tags[1]
		switch {
		case num == Const && den == Const:
			ln.Tag = Const
		case num <= Lin && den == Const:
			ln.Tag = Lin
		default:
			ln.Tag = Nonlin
		}
	default:
		// transcendentals, powers, comparisons and conditionals
		if maxLin(tags...) == Const {
			ln.Tag = Const
		} else {
			ln.Tag = Nonlin
		}
	}
	return
}

// PullUpConsts folds every maximal constant subtree into a single number
// node, evaluated with IEEE-754 arithmetic
func PullUpConsts(ln *LinNode) {
	if ln.Tag == Const && ln.N.Kind == CallKind {
		val, err := Eval(ln.Strip(), nil)
		if err == nil {
			ln.N = Num(val)
			ln.Args = nil
		}
		return
	}
	for _, a := range ln.Args {
		PullUpConsts(a)
	}
}

// Strip rebuilds a plain expression tree from the decorated one
func (o *LinNode) Strip() *Node {
	nd := &Node{Kind: o.N.Kind, Val: o.N.Val, Ind: o.N.Ind, Op: o.N.Op}
	if len(o.Args) > 0 {
		nd.Args = make([]*Node, len(o.Args))
		for i, a := range o.Args {
			nd.Args[i] = a.Strip()
		}
	}
	return nd
}
