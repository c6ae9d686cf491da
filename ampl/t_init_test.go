// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ampl

import (
	"math"
	"os"

	"github.com/cpmech/goampl/expr"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// testProvider yields fixed expression trees
type testProvider struct {
	obj  *expr.Node
	cons []*expr.Node
}

func (o *testProvider) InitExprGraph() error { return nil }

func (o *testProvider) ConstraintExpr(i int) (*expr.Node, error) {
	if i < 1 || i > len(o.cons) {
		return nil, chk.Err("constraint index %d is out of range", i)
	}
	return o.cons[i-1], nil
}

func (o *testProvider) ObjectiveExpr() (*expr.Node, error) {
	return o.obj, nil
}

// inf values for bounds
var (
	ninf = math.Inf(-1)
	pinf = math.Inf(1)
)

// os_mkdir creates a directory for test output files
func os_mkdir(dir string) error {
	return os.MkdirAll(dir, 0777)
}
