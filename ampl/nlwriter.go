// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ampl

import (
	"bytes"
	"os"
	"path"
	"sort"

	"github.com/cpmech/goampl/expr"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// WriteNl writes the problem to <DirOut>/<FnKey>.nl in the text (g) NL
// format. The permutation maps must have been built already
func (o *Model) WriteNl() (err error) {
	var buf bytes.Buffer
	o.writeHeader(&buf)
	err = o.writeBody(&buf)
	if err != nil {
		return
	}
	return saveFile(path.Join(o.DirOut, o.FnKey+".nl"), &buf, o.Verbose)
}

// writeHeader writes the ten-line NL header
func (o *Model) writeHeader(buf *bytes.Buffer) {

	// counts
	nranges, neqns, nlc := 0, 0, 0
	for i := 0; i < o.Ncon; i++ {
		switch o.Rcodes[i] {
		case 0:
			nranges++
		case 4:
			neqns++
		}
		if o.Clin[i] == expr.Nonlin {
			nlc++
		}
	}
	nlo := 0
	if o.ObjLin == expr.Nonlin {
		nlo = 1
	}
	nlv, nlvi, nbv, niv := 0, 0, 0, 0
	for j := 1; j <= o.Nvar; j++ {
		if o.varNonlin(j) {
			nlv++
			if o.VarTypes[j-1] != Cont {
				nlvi++
			}
		} else {
			switch o.VarTypes[j-1] {
			case Bin:
				nbv++
			case Int:
				niv++
			}
		}
	}
	nzjac, nzgrad := 0, len(o.LinObj)
	for _, lmap := range o.LinCon {
		nzjac += len(lmap)
	}

	io.Ff(buf, "g3 1 1 0\t# problem %s\n", o.FnKey)
	io.Ff(buf, " %d %d 1 %d %d\t# vars, constraints, objectives, ranges, eqns\n", o.Nvar, o.Ncon, nranges, neqns)
	io.Ff(buf, " %d %d\t# nonlinear constraints, objectives\n", nlc, nlo)
	io.Ff(buf, " 0 0\t# network constraints: nonlinear, linear\n")
	io.Ff(buf, " %d %d %d\t# nonlinear vars in constraints, objectives, both\n", nlv, nlv, nlv)
	io.Ff(buf, " 0 0 0 1\t# linear network variables; functions; arith, flags\n")
	io.Ff(buf, " %d %d %d 0 0\t# discrete variables: binary, integer, nonlinear (b,c,o)\n", nbv, niv, nlvi)
	io.Ff(buf, " %d %d\t# nonzeros in Jacobian, gradients\n", nzjac, nzgrad)
	io.Ff(buf, " 0 0\t# max name lengths: constraints, variables\n")
	io.Ff(buf, " 0 0 0 0 0\t# common exprs: b,c,o,c1,o1\n")
}

// writeBody writes the segments in the order C, O, d, x, r, b, k, J, G
func (o *Model) writeBody(buf *bytes.Buffer) (err error) {

	// C: nonlinear part of each constraint
	for ci := 0; ci < o.Ncon; ci++ {
		io.Ff(buf, "C%d\n", ci)
		err = o.writeTree(buf, o.ConTrees[o.CmapRev[ci]-1])
		if err != nil {
			return
		}
	}

	// O: objective sense and nonlinear part (scalar 0 when absent)
	sense := 0
	if o.Sense == Max {
		sense = 1
	}
	io.Ff(buf, "O0 %d\n", sense)
	if o.ObjTree == nil {
		io.Ff(buf, "n0\n")
	} else {
		err = o.writeTree(buf, o.ObjTree)
		if err != nil {
			return
		}
	}

	// d: dual initial guesses (never written)
	io.Ff(buf, "d0\n")

	// x: nonzero primal initial guesses
	nx := 0
	for _, v := range o.X0 {
		if v != 0 {
			nx++
		}
	}
	io.Ff(buf, "x%d\n", nx)
	for p := 0; p < o.Nvar; p++ {
		v := o.X0[o.VmapRev[p]-1]
		if v != 0 {
			io.Ff(buf, "%d %s\n", p, fmtF(v))
		}
	}

	// r: constraint relation codes and bounds
	io.Ff(buf, "r\n")
	for ci := 0; ci < o.Ncon; ci++ {
		i := o.CmapRev[ci] - 1
		o.writeBound(buf, o.Rcodes[i], o.Glow[i], o.Gup[i])
	}

	// b: variable bounds
	io.Ff(buf, "b\n")
	for p := 0; p < o.Nvar; p++ {
		j := o.VmapRev[p] - 1
		o.writeBound(buf, boundCode(o.Xlow[j], o.Xup[j]), o.Xlow[j], o.Xup[j])
	}

	// k: cumulative Jacobian column counts for the first nvar-1 variables
	io.Ff(buf, "k%d\n", o.Nvar-1)
	total := 0
	for p := 0; p < o.Nvar-1; p++ {
		total += o.Jcounts[o.VmapRev[p]-1]
		io.Ff(buf, "%d\n", total)
	}

	// J: linear part of each constraint
	for ci := 0; ci < o.Ncon; ci++ {
		lmap := o.LinCon[o.CmapRev[ci]-1]
		if len(lmap) == 0 {
			continue
		}
		io.Ff(buf, "J%d %d\n", ci, len(lmap))
		o.writeLinMap(buf, lmap)
	}

	// G: linear part of the objective
	if len(o.LinObj) > 0 {
		io.Ff(buf, "G0 %d\n", len(o.LinObj))
		o.writeLinMap(buf, o.LinObj)
	}
	return
}

// writeTree writes one expression tree in prefix notation, one node per
// line, translating variables to NL indices
func (o *Model) writeTree(buf *bytes.Buffer, nd *expr.Node) (err error) {
	switch nd.Kind {
	case expr.NumKind:
		io.Ff(buf, "n%s\n", fmtF(nd.Val))
		return
	case expr.VarKind:
		p, ok := o.Vmap[nd.Ind]
		if !ok {
			return chk.Err("variable %d has no NL index", nd.Ind)
		}
		io.Ff(buf, "v%d\n", p)
		return
	}
	io.Ff(buf, "o%d\n", nd.Op.Code())
	if nd.Op == expr.OpSum || nd.Op == expr.OpMin || nd.Op == expr.OpMax {
		io.Ff(buf, "%d\n", len(nd.Args))
	}
	for _, a := range nd.Args {
		err = o.writeTree(buf, a)
		if err != nil {
			return
		}
	}
	return
}

// writeBound writes one line of the r or b segments
func (o *Model) writeBound(buf *bytes.Buffer, code int, low, up float64) {
	switch code {
	case 0:
		io.Ff(buf, "0 %s %s\n", fmtF(low), fmtF(up))
	case 1:
		io.Ff(buf, "1 %s\n", fmtF(up))
	case 2:
		io.Ff(buf, "2 %s\n", fmtF(low))
	case 3:
		io.Ff(buf, "3\n")
	case 4:
		io.Ff(buf, "4 %s\n", fmtF(low))
	}
}

// writeLinMap writes the (index, coefficient) pairs of one J or G segment,
// sorted by NL index
func (o *Model) writeLinMap(buf *bytes.Buffer, lmap expr.LinearMap) {
	inds := make([]int, 0, len(lmap))
	for j := range lmap {
		inds = append(inds, o.Vmap[j])
	}
	sort.Ints(inds)
	for _, p := range inds {
		io.Ff(buf, "%d %s\n", p, fmtF(lmap[o.VmapRev[p]]))
	}
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// fmtF formats a float with enough digits to round-trip a double
func fmtF(v float64) string {
	return io.Sf("%.17g", v)
}

// saveFile writes buf to filename
func saveFile(filename string, buf *bytes.Buffer, verbose bool) (err error) {
	fil, err := os.Create(filename)
	if err != nil {
		return
	}
	defer func() {
		cerr := fil.Close()
		if err == nil {
			err = cerr
		}
	}()
	_, err = fil.Write(buf.Bytes())
	if verbose {
		io.Pfblue2("file <%s> written\n", filename)
	}
	return
}
