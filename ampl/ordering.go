// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ampl

import "github.com/cpmech/goampl/expr"

// varNonlin tells whether variable j (1-based) appears nonlinearly in the
// objective or in any constraint
func (o *Model) varNonlin(j int) bool {
	return o.VlinCon[j-1] == expr.Nonlin || o.VlinObj[j-1] == expr.Nonlin
}

// makeVarIndex builds the variable permutation required by NL readers:
// nonlinear continuous, nonlinear integer, then linear continuous, linear
// binary and linear integer; original order preserved within each group
func (o *Model) makeVarIndex() {
	var nonlinCont, nonlinInt, linCont, linBin, linInt []int
	for j := 1; j <= o.Nvar; j++ {
		if o.varNonlin(j) {
			if o.VarTypes[j-1] == Cont {
				nonlinCont = append(nonlinCont, j)
			} else {
				nonlinInt = append(nonlinInt, j)
			}
		} else {
			switch o.VarTypes[j-1] {
			case Bin:
				linBin = append(linBin, j)
			case Int:
				linInt = append(linInt, j)
			default:
				linCont = append(linCont, j)
			}
		}
	}
	o.Vmap = make(map[int]int)
	o.VmapRev = make(map[int]int)
	pos := 0
	for _, group := range [][]int{nonlinCont, nonlinInt, linCont, linBin, linInt} {
		for _, j := range group {
			o.Vmap[j] = pos
			o.VmapRev[pos] = j
			pos++
		}
	}
}

// makeConIndex builds the constraint permutation: nonlinear constraints
// first, then linear ones
func (o *Model) makeConIndex() {
	o.Cmap = make(map[int]int)
	o.CmapRev = make(map[int]int)
	pos := 0
	for i := 1; i <= o.Ncon; i++ {
		if o.Clin[i-1] == expr.Nonlin {
			o.Cmap[i] = pos
			o.CmapRev[pos] = i
			pos++
		}
	}
	for i := 1; i <= o.Ncon; i++ {
		if o.Clin[i-1] != expr.Nonlin {
			o.Cmap[i] = pos
			o.CmapRev[pos] = i
			pos++
		}
	}
}
