// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package calc

import (
	"maycharts/indapi"

	"github.com/ericlagergren/decimal"
)

func Mean(out *decimal.Big, val []indapi.CandleData) *decimal.Big {
	out.SetUint64(0)
	if len(val) == 0 {
		return out
	}
	for i := range val {
		out.Add(out, val[i].ClosePrice)
	}
	out.Quo(out, new(decimal.Big).SetUint64(uint64(len(val))))
	return out
}

// StdDev is the population standard deviation of the close prices.
func StdDev(out *decimal.Big, val []indapi.CandleData) *decimal.Big {
	out.SetUint64(0)
	if len(val) == 0 {
		return out
	}
	m := Mean(new(decimal.Big), val)
	for i := range val {
		v := new(decimal.Big).Copy(val[i].ClosePrice)
		v.Sub(v, m)
		v.Mul(v, v)
		out.Add(out, v)
	}
	out.Quo(out, new(decimal.Big).SetUint64(uint64(len(val))))
	return out.Context.Sqrt(out, out)
}

// Float converts d, NaN values are kept.
func Float(d *decimal.Big) float64 {
	f, _ := d.Float64()
	return f
}
