// Copyright 2025 The apump-ai Authors
// This file is part of the apump-ai library.
//
// The apump-ai library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The apump-ai library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the apump-ai library. If not, see <http://www.gnu.org/licenses/>.

package fixed

import (
	"math/big"

	"github.com/holiman/uint256"
)

// Pow returns base**exponent with both operands and the result expressed in
// the fixed-point domain scaled by one.
//
// The exponent is truncated to whole units before the exponentiation loop:
// e = exponent/one in integer division, discarding the fraction below one
// unit. An exponent strictly between 0 and 1.0 therefore collapses to e = 0
// and Pow returns one (1.0) for any base. The truncation is load-bearing:
// downstream pricing is bit-for-bit compatible with it, so callers that
// need genuine fractional powers must not be routed through this function.
func Pow(base, exponent, one *uint256.Int) (*uint256.Int, error) {
	if one.IsZero() {
		return nil, ErrDivByZero
	}
	switch {
	case exponent.Eq(one):
		return new(uint256.Int).Set(base), nil
	case exponent.IsZero():
		return new(uint256.Int).Set(one), nil
	}
	e := new(uint256.Int).Div(exponent, one)
	return powUnits(base, e, one)
}

// powUnits runs binary exponentiation by squaring over a whole-unit
// exponent, routing every multiplication through Mul at the given scale.
// An all-zero exponent yields one, matching x^0 = 1.
func powUnits(base, e, one *uint256.Int) (*uint256.Int, error) {
	var (
		result = new(uint256.Int).Set(one)
		square = new(uint256.Int).Set(base)
		rem    = new(uint256.Int).Set(e)
		err    error
	)
	for {
		if rem[0]&1 == 1 {
			if result, err = Mul(result, square, one); err != nil {
				return nil, err
			}
		}
		rem.Rsh(rem, 1)
		if rem.IsZero() {
			return result, nil
		}
		if square, err = Mul(square, square, one); err != nil {
			return nil, err
		}
	}
}

// Root returns the fixed-point integer n-th root of x at scale one: the
// largest y with y^n/one^(n-1) <= x. It inverts the whole-unit power of
// powUnits up to truncation and is what the bootstrap pricing inverse runs
// on. A zero root degree or a zero scale fails with ErrDivByZero.
func Root(x *uint256.Int, n uint64, one *uint256.Int) (*uint256.Int, error) {
	if n == 0 || one.IsZero() {
		return nil, ErrDivByZero
	}
	if x.IsZero() {
		return new(uint256.Int), nil
	}
	if n == 1 {
		return new(uint256.Int).Set(x), nil
	}
	// The root satisfies y = (x*one^(n-1))^(1/n) in plain integer space.
	// That intermediate outgrows 256 bits for modest n, so the Newton
	// iteration runs on big.Int; the result always fits back into the
	// domain because y never exceeds max(x, one).
	radicand := new(big.Int).Mul(
		x.ToBig(),
		new(big.Int).Exp(one.ToBig(), new(big.Int).SetUint64(n-1), nil),
	)
	y := nthRoot(radicand, n)
	res, over := uint256.FromBig(y)
	if over || res.Gt(MaxUint128) {
		return nil, ErrOverflow
	}
	return res, nil
}

// nthRoot computes the integer n-th root of t (t >= 1, n >= 2) by Newton
// iteration seeded strictly above the root, descending monotonically and
// correcting at the boundary so the result is the exact floor.
func nthRoot(t *big.Int, n uint64) *big.Int {
	var (
		big1 = big.NewInt(1)
		bigN = new(big.Int).SetUint64(n)
		nm1  = new(big.Int).SetUint64(n - 1)
	)
	y := new(big.Int).Lsh(big1, uint(t.BitLen())/uint(n)+1)
	for {
		// y' = ((n-1)*y + t/y^(n-1)) / n
		d := new(big.Int).Exp(y, nm1, nil)
		d.Div(t, d)
		next := new(big.Int).Mul(nm1, y)
		next.Add(next, d)
		next.Div(next, bigN)
		if next.Cmp(y) >= 0 {
			break
		}
		y = next
	}
	for new(big.Int).Exp(y, bigN, nil).Cmp(t) > 0 {
		y.Sub(y, big1)
	}
	for {
		up := new(big.Int).Add(y, big1)
		if new(big.Int).Exp(up, bigN, nil).Cmp(t) > 0 {
			return y
		}
		y = up
	}
}
