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

// Package fixed implements the overflow-checked fixed-point arithmetic the
// issuance curve is priced in.
//
// A fixed-point value is an unsigned integer carrying value*one, where one
// is the scale passed explicitly to each operation (the representation of
// 1.0). Values live in a 128-bit domain; intermediates are computed in
// 256-bit space, so every overflow is detected before truncation instead of
// being inferred from a wrapped result. Raw products must themselves fit
// the 128-bit domain: Mul and Div fail even when the post-scale quotient
// would fit, matching the headroom of the original u128 arithmetic.
//
// Operations never mutate their arguments and always return fresh values.
package fixed

import (
	"errors"

	"github.com/holiman/uint256"
)

// Arithmetic fault sentinels, matched by callers with errors.Is. A fault
// aborts the whole computation that raised it; there are no partial results.
var (
	ErrOverflow      = errors.New("arithmetic overflow")
	ErrUnderflow     = errors.New("arithmetic underflow")
	ErrDivByZero     = errors.New("division by zero")
	ErrPrecisionLoss = errors.New("fixed-point precision loss")
)

// MaxUint128 is the ceiling of the value domain, 2^128 - 1.
var MaxUint128 = new(uint256.Int).Sub(
	new(uint256.Int).Lsh(uint256.NewInt(1), 128),
	uint256.NewInt(1),
)

// Add returns x + y, failing with ErrOverflow when the sum leaves the
// 128-bit domain.
func Add(x, y *uint256.Int) (*uint256.Int, error) {
	sum, carry := new(uint256.Int).AddOverflow(x, y)
	if carry || sum.Gt(MaxUint128) {
		return nil, ErrOverflow
	}
	return sum, nil
}

// Sub returns x - y, failing with ErrUnderflow when y > x.
func Sub(x, y *uint256.Int) (*uint256.Int, error) {
	diff, borrow := new(uint256.Int).SubOverflow(x, y)
	if borrow {
		return nil, ErrUnderflow
	}
	return diff, nil
}

// Mul returns the fixed-point product x*y/one, rounded down.
//
// It fails with ErrOverflow when the raw product x*y exceeds the 128-bit
// domain, and with ErrPrecisionLoss when two nonzero operands truncate to a
// zero result: the scale division destroyed all information, which no
// caller can distinguish from a genuine zero.
func Mul(x, y, one *uint256.Int) (*uint256.Int, error) {
	if one.IsZero() {
		return nil, ErrDivByZero
	}
	if x.IsZero() || y.IsZero() {
		return new(uint256.Int), nil
	}
	prod, over := new(uint256.Int).MulOverflow(x, y)
	if over || prod.Gt(MaxUint128) {
		return nil, ErrOverflow
	}
	res := prod.Div(prod, one)
	if res.IsZero() {
		return nil, ErrPrecisionLoss
	}
	return res, nil
}

// Div returns the fixed-point quotient x*one/y, rounded down.
//
// It fails with ErrDivByZero when y is zero and with ErrOverflow when the
// scaled numerator x*one exceeds the 128-bit domain. A nonzero x may
// truncate to zero; unlike Mul, that is the documented behavior of the
// quotient and is not a fault.
func Div(x, y, one *uint256.Int) (*uint256.Int, error) {
	if y.IsZero() {
		return nil, ErrDivByZero
	}
	if x.IsZero() {
		return new(uint256.Int), nil
	}
	num, over := new(uint256.Int).MulOverflow(x, one)
	if over || num.Gt(MaxUint128) {
		return nil, ErrOverflow
	}
	return num.Div(num, y), nil
}
