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

// Package curve prices token issuance against a Bancor-style bonding curve.
//
// The formulas convert between payment amounts and token quantities for
// minting (purchase) and burning (sale), evaluated entirely in the checked
// fixed-point arithmetic of package fixed. Two precision domains are in
// play: PurchaseReturn, SaleReturn and SpotPrice run at
// params.FormulaPrecision, while the zero-supply bootstrap inside the
// config entry points runs at params.CurvePrecision. The two scales never
// meet inside one computation.
//
// Everything here is a pure function over value arguments: no state, no
// goroutines, no logging. Quoter wraps the same calls for embedders that
// want structured logs.
package curve

import (
	"github.com/holiman/uint256"

	"github.com/Silverwingsw/apump-ai/fixed"
	"github.com/Silverwingsw/apump-ai/params"
)

// Fixed-point units of the two arithmetic domains, and the weight ceiling
// as a uint256 operand. Kernel operations never mutate their arguments, so
// sharing these across calls is safe.
var (
	formulaOne = uint256.NewInt(params.FormulaPrecision)
	curveOne   = uint256.NewInt(params.CurvePrecision)
	maxWeight  = uint256.NewInt(uint64(params.MaxWeight))
)

// validateState checks the preconditions shared by every formula.
func validateState(supply, balance *uint256.Int, weight uint32) error {
	switch {
	case supply.IsZero():
		return ErrZeroSupply
	case balance.IsZero():
		return ErrZeroBalance
	case weight == 0:
		return ErrZeroWeight
	case weight > params.MaxWeight:
		return ErrWeightExceeded
	}
	return nil
}

// PurchaseReturn computes the tokens minted for a payment against the
// current curve state:
//
//	tokens = supply * ((1 + payment/balance)^(weight/MaxWeight) - 1)
//
// at FormulaPrecision. weight == params.MaxWeight is the linear
// 100%-reserve case supply*(payment/balance), computed without the power
// path. For any smaller weight the exponent weight/MaxWeight is a sub-unit
// fixed-point value, so fixed.Pow truncates it to zero and the result
// collapses to zero tokens; see fixed.Pow for why that truncation is
// preserved.
func PurchaseReturn(supply, balance *uint256.Int, weight uint32, payment *uint256.Int) (*uint256.Int, error) {
	if err := validateState(supply, balance, weight); err != nil {
		return nil, err
	}
	if payment.IsZero() {
		return new(uint256.Int), nil
	}
	if weight == params.MaxWeight {
		ratio, err := fixed.Div(payment, balance, formulaOne)
		if err != nil {
			return nil, err
		}
		return fixed.Mul(supply, ratio, formulaOne)
	}
	sum, err := fixed.Add(payment, balance)
	if err != nil {
		return nil, err
	}
	base, err := fixed.Div(sum, balance, formulaOne)
	if err != nil {
		return nil, err
	}
	exponent, err := fixed.Div(uint256.NewInt(uint64(weight)), maxWeight, formulaOne)
	if err != nil {
		return nil, err
	}
	ratio, err := fixed.Pow(base, exponent, formulaOne)
	if err != nil {
		return nil, err
	}
	scaled, err := fixed.Mul(supply, ratio, formulaOne)
	if err != nil {
		return nil, err
	}
	return fixed.Sub(scaled, supply)
}

// SaleReturn computes the payment refunded for burning sellAmount tokens:
//
//	payment = balance * (1 - (1 - sellAmount/supply)^(MaxWeight/weight))
//
// at FormulaPrecision. Burning the entire supply redeems the entire balance
// exactly, bypassing the power path so the boundary cannot lose precision;
// weight == params.MaxWeight is the linear case balance*(sellAmount/supply).
func SaleReturn(supply, balance *uint256.Int, weight uint32, sellAmount *uint256.Int) (*uint256.Int, error) {
	if err := validateState(supply, balance, weight); err != nil {
		return nil, err
	}
	if sellAmount.Gt(supply) {
		return nil, ErrSellExceedsSupply
	}
	if sellAmount.IsZero() {
		return new(uint256.Int), nil
	}
	if sellAmount.Eq(supply) {
		return new(uint256.Int).Set(balance), nil
	}
	if weight == params.MaxWeight {
		ratio, err := fixed.Div(sellAmount, supply, formulaOne)
		if err != nil {
			return nil, err
		}
		return fixed.Mul(balance, ratio, formulaOne)
	}
	rest, err := fixed.Sub(supply, sellAmount)
	if err != nil {
		return nil, err
	}
	base, err := fixed.Div(rest, supply, formulaOne)
	if err != nil {
		return nil, err
	}
	exponent, err := fixed.Div(maxWeight, uint256.NewInt(uint64(weight)), formulaOne)
	if err != nil {
		return nil, err
	}
	ratio, err := fixed.Pow(base, exponent, formulaOne)
	if err != nil {
		return nil, err
	}
	kept, err := fixed.Mul(balance, ratio, formulaOne)
	if err != nil {
		return nil, err
	}
	return fixed.Sub(balance, kept)
}

// SpotPrice returns the marginal price at the current state,
// balance/(supply*weight/MaxWeight), at FormulaPrecision. It fails with
// fixed.ErrDivByZero when the weighted supply truncates to zero.
func SpotPrice(supply, balance *uint256.Int, weight uint32) (*uint256.Int, error) {
	if err := validateState(supply, balance, weight); err != nil {
		return nil, err
	}
	weighted := new(uint256.Int).Mul(supply, uint256.NewInt(uint64(weight)))
	weighted.Div(weighted, maxWeight)
	return fixed.Div(balance, weighted, formulaOne)
}
