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

package curve

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/Silverwingsw/apump-ai/fixed"
	"github.com/Silverwingsw/apump-ai/params"
)

// bootstrapTerms derives the CurvePrecision fixed-point intermediates of
// the zero-supply closed form from a validated config:
// wInv = MaxWeight/ReserveRatio (>= 1.0) and m = Slope/SlopeScale.
func bootstrapTerms(cfg *params.CurveConfig) (wInv, m *uint256.Int, err error) {
	wInv, err = fixed.Div(maxWeight, uint256.NewInt(uint64(cfg.ReserveRatio)), curveOne)
	if err != nil {
		return nil, nil, err
	}
	m, err = fixed.Div(uint256.NewInt(uint64(cfg.Slope)), uint256.NewInt(params.SlopeScale), curveOne)
	if err != nil {
		return nil, nil, err
	}
	return wInv, m, nil
}

// PriceForMinting returns the reserve payment the curve demands for minting
// amount tokens on top of the current state. With zero supply the mint is
// priced through the closed-form slope curve
//
//	price = (amount^wInv * m) / wInv
//
// at CurvePrecision. With circulating supply it is the sale relation run in
// reverse: the refund that burning amount tokens from the post-mint state
// would produce, which is exactly the reserve delta of the mint.
func PriceForMinting(cfg *params.CurveConfig, balance, supply, amount *uint256.Int) (*uint256.Int, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !supply.IsZero() {
		post, err := fixed.Add(supply, amount)
		if err != nil {
			return nil, fmt.Errorf("minting price: %w", err)
		}
		return SaleReturn(post, balance, cfg.ReserveRatio, amount)
	}
	wInv, m, err := bootstrapTerms(cfg)
	if err != nil {
		return nil, err
	}
	ratio, err := fixed.Pow(amount, wInv, curveOne)
	if err != nil {
		return nil, fmt.Errorf("bootstrap power: %w", err)
	}
	scaled, err := fixed.Mul(ratio, m, curveOne)
	if err != nil {
		return nil, fmt.Errorf("bootstrap price: %w", err)
	}
	price, err := fixed.Div(scaled, wInv, curveOne)
	if err != nil {
		return nil, fmt.Errorf("bootstrap price: %w", err)
	}
	return price, nil
}

// MintingAmountFromPrice returns the tokens mintable for the given payment.
// With zero supply it inverts the bootstrap closed form through the integer
// root: amount = (price*wInv/m)^(1/e) with e the whole-unit part of wInv.
// With circulating supply it delegates to PurchaseReturn at
// FormulaPrecision.
func MintingAmountFromPrice(cfg *params.CurveConfig, balance, supply, price *uint256.Int) (*uint256.Int, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !supply.IsZero() {
		return PurchaseReturn(supply, balance, cfg.ReserveRatio, price)
	}
	if price.IsZero() {
		return new(uint256.Int), nil
	}
	wInv, m, err := bootstrapTerms(cfg)
	if err != nil {
		return nil, err
	}
	scaled, err := fixed.Mul(price, wInv, curveOne)
	if err != nil {
		return nil, fmt.Errorf("bootstrap inverse: %w", err)
	}
	target, err := fixed.Div(scaled, m, curveOne)
	if err != nil {
		return nil, fmt.Errorf("bootstrap inverse: %w", err)
	}
	// ReserveRatio <= MaxWeight keeps wInv >= 1.0, so the root degree is a
	// whole number in [1, MaxWeight] and always fits uint64.
	degree := new(uint256.Int).Div(wInv, curveOne).Uint64()
	amount, err := fixed.Root(target, degree, curveOne)
	if err != nil {
		return nil, fmt.Errorf("bootstrap inverse: %w", err)
	}
	return amount, nil
}

// RefundForBurning returns the payment owed for burning amount tokens,
// including the exact full-redemption short-circuit at amount == supply.
func RefundForBurning(cfg *params.CurveConfig, balance, supply, amount *uint256.Int) (*uint256.Int, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return SaleReturn(supply, balance, cfg.ReserveRatio, amount)
}

// BurningAmountFromRefund returns the tokens that must be burned to
// withdraw refund from the reserve, the inverse of RefundForBurning.
// Withdrawing the whole balance burns the whole supply without touching the
// power path. Otherwise the purchase relation is evaluated at the
// post-withdraw state (supply, balance-refund) and its result t is rescaled
// onto the current supply as t*supply/(supply+t), which inverts the sale
// relation exactly in real arithmetic.
func BurningAmountFromRefund(cfg *params.CurveConfig, balance, supply, refund *uint256.Int) (*uint256.Int, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if refund.Eq(balance) {
		return new(uint256.Int).Set(supply), nil
	}
	rest, err := fixed.Sub(balance, refund)
	if err != nil {
		return nil, fmt.Errorf("burning amount: %w", err)
	}
	burned, err := PurchaseReturn(supply, rest, cfg.ReserveRatio, refund)
	if err != nil {
		return nil, err
	}
	if burned.IsZero() {
		return new(uint256.Int), nil
	}
	num := new(uint256.Int).Mul(burned, supply)
	den := new(uint256.Int).Add(supply, burned)
	return num.Div(num, den), nil
}
