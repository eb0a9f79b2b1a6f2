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
	"errors"
	"math"
	"testing"

	"github.com/holiman/uint256"
	"pgregory.net/rapid"

	"github.com/Silverwingsw/apump-ai/fixed"
	"github.com/Silverwingsw/apump-ai/params"
)

func u(v uint64) *uint256.Int { return uint256.NewInt(v) }

func TestStatePreconditions(t *testing.T) {
	funcs := map[string]func(s, b *uint256.Int, w uint32) error{
		"purchase": func(s, b *uint256.Int, w uint32) error {
			_, err := PurchaseReturn(s, b, w, u(1))
			return err
		},
		"sale": func(s, b *uint256.Int, w uint32) error {
			_, err := SaleReturn(s, b, w, u(1))
			return err
		},
		"spot": func(s, b *uint256.Int, w uint32) error {
			_, err := SpotPrice(s, b, w)
			return err
		},
	}
	tests := []struct {
		supply, balance *uint256.Int
		weight          uint32
		err             error
	}{
		{u(0), u(1), 500_000, ErrZeroSupply},
		{u(1), u(0), 500_000, ErrZeroBalance},
		{u(0), u(0), 500_000, ErrZeroSupply},
		{u(1), u(1), 0, ErrZeroWeight},
		{u(1), u(1), params.MaxWeight + 1, ErrWeightExceeded},
	}
	for name, fn := range funcs {
		for i, tt := range tests {
			if err := fn(tt.supply, tt.balance, tt.weight); !errors.Is(err, tt.err) {
				t.Errorf("%s test %d: error = %v, want %v", name, i, err, tt.err)
			}
		}
	}
}

func TestPurchaseReturn(t *testing.T) {
	tests := []struct {
		name            string
		supply, balance *uint256.Int
		weight          uint32
		payment         *uint256.Int
		want            *uint256.Int
		err             error
	}{
		{
			name:   "linear tenth of balance",
			supply: u(5000), balance: u(1000), weight: params.MaxWeight,
			payment: u(100), want: u(500),
		},
		{
			name:   "linear doubling",
			supply: u(777), balance: u(333), weight: params.MaxWeight,
			payment: u(333), want: u(777),
		},
		{
			name:   "zero payment",
			supply: u(5), balance: u(5), weight: 500_000,
			payment: u(0), want: u(0),
		},
		{
			// Any weight below the maximum yields a sub-unit exponent,
			// which the power truncates away: the mint quotes zero.
			name:   "half weight collapses",
			supply: u(100_000_000_000_000), balance: u(1_000_000_000), weight: 500_000,
			payment: u(1_000_000_000), want: u(0),
		},
		{
			name:   "weight one below maximum collapses",
			supply: u(1000), balance: u(1000), weight: params.MaxWeight - 1,
			payment: u(500), want: u(0),
		},
		{
			name:   "payment plus balance overflows",
			supply: u(1), balance: u(1), weight: 500_000,
			payment: fixed.MaxUint128, err: fixed.ErrOverflow,
		},
		{
			name:   "linear result collapses to zero",
			supply: u(1), balance: u(1000), weight: params.MaxWeight,
			payment: u(5), err: fixed.ErrPrecisionLoss,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PurchaseReturn(tt.supply, tt.balance, tt.weight, tt.payment)
			if !errors.Is(err, tt.err) {
				t.Fatalf("error = %v, want %v", err, tt.err)
			}
			if err == nil && !got.Eq(tt.want) {
				t.Fatalf("tokens = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSaleReturn(t *testing.T) {
	tests := []struct {
		name            string
		supply, balance *uint256.Int
		weight          uint32
		sell            *uint256.Int
		want            *uint256.Int
		err             error
	}{
		{
			name:   "full redemption drains the reserve",
			supply: u(777), balance: u(123_456), weight: 123,
			sell: u(777), want: u(123_456),
		},
		{
			name:   "sell above supply",
			supply: u(10), balance: u(10), weight: 500_000,
			sell: u(11), err: ErrSellExceedsSupply,
		},
		{
			name:   "zero sell",
			supply: u(10), balance: u(10), weight: 500_000,
			sell: u(0), want: u(0),
		},
		{
			name:   "linear tenth of supply",
			supply: u(1000), balance: u(5000), weight: params.MaxWeight,
			sell: u(100), want: u(500),
		},
		{
			// Half the supply on a half-weight curve keeps (1/2)^2 of the
			// reserve: the refund is exactly three quarters.
			name:   "half weight half supply",
			supply: u(100_000_000_000_000), balance: u(1_000_000_000), weight: 500_000,
			sell: u(50_000_000_000_000), want: u(750_000_000),
		},
		{
			// base = 0.666666666 truncated, squared and truncated again.
			name:   "half weight third of supply",
			supply: u(1_000_000_000_000), balance: u(1_000_000_000), weight: 500_000,
			sell: u(333_333_333_333), want: u(555_555_557),
		},
		{
			name:   "kept reserve collapses to zero",
			supply: u(4), balance: u(1), weight: 500_000,
			sell: u(2), err: fixed.ErrPrecisionLoss,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SaleReturn(tt.supply, tt.balance, tt.weight, tt.sell)
			if !errors.Is(err, tt.err) {
				t.Fatalf("error = %v, want %v", err, tt.err)
			}
			if err == nil && !got.Eq(tt.want) {
				t.Fatalf("refund = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpotPrice(t *testing.T) {
	tests := []struct {
		name            string
		supply, balance *uint256.Int
		weight          uint32
		want            *uint256.Int
		err             error
	}{
		{
			name:   "linear",
			supply: u(1000), balance: u(2000), weight: params.MaxWeight,
			want: u(2_000_000_000),
		},
		{
			name:   "half weight doubles the price",
			supply: u(1_000_000), balance: u(1_000_000), weight: 500_000,
			want: u(2_000_000_000),
		},
		{
			name:   "weighted supply truncates to zero",
			supply: u(1), balance: u(5), weight: 1,
			err: fixed.ErrDivByZero,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SpotPrice(tt.supply, tt.balance, tt.weight)
			if !errors.Is(err, tt.err) {
				t.Fatalf("error = %v, want %v", err, tt.err)
			}
			if err == nil && !got.Eq(tt.want) {
				t.Fatalf("price = %v, want %v", got, tt.want)
			}
		})
	}
}

// A below-maximum weight makes the sale curve convex: selling a fraction of
// the supply refunds more than that fraction of the reserve.
func TestConvexSaleBeatsLinear(t *testing.T) {
	supply := u(100_000_000_000_000)
	balance := u(1_000_000_000)
	sell := u(50_000_000_000_000)

	convex, err := SaleReturn(supply, balance, 500_000, sell)
	if err != nil {
		t.Fatalf("convex: %v", err)
	}
	linear, err := SaleReturn(supply, balance, params.MaxWeight, sell)
	if err != nil {
		t.Fatalf("linear: %v", err)
	}
	if !convex.Gt(linear) {
		t.Fatalf("convex refund %v does not exceed linear %v", convex, linear)
	}
}

// Burning the whole supply always redeems the whole balance, for any valid
// state and weight, without rounding residue.
func TestSaleFullRedemptionRapid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		supply := u(rapid.Uint64Range(1, math.MaxUint64).Draw(t, "supply"))
		balance := u(rapid.Uint64Range(1, math.MaxUint64).Draw(t, "balance"))
		weight := rapid.Uint32Range(1, params.MaxWeight).Draw(t, "weight")

		got, err := SaleReturn(supply, balance, weight, supply)
		if err != nil {
			t.Fatalf("SaleReturn: %v", err)
		}
		if !got.Eq(balance) {
			t.Fatalf("full redemption = %v, want %v", got, balance)
		}
	})
}

func TestSaleExceedsSupplyRapid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		supply := u(rapid.Uint64Range(1, math.MaxUint64).Draw(t, "supply"))
		delta := u(rapid.Uint64Range(1, 1_000_000).Draw(t, "delta"))
		sell := new(uint256.Int).Add(supply, delta)

		_, err := SaleReturn(supply, u(1), 500_000, sell)
		if !errors.Is(err, ErrSellExceedsSupply) {
			t.Fatalf("error = %v, want %v", err, ErrSellExceedsSupply)
		}
	})
}

// Every weight below the maximum routes the purchase through a sub-unit
// exponent, so the quoted mint is zero across the whole parameter space.
func TestPurchaseCollapseRapid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		supply := u(rapid.Uint64Range(1, 1_000_000_000_000_000_000).Draw(t, "supply"))
		balance := u(rapid.Uint64Range(1, 1_000_000_000_000_000_000).Draw(t, "balance"))
		payment := u(rapid.Uint64Range(1, 1_000_000_000_000_000_000).Draw(t, "payment"))
		weight := rapid.Uint32Range(1, params.MaxWeight-1).Draw(t, "weight")

		got, err := PurchaseReturn(supply, balance, weight, payment)
		if err != nil {
			t.Fatalf("PurchaseReturn: %v", err)
		}
		if !got.IsZero() {
			t.Fatalf("tokens = %v, want 0", got)
		}
	})
}
