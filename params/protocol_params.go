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

package params

const (
	MaxWeight  uint32 = 1_000_000 // 100% reserve ratio, in parts-per-million
	SlopeScale uint64 = 1_000_000 // Denominator of the slope parameter, same ppm convention as MaxWeight

	// FormulaPrecision is the fixed-point scale of the purchase/sale return
	// formulas and their power evaluations. CurvePrecision is the scale of
	// the zero-supply bootstrap arithmetic. The two domains are disjoint:
	// a value scaled by one must never meet a value scaled by the other.
	FormulaPrecision uint64 = 1_000_000_000
	CurvePrecision   uint64 = 1_000_000_000_000_000_000

	DefaultSlope        uint64 = 1_000_000 // Bootstrap slope of 1.0 at SlopeScale
	DefaultReserveRatio uint32 = 50_000    // 5% reserve ratio
)
