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

import "errors"

// Precondition faults raised before any arithmetic runs. Arithmetic faults
// (fixed.ErrOverflow, fixed.ErrUnderflow, fixed.ErrDivByZero,
// fixed.ErrPrecisionLoss) surface from package fixed unchanged; both kinds
// abort the whole call with no partial result.
var (
	ErrZeroSupply        = errors.New("token supply is zero")
	ErrZeroBalance       = errors.New("reserve balance is zero")
	ErrZeroWeight        = errors.New("curve weight is zero")
	ErrWeightExceeded    = errors.New("curve weight above maximum")
	ErrSellExceedsSupply = errors.New("sell amount exceeds supply")
)
