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

// Package params holds the issuance-curve constants and configuration.
package params

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common/math"
)

// CurveConfig is the parameter pair threaded into every pricing call. It is
// read-only for the duration of a call: the pricing core never mutates it,
// and callers that change parameters between calls own that serialization.
type CurveConfig struct {
	// Slope scales the bootstrap price charged while the supply is still
	// zero, in SlopeScale units. It has no effect once tokens circulate.
	Slope math.HexOrDecimal64 `json:"slope"`

	// ReserveRatio is the curve weight in parts-per-million, in
	// [1, MaxWeight]. MaxWeight degenerates the curve to linear pricing.
	ReserveRatio uint32 `json:"reserveRatio"`
}

// DefaultCurveConfig returns the deployment defaults: a 1.0 slope
// multiplier over a 5% reserve ratio.
func DefaultCurveConfig() *CurveConfig {
	return &CurveConfig{
		Slope:        math.HexOrDecimal64(DefaultSlope),
		ReserveRatio: DefaultReserveRatio,
	}
}

// Validate checks that the parameters lie inside the domain the formulas
// accept. Every entry point validates its config before computing, so an
// out-of-range config can never reach the arithmetic.
func (c *CurveConfig) Validate() error {
	if c == nil {
		return errors.New("nil curve config")
	}
	if c.Slope == 0 {
		return errors.New("curve slope is zero")
	}
	if c.ReserveRatio == 0 {
		return errors.New("reserve ratio is zero")
	}
	if c.ReserveRatio > MaxWeight {
		return fmt.Errorf("reserve ratio %d above maximum %d", c.ReserveRatio, MaxWeight)
	}
	return nil
}

// String implements fmt.Stringer.
func (c *CurveConfig) String() string {
	return fmt.Sprintf("{Slope: %d ReserveRatio: %d}", uint64(c.Slope), c.ReserveRatio)
}
