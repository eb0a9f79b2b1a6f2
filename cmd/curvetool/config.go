// Copyright 2026 The apump-ai Authors
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

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"unicode"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/log"
	"github.com/naoina/toml"
	"github.com/urfave/cli/v2"

	"github.com/Silverwingsw/apump-ai/params"
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		if !unicode.IsUpper(rune(field[0])) {
			return nil
		}
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

// toolConfig is the on-disk configuration of curvetool.
type toolConfig struct {
	Curve *params.CurveConfig
}

func defaultToolConfig() *toolConfig {
	return &toolConfig{Curve: params.DefaultCurveConfig()}
}

// loadConfigFile decodes a TOML file over cfg, leaving absent fields at
// their prior values.
func loadConfigFile(path string, cfg *toolConfig) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(path + ", " + err.Error())
	}
	return err
}

// makeConfig resolves the effective curve parameters: built-in defaults,
// then the config file, then command line overrides.
func makeConfig(ctx *cli.Context) (*params.CurveConfig, error) {
	cfg := defaultToolConfig()
	if path := ctx.String(configFileFlag.Name); path != "" {
		if err := loadConfigFile(path, cfg); err != nil {
			return nil, err
		}
	}
	if cfg.Curve == nil {
		cfg.Curve = params.DefaultCurveConfig()
	}
	if ctx.IsSet(slopeFlag.Name) {
		cfg.Curve.Slope = math.HexOrDecimal64(ctx.Uint64(slopeFlag.Name))
	}
	if ctx.IsSet(reserveRatioFlag.Name) {
		// Bounds-check on the full 64-bit value: a uint32 conversion first
		// would wrap oversized ratios into valid-looking ones.
		ratio := ctx.Uint64(reserveRatioFlag.Name)
		if ratio > uint64(params.MaxWeight) {
			return nil, fmt.Errorf("reserve ratio %d above maximum %d", ratio, params.MaxWeight)
		}
		cfg.Curve.ReserveRatio = uint32(ratio)
	}
	if err := cfg.Curve.Validate(); err != nil {
		return nil, err
	}
	log.Debug("Resolved curve config", "config", cfg.Curve)
	return cfg.Curve, nil
}

var configCommand = &cli.Command{
	Name:  "config",
	Usage: "Manage curvetool configuration files",
	Subcommands: []*cli.Command{
		{
			Name:      "init",
			Usage:     "Write a default configuration file, or print it without an argument",
			ArgsUsage: "[file]",
			Action:    configInit,
		},
		{
			Name:   "show",
			Usage:  "Print the effective configuration as TOML",
			Action: configShow,
		},
	},
}

func configInit(ctx *cli.Context) error {
	out, err := tomlSettings.Marshal(defaultToolConfig())
	if err != nil {
		return err
	}
	if path := ctx.Args().First(); path != "" {
		log.Info("Writing default config", "path", path)
		return os.WriteFile(path, out, 0644)
	}
	_, err = os.Stdout.Write(out)
	return err
}

func configShow(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	out, err := tomlSettings.Marshal(&toolConfig{Curve: cfg})
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}
