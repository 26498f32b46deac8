// seehuhn.de/go/region - region algebra and rendering
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config reads the settings of the region commands from the
// environment.
package config

import (
	"fmt"
	"log/slog"

	"github.com/kelseyhightower/envconfig"

	"seehuhn.de/go/region"
	"seehuhn.de/go/region/canvas"
	"seehuhn.de/go/region/raster"
)

// Config holds the settings, read from REGION_* environment variables.
type Config struct {
	Scenario     string      `envconfig:"SCENARIO" default:"scenario_end_to_end"`
	Mode         region.Mode `envconfig:"MODE" default:"smart"`
	Backend      string      `envconfig:"BACKEND" default:"raster"`
	OutDir       string      `envconfig:"OUT_DIR" default:"testdata/out"`
	LogLevel     slog.Level  `envconfig:"LOG_LEVEL" default:"info"`
	MaxOffscreen int         `envconfig:"MAX_OFFSCREEN" default:"0"`
}

// Load reads the configuration from the environment and checks it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("region", &cfg); err != nil {
		return nil, err
	}
	if _, err := cfg.NewFiller(); err != nil {
		return nil, err
	}
	if cfg.MaxOffscreen < 0 {
		return nil, fmt.Errorf("%w: REGION_MAX_OFFSCREEN=%d", region.ErrInvalidArgument, cfg.MaxOffscreen)
	}
	return &cfg, nil
}

// NewFiller returns a new fill backend of the configured kind.
func (c *Config) NewFiller() (raster.Filler, error) {
	switch c.Backend {
	case "raster", "":
		return raster.NewRasteriser(), nil
	case "vector":
		return raster.NewVectorFiller(), nil
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", region.ErrInvalidArgument, c.Backend)
	}
}

// CanvasOptions returns the canvas options for the configured backend and
// buffer limit.
func (c *Config) CanvasOptions() ([]canvas.Option, error) {
	f, err := c.NewFiller()
	if err != nil {
		return nil, err
	}
	return []canvas.Option{
		canvas.WithFiller(f),
		canvas.WithMaxOffscreen(c.MaxOffscreen),
	}, nil
}
