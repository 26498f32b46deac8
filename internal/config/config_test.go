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

package config

import (
	"errors"
	"log/slog"
	"testing"

	"seehuhn.de/go/region"
	"seehuhn.de/go/region/raster"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Mode != region.Smart || cfg.LogLevel != slog.LevelInfo || cfg.Backend != "raster" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}

func TestEnvironment(t *testing.T) {
	t.Setenv("REGION_SCENARIO", "union_lens")
	t.Setenv("REGION_MODE", "sampling")
	t.Setenv("REGION_BACKEND", "vector")
	t.Setenv("REGION_LOG_LEVEL", "debug")
	t.Setenv("REGION_MAX_OFFSCREEN", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Scenario != "union_lens" || cfg.Mode != region.Sampling ||
		cfg.LogLevel != slog.LevelDebug || cfg.MaxOffscreen != 3 {
		t.Errorf("got %+v", cfg)
	}
	f, err := cfg.NewFiller()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := f.(*raster.VectorFiller); !ok {
		t.Errorf("got filler %T", f)
	}
	opts, err := cfg.CanvasOptions()
	if err != nil || len(opts) != 2 {
		t.Errorf("got %d options, %v", len(opts), err)
	}
}

func TestInvalid(t *testing.T) {
	cases := map[string]string{
		"REGION_MODE":          "fancy",
		"REGION_BACKEND":       "gpu",
		"REGION_MAX_OFFSCREEN": "-2",
		"REGION_LOG_LEVEL":     "loud",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			if _, err := Load(); err == nil {
				t.Errorf("%s=%s accepted", key, val)
			}
		})
	}

	cfg := &Config{Backend: "gpu"}
	if _, err := cfg.NewFiller(); !errors.Is(err, region.ErrInvalidArgument) {
		t.Errorf("got %v", err)
	}
}
