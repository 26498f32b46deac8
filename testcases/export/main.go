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

// Command export renders all test cases with both renderers and writes
// the images, together with a difference panel, as PNG files.
// Settings are read from REGION_* environment variables, see package
// internal/config.
package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"seehuhn.de/go/region"
	"seehuhn.de/go/region/internal/config"
	"seehuhn.de/go/region/output"
	"seehuhn.de/go/region/testcases"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	region.SetLogger(logger)

	failed := false
	for _, tc := range testcases.List() {
		if err := export(cfg, tc, logger); err != nil {
			logger.Error("export failed", "case", tc.Name, "error", err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func export(cfg *config.Config, tc testcases.Named, logger *slog.Logger) error {
	sampled, err := output.Render(tc.Region, tc.Width, tc.Height, region.Sampling)
	if err != nil {
		return err
	}
	opts, err := cfg.CanvasOptions()
	if err != nil {
		return err
	}
	smart, err := output.Render(tc.Region, tc.Width, tc.Height, region.Smart, opts...)
	if err != nil {
		return err
	}

	base := filepath.Join(cfg.OutDir, tc.Name)
	if err := output.WritePNG(base+"_sampling.png", sampled); err != nil {
		return err
	}
	if err := output.WritePNG(base+"_smart.png", smart); err != nil {
		return err
	}

	want, got := output.Coverage(sampled), output.Coverage(smart)
	rep := output.Compare(want, got)
	if err := output.WritePNG(base+"_diff.png", output.DiffImage(want, got)); err != nil {
		return err
	}

	logger.Info("exported", "case", tc.Name, "depth", region.Depth(tc.Region),
		"mismatch", len(rep.Mismatch), "interior", rep.Interior)
	return nil
}
