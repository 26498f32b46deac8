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

// Command genpdf writes the sampled rendering of every test case as a PDF
// file.  With -gs, the PDF files are rendered back to PNG using
// Ghostscript and compared with the sampled images.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"seehuhn.de/go/region"
	"seehuhn.de/go/region/output"
	"seehuhn.de/go/region/testcases"
)

func main() {
	dir := flag.String("dir", "testdata/pdf", "output directory")
	useGS := flag.Bool("gs", false, "render the PDF files with Ghostscript and compare")
	flag.Parse()

	if err := os.MkdirAll(*dir, 0755); err != nil {
		slog.Error("creating output directory", "error", err)
		os.Exit(1)
	}

	for _, tc := range testcases.List() {
		pdfPath := filepath.Join(*dir, tc.Name+".pdf")
		if err := generate(tc, pdfPath, *useGS); err != nil {
			slog.Error("generating PDF", "case", tc.Name, "error", err)
			os.Exit(1)
		}
	}
}

func generate(tc testcases.Named, pdfPath string, useGS bool) error {
	img, err := output.Render(tc.Region, tc.Width, tc.Height, region.Sampling)
	if err != nil {
		return err
	}
	cov := output.Coverage(img)
	if err := output.WritePDF(pdfPath, cov); err != nil {
		return err
	}
	if !useGS {
		return nil
	}

	pngPath := pdfPath[:len(pdfPath)-len(filepath.Ext(pdfPath))] + "_gs.png"
	if err := renderPNG(pdfPath, pngPath); err != nil {
		return err
	}
	f, err := os.Open(pngPath)
	if err != nil {
		return err
	}
	defer f.Close()
	ref, err := png.Decode(f)
	if err != nil {
		return err
	}

	rep := output.Compare(cov, output.Coverage(ref))
	if len(rep.Mismatch) > 0 {
		return fmt.Errorf("%d pixels differ after PDF round trip", len(rep.Mismatch))
	}
	return nil
}

func renderPNG(pdfPath, pngPath string) error {
	// -r72: one PDF unit per pixel
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=1",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
