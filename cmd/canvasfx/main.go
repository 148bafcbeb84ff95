// seehuhn.de/go/canvasfx - drawing helpers for 2D canvases
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

// Command canvasfx draws a scene file onto a new or existing image.
//
// Usage:
//
//	canvasfx -scene scene.yaml [-in photo.jpg] [-width 400] -out result.png
//
// The output format is chosen from the file name extension.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"time"

	"github.com/disintegration/imaging"

	"seehuhn.de/go/canvasfx/internal/log"
	"seehuhn.de/go/canvasfx/internal/scene"
)

func main() {
	sceneFile := flag.String("scene", "", "scene file (YAML)")
	inFile := flag.String("in", "", "input image, overrides the scene's input")
	outFile := flag.String("out", "", "output image")
	width := flag.Int("width", 0, "resize the result to this width")
	logLevel := flag.String("log-level", "", "log level (debug, info, warn, error)")
	flag.Parse()

	opts := log.FromEnv()
	if *logLevel != "" {
		opts.Level = *logLevel
	}
	log.Init(opts)
	defer log.Close()
	l := log.WithComponent("cli")

	if *sceneFile == "" || *outFile == "" {
		fmt.Fprintln(os.Stderr, "usage: canvasfx -scene file.yaml -out out.png [-in input] [-width n]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	err := run(l, *sceneFile, *inFile, *outFile, *width)
	if err != nil {
		l.Error("failed", slog.Any("err", err))
		log.Close()
		os.Exit(1)
	}
}

func run(l *slog.Logger, sceneFile, inFile, outFile string, width int) error {
	start := time.Now()

	s, err := scene.Load(sceneFile)
	if err != nil {
		return err
	}
	if inFile != "" {
		s.Input = inFile
	}
	l.Debug("scene loaded", slog.String("file", sceneFile), slog.Int("ops", len(s.Ops)))

	var src image.Image
	if s.Input != "" {
		src, err = imaging.Open(s.Input, imaging.AutoOrientation(true))
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		b := src.Bounds()
		l.Info("input", slog.String("file", s.Input), slog.Int("width", b.Dx()), slog.Int("height", b.Dy()))
	}

	c := s.NewCanvas(src)
	if err := s.Apply(c); err != nil {
		return err
	}

	var out image.Image = c.Image()
	if width < 0 {
		return errors.New("negative output width")
	} else if width > 0 {
		out = imaging.Resize(out, width, 0, imaging.Lanczos)
	}

	if err := imaging.Save(out, outFile); err != nil {
		return fmt.Errorf("save output: %w", err)
	}
	b := out.Bounds()
	l.Info("done",
		slog.String("out", outFile),
		slog.Int("width", b.Dx()),
		slog.Int("height", b.Dy()),
		slog.Duration("elapsed", time.Since(start)))
	return nil
}
