// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package render

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/tomtom215/travelcompanion/internal/models"
)

func TestNewImageCanvas_InvalidSize(t *testing.T) {
	if _, err := NewImageCanvas(0, 10); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestImageCanvas_EncodePNG(t *testing.T) {
	c, err := NewImageCanvas(PathWidth, PathHeight)
	if err != nil {
		t.Fatal(err)
	}
	RenderPath(c, []models.LocationRecord{pt(10, 20), pt(12, 24)})

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != PathWidth || b.Dy() != PathHeight {
		t.Errorf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), PathWidth, PathHeight)
	}

	// The current-position dot is drawn in red at the north-east corner.
	r, g, b, _ := img.At(280, 20).RGBA()
	if r>>8 < 0xC0 || g>>8 > 0x80 || b>>8 > 0x80 {
		t.Errorf("pixel at current marker = (%d, %d, %d), want red", r>>8, g>>8, b>>8)
	}
}

func TestWritePNGFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	pathFile := filepath.Join(dir, PathFileName)
	speedFile := filepath.Join(dir, SpeedometerFileName)

	if err := WritePathPNG(pathFile, nil); err != nil {
		t.Fatalf("WritePathPNG() error = %v", err)
	}
	if err := WriteSpeedometerPNG(speedFile, 72, 45); err != nil {
		t.Fatalf("WriteSpeedometerPNG() error = %v", err)
	}

	for _, f := range []string{pathFile, speedFile} {
		fh, err := os.Open(f)
		if err != nil {
			t.Fatalf("open %s: %v", f, err)
		}
		cfg, err := png.DecodeConfig(fh)
		_ = fh.Close()
		if err != nil {
			t.Fatalf("%s is not a PNG: %v", f, err)
		}
		if cfg.Width == 0 || cfg.Height == 0 {
			t.Errorf("%s has empty dimensions", f)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("output dir has %d entries, want 2 (temp files left behind?)", len(entries))
	}
}
