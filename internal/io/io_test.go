package ioutils

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	if err := WriteFile(context.Background(), path, []byte("hello\n")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello\n" {
		t.Errorf("file content = %q, want %q", got, "hello\n")
	}
}

func TestWriteFile_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "out.txt")
	if err := WriteFile(ctx, path, []byte("x")); err == nil {
		t.Error("WriteFile() with cancelled context should fail")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file should not be created when context is cancelled")
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("directory %s was not created", dir)
	}
	if err := EnsureDir(""); err != nil {
		t.Errorf("EnsureDir(\"\") error = %v, want nil", err)
	}
}

func TestImageService_Fit(t *testing.T) {
	svc := NewImageService()
	ctx := context.Background()

	tests := []struct {
		name         string
		w, h         int
		maxW, maxH   int
		wantW, wantH int
	}{
		{"already fits", 100, 50, 200, 200, 100, 50},
		{"width limited", 400, 200, 200, 200, 200, 100},
		{"height limited", 200, 400, 200, 200, 100, 200},
		{"supersampled", 1600, 1200, 800, 600, 800, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, tt.w, tt.h))
			got := svc.Fit(ctx, img, tt.maxW, tt.maxH).Bounds()
			if got.Dx() != tt.wantW || got.Dy() != tt.wantH {
				t.Errorf("Fit() = %dx%d, want %dx%d", got.Dx(), got.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestImageService_EncodePNG(t *testing.T) {
	svc := NewImageService()
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))

	var buf bytes.Buffer
	if err := svc.EncodePNG(context.Background(), &buf, img); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}

	cfg, err := png.DecodeConfig(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 4 || cfg.Height != 3 {
		t.Errorf("decoded size = %dx%d, want 4x3", cfg.Width, cfg.Height)
	}
}
