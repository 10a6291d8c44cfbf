// Package ioutils provides file system and image utilities shared by the
// spiro and playlist commands.
//
// # File Operations
//
//	// Ensure an output directory exists
//	err := ioutils.EnsureDir("/tmp/out")
//
//	// Write a text report
//	err := ioutils.WriteFile(ctx, "/tmp/out/common.txt", []byte("Song\n"))
//
// # Image Processing
//
// The ImageService scales and encodes rendered drawings:
//
//	svc := ioutils.NewImageService()
//
//	// Downscale a supersampled render to its final size
//	small := svc.Fit(ctx, img, 800, 600)
//
//	// Save as PNG
//	err := svc.SavePNG(ctx, small, "/tmp/out/spiro.png")
package ioutils
