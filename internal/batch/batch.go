// Package batch drives the watermark renderer over a single file or
// over every image in a directory, deriving the output layout.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"photomark/internal/render"
)

// dirSuffix is appended to the input directory name to form the output
// directory, and to each filename stem.
const dirSuffix = "_watermark"

// imageExts are the recognized image file extensions, compared
// case-insensitively.
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".tiff": true,
	".tif":  true,
}

// IsImage reports whether name has a recognized image extension,
// regardless of case.
func IsImage(name string) bool {
	return imageExts[strings.ToLower(filepath.Ext(name))]
}

// Stamper renders a watermark onto one image file.
type Stamper interface {
	Stamp(inPath, outPath string, opts render.Options) error
}

// Runner walks inputs and applies the stamper to each image file.
type Runner struct {
	logger  *zap.Logger
	stamper Stamper
}

func NewRunner(logger *zap.Logger, stamper Stamper) *Runner {
	return &Runner{logger: logger, stamper: stamper}
}

// Run processes the file or directory at input. It returns an error
// only when input does not exist or the output directory cannot be
// created; per-file failures are logged and skipped.
func (r *Runner) Run(input string, opts render.Options) error {
	fi, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("input path %s does not exist", input)
	}
	if fi.IsDir() {
		return r.processDir(input, opts)
	}
	return r.processFile(input, opts)
}

func (r *Runner) processDir(dir string, opts render.Options) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read directory: %w", err)
	}

	var images []string
	for _, e := range entries {
		if e.IsDir() || !IsImage(e.Name()) {
			continue
		}
		images = append(images, e.Name())
	}
	if len(images) == 0 {
		r.logger.Info("no supported image files found", zap.String("dir", dir))
		return nil
	}

	outDir := OutputDir(dir)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	r.logger.Info("processing directory",
		zap.String("dir", dir),
		zap.Int("images", len(images)),
		zap.String("output", outDir))

	processed := 0
	for _, name := range images {
		in := filepath.Join(dir, name)
		out := filepath.Join(outDir, OutputName(name))
		if err := r.stamper.Stamp(in, out, opts); err != nil {
			r.logger.Warn("skipping file", zap.String("path", in), zap.Error(err))
			continue
		}
		r.logger.Info("processed", zap.String("path", in), zap.String("output", out))
		processed++
	}
	r.logger.Info("done", zap.Int("processed", processed), zap.Int("failed", len(images)-processed))
	return nil
}

func (r *Runner) processFile(path string, opts render.Options) error {
	outDir := fileOutputDir(path)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	out := filepath.Join(outDir, OutputName(filepath.Base(path)))
	if err := r.stamper.Stamp(path, out, opts); err != nil {
		r.logger.Warn("skipping file", zap.String("path", path), zap.Error(err))
		return nil
	}
	r.logger.Info("processed", zap.String("path", path), zap.String("output", out))
	return nil
}

// OutputDir returns the sibling output directory for an input
// directory: the directory name with trailing separators stripped and
// dirSuffix appended.
func OutputDir(dir string) string {
	return strings.TrimRight(dir, "/"+string(os.PathSeparator)) + dirSuffix
}

// fileOutputDir derives the output directory for a single-file input
// from its parent directory name; a bare filename falls back to the
// working directory's base name.
func fileOutputDir(path string) string {
	parent := filepath.Dir(path)
	if parent == "." {
		if wd, err := os.Getwd(); err == nil {
			return filepath.Base(wd) + dirSuffix
		}
	}
	return OutputDir(parent)
}

// OutputName suffixes a filename's stem with dirSuffix, keeping the
// original extension.
func OutputName(name string) string {
	ext := filepath.Ext(name)
	return name[:len(name)-len(ext)] + dirSuffix + ext
}
