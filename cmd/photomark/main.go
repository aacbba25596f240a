package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"photomark/internal/batch"
	"photomark/internal/config"
	"photomark/internal/layout"
	"photomark/internal/render"
)

func main() {
	cfg := config.Load()

	fontSize := pflag.IntP("size", "s", cfg.FontSize, "font size in points")
	colorSpec := pflag.StringP("color", "c", cfg.Color, "watermark color name or #RRGGBB value")
	position := pflag.StringP("position", "p", cfg.Position,
		"watermark position ("+strings.Join(layout.Anchors(), ", ")+")")
	fontPath := pflag.String("font", cfg.FontPath, "path to a .ttf font file (optional)")
	pflag.Parse()

	if pflag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <image file or directory>\n", os.Args[0])
		pflag.PrintDefaults()
		os.Exit(1)
	}
	input := pflag.Arg(0)

	if !layout.Valid(*position) {
		fmt.Fprintf(os.Stderr, "unknown position %q, expected one of: %s\n",
			*position, strings.Join(layout.Anchors(), ", "))
		os.Exit(1)
	}
	col, err := render.ParseColor(*colorSpec)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	opts := render.Options{
		FontSize: *fontSize,
		Color:    col,
		Anchor:   *position,
		FontPath: *fontPath,
	}

	logger.Info("photomark",
		zap.String("input", input),
		zap.Int("size", *fontSize),
		zap.String("color", *colorSpec),
		zap.String("position", *position))

	runner := batch.NewRunner(logger, render.New(logger))
	if err := runner.Run(input, opts); err != nil {
		logger.Error("run failed", zap.Error(err))
		os.Exit(1)
	}
}
