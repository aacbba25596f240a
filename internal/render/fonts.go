package render

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"photomark/internal/fallback"
)

// preferredFonts are system font filenames tried when no explicit font
// path is given.
var preferredFonts = []string{"Arial.ttf", "DejaVuSans.ttf"}

var errNoFontPath = errors.New("no font path given")

// FaceLoader produces font faces at a requested size, degrading from an
// explicit font file to a preferred system font, to the embedded Go
// Regular face, to a fixed-size bitmap face.
type FaceLoader struct {
	logger *zap.Logger
}

func NewFaceLoader(logger *zap.Logger) *FaceLoader {
	return &FaceLoader{logger: logger}
}

// Load returns a usable face at size points. It never fails; the last
// resort is basicfont.Face7x13, which ignores the requested size.
func (l *FaceLoader) Load(fontPath string, size int) font.Face {
	face, err := fallback.First(
		func() (font.Face, error) { return fileFace(fontPath, size) },
		func() (font.Face, error) { return systemFace(size) },
		func() (font.Face, error) { return builtinFace(size) },
	)
	if err != nil {
		l.logger.Warn("all scalable fonts unavailable, using bitmap face",
			zap.Error(err))
		return basicfont.Face7x13
	}
	return face
}

// fileFace loads a .ttf/.otf file from an explicit path.
func fileFace(path string, size int) (font.Face, error) {
	if path == "" {
		return nil, errNoFontPath
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return newFace(b, size)
}

// systemFace searches the platform font directories for the first of
// preferredFonts and loads it.
func systemFace(size int) (font.Face, error) {
	for _, name := range preferredFonts {
		p := findSystemFont(name)
		if p == "" {
			continue
		}
		if face, err := fileFace(p, size); err == nil {
			return face, nil
		}
	}
	return nil, errors.New("no preferred system font found")
}

// builtinFace parses the embedded Go Regular font at the requested size.
func builtinFace(size int) (font.Face, error) {
	return newFace(goregular.TTF, size)
}

func newFace(data []byte, size int) (font.Face, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// findSystemFont searches common system font directories for the given
// filename (case-insensitive).
func findSystemFont(filename string) string {
	var dirs []string
	switch runtime.GOOS {
	case "windows":
		dirs = []string{"C:\\Windows\\Fonts"}
	case "darwin":
		dirs = []string{"/System/Library/Fonts", "/Library/Fonts", filepath.Join(os.Getenv("HOME"), "Library/Fonts")}
	default:
		dirs = []string{"/usr/share/fonts", "/usr/local/share/fonts", filepath.Join(os.Getenv("HOME"), ".fonts")}
	}

	lower := strings.ToLower(filename)
	for _, d := range dirs {
		fpath := filepath.Join(d, filename)
		if _, err := os.Stat(fpath); err == nil {
			return fpath
		}
		entries, err := os.ReadDir(d)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if strings.ToLower(e.Name()) == lower {
				return filepath.Join(d, e.Name())
			}
		}
	}
	return ""
}
