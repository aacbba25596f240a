package exifdate

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestResolveFromExif(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.jpg")
	data := buildExifJPEG(t, "2023:05:17 10:22:31")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	r := NewResolver(zap.NewNop())
	if got := r.Resolve(path); got != "2023-05-17" {
		t.Fatalf("expected 2023-05-17, got %q", got)
	}
}

func TestResolveFallsBackToModTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.jpg")
	// Minimal JPEG with no EXIF segment.
	if err := os.WriteFile(path, []byte{0xFF, 0xD8, 0xFF, 0xD9}, 0644); err != nil {
		t.Fatal(err)
	}
	mtime := time.Date(2024, 1, 2, 0, 0, 0, 0, time.Local)
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatal(err)
	}

	r := NewResolver(zap.NewNop())
	if got := r.Resolve(path); got != "2024-01-02" {
		t.Fatalf("expected 2024-01-02, got %q", got)
	}
}

func TestResolveUnparsableTagFallsBackToModTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "odd.jpg")
	data := buildExifJPEG(t, "not a real timestamp")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	mtime := time.Date(2021, 7, 4, 12, 30, 0, 0, time.Local)
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatal(err)
	}

	r := NewResolver(zap.NewNop())
	if got := r.Resolve(path); got != "2021-07-04" {
		t.Fatalf("expected 2021-07-04, got %q", got)
	}
}

func TestResolveMissingFileFallsBackToNow(t *testing.T) {
	r := NewResolver(zap.NewNop())
	r.now = func() time.Time {
		return time.Date(2025, 3, 9, 8, 0, 0, 0, time.Local)
	}
	if got := r.Resolve(filepath.Join(t.TempDir(), "missing.jpg")); got != "2025-03-09" {
		t.Fatalf("expected 2025-03-09, got %q", got)
	}
}

// buildExifJPEG assembles a minimal JPEG whose EXIF IFD0 carries a
// single DateTimeOriginal tag with the given ASCII value.
func buildExifJPEG(t *testing.T, timestamp string) []byte {
	t.Helper()

	value := append([]byte(timestamp), 0x00)

	// TIFF header: little-endian, magic 42, IFD0 at offset 8.
	tiff := []byte{'I', 'I', 0x2A, 0x00, 8, 0, 0, 0}
	// One entry; value data follows the IFD at offset 26.
	tiff = append(tiff, 1, 0)
	entry := []byte{0x03, 0x90, 0x02, 0x00}
	entry = append(entry, byte(len(value)), 0, 0, 0)
	entry = append(entry, 26, 0, 0, 0)
	tiff = append(tiff, entry...)
	tiff = append(tiff, 0, 0, 0, 0)
	tiff = append(tiff, value...)

	payload := append([]byte("Exif\x00\x00"), tiff...)
	length := len(payload) + 2
	if length > 0xFFFF {
		t.Fatalf("exif payload too large: %d", length)
	}
	app1 := []byte{0xFF, 0xE1, byte(length >> 8), byte(length)}
	app1 = append(app1, payload...)

	jpeg := []byte{0xFF, 0xD8}
	jpeg = append(jpeg, app1...)
	jpeg = append(jpeg, 0xFF, 0xD9)
	return jpeg
}
