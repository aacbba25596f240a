// Package exifdate resolves a capture date for an image file from its
// EXIF metadata, degrading to the file modification time and finally to
// the current time.
package exifdate

import (
	"errors"
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"
	"go.uber.org/zap"

	"photomark/internal/fallback"
)

// exifLayout is the timestamp layout used by EXIF date tags.
const exifLayout = "2006:01:02 15:04:05"

// StampLayout is the layout of the rendered date text.
const StampLayout = "2006-01-02"

// dateTags are the EXIF fields that may carry a capture timestamp,
// queried in this fixed priority order.
var dateTags = []exif.FieldName{
	exif.DateTime,
	exif.DateTimeOriginal,
	exif.DateTimeDigitized,
}

var errNoDateTag = errors.New("no parsable date tag")

// Resolver extracts capture dates. The zero value is not usable; use
// NewResolver.
type Resolver struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewResolver(logger *zap.Logger) *Resolver {
	return &Resolver{logger: logger, now: time.Now}
}

// Resolve returns the capture date of the image at path formatted as
// YYYY-MM-DD. It never fails: EXIF tags are tried first, then the file
// modification time, then the current time.
func (r *Resolver) Resolve(path string) string {
	t, err := fallback.First(
		func() (time.Time, error) { return exifTime(path) },
		func() (time.Time, error) { return modTime(path) },
	)
	if err != nil {
		r.logger.Warn("no date source for file, using current time",
			zap.String("path", path), zap.Error(err))
		t = r.now()
	}
	return t.Format(StampLayout)
}

// exifTime reads the EXIF tag table at path and returns the first date
// tag that parses, in dateTags priority order.
func exifTime(path string) (time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, err
	}

	for _, name := range dateTags {
		tag, err := x.Get(name)
		if err != nil {
			continue
		}
		s, err := tag.StringVal()
		if err != nil {
			continue
		}
		if t, err := time.ParseInLocation(exifLayout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errNoDateTag
}

func modTime(path string) (time.Time, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return fi.ModTime(), nil
}
