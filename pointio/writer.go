package pointio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/hullbert/anglehull/geometry"
)

// WriteFile writes the points to path in the flat "x y" format, one
// point per line, UTF-8. An existing file is replaced; missing parent
// directories are created.
func WriteFile(path string, points []geometry.Point) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "creating point file directory")
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating point file")
	}
	if err := Write(f, points); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "closing point file")
}

// Write writes the points to w, one "x y" line per point.
func Write(w io.Writer, points []geometry.Point) error {
	buffered := bufio.NewWriter(w)
	for _, p := range points {
		if _, err := fmt.Fprintf(buffered, "%d %d\n", p.X, p.Y); err != nil {
			return errors.Wrap(err, "writing point")
		}
	}
	return errors.Wrap(buffered.Flush(), "writing points")
}
