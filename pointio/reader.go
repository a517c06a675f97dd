// Package pointio reads and writes the flat point file format: one
// point per line as "x y", both coordinates signed 32-bit decimal
// integers. Lines that do not match are skipped silently.
package pointio

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/hullbert/anglehull/geometry"
)

var pointLine = regexp.MustCompile(`^(-?\d+) (-?\d+)\s*$`)

// A charset is one decoding attempt of the fallback chain. The decode
// function fails when the raw bytes are not valid in that charset.
type charset struct {
	name   string
	decode func(raw []byte) (string, error)
}

var charsets = []charset{
	{"UTF-8", decodeUTF8},
	{"ISO-8859-1", decoderFor(charmap.ISO8859_1)},
	{"US-ASCII", decodeASCII},
	{"UTF-16", decoderFor(unicode.UTF16(unicode.BigEndian, unicode.UseBOM))},
	{"UTF-16BE", decoderFor(unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM))},
	{"UTF-16LE", decoderFor(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM))},
}

// ReadFile reads a point file, trying every supported charset in order
// and failing only if none yields a parseable text.
func ReadFile(path string) ([]geometry.Point, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading point file")
	}
	for _, cs := range charsets {
		text, err := cs.decode(raw)
		if err != nil || !isTextual(text) {
			continue
		}
		points, err := Parse(strings.NewReader(text))
		if err != nil {
			continue
		}
		return points, nil
	}
	return nil, errors.Errorf("%s is not a point file in any supported charset", path)
}

// isTextual rejects decodings that technically succeed but yield
// control characters: a sign the bytes were meant for another charset.
// Without this, ISO-8859-1 would swallow every input and the rest of
// the fallback chain could never be reached.
func isTextual(text string) bool {
	for _, r := range text {
		if r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		if r < 0x20 || (r >= 0x7f && r < 0xa0) {
			return false
		}
	}
	return true
}

// Parse reads points from an already decoded stream. Non-matching
// lines are dropped; a matching line whose coordinates do not fit a
// signed 32-bit integer fails the whole parse.
func Parse(r io.Reader) ([]geometry.Point, error) {
	var points []geometry.Point
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		groups := pointLine.FindStringSubmatch(scanner.Text())
		if groups == nil {
			continue
		}
		x, err := strconv.ParseInt(groups[1], 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "x coordinate %q", groups[1])
		}
		y, err := strconv.ParseInt(groups[2], 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "y coordinate %q", groups[2])
		}
		points = append(points, geometry.Pt(int32(x), int32(y)))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scanning point lines")
	}
	return points, nil
}

func decodeUTF8(raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", errors.New("not valid UTF-8")
	}
	return string(raw), nil
}

func decodeASCII(raw []byte) (string, error) {
	for _, b := range raw {
		if b >= utf8.RuneSelf {
			return "", errors.Errorf("non-ASCII byte 0x%02x", b)
		}
	}
	return string(raw), nil
}

// decoderFor adapts an x/text encoding. The transform decoders
// substitute U+FFFD for undecodable input instead of failing, so a
// replacement rune in the output is treated as a decode failure.
func decoderFor(enc encoding.Encoding) func([]byte) (string, error) {
	return func(raw []byte) (string, error) {
		out, err := enc.NewDecoder().Bytes(raw)
		if err != nil {
			return "", errors.Wrap(err, "decoding")
		}
		if bytes.ContainsRune(out, utf8.RuneError) {
			return "", errors.New("undecodable input")
		}
		return string(out), nil
	}
}
