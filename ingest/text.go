package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/talostrading/streamstats/codec/sample"
	"github.com/talostrading/streamstats/statserrors"
)

type Mode uint8

const (
	// Univariate treats every number in the input as one value.
	Univariate Mode = iota
	// Pairs expects one "x y" or "x y w" pair per line.
	Pairs
)

func (m Mode) String() string {
	switch m {
	case Univariate:
		return "univariate"
	case Pairs:
		return "pairs"
	default:
		return "mode_unknown"
	}
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "univariate", "":
		return Univariate, nil
	case "pairs":
		return Pairs, nil
	default:
		return 0, fmt.Errorf("%w: mode %q", statserrors.ErrInvalidConfig, s)
	}
}

const maxLineLen = 1024 * 1024

// TextDecoder reads numbers separated by whitespace or commas. Empty lines
// and lines starting with '#' are skipped.
type TextDecoder struct {
	mode    Mode
	scanner *bufio.Scanner
	line    int

	pending []string // unread tokens of the current line, univariate mode only
}

var _ Source = &TextDecoder{}

func NewTextDecoder(r io.Reader, mode Mode) *TextDecoder {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLen)
	return &TextDecoder{
		mode:    mode,
		scanner: scanner,
	}
}

// Line returns the number of the line last read, starting at 1.
func (d *TextDecoder) Line() int {
	return d.line
}

func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

// nextFields returns the tokens of the next non-empty, non-comment line.
func (d *TextDecoder) nextFields() ([]string, error) {
	for d.scanner.Scan() {
		d.line++
		line := strings.TrimSpace(d.scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		if fields := strings.FieldsFunc(line, isSeparator); len(fields) > 0 {
			return fields, nil
		}
	}
	if err := d.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

func (d *TextDecoder) parse(token string) (float64, error) {
	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf(
			"%w: line %d: %q is not a number", statserrors.ErrMalformedSample, d.line, token)
	}
	return f, nil
}

func (d *TextDecoder) Next() (sample.Sample, error) {
	if d.mode == Pairs {
		return d.nextPair()
	}

	if len(d.pending) == 0 {
		fields, err := d.nextFields()
		if err != nil {
			return sample.Sample{}, err
		}
		d.pending = fields
	}

	token := d.pending[0]
	d.pending = d.pending[1:]

	x, err := d.parse(token)
	if err != nil {
		return sample.Sample{}, err
	}
	return sample.Value(x), nil
}

func (d *TextDecoder) nextPair() (sample.Sample, error) {
	fields, err := d.nextFields()
	if err != nil {
		return sample.Sample{}, err
	}
	if len(fields) != 2 && len(fields) != 3 {
		return sample.Sample{}, fmt.Errorf(
			"%w: line %d: expected 2 or 3 fields, got %d",
			statserrors.ErrMalformedSample, d.line, len(fields))
	}

	var fs [3]float64
	for i, token := range fields {
		if fs[i], err = d.parse(token); err != nil {
			return sample.Sample{}, err
		}
	}
	if len(fields) == 2 {
		return sample.Pair(fs[0], fs[1]), nil
	}
	return sample.WeightedPair(fs[0], fs[1], fs[2]), nil
}
