package hdrcsv

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

const defaultBufferSize = 1 << 12 // 4096 bytes

// Comma is the field delimiter. It is fixed; the format has no quoting or escaping.
const Comma = ','

var (
	// ErrNoHeader is returned by NewReader when the source yields no first line.
	ErrNoHeader = errors.New("hdrcsv: can't read header line")
	// ErrNoColumn is returned by checked name lookups when the header lacks the column.
	ErrNoColumn = errors.New("hdrcsv: no such column")
	// ErrFieldRange is returned by checked lookups whose position lies outside the row.
	ErrFieldRange = errors.New("hdrcsv: field index out of range")
)

// Reader yields the lines following a header line as Rows.
//
// A Reader is not safe for concurrent use. Rows it returns share its header.
type Reader struct {
	src *bufio.Reader

	header []string

	// pending is the put-back slot; hasPending distinguishes a buffered empty
	// line from an empty slot.
	pending    []string
	hasPending bool

	line     int
	err      error
	finished bool
}

// NewReader consumes the first line of r as the header and returns a Reader
// positioned on the first data line. It panics if r is nil and returns an error
// wrapping ErrNoHeader when r is empty or cannot be read.
func NewReader(r io.Reader) (*Reader, error) {
	if r == nil {
		panic("hdrcsv: reader source cannot be nil")
	}

	rd := &Reader{src: bufio.NewReaderSize(r, defaultBufferSize)}
	raw, ok := rd.readLine()
	if !ok {
		if rd.err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNoHeader, rd.err)
		}
		return nil, ErrNoHeader
	}
	rd.header = SplitLine(raw)
	return rd, nil
}

// Header returns a copy of the column names captured at construction.
func (r *Reader) Header() []string {
	return slices.Clone(r.header)
}

// ColumnName returns the name of column i. It panics if i is out of range.
func (r *Reader) ColumnName(i int) string {
	return r.header[i]
}

// ColumnIndex returns the position of the first column called name, or -1.
func (r *Reader) ColumnIndex(name string) int {
	return slices.Index(r.header, name)
}

// ReadRow returns the put-back line if one is buffered, otherwise the next
// line of the stream. The boolean is false at end of stream or after a read
// error; Err tells the two apart.
func (r *Reader) ReadRow() (Row, bool) {
	if r == nil {
		return Row{}, false
	}
	if r.hasPending {
		fields := r.pending
		r.pending, r.hasPending = nil, false
		return Row{fields: fields, header: r.header}, true
	}

	raw, ok := r.readLine()
	if !ok {
		return Row{}, false
	}
	return Row{fields: SplitLine(raw), header: r.header}, true
}

// PutBack buffers line so the next ReadRow returns it instead of reading the
// stream. Only one line is held: a second PutBack before ReadRow replaces the
// first. An empty or nil line is buffered as an empty row.
func (r *Reader) PutBack(line []string) {
	r.pending = line
	r.hasPending = true
}

// ReadAll drains the remaining rows, including a put-back line, and returns
// them with the first read error encountered.
func (r *Reader) ReadAll() (rows []Row, err error) {
	for {
		row, ok := r.ReadRow()
		if !ok {
			return rows, r.Err()
		}
		rows = append(rows, row)
	}
}

// Err returns the first non-EOF error met while reading the stream.
func (r *Reader) Err() error {
	if r == nil {
		return nil
	}
	return r.err
}

// Line reports the 1-based number of the last line consumed from the stream.
// The header is line 1. Put-back rows do not move it.
func (r *Reader) Line() int {
	if r == nil {
		return 0
	}
	return r.line
}

// readLine returns the next line without its terminator. A final line that
// lacks a terminator is still returned.
func (r *Reader) readLine() (string, bool) {
	if r.finished {
		return "", false
	}

	raw, err := r.src.ReadString('\n')
	if err != nil {
		r.finished = true
		if err != io.EOF {
			r.err = err
			return "", false
		}
		if raw == "" {
			return "", false
		}
	}
	r.line++
	return trimLineEnd(raw), true
}

func trimLineEnd(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
