package hdrcsv

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

var (
	// ErrUnrepresentable is returned when a field holds a comma or a line break,
	// which the format cannot carry without quoting, and for a record made of a
	// single empty field, whose blank line reads back as a row with no fields.
	ErrUnrepresentable = errors.New("hdrcsv: field contains delimiter or line break")

	errNilWriter      = errors.New("hdrcsv: writer is nil")
	errWriterNoTarget = errors.New("hdrcsv: writer destination cannot be nil")
)

// Writer emits lines that a Reader decomposes back into the same fields.
type Writer struct {
	dst *bufio.Writer

	// UseCRLF writes lines terminated with \r\n when set.
	UseCRLF bool

	err error
}

// NewWriter creates a new buffered Writer on w.
func NewWriter(w io.Writer) *Writer {
	if w == nil {
		panic(errWriterNoTarget.Error())
	}
	return &Writer{dst: bufio.NewWriterSize(w, defaultBufferSize)}
}

// Write emits one line. A record that cannot be represented fails the call
// before anything is written; it does not poison the Writer. An empty record
// is written as a blank line.
func (w *Writer) Write(record []string) error {
	if w == nil {
		return errNilWriter
	}
	if w.dst == nil {
		return errWriterNoTarget
	}
	if w.err != nil {
		return w.err
	}

	if len(record) == 1 && record[0] == "" {
		return &FieldError{Index: 0, Err: ErrUnrepresentable}
	}
	for i := range record {
		if strings.ContainsAny(record[i], ",\r\n") {
			return &FieldError{Index: i, Err: ErrUnrepresentable}
		}
	}

	for i := range record {
		if i > 0 {
			if err := w.dst.WriteByte(Comma); err != nil {
				w.err = err
				return err
			}
		}
		if _, err := w.dst.WriteString(record[i]); err != nil {
			w.err = err
			return err
		}
	}

	if w.UseCRLF {
		if _, err := w.dst.WriteString("\r\n"); err != nil {
			w.err = err
			return err
		}
	} else {
		if err := w.dst.WriteByte('\n'); err != nil {
			w.err = err
			return err
		}
	}
	return nil
}

// WriteRow emits the fields of row.
func (w *Writer) WriteRow(row Row) error {
	return w.Write(row.Fields())
}

// WriteAll writes multiple records, stopping at the first error.
func (w *Writer) WriteAll(records [][]string) error {
	if w == nil {
		return errNilWriter
	}
	for _, record := range records {
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes pending buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if w == nil {
		return errNilWriter
	}
	if w.dst == nil {
		return errWriterNoTarget
	}
	if w.err != nil {
		return w.err
	}
	if err := w.dst.Flush(); err != nil {
		w.err = err
		return err
	}
	return nil
}

// Error reports the first error encountered by the writer.
func (w *Writer) Error() error {
	if w == nil {
		return errNilWriter
	}
	return w.err
}
