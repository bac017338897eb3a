package hdrcsv

import (
	"fmt"
	"slices"
	"strings"
)

// FieldError locates a field that a checked accessor or the Writer rejected.
type FieldError struct {
	// Column is the requested name; empty for positional lookups.
	Column string
	// Index is the resolved position, or -1 when Column is not in the header.
	Index int
	Err   error
}

// Error formats the failure with the requested column or position.
func (e *FieldError) Error() string {
	if e == nil {
		return ""
	}
	if e.Column != "" {
		return fmt.Sprintf("hdrcsv: column %q: %v", e.Column, e.Err)
	}
	return fmt.Sprintf("hdrcsv: field %d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying Err so FieldError participates in errors.Is.
func (e *FieldError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Row is one decomposed data line together with the header of the Reader that
// produced it. The zero Row carries no header and marks end of stream.
//
// The header is shared with the Reader and with every other Row; it must be
// treated as read-only.
type Row struct {
	fields []string
	header []string
}

// Valid reports whether the row came from a Reader.
func (r Row) Valid() bool {
	return r.header != nil
}

// Field returns the value under the first column called name.
// The column must exist and the row must reach it; otherwise Field panics.
// Use Lookup when either is in doubt.
func (r Row) Field(name string) string {
	return r.fields[slices.Index(r.header, name)]
}

// Lookup returns the value under the first column called name. The error wraps
// ErrNoColumn when the header lacks name and ErrFieldRange when the row is
// shorter than the header.
func (r Row) Lookup(name string) (string, error) {
	i := slices.Index(r.header, name)
	if i < 0 {
		return "", &FieldError{Column: name, Index: -1, Err: ErrNoColumn}
	}
	if i >= len(r.fields) {
		return "", &FieldError{Column: name, Index: i, Err: ErrFieldRange}
	}
	return r.fields[i], nil
}

// At returns field i. It panics if i is out of range.
func (r Row) At(i int) string {
	return r.fields[i]
}

// FieldAt returns field i, or an error wrapping ErrFieldRange.
func (r Row) FieldAt(i int) (string, error) {
	if i < 0 || i >= len(r.fields) {
		return "", &FieldError{Index: i, Err: ErrFieldRange}
	}
	return r.fields[i], nil
}

// Fields exposes the row's fields. The slice is not copied, so writes through
// it change the row.
func (r Row) Fields() []string {
	return r.fields
}

// Len returns the number of fields in the row.
func (r Row) Len() int {
	return len(r.fields)
}

// Header returns a copy of the column names the row is addressed by.
func (r Row) Header() []string {
	return slices.Clone(r.header)
}

// Map returns the row keyed by column name. For repeated names the first
// column wins; columns past the end of the row map to "".
func (r Row) Map() map[string]string {
	m := make(map[string]string, len(r.header))
	for i, name := range r.header {
		if _, seen := m[name]; seen {
			continue
		}
		if i < len(r.fields) {
			m[name] = r.fields[i]
		} else {
			m[name] = ""
		}
	}
	return m
}

// String renders the row as "name=value," pairs in header order.
//
// The header drives the output: a column the row does not reach is rendered
// with an empty value and fields beyond the header are left out.
func (r Row) String() string {
	var b strings.Builder
	for i, name := range r.header {
		b.WriteString(name)
		b.WriteByte('=')
		if i < len(r.fields) {
			b.WriteString(r.fields[i])
		}
		b.WriteByte(Comma)
	}
	return b.String()
}
