package hdrcsv

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterWrite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		records [][]string
		config  func(*Writer)
		want    string
	}{
		{
			name:    "basic",
			records: [][]string{{"a", "b", "c"}},
			want:    "a,b,c\n",
		},
		{
			name: "multipleRecords",
			records: [][]string{
				{"alpha", "beta"},
				{"gamma", "delta"},
			},
			want: "alpha,beta\ngamma,delta\n",
		},
		{
			name:    "emptyField",
			records: [][]string{{"", "b"}},
			want:    ",b\n",
		},
		{
			name:    "quotesArePlainText",
			records: [][]string{{`he said "hi"`, "plain"}},
			want:    "he said \"hi\",plain\n",
		},
		{
			name:    "emptyRecord",
			records: [][]string{{}},
			want:    "\n",
		},
		{
			name: "useCRLF",
			records: [][]string{
				{"a"},
				{"b"},
			},
			config: func(w *Writer) {
				w.UseCRLF = true
			},
			want: "a\r\nb\r\n",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			w := NewWriter(&buf)
			if tc.config != nil {
				tc.config(w)
			}
			for _, rec := range tc.records {
				if err := w.Write(rec); err != nil {
					t.Fatalf("Write() error = %v", err)
				}
			}
			if err := w.Flush(); err != nil {
				t.Fatalf("Flush() error = %v", err)
			}
			if got := buf.String(); got != tc.want {
				t.Fatalf("unexpected output:\n got: %q\nwant: %q", got, tc.want)
			}
		})
	}
}

func TestWriterRejectsUnrepresentable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		record []string
		index  int
	}{
		{[]string{"ok", "a,b"}, 1},
		{[]string{"ok", "multi\nline"}, 1},
		{[]string{"ok", "cr\r"}, 1},
		{[]string{""}, 0},
	}

	for _, tc := range tests {
		var buf bytes.Buffer
		w := NewWriter(&buf)

		err := w.Write(tc.record)
		require.ErrorIs(t, err, ErrUnrepresentable, "record %q", tc.record)

		var ferr *FieldError
		require.ErrorAs(t, err, &ferr)
		assert.Equal(t, tc.index, ferr.Index)

		// The rejected record leaves no partial output and the writer stays usable.
		require.NoError(t, w.Write([]string{"next"}))
		require.NoError(t, w.Flush())
		assert.Equal(t, "next\n", buf.String())
	}
}

func TestWriterWriteRow(t *testing.T) {
	t.Parallel()

	r, err := NewReader(strings.NewReader("id,name\n1,alice\n"))
	require.NoError(t, err)
	row, ok := r.ReadRow()
	require.True(t, ok)

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Write(r.Header()))
	require.NoError(t, w.WriteRow(row))
	require.NoError(t, w.Flush())

	assert.Equal(t, "id,name\n1,alice\n", buf.String())
}

func TestWriterRoundTrip(t *testing.T) {
	t.Parallel()

	records := [][]string{
		{"id", "name", "note"},
		{"1", "alice", ""},
		{"2", "", "x y"},
		{"", ""},
		{},
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.UseCRLF = true
	require.NoError(t, w.WriteAll(records))
	require.NoError(t, w.Flush())

	r, err := NewReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, records[0], r.Header())

	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, len(records)-1)
	for i, row := range rows {
		assert.Equal(t, records[i+1], row.Fields())
	}
}

func TestWriterRoundTripSingleColumn(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Write([]string{"name"}))
	require.NoError(t, w.Write([]string{"a"}))
	require.ErrorIs(t, w.Write([]string{""}), ErrUnrepresentable)
	require.NoError(t, w.Flush())

	r, err := NewReader(&buf)
	require.NoError(t, err)
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1, "the unrepresentable record left no blank line behind")
	assert.Equal(t, "a", rows[0].Field("name"))
}

func TestWriterWriteAll(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := NewWriter(&buf)

	records := [][]string{
		{"alpha", "beta"},
		{"gamma", "delta"},
	}

	if err := w.WriteAll(records); err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	want := "alpha,beta\ngamma,delta\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output got %q want %q", got, want)
	}
}

type flushFailWriter struct {
	fail error
}

func (f *flushFailWriter) Write([]byte) (int, error) {
	return 0, f.fail
}

func TestWriterFlushError(t *testing.T) {
	t.Parallel()

	exp := errors.New("flush failed")
	w := NewWriter(&flushFailWriter{fail: exp})

	if err := w.Write([]string{"a"}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := w.Flush(); !errors.Is(err, exp) {
		t.Fatalf("expected flush error %v, got %v", exp, err)
	}
	if err := w.Write([]string{"b"}); !errors.Is(err, exp) {
		t.Fatalf("Write() should return stored error %v, got %v", exp, err)
	}
	if err := w.Error(); !errors.Is(err, exp) {
		t.Fatalf("Error() should return %v, got %v", exp, err)
	}
}

func TestWriterNil(t *testing.T) {
	t.Parallel()

	var w *Writer
	assert.Error(t, w.Write([]string{"a"}))
	assert.Error(t, w.Flush())
	assert.Error(t, w.Error())
	assert.Panics(t, func() { NewWriter(nil) })
}
