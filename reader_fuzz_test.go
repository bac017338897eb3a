package hdrcsv

import (
	"bytes"
	"strings"
	"testing"
)

func FuzzReaderConsistency(f *testing.F) {
	seeds := []string{
		"a\n",
		"a,b,c\n1,2,3\n",
		"a,b\n\n1,2\n",
		"id,name\r\n1,alice\r\n",
		"a,,b\n,,\n",
		"trailing,newline\nx,y",
		"\"q\",r\n\"1,2\"\n",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		if len(input) > 1<<12 {
			t.Skip()
		}

		lines := splitLinesManual(input)
		r, err := NewReader(strings.NewReader(input))
		if len(lines) == 0 {
			if err == nil {
				t.Fatalf("NewReader() succeeded on input without lines: %q", truncateForMessage(input))
			}
			return
		}
		if err != nil {
			t.Fatalf("NewReader() error = %v input=%q", err, truncateForMessage(input))
		}
		if !fieldsEqual(r.Header(), SplitLine(lines[0])) {
			t.Fatalf("header mismatch: got %q want %q", r.Header(), SplitLine(lines[0]))
		}

		rows, err := r.ReadAll()
		if err != nil {
			t.Fatalf("ReadAll() error = %v", err)
		}
		if len(rows) != len(lines)-1 {
			t.Fatalf("row count = %d, want %d input=%q", len(rows), len(lines)-1, truncateForMessage(input))
		}
		for i, row := range rows {
			if !fieldsEqual(row.Fields(), SplitLine(lines[i+1])) {
				t.Fatalf("row %d mismatch: got %q want %q", i, row.Fields(), SplitLine(lines[i+1]))
			}
		}

		// Whatever was read writes back to the same fields. A stray carriage
		// return survives reading but is refused by the Writer.
		if strings.ContainsRune(input, '\r') {
			return
		}
		var buf bytes.Buffer
		w := NewWriter(&buf)
		if err := w.Write(r.Header()); err != nil {
			t.Fatalf("Write(header) error = %v", err)
		}
		for _, row := range rows {
			if err := w.WriteRow(row); err != nil {
				t.Fatalf("WriteRow() error = %v", err)
			}
		}
		if err := w.Flush(); err != nil {
			t.Fatalf("Flush() error = %v", err)
		}
		again, err := NewReader(&buf)
		if err != nil {
			t.Fatalf("NewReader(rewritten) error = %v", err)
		}
		rowsAgain, err := again.ReadAll()
		if err != nil || len(rowsAgain) != len(rows) {
			t.Fatalf("rewritten ReadAll() = %d rows, %v; want %d rows", len(rowsAgain), err, len(rows))
		}
		for i := range rows {
			if !fieldsEqual(rows[i].Fields(), rowsAgain[i].Fields()) {
				t.Fatalf("rewritten row %d mismatch: got %q want %q", i, rowsAgain[i].Fields(), rows[i].Fields())
			}
		}
	})
}

// splitLinesManual mirrors the reader's line rules: "\n" ends a line, one "\r"
// before it is dropped, and a trailing unterminated line still counts.
func splitLinesManual(input string) []string {
	var lines []string
	for input != "" {
		i := strings.IndexByte(input, '\n')
		if i < 0 {
			lines = append(lines, strings.TrimSuffix(input, "\r"))
			break
		}
		lines = append(lines, strings.TrimSuffix(input[:i], "\r"))
		input = input[i+1:]
	}
	return lines
}

func fieldsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func truncateForMessage(s string) string {
	const max = 256
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
