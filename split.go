package hdrcsv

import "strings"

// SplitLine decomposes one raw line into its fields. Fields are neither trimmed
// nor unquoted, and empty fields are kept: "a,,b" has three. An empty line
// decomposes to an empty, non-nil slice.
func SplitLine(line string) []string {
	if line == "" {
		return []string{}
	}
	return strings.Split(line, string(Comma))
}
