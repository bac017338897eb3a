package store

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
)

// Ident turns free text into a lowercase SQL identifier made of [a-z0-9_].
// It returns fallback when nothing usable is left.
func Ident(s, fallback string) string {
	id := strings.ReplaceAll(slug.Make(s), "-", "_")
	if id == "" {
		return fallback
	}
	if id[0] >= '0' && id[0] <= '9' {
		id = "c_" + id
	}
	return id
}

// ColumnIdents maps header names to distinct SQL column names. Repeated names
// get a numeric suffix: id, id_2, id_3.
func ColumnIdents(header []string) []string {
	out := make([]string, len(header))
	used := map[string]bool{lineColumn: true}
	for i, name := range header {
		base := Ident(name, "col_"+strconv.Itoa(i+1))
		id := base
		for n := 2; used[id]; n++ {
			id = base + "_" + strconv.Itoa(n)
		}
		used[id] = true
		out[i] = id
	}
	return out
}

// TableFor derives a table name from a source path: "data/People List.csv"
// becomes "people_list".
func TableFor(source string) string {
	base := filepath.Base(source)
	return Ident(strings.TrimSuffix(base, filepath.Ext(base)), "rows")
}
