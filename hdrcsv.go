// # HdrCSV: A Header-Aware Line Reader for Plain CSV in Go
//
// HdrCSV reads newline-delimited, comma-separated text whose first line names
// the columns. Every following line is returned as a Row that can be addressed
// by column name or by position. There is no quoting and no escaping: a field is
// whatever lies between two commas.
//
// # Features
//
// - Header captured once by NewReader and shared, never copied, by every Row.
// - Checked (`Lookup`, `FieldAt`) and unchecked (`Field`, `At`) accessors.
// - One row of lookahead through `Reader.PutBack`.
// - Debug rendering with `Row.String`, e.g. `id=1,name=alice,`.
// - A plain `Writer` that refuses fields the format cannot represent.
//
// # Getting Started
//
//	r, err := hdrcsv.NewReader(file)
//	if err != nil {
//		return err
//	}
//	for {
//		row, ok := r.ReadRow()
//		if !ok {
//			break
//		}
//		fmt.Println(row.Field("name"))
//	}
//	if err := r.Err(); err != nil {
//		return err
//	}
package hdrcsv
