package export

import (
	"encoding/csv"
	"io"
)

func writeDelimited(w io.Writer, comma rune, rows [][]string) error {
	writer := csv.NewWriter(w)
	writer.Comma = comma
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	return writer.Error()
}
