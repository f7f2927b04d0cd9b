package utils

import (
	"encoding/csv"
	"io"
)

// ParseCSV reads every record, tolerating leading whitespace in fields.
func ParseCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return records, nil
}
