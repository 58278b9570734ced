// Package feeder converts local data files into records ready for the
// JSON import endpoints.
package feeder

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Record represents a single row of data keyed by column header.
type Record map[string]string

// ReadCSV parses the file at path with default CSV settings. The first
// row is treated as the header containing field names; every following
// row becomes one [Record] mapping header to cell value.
//
// A file with no data rows yields an empty slice. Rows whose field
// count differs from the header are rejected by the parser.
func ReadCSV(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open CSV file: %w", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read CSV: %w", err)
	}

	if len(rows) == 0 {
		return []Record{}, nil
	}

	header := rows[0]
	dataRows := rows[1:]

	records := make([]Record, 0, len(dataRows))
	for _, row := range dataRows {
		record := make(Record, len(header))
		for j, field := range header {
			record[field] = row[j]
		}
		records = append(records, record)
	}

	return records, nil
}
