package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// loadRows reads one CSV dataset into schema-shaped rows. Header
// matching is tolerant of spelling variants; rows shorter than the
// header are padded by the field defaults. Only a structurally
// unreadable file is an error.
func loadRows(path string, schema DatasetSchema) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("unable to read header: %w", err)
	}
	index := schema.columnIndex(headers)

	var rows []Row
	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("unable to read CSV: %w", err)
		}
		if len(record) == 0 {
			continue
		}
		rows = append(rows, schema.rowFromRecord(record, index))
	}
	return rows, nil
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
