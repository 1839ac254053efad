package record

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gobees/gobees/internal/models"
)

// ParseCSV reads timestamp,num_bees[,temperature] rows for hiveID.
// Timestamps are RFC 3339. A first row starting with "timestamp" is a header.
// An empty temperature column means no reading.
func ParseCSV(r io.Reader, hiveID int64) ([]models.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	var records []models.Record
	for line := 1; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		if line == 1 && strings.EqualFold(strings.TrimSpace(row[0]), "timestamp") {
			continue
		}

		rec, err := parseRow(row, hiveID)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func parseRow(row []string, hiveID int64) (models.Record, error) {
	if len(row) < 2 || len(row) > 3 {
		return models.Record{}, fmt.Errorf("expected 2 or 3 columns, got %d", len(row))
	}

	ts, err := time.Parse(time.RFC3339, strings.TrimSpace(row[0]))
	if err != nil {
		return models.Record{}, fmt.Errorf("invalid timestamp: %w", err)
	}

	bees, err := strconv.Atoi(strings.TrimSpace(row[1]))
	if err != nil {
		return models.Record{}, fmt.Errorf("invalid num_bees: %w", err)
	}

	rec := models.Record{HiveID: hiveID, Timestamp: ts, NumBees: bees}

	if len(row) == 3 && strings.TrimSpace(row[2]) != "" {
		temp, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil {
			return models.Record{}, fmt.Errorf("invalid temperature: %w", err)
		}
		rec.Temperature = &temp
	}

	return rec, nil
}
