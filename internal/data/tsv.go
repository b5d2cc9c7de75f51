package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Reserved column names of the TSV exports; everything else is a value
// column, with ":outlierness"-suffixed siblings carrying the precomputed
// interestingness score of the matching value column.
var metaColumns = map[string]bool{
	"location":       true,
	"location_type":  true,
	"where":          true,
	"where_type":     true,
	"timestamp":      true,
	"when":           true,
	"timestamp_type": true,
	"when_type":      true,
	"agent":          true,
	"who":            true,
	"agent_type":     true,
	"who_type":       true,
}

// ReadTSV parses a tab-separated dataset export into rows. The header names
// the meta columns (location, location_type, timestamp, timestamp_type and
// the optional agent pair, with where/when/who accepted as aliases); every
// remaining column is a numeric value column. Empty and non-numeric cells
// are skipped.
func ReadTSV(path string) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tsv: %w", err)
	}
	defer func() { _ = file.Close() }()

	return parseTSV(file)
}

func parseTSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	columns := indexColumns(header)
	if columns["location"] < 0 {
		return nil, fmt.Errorf("missing location column")
	}

	var rows []Row
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line+1, err)
		}
		line++

		row := Row{
			Location:      cell(record, columns["location"]),
			LocationType:  cell(record, columns["location_type"]),
			Timestamp:     cell(record, columns["timestamp"]),
			TimestampType: cell(record, columns["timestamp_type"]),
			Agent:         cell(record, columns["agent"]),
			AgentType:     cell(record, columns["agent_type"]),
			Values:        make(map[string]float64),
			Outlierness:   make(map[string]float64),
		}
		if row.LocationType == "" {
			row.LocationType = "country"
		}

		for i, name := range header {
			if metaColumns[name] || i >= len(record) {
				continue
			}
			value, err := strconv.ParseFloat(strings.TrimSpace(record[i]), 64)
			if err != nil || math.IsNaN(value) {
				continue
			}
			if base, ok := strings.CutSuffix(name, ":outlierness"); ok {
				row.Outlierness[base] = value
			} else {
				row.Values[name] = value
			}
		}
		if len(row.Values) > 0 {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// indexColumns maps canonical meta column names to header positions,
// accepting the where/when/who aliases of the original exports.
func indexColumns(header []string) map[string]int {
	aliases := map[string]string{
		"where":      "location",
		"where_type": "location_type",
		"when":       "timestamp",
		"when_type":  "timestamp_type",
		"who":        "agent",
		"who_type":   "agent_type",
	}
	columns := map[string]int{
		"location": -1, "location_type": -1,
		"timestamp": -1, "timestamp_type": -1,
		"agent": -1, "agent_type": -1,
	}
	for i, name := range header {
		if canonical, ok := aliases[name]; ok {
			name = canonical
		}
		if _, ok := columns[name]; ok {
			columns[name] = i
		}
	}
	return columns
}

func cell(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
