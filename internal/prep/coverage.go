package prep

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// CoverageCell is one reshaped (country, year) observation from the wide
// coverage file. Proportion is the source percent divided by 100.
type CoverageCell struct {
	Country    string
	Year       int
	Proportion float64
}

// LoadCoverage reads a wide-format coverage CSV (first column the country
// name, remaining columns one per year) and reshapes it into one cell per
// (country, year). Blank cells are skipped; they mean the source has no
// report for that year, not a zero.
func LoadCoverage(path string) ([]CoverageCell, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open coverage file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReader(f))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, errors.New("coverage file has no data rows")
	}

	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	if len(header) < 2 {
		return nil, errors.New("coverage file has no year columns")
	}
	if strings.TrimSpace(strings.ToLower(header[0])) != "country" {
		return nil, fmt.Errorf("first column must be country (got %q)", header[0])
	}

	years := make([]int, len(header))
	for i := 1; i < len(header); i++ {
		y, err := strconv.Atoi(strings.TrimSpace(header[i]))
		if err != nil {
			return nil, fmt.Errorf("column %d: year header %q: %w", i+1, header[i], err)
		}
		years[i] = y
	}

	var out []CoverageCell
	for rowIdx := 1; rowIdx < len(records); rowIdx++ {
		rec := records[rowIdx]
		if len(rec) == 0 {
			continue
		}
		country := strings.TrimSpace(rec[0])
		if country == "" {
			return nil, fmt.Errorf("row %d: country is required", rowIdx+1)
		}

		for i := 1; i < len(rec) && i < len(header); i++ {
			cell := strings.TrimSpace(rec[i])
			if cell == "" {
				continue
			}
			percent, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: %s value %q: %w", rowIdx+1, header[i], cell, err)
			}
			out = append(out, CoverageCell{
				Country:    country,
				Year:       years[i],
				Proportion: percent / 100,
			})
		}
	}

	return out, nil
}
