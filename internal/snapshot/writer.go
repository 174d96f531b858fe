// Package snapshot serializes the prepared tables to the flat CSV files the
// workshop documents read, and can optionally publish them to Postgres.
package snapshot

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/statworkshop/dataprep/internal/lawdata"
	"github.com/statworkshop/dataprep/internal/provider"
)

// Snapshot file names inside the output directory.
const (
	LawsFile     = "laws.csv"
	CoverageFile = "vaccination.csv"
	ManifestFile = "manifest.yaml"
)

// CoverageRow is one (country, year) row of the vaccination panel as
// persisted. Population and GDPPerCapita are nil when the economic join
// found no match; Region is empty in the same case.
type CoverageRow struct {
	Country      string
	Code         string
	Year         int
	Proportion   float64
	Population   *float64
	GDPPerCapita *float64
	Region       string
}

var (
	lawsHeader     = []string{"state", "lean", "percent_urban", "laws"}
	coverageHeader = []string{"country", "code", "year", "proportion", "population", "gdp_per_capita", "region"}
)

// WriteLaws writes the legal-counts snapshot, replacing any existing file.
// Rows are written in input order; the caller is responsible for ordering
// them deterministically.
func WriteLaws(path string, rows []lawdata.Record) error {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, lawsHeader)
	for _, r := range rows {
		records = append(records, []string{
			r.State,
			r.Lean,
			formatFloat(r.PercentUrban),
			strconv.Itoa(r.Laws),
		})
	}
	if err := writeCSV(path, records); err != nil {
		return err
	}
	provider.LogSnapshot("laws", path, len(rows))
	return nil
}

// WriteCoverage writes the vaccination panel snapshot, replacing any
// existing file. Null economic fields serialize as empty strings.
func WriteCoverage(path string, rows []CoverageRow) error {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, coverageHeader)
	for _, r := range rows {
		records = append(records, []string{
			r.Country,
			r.Code,
			strconv.Itoa(r.Year),
			formatFloat(r.Proportion),
			formatOptFloat(r.Population),
			formatOptFloat(r.GDPPerCapita),
			r.Region,
		})
	}
	if err := writeCSV(path, records); err != nil {
		return err
	}
	provider.LogSnapshot("vaccination", path, len(rows))
	return nil
}

// ReadCoverage reads a vaccination panel snapshot back, mostly for the
// preview server and for verifying round-trips.
func ReadCoverage(path string) ([]CoverageRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReader(f))
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("snapshot is empty")
	}
	if got := strings.Join(records[0], ","); got != strings.Join(coverageHeader, ",") {
		return nil, fmt.Errorf("unexpected snapshot header: %s", got)
	}

	out := make([]CoverageRow, 0, len(records)-1)
	for i, rec := range records[1:] {
		year, err := strconv.Atoi(rec[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: year: %w", i+2, err)
		}
		prop, err := strconv.ParseFloat(rec[3], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: proportion: %w", i+2, err)
		}
		pop, err := parseOptFloat(rec[4])
		if err != nil {
			return nil, fmt.Errorf("row %d: population: %w", i+2, err)
		}
		gdp, err := parseOptFloat(rec[5])
		if err != nil {
			return nil, fmt.Errorf("row %d: gdp_per_capita: %w", i+2, err)
		}
		out = append(out, CoverageRow{
			Country:      rec[0],
			Code:         rec[1],
			Year:         year,
			Proportion:   prop,
			Population:   pop,
			GDPPerCapita: gdp,
			Region:       rec[6],
		})
	}
	return out, nil
}

func writeCSV(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		f.Close()
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	return nil
}

// formatFloat gives the shortest exact decimal form, so identical inputs
// always serialize to identical bytes.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatOptFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}

func parseOptFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
