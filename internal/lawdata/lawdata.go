// Package lawdata loads the bundled state legal-counts dataset used by the
// Poisson regression examples.
package lawdata

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Record is one jurisdiction: its historical political lean, how urban it
// is, and how many of the studied laws it has enacted.
type Record struct {
	State        string
	Lean         string
	PercentUrban float64
	Laws         int
}

// Admissible lean labels.
const (
	LeanLiberal      = "liberal"
	LeanModerate     = "moderate"
	LeanConservative = "conservative"
)

var validLeans = map[string]bool{
	LeanLiberal:      true,
	LeanModerate:     true,
	LeanConservative: true,
}

// Load reads the legal-counts CSV and drops any jurisdiction whose name
// exactly matches an entry of excluded. The file is required; a missing
// path is an error, not an empty result.
func Load(path string, excluded []string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open law dataset: %w", err)
	}
	defer f.Close()

	skip := map[string]bool{}
	for _, name := range excluded {
		skip[name] = true
	}

	r := csv.NewReader(bufio.NewReader(f))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, errors.New("law dataset has no data rows")
	}

	header := records[0]
	// Handle BOM on first header cell
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	col := map[string]int{}
	for i, h := range header {
		col[strings.TrimSpace(h)] = i
	}

	for _, k := range []string{"state", "lean", "percent_urban", "laws"} {
		if _, ok := col[k]; !ok {
			return nil, fmt.Errorf("missing required column: %s", k)
		}
	}

	var out []Record
	for rowIdx := 1; rowIdx < len(records); rowIdx++ {
		rec := records[rowIdx]
		get := func(name string) string {
			i := col[name]
			if i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		state := get("state")
		if state == "" {
			return nil, fmt.Errorf("row %d: state is required", rowIdx+1)
		}
		if skip[state] {
			continue
		}

		lean := get("lean")
		if !validLeans[lean] {
			return nil, fmt.Errorf("row %d: lean must be liberal, moderate or conservative (got %q)", rowIdx+1, lean)
		}

		urban, err := strconv.ParseFloat(get("percent_urban"), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: percent_urban: %w", rowIdx+1, err)
		}
		if urban < 0 || urban > 100 {
			return nil, fmt.Errorf("row %d: percent_urban %v out of range [0,100]", rowIdx+1, urban)
		}

		laws, err := strconv.Atoi(get("laws"))
		if err != nil {
			return nil, fmt.Errorf("row %d: laws: %w", rowIdx+1, err)
		}
		if laws < 0 {
			return nil, fmt.Errorf("row %d: laws must be >= 0 (got %d)", rowIdx+1, laws)
		}

		out = append(out, Record{
			State:        state,
			Lean:         lean,
			PercentUrban: urban,
			Laws:         laws,
		})
	}

	return out, nil
}
