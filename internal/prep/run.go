// Package prep builds the two workshop datasets: the state legal-counts
// table and the country-year vaccination panel with joined economic
// indicators.
package prep

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/statworkshop/dataprep/internal/countries"
	"github.com/statworkshop/dataprep/internal/lawdata"
	"github.com/statworkshop/dataprep/internal/provider"
	"github.com/statworkshop/dataprep/internal/snapshot"
	"github.com/statworkshop/dataprep/internal/worldbank"
)

// IndicatorSource is the remote economic-data collaborator. Satisfied by
// *worldbank.Client; tests substitute a local fake.
type IndicatorSource interface {
	ListCountries(ctx context.Context) ([]worldbank.Country, error)
	FetchIndicator(ctx context.Context, indicator string, yearFrom, yearTo int) ([]worldbank.Observation, error)
}

// Result reports what a run produced.
type Result struct {
	Laws     []lawdata.Record
	Coverage []snapshot.CoverageRow

	// UnresolvedNames are coverage-file country names with no ISO3 code.
	// Their rows are kept but never match the economic join.
	UnresolvedNames []string

	LawsPath     string
	CoveragePath string
	ManifestPath string
}

type joinKey struct {
	code string
	year int
}

// Run executes the whole preparation step: load and filter the law counts,
// fetch indicators, reshape the coverage file, left-join, apply the
// hand-authored region overrides, and write the snapshots. Any failure
// aborts the run with nothing partially persisted; snapshots are only
// written once every table is assembled.
func Run(ctx context.Context, cfg Config, src IndicatorSource) (*Result, error) {
	laws, err := lawdata.Load(cfg.LawsPath, cfg.ExcludedStates)
	if err != nil {
		return nil, err
	}

	wbCountries, err := src.ListCountries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	regionByCode := make(map[string]string, len(wbCountries))
	for _, c := range wbCountries {
		regionByCode[c.ISO3] = c.Region
	}

	pop, err := src.FetchIndicator(ctx, worldbank.PopulationTotal, cfg.YearFrom, cfg.YearTo)
	if err != nil {
		return nil, fmt.Errorf("fetch population: %w", err)
	}
	gdp, err := src.FetchIndicator(ctx, worldbank.GDPPerCapita, cfg.YearFrom, cfg.YearTo)
	if err != nil {
		return nil, fmt.Errorf("fetch gdp per capita: %w", err)
	}
	popByKey := indexObservations(pop)
	gdpByKey := indexObservations(gdp)

	cells, err := LoadCoverage(cfg.CoveragePath)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resolver := countries.NewResolver(cfg.CountryAliases)
	unresolved := map[string]bool{}

	rows := make([]snapshot.CoverageRow, 0, len(cells))
	for _, cell := range cells {
		code, ok := resolver.Resolve(cell.Country)
		if !ok {
			unresolved[cell.Country] = true
		}

		row := snapshot.CoverageRow{
			Country:    cell.Country,
			Code:       code,
			Year:       cell.Year,
			Proportion: cell.Proportion,
		}
		// Left join: rows without a code (or with no indicator match)
		// keep null economic fields rather than being dropped.
		if code != "" {
			row.Population = popByKey[joinKey{code, cell.Year}]
			row.GDPPerCapita = gdpByKey[joinKey{code, cell.Year}]
			row.Region = regionByCode[code]
		}
		rows = append(rows, row)
	}

	for i := range rows {
		if label, ok := cfg.RegionOverrides[rows[i].Code]; ok && rows[i].Code != "" {
			rows[i].Region = label
		}
	}
	provider.LogTransform("coverage", len(cells), len(rows), time.Since(start))

	names := make([]string, 0, len(unresolved))
	for name := range unresolved {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) > 0 {
		// Known data-quality gap: these rows silently miss the join.
		log.Printf("[coverage] %d country names have no ISO3 code; their rows keep null economic fields: %v",
			len(names), names)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	lawsPath := filepath.Join(cfg.OutputDir, snapshot.LawsFile)
	if err := snapshot.WriteLaws(lawsPath, laws); err != nil {
		return nil, err
	}

	coveragePath := filepath.Join(cfg.OutputDir, snapshot.CoverageFile)
	if err := snapshot.WriteCoverage(coveragePath, rows); err != nil {
		return nil, err
	}

	if err := snapshot.WriteManifest(cfg.OutputDir, []snapshot.Dataset{
		{Name: "laws", File: snapshot.LawsFile, Rows: len(laws)},
		{Name: "vaccination", File: snapshot.CoverageFile, Rows: len(rows)},
	}); err != nil {
		return nil, err
	}

	return &Result{
		Laws:            laws,
		Coverage:        rows,
		UnresolvedNames: names,
		LawsPath:        lawsPath,
		CoveragePath:    coveragePath,
		ManifestPath:    filepath.Join(cfg.OutputDir, snapshot.ManifestFile),
	}, nil
}

func indexObservations(obs []worldbank.Observation) map[joinKey]*float64 {
	byKey := make(map[joinKey]*float64, len(obs))
	for _, o := range obs {
		if o.Value == nil {
			continue
		}
		byKey[joinKey{o.ISO3, o.Year}] = o.Value
	}
	return byKey
}
