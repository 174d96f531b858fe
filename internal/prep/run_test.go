package prep

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/statworkshop/dataprep/internal/snapshot"
	"github.com/statworkshop/dataprep/internal/worldbank"
)

// fakeSource implements IndicatorSource without any network dependency.
type fakeSource struct {
	countries []worldbank.Country
	series    map[string][]worldbank.Observation
	err       error
}

func (f *fakeSource) ListCountries(ctx context.Context) ([]worldbank.Country, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.countries, nil
}

func (f *fakeSource) FetchIndicator(ctx context.Context, indicator string, yearFrom, yearTo int) ([]worldbank.Observation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.series[indicator], nil
}

func fptr(v float64) *float64 { return &v }

const lawsCSV = `state,lean,percent_urban,laws
California,liberal,95.0,106
Texas,conservative,84.7,18
Vermont,liberal,38.9,6
`

const coverageCSV = `country,2014,2015
Brazil,100,96
Viet Nam,,97
Atlantis,85,88
`

// testSource returns a fake with Brazil and Viet Nam known, a deliberately
// wrong region for Viet Nam, and partial indicator coverage: Brazil has no
// 2014 GDP figure.
func testSource() *fakeSource {
	return &fakeSource{
		countries: []worldbank.Country{
			{ISO3: "BRA", Name: "Brazil", Region: "Latin America & Caribbean"},
			{ISO3: "VNM", Name: "Viet Nam", Region: "South Asia"},
		},
		series: map[string][]worldbank.Observation{
			worldbank.PopulationTotal: {
				{ISO3: "BRA", Year: 2014, Value: fptr(202763735)},
				{ISO3: "BRA", Year: 2015, Value: fptr(204471769)},
				{ISO3: "VNM", Year: 2015, Value: fptr(92677076)},
			},
			worldbank.GDPPerCapita: {
				{ISO3: "BRA", Year: 2015, Value: fptr(8814.0)},
				{ISO3: "VNM", Year: 2015, Value: fptr(2582.0)},
			},
		},
	}
}

func testConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	laws := filepath.Join(dir, "laws_input.csv")
	cov := filepath.Join(dir, "coverage_input.csv")
	if err := os.WriteFile(laws, []byte(lawsCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(cov, []byte(coverageCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	return Config{
		LawsPath:       laws,
		CoveragePath:   cov,
		OutputDir:      filepath.Join(dir, "snapshots"),
		YearFrom:       2014,
		YearTo:         2015,
		ExcludedStates: []string{"California"},
		RegionOverrides: map[string]string{
			"VNM": "East Asia & Pacific",
		},
	}
}

// TestRun_EndToEnd verifies the whole preparation step against a fake
// indicator source: exclusion, left-outer join, null economics, region
// override and unresolved-name accounting.
func TestRun_EndToEnd(t *testing.T) {
	cfg := testConfig(t)

	res, err := Run(context.Background(), cfg, testSource())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for _, r := range res.Laws {
		if r.State == "California" {
			t.Error("excluded state California present in laws output")
		}
	}
	if len(res.Laws) != 2 {
		t.Errorf("expected 2 law rows, got %d", len(res.Laws))
	}

	// Left join preserves every reshaped row: 5 non-blank cells in.
	if len(res.Coverage) != 5 {
		t.Fatalf("expected 5 coverage rows, got %d", len(res.Coverage))
	}

	byKey := map[string]snapshot.CoverageRow{}
	for _, r := range res.Coverage {
		byKey[r.Country+"/"+strconv.Itoa(r.Year)] = r
	}

	bra2015 := byKey["Brazil/2015"]
	if bra2015.Code != "BRA" || bra2015.Proportion != 0.96 {
		t.Errorf("unexpected Brazil 2015 row: %+v", bra2015)
	}
	if bra2015.Population == nil || *bra2015.Population != 204471769 {
		t.Errorf("Brazil 2015 population not joined: %+v", bra2015.Population)
	}
	if bra2015.Region != "Latin America & Caribbean" {
		t.Errorf("Brazil 2015 region = %q", bra2015.Region)
	}

	// Partial match: population present, GDP missing for that year.
	bra2014 := byKey["Brazil/2014"]
	if bra2014.Population == nil || bra2014.GDPPerCapita != nil {
		t.Errorf("Brazil 2014 should have population but nil gdp: %+v", bra2014)
	}

	// The hand-authored correction rewrites the auto-assigned region.
	vnm := byKey["Viet Nam/2015"]
	if vnm.Region != "East Asia & Pacific" {
		t.Errorf("Viet Nam 2015 region = %q, want East Asia & Pacific", vnm.Region)
	}
	if vnm.Code != "VNM" || vnm.Proportion != 0.97 {
		t.Errorf("unexpected Viet Nam row: %+v", vnm)
	}

	// Unresolved names keep their rows with empty code and null economics.
	for _, year := range []string{"2014", "2015"} {
		atl := byKey["Atlantis/"+year]
		if atl.Country != "Atlantis" {
			t.Fatalf("Atlantis %s row missing from join output", year)
		}
		if atl.Code != "" || atl.Population != nil || atl.GDPPerCapita != nil || atl.Region != "" {
			t.Errorf("Atlantis %s should have no code and null economics: %+v", year, atl)
		}
	}
	if len(res.UnresolvedNames) != 1 || res.UnresolvedNames[0] != "Atlantis" {
		t.Errorf("UnresolvedNames = %v, want [Atlantis]", res.UnresolvedNames)
	}
}

// TestRun_BoundaryValueRoundTrips verifies that a 100 percent coverage value
// survives into the snapshot as exactly 1, unclamped.
func TestRun_BoundaryValueRoundTrips(t *testing.T) {
	cfg := testConfig(t)

	res, err := Run(context.Background(), cfg, testSource())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	rows, err := snapshot.ReadCoverage(res.CoveragePath)
	if err != nil {
		t.Fatalf("ReadCoverage failed: %v", err)
	}
	found := false
	for _, r := range rows {
		if r.Country == "Brazil" && r.Year == 2014 {
			found = true
			if r.Proportion != 1 {
				t.Errorf("Brazil 2014 proportion = %v, want exactly 1", r.Proportion)
			}
		}
	}
	if !found {
		t.Fatal("Brazil 2014 row missing from snapshot")
	}
}

// TestRun_Idempotent verifies that two runs over identical inputs produce
// byte-identical snapshot files, manifest included.
func TestRun_Idempotent(t *testing.T) {
	cfg := testConfig(t)

	first, err := Run(context.Background(), cfg, testSource())
	if err != nil {
		t.Fatalf("first Run failed: %v", err)
	}
	before := readAll(t, first.LawsPath, first.CoveragePath, first.ManifestPath)

	second, err := Run(context.Background(), cfg, testSource())
	if err != nil {
		t.Fatalf("second Run failed: %v", err)
	}
	after := readAll(t, second.LawsPath, second.CoveragePath, second.ManifestPath)

	for i := range before {
		if !bytes.Equal(before[i], after[i]) {
			t.Errorf("snapshot %d differs between runs", i)
		}
	}
}

// TestRun_RemoteFailureAborts verifies that a failing indicator fetch aborts
// the run with no partial snapshot written.
func TestRun_RemoteFailureAborts(t *testing.T) {
	cfg := testConfig(t)

	src := testSource()
	src.err = errors.New("worldbank down")

	if _, err := Run(context.Background(), cfg, src); err == nil {
		t.Fatal("expected Run to fail when the remote fetch fails")
	}
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, snapshot.LawsFile)); !os.IsNotExist(err) {
		t.Error("laws snapshot written despite aborted run")
	}
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, snapshot.CoverageFile)); !os.IsNotExist(err) {
		t.Error("coverage snapshot written despite aborted run")
	}
}

func readAll(t *testing.T, paths ...string) [][]byte {
	t.Helper()
	out := make([][]byte, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			t.Fatal(err)
		}
		out = append(out, data)
	}
	return out
}
