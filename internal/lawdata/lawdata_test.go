package lawdata_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/statworkshop/dataprep/internal/lawdata"
)

// writeCSV writes content to a temp file and returns its path.
func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "laws.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const sample = `state,lean,percent_urban,laws
California,liberal,95.0,106
Texas,conservative,84.7,18
Vermont,liberal,38.9,6
`

// TestLoad_ExcludesByExactName verifies that an excluded jurisdiction never
// appears in the result and that the other rows survive untouched.
func TestLoad_ExcludesByExactName(t *testing.T) {
	path := writeCSV(t, sample)

	rows, err := lawdata.Load(path, []string{"California"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	for _, r := range rows {
		if r.State == "California" {
			t.Errorf("excluded state California still present")
		}
	}
	if rows[0].State != "Texas" || rows[0].Laws != 18 || rows[0].PercentUrban != 84.7 {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
}

// TestLoad_NoExclusions verifies that with no exclusion list every data row
// is returned.
func TestLoad_NoExclusions(t *testing.T) {
	path := writeCSV(t, sample)

	rows, err := lawdata.Load(path, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
}

// TestLoad_MissingFile verifies that an absent dataset is an error rather
// than an empty result.
func TestLoad_MissingFile(t *testing.T) {
	_, err := lawdata.Load(filepath.Join(t.TempDir(), "nope.csv"), nil)
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

// TestLoad_RejectsBadLean verifies the three-value lean constraint.
func TestLoad_RejectsBadLean(t *testing.T) {
	path := writeCSV(t, "state,lean,percent_urban,laws\nOhio,purple,77.9,15\n")

	if _, err := lawdata.Load(path, nil); err == nil {
		t.Fatal("expected an error for lean=purple")
	}
}

// TestLoad_RejectsOutOfRangeValues verifies the percent_urban and laws
// range checks.
func TestLoad_RejectsOutOfRangeValues(t *testing.T) {
	bad := []string{
		"state,lean,percent_urban,laws\nOhio,moderate,120,15\n",
		"state,lean,percent_urban,laws\nOhio,moderate,77.9,-3\n",
	}
	for _, content := range bad {
		path := writeCSV(t, content)
		if _, err := lawdata.Load(path, nil); err == nil {
			t.Errorf("expected an error for %q", content)
		}
	}
}

// TestLoad_MissingColumn verifies the required-column check.
func TestLoad_MissingColumn(t *testing.T) {
	path := writeCSV(t, "state,lean,laws\nOhio,moderate,15\n")

	if _, err := lawdata.Load(path, nil); err == nil {
		t.Fatal("expected an error for a missing percent_urban column")
	}
}

// TestLoad_HandlesBOM verifies that a UTF-8 BOM on the header does not break
// column detection.
func TestLoad_HandlesBOM(t *testing.T) {
	path := writeCSV(t, "\ufeff"+sample)

	rows, err := lawdata.Load(path, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
}
