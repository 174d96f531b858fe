package prep

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config drives one preparation run. Everything hand-authored about the
// datasets (exclusions, region corrections, name aliases) lives here rather
// than in code.
type Config struct {
	// LawsPath is the bundled state legal-counts CSV.
	LawsPath string `yaml:"laws_path"`

	// CoveragePath is the wide-format immunization coverage CSV
	// (one row per country, one column per year, integer percents).
	CoveragePath string `yaml:"coverage_path"`

	// OutputDir receives the snapshot files; it is created if missing and
	// existing snapshots are overwritten unconditionally.
	OutputDir string `yaml:"output_dir"`

	// Year window for the indicator fetch, inclusive on both ends.
	YearFrom int `yaml:"year_from"`
	YearTo   int `yaml:"year_to"`

	// WorldBankBase overrides the API endpoint; empty means the public one.
	WorldBankBase string `yaml:"worldbank_base"`

	// ExcludedStates are dropped from the laws table by exact name match.
	ExcludedStates []string `yaml:"excluded_states"`

	// RegionOverrides rewrites the joined region label per ISO3 code, for
	// countries whose source classification is known to be wrong.
	RegionOverrides map[string]string `yaml:"region_overrides"`

	// CountryAliases extends the built-in name -> ISO3 table.
	CountryAliases map[string]string `yaml:"country_aliases"`
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if cfg.YearFrom == 0 {
		cfg.YearFrom = 1980
	}
	if cfg.YearTo == 0 {
		cfg.YearTo = 2020
	}

	switch {
	case cfg.LawsPath == "":
		return Config{}, errors.New("config: laws_path is required")
	case cfg.CoveragePath == "":
		return Config{}, errors.New("config: coverage_path is required")
	case cfg.OutputDir == "":
		return Config{}, errors.New("config: output_dir is required")
	case cfg.YearFrom > cfg.YearTo:
		return Config{}, fmt.Errorf("config: year_from %d is after year_to %d", cfg.YearFrom, cfg.YearTo)
	}

	return cfg, nil
}
