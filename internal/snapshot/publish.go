package snapshot

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/statworkshop/dataprep/internal/lawdata"
	"github.com/statworkshop/dataprep/internal/provider"
)

type lawRow struct {
	State        string  `gorm:"primaryKey;column:state"`
	Lean         string  `gorm:"column:lean"`
	PercentUrban float64 `gorm:"column:percent_urban"`
	Laws         int     `gorm:"column:laws"`
}

func (lawRow) TableName() string { return "workshop.state_laws" }

type panelRow struct {
	Country      string   `gorm:"primaryKey;column:country"`
	Code         string   `gorm:"column:code"`
	Year         int      `gorm:"primaryKey;column:year"`
	Proportion   float64  `gorm:"column:proportion"`
	Population   *float64 `gorm:"column:population"`
	GDPPerCapita *float64 `gorm:"column:gdp_per_capita"`
	Region       string   `gorm:"column:region"`
}

func (panelRow) TableName() string { return "workshop.vaccination_panel" }

// Publish replaces the workshop tables in Postgres with the given datasets.
// Like the file snapshots, this is wipe-and-rewrite: no versioning, no merge.
func Publish(dbURL string, laws []lawdata.Record, coverage []CoverageRow) error {
	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`TRUNCATE TABLE workshop.state_laws, workshop.vaccination_panel`).Error; err != nil {
			return fmt.Errorf("truncate workshop tables: %w", err)
		}

		start := time.Now()
		lawRows := make([]lawRow, 0, len(laws))
		for _, r := range laws {
			lawRows = append(lawRows, lawRow{
				State:        r.State,
				Lean:         r.Lean,
				PercentUrban: r.PercentUrban,
				Laws:         r.Laws,
			})
		}
		if len(lawRows) > 0 {
			if err := tx.CreateInBatches(&lawRows, 500).Error; err != nil {
				return fmt.Errorf("insert state_laws: %w", err)
			}
		}
		provider.LogUpsert("workshop.state_laws", len(lawRows), time.Since(start))

		start = time.Now()
		panelRows := make([]panelRow, 0, len(coverage))
		for _, r := range coverage {
			panelRows = append(panelRows, panelRow{
				Country:      r.Country,
				Code:         r.Code,
				Year:         r.Year,
				Proportion:   r.Proportion,
				Population:   r.Population,
				GDPPerCapita: r.GDPPerCapita,
				Region:       r.Region,
			})
		}
		if len(panelRows) > 0 {
			if err := tx.CreateInBatches(&panelRows, 500).Error; err != nil {
				return fmt.Errorf("insert vaccination_panel: %w", err)
			}
		}
		provider.LogUpsert("workshop.vaccination_panel", len(panelRows), time.Since(start))

		return nil
	})
}
