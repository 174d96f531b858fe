// snapshot-server serves the prepared snapshots as JSON for local chart
// debugging while drafting workshop documents. It only ever reads the
// snapshot directory; preparation stays a separate batch step.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/statworkshop/dataprep/internal/lawdata"
	"github.com/statworkshop/dataprep/internal/snapshot"
)

type lawJSON struct {
	State        string  `json:"state"`
	Lean         string  `json:"lean"`
	PercentUrban float64 `json:"percent_urban"`
	Laws         int     `json:"laws"`
}

type coverageJSON struct {
	Country      string   `json:"country"`
	Code         string   `json:"code,omitempty"`
	Year         int      `json:"year"`
	Proportion   float64  `json:"proportion"`
	Population   *float64 `json:"population"`
	GDPPerCapita *float64 `json:"gdp_per_capita"`
	Region       string   `json:"region,omitempty"`
}

func newRouter(dir string) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		fmt.Fprintln(w, "ok")
	})

	r.Get("/snapshots/laws", func(w http.ResponseWriter, req *http.Request) {
		rows, err := lawdata.Load(filepath.Join(dir, snapshot.LawsFile), nil)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		out := make([]lawJSON, 0, len(rows))
		for _, row := range rows {
			out = append(out, lawJSON{row.State, row.Lean, row.PercentUrban, row.Laws})
		}
		writeJSON(w, out)
	})

	r.Get("/snapshots/vaccination", func(w http.ResponseWriter, req *http.Request) {
		rows, err := snapshot.ReadCoverage(filepath.Join(dir, snapshot.CoverageFile))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		out := make([]coverageJSON, 0, len(rows))
		for _, row := range rows {
			out = append(out, coverageJSON{
				Country:      row.Country,
				Code:         row.Code,
				Year:         row.Year,
				Proportion:   row.Proportion,
				Population:   row.Population,
				GDPPerCapita: row.GDPPerCapita,
				Region:       row.Region,
			})
		}
		writeJSON(w, out)
	})

	r.Get("/snapshots/manifest", func(w http.ResponseWriter, req *http.Request) {
		m, err := snapshot.ReadManifest(dir)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, m)
	})

	return r
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[server] encode error: %v", err)
	}
}

func main() {
	_ = godotenv.Load(".env.local")

	dir := os.Getenv("SNAPSHOT_DIR")
	if dir == "" {
		dir = "snapshots"
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "6060"
	}

	fmt.Printf("Serving snapshots from %s on port :%s...\n", dir, port)
	if err := http.ListenAndServe("0.0.0.0:"+port, newRouter(dir)); err != nil {
		log.Fatal(err)
	}
}
