// check-codes lists country names in the coverage file that resolve to no
// ISO3 code. Those rows survive preparation but silently miss the economic
// join, so it is worth a human pass over this list before a workshop.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/statworkshop/dataprep/internal/countries"
	"github.com/statworkshop/dataprep/internal/prep"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config")
	flag.Parse()

	if *configPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := prep.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	cells, err := prep.LoadCoverage(cfg.CoveragePath)
	if err != nil {
		log.Fatal(err)
	}

	resolver := countries.NewResolver(cfg.CountryAliases)
	unresolved := map[string]int{}
	for _, cell := range cells {
		if _, ok := resolver.Resolve(cell.Country); !ok {
			unresolved[cell.Country]++
		}
	}

	if len(unresolved) == 0 {
		fmt.Println("every country name resolves to an ISO3 code")
		return
	}

	names := make([]string, 0, len(unresolved))
	for name := range unresolved {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("%d country names with no ISO3 code:\n", len(names))
	for _, name := range names {
		fmt.Printf("  %-40s %d rows\n", name, unresolved[name])
	}
	fmt.Println("\nAdd aliases under country_aliases in the config to resolve them.")
}
