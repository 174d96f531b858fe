package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/statworkshop/dataprep/internal/prep"
	"github.com/statworkshop/dataprep/internal/snapshot"
	"github.com/statworkshop/dataprep/internal/worldbank"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to YAML config")
		dbURL      = flag.String("db", "", "optional DATABASE_URL; also publish snapshots to Postgres")
	)
	flag.Parse()

	if *configPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load(".env.local")

	cfg, err := prep.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	client := worldbank.NewClient(cfg.WorldBankBase)

	res, err := prep.Run(context.Background(), cfg, client)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("wrote %s (%d rows), %s (%d rows)",
		res.LawsPath, len(res.Laws), res.CoveragePath, len(res.Coverage))

	if *dbURL != "" {
		if err := snapshot.Publish(*dbURL, res.Laws, res.Coverage); err != nil {
			log.Fatal(err)
		}
	}
}
