package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"roasdash/adapters/sample"
	"roasdash/adapters/tabular"
	"roasdash/domain/campaign"
)

// Writes the deterministic sample dataset as four CSV files, one per
// dataset kind. Useful for seeding demos and for regenerating the fixtures
// the upload flow is tested against.
func main() {
	outDir := flag.String("out", "sample_data", "output directory for the generated CSV files")
	seed := flag.Int64("seed", 42, "random seed; identical seeds reproduce identical files")
	flag.Parse()

	cfg := sample.DefaultConfig()
	cfg.Seed = *seed

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	data := sample.NewGenerator(cfg).Generate()

	for _, kind := range campaign.AllKinds() {
		path := filepath.Join(*outDir, fmt.Sprintf("%s.csv", kind))
		f, err := os.Create(path)
		if err != nil {
			log.Fatalf("failed to create %s: %v", path, err)
		}
		if err := tabular.WriteDataset(f, data, kind); err != nil {
			f.Close()
			log.Fatalf("failed to write %s: %v", path, err)
		}
		f.Close()
		log.Printf("wrote %s", path)
	}

	log.Printf("generated %d influencers, %d posts, %d tracking events, %d payouts",
		len(data.Influencers), len(data.Posts), len(data.Tracking), len(data.Payouts))
}
