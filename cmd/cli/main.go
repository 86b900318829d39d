// One-shot pipeline run: generate a synthetic batch, compute the full
// insights report, and print it as JSON. Useful for eyeballing the analytics
// without standing up the server.
package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/finix-labs/insights/internal/generator"
	"github.com/finix-labs/insights/internal/insights"
	"github.com/finix-labs/insights/internal/logger"
)

func main() {
	var (
		count   = flag.Int("count", generator.DefaultCount, "number of synthetic transactions")
		seed    = flag.Int64("seed", 0, "random seed (0 = time-based)")
		horizon = flag.Int("horizon", insights.DefaultHorizonDays, "forecast horizon in days")
	)
	flag.Parse()

	log := logger.New()

	gen := generator.New()
	if *seed != 0 {
		gen = generator.NewSeeded(*seed)
	}

	report, err := insights.BuildReport(gen.Transactions(*count), *horizon)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build report")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		log.Fatal().Err(err).Msg("Failed to encode report")
	}
}
