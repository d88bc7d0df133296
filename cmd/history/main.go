// History summary tool: buckets the death history of a genome store into
// fixed-size windows and writes one summary row per window.
//
// Usage: go run ./cmd/history -store genes.json -out history.csv [-parquet history.parquet]
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/Vovchek-aks/SnakesEvolv/telemetry"
)

func main() {
	storePath := flag.String("store", "genes.json", "Genome store file")
	window := flag.Int("window", telemetry.DefaultHistoryWindow, "History entries per bucket")
	partial := flag.Bool("partial", false, "Include the trailing partial bucket")
	csvOut := flag.String("out", "history.csv", "CSV output path (empty = skip)")
	parquetOut := flag.String("parquet", "", "Parquet output path (empty = skip)")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if _, err := os.Stat(*storePath); err != nil {
		slog.Error("store not readable", "path", *storePath, "error", err)
		os.Exit(1)
	}
	store, err := telemetry.OpenGenomeStore(*storePath)
	if err != nil {
		slog.Error("failed to open store", "error", err)
		os.Exit(1)
	}

	buckets := telemetry.BucketHistory(store.History(), *window, *partial)
	slog.Info("bucketed history",
		"entries", len(store.History()),
		"window", *window,
		"buckets", len(buckets),
		"best_score", store.BestScore(),
	)

	if *csvOut != "" {
		if err := telemetry.WriteHistoryCSV(*csvOut, buckets); err != nil {
			slog.Error("failed to write csv", "error", err)
			os.Exit(1)
		}
		slog.Info("wrote csv", "path", *csvOut)
	}

	if *parquetOut != "" {
		if err := telemetry.WriteHistoryParquet(*parquetOut, buckets); err != nil {
			slog.Error("failed to write parquet", "error", err)
			os.Exit(1)
		}
		slog.Info("wrote parquet", "path", *parquetOut)
	}
}
