// Command eggimport stores egg documents in the panel database.
//
// Documents are read from local paths or downloaded from http(s) URLs and
// may be YAML or JSON:
//
//	eggimport -d "postgres://localhost:5432/panel" ./eggs/paper.yaml ./eggs/vanilla.json
//	eggimport -driver sqlite3 -d panel.db https://example.com/egg-paper.json
//
// The created eggs are printed to stdout as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-panel/internal/config"
	"github.com/MKhiriev/go-panel/internal/logger"
	"github.com/MKhiriev/go-panel/internal/service"
	"github.com/MKhiriev/go-panel/internal/store"
	"github.com/MKhiriev/go-panel/internal/utils"
)

func main() {
	concurrency := flag.Int("concurrency", 4, "Number of documents imported at once")

	log := logger.NewLoggerTo("go-panel-eggimport", os.Stderr)
	cfg, err := config.GetStorageConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	sources := flag.Args()
	if len(sources) == 0 {
		log.Fatal().Msg("no egg documents given")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	importer := &eggImporter{
		fetcher: utils.NewHTTPClient(),
		eggs:    service.NewEggValidationService().Wrap(service.NewEggService(storages.EggRepository, log)),
		logger:  log,
	}

	// the importer is an operator tool and acts as root administrator
	ctx = utils.WithUser(log.WithContext(ctx), 0, true)

	created, importErr := importer.importAll(ctx, sources, *concurrency)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(created); err != nil {
		log.Err(err).Msg("error writing eggs")
	}

	if importErr != nil {
		log.Fatal().Err(importErr).Int("imported", len(created)).Int("requested", len(sources)).Msg("error importing eggs")
	}
}
