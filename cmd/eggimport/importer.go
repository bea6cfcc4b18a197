package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-panel/internal/logger"
	"github.com/MKhiriev/go-panel/internal/service"
	"github.com/MKhiriev/go-panel/internal/workers"
	"github.com/MKhiriev/go-panel/models"
)

type eggImporter struct {
	fetcher documentFetcher
	eggs    service.EggService
	logger  *logger.Logger
}

// importAll imports every source, at most concurrency at a time. It returns
// the eggs that were stored, in source order, together with the joined
// failures of the others.
func (i *eggImporter) importAll(ctx context.Context, sources []string, concurrency int) ([]models.Egg, error) {
	created := make([]*models.Egg, len(sources))

	jobs := make([]workers.Worker, 0, len(sources))
	for idx, source := range sources {
		idx, source := idx, source
		jobs = append(jobs, workers.WorkerFunc(func(ctx context.Context) error {
			egg, err := i.importOne(ctx, source)
			if err != nil {
				return fmt.Errorf("%s: %w", source, err)
			}
			created[idx] = &egg
			return nil
		}))
	}

	err := workers.NewWorkers(concurrency, jobs...).Run(ctx)

	eggs := make([]models.Egg, 0, len(sources))
	for _, egg := range created {
		if egg != nil {
			eggs = append(eggs, *egg)
		}
	}
	return eggs, err
}

func (i *eggImporter) importOne(ctx context.Context, source string) (models.Egg, error) {
	data, err := readEggDocument(ctx, i.fetcher, source)
	if err != nil {
		return models.Egg{}, err
	}

	egg, err := decodeEgg(data)
	if err != nil {
		return models.Egg{}, err
	}

	created, err := i.eggs.ImportEgg(ctx, egg)
	if err != nil {
		return models.Egg{}, err
	}

	i.logger.Info().
		Str("source", source).
		Int64("egg_id", created.ID).
		Int("variables", len(created.Variables)).
		Msg("egg imported")
	return created, nil
}
