package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-panel/models"
)

type documentFetcher interface {
	FetchDocument(ctx context.Context, url string) ([]byte, error)
}

// readEggDocument downloads source when it is an http(s) URL and reads it
// from disk otherwise.
func readEggDocument(ctx context.Context, fetcher documentFetcher, source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return fetcher.FetchDocument(ctx, source)
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", source, err)
	}
	return data, nil
}

// decodeEgg parses a JSON egg export or a YAML egg document. Exported eggs
// escape slashes in rule regexes, so JSON input is not handed to the YAML
// decoder.
func decodeEgg(data []byte) (models.Egg, error) {
	var egg models.Egg

	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		if err := json.Unmarshal(data, &egg); err != nil {
			return models.Egg{}, fmt.Errorf("invalid JSON egg: %w", err)
		}
		return egg, nil
	}

	if err := yaml.Unmarshal(data, &egg); err != nil {
		return models.Egg{}, fmt.Errorf("invalid YAML egg: %w", err)
	}
	return egg, nil
}
