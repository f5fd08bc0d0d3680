package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"hvrdb/internal/models"
)

// LoadListing reads the branch array stored under rootKey, e.g. `{"branch": [...]}`.
func LoadListing(path, rootKey string) ([]models.Branch, error) {
	var branches []models.Branch
	if err := decodeKey(path, rootKey, &branches); err != nil {
		return nil, err
	}
	return branches, nil
}

// LoadChainBranches reads a `{"<chain>": [branch, ...]}` document, keeping chain order.
func LoadChainBranches(path string) (models.ChainBranches, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: failed to read %s: %w", path, err)
	}

	var branches models.ChainBranches
	if err := json.Unmarshal(data, &branches); err != nil {
		return nil, fmt.Errorf("dataset: failed to parse %s: %w", path, err)
	}
	return branches, nil
}

// LoadChains reads the chain metadata array stored under rootKey, e.g. `{"corps": [...]}`.
func LoadChains(path, rootKey string) ([]models.Chain, error) {
	var chains []models.Chain
	if err := decodeKey(path, rootKey, &chains); err != nil {
		return nil, err
	}
	return chains, nil
}

func decodeKey(path, key string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("dataset: failed to read %s: %w", path, err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("dataset: failed to parse %s: %w", path, err)
	}

	raw, ok := doc[key]
	if !ok {
		return fmt.Errorf("dataset: %s has no %q key", path, key)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("dataset: failed to parse %q in %s: %w", key, path, err)
	}
	return nil
}
