package db

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

// ParseSnapshot decodes a YAML document of entity collections
func ParseSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	return snap, nil
}

// SeedSnapshot returns the built-in demo data set
func SeedSnapshot() (Snapshot, error) {
	return ParseSnapshot(seedYAML)
}

// NewSeededDB creates a store preloaded with the built-in demo data
func NewSeededDB(opts ...Option) (*DB, error) {
	snap, err := SeedSnapshot()
	if err != nil {
		return nil, err
	}
	return NewDBFromSnapshot(snap, opts...), nil
}
