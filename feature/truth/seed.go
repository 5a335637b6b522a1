package truth

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"finledger/core/reconcile"
	"finledger/feature/truth/models"

	"gopkg.in/yaml.v3"
)

// ErrUserRequired is returned when a user override is requested without a user.
var ErrUserRequired = errors.New("user id is required")

//go:embed defaults.yaml
var defaultSeed []byte

// SeedFile is the YAML document accepted by Seed.
type SeedFile struct {
	Defaults []SeedEntry `yaml:"defaults"`
}

// SeedEntry is one global default. Unknown enum values fail while decoding.
type SeedEntry struct {
	MetricType  reconcile.MetricType   `yaml:"metric_type"`
	AssetClass  reconcile.AssetClass   `yaml:"asset_class"`
	Sources     []reconcile.SourceType `yaml:"sources"`
	Description string                 `yaml:"description"`
}

// ParseSeed decodes and validates a seed document without touching the database.
func ParseSeed(r io.Reader) (*SeedFile, error) {
	var file SeedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse truth source seed: %w", err)
	}

	for i, entry := range file.Defaults {
		if !entry.MetricType.IsValid() || !entry.AssetClass.IsValid() {
			return nil, fmt.Errorf("seed entry %d: %w: metric_type and asset_class are required", i, reconcile.ErrInvalidEnum)
		}
		if err := models.SourceList(entry.Sources).Validate(); err != nil {
			return nil, fmt.Errorf("seed entry %d (%s/%s): %w", i, entry.MetricType, entry.AssetClass, err)
		}
	}
	return &file, nil
}

// Seed stores every entry of the document as a global default and returns how many were written.
func (s *Service) Seed(ctx context.Context, r io.Reader) (int, error) {
	file, err := ParseSeed(r)
	if err != nil {
		return 0, err
	}

	for i, entry := range file.Defaults {
		if _, err := s.SetGlobalDefault(ctx, entry.MetricType, entry.AssetClass, entry.Sources, entry.Description); err != nil {
			return i, err
		}
	}
	return len(file.Defaults), nil
}

// SeedDefaults stores the built-in global defaults.
func (s *Service) SeedDefaults(ctx context.Context) (int, error) {
	return s.Seed(ctx, bytes.NewReader(defaultSeed))
}
