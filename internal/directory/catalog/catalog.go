// Package catalog loads the reference data store.
//
// The built-in seed is embedded in the binary; operators may point the
// service at a replacement YAML file with the same schema. Either way the
// result is an immutable models.Catalog loaded once at startup.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"bloodnet/internal/directory/models"
	"bloodnet/pkg/domain"
	"bloodnet/pkg/platform/strings"
)

//go:embed seed.yaml
var seed []byte

// file is the on-disk schema.
type file struct {
	Districts   []domain.District         `yaml:"districts"`
	BloodGroups []domain.BloodGroup       `yaml:"blood_groups"`
	Donors      []models.Donor            `yaml:"donors"`
	Requests    []models.EmergencyRequest `yaml:"emergency_requests"`
	BloodBanks  []models.BloodBank        `yaml:"blood_banks"`
	Camps       []models.DonationCamp     `yaml:"donation_camps"`
	Helplines   []models.Helpline         `yaml:"helplines"`
}

// Default returns the catalog built from the embedded seed.
func Default() (*models.Catalog, error) {
	c, err := Parse(seed)
	if err != nil {
		return nil, fmt.Errorf("embedded seed: %w", err)
	}
	return c, nil
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*models.Catalog, error) {
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath) // #nosec G304 - path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", cleanPath, err)
	}
	return c, nil
}

// Load returns the catalog at path, or the embedded seed when path is empty.
func Load(path string) (*models.Catalog, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// Parse decodes YAML into a catalog. Unknown keys are rejected so typos in
// operator files surface at startup instead of silently dropping records.
func Parse(data []byte) (*models.Catalog, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	for i := range f.BloodBanks {
		f.BloodBanks[i].Services = strings.DedupeAndTrim(f.BloodBanks[i].Services)
	}
	return models.NewCatalog(models.CatalogData{
		Districts:   f.Districts,
		BloodGroups: f.BloodGroups,
		Donors:      f.Donors,
		Requests:    f.Requests,
		BloodBanks:  f.BloodBanks,
		Camps:       f.Camps,
		Helplines:   f.Helplines,
	}), nil
}
