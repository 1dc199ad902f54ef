package models

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/rohanthewiz/serr"
	"gopkg.in/yaml.v3"
)

// LoadCatalogFile reads a catalog from disk. The format follows the extension:
// .yaml/.yml, .json, or .msgpack (a snapshot written by WriteSnapshot).
func LoadCatalogFile(path string) (*MemCatalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, serr.Wrap(err, "failed to read catalog file")
	}

	var data CatalogData
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return nil, serr.Wrap(err, "failed to parse YAML catalog")
		}
	case ".json":
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, serr.Wrap(err, "failed to parse JSON catalog")
		}
	case ".msgpack":
		if data, err = DecodeSnapshot(raw); err != nil {
			return nil, err
		}
	default:
		return nil, serr.New("unsupported catalog file extension " + ext)
	}

	// Invariant violations come back unwrapped so callers can errors.As them
	return NewMemCatalog(data)
}

// WriteSnapshot exports c to a msgpack snapshot at path
func WriteSnapshot(path string, c Catalog) error {
	data, err := Export(c)
	if err != nil {
		return err
	}

	b, err := EncodeSnapshot(data)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return serr.Wrap(err, "failed to create snapshot directory")
		}
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return serr.Wrap(err, "failed to write catalog snapshot")
	}
	return nil
}
