package snapshot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

// datasetNamespace seeds deterministic dataset ids: the same snapshot bytes
// always get the same id, so re-runs leave the manifest untouched.
var datasetNamespace = uuid.MustParse("3f1c8f2a-9d64-4c43-8a6f-54d0a2e1b7c9")

// Manifest describes the snapshots in an output directory.
type Manifest struct {
	Datasets []Dataset `yaml:"datasets" json:"datasets"`
}

// Dataset is one snapshot entry. Digest is the hex blake2b-256 of the file
// and ID is derived from the digest, not from wall-clock time.
type Dataset struct {
	Name   string `yaml:"name" json:"name"`
	File   string `yaml:"file" json:"file"`
	Rows   int    `yaml:"rows" json:"rows"`
	Digest string `yaml:"digest" json:"digest"`
	ID     string `yaml:"id" json:"id"`
}

// WriteManifest hashes each entry's snapshot file in dir, fills in Digest
// and ID, and writes manifest.yaml next to them in the order given.
func WriteManifest(dir string, entries []Dataset) error {
	for i := range entries {
		digest, err := fileDigest(filepath.Join(dir, entries[i].File))
		if err != nil {
			return err
		}
		entries[i].Digest = digest
		entries[i].ID = uuid.NewSHA1(datasetNamespace, []byte(digest)).String()
	}

	data, err := yaml.Marshal(Manifest{Datasets: entries})
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ManifestFile), data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// ReadManifest loads manifest.yaml from dir.
func ReadManifest(dir string) (Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest: %w", err)
	}
	return m, nil
}

func fileDigest(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("digest %s: %w", path, err)
	}
	sum := blake2b.Sum256(data)
	return fmt.Sprintf("%x", sum), nil
}
