// Package modelstore persists fitted severity models, one artifact per
// vehicle at <root>/<vehicle_id>/severity_model.pkl. The filename is part
// of the on-disk contract; the encoding is opaque to everything outside the
// train/evaluate pair.
package modelstore

import (
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tessellate-io/meshsev/internal/forest"
)

// ErrModelNotFound reports a load for a vehicle that has no persisted model.
var ErrModelNotFound = errors.New("model not found")

const artifactName = "severity_model.pkl"

// Store reads and writes model artifacts under a models root directory.
type Store struct {
	Root string
}

// New creates a Store rooted at root.
func New(root string) *Store {
	return &Store{Root: root}
}

// Path returns the artifact path for a vehicle.
func (s *Store) Path(vehicleID string) string {
	return filepath.Join(s.Root, vehicleID, artifactName)
}

// Save writes the fitted model for a vehicle, creating the directory as
// needed and overwriting any previous artifact wholesale.
func (s *Store) Save(vehicleID string, f *forest.Forest) error {
	dir := filepath.Dir(s.Path(vehicleID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("save model: %w", err)
	}
	out, err := os.Create(s.Path(vehicleID))
	if err != nil {
		return fmt.Errorf("save model: %w", err)
	}
	defer out.Close()

	if err := gob.NewEncoder(out).Encode(f); err != nil {
		return fmt.Errorf("save model: encode: %w", err)
	}
	return nil
}

// Load reads the persisted model for a vehicle. Returns ErrModelNotFound
// when no artifact exists; loading never trains.
func (s *Store) Load(vehicleID string) (*forest.Forest, error) {
	in, err := os.Open(s.Path(vehicleID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrModelNotFound, s.Path(vehicleID))
		}
		return nil, fmt.Errorf("load model: %w", err)
	}
	defer in.Close()

	var f forest.Forest
	if err := gob.NewDecoder(in).Decode(&f); err != nil {
		return nil, fmt.Errorf("load model: decode: %w", err)
	}
	return &f, nil
}
