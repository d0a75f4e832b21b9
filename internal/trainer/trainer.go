// Package trainer implements the training orchestrator: it aggregates the
// datasets of every discovered first-mesh variant of a vehicle, fits the
// severity classifier, and persists the artifact.
package trainer

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tessellate-io/meshsev/internal/config"
	"github.com/tessellate-io/meshsev/internal/dataset"
	"github.com/tessellate-io/meshsev/internal/discovery"
	"github.com/tessellate-io/meshsev/internal/forest"
	"github.com/tessellate-io/meshsev/internal/mesh"
	"github.com/tessellate-io/meshsev/internal/modelstore"
	"github.com/tessellate-io/meshsev/internal/pipeline"
)

// ErrNoTrainingData reports a vehicle root with zero valid mesh pairs.
var ErrNoTrainingData = errors.New("no training data")

// Trainer orchestrates one training run per vehicle.
type Trainer struct {
	cfg    config.Config
	finder discovery.Finder
	store  *modelstore.Store
}

// New creates a Trainer with the given collaborators.
func New(cfg config.Config, finder discovery.Finder, store *modelstore.Store) *Trainer {
	return &Trainer{cfg: cfg, finder: finder, store: store}
}

// FromConfig creates a Trainer with the default finder and store.
func FromConfig(cfg config.Config) *Trainer {
	return New(cfg, discovery.GlobFinder{}, modelstore.New(cfg.ModelsRoot))
}

// Train runs the full pipeline for one vehicle: discover variants, build
// the aggregate dataset with one shared CAD reference, fit the forest, and
// persist it. Exactly one model artifact is written on success; any failure
// aborts the run with nothing written.
func (t *Trainer) Train(vehicleID string) error {
	slog.Info("training vehicle", "vehicle", vehicleID)

	root := filepath.Join(t.cfg.DataRoot, vehicleID)
	if _, err := os.Stat(root); err != nil {
		return fmt.Errorf("%w: %s", discovery.ErrVehicleNotFound, root)
	}

	// The CAD mesh is loaded once and shared read-only across every
	// variant in this run.
	cadNode, cadElem := discovery.CadFiles(root)
	cadMesh, err := mesh.Load(cadNode, cadElem)
	if err != nil {
		return fmt.Errorf("train %s: cad: %w", vehicleID, err)
	}
	slog.Info("CAD loaded", "nodes", len(cadMesh.Nodes), "elements", len(cadMesh.Elements))

	pairs, err := t.finder.FirstMeshes(root)
	if err != nil {
		return fmt.Errorf("train %s: %w", vehicleID, err)
	}
	slog.Info("discovered first meshes", "count", len(pairs))
	if len(pairs) == 0 {
		return fmt.Errorf("%w for vehicle %s", ErrNoTrainingData, vehicleID)
	}

	var agg dataset.Dataset
	for _, p := range pairs {
		slog.Info("processing mesh", "node_file", filepath.Base(p.NodeFile))

		m, err := mesh.Load(p.NodeFile, p.ElementFile)
		if err != nil {
			return fmt.Errorf("train %s: mesh %s: %w", vehicleID, p.Index, err)
		}
		ds, err := pipeline.Analyze(m, cadMesh)
		if err != nil {
			return fmt.Errorf("train %s: mesh %s: %w", vehicleID, p.Index, err)
		}
		agg.Append(ds)
	}

	slog.Info("fitting model", "samples", agg.Len())

	clf := forest.New(forest.Config{
		NumTrees: t.cfg.Forest.NumTrees,
		MaxDepth: t.cfg.Forest.MaxDepth,
		Seed:     t.cfg.Forest.Seed,
	})
	labels := make([]int, agg.Len())
	for i, l := range agg.Labels {
		labels[i] = int(l)
	}
	if err := clf.Fit(agg.Features, labels); err != nil {
		return fmt.Errorf("train %s: %w", vehicleID, err)
	}

	if err := t.store.Save(vehicleID, clf); err != nil {
		return fmt.Errorf("train %s: %w", vehicleID, err)
	}
	slog.Info("model saved", "path", t.store.Path(vehicleID))
	return nil
}
