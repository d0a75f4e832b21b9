// Package evaluator scores a persisted severity model against the
// rule-derived labels of one designated mesh variant.
package evaluator

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tessellate-io/meshsev/internal/config"
	"github.com/tessellate-io/meshsev/internal/discovery"
	"github.com/tessellate-io/meshsev/internal/mesh"
	"github.com/tessellate-io/meshsev/internal/modelstore"
	"github.com/tessellate-io/meshsev/internal/pipeline"
)

// Evaluator orchestrates one evaluation run.
type Evaluator struct {
	cfg   config.Config
	store *modelstore.Store
	out   io.Writer
}

// New creates an Evaluator writing its report to out.
func New(cfg config.Config, store *modelstore.Store, out io.Writer) *Evaluator {
	return &Evaluator{cfg: cfg, store: store, out: out}
}

// FromConfig creates an Evaluator with the default store, reporting to stdout.
func FromConfig(cfg config.Config) *Evaluator {
	return New(cfg, modelstore.New(cfg.ModelsRoot), os.Stdout)
}

// Evaluate loads the vehicle's persisted model, rebuilds the dataset for
// the designated mesh variant through the same rule path used in training,
// and reports accuracy and per-class metrics. Read-only: no artifact is
// written, and a missing model fails before any mesh file is touched.
func (e *Evaluator) Evaluate(vehicleID, meshIdx string) error {
	slog.Info("evaluating", "vehicle", vehicleID, "mesh", meshIdx)

	clf, err := e.store.Load(vehicleID)
	if err != nil {
		return fmt.Errorf("evaluate %s: %w", vehicleID, err)
	}

	root := filepath.Join(e.cfg.DataRoot, vehicleID)
	cadNode, cadElem := discovery.CadFiles(root)
	cadMesh, err := mesh.Load(cadNode, cadElem)
	if err != nil {
		return fmt.Errorf("evaluate %s: cad: %w", vehicleID, err)
	}

	nodeFile, elemFile := discovery.VariantFiles(root, meshIdx)
	m, err := mesh.Load(nodeFile, elemFile)
	if err != nil {
		return fmt.Errorf("evaluate %s: mesh %s: %w", vehicleID, meshIdx, err)
	}

	ds, err := pipeline.Analyze(m, cadMesh)
	if err != nil {
		return fmt.Errorf("evaluate %s: mesh %s: %w", vehicleID, meshIdx, err)
	}

	truth := make([]int, ds.Len())
	for i, l := range ds.Labels {
		truth[i] = int(l)
	}
	predicted := clf.PredictBatch(ds.Features)

	report := Score(truth, predicted)
	if _, err := fmt.Fprint(e.out, report.Format()); err != nil {
		return fmt.Errorf("evaluate %s: report: %w", vehicleID, err)
	}
	return nil
}
