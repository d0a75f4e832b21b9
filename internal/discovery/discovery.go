// Package discovery locates the first-mesh variants of a vehicle on disk.
// The filename convention is the on-disk contract: each variant is a pair
// first_mesh_<idx>_NODE.csv / first_mesh_<idx>_ELEMENT.csv inside the
// vehicle root, where <idx> is an arbitrary token.
package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
)

// ErrVehicleNotFound reports a vehicle root that does not exist.
var ErrVehicleNotFound = errors.New("vehicle not found")

// Pair is one validated mesh variant.
type Pair struct {
	Index       string // token extracted from the node filename
	NodeFile    string
	ElementFile string
}

// Finder discovers mesh variants under a vehicle root. The returned order
// is deterministic: repeated runs over unchanged input yield identical
// pair ordering.
type Finder interface {
	FirstMeshes(vehicleRoot string) ([]Pair, error)
}

var nodePattern = regexp.MustCompile(`^first_mesh_(.+)_NODE\.csv$`)

// GlobFinder is the default Finder, matching the fixed naming pattern.
// A node file without its correspondingly indexed element file is skipped.
type GlobFinder struct{}

// FirstMeshes scans vehicleRoot for variant pairs, sorted by node-file path.
func (GlobFinder) FirstMeshes(vehicleRoot string) ([]Pair, error) {
	entries, err := os.ReadDir(vehicleRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrVehicleNotFound, vehicleRoot)
		}
		return nil, fmt.Errorf("discover meshes: %w", err)
	}

	var pairs []Pair
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := nodePattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		idx := m[1]
		elemFile := filepath.Join(vehicleRoot, fmt.Sprintf("first_mesh_%s_ELEMENT.csv", idx))
		if _, err := os.Stat(elemFile); err != nil {
			continue
		}
		pairs = append(pairs, Pair{
			Index:       idx,
			NodeFile:    filepath.Join(vehicleRoot, entry.Name()),
			ElementFile: elemFile,
		})
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].NodeFile < pairs[j].NodeFile })
	return pairs, nil
}

// VariantFiles returns the node/element paths for one designated variant
// index without scanning, for evaluation runs that address a single mesh.
func VariantFiles(vehicleRoot, idx string) (nodeFile, elementFile string) {
	nodeFile = filepath.Join(vehicleRoot, fmt.Sprintf("first_mesh_%s_NODE.csv", idx))
	elementFile = filepath.Join(vehicleRoot, fmt.Sprintf("first_mesh_%s_ELEMENT.csv", idx))
	return nodeFile, elementFile
}

// CadFiles returns the vehicle's CAD table paths.
func CadFiles(vehicleRoot string) (nodeFile, elementFile string) {
	return filepath.Join(vehicleRoot, "cad_NODE.csv"), filepath.Join(vehicleRoot, "cad_ELEMENT.csv")
}
