// Package forest implements the severity classifier: a seeded ensemble of
// CART decision trees trained by bootstrap aggregation with Gini splits and
// per-node feature subsampling, predicting by majority vote. All randomness
// flows from a single seeded source and training is strictly sequential, so
// identical data and seed produce an identical fitted ensemble.
package forest

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// Config holds the fixed training hyperparameters.
type Config struct {
	NumTrees int
	MaxDepth int
	Seed     int64
}

// DefaultConfig mirrors the parameters the labeling rules were tuned
// against: 200 trees, depth 20, seed 42.
func DefaultConfig() Config {
	return Config{NumTrees: 200, MaxDepth: 20, Seed: 42}
}

// Node is one decision node in flattened form. Left/Right index into the
// owning tree's node slice; a negative Left marks a leaf, whose Class holds
// the predicted class.
type Node struct {
	Feature   int
	Threshold float32
	Left      int32
	Right     int32
	Class     int
}

// Tree is one fitted decision tree. Node 0 is the root.
type Tree struct {
	Nodes []Node
}

// Forest is the fitted ensemble. All fields are exported so the artifact
// can be serialized wholesale.
type Forest struct {
	Config      Config
	NumFeatures int
	Classes     []int
	Trees       []Tree
}

// ErrEmptyTrainingSet reports a Fit call with no rows.
var ErrEmptyTrainingSet = errors.New("forest: empty training set")

// New creates an unfitted forest with the given hyperparameters.
func New(cfg Config) *Forest {
	if cfg.NumTrees <= 0 {
		cfg.NumTrees = DefaultConfig().NumTrees
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultConfig().MaxDepth
	}
	return &Forest{Config: cfg}
}

// Fit trains the ensemble on index-aligned rows X and class labels y,
// replacing any previous fit.
func (f *Forest) Fit(x [][]float32, y []int) error {
	if len(x) == 0 {
		return ErrEmptyTrainingSet
	}
	if len(x) != len(y) {
		return fmt.Errorf("forest: %d rows but %d labels", len(x), len(y))
	}
	f.NumFeatures = len(x[0])
	for i, row := range x {
		if len(row) != f.NumFeatures {
			return fmt.Errorf("forest: row %d has %d features, want %d", i, len(row), f.NumFeatures)
		}
	}

	f.Classes = uniqueClasses(y)
	rng := rand.New(rand.NewSource(f.Config.Seed))
	mtry := max(1, int(math.Sqrt(float64(f.NumFeatures))))

	f.Trees = make([]Tree, f.Config.NumTrees)
	for t := range f.Trees {
		sample := make([]int, len(x))
		for i := range sample {
			sample[i] = rng.Intn(len(x))
		}
		b := &treeBuilder{x: x, y: y, rng: rng, mtry: mtry, maxDepth: f.Config.MaxDepth}
		b.grow(sample, 0)
		f.Trees[t] = Tree{Nodes: b.nodes}
	}
	return nil
}

// Predict returns the majority-vote class for one feature row. Ties break
// toward the lower class value.
func (f *Forest) Predict(row []float32) int {
	votes := make(map[int]int, len(f.Classes))
	for i := range f.Trees {
		votes[f.Trees[i].predict(row)]++
	}
	best, bestVotes := 0, -1
	for _, c := range f.Classes {
		if votes[c] > bestVotes {
			best, bestVotes = c, votes[c]
		}
	}
	return best
}

// PredictBatch predicts every row, preserving order.
func (f *Forest) PredictBatch(rows [][]float32) []int {
	out := make([]int, len(rows))
	for i, row := range rows {
		out[i] = f.Predict(row)
	}
	return out
}

func (t *Tree) predict(row []float32) int {
	i := int32(0)
	for {
		n := t.Nodes[i]
		if n.Left < 0 {
			return n.Class
		}
		if row[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}

type treeBuilder struct {
	x        [][]float32
	y        []int
	rng      *rand.Rand
	mtry     int
	maxDepth int
	nodes    []Node
}

// grow appends the subtree for the given sample indices and returns its
// root's index.
func (b *treeBuilder) grow(idx []int, depth int) int32 {
	if depth >= b.maxDepth || len(idx) < 2 || pure(b.y, idx) {
		return b.leaf(idx)
	}

	feature, threshold, ok := b.bestSplit(idx)
	if !ok {
		return b.leaf(idx)
	}

	var left, right []int
	for _, i := range idx {
		if b.x[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return b.leaf(idx)
	}

	at := int32(len(b.nodes))
	b.nodes = append(b.nodes, Node{Feature: feature, Threshold: threshold})
	l := b.grow(left, depth+1)
	r := b.grow(right, depth+1)
	b.nodes[at].Left = l
	b.nodes[at].Right = r
	return at
}

func (b *treeBuilder) leaf(idx []int) int32 {
	at := int32(len(b.nodes))
	b.nodes = append(b.nodes, Node{Left: -1, Right: -1, Class: majority(b.y, idx)})
	return at
}

// bestSplit scans mtry randomly chosen features for the threshold with the
// lowest weighted Gini impurity.
func (b *treeBuilder) bestSplit(idx []int) (feature int, threshold float32, ok bool) {
	parent := gini(b.y, idx)
	bestGain := 0.0

	numFeatures := len(b.x[idx[0]])
	order := b.rng.Perm(numFeatures)
	for _, fi := range order[:b.mtry] {
		sorted := append([]int(nil), idx...)
		sort.Slice(sorted, func(i, j int) bool { return b.x[sorted[i]][fi] < b.x[sorted[j]][fi] })

		leftCounts := map[int]int{}
		rightCounts := map[int]int{}
		for _, i := range sorted {
			rightCounts[b.y[i]]++
		}

		for cut := 0; cut < len(sorted)-1; cut++ {
			c := b.y[sorted[cut]]
			leftCounts[c]++
			rightCounts[c]--

			lo, hi := b.x[sorted[cut]][fi], b.x[sorted[cut+1]][fi]
			if lo == hi {
				continue // no separating threshold between equal values
			}

			nl, nr := cut+1, len(sorted)-cut-1
			impurity := (float64(nl)*giniCounts(leftCounts, nl) +
				float64(nr)*giniCounts(rightCounts, nr)) / float64(len(sorted))
			if gain := parent - impurity; gain > bestGain+1e-12 {
				bestGain = gain
				feature = fi
				threshold = (lo + hi) / 2
				ok = true
			}
		}
	}
	return feature, threshold, ok
}

func pure(y []int, idx []int) bool {
	for _, i := range idx[1:] {
		if y[i] != y[idx[0]] {
			return false
		}
	}
	return true
}

func majority(y []int, idx []int) int {
	counts := map[int]int{}
	for _, i := range idx {
		counts[y[i]]++
	}
	best, bestCount := 0, -1
	for _, c := range sortedKeys(counts) {
		if counts[c] > bestCount {
			best, bestCount = c, counts[c]
		}
	}
	return best
}

func gini(y []int, idx []int) float64 {
	counts := map[int]int{}
	for _, i := range idx {
		counts[y[i]]++
	}
	return giniCounts(counts, len(idx))
}

func giniCounts(counts map[int]int, n int) float64 {
	if n == 0 {
		return 0
	}
	sum := 1.0
	// Iterate in sorted class order: float accumulation order must not
	// depend on map iteration, or refits stop being bit-identical.
	for _, k := range sortedKeys(counts) {
		p := float64(counts[k]) / float64(n)
		sum -= p * p
	}
	return sum
}

func uniqueClasses(y []int) []int {
	seen := map[int]struct{}{}
	for _, c := range y {
		seen[c] = struct{}{}
	}
	return sortedKeys2(seen)
}

func sortedKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func sortedKeys2(m map[int]struct{}) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
