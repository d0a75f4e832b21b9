package mesh

import "sort"

// BuildNeighbors derives element adjacency: two elements are neighbors when
// they share at least two nodes, i.e. an edge. The result maps every element
// with at least one neighbor; isolated elements have no entry. Neighbor
// lists are sorted by element ID for reproducible downstream iteration.
func BuildNeighbors(m *Mesh) NeighborMap {
	// Invert connectivity: node -> elements touching it.
	byNode := make(map[NodeID][]ElementID, len(m.Nodes))
	for _, e := range m.Elements {
		for _, n := range e.Nodes {
			byNode[n] = append(byNode[n], e.ID)
		}
	}

	// Count shared nodes per element pair through the inverted index.
	shared := make(map[ElementID]map[ElementID]int)
	for _, elems := range byNode {
		for i := 0; i < len(elems); i++ {
			for j := i + 1; j < len(elems); j++ {
				a, b := elems[i], elems[j]
				if a == b {
					continue
				}
				if shared[a] == nil {
					shared[a] = make(map[ElementID]int)
				}
				if shared[b] == nil {
					shared[b] = make(map[ElementID]int)
				}
				shared[a][b]++
				shared[b][a]++
			}
		}
	}

	neighbors := make(NeighborMap)
	for eid, counts := range shared {
		for other, n := range counts {
			if n >= 2 {
				neighbors[eid] = append(neighbors[eid], other)
			}
		}
		sort.Slice(neighbors[eid], func(i, j int) bool {
			return neighbors[eid][i] < neighbors[eid][j]
		})
	}
	return neighbors
}
