package mesh

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Load reads a node table and an element table and assembles a Mesh.
// Node rows are `id,x,y,z`; element rows are `id,n1,n2,n3[,n4]`. A leading
// header row is tolerated in either file. Element order follows file order.
func Load(nodeFile, elementFile string) (*Mesh, error) {
	nodes, err := loadNodes(nodeFile)
	if err != nil {
		return nil, fmt.Errorf("load mesh: %w", err)
	}
	elements, err := loadElements(elementFile, nodes)
	if err != nil {
		return nil, fmt.Errorf("load mesh: %w", err)
	}
	return New(nodes, elements), nil
}

func loadNodes(path string) (map[NodeID]Vec3, error) {
	rows, err := readTable(path)
	if err != nil {
		return nil, err
	}
	nodes := make(map[NodeID]Vec3, len(rows))
	for i, row := range rows {
		if len(row) < 4 {
			return nil, fmt.Errorf("%s: row %d: want id,x,y,z, got %d fields", path, i+1, len(row))
		}
		id, err := strconv.ParseInt(row[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: node id %q: %w", path, i+1, row[0], err)
		}
		var p Vec3
		for k := 0; k < 3; k++ {
			p[k], err = strconv.ParseFloat(row[k+1], 64)
			if err != nil {
				return nil, fmt.Errorf("%s: row %d: coordinate %q: %w", path, i+1, row[k+1], err)
			}
		}
		nodes[NodeID(id)] = p
	}
	return nodes, nil
}

func loadElements(path string, nodes map[NodeID]Vec3) ([]Element, error) {
	rows, err := readTable(path)
	if err != nil {
		return nil, err
	}
	elements := make([]Element, 0, len(rows))
	for i, row := range rows {
		if len(row) < 4 {
			return nil, fmt.Errorf("%s: row %d: want id and at least 3 nodes, got %d fields", path, i+1, len(row))
		}
		id, err := strconv.ParseInt(row[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: element id %q: %w", path, i+1, row[0], err)
		}
		conn := make([]NodeID, 0, len(row)-1)
		for _, f := range row[1:] {
			if f == "" {
				continue // quad tables pad tri rows with an empty column
			}
			n, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: row %d: node ref %q: %w", path, i+1, f, err)
			}
			if _, ok := nodes[NodeID(n)]; !ok {
				return nil, fmt.Errorf("%s: row %d: element %d references unknown node %d", path, i+1, id, n)
			}
			conn = append(conn, NodeID(n))
		}
		elements = append(elements, Element{ID: ElementID(id), Nodes: conn})
	}
	return elements, nil
}

// readTable reads every CSV record from path, dropping a header row when
// the first field does not parse as a number.
func readTable(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if len(rows) == 0 && len(row) > 0 {
			if _, err := strconv.ParseFloat(row[0], 64); err != nil {
				continue // header
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
