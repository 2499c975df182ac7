package dfs

import "github.com/katalvlaran/netrank/core"

// Components labels the connected components of a graph.
type Components struct {
	// Of maps each node index to its component id. Ids are assigned in
	// order of each component's lowest node index.
	Of []int
	// Sizes holds the node count of each component.
	Sizes []int
}

// ConnectedComponents labels every node of g with its component using a
// forest traversal. Isolated nodes form singleton components.
//
// Complexity: O(n + m).
func ConnectedComponents(g *core.Graph) (*Components, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	c := &Components{Of: make([]int, g.NodeCount())}
	visit := func(v, depth int) error {
		if depth == 0 {
			c.Sizes = append(c.Sizes, 0)
		}
		id := len(c.Sizes) - 1
		c.Of[v] = id
		c.Sizes[id]++
		return nil
	}
	if _, err := DFS(g, "", WithFullTraversal(), WithOnVisit(visit)); err != nil {
		return nil, err
	}

	return c, nil
}

// Count returns the number of components.
func (c *Components) Count() int {
	return len(c.Sizes)
}

// Largest returns the id and size of the biggest component; the lowest id
// wins ties. Both are -1 and 0 for an empty graph.
func (c *Components) Largest() (id, size int) {
	id = -1
	for i, s := range c.Sizes {
		if s > size {
			id, size = i, s
		}
	}
	return id, size
}

// Members returns the labels of component id in node index order.
func (c *Components) Members(g *core.Graph, id int) []string {
	var out []string
	for v, cid := range c.Of {
		if cid == id {
			out = append(out, g.Label(v))
		}
	}
	return out
}
