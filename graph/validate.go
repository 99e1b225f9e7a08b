package graph

import (
	grapherror "github.com/kbreese-x/cosmograph/graph/error"
)

// Validate checks structural integrity: every node has a non-empty unique id and
// every link endpoint names an existing node. The renderer tolerates broken
// input, so this is opt-in hardening for values accepted over the API.
func (g *Graph) Validate() error {
	seen := make(map[string]struct{}, len(g.Nodes))
	for i, n := range g.Nodes {
		if n.ID == "" {
			return grapherror.Newf(grapherror.CategoryGraph, grapherror.SubcategoryGraphMissingID,
				"node at index %d has no id", i).With("index", i)
		}
		if _, dup := seen[n.ID]; dup {
			return grapherror.Newf(grapherror.CategoryGraph, grapherror.SubcategoryGraphDuplicateID,
				"duplicate node id %q", n.ID).With("node_id", n.ID)
		}
		seen[n.ID] = struct{}{}
	}

	for i, l := range g.Links {
		for _, end := range []string{l.Source, l.Target} {
			if _, ok := seen[end]; !ok {
				return grapherror.Newf(grapherror.CategoryGraph, grapherror.SubcategoryGraphDanglingLink,
					"link at index %d references unknown node %q", i, end).
					With("index", i).
					With("node_id", end)
			}
		}
	}
	return nil
}
