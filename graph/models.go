package graph

import (
	"encoding/json"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/kbreese-x/cosmograph/errors"
)

// Graph is the component value handed to the renderer alongside the options record.
// It is passed through untouched: the config builder never reads or mutates it.
type Graph struct {
	Nodes []Node `json:"nodes" yaml:"nodes"`
	Links []Link `json:"links" yaml:"links"`
}

// Node represents a vertex. ID is the key the renderer uses to correlate nodes
// across frames; every other field of the wire form lands in Attrs.
type Node struct {
	ID    string
	Attrs map[string]interface{}
}

// Link represents an edge between two node IDs
type Link struct {
	Source string
	Target string
	Attrs  map[string]interface{}
}

// Stats provides graph statistics
type Stats struct {
	TotalNodes int `json:"total_nodes"`
	TotalEdges int `json:"total_edges"`
}

// Empty returns a graph whose slices marshal as [] rather than null.
func Empty() *Graph {
	return &Graph{Nodes: []Node{}, Links: []Link{}}
}

// Stats counts nodes and links
func (g *Graph) Stats() Stats {
	return Stats{TotalNodes: len(g.Nodes), TotalEdges: len(g.Links)}
}

// Clone copies the node and link slices. Attribute maps are shared.
func (g *Graph) Clone() *Graph {
	out := &Graph{
		Nodes: make([]Node, len(g.Nodes)),
		Links: make([]Link, len(g.Links)),
	}
	copy(out.Nodes, g.Nodes)
	copy(out.Links, g.Links)
	return out
}

// NodeByID returns the node with the given id
func (g *Graph) NodeByID(id string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// Get returns an attribute by name. "id" always resolves to the node ID.
func (n Node) Get(key string) (interface{}, bool) {
	if key == "id" {
		return n.ID, true
	}
	v, ok := n.Attrs[key]
	return v, ok
}

// Get returns an attribute by name. "source" and "target" resolve to the endpoints.
func (l Link) Get(key string) (interface{}, bool) {
	switch key {
	case "source":
		return l.Source, true
	case "target":
		return l.Target, true
	}
	v, ok := l.Attrs[key]
	return v, ok
}

func (n Node) toMap() map[string]interface{} {
	m := make(map[string]interface{}, len(n.Attrs)+1)
	for k, v := range n.Attrs {
		m[k] = v
	}
	m["id"] = n.ID
	return m
}

func (n *Node) fromMap(m map[string]interface{}) error {
	id, err := stringField(m, "id")
	if err != nil {
		return errors.Wrap(err, "node id")
	}
	n.ID = id
	n.Attrs = attrsWithout(m, "id")
	return nil
}

func (l Link) toMap() map[string]interface{} {
	m := make(map[string]interface{}, len(l.Attrs)+2)
	for k, v := range l.Attrs {
		m[k] = v
	}
	m["source"] = l.Source
	m["target"] = l.Target
	return m
}

func (l *Link) fromMap(m map[string]interface{}) error {
	source, err := stringField(m, "source")
	if err != nil {
		return errors.Wrap(err, "link source")
	}
	target, err := stringField(m, "target")
	if err != nil {
		return errors.Wrap(err, "link target")
	}
	l.Source, l.Target = source, target
	l.Attrs = attrsWithout(m, "source", "target")
	return nil
}

// stringField stringifies m[key]. Numeric ids are common in hand-written
// graph files, so anything cast can render is accepted.
func stringField(m map[string]interface{}, key string) (string, error) {
	raw, ok := m[key]
	if !ok || raw == nil {
		return "", nil
	}
	return cast.ToStringE(raw)
}

func attrsWithout(m map[string]interface{}, keys ...string) map[string]interface{} {
	for _, k := range keys {
		delete(m, k)
	}
	if len(m) == 0 {
		return nil
	}
	return m
}

// MarshalJSON flattens attributes next to the id
func (n Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.toMap())
}

// UnmarshalJSON splits the flat wire form into ID and Attrs
func (n *Node) UnmarshalJSON(data []byte) error {
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	return n.fromMap(m)
}

// MarshalYAML flattens attributes next to the id
func (n Node) MarshalYAML() (interface{}, error) {
	return n.toMap(), nil
}

// UnmarshalYAML splits the flat YAML mapping into ID and Attrs
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	var m map[string]interface{}
	if err := value.Decode(&m); err != nil {
		return err
	}
	return n.fromMap(m)
}

// MarshalJSON flattens attributes next to source and target
func (l Link) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.toMap())
}

// UnmarshalJSON splits the flat wire form into endpoints and Attrs
func (l *Link) UnmarshalJSON(data []byte) error {
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	return l.fromMap(m)
}

// MarshalYAML flattens attributes next to source and target
func (l Link) MarshalYAML() (interface{}, error) {
	return l.toMap(), nil
}

// UnmarshalYAML splits the flat YAML mapping into endpoints and Attrs
func (l *Link) UnmarshalYAML(value *yaml.Node) error {
	var m map[string]interface{}
	if err := value.Decode(&m); err != nil {
		return err
	}
	return l.fromMap(m)
}
