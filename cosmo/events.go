package cosmo

import (
	"github.com/kbreese-x/cosmograph/errors"
	"github.com/kbreese-x/cosmograph/graph"
)

// EventType names a pointer event reported by a browser client.
type EventType string

const (
	EventClick    EventType = "click"     // node_id empty for a click on empty space
	EventHover    EventType = "hover"     // pointer entered a node
	EventHoverEnd EventType = "hover_end" // pointer left the hovered node
)

// PointerEvent is the wire form of a renderer interaction.
type PointerEvent struct {
	Type   EventType `json:"type"`
	NodeID string    `json:"node_id,omitempty"`
}

// Dispatch routes ev into cfg's callbacks, resolving node ids against g.
// It reports whether a callback ran; configs without callbacks ignore events.
func (c Config) Dispatch(ev PointerEvent, g *graph.Graph) (bool, error) {
	switch ev.Type {
	case EventClick:
		if c.OnClick == nil {
			return false, nil
		}
		if ev.NodeID == "" {
			c.OnClick(nil)
			return true, nil
		}
		n, err := lookupNode(g, ev.NodeID)
		if err != nil {
			return false, err
		}
		c.OnClick(&n)
		return true, nil

	case EventHover:
		if c.OnNodeMouseOver == nil {
			return false, nil
		}
		n, err := lookupNode(g, ev.NodeID)
		if err != nil {
			return false, err
		}
		c.OnNodeMouseOver(n)
		return true, nil

	case EventHoverEnd:
		if c.OnNodeMouseOut == nil {
			return false, nil
		}
		c.OnNodeMouseOut()
		return true, nil

	default:
		return false, errors.NewInvalidRequestError("unknown event type %q", ev.Type)
	}
}

func lookupNode(g *graph.Graph, id string) (graph.Node, error) {
	if id == "" {
		return graph.Node{}, errors.NewInvalidRequestError("event requires node_id")
	}
	if g != nil {
		if n, ok := g.NodeByID(id); ok {
			return n, nil
		}
	}
	return graph.Node{}, errors.Wrapf(errors.ErrNotFound, "node %q", id)
}
