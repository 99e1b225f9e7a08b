package server

import (
	"time"

	"github.com/kbreese-x/cosmograph/cosmo"
	"github.com/kbreese-x/cosmograph/graph"
)

const (
	// MaxClients is the maximum number of concurrent WebSocket clients
	MaxClients = 100

	// ShutdownTimeout is how long to wait for graceful shutdown
	ShutdownTimeout = 10 * time.Second

	// clientSendBuffer is the outbound queue length per client
	clientSendBuffer = 64

	// maxGraphBody caps PUT /api/graph request bodies
	maxGraphBody = 32 << 20
)

// ServerState represents the server lifecycle state
type ServerState int32

const (
	ServerStateRunning  ServerState = iota // Normal operation
	ServerStateDraining                    // Graceful shutdown in progress
	ServerStateStopped                     // Shutdown complete
)

func (s ServerState) String() string {
	switch s {
	case ServerStateRunning:
		return "running"
	case ServerStateDraining:
		return "draining"
	case ServerStateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Outbound websocket message types
const (
	MsgVersion      = "version"
	MsgView         = "view"
	MsgChange       = "change"
	MsgConfig       = "config"
	MsgNodeSelected = "node_selected"
	MsgNodeHovered  = "node_hovered"
	MsgError        = "error"
)

// VersionMessage greets a newly connected client.
type VersionMessage struct {
	Type    string `json:"type"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Preset  string `json:"preset"`
}

// ViewMessage carries a fully resolved view. Sent on connect.
type ViewMessage struct {
	Type   string     `json:"type"`
	Preset string     `json:"preset"`
	View   cosmo.View `json:"view"`
}

// ChangeMessage announces a replaced component value.
type ChangeMessage struct {
	Type  string       `json:"type"`
	Graph *graph.Graph `json:"graph"`
	Stats graph.Stats  `json:"stats"`
	View  cosmo.View   `json:"view"`
}

// ConfigMessage announces a rebuilt options record after a config reload.
type ConfigMessage struct {
	Type    string        `json:"type"`
	Preset  string        `json:"preset"`
	Options cosmo.Options `json:"options"`
}

// NodeMessage reports a node click or hover. Node is null when the pointer left a node.
type NodeMessage struct {
	Type string      `json:"type"`
	Node *graph.Node `json:"node"`
}

// ErrorMessage reports a rejected client message.
type ErrorMessage struct {
	Type  string            `json:"type"`
	Error map[string]string `json:"error"`
}

// clientMessage is anything a browser sends over /ws.
type clientMessage struct {
	Type      string `json:"type"`
	NodeID    string `json:"node_id,omitempty"`
	Verbosity int    `json:"verbosity,omitempty"`
}
