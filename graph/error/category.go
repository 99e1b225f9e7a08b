package grapherror

// Category groups errors raised by graph loading, validation and the WebSocket hub
type Category string

const (
	// CategoryLoad indicates a graph file could not be read or decoded
	CategoryLoad Category = "load"

	// CategoryGraph indicates the component value is structurally invalid
	CategoryGraph Category = "graph"

	// CategoryWebSocket indicates WebSocket connection/communication errors
	CategoryWebSocket Category = "websocket"
)

func (c Category) String() string {
	return string(c)
}

// Summary is the description used when an error carries none of its own
func (c Category) Summary() string {
	switch c {
	case CategoryLoad:
		return "graph could not be loaded"
	case CategoryGraph:
		return "graph has invalid nodes or links"
	case CategoryWebSocket:
		return "connection error"
	}
	return "unexpected error"
}

// Load Subcategories
const (
	// SubcategoryLoadRead indicates the file could not be read
	SubcategoryLoadRead = "read"

	// SubcategoryLoadDecode indicates JSON or YAML decoding failed
	SubcategoryLoadDecode = "decode"

	// SubcategoryLoadFormat indicates an unsupported file extension
	SubcategoryLoadFormat = "format"

	// SubcategoryLoadFetch indicates a graph URL was blocked or did not return 200
	SubcategoryLoadFetch = "fetch"
)

// Graph Subcategories
const (
	// SubcategoryGraphMissingID indicates a node without an id
	SubcategoryGraphMissingID = "missing_id"

	// SubcategoryGraphDuplicateID indicates two nodes share an id
	SubcategoryGraphDuplicateID = "duplicate_id"

	// SubcategoryGraphDanglingLink indicates a link endpoint names no node
	SubcategoryGraphDanglingLink = "dangling_link"
)

// WebSocket Subcategories
const (
	// SubcategoryWSUpgrade indicates WebSocket upgrade failed
	SubcategoryWSUpgrade = "upgrade"

	// SubcategoryWSRead indicates error reading from WebSocket
	SubcategoryWSRead = "read"

	// SubcategoryWSWrite indicates error writing to WebSocket
	SubcategoryWSWrite = "write"

	// SubcategoryWSRateLimited indicates a client exceeded its event budget
	SubcategoryWSRateLimited = "rate_limited"
)
