package trellis

type nodeID int32

const noNode nodeID = -1

type nodeKind uint8

const (
	rootNodeKind nodeKind = iota
	literalNodeKind
	paramNodeKind
	trailingNodeKind
)

func (k nodeKind) String() string {
	switch k {
	case rootNodeKind:
		return "root"
	case literalNodeKind:
		return "literal"
	case paramNodeKind:
		return "param"
	case trailingNodeKind:
		return "trailing"
	}
	return "unknown"
}

// node is the match state after consuming a prefix of segments. Children are
// referenced by their index in the owning table's arena.
type node struct {
	kind nodeKind
	// key is the literal value for literal nodes, or the pattern token that
	// created a param or trailing node.
	key string
	// name is the capture key for param and trailing nodes.
	name string

	literals map[string]nodeID
	// params holds parameter children keyed by the total segment count of
	// the patterns that reach them.
	params map[int]nodeID
	// openParams holds parameter children of patterns ending in a trailing
	// wildcard, keyed by the minimum segment count those patterns accept.
	openParams map[int]nodeID
	trailing   nodeID

	handlers []Handler
	route    string
	binding  int
}

func newNode(kind nodeKind, key, name string) node {
	return node{
		kind:     kind,
		key:      key,
		name:     name,
		trailing: noNode,
		binding:  -1,
	}
}

func (n *node) isTerminal() bool {
	return len(n.handlers) != 0
}

// arena owns every node of every method trie in a table.
type arena struct {
	nodes []node
}

func (a *arena) alloc(kind nodeKind, key, name string) nodeID {
	a.nodes = append(a.nodes, newNode(kind, key, name))
	return nodeID(len(a.nodes) - 1)
}

func (a *arena) get(id nodeID) *node {
	return &a.nodes[id]
}

func (a *arena) literalChild(parent nodeID, key string) nodeID {
	if child, ok := a.nodes[parent].literals[key]; ok {
		return child
	}
	child := a.alloc(literalNodeKind, key, "")
	if a.nodes[parent].literals == nil {
		a.nodes[parent].literals = map[string]nodeID{}
	}
	a.nodes[parent].literals[key] = child
	return child
}

// paramChild returns the parameter child of parent keyed by length, creating
// it when missing. open selects the table for patterns that end in a
// trailing wildcard.
func (a *arena) paramChild(parent nodeID, length int, open bool, currentSegment segment) nodeID {
	children := a.nodes[parent].params
	if open {
		children = a.nodes[parent].openParams
	}
	if child, ok := children[length]; ok {
		return child
	}

	child := a.alloc(paramNodeKind, currentSegment.value, currentSegment.name)
	if children == nil {
		children = map[int]nodeID{}
		if open {
			a.nodes[parent].openParams = children
		} else {
			a.nodes[parent].params = children
		}
	}
	children[length] = child
	return child
}

func (a *arena) trailingChild(parent nodeID) nodeID {
	if child := a.nodes[parent].trailing; child != noNode {
		return child
	}
	child := a.alloc(trailingNodeKind, trailingWildcardToken, trailingWildcardToken)
	a.nodes[parent].trailing = child
	return child
}
