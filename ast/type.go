package ast

// NodeType represents the type of the AST node
type NodeType uint16

// Node types
const (
	nodeTypeValue  NodeType = 128
	nodeTypeVector NodeType = 256

	NodeTypeInt    = nodeTypeValue | 1
	NodeTypeFloat  = nodeTypeValue | 2
	NodeTypeSymbol = nodeTypeValue | 4
	NodeTypeString = nodeTypeValue | 16

	NodeTypeList = nodeTypeVector | 1
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return ""
}

var nodeTypeName = map[NodeType]string{
	NodeTypeInt:    "int",
	NodeTypeFloat:  "float",
	NodeTypeSymbol: "symbol",
	NodeTypeString: "string",
	NodeTypeList:   "list",
}

func nodeTypeByName(name string) (NodeType, bool) {
	for nt, s := range nodeTypeName {
		if s == name {
			return nt, true
		}
	}
	return 0, false
}
