package xmlbuilder

import (
	"fmt"
	"strings"
)

// NodeKind discriminates the variants a Node can take. Builder operations
// and the serializer dispatch on it rather than on field emptiness.
type NodeKind int

// Name returns a stable name for the NodeKind. If the NodeKind is invalid,
// the Name() will be empty. String() returns a human-readable representation
// for information purposes; if a stable string is required, use this instead.
func (n NodeKind) Name() string {
	if int(n) < nodeKindLength {
		return kindName[n]
	}
	return ""
}

// String returns a human-readable representation of the NodeKind. If a stable
// string is required, use Name().
func (n NodeKind) String() string {
	s := n.Name()
	if s == "" {
		s = "<unknown>"
	}
	return fmt.Sprintf("%s(%d)", s, n)
}

func (n NodeKind) flag() nodeFlag {
	return kindFlag[n]
}

// Range of allowed NodeKind values.
const (
	NoNode NodeKind = iota
	DocumentNode
	ElementNode
	TextNode
	CDataNode
	CommentNode
	InstructionNode
	DeclarationNode
	DocTypeNode

	nodeKindLength int = iota
)

var kindName = [nodeKindLength]string{
	NoNode:          "none",
	DocumentNode:    "document",
	ElementNode:     "elem",
	TextNode:        "text",
	CDataNode:       "cdata",
	CommentNode:     "comment",
	InstructionNode: "pi",
	DeclarationNode: "declaration",
	DocTypeNode:     "doctype",
}

type nodeFlag int

const (
	noNodeFlag nodeFlag = 1 << iota
	documentNodeFlag
	elementNodeFlag
	textNodeFlag
	cDataNodeFlag
	commentNodeFlag
	instructionNodeFlag
	declarationNodeFlag
	docTypeNodeFlag
)

var kindFlag = [nodeKindLength]nodeFlag{
	NoNode:          noNodeFlag,
	DocumentNode:    documentNodeFlag,
	ElementNode:     elementNodeFlag,
	TextNode:        textNodeFlag,
	CDataNode:       cDataNodeFlag,
	CommentNode:     commentNodeFlag,
	InstructionNode: instructionNodeFlag,
	DeclarationNode: declarationNodeFlag,
	DocTypeNode:     docTypeNodeFlag,
}

func (set nodeFlag) names() string {
	names := make([]string, 0, 4)
	for i := 0; i < nodeKindLength; i++ {
		nk := NodeKind(i)
		if set&nk.flag() != 0 {
			names = append(names, nk.Name())
		}
	}
	return strings.Join(names, ", ")
}
