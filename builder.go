package xmlbuilder

import "fmt"

// Must unwraps a node-returning builder call, panicking if the call
// failed. It is intended for literals known to be valid at compile time:
//
//	root := xmlbuilder.Must(xmlbuilder.Begin("catalog"))
func Must(n *Node, err error) *Node {
	if err != nil {
		panic(err)
	}
	return n
}

// Begin starts a new document and returns its root element. The document
// container itself stays hidden; it can be reached through Document when
// a preamble needs to be added.
func Begin(name string) (*Node, error) {
	doc := &Node{Kind: DocumentNode}
	return doc.Element(name)
}

// Element creates a child element of n and descends into it, returning
// the child so the chain builds depth-first. Any attrs given are applied
// to the child in order, escaping each value, before it is attached;
// nothing is attached if a name or value is rejected.
//
// A document container accepts exactly one element.
func (n *Node) Element(name string, attrs ...Attr) (*Node, error) {
	if err := n.checkKind(elementNodeFlag | documentNodeFlag); err != nil {
		return nil, err
	}
	if n.Kind == DocumentNode {
		for _, c := range n.Children {
			if c.Kind == ElementNode {
				return nil, fmt.Errorf("%w: document already has a root element", ErrInvalidKind)
			}
		}
	}
	if err := CheckName(name); err != nil {
		return nil, err
	}
	child := &Node{Kind: ElementNode, Name: name}
	for _, a := range attrs {
		if _, err := child.Attribute(a.Name, a.Value); err != nil {
			return nil, err
		}
	}
	n.appendChild(child)
	return child, nil
}

// Text appends a text leaf to element n and returns n. The value is
// escaped before it is stored, so the leaf always holds well-formed
// character data.
func (n *Node) Text(value string) (*Node, error) {
	if err := n.checkKind(elementNodeFlag); err != nil {
		return nil, err
	}
	escaped := Escape(value)
	if err := checkCharData(escaped); err != nil {
		return nil, err
	}
	n.appendChild(&Node{Kind: TextNode, Value: escaped})
	return n, nil
}

// CData appends a CDATA leaf to element n and returns n. The value is
// emitted verbatim, without escaping, so it must not contain the "]]>"
// terminator.
func (n *Node) CData(value string) (*Node, error) {
	if err := n.checkKind(elementNodeFlag); err != nil {
		return nil, err
	}
	if err := checkCDataContent(value); err != nil {
		return nil, err
	}
	n.appendChild(&Node{Kind: CDataNode, Value: "<![CDATA[" + value + "]]>"})
	return n, nil
}

// Comment appends a comment leaf to n and returns n. The value is escaped
// and must not contain "--" afterwards. Comments may be placed on elements
// or directly on the document container.
func (n *Node) Comment(value string) (*Node, error) {
	if err := n.checkKind(elementNodeFlag | documentNodeFlag); err != nil {
		return nil, err
	}
	escaped := Escape(value)
	if err := checkCommentContent(escaped); err != nil {
		return nil, err
	}
	n.appendChild(&Node{Kind: CommentNode, Value: "<!-- " + escaped + " -->"})
	return n, nil
}

// Attribute sets an attribute on n and returns n. The value is escaped
// before it is stored. Setting a name that already exists overwrites the
// old value but keeps the attribute's position.
func (n *Node) Attribute(name, value string) (*Node, error) {
	if err := n.checkKind(elementNodeFlag | declarationNodeFlag | docTypeNodeFlag); err != nil {
		return nil, err
	}
	if err := CheckName(name); err != nil {
		return nil, err
	}
	escaped := Escape(value)
	if err := checkAttValue(escaped); err != nil {
		return nil, err
	}
	n.setAttr(name, escaped)
	return n, nil
}
