package xmlbuilder

import (
	"fmt"
	"strings"
)

// Declaration adds an <?xml ... ?> declaration to the document enclosing
// n and returns n. An empty version defaults to "1.0"; an empty encoding
// is omitted. The declaration always becomes the document's first child,
// no matter when it is added.
func (n *Node) Declaration(version, encoding string) (*Node, error) {
	doc := n.Document()
	if doc == nil {
		return nil, fmt.Errorf("xmlbuilder: no enclosing document")
	}
	for _, c := range doc.Children {
		if c.Kind == DeclarationNode {
			return nil, fmt.Errorf("%w: document already has a declaration", ErrInvalidKind)
		}
	}
	if version == "" {
		version = "1.0"
	}
	if err := checkVersion(version); err != nil {
		return nil, err
	}
	if encoding != "" {
		if err := CheckEncoding(encoding); err != nil {
			return nil, err
		}
	}
	dec := &Node{Kind: DeclarationNode, Name: "?xml"}
	if _, err := dec.Attribute("version", version); err != nil {
		return nil, err
	}
	if encoding != "" {
		if _, err := dec.Attribute("encoding", encoding); err != nil {
			return nil, err
		}
	}
	doc.insertChild(0, dec)
	return n, nil
}

// DocType adds a <!DOCTYPE name> node to the document enclosing n and
// returns n. An external ID may be given as a single extra argument in
// one of the two literal forms:
//
//	root.DocType("greeting", `SYSTEM "hello.dtd"`)
//	root.DocType("html", `PUBLIC "-//W3C//DTD XHTML 1.0//EN" "xhtml1.dtd"`)
//
// The doctype is placed after the declaration if one exists, otherwise
// first.
func (n *Node) DocType(name string, externalID ...string) (*Node, error) {
	doc := n.Document()
	if doc == nil {
		return nil, fmt.Errorf("xmlbuilder: no enclosing document")
	}
	for _, c := range doc.Children {
		if c.Kind == DocTypeNode {
			return nil, fmt.Errorf("%w: document already has a doctype", ErrInvalidKind)
		}
	}
	if err := CheckName(name); err != nil {
		return nil, err
	}
	if len(externalID) > 1 {
		return nil, fmt.Errorf("%w: multiple external IDs", ErrInvalidValue)
	}
	dt := &Node{Kind: DocTypeNode, Name: "!DOCTYPE"}
	dt.setAttr(name, name)
	if len(externalID) == 1 {
		if err := checkExternalID(externalID[0]); err != nil {
			return nil, err
		}
		dt.setAttr(externalID[0], externalID[0])
	}
	at := 0
	if len(doc.Children) > 0 && doc.Children[0].Kind == DeclarationNode {
		at = 1
	}
	doc.insertChild(at, dt)
	return n, nil
}

// Instruction adds a <?target content?> processing instruction and
// returns n. On an element the instruction is appended like any other
// child; on the document container it is placed into the prolog, before
// the root element. The target "xml" is reserved for the declaration.
// Content is emitted verbatim and must not contain "?>".
func (n *Node) Instruction(target, content string) (*Node, error) {
	if err := n.checkKind(elementNodeFlag | documentNodeFlag); err != nil {
		return nil, err
	}
	if err := CheckName(target); err != nil {
		return nil, err
	}
	if strings.EqualFold(target, "xml") {
		return nil, fmt.Errorf("%w: instruction target %q is reserved", ErrInvalidName, target)
	}
	if strings.Contains(content, "?>") {
		return nil, fmt.Errorf("%w: instruction %q", ErrInvalidValue, content)
	}
	value := "<?" + target
	if content != "" {
		value += " " + content
	}
	value += "?>"
	child := &Node{Kind: InstructionNode, Name: target, Value: value}
	if n.Kind == DocumentNode {
		at := len(n.Children)
		for i, c := range n.Children {
			if c.Kind == ElementNode {
				at = i
				break
			}
		}
		n.insertChild(at, child)
	} else {
		n.appendChild(child)
	}
	return n, nil
}
