package xmlbuilder

import "fmt"

// Attr is a single name="value" pair attached to a Node. Value holds the
// escaped form; Attribute escapes before storing, and the renderer writes
// Value out verbatim.
type Attr struct {
	Name  string
	Value string
}

// Node is a single node in a document tree. Nodes are created and wired
// together by Begin and the builder methods; the zero value is inert but
// the fields are exported so trees can be assembled or inspected by hand
// when the fluent surface is not enough.
//
// Attrs preserves insertion order. Children are owned exclusively by their
// parent; sharing a *Node between two trees is not supported.
type Node struct {
	Kind     NodeKind
	Name     string
	Value    string
	Attrs    []Attr
	Children []*Node
	parent   *Node
}

// Parent returns the node above this one, or nil if there isn't one.
// The document container created by Begin is not navigable, so the root
// element's Parent is nil.
func (n *Node) Parent() *Node {
	if n.parent == nil || n.parent.Kind == DocumentNode {
		return nil
	}
	return n.parent
}

// Up ascends to the parent node so a fluent chain can continue there.
// It fails with ErrNoParent on the root element and on detached nodes.
func (n *Node) Up() (*Node, error) {
	p := n.Parent()
	if p == nil {
		if n.Name != "" {
			return nil, fmt.Errorf("%w: %s %q", ErrNoParent, n.Kind.Name(), n.Name)
		}
		return nil, fmt.Errorf("%w: %s", ErrNoParent, n.Kind.Name())
	}
	return p, nil
}

// Root ascends to the topmost navigable node, which for a tree made by
// Begin is the root element. Calling Root on a detached fragment returns
// the fragment's top node.
func (n *Node) Root() *Node {
	cur := n
	for {
		p := cur.Parent()
		if p == nil {
			return cur
		}
		cur = p
	}
}

// Document returns the document container enclosing this node, or nil if
// the node is not attached to one. The container is where Declaration and
// DocType place the document preamble.
func (n *Node) Document() *Node {
	cur := n
	for cur != nil {
		if cur.Kind == DocumentNode {
			return cur
		}
		cur = cur.parent
	}
	return nil
}

// setAttr overwrites the attribute named name in place if it exists,
// keeping its position, and appends otherwise.
func (n *Node) setAttr(name, value string) {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
}

func (n *Node) appendChild(c *Node) {
	c.parent = n
	n.Children = append(n.Children, c)
}

func (n *Node) insertChild(at int, c *Node) {
	c.parent = n
	n.Children = append(n.Children, nil)
	copy(n.Children[at+1:], n.Children[at:])
	n.Children[at] = c
}

func (n *Node) checkKind(allowed nodeFlag) error {
	if n.Kind.flag()&allowed == 0 {
		return fmt.Errorf("%w %s, expected %s", ErrInvalidKind, n.Kind.Name(), allowed.names())
	}
	return nil
}
