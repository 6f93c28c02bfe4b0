package xmlbuilder

// Ele is an alias for Element.
func (n *Node) Ele(name string, attrs ...Attr) (*Node, error) { return n.Element(name, attrs...) }

// E is an alias for Element.
func (n *Node) E(name string, attrs ...Attr) (*Node, error) { return n.Element(name, attrs...) }

// Txt is an alias for Text.
func (n *Node) Txt(value string) (*Node, error) { return n.Text(value) }

// T is an alias for Text.
func (n *Node) T(value string) (*Node, error) { return n.Text(value) }

// Dat is an alias for CData.
func (n *Node) Dat(value string) (*Node, error) { return n.CData(value) }

// D is an alias for CData.
func (n *Node) D(value string) (*Node, error) { return n.CData(value) }

// Att is an alias for Attribute.
func (n *Node) Att(name, value string) (*Node, error) { return n.Attribute(name, value) }

// A is an alias for Attribute.
func (n *Node) A(name, value string) (*Node, error) { return n.Attribute(name, value) }

// Com is an alias for Comment.
func (n *Node) Com(value string) (*Node, error) { return n.Comment(value) }

// C is an alias for Comment.
func (n *Node) C(value string) (*Node, error) { return n.Comment(value) }

// U is an alias for Up.
func (n *Node) U() (*Node, error) { return n.Up() }
