package xmlbuilder

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"golang.org/x/text/encoding"
)

const defaultBufsize = 2048

// renderConfig collects the rendering knobs for a single ToString or
// WriteTo call. The zero state is compact output on one line.
type renderConfig struct {
	pretty  bool
	indent  string
	newline string
	encoder *encoding.Encoder
}

// RenderOption configures a single call to ToString or WriteTo.
type RenderOption func(*renderConfig)

// WithIndent turns on pretty printing with the defaults: two-space
// indents and "\n" line terminators.
func WithIndent() RenderOption {
	return func(cfg *renderConfig) { cfg.pretty = true }
}

// WithIndentString turns on pretty printing and sets the string repeated
// once per depth level.
func WithIndentString(indent string) RenderOption {
	return func(cfg *renderConfig) {
		cfg.pretty = true
		cfg.indent = indent
	}
}

// WithNewline turns on pretty printing and sets the line terminator.
func WithNewline(newline string) RenderOption {
	return func(cfg *renderConfig) {
		cfg.pretty = true
		cfg.newline = newline
	}
}

// WithEncoding makes WriteTo pass its output through an encoder from the
// golang.org/x/text/encoding package. Runes the target charset cannot
// represent are written as numeric character references. ToString ignores
// the option; in-memory strings are always UTF-8.
func WithEncoding(encoder *encoding.Encoder) RenderOption {
	return func(cfg *renderConfig) { cfg.encoder = encoder }
}

func newRenderConfig(opts []RenderOption) renderConfig {
	cfg := renderConfig{indent: "  ", newline: "\n"}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// printer pairs the buffered output with the active configuration. Write
// errors are cached by the bufio.Writer and surface once from Flush.
type printer struct {
	*bufio.Writer
	cfg renderConfig
}

func (p *printer) indent(depth int) {
	if !p.cfg.pretty {
		return
	}
	for i := 0; i < depth; i++ {
		p.WriteString(p.cfg.indent)
	}
}

func (p *printer) line() {
	if p.cfg.pretty {
		p.WriteString(p.cfg.newline)
	}
}

// render walks the subtree depth-first. Leaves carry pre-rendered markup
// in Value and emit it verbatim; named nodes open a tag, emit attributes
// in insertion order, then either close in the form their kind demands or
// recurse into their children.
func (n *Node) render(p *printer, depth int) {
	switch n.Kind {
	case DocumentNode:
		for _, c := range n.Children {
			c.render(p, depth)
		}

	case TextNode, CDataNode, CommentNode, InstructionNode:
		p.indent(depth)
		p.WriteString(n.Value)
		p.line()

	default:
		p.indent(depth)
		p.WriteByte('<')
		p.WriteString(n.Name)
		for _, a := range n.Attrs {
			p.WriteByte(' ')
			if n.Kind == DocTypeNode {
				p.WriteString(a.Value)
			} else {
				p.WriteString(a.Name)
				p.WriteString(`="`)
				p.WriteString(a.Value)
				p.WriteByte('"')
			}
		}
		if len(n.Children) == 0 {
			switch n.Kind {
			case DeclarationNode:
				p.WriteString("?>")
			case DocTypeNode:
				p.WriteByte('>')
			default:
				p.WriteString("/>")
			}
			p.line()
			return
		}
		p.WriteByte('>')
		p.line()
		for _, c := range n.Children {
			c.render(p, depth+1)
		}
		p.indent(depth)
		p.WriteString("</")
		p.WriteString(n.Name)
		p.WriteByte('>')
		p.line()
	}
}

// ToString renders the subtree rooted at n to a string. With no options
// the output is a single line; WithIndent and friends shape pretty
// printing. Rendering the root element omits the document preamble;
// render the node from Document when the declaration and doctype should
// be included.
func (n *Node) ToString(opts ...RenderOption) string {
	cfg := newRenderConfig(opts)
	cfg.encoder = nil
	var buf bytes.Buffer
	p := &printer{Writer: bufio.NewWriterSize(&buf, defaultBufsize), cfg: cfg}
	n.render(p, 0)
	// a validated tree rendering into memory cannot fail
	_ = p.Flush()
	return buf.String()
}

// String implements fmt.Stringer with the compact single-line form.
func (n *Node) String() string {
	return n.ToString()
}

// WriteTo renders the subtree rooted at n into w, accepting the same
// options as ToString plus WithEncoding. It returns the number of bytes
// written to w, which under an encoder is the transcoded count rather
// than the UTF-8 length.
func (n *Node) WriteTo(w io.Writer, opts ...RenderOption) (int64, error) {
	if w == nil {
		return 0, fmt.Errorf("%w: nil writer", ErrMissingArgument)
	}
	cfg := newRenderConfig(opts)
	cw := &countWriter{w: w}
	var out io.Writer = cw
	if cfg.encoder != nil {
		out = encoding.HTMLEscapeUnsupported(cfg.encoder).Writer(cw)
	}
	p := &printer{Writer: bufio.NewWriterSize(out, defaultBufsize), cfg: cfg}
	n.render(p, 0)
	if err := p.Flush(); err != nil {
		return cw.total, err
	}
	if c, ok := out.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return cw.total, err
		}
	}
	return cw.total, nil
}

type countWriter struct {
	w     io.Writer
	total int64
}

func (c *countWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.total += int64(n)
	return n, err
}
