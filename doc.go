/*
Package xmlbuilder assembles XML 1.0 documents as an in-memory tree and
renders them to markup.

Every string that enters the tree is validated against the XML 1.0
grammar first: element and attribute names against the Name production,
attribute values and text against their content productions, comments
and CDATA sections against their delimiter rules. A tree you hold is a
tree that will serialize to well-formed markup.

# Building

Begin creates a document with a single root element and returns the
root. Element descends, Up ascends, and the leaf operations (Text,
CData, Comment, Attribute) return the node they were called on so
siblings chain naturally:

	root, err := xmlbuilder.Begin("catalog")
	if err != nil { ... }
	item, err := root.Element("item", xmlbuilder.Attr{Name: "sku", Value: "610"})
	if err != nil { ... }
	_, err = item.Text("Field Notes")

Checking every error gets old in larger procedures. Two helpers cut the
boilerplate down. Must panics, in the regexp.MustCompile tradition, and
suits known-good literals:

	root := xmlbuilder.Must(xmlbuilder.Begin("catalog"))
	item := xmlbuilder.Must(root.Element("item"))

ErrCollector holds on to the first error of a series and lets you defer
the check to the end of a controlled block:

	ec := &xmlbuilder.ErrCollector{}
	defer ec.Panic()
	root := ec.Node(xmlbuilder.Begin("catalog"))
	item := ec.Node(root.Element("item"))
	ec.Node(item.Text("Field Notes"))

Short aliases are also available for dense assembly code: Ele/E, Txt/T,
Dat/D, Att/A, Com/C and U are pure synonyms for Element, Text, CData,
Attribute, Comment and Up.

# Validation and errors

Operations validate before they mutate. When a check fails the call
returns an error and the tree is exactly as it was; there is no partial
insertion to unwind. Errors wrap one of the package sentinels, so
classify with errors.Is:

	if _, err := root.Element("1bad"); errors.Is(err, xmlbuilder.ErrInvalidName) {
		...
	}

Attribute values, text and comment content are escaped on the way in:
&, <, >, ' and " become their entity references, ampersand first so the
references the other replacements produce are not re-escaped. CDATA
content is the exception; it is stored and emitted verbatim, and only a
"]]>" sequence is refused.

Names are restricted to the Basic Multilingual Plane. Supplementary
plane characters are rejected even where the XML specification would
permit them.

# Rendering

ToString renders a node and everything beneath it. The default output
is a single line; options enable and shape pretty printing:

	s := root.ToString()
	s = root.ToString(xmlbuilder.WithIndent())
	s = root.ToString(xmlbuilder.WithIndentString("\t"), xmlbuilder.WithNewline("\r\n"))

Node implements fmt.Stringer with the single-line form, and WriteTo
streams the markup into an io.Writer, returning the byte count:

	n, err := root.WriteTo(f)

Childless elements self-close as <tag/>. An element with children, even
a single empty text leaf, is always closed with a full </tag>.

# Document preamble

The document node enclosing the root carries declarations that precede
it. Declaration inserts the "?xml" node, DocType the "!DOCTYPE" node,
and Instruction a processing instruction; all three are reachable from
any node in the tree:

	root := xmlbuilder.Must(xmlbuilder.Begin("html"))
	xmlbuilder.Must(root.Declaration("1.0", "UTF-8"))
	xmlbuilder.Must(root.DocType("html"))
	fmt.Println(root.Document().ToString())

Output:

	<?xml version="1.0" encoding="UTF-8"?><!DOCTYPE html><html/>

Doctype attributes serialize as bare tokens rather than name="value"
pairs; DocType("greeting", `SYSTEM "hello.dtd"`) becomes:

	<!DOCTYPE greeting SYSTEM "hello.dtd">

Rendering the root alone omits the preamble; render the document node
when you want the whole thing.

# Encodings

WriteTo supports encoders from the golang.org/x/text/encoding package.
Strings in the tree stay UTF-8; bytes are converted on the fly and
runes the target charset cannot represent are written as numeric
character references.

	enc := charmap.Windows1252.NewEncoder()
	root := xmlbuilder.Must(xmlbuilder.Begin("doc"))
	xmlbuilder.Must(root.Declaration("1.0", "windows-1252"))
	xmlbuilder.Must(root.Text("Résumé"))
	_, err := root.Document().WriteTo(f, xmlbuilder.WithEncoding(enc))

# Concurrency

The grammar table is computed once at package load and is read-only
afterwards, so it is safe to share. Individual trees are not safe for
concurrent mutation; callers coordinate their own access.
*/
package xmlbuilder
