package xmlbuilder

import (
	"errors"
	"fmt"
	"runtime"
)

// Error kinds reported by the builder. Operations wrap these with the
// offending literal, so classify with errors.Is:
//
//	if _, err := root.Element("1bad"); errors.Is(err, xmlbuilder.ErrInvalidName) {
//		...
//	}
var (
	// ErrMissingArgument is reported when an operation that needs an
	// argument receives none, such as WriteTo with a nil writer.
	ErrMissingArgument = errors.New("xmlbuilder: missing argument")

	// ErrInvalidName is reported when an element, attribute, doctype or
	// processing instruction name fails the Name production.
	ErrInvalidName = errors.New("xmlbuilder: invalid name")

	// ErrInvalidValue is reported when text, an attribute value, comment,
	// CDATA or instruction content, a declaration field or an external ID
	// fails its grammar production.
	ErrInvalidValue = errors.New("xmlbuilder: invalid value")

	// ErrNoParent is reported by Up when the node has nothing navigable
	// above it. The document container does not count as a parent.
	ErrNoParent = errors.New("xmlbuilder: node has no parent")

	// ErrInvalidKind is reported when an operation is applied to a node
	// kind that cannot support it, such as adding children to a text leaf
	// or a second root element to the document.
	ErrInvalidKind = errors.New("xmlbuilder: unexpected node kind")
)

/*
ErrCollector allows you to defer raising or accumulating an error
until after a series of builder calls.

ErrCollector is intended to help cut down on boilerplate like this:

	root, err := xmlbuilder.Begin("catalog")
	if err != nil {
		return err
	}
	item, err := root.Element("item")
	if err != nil {
		return err
	}
	if _, err := item.Attribute("sku", "610"); err != nil {
		return err
	}
	if _, err := item.Text("Field Notes"); err != nil {
		return err
	}

For any sufficiently complex assembly, this is patently ridiculous.
ErrCollector allows you to assume that it's ok to keep building until the
end of a controlled block, then fail with the first error that occurred:

	func catalog() (err error) {
		ec := &xmlbuilder.ErrCollector{}
		defer ec.Set(&err)
		root := ec.Node(xmlbuilder.Begin("catalog"))
		item := ec.Node(root.Element("item"))
		ec.Node(item.Attribute("sku", "610"))
		ec.Node(item.Text("Field Notes"))
		return
	}

If you want to panic instead, substitute `defer ec.Set(&err)` with
`defer ec.Panic()`.

It is entirely the responsibility of the library's user to remember to call
either `ec.Set()` or `ec.Panic()`. If you don't, you'll be swallowing
errors.
*/
type ErrCollector struct {
	File  string
	Line  int
	Index int
	Err   error
}

// Error implements the error interface.
func (e *ErrCollector) Error() string {
	return fmt.Sprintf("error at %s:%d #%d - %v", e.File, e.Line, e.Index, e.Err)
}

// Unwrap exposes the collected error so errors.Is can classify it against
// the package sentinels.
func (e *ErrCollector) Unwrap() error {
	return e.Err
}

// Node collects err and passes n through untouched, so node-returning
// builder calls can flow through the collector:
//
//	ec := &xmlbuilder.ErrCollector{}
//	defer ec.Panic()
//	root := ec.Node(xmlbuilder.Begin("catalog"))
//	ec.Node(root.Text("hi"))
//
// Once an error has been collected, later errors are discarded. A failed
// call returns a nil node; it is the caller's responsibility to only chain
// onto nodes that are known to exist regardless of earlier failures.
func (e *ErrCollector) Node(n *Node, err error) *Node {
	if err != nil && e.Err == nil {
		_, file, line, _ := runtime.Caller(1)
		e.Err = err
		e.Index = 1
		e.File = file
		e.Line = line
	}
	return n
}

// Panic causes the collector to panic if any error has been collected.
//
// This should be called in a defer:
//
//	func pants() {
//		ec := &xmlbuilder.ErrCollector{}
//		defer ec.Panic()
//		ec.Do(fmt.Errorf("this will panic at the end"))
//		fmt.Printf("This will print")
//	}
func (e *ErrCollector) Panic() {
	if e.Err != nil {
		panic(e)
	}
}

// Set assigns the collector's internal error to an external error variable.
//
// This should be called in a defer with a named return to allow an error
// to be easily returned if one is collected:
//
//	func pants() (err error) {
//		ec := &xmlbuilder.ErrCollector{}
//		defer ec.Set(&err)
//		ec.Do(fmt.Errorf("this error will be returned by the pants function"))
//		fmt.Printf("This will print")
//	}
func (e *ErrCollector) Set(err *error) {
	if e.Err != nil {
		*err = e
	}
}

// Do collects the first error in a list of errors and holds on to it.
//
// If you pass the result of multiple functions to Do, they will not be
// short circuited on failure - the first error is retained by the collector
// and the rest are discarded. It is only intended to be used when you know
// that subsequent calls after the first error are safe to make.
func (e *ErrCollector) Do(errs ...error) {
	if e.Err != nil {
		return
	}
	for i, err := range errs {
		if err != nil {
			_, file, line, _ := runtime.Caller(1)
			e.Err = err
			e.Index = i + 1
			e.File = file
			e.Line = line
			return
		}
	}
}

// Must collects the first error in a list of errors and panics with it.
func (e *ErrCollector) Must(errs ...error) {
	for i, err := range errs {
		if err != nil {
			_, file, line, _ := runtime.Caller(1)
			e.Err = err
			e.Index = i + 1
			e.File = file
			e.Line = line
			panic(e)
		}
	}
}
