package xmlbuilder

import "io"

// DodgyWriter fails on demand so WriteTo error paths can be exercised.
type DodgyWriter struct {
	writer     io.Writer
	shouldFail func(b []byte) (fail bool, len int, err error)
}

func (d *DodgyWriter) Write(b []byte) (len int, err error) {
	if fail, len, err := d.shouldFail(b); fail {
		return len, err
	}
	return d.writer.Write(b)
}

// buildScenario assembles <root><a k="v">hi</a><b/></root> the fluent way.
func buildScenario() *Node {
	root := Must(Begin("root"))
	a := Must(root.Element("a", Attr{Name: "k", Value: "v"}))
	up := Must(Must(a.Text("hi")).Up())
	Must(up.Element("b"))
	return root
}
