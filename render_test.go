package xmlbuilder

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	tt "github.com/shabbyrobe/xmlbuilder/testtool"
)

func TestPretty(t *testing.T) {
	exp := strings.Join([]string{
		"<root>",
		`  <a k="v">`,
		"    hi",
		"  </a>",
		"  <b/>",
		"</root>",
		"",
	}, "\n")
	tt.Equals(t, exp, buildScenario().ToString(WithIndent()))
}

func TestPrettyCustomIndentAndNewline(t *testing.T) {
	exp := strings.Join([]string{
		"<root>",
		"\t<a k=\"v\">",
		"\t\thi",
		"\t</a>",
		"\t<b/>",
		"</root>",
		"",
	}, "\r\n")
	got := buildScenario().ToString(WithIndentString("\t"), WithNewline("\r\n"))
	tt.Equals(t, exp, got)
}

func TestPrettyDocument(t *testing.T) {
	root := Must(Begin("html"))
	Must(root.Declaration("1.0", "UTF-8"))
	Must(root.DocType("html"))
	head := Must(root.Element("head"))
	Must(Must(head.Element("title")).Text("T"))

	exp := strings.Join([]string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		"<!DOCTYPE html>",
		"<html>",
		"  <head>",
		"    <title>",
		"      T",
		"    </title>",
		"  </head>",
		"</html>",
		"",
	}, "\n")
	tt.Equals(t, exp, root.Document().ToString(WithIndent()))
}

// tokenize reduces markup to its structural tokens, dropping the
// whitespace pretty printing introduces.
func tokenize(t *testing.T, s string) []string {
	dec := xml.NewDecoder(strings.NewReader(s))
	var out []string
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		tt.OK(t, err)
		switch v := tok.(type) {
		case xml.StartElement:
			parts := []string{v.Name.Local}
			for _, a := range v.Attr {
				parts = append(parts, a.Name.Local+"="+a.Value)
			}
			out = append(out, "start "+strings.Join(parts, " "))
		case xml.EndElement:
			out = append(out, "end "+v.Name.Local)
		case xml.CharData:
			if text := strings.TrimSpace(string(v)); text != "" {
				out = append(out, "text "+text)
			}
		case xml.Comment:
			out = append(out, "comment "+strings.TrimSpace(string(v)))
		}
	}
	return out
}

func TestPrettyStructureUnchanged(t *testing.T) {
	root := Must(Begin("root"))
	a := Must(root.Element("a", Attr{Name: "k", Value: "v"}))
	Must(a.Text("hi"))
	Must(a.Comment("note"))
	Must(a.CData("x > y"))
	up := Must(a.Up())
	b := Must(up.Element("b"))
	Must(b.Text("tail"))

	compact := tokenize(t, root.ToString())
	pretty := tokenize(t, root.ToString(WithIndent()))
	tt.Equals(t, compact, pretty)
}

func TestToStringSubtree(t *testing.T) {
	root := Must(Begin("r"))
	item := Must(root.Element("item"))
	Must(item.Text("hi"))
	tt.Equals(t, "<item>hi</item>", item.ToString())
	tt.Equals(t, "<r><item>hi</item></r>", root.ToString())
}

func TestStringer(t *testing.T) {
	root := buildScenario()
	tt.Equals(t, root.ToString(), fmt.Sprintf("%v", root))
	tt.Equals(t, root.ToString(), fmt.Sprintf("%s", root))
}

func TestWriteTo(t *testing.T) {
	root := buildScenario()
	var buf bytes.Buffer
	n, err := root.WriteTo(&buf)
	tt.OK(t, err)
	tt.Equals(t, root.ToString(), buf.String())
	tt.Equals(t, int64(buf.Len()), n)
}

func TestWriteToPretty(t *testing.T) {
	root := buildScenario()
	var buf bytes.Buffer
	_, err := root.WriteTo(&buf, WithIndent())
	tt.OK(t, err)
	tt.Equals(t, root.ToString(WithIndent()), buf.String())
}

func TestWriteToNilWriter(t *testing.T) {
	_, err := buildScenario().WriteTo(nil)
	tt.IsError(t, ErrMissingArgument, err)
}

func TestWriteToFailure(t *testing.T) {
	boom := errors.New("boom")
	w := &DodgyWriter{
		writer:     io.Discard,
		shouldFail: func(b []byte) (bool, int, error) { return true, 0, boom },
	}
	_, err := buildScenario().WriteTo(w)
	tt.IsError(t, boom, err)
}
