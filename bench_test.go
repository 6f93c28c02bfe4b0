package xmlbuilder

import (
	"encoding/xml"
	"io"
	"testing"
)

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func BenchmarkBuildGeneral(b *testing.B) {
	for i := 0; i < b.N; i++ {
		root := Must(Begin("foo"))
		bar := Must(root.Element("bar"))
		Must(bar.Attribute("a", "true"))
		baz := Must(bar.Element("baz"))
		Must(baz.Element("test", Attr{Name: "foo", Value: ""}))
		Must(baz.Element("test"))
		Must(baz.Element("test"))
		Must(baz.Element("test"))
		Must(baz.Element("test"))
		Must(baz.Comment("this is  a comment"))
		Must(baz.CData("pants pants revolution"))
	}
}

type Outer struct {
	Name   string  `xml:"name,attr"`
	Inners []Inner `xml:"inner"`
}

type Inner struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

func makeStruct(cnt int) *Outer {
	names := []string{"foo", "bar", "baz", "qux", "pants", "trou"}
	values := []string{"yep", "nup", "wahey", "ding", "dong"}
	o := &Outer{Name: "hi", Inners: make([]Inner, cnt)}
	for i := 0; i < cnt; i++ {
		o.Inners[i] = Inner{Name: names[i%len(names)], Value: values[i%len(values)]}
	}
	return o
}

func buildTree(o *Outer) *Node {
	root := Must(Begin(o.Name))
	for i := range o.Inners {
		Must(root.Element("inner",
			Attr{Name: "name", Value: o.Inners[i].Name},
			Attr{Name: "value", Value: o.Inners[i].Value},
		))
	}
	return root
}

var BenchNode *Node

func benchmarkBuild(b *testing.B, cnt int) {
	b.StopTimer()
	o := makeStruct(cnt)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		BenchNode = buildTree(o)
	}
}

func BenchmarkBuildHuge(b *testing.B)  { benchmarkBuild(b, 30000) }
func BenchmarkBuildSmall(b *testing.B) { benchmarkBuild(b, 10) }

func benchmarkRender(b *testing.B, cnt int, opts ...RenderOption) {
	b.StopTimer()
	root := buildTree(makeStruct(cnt))
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		_, err := root.WriteTo(io.Discard, opts...)
		must(err)
	}
}

func BenchmarkRenderHuge(b *testing.B)        { benchmarkRender(b, 30000) }
func BenchmarkRenderSmall(b *testing.B)       { benchmarkRender(b, 10) }
func BenchmarkRenderPrettyHuge(b *testing.B)  { benchmarkRender(b, 30000, WithIndent()) }
func BenchmarkRenderPrettySmall(b *testing.B) { benchmarkRender(b, 10, WithIndent()) }

func benchmarkGolang(b *testing.B, cnt int) {
	b.StopTimer()
	o := makeStruct(cnt)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		must(xml.NewEncoder(io.Discard).Encode(o))
	}
}

func BenchmarkGolangHuge(b *testing.B)  { benchmarkGolang(b, 30000) }
func BenchmarkGolangSmall(b *testing.B) { benchmarkGolang(b, 10) }
