package domdbg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/lofting/svgdom/dom"
)

func TestDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom.dom")
	defer teardown()
	//
	tree, err := dom.Load(dom.FromBytes([]byte(
		`<svg fill="red"><g><rect/></g></svg>`)))
	if err != nil {
		t.Fatal(err)
	}
	out := Dump(&tree.Node, nil)
	t.Logf("tree:\n%s", out)
	for _, want := range []string{"svg", "g", "rect", "fill=red"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected dump to contain %q", want)
		}
	}
}

func TestToGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom.dom")
	defer teardown()
	//
	tree, err := dom.Load(dom.FromBytes([]byte(
		`<svg><text rotate="10">hi</text></svg>`)))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	ToGraphViz(&tree.Node, &buf, nil)
	dot := buf.String()
	if !strings.HasPrefix(dot, "digraph g {") {
		t.Errorf("expected DOT digraph output, got %q", dot[:20])
	}
	if !strings.Contains(dot, "node00001 -> node00002") {
		t.Error("expected an edge from the root to the text node")
	}
}
