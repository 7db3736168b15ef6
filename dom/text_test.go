package dom

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestHandleWhiteSpaces(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom.dom")
	defer teardown()
	//
	tests := []struct {
		input    string
		preserve bool
		want     string
	}{
		{"a\n\tb   c", false, "a b c"},
		{"a\nb", false, "ab"},
		{"a\r\nb", false, "ab"},
		{"  a  b  ", false, " a b "},
		{"a\n\tb", true, "a  b"},
		{"a\r\nb", true, "a  b"},
		{"", true, ""},
	}
	for _, tc := range tests {
		if got := handleWhiteSpaces(tc.input, tc.preserve); got != tc.want {
			t.Errorf("handleWhiteSpaces(%q, %v): expected %q, have %q",
				tc.input, tc.preserve, tc.want, got)
		}
	}
}

func TestFlattenIsNonMutating(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom.dom")
	defer teardown()
	//
	doc := etree.NewDocument()
	err := doc.ReadFromString(`<text>Hello <tspan>wonderful <tspan>little</tspan></tspan> World!</text>`)
	if err != nil {
		t.Fatal(err)
	}
	first := flatten(doc.Root())
	if first != "Hello wonderful little World!" {
		t.Errorf("unexpected flattened text %q", first)
	}
	if second := flatten(doc.Root()); second != first {
		t.Errorf("flatten mutated its input: %q then %q", first, second)
	}
}

func TestTextReflow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom.dom")
	defer teardown()
	//
	doc := "<svg><text>  a\n  <tspan> b </tspan> c </text></svg>"
	tree, err := Load(FromBytes([]byte(doc)))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	text := findNode(tree, "text")
	if text.Text() != "a " {
		t.Errorf("expected leading run %q, have %q", "a ", text.Text())
	}
	if len(text.Children()) != 2 {
		t.Fatalf("expected 2 runs, have %d", len(text.Children()))
	}
	// the tspan loses its leading space: the previous run ended in one
	if run := text.Children()[0]; run.Text() != "b " {
		t.Errorf("expected run %q, have %q", "b ", run.Text())
	}
	// tail text becomes an anonymous run
	if run := text.Children()[1]; run.Tag() != "tspan" || run.Text() != "c " {
		t.Errorf("expected anonymous run %q, have %q %q", "c ", run.Tag(), run.Text())
	}
}

func TestTextReflowTrimsRootEnd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom.dom")
	defer teardown()
	//
	tree, err := Load(FromBytes([]byte("<svg><text>  hello  </text></svg>")))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if text := findNode(tree, "text"); text.Text() != "hello" {
		t.Errorf("expected trimmed %q, have %q", "hello", text.Text())
	}
}

func TestTextReflowPreserve(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom.dom")
	defer teardown()
	//
	doc := "<svg><text xml:space=\"preserve\"> a\n b </text></svg>"
	tree, err := Load(FromBytes([]byte(doc)))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if text := findNode(tree, "text"); text.Text() != " a  b " {
		t.Errorf("expected preserved %q, have %q", " a  b ", text.Text())
	}
}

func TestRotationDistribution(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom.dom")
	defer teardown()
	//
	doc := `<svg><text rotate="10 20">abc<tspan>de</tspan></text></svg>`
	tree, err := Load(FromBytes([]byte(doc)))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	text := findNode(tree, "text")
	// three characters consume the list and repeat its last value
	if rotate := text.AttrValue("rotate", ""); rotate != "10 20 20" {
		t.Errorf("expected rotate=%q, have %q", "10 20 20", rotate)
	}
	// the exhausted ancestor list keeps repeating over descendant runs
	if rotate := text.Children()[0].AttrValue("rotate", ""); rotate != "20 20" {
		t.Errorf("expected rotate=%q, have %q", "20 20", rotate)
	}
}

func TestRotationThreadsThroughSubtree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom.dom")
	defer teardown()
	//
	doc := `<svg><text rotate="1 2 3 4 5">a<tspan>b<tspan>c</tspan></tspan>d</text></svg>`
	tree, err := Load(FromBytes([]byte(doc)))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	text := findNode(tree, "text")
	if rotate := text.AttrValue("rotate", ""); rotate != "1" {
		t.Errorf("expected rotate=%q for root run, have %q", "1", rotate)
	}
	outer := text.Children()[0]
	if rotate := outer.AttrValue("rotate", ""); rotate != "2" {
		t.Errorf("expected rotate=%q for outer run, have %q", "2", rotate)
	}
	inner := outer.Children()[0]
	if rotate := inner.AttrValue("rotate", ""); rotate != "3" {
		t.Errorf("expected rotate=%q for inner run, have %q", "3", rotate)
	}
	// the anonymous tail run continues where the inner run left off
	tail := text.Children()[1]
	if tail.Text() != "d" {
		t.Fatalf("expected tail run %q, have %q", "d", tail.Text())
	}
	if rotate := tail.AttrValue("rotate", ""); rotate != "4" {
		t.Errorf("expected rotate=%q for tail run, have %q", "4", rotate)
	}
}

func TestRotationOwnListWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom.dom")
	defer teardown()
	//
	doc := `<svg><text rotate="1 2 3">a<tspan rotate="90">bc</tspan></text></svg>`
	tree, err := Load(FromBytes([]byte(doc)))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	text := findNode(tree, "text")
	if rotate := text.Children()[0].AttrValue("rotate", ""); rotate != "90 90" {
		t.Errorf("expected own rotate list %q, have %q", "90 90", rotate)
	}
}

func TestTextReferenceFlattening(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom.dom")
	defer teardown()
	//
	fetch := stubFetcher(t, map[string]string{
		"http://example.org/glyphs.svg": `<svg>
  <text id="t" fill="red">Hello <tspan>World</tspan>!</text>
</svg>`,
	})
	doc := `<svg xmlns:xlink="http://www.w3.org/1999/xlink" fill="green">
  <text><tref xlink:href="glyphs.svg#t"/></text>
</svg>`
	tree, err := Load(FromBytes([]byte(doc)),
		FromURL("http://example.org/main.svg"), WithFetcher(fetch))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	ref := findNode(tree, "text").Children()[0]
	if ref.Tag() != "tspan" {
		t.Errorf("expected referenced text as tspan run, have %q", ref.Tag())
	}
	if ref.Text() != "Hello World!" {
		t.Errorf("expected flattened %q, have %q", "Hello World!", ref.Text())
	}
	// the run styles in the referencing context, not the referenced one
	if fill := ref.AttrValue("fill", ""); fill != "green" {
		t.Errorf("expected fill=green from the referencing document, have %q", fill)
	}
}
