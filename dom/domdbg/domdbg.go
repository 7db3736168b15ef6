/*
Package domdbg implements helpers to debug a resolved document tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.


*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/xlab/treeprint"

	"github.com/lofting/svgdom/dom"
)

// Dump renders a resolved tree as indented text, one line per node with its
// tag, a text excerpt and selected attributes. With attrKeys == nil the
// paint attributes are shown.
func Dump(n *dom.Node, attrKeys []string) string {
	if attrKeys == nil {
		attrKeys = defaultAttributes
	}
	tp := treeprint.New()
	tp.SetValue(nodeLabel(n, attrKeys))
	dumpChildren(n, tp, attrKeys)
	return tp.String()
}

func dumpChildren(n *dom.Node, tp treeprint.Tree, attrKeys []string) {
	for _, child := range n.Children() {
		branch := tp.AddBranch(nodeLabel(child, attrKeys))
		dumpChildren(child, branch, attrKeys)
	}
}

func nodeLabel(n *dom.Node, attrKeys []string) string {
	var b strings.Builder
	b.WriteString(n.Tag())
	if text := shortText(n); text != "" {
		b.WriteString(" ")
		b.WriteString(text)
	}
	for _, key := range attrKeys {
		if v, ok := n.Attr(key); ok {
			fmt.Fprintf(&b, " %s=%s", key, v)
		}
	}
	return b.String()
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname   string
	Attributes []string
	NodeTmpl   *template.Template
	EdgeTmpl   *template.Template
	AttrTmpl   *template.Template
	AttrEdge   *template.Template
}

var defaultAttributes = []string{
	"fill",
	"stroke",
	"color",
	"opacity",
	"rotate",
}

// ToGraphViz outputs a diagram for a resolved document tree. The diagram is
// in GraphViz (DOT) format. Clients have to provide the root node of the
// tree, a Writer, and an optional list of attribute keys. Each node with a
// matching attribute gets a table of the matching resolved values attached.
//
// If the client does not provide a list of keys, the paint attributes are
// used: fill, stroke, color, opacity and rotate.
func ToGraphViz(root *dom.Node, w io.Writer, attrKeys []string) {
	tmpl, err := template.New("tree").Parse(graphHeadTmpl)
	if err != nil {
		panic(err)
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl, _ = template.New("treenode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(treeNodeTmpl)
	gparams.EdgeTmpl = template.Must(template.New("treeedge").Parse(treeEdgeTmpl))
	gparams.AttrTmpl = template.Must(template.New("attrtable").Parse(attrTableTmpl))
	gparams.AttrEdge = template.Must(template.New("attredge").Parse(attrEdgeTmpl))
	gparams.Attributes = attrKeys
	if attrKeys == nil {
		gparams.Attributes = defaultAttributes
	}
	if err = tmpl.Execute(w, gparams); err != nil {
		panic(err)
	}
	dict := make(map[*dom.Node]string, 4096)
	nodes(root, w, dict, &gparams)
	w.Write([]byte("}\n"))
}

// Dotty is a helper for testing. Given a tree node and a testing.T, it will
// create a GraphViz image of the tree under `root` and write it to a file
// in the current folder, choosing a unique file name. The image is in SVG
// format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
func Dotty(root *dom.Node, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "tree.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing tree digraph to %s\n", tmpfile.Name())
	ToGraphViz(root, tmpfile, nil)
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Log("writing tree image to tree.svg\n")
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	N    *dom.Node
	Name string
}

func nodes(n *dom.Node, w io.Writer, dict map[*dom.Node]string, gparams *graphParamsType) {
	treeNode(n, w, dict, gparams)
	for _, ch := range n.Children() {
		nodes(ch, w, dict, gparams)
		treeEdge(n, ch, w, dict, gparams)
	}
}

func treeNode(n *dom.Node, w io.Writer, dict map[*dom.Node]string, gparams *graphParamsType) {
	name := dict[n]
	if name == "" {
		l := len(dict) + 1
		name = fmt.Sprintf("node%05d", l)
		dict[n] = name
	}
	if err := gparams.NodeTmpl.Execute(w, &node{n, name}); err != nil {
		panic(err)
	}
	treeAttributes(n, w, dict, gparams)
}

// attrTable is the template context for one node's attribute table.
type attrTable struct {
	Name       string
	Attributes []attrEntry
}

type attrEntry struct {
	Key   string
	Value string
}

func treeAttributes(n *dom.Node, w io.Writer, dict map[*dom.Node]string, gparams *graphParamsType) {
	table := attrTable{Name: dict[n]}
	for _, key := range gparams.Attributes {
		if v, ok := n.Attr(key); ok {
			table.Attributes = append(table.Attributes, attrEntry{key, string(v)})
		}
	}
	if len(table.Attributes) == 0 {
		return
	}
	if err := gparams.AttrTmpl.Execute(w, table); err != nil {
		panic(err)
	}
	if err := gparams.AttrEdge.Execute(w, table); err != nil {
		panic(err)
	}
}

type edge struct {
	N1, N2 node
}

func treeEdge(n1 *dom.Node, n2 *dom.Node, w io.Writer, dict map[*dom.Node]string,
	gparams *graphParamsType) {
	//
	name1 := dict[n1]
	name2 := dict[n2]
	e := edge{node{n1, name1}, node{n2, name2}}
	if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
		panic(err)
	}
}

func shortText(n *dom.Node) string {
	text := n.Text()
	if text == "" {
		return ""
	}
	s := "\"\\\""
	if len(text) > 10 {
		s += text[:10] + "...\\\"\""
	} else {
		s += text + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [{{ .Fontname }} = "helvetica" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const treeNodeTmpl = `{{ if .N.Text }}
{{ .Name }}	[ label={{ printf "%q" .N.Tag }} xlabel={{ shortstring .N }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .N.Tag }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const attrTableTmpl = `{{ .Name }}attrs [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      {{ range .Attributes }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ end }}
    </table>> ] ;
`

const treeEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`

const attrEdgeTmpl = `{{ .Name }} -> {{ .Name }}attrs [dir=none weight=1 style="dashed"] ;
`
