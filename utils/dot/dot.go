package dot

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/goccy/go-graphviz"
)

// DotToImage renders a dot graph in-process with graphviz, writing the
// result to outfname.format, or to a temporary file if outfname is empty.
// The path of the rendered image is returned.
func DotToImage(outfname string, format string, dot []byte) (string, error) {
	var img string
	if outfname == "" {
		img = filepath.Join(os.TempDir(), fmt.Sprintf("ivl_export.%s", format))
	} else {
		img = fmt.Sprintf("%s.%s", outfname, format)
	}

	if format == "dot" {
		if err := os.WriteFile(img, dot, 0644); err != nil {
			return "", err
		}
		return img, nil
	}

	g := graphviz.New()
	graph, err := graphviz.ParseBytes(dot)
	if err != nil {
		return "", fmt.Errorf("parsing dot graph: %w", err)
	}
	defer func() {
		if err := graph.Close(); err != nil {
			log.Println(err)
		}
		g.Close()
	}()
	if err := g.RenderFilename(graph, graphviz.Format(format), img); err != nil {
		return "", fmt.Errorf("rendering %s: %w", img, err)
	}
	return img, nil
}

const tmplCluster = `{{define "cluster" -}}
	{{printf "subgraph %q {" .}}
		{{.Prefix}}
		{{printf "%s" .Attrs.Lines}}
		{{range .Nodes}}
		{{template "node" .}}
		{{- end}}
		{{range .Clusters}}
		{{template "cluster" .}}
		{{- end}}
	{{println "}" }}
{{- end}}`

const tmplEdge = `{{define "edge" -}}
	{{printf "%q -> %q [ %s ]" .From .To .Attrs}}
{{- end}}`

const tmplNode = `{{define "node" -}}
	{{printf "%q [ %s ]" .ID .Attrs}}
{{- end}}`

const tmplGraph = `digraph IntervalOverlap {
	label="{{.Title}}";
	labeljust="l";
	fontname="Arial";
	fontsize="14";
	rankdir="{{or .Options.rankdir "LR"}}";
	bgcolor="lightgray";
	style="solid";
	penwidth="0.5";
	pad="0.0";
	nodesep="{{.Options.nodesep}}";
	remincross="{{or .Options.remincross "true"}}";

	node [shape="box" style="filled" fillcolor="honeydew" fontname="Verdana" penwidth="1.0" margin="0.05,0.0"];
	edge [minlen="{{.Options.minlen}}"]

	{{- range .Clusters}}
	{{template "cluster" .}}
	{{- end}}

	{{range .Nodes}}
	{{template "node" .}}
	{{- end}}

	{{- range .Edges}}
	{{template "edge" .}}
	{{- end}}
}
`

// ==[ type def/func: DotCluster ]===============================================
type DotCluster struct {
	ID       string
	Clusters map[string]*DotCluster
	Nodes    []*DotNode
	Attrs    DotAttrs
	Prefix   string
}

func NewDotCluster(id string) *DotCluster {
	return &DotCluster{
		ID:       id,
		Clusters: make(map[string]*DotCluster),
		Attrs:    make(DotAttrs),
	}
}

func (c *DotCluster) String() string {
	return fmt.Sprintf("cluster_%s", c.ID)
}

// CountNodes counts the nodes of c and its nested clusters.
func (c *DotCluster) CountNodes() int {
	res := len(c.Nodes)

	for _, cluster := range c.Clusters {
		res += cluster.CountNodes()
	}

	return res
}

// ==[ type def/func: DotNode    ]===============================================
type DotNode struct {
	ID    string
	Attrs DotAttrs
}

func (n *DotNode) String() string {
	return n.ID
}

// ==[ type def/func: DotEdge    ]===============================================
type DotEdge struct {
	From  *DotNode
	To    *DotNode
	Attrs DotAttrs
}

// ==[ type def/func: DotAttrs   ]===============================================
type DotAttrs map[string]string

func (p DotAttrs) List() []string {
	l := []string{}
	for k, v := range p {
		l = append(l, fmt.Sprintf("%s=%q;", k, v))
	}
	sort.Strings(l)
	return l
}

func (p DotAttrs) String() string {
	return strings.Join(p.List(), " ")
}

func (p DotAttrs) Lines() string {
	return strings.Join(p.List(), "\n")
}

// ==[ type def/func: DotGraph   ]===============================================
type DotGraph struct {
	Title    string
	Attrs    DotAttrs
	Clusters []*DotCluster
	Nodes    []*DotNode
	Edges    []*DotEdge
	Options  map[string]string
}

// CountNodes counts the nodes of g, including those nested in clusters.
func (g *DotGraph) CountNodes() int {
	res := len(g.Nodes)

	for _, cluster := range g.Clusters {
		res += cluster.CountNodes()
	}

	return res
}

func (g *DotGraph) WriteDot(w io.Writer) error {
	t := template.New("dot")
	t.Option("missingkey=zero") // Make missing map keys return the zero value of appropriate type
	for _, s := range []string{tmplCluster, tmplNode, tmplEdge, tmplGraph} {
		if _, err := t.Parse(s); err != nil {
			return err
		}
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, g); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
