// Package dot renders undirected graphs in Graphviz format, with one
// cluster per connected component.
package dot

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/template"
)

type Graph struct {
	Title    string
	Clusters []*Cluster
	Nodes    []*Node
	Edges    []*Edge
}

type Cluster struct {
	ID    string
	Label string
	Nodes []*Node
}

func (c *Cluster) String() string {
	return fmt.Sprintf("cluster_%s", c.ID)
}

type Node struct {
	ID    string
	Attrs Attrs
}

func (n *Node) String() string {
	return n.ID
}

type Edge struct {
	From  string
	To    string
	Attrs Attrs
}

func (e *Edge) String() string {
	return fmt.Sprintf("%s -- %s", e.From, e.To)
}

type Attrs map[string]string

// List returns key=value pairs sorted by key so rendered output is stable.
func (p Attrs) List() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	l := make([]string, 0, len(p))
	for _, k := range keys {
		l = append(l, fmt.Sprintf("%s=%q", k, p[k]))
	}
	return l
}

func (p Attrs) String() string {
	return strings.Join(p.List(), " ")
}

const tmplCluster = `{{define "cluster" -}}
    subgraph {{printf "%q" .}} {
        label={{printf "%q" .Label}};
        {{- range .Nodes}}
        {{printf "%q [ %s ]" .ID .Attrs}}
        {{- end}}
    }
{{- end}}`

const tmplGraph = `graph dsu {
    label={{printf "%q" .Title}};
    labeljust="l";
    fontname="Verdana";
    fontsize="14";
    rankdir="LR";
    style="solid";
    penwidth="1.0";
    pad="0.0";

    node [fontname="Verdana"];
{{- range .Clusters}}
{{template "cluster" .}}
{{- end}}
{{- range .Nodes}}
    {{printf "%q [ %s ]" .ID .Attrs}}
{{- end}}
{{- range .Edges}}
    {{printf "%q -- %q [ %s ]" .From .To .Attrs}}
{{- end}}
}
`

func WriteGraph(w io.Writer, g Graph) error {
	t := template.New("dot")
	for _, s := range []string{tmplCluster, tmplGraph} {
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
