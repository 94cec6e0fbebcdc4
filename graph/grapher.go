package graph

import (
	"bytes"
	"fmt"
	"log"

	"github.com/cs-au-dk/ivl/interval"
	"github.com/cs-au-dk/ivl/utils"
	"github.com/cs-au-dk/ivl/utils/dot"
)

var opts = utils.Opts()

// label renders x without colors, which are not valid in dot labels.
func label(x interval.Interval) string {
	return fmt.Sprintf("[%v, %v]", x.Inf(), x.Sup())
}

// componentColors cycles through cluster fill colors.
var componentColors = []string{"#cff3ff", "#E0FFE1", "#fff3cf", "#f3cfff"}

func makeComponentCluster(i int, comp []interval.Interval) *dot.DotCluster {
	c := dot.NewDotCluster(fmt.Sprint(i))
	c.Attrs = dot.DotAttrs{
		"penwidth":  "0.8",
		"fontsize":  "16",
		"label":     "hull " + label(interval.Hull(comp...)),
		"style":     "filled",
		"fillcolor": componentColors[i%len(componentColors)],
		"fontname":  "Tahoma bold",
	}
	return c
}

// OverlapGraph constructs the overlap graph of xs.
// Every connected component becomes a cluster. Every distinct nonempty
// interval becomes a node, and every pair of distinct, non-disjoint intervals
// is connected by an edge from the lesser to the greater, labeled with
// their overlapping state. Empty intervals are omitted.
func OverlapGraph(xs ...interval.Interval) *dot.DotGraph {
	nodeMap := utils.NewImmMap[interval.Interval, *dot.DotNode]()

	var (
		clusters []*dot.DotCluster
		edges    []*dot.DotEdge
	)

	for i, comp := range interval.Components(xs...) {
		cluster := makeComponentCluster(i, comp)

		var distinct []interval.Interval
		for _, x := range comp {
			if _, ok := nodeMap.Get(x); ok {
				continue
			}
			node := &dot.DotNode{
				ID: fmt.Sprintf("n%d", nodeMap.Len()),
				Attrs: dot.DotAttrs{
					"label":   label(x),
					"tooltip": x.Classify().Name(),
				},
			}
			nodeMap = nodeMap.Set(x, node)
			cluster.Nodes = append(cluster.Nodes, node)
			distinct = append(distinct, x)
		}

		for j, x := range distinct {
			for _, y := range distinct[j+1:] {
				if x.Disjoint(y) {
					continue
				}
				from, _ := nodeMap.Get(x)
				to, _ := nodeMap.Get(y)
				edges = append(edges, &dot.DotEdge{
					From:  from,
					To:    to,
					Attrs: dot.DotAttrs{"label": x.Overlap(y).Name()},
				})
			}
		}

		clusters = append(clusters, cluster)
	}

	return &dot.DotGraph{
		Title:    "Interval overlap",
		Clusters: clusters,
		Edges:    edges,
		Options: map[string]string{
			"minlen":  fmt.Sprint(opts.Minlen()),
			"nodesep": fmt.Sprint(opts.Nodesep()),
		},
	}
}

// RenderOverlapGraph renders the overlap graph of xs to outfname in the
// configured output format, returning the path of the written file.
func RenderOverlapGraph(outfname string, xs ...interval.Interval) (string, error) {
	dotG := OverlapGraph(xs...)

	opts.OnVerbose(func() {
		log.Printf("Clusters: %d\nNodes: %d\nEdges: %d\n",
			len(dotG.Clusters), dotG.CountNodes(), len(dotG.Edges))
	})

	var buf bytes.Buffer
	if err := dotG.WriteDot(&buf); err != nil {
		return "", err
	}

	return dot.DotToImage(outfname, opts.OutputFormat(), buf.Bytes())
}
