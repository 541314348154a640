package report

import (
	"fmt"
	"os"
	"strconv"

	"github.com/awalterschulze/gographviz"
	"github.com/spiresolve/spiresolve/search"
)

// WriteDot exports the solved tree's decision spine (decision nodes
// and the chance fan they retained) as a Graphviz DOT file, edge-
// labeled with the player action or chance probability (§4.G
// expansion). Intended for the small, post-solve tree, not a raw
// in-progress search.
func WriteDot(path string, t *search.Tree) error {
	g := gographviz.NewGraph()
	if err := g.SetName("solve"); err != nil {
		return err
	}
	if err := g.SetDir(true); err != nil {
		return err
	}

	visited := map[search.NodeID]bool{}
	var walk func(id search.NodeID)
	walk = func(id search.NodeID) {
		if visited[id] {
			return
		}
		visited[id] = true

		name := dotNodeName(id)
		s := t.State(id)
		label := fmt.Sprintf("hp=%d obj=%.2f", s.HP, s.Objective)
		if err := g.AddNode("solve", name, map[string]string{"label": strconv.Quote(label)}); err != nil {
			return
		}

		for _, child := range t.ChildrenOf(id) {
			walk(child)
			action := t.ParentAction(child)
			edgeLabel := describeAction(action)
			cs := t.State(child)
			if !action.Decision {
				edgeLabel = fmt.Sprintf("p=%.3f", cs.Probability)
			}
			_ = g.AddEdge(name, dotNodeName(child), true, map[string]string{"label": strconv.Quote(edgeLabel)})
		}
	}
	walk(t.RootID())

	return os.WriteFile(path, []byte(g.String()), 0o644)
}

func dotNodeName(id search.NodeID) string {
	return "n" + strconv.Itoa(int(id))
}
