package topology

// Graph is the bond topology reconstructed from an ordered sequence of bond
// events. It keeps two derived mappings: parent -> children (log order,
// duplicates retained) and child -> parent (last write wins when a child is
// rebonded). The graph records what the log says happened; whether that
// forms a legal forest is the auditor's question, so no cycle or fan-out
// checks happen here.
type Graph struct {
	childrenOf map[int][]int
	parentOf   map[int]int

	// parentOrder preserves first-appearance order of parents so report
	// output is deterministic.
	parentOrder []int
}

// NewGraph returns an empty bond graph.
func NewGraph() *Graph {
	return &Graph{
		childrenOf: make(map[int][]int),
		parentOf:   make(map[int]int),
	}
}

// Record folds one bond event into the graph.
func (g *Graph) Record(ev BondEvent) {
	if _, seen := g.childrenOf[ev.ParentID]; !seen {
		g.parentOrder = append(g.parentOrder, ev.ParentID)
	}
	g.childrenOf[ev.ParentID] = append(g.childrenOf[ev.ParentID], ev.ChildID)
	g.parentOf[ev.ChildID] = ev.ParentID
}

// BuildGraph folds an event sequence into a fresh graph.
func BuildGraph(events []BondEvent) *Graph {
	g := NewGraph()
	for _, ev := range events {
		g.Record(ev)
	}
	return g
}

// Children returns the recorded children of a particle in log order.
// The returned slice is owned by the graph; callers must not mutate it.
func (g *Graph) Children(id int) []int {
	return g.childrenOf[id]
}

// Parent returns the last recorded parent of a particle.
func (g *Graph) Parent(id int) (parent int, ok bool) {
	parent, ok = g.parentOf[id]
	return parent, ok
}

// Parents returns every particle that appears as a parent, in order of
// first appearance in the log.
func (g *Graph) Parents() []int {
	return g.parentOrder
}

// Events reports how many bond events have been folded in.
func (g *Graph) Events() int {
	n := 0
	for _, children := range g.childrenOf {
		n += len(children)
	}
	return n
}
