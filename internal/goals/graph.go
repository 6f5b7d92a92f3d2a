// Package goals builds and tracks the requirement graph: the ambition-derived
// DAG of goal nodes that tells the planner what the player is working toward.
package goals

// Status is a node's completion state. The transition is one-way: a node goes
// unmet→met at most once and never reverts.
type Status string

const (
	StatusUnmet Status = "unmet"
	StatusMet   Status = "met"
)

// Node is one goal in the graph. Needs and Paths hold id references, never
// embedded nodes, so the graph serializes flat and stays acyclic.
type Node struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Status Status `json:"status"`

	// Needs lists prerequisite node ids; all must be met before this node's
	// paths are actionable.
	Needs []string `json:"needs,omitempty"`

	// Paths names the knowledge-base routes that can satisfy this node.
	Paths []string `json:"paths,omitempty"`

	// Domains lists which ambition domains this node serves.
	Domains []string `json:"domains,omitempty"`

	// Spawn metadata for nodes added after an ambition mutation.
	SpawnedTick uint64  `json:"spawned_tick,omitempty"`
	Threshold   float64 `json:"threshold,omitempty"`
}

// Graph is the requirement DAG.
type Graph struct {
	Nodes []*Node `json:"nodes"`
}

// Node returns the node with the given id, or nil.
func (g *Graph) Node(id string) *Node {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// IsMet reports whether the node with the given id is met. A missing node
// reads as unmet — a dangling needs reference blocks its dependent forever
// rather than failing.
func (g *Graph) IsMet(id string) bool {
	n := g.Node(id)
	return n != nil && n.Status == StatusMet
}

// NeedsMet reports whether every prerequisite of n is met.
func (g *Graph) NeedsMet(n *Node) bool {
	for _, need := range n.Needs {
		if !g.IsMet(need) {
			return false
		}
	}
	return true
}

// Actionable returns the unmet nodes whose prerequisites are all met, in
// graph order.
func (g *Graph) Actionable() []*Node {
	var out []*Node
	for _, n := range g.Nodes {
		if n.Status == StatusUnmet && g.NeedsMet(n) {
			out = append(out, n)
		}
	}
	return out
}

// MarkMet flips the named node to met. Idempotent; unknown ids are ignored.
func (g *Graph) MarkMet(id string) {
	if n := g.Node(id); n != nil {
		n.Status = StatusMet
	}
}

// Unlocks counts the nodes whose needs include id — i.e. how many downstream
// goals meeting this node would move closer to actionable.
func (g *Graph) Unlocks(id string) int {
	count := 0
	for _, n := range g.Nodes {
		for _, need := range n.Needs {
			if need == id {
				count++
				break
			}
		}
	}
	return count
}
