// Package advisor implements the scripted sustainability advisor: a finite
// dialogue graph of nodes with labeled edges, traversed by a pure
// transition function. Conversation history is an append-only transcript
// owned by the caller, not by the flow.
package advisor

import (
	errs "shipwaste/internal/errors"
)

// NodeID names a dialogue node.
type NodeID string

const (
	NodeStart          NodeID = "start"
	NodeCatalog        NodeID = "product_catalog"
	NodeOuterPackaging NodeID = "outer_packaging"
	NodeInnerPackaging NodeID = "inner_packaging"
	NodeWrapping       NodeID = "product_wrapping"
	NodeSealing        NodeID = "sealing_labeling"
	NodeInserts        NodeID = "inserts_extras"
	NodeRecommendation NodeID = "recommendation"
	NodeContact        NodeID = "contact"
)

// Edge is one labeled outward transition.
type Edge struct {
	// Label is the choice shown to the user
	Label string `json:"label"`

	// Next is the destination node
	Next NodeID `json:"next"`
}

// Node is one dialogue state.
type Node struct {
	ID NodeID `json:"id"`

	// Text is the display text. Empty on the recommendation node, whose
	// text is generated per category by RecommendationFor.
	Text string `json:"text,omitempty"`

	// Dynamic marks nodes whose text is generated at traversal time
	Dynamic bool `json:"dynamic,omitempty"`

	// Edges are the outward choices in display order
	Edges []Edge `json:"edges"`
}

// Flow is an immutable dialogue graph.
type Flow struct {
	start NodeID
	nodes map[NodeID]Node
}

// NewFlow builds a flow and verifies every edge points at a defined node.
func NewFlow(start NodeID, nodes []Node) (*Flow, error) {
	byID := make(map[NodeID]Node, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = n
	}
	if _, ok := byID[start]; !ok {
		return nil, errs.Config("advisor flow start node undefined")
	}
	for _, n := range nodes {
		for _, e := range n.Edges {
			if _, ok := byID[e.Next]; !ok {
				return nil, errs.Newf(errs.TypeConfig, "advisor node %q edge %q points at undefined node %q", n.ID, e.Label, e.Next)
			}
		}
	}
	return &Flow{start: start, nodes: byID}, nil
}

// Start returns the entry node.
func (f *Flow) Start() Node {
	return f.nodes[f.start]
}

// Node returns a node by id.
func (f *Flow) Node(id NodeID) (Node, error) {
	n, ok := f.nodes[id]
	if !ok {
		return Node{}, errs.NotFound("advisor node", string(id))
	}
	return n, nil
}

// Transition follows the edge with the given label out of the current
// node. Pure: the flow never changes, the caller owns the current state.
func (f *Flow) Transition(current NodeID, choice string) (Node, error) {
	n, err := f.Node(current)
	if err != nil {
		return Node{}, err
	}
	for _, e := range n.Edges {
		if e.Label == choice {
			return f.nodes[e.Next], nil
		}
	}
	return Node{}, errs.NotFound("advisor choice", choice)
}

// Transcript is an append-only conversation log.
type Transcript struct {
	entries []Entry
}

// Entry is one line of conversation.
type Entry struct {
	// Role is "user" or "advisor"
	Role string `json:"role"`

	Content string `json:"content"`
}

// Append records one entry.
func (t *Transcript) Append(role, content string) {
	t.entries = append(t.entries, Entry{Role: role, Content: content})
}

// Entries returns a copy of the log in order.
func (t *Transcript) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}
