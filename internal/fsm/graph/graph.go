// Copyright (C) 2022 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package graph implements the state/transition multigraph reconstructed
// from a trace: an arena of nodes addressed by a stable NodeID, keyed for
// insertion-time deduplication by snapshot structural equality, and
// addressed for transitions by NodeID identity rather than by snapshot
// value (see Node.Transitions).
package graph

// NodeID is a handle into a Graph's arena, the Go analogue of a weak
// back-reference into the node set. It does not change while the node
// lives in that Graph, even when a pass rewrites Node.Index; DeleteWhere
// returns a new Graph in which the surviving nodes get new, densely
// packed NodeIDs.
type NodeID int

// InvalidNodeID marks the absence of a node, e.g. a graph with no start
// state yet.
const InvalidNodeID NodeID = -1

// Node is one reconstructed state: the snapshot observed at that point in
// the trace, plus its outgoing transitions.
type Node struct {
	id    NodeID
	Index int
	Value Snapshot

	// Transitions maps the NodeID of a successor to the set of
	// timestamps at which the transition was observed. Keyed by NodeID,
	// not by snapshot, so that two structurally distinct nodes sharing
	// no snapshot equality never collide, and so renumbering/deleting
	// nodes elsewhere never invalidates a live transition pointer.
	Transitions map[NodeID]*TimestampSet

	// Indegree counts distinct predecessor edges. It is maintained
	// incrementally by Graph.AddTransition, adjusted in place by the
	// reducer passes (CombineSequences, CombineSCC and MergeCircuits read
	// and change it), and recomputed from the surviving edges by
	// DeleteWhere.
	Indegree int
}

// ID returns the node's stable arena handle.
func (n *Node) ID() NodeID { return n.id }

// Graph is an arena of nodes plus fast lookup by NodeID and by snapshot
// content key. The start node is the node that the first inserted
// snapshot produced, unless SetStart has replaced it.
type Graph struct {
	nodes   []*Node
	byKey   map[string]NodeID
	startID NodeID
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		byKey:   make(map[string]NodeID),
		startID: InvalidNodeID,
	}
}

// Len reports the number of live nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Node dereferences a NodeID. Returns nil if id does not name a live
// node in this graph.
func (g *Graph) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(g.nodes) {
		return nil
	}
	return g.nodes[id]
}

// StartNode returns the node corresponding to the first-ever inserted
// snapshot, or nil if the graph is empty.
func (g *Graph) StartNode() *Node {
	return g.Node(g.startID)
}

// SetStart overrides the graph's start node, used by reducer passes
// (CutToPart) that restrict the graph to a subgraph rooted somewhere
// other than the original start.
func (g *Graph) SetStart(id NodeID) {
	g.startID = id
}

// Insert finds or creates the node holding snapshot s, deduplicating by
// structural snapshot equality (Design Note 1: node identity is
// content-keyed, transition identity is NodeID-keyed). Returns the node
// and whether it was newly created.
func (g *Graph) Insert(s Snapshot) (*Node, bool) {
	key := s.Key()
	if id, ok := g.byKey[key]; ok {
		return g.nodes[id], false
	}
	id := NodeID(len(g.nodes))
	n := &Node{
		id:          id,
		Index:       int(id),
		Value:       s,
		Transitions: make(map[NodeID]*TimestampSet),
	}
	g.nodes = append(g.nodes, n)
	g.byKey[key] = id
	if g.startID == InvalidNodeID {
		g.startID = id
	}
	return n, true
}

// AddTransition records an observation of the trace moving from "from"
// to "to" at timestamp ts, merging into any existing edge's timestamp
// set. The target's indegree is incremented only when the edge is new,
// so it counts distinct predecessor edges, not observations.
func (g *Graph) AddTransition(from, to NodeID, ts uint64) {
	src := g.Node(from)
	if src == nil {
		return
	}
	set, ok := src.Transitions[to]
	if !ok {
		set = NewTimestampSet()
		src.Transitions[to] = set
		if dst := g.Node(to); dst != nil {
			dst.Indegree++
		}
	}
	set.Insert(ts)
}

// Nodes returns the live nodes in arena order (ascending NodeID). The
// returned slice must not be mutated.
func (g *Graph) Nodes() []*Node {
	return g.nodes
}

// NodesSortedByIndex returns a copy of the live nodes ordered by their
// current Index field, used by printers that must walk states in
// externally-visible numeric order rather than internal arena order.
func (g *Graph) NodesSortedByIndex() []*Node {
	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)
	// insertion sort: graphs in this domain are small (hundreds of
	// states), and indices are nearly sorted after RenumberStates.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Index < out[j-1].Index; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// Rebuild returns a graph over an entirely new node set, indexing each
// node's snapshot key; DeleteWhere uses it to assemble its result.
// newStart is the NodeID, within nodes, of the new start state.
func Rebuild(nodes []*Node, newStart NodeID) *Graph {
	g := &Graph{
		nodes:   nodes,
		byKey:   make(map[string]NodeID),
		startID: newStart,
	}
	for _, n := range nodes {
		g.byKey[n.Value.Key()] = n.id
	}
	return g
}

// DeleteWhere removes every node for which remove returns true, along
// with any transition referencing it, and returns the resulting graph.
// Remaining nodes are copied into a dense new arena with new NodeIDs
// (in the old arena order); their Index is kept as it was, and
// RenumberStates can be used afterwards to make Index dense as well.
func (g *Graph) DeleteWhere(remove func(*Node) bool) *Graph {
	keepSet := make(map[NodeID]bool, len(g.nodes))
	for _, n := range g.nodes {
		if !remove(n) {
			keepSet[n.id] = true
		}
	}

	remap := make(map[NodeID]NodeID, len(keepSet))
	newNodes := make([]*Node, 0, len(keepSet))
	for _, n := range g.nodes {
		if !keepSet[n.id] {
			continue
		}
		newID := NodeID(len(newNodes))
		remap[n.id] = newID
		newNodes = append(newNodes, &Node{
			id:          newID,
			Index:       n.Index,
			Value:       n.Value,
			Transitions: make(map[NodeID]*TimestampSet),
		})
	}

	for _, n := range g.nodes {
		newID, ok := remap[n.id]
		if !ok {
			continue
		}
		dst := newNodes[newID]
		for toID, set := range n.Transitions {
			newTo, ok := remap[toID]
			if !ok {
				continue
			}
			dst.Transitions[newTo] = set.Clone()
		}
	}
	for _, n := range newNodes {
		for toID := range n.Transitions {
			newNodes[toID].Indegree++
		}
	}

	newStart := InvalidNodeID
	if id, ok := remap[g.startID]; ok {
		newStart = id
	}
	return Rebuild(newNodes, newStart)
}
