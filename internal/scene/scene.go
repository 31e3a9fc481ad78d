// Package scene provides an append-only scene graph for 2D vector drawing.
//
// Chart layers append nodes (groups, shapes, text) and record attribute
// transitions on them; hosts such as the SVG serializer or the terminal
// viewer walk the tree to produce output.
package scene

import (
	"time"
)

// Kind identifies the shape a node renders as.
type Kind int

const (
	KindGroup Kind = iota
	KindClip
	KindRect
	KindLine
	KindPath
	KindCircle
	KindText
)

// Transition describes how an attribute change is animated by the host.
type Transition struct {
	Duration time.Duration
	Easing   string
}

// Animation is a recorded attribute transition on a node.
type Animation struct {
	Attr       string
	From       string
	To         string
	Transition Transition
}

// Node is one element of the scene graph.
//
// Nodes are owned by a single chart instance and are not safe for
// concurrent mutation.
type Node struct {
	id         string
	kind       Kind
	attrs      map[string]string
	text       string
	parent     *Node
	children   []*Node
	animations []Animation
}

// NewRoot creates a detached group node to serve as a host element.
func NewRoot(id string) *Node {
	return &Node{id: id, kind: KindGroup, attrs: map[string]string{}}
}

func (n *Node) ID() string { return n.id }

func (n *Node) Kind() Kind { return n.kind }

// Attr returns the value of an attribute, or "" if unset.
func (n *Node) Attr(key string) string { return n.attrs[key] }

// SetAttr sets an attribute immediately, without a transition.
func (n *Node) SetAttr(key, value string) {
	n.attrs[key] = value
}

// SetAttrs sets several attributes at once.
func (n *Node) SetAttrs(attrs map[string]string) {
	for k, v := range attrs {
		n.attrs[k] = v
	}
}

// Attrs returns a copy of the node's attributes.
func (n *Node) Attrs() map[string]string {
	out := make(map[string]string, len(n.attrs))
	for k, v := range n.attrs {
		out[k] = v
	}
	return out
}

// Text returns the node's text content (text nodes only).
func (n *Node) Text() string { return n.text }

// SetText sets the node's text content.
func (n *Node) SetText(s string) { n.text = s }

// Group appends a child group node.
func (n *Node) Group(id string) *Node {
	return n.Append(KindGroup, id)
}

// Append adds a child node of the given kind and returns it.
func (n *Node) Append(kind Kind, id string) *Node {
	child := &Node{id: id, kind: kind, attrs: map[string]string{}, parent: n}
	n.children = append(n.children, child)
	return child
}

// Children returns the node's children in append order.
func (n *Node) Children() []*Node { return n.children }

// Parent returns the node's parent, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Animate records a transition of attr toward to, starting at from.
//
// A new animation on the same attribute supersedes the previous one; the
// host simply receives new targets. The target value is also applied to
// the node's attributes so the final state is reflected in the tree.
func (n *Node) Animate(attr, from, to string, tr Transition) {
	for i := range n.animations {
		if n.animations[i].Attr == attr {
			n.animations[i] = Animation{Attr: attr, From: from, To: to, Transition: tr}
			n.attrs[attr] = to
			return
		}
	}
	n.animations = append(n.animations, Animation{Attr: attr, From: from, To: to, Transition: tr})
	n.attrs[attr] = to
}

// Animations returns the node's recorded animations.
func (n *Node) Animations() []Animation { return n.animations }

// ClearAnimations drops all recorded animations on the node.
func (n *Node) ClearAnimations() { n.animations = nil }

// Remove detaches the node from its parent.
func (n *Node) Remove() {
	if n.parent == nil {
		return
	}
	siblings := n.parent.children
	for i, c := range siblings {
		if c == n {
			n.parent.children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// RemoveChildren detaches all children of the node.
func (n *Node) RemoveChildren() {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
}

// Find returns the first node with the given id in depth-first order,
// including the receiver, or nil.
func (n *Node) Find(id string) *Node {
	if n.id == id {
		return n
	}
	for _, c := range n.children {
		if found := c.Find(id); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits the subtree rooted at n in depth-first order. Returning
// false from fn stops the walk.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}
