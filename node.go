package advdrag

import "math"

// Element is the rendering target a Draggable wraps. Implementations are read
// during gestures and must reflect the live layout.
type Element interface {
	// BoundingRect returns the element's transformed bounding box in page
	// coordinates.
	BoundingRect() Rect
	// OffsetBox returns the element's layout box and that of its offset
	// parent. ok is false when the element is detached.
	OffsetBox() (node, parent Box, ok bool)
}

// SVGElement is implemented by elements that can report whether they render
// into an SVG document.
type SVGElement interface {
	Element
	IsSVG() bool
}

// detectKind classifies an element by querying its capabilities.
func detectKind(el Element) ElementKind {
	if s, ok := el.(SVGElement); ok && s.IsSVG() {
		return ElementSVG
	}
	return ElementHTML
}

// nodeIDCounter is a plain counter (no atomic: node trees are single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a minimal retained layout element: a box placed inside its parent,
// carrying the transform a Draggable rendered for it. It implements
// SVGElement.
type Node struct {
	ID   uint32
	Name string

	Parent   *Node
	children []*Node

	// Layout box. Left and Top are relative to the parent's padding edge.
	Left, Top     float64
	Width, Height float64
	Padding       Insets
	Margin        Insets

	// SVG marks nodes rendered into an SVG document.
	SVG bool

	transform Transform
	disposed  bool
}

// NewNode creates a detached node with the given layout box.
func NewNode(name string, left, top, width, height float64) *Node {
	return &Node{
		ID:     nextNodeID(),
		Name:   name,
		Left:   left,
		Top:    top,
		Width:  width,
		Height: height,
	}
}

// AddChild appends child to n, detaching it from any previous parent.
func (n *Node) AddChild(child *Node) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from n. It is a no-op if child is not a child
// of n.
func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			child.Parent = nil
			return
		}
	}
}

// Children returns the child list. The returned slice MUST NOT be mutated.
func (n *Node) Children() []*Node {
	return n.children
}

// Dispose detaches the node and marks it unusable as a layout target.
func (n *Node) Dispose() {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
	n.disposed = true
}

// IsDisposed reports whether Dispose was called.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// SetTransform records the rendered transform of the node.
func (n *Node) SetTransform(t Transform) {
	n.transform = t
}

// Transform returns the rendered transform of the node.
func (n *Node) Transform() Transform {
	return n.transform
}

// IsSVG reports whether the node renders into an SVG document.
func (n *Node) IsSVG() bool {
	return n.SVG
}

// WorldMatrix returns the node's page-space affine matrix, composed from the
// root down: parent * Translate(Left, Top) * local transform.
func (n *Node) WorldMatrix() [6]float64 {
	parent := identityTransform
	if n.Parent != nil {
		parent = n.Parent.WorldMatrix()
	}
	local := multiplyAffine(translateAffine(n.Left, n.Top), n.transform.Matrix(n.Width, n.Height))
	return multiplyAffine(parent, local)
}

// WorldToLocal converts a page-space point to this node's local space, where
// the box spans (0, 0) to (Width, Height).
func (n *Node) WorldToLocal(wx, wy float64) (lx, ly float64) {
	return transformPoint(invertAffine(n.WorldMatrix()), wx, wy)
}

// LocalToWorld converts a local-space point to page space.
func (n *Node) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return transformPoint(n.WorldMatrix(), lx, ly)
}

// BoundingRect returns the axis-aligned bounds of the transformed box.
func (n *Node) BoundingRect() Rect {
	if n.disposed {
		return Rect{}
	}
	m := n.WorldMatrix()
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range [4][2]float64{{0, 0}, {n.Width, 0}, {0, n.Height}, {n.Width, n.Height}} {
		x, y := transformPoint(m, c[0], c[1])
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// OffsetBox returns the node's layout box and its parent's. Detached or
// disposed nodes report ok == false.
func (n *Node) OffsetBox() (node, parent Box, ok bool) {
	if n.disposed || n.Parent == nil {
		return Box{}, Box{}, false
	}
	p := n.Parent
	node = Box{
		Left: n.Left, Top: n.Top,
		Width: n.Width, Height: n.Height,
		Padding: n.Padding, Margin: n.Margin,
	}
	parent = Box{
		Left: p.Left, Top: p.Top,
		Width: p.Width, Height: p.Height,
		Padding: p.Padding, Margin: p.Margin,
	}
	return node, parent, true
}
