package quadraster

import "github.com/gogpu/quadraster/internal/parallel"

// Child slots of an internal node, in the order they tile the parent.
const (
	topLeft = iota
	topRight
	bottomLeft
	bottomRight
)

// noNode marks an absent child.
const noNode = -1

// quadnode is one cell of the partition.
//
// A node is a leaf iff it has no children iff it owns a lane. Children are
// indices into the owning quadtree's node slice; topLeft is always present
// on internal nodes, the other slots are noNode when that half was not cut.
type quadnode struct {
	box      Box
	children [4]int32

	// leaf is the node's index in quadtree.leaves, or -1 for internal nodes.
	leaf int

	// lane queues deliveries for this cell. Leaves only.
	lane *parallel.Lane[delivery]
}

func (n *quadnode) isLeaf() bool {
	return n.children[topLeft] == noNode
}

// handlerFunc builds the worker handler for a leaf cell.
type handlerFunc func(leaf int, box Box) func(delivery)

// quadtree is a static partition of the frame into leaf cells, each served
// by a dedicated lane. It is built once per frame size and never re-split.
//
// Thread safety: after construction the tree structure is read-only; visit
// may be called concurrently. close must not race with visit.
type quadtree struct {
	nodes     []quadnode
	leaves    []int32
	threshold int
	queueCap  int
	handler   handlerFunc
	lanes     *parallel.Pool[delivery]
}

// newQuadtree partitions a width x height frame. Cells are cut until
// both their width and height are at most threshold. Every leaf gets a lane
// of capacity queueCap whose worker runs handler(leaf, box); lanes report to
// the given pool hooks.
func newQuadtree(width, height, threshold, queueCap int, handler handlerFunc, onFault parallel.FaultFunc, onDone func()) *quadtree {
	t := &quadtree{
		threshold: threshold,
		queueCap:  queueCap,
		handler:   handler,
		lanes:     parallel.NewPool[delivery](onFault, onDone),
	}
	t.nodes = append(t.nodes, t.newNode(B(0, 0, width, height)))
	t.split(0)
	return t
}

func (t *quadtree) newNode(box Box) quadnode {
	return quadnode{
		box:      box,
		children: [4]int32{noNode, noNode, noNode, noNode},
		leaf:     -1,
	}
}

// split either turns node i into a leaf or cuts it and recurses.
//
// Each axis wider than the threshold is halved, the top/left half taking
// floor(extent/2) and the bottom/right half the remainder, so children tile
// the parent exactly for odd extents too. An axis already within the
// threshold is left whole: thin cells split in two rather than in four and
// no child is ever empty.
func (t *quadtree) split(i int32) {
	box := t.nodes[i].box
	w, h := box.Width(), box.Height()
	// Cells equal to the threshold are leaves rather than requiring a strict
	// below-threshold extent, so 100x100 at threshold 50 yields four 50x50
	// cells instead of sixteen.
	if w <= t.threshold && h <= t.threshold {
		t.makeLeaf(i)
		return
	}

	xs := []int{box.Min.X, box.Max.X}
	if w > t.threshold {
		xs = []int{box.Min.X, box.Min.X + w/2, box.Max.X}
	}
	ys := []int{box.Min.Y, box.Max.Y}
	if h > t.threshold {
		ys = []int{box.Min.Y, box.Min.Y + h/2, box.Max.Y}
	}

	children := [4]int32{noNode, noNode, noNode, noNode}
	for row := range len(ys) - 1 {
		for col := range len(xs) - 1 {
			b := Box{Min: V2i(xs[col], ys[row]), Max: V2i(xs[col+1], ys[row+1])}
			children[row*2+col] = int32(len(t.nodes)) //nolint:gosec // node count is bounded by frame area
			t.nodes = append(t.nodes, t.newNode(b))
		}
	}
	t.nodes[i].children = children

	for _, c := range children {
		if c != noNode {
			t.split(c)
		}
	}
}

func (t *quadtree) makeLeaf(i int32) {
	n := &t.nodes[i]
	n.leaf = len(t.leaves)
	n.lane = t.lanes.Spawn(t.queueCap, t.handler(n.leaf, n.box))
	t.leaves = append(t.leaves, i)
}

// visit calls fn for every leaf whose box intersects b, descending only into
// children that intersect b.
func (t *quadtree) visit(b Box, fn func(n *quadnode)) {
	if !b.Intersects(t.nodes[0].box) {
		return
	}
	t.visitNode(0, b, fn)
}

func (t *quadtree) visitNode(i int32, b Box, fn func(n *quadnode)) {
	n := &t.nodes[i]
	if n.isLeaf() {
		fn(n)
		return
	}
	for _, c := range n.children {
		if c != noNode && b.Intersects(t.nodes[c].box) {
			t.visitNode(c, b, fn)
		}
	}
}

// leafBoxes returns the boxes of all leaves in construction order.
func (t *quadtree) leafBoxes() []Box {
	boxes := make([]Box, len(t.leaves))
	for i, n := range t.leaves {
		boxes[i] = t.nodes[n].box
	}
	return boxes
}

// close closes every leaf queue and waits for the workers to drain and exit.
func (t *quadtree) close() {
	t.lanes.Close()
}
