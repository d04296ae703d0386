package geometry

import (
	"math"
	"slices"

	"github.com/df07/go-pathtracer/pkg/core"
)

const (
	// leafThreshold is the primitive count below which a node is not split
	leafThreshold = 8
	// balanceFactor bounds how large the bigger child of a split may be,
	// as a fraction of its parent
	balanceFactor = 0.85
)

// KDNode is one node of a KD-tree. Leaves have Axis == core.AxisNone and
// hold every primitive overlapping their region; a primitive straddling a
// split plane is stored on both sides.
type KDNode struct {
	Axis       core.Axis
	Pos        float64
	Primitives []Primitive
	Left       *KDNode
	Right      *KDNode
}

// IsLeaf reports whether the node holds primitives instead of children
func (n *KDNode) IsLeaf() bool {
	return n.Axis == core.AxisNone
}

// KDTree is a spatial index over primitives using median splits
type KDTree struct {
	bbox core.BBox
	root *KDNode
}

// KDStats summarises the shape of a built tree
type KDStats struct {
	Primitives int // Distinct primitives indexed
	Nodes      int
	Leaves     int
	MaxDepth   int
	References int // Primitive entries across all leaves, counting duplicates
	MaxLeaf    int // Largest leaf
}

// SurroundingBBox returns the union of the primitives' bounding boxes
func SurroundingBBox(prims []Primitive) core.BBox {
	box := core.EmptyBBox()
	for _, p := range prims {
		box = box.Union(p.BoundingBox())
	}
	return box
}

// NewKDTree builds a tree over prims. The slice is not retained.
func NewKDTree(prims []Primitive) *KDTree {
	prims = slices.Clone(prims)
	boxes := make([]core.BBox, len(prims))
	for i, p := range prims {
		boxes[i] = p.BoundingBox()
	}

	tree := &KDTree{bbox: core.EmptyBBox()}
	for _, b := range boxes {
		tree.bbox = tree.bbox.Union(b)
	}
	tree.root = buildNode(prims, boxes)
	return tree
}

// BoundingBox returns the bounds of everything in the tree
func (t *KDTree) BoundingBox() core.BBox {
	return t.bbox
}

// Root returns the root node
func (t *KDTree) Root() *KDNode {
	return t.root
}

func buildNode(prims []Primitive, boxes []core.BBox) *KDNode {
	node := &KDNode{Axis: core.AxisNone, Primitives: prims}
	if len(prims) < leafThreshold {
		return node
	}

	best := int(balanceFactor * float64(len(prims)))
	bestAxis := core.AxisNone
	bestPos := 0.0
	for _, axis := range core.Axes {
		pos, ok := medianSplit(boxes, axis)
		if !ok {
			continue
		}
		if count := partitionCount(boxes, axis, pos); count < best {
			best, bestAxis, bestPos = count, axis, pos
		}
	}

	// No split shrinks the larger side enough
	if bestAxis == core.AxisNone {
		return node
	}

	leftPrims, leftBoxes, rightPrims, rightBoxes := partition(prims, boxes, bestAxis, bestPos)
	node.Axis = bestAxis
	node.Pos = bestPos
	node.Primitives = nil
	node.Left = buildNode(leftPrims, leftBoxes)
	node.Right = buildNode(rightPrims, rightBoxes)
	return node
}

// medianSplit returns the median of every box's min and max coordinate
// along axis. Infinite extents (planes) can push the median to infinity,
// in which case the axis is unusable.
func medianSplit(boxes []core.BBox, axis core.Axis) (float64, bool) {
	coords := make([]float64, 0, 2*len(boxes))
	for _, b := range boxes {
		coords = append(coords, b.Min.Axis(axis), b.Max.Axis(axis))
	}
	slices.Sort(coords)

	n := len(coords)
	var median float64
	if n%2 == 1 {
		median = coords[n/2]
	} else {
		median = (coords[n/2-1] + coords[n/2]) / 2
	}

	if math.IsInf(median, 0) || math.IsNaN(median) {
		return 0, false
	}
	return median, true
}

// partitionCount returns the size of the larger side of a split
func partitionCount(boxes []core.BBox, axis core.Axis, pos float64) int {
	left, right := 0, 0
	for _, b := range boxes {
		l, r := b.Partition(axis, pos)
		if l {
			left++
		}
		if r {
			right++
		}
	}
	return max(left, right)
}

// partition splits prims by the plane; straddling primitives go to both sides
func partition(prims []Primitive, boxes []core.BBox, axis core.Axis, pos float64) (
	leftPrims []Primitive, leftBoxes []core.BBox, rightPrims []Primitive, rightBoxes []core.BBox) {
	for i, b := range boxes {
		l, r := b.Partition(axis, pos)
		if l {
			leftPrims = append(leftPrims, prims[i])
			leftBoxes = append(leftBoxes, b)
		}
		if r {
			rightPrims = append(rightPrims, prims[i])
			rightBoxes = append(rightBoxes, b)
		}
	}
	return
}

// Intersect finds the closest primitive hit along the ray, updating hit
func (t *KDTree) Intersect(ray core.Ray, hit *Hit) bool {
	tmin, tmax, ok := t.bbox.Intersect(ray)
	if !ok || tmax <= 0 {
		return false
	}
	return t.root.intersect(ray, tmin, tmax, hit)
}

// intersect walks the subtree front to back over [tmin, tmax]. The hit is a
// shared accumulator, so any improvement from either child is kept.
func (n *KDNode) intersect(ray core.Ray, tmin, tmax float64, hit *Hit) bool {
	if n.IsLeaf() {
		found := false
		for _, p := range n.Primitives {
			if p.Intersect(ray, hit) {
				found = true
			}
		}
		return found
	}

	o := ray.Origin.Axis(n.Axis)
	d := ray.Direction.Axis(n.Axis)
	tsplit := (n.Pos - o) / d

	// The child containing the origin is visited first. An origin on the
	// plane counts as left unless the ray heads right.
	near, far := n.Left, n.Right
	if !(o < n.Pos || (o == n.Pos && d <= 0)) {
		near, far = n.Right, n.Left
	}

	if tsplit > tmax || tsplit <= 0 {
		return near.intersect(ray, tmin, tmax, hit)
	}
	if tsplit < tmin {
		return far.intersect(ray, tmin, tmax, hit)
	}

	found := near.intersect(ray, tmin, tsplit, hit)
	if hit.T < tsplit {
		return found
	}
	if far.intersect(ray, tsplit, min(tmax, hit.T), hit) {
		found = true
	}
	return found
}

// Stats walks the tree and reports its shape
func (t *KDTree) Stats() KDStats {
	var stats KDStats
	seen := make(map[Primitive]struct{})
	var walk func(n *KDNode, depth int)
	walk = func(n *KDNode, depth int) {
		stats.Nodes++
		stats.MaxDepth = max(stats.MaxDepth, depth)
		if n.IsLeaf() {
			stats.Leaves++
			stats.References += len(n.Primitives)
			stats.MaxLeaf = max(stats.MaxLeaf, len(n.Primitives))
			for _, p := range n.Primitives {
				seen[p] = struct{}{}
			}
			return
		}
		walk(n.Left, depth+1)
		walk(n.Right, depth+1)
	}
	walk(t.root, 0)
	stats.Primitives = len(seen)
	return stats
}
