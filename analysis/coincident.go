package analysis

import (
	"sort"

	"github.com/soypat/flasher"
	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r2"
)

var (
	_ kdtree.Interface = kdVertices{}
	_ kdtree.Keeper    = &radiusKeeper{}
)

// CoincidentVertices returns the pairs of distinct vertex indices {i, j}, i < j,
// whose positions lie within tol of each other, sorted ascending.
// Generated patterns are never deduplicated so inputs such as a zero hub
// radius produce coincident vertices that consumers may want to detect.
func CoincidentVertices(p flasher.Pattern, tol float64) [][2]int {
	if len(p.Vertices) < 2 {
		return nil
	}
	kd := make(kdVertices, len(p.Vertices))
	for i, v := range p.Vertices {
		kd[i] = kdVertex{pos: v.Pos.XY(), idx: v.Index}
	}
	tree := kdtree.New(kd, false)
	var pairs [][2]int
	for _, v := range p.Vertices {
		q := kdVertex{pos: v.Pos.XY(), idx: v.Index}
		keep := &radiusKeeper{radius2: tol * tol}
		tree.NearestSet(keep, q)
		for _, c := range keep.Heap {
			other := c.Comparable.(kdVertex)
			if other.idx > q.idx {
				pairs = append(pairs, [2]int{q.idx, other.idx})
			}
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})
	return pairs
}

// radiusKeeper keeps every result within sqrt(radius2) of the query.
// kdtree.DistKeeper prunes against the furthest kept result instead.
type radiusKeeper struct {
	kdtree.Heap
	radius2 float64
}

func (k *radiusKeeper) Keep(c kdtree.ComparableDist) {
	if c.Dist <= k.radius2 {
		k.Heap = append(k.Heap, c)
	}
}

// Max returns the search radius. Its Comparable is non-nil so that
// NearestSet does not mistake it for a sentinel and drop a result.
func (k *radiusKeeper) Max() kdtree.ComparableDist {
	return kdtree.ComparableDist{Comparable: kdVertex{idx: -1}, Dist: k.radius2}
}

type kdVertices []kdVertex

type kdVertex struct {
	pos r2.Vec
	idx int
}

func (k kdVertices) Index(i int) kdtree.Comparable { return k[i] }

// Len returns the length of the list.
func (k kdVertices) Len() int { return len(k) }

// Pivot partitions the list based on the dimension specified.
func (k kdVertices) Pivot(d kdtree.Dim) int {
	p := kdPlane{dim: int(d), vertices: k}
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}

// Slice returns a slice of the list using zero-based half
// open indexing equivalent to built-in slice indexing.
func (k kdVertices) Slice(start, end int) kdtree.Interface {
	return k[start:end]
}

// Compare returns the signed distance of a from the plane passing through
// b and perpendicular to the dimension d.
func (a kdVertex) Compare(b kdtree.Comparable, d kdtree.Dim) float64 {
	return kdComp(a, b.(kdVertex), int(d))
}

// Dims returns the number of dimensions described in the Comparable.
func (a kdVertex) Dims() int { return 2 }

// Distance returns the squared Euclidean distance between the receiver and
// the parameter.
func (a kdVertex) Distance(b kdtree.Comparable) float64 {
	return r2.Norm2(r2.Sub(a.pos, b.(kdVertex).pos))
}

// c = a.dim - b.dim
func kdComp(a, b kdVertex, dim int) float64 {
	if dim == 0 {
		return a.pos.X - b.pos.X
	}
	return a.pos.Y - b.pos.Y
}

type kdPlane struct {
	dim      int
	vertices kdVertices
}

func (p kdPlane) Less(i, j int) bool {
	return kdComp(p.vertices[i], p.vertices[j], p.dim) < 0
}
func (p kdPlane) Swap(i, j int) {
	p.vertices[i], p.vertices[j] = p.vertices[j], p.vertices[i]
}
func (p kdPlane) Len() int {
	return len(p.vertices)
}
func (p kdPlane) Slice(start, end int) kdtree.SortSlicer {
	p.vertices = p.vertices[start:end]
	return p
}
