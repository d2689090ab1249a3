package geometry

import (
	"github.com/liliilli/SH-RayTracer-sub000/pkg/core"
	"github.com/liliilli/SH-RayTracer-sub000/pkg/kdtree"
)

// Index is the top-level K-D tree over a scene's primitives
type Index struct {
	tree *kdtree.Tree[*Primitive]
}

// NewIndex builds the index. The primitives must not change afterwards.
func NewIndex(primitives []*Primitive) *Index {
	return &Index{tree: kdtree.Build(primitives)}
}

// Query returns every crossing of the ray with the primitives in the leaves
// it reaches, in no particular order and including non-positive t
func (idx *Index) Query(ray core.Ray) []Hit {
	return kdtree.Collect(idx.tree, ray, func(_ int, p *Primitive) []Hit {
		return p.Intersect(ray)
	})
}

// Primitives returns the indexed primitives
func (idx *Index) Primitives() []*Primitive {
	return idx.tree.Items()
}

// BoundingBox returns the bounds of the whole scene
func (idx *Index) BoundingBox() core.AABB {
	return idx.tree.BoundingBox()
}

// Stats returns the statistics of the top-level tree
func (idx *Index) Stats() kdtree.Stats {
	return idx.tree.Stats()
}
