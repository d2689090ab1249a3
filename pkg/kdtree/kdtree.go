// Package kdtree implements the binary spatial index shared by scene
// primitives and mesh faces.
//
// A tree is built once, top-down, and is read-only afterwards, so any number
// of goroutines may query it concurrently.
package kdtree

import (
	"fmt"
	"math"

	"github.com/liliilli/SH-RayTracer-sub000/pkg/core"
)

// Item is anything the tree can partition
type Item interface {
	BoundingBox() core.AABB
	// Centroid is the point used to decide which side of a split the item
	// falls on.
	Centroid() core.Vec3
}

// A node stops splitting when either child would share this fraction of its
// items with its sibling.
const maxSharedRatio = 0.5

// Node is either a leaf holding item indices or an internal node owning
// exactly two children.
type Node struct {
	BoundingBox core.AABB
	Axis        int
	Left        *Node
	Right       *Node
	Items       []int // Indices into the tree's item arena (leaf only)
}

// IsLeaf reports whether the node holds items directly
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Tree is a K-D tree over an arena of items
type Tree[T Item] struct {
	items []T
	root  *Node
}

// Build constructs a tree over items. The slice is copied; the tree never
// reorders or mutates the caller's items.
func Build[T Item](items []T) *Tree[T] {
	arena := make([]T, len(items))
	copy(arena, items)

	tree := &Tree[T]{items: arena}
	if len(arena) == 0 {
		tree.root = &Node{}
		return tree
	}

	indices := make([]int, len(arena))
	for i, item := range arena {
		if box := item.BoundingBox(); !box.IsValid() {
			panic(fmt.Sprintf("kdtree: item %d has invalid bounding box %v", i, box))
		}
		indices[i] = i
	}

	tree.root = tree.build(indices)
	return tree
}

func (t *Tree[T]) build(indices []int) *Node {
	box := t.items[indices[0]].BoundingBox()
	for _, idx := range indices[1:] {
		box = box.Union(t.items[idx].BoundingBox())
	}

	if len(indices) == 1 {
		return &Node{BoundingBox: box, Items: indices}
	}

	axis := box.LongestAxis()
	split := t.meanCentroid(indices).Axis(axis)

	var left, right []int
	for _, idx := range indices {
		if t.items[idx].Centroid().Axis(axis) < split {
			left = append(left, idx)
		} else {
			right = append(right, idx)
		}
	}

	// A one-sided partition made no progress. Mirror the populated side so
	// the shared-item check below turns this node into a leaf.
	if len(left) == 0 && len(right) > 0 {
		left = right
	} else if len(right) == 0 && len(left) > 0 {
		right = left
	}

	matches := countShared(left, right)
	leftRatio := float64(matches) / float64(len(left))
	rightRatio := float64(matches) / float64(len(right))

	if leftRatio < maxSharedRatio && rightRatio < maxSharedRatio {
		return &Node{
			BoundingBox: box,
			Axis:        axis,
			Left:        t.build(left),
			Right:       t.build(right),
		}
	}

	return &Node{BoundingBox: box, Axis: axis, Items: indices}
}

func (t *Tree[T]) meanCentroid(indices []int) core.Vec3 {
	var sum core.Vec3
	for _, idx := range indices {
		sum = sum.Add(t.items[idx].Centroid())
	}
	return sum.Multiply(1.0 / float64(len(indices)))
}

func countShared(left, right []int) int {
	inLeft := make(map[int]struct{}, len(left))
	for _, idx := range left {
		inLeft[idx] = struct{}{}
	}

	matches := 0
	for _, idx := range right {
		if _, ok := inLeft[idx]; ok {
			matches++
		}
	}
	return matches
}

// Query visits every item stored in a leaf whose ancestors' bounding boxes
// are all crossed by the ray. Both subtrees of a crossed node are visited and
// nothing is sorted; the visitor decides what a hit is.
func (t *Tree[T]) Query(ray core.Ray, visit func(index int, item T)) {
	t.queryNode(t.root, ray, visit)
}

func (t *Tree[T]) queryNode(node *Node, ray core.Ray, visit func(index int, item T)) {
	if node == nil {
		return
	}

	if node.IsLeaf() {
		for _, idx := range node.Items {
			visit(idx, t.items[idx])
		}
		return
	}

	if !node.BoundingBox.Hit(ray, 0, math.Inf(1)) {
		return
	}

	t.queryNode(node.Left, ray, visit)
	t.queryNode(node.Right, ray, visit)
}

// Collect runs intersect on every candidate item and concatenates the results
func Collect[T Item, R any](tree *Tree[T], ray core.Ray, intersect func(index int, item T) []R) []R {
	var results []R
	tree.Query(ray, func(index int, item T) {
		results = append(results, intersect(index, item)...)
	})
	return results
}

// Len returns the number of items in the arena
func (t *Tree[T]) Len() int {
	return len(t.items)
}

// Item returns the item stored at index
func (t *Tree[T]) Item(index int) T {
	return t.items[index]
}

// Items returns the item arena. Callers must not modify it.
func (t *Tree[T]) Items() []T {
	return t.items
}

// Root returns the root node
func (t *Tree[T]) Root() *Node {
	return t.root
}

// BoundingBox returns the bounds of everything in the tree
func (t *Tree[T]) BoundingBox() core.AABB {
	return t.root.BoundingBox
}
