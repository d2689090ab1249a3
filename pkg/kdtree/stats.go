package kdtree

// Stats describes the shape of a built tree
type Stats struct {
	TotalNodes    int
	LeafNodes     int
	MaxDepth      int
	AvgLeafDepth  float64
	TotalItems    int // Item references summed over leaves
	MaxLeafItems  int
	EmptyTree     bool
	DistinctItems int
}

// Stats walks the tree and collects structural statistics
func (t *Tree[T]) Stats() Stats {
	stats := Stats{DistinctItems: len(t.items), EmptyTree: len(t.items) == 0}
	collectStats(t.root, 0, &stats)

	if stats.LeafNodes > 0 {
		stats.AvgLeafDepth = stats.AvgLeafDepth / float64(stats.LeafNodes)
	}
	return stats
}

func collectStats(node *Node, depth int, stats *Stats) {
	if node == nil {
		return
	}

	stats.TotalNodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	if node.IsLeaf() {
		stats.LeafNodes++
		stats.TotalItems += len(node.Items)
		stats.AvgLeafDepth += float64(depth)
		if len(node.Items) > stats.MaxLeafItems {
			stats.MaxLeafItems = len(node.Items)
		}
		return
	}

	collectStats(node.Left, depth+1, stats)
	collectStats(node.Right, depth+1, stats)
}
