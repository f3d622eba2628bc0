package grid

// Regions finds all contiguous regions of cells for which match reports true.
// Adjacency is orthogonal, or all eight directions when diagonals is set.
// Regions are discovered in row-major order of their first cell and each
// region lists its coordinates in BFS order from that cell.
//
// Time:   O(R·C·d), where d = 4 or 8.
// Memory: O(R·C) for visited flags and output.
func (g *Grid[T]) Regions(match func(T) bool, diagonals bool) [][]Coord {
	dirs := Cardinals[:]
	if diagonals {
		dirs = Directions[:]
	}
	seen := make(map[Coord]bool, len(g.cells))
	var regions [][]Coord

	for _, start := range g.Coords() {
		if seen[start] || !match(g.cells[start]) {
			continue
		}
		// BFS to collect the region
		queue := []Coord{start}
		seen[start] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, d := range dirs {
				v := u.Step(d)
				val, ok := g.cells[v]
				if !ok || seen[v] || !match(val) {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		regions = append(regions, queue)
	}

	return regions
}
