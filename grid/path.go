package grid

// Path finds a shortest route from one cell to another through cells for
// which passable reports true, stepping orthogonally or, with diagonals,
// in all eight directions. The route includes both endpoints; the endpoints
// themselves need not be passable.
//
// Behavior:
//  1. Both endpoints must be present, otherwise ErrMissingCell.
//  2. BFS from the start, trying neighbors clockwise from north, so ties
//     resolve toward the earliest direction in that order.
//  3. Reconstruct the route from predecessors once the target is reached.
//
// Returns ErrNoPath when the target is unreachable.
// Complexity: O(R·C·d) time, O(R·C) memory.
func (g *Grid[T]) Path(from, to Coord, passable func(T) bool, diagonals bool) ([]Coord, error) {
	if !g.Has(from) {
		return nil, missing(from)
	}
	if !g.Has(to) {
		return nil, missing(to)
	}
	if from == to {
		return []Coord{from}, nil
	}

	dirs := Cardinals[:]
	if diagonals {
		dirs = Directions[:]
	}
	prev := map[Coord]Coord{from: from}
	queue := []Coord{from}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range dirs {
			v := u.Step(d)
			if _, visited := prev[v]; visited {
				continue
			}
			val, ok := g.cells[v]
			if !ok {
				continue
			}
			if v != to && !passable(val) {
				continue
			}
			prev[v] = u
			if v == to {
				return rebuild(prev, from, to), nil
			}
			queue = append(queue, v)
		}
	}

	return nil, ErrNoPath
}

// rebuild walks predecessors back from to and returns the route from → to.
func rebuild(prev map[Coord]Coord, from, to Coord) []Coord {
	var route []Coord
	for c := to; c != from; c = prev[c] {
		route = append(route, c)
	}
	route = append(route, from)
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}

	return route
}
