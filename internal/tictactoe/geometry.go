package tictactoe

// Point is a cell position on a square board.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// ToPoint - maps a flat board index to its grid position.
func ToPoint(index, size int) Point {
	return Point{Row: index / size, Col: index % size}
}

// ToIndex - maps a grid position back to its flat board index.
func ToIndex(point Point, size int) int {
	return point.Row*size + point.Col
}

// collinear reports whether the triangle a, b, c has zero signed area.
func collinear(a, b, c Point) bool {
	area := a.Row*(b.Col-c.Col) +
		b.Row*(c.Col-a.Col) +
		c.Row*(a.Col-b.Col)

	return area == 0
}

// allCollinear checks every consecutive triple. For distinct points that is
// enough for the whole sequence to share one line.
func allCollinear(indices []int, size int) bool {
	for i := 0; i+2 < len(indices); i++ {
		a := ToPoint(indices[i], size)
		b := ToPoint(indices[i+1], size)
		c := ToPoint(indices[i+2], size)

		if !collinear(a, b, c) {
			return false
		}
	}

	return true
}

// combinations - returns every k-element subset of items in lexicographic order of positions.
func combinations(items []int, k int) [][]int {
	if k <= 0 || k > len(items) {
		return nil
	}

	positions := make([]int, k)
	for i := range positions {
		positions[i] = i
	}

	var result [][]int
	for {
		combo := make([]int, k)
		for i, position := range positions {
			combo[i] = items[position]
		}
		result = append(result, combo)

		// find the rightmost position that can still move right
		i := k - 1
		for i >= 0 && positions[i] == len(items)-k+i {
			i--
		}
		if i < 0 {
			return result
		}

		positions[i]++
		for j := i + 1; j < k; j++ {
			positions[j] = positions[j-1] + 1
		}
	}
}
