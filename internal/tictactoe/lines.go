package tictactoe

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
)

// Line is a set of flat board indices, ascending, that wins when one mark holds all of them.
type Line []int

// LineSet holds every winning line for a difficulty. It is shared by callers and must not be modified.
type LineSet struct {
	Difficulty entity.Difficulty `json:"difficulty"`
	Size       int               `json:"size"`
	Run        int               `json:"run"`
	Lines      []Line            `json:"lines"`
}

type Strategy string

const (
	// StrategyRuns walks rows, columns and both diagonals collecting contiguous runs.
	StrategyRuns Strategy = "runs"
	// StrategyWindowed slides a run-sized square over the board and keeps collinear combinations of its cells.
	StrategyWindowed Strategy = "windowed"
)

var ErrUnknownStrategy = errors.New("unknown line strategy")

func ParseStrategy(value string) (Strategy, error) {
	switch strategy := Strategy(value); strategy {
	case StrategyRuns, StrategyWindowed:
		return strategy, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, value)
	}
}

// GenerateLines - builds the winning lines for the difficulty by collinear filtering over sliding windows.
func GenerateLines(difficulty entity.Difficulty) (LineSet, error) {
	return GenerateLinesWith(StrategyWindowed, difficulty)
}

// GenerateLinesWith - builds the winning lines for the difficulty with the given strategy.
func GenerateLinesWith(strategy Strategy, difficulty entity.Difficulty) (LineSet, error) {
	size, run, err := difficulty.Dimensions()
	if err != nil {
		return LineSet{}, fmt.Errorf("failed to generate lines: %w", err)
	}

	var lines []Line

	switch strategy {
	case StrategyRuns:
		lines = runLines(size, run)
	case StrategyWindowed:
		lines = windowedLines(size, run)
	default:
		return LineSet{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, string(strategy))
	}

	sortLines(lines)

	return LineSet{
		Difficulty: difficulty,
		Size:       size,
		Run:        run,
		Lines:      lines,
	}, nil
}

// window - returns the flat indices of the run x run square anchored at (row, col), row-major.
func window(size, run, row, col int) []int {
	cells := make([]int, 0, run*run)
	for r := row; r < row+run; r++ {
		for c := col; c < col+run; c++ {
			cells = append(cells, ToIndex(Point{Row: r, Col: c}, size))
		}
	}

	return cells
}

// windowCandidates - collinear combinations of every window placement, overlapping windows included.
func windowCandidates(size, run int) []Line {
	var candidates []Line

	for row := 0; row <= size-run; row++ {
		for col := 0; col <= size-run; col++ {
			for _, combo := range combinations(window(size, run, row, col), run) {
				if allCollinear(combo, size) {
					candidates = append(candidates, combo)
				}
			}
		}
	}

	return candidates
}

func windowedLines(size, run int) []Line {
	seen := make(map[string]struct{})
	lines := make([]Line, 0)

	for _, candidate := range windowCandidates(size, run) {
		key := fmt.Sprint(candidate)
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		lines = append(lines, candidate)
	}

	return lines
}

var directions = []Point{
	{Row: 0, Col: 1},  // row
	{Row: 1, Col: 0},  // column
	{Row: 1, Col: 1},  // diagonal
	{Row: 1, Col: -1}, // anti-diagonal
}

func runLines(size, run int) []Line {
	lines := make([]Line, 0)

	for index := 0; index < size*size; index++ {
		start := ToPoint(index, size)

		for _, direction := range directions {
			end := Point{
				Row: start.Row + direction.Row*(run-1),
				Col: start.Col + direction.Col*(run-1),
			}
			if !inBounds(end, size) {
				continue
			}

			line := make(Line, run)
			for step := 0; step < run; step++ {
				line[step] = ToIndex(Point{
					Row: start.Row + direction.Row*step,
					Col: start.Col + direction.Col*step,
				}, size)
			}

			slices.Sort(line)
			lines = append(lines, line)
		}
	}

	return lines
}

func inBounds(point Point, size int) bool {
	return point.Row >= 0 && point.Row < size && point.Col >= 0 && point.Col < size
}

func sortLines(lines []Line) {
	slices.SortFunc(lines, func(a, b Line) int {
		return slices.Compare(a, b)
	})
}
