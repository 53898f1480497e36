// Package lattice builds the triangular dot lattice: dots, structural lines and the fixed
// triangle topology, plus the mutable board snapshot played on top of it.
package lattice

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/triangles-backend/internal/entity"
)

// DefaultSpacing - distance between neighboring dots of a row.
const DefaultSpacing = 100.0

var (
	ErrMalformedRows = errors.New("malformed lattice rows")
	ErrUnknownLine   = errors.New("unknown line")
	ErrUnknownDot    = errors.New("unknown dot")
)

// Triangle - indices of the three structural lines bounding a triangle.
type Triangle struct {
	Lines [3]int
}

// Grid - the immutable part of a board. It is shared by every snapshot and every search branch.
type Grid struct {
	rows    []int
	spacing float64

	dots     []entity.Dot
	dotIndex map[[2]int]int

	keys      []string
	lineIndex map[string]int

	triangles []Triangle
}

// New - builds the lattice for the given row lengths.
func New(rows []int) (*Grid, error) {
	if err := validateRows(rows); err != nil {
		return nil, err
	}

	widest := slices.Max(rows)
	rowHeight := DefaultSpacing * math.Sqrt(3) / 2

	layout := make([][]entity.Dot, len(rows))
	for r, count := range rows {
		offsetX := float64(widest-count) * DefaultSpacing / 2
		layout[r] = make([]entity.Dot, count)
		for c := range count {
			layout[r][c] = entity.Dot{
				Row: r,
				Col: c,
				X:   float64(c)*DefaultSpacing + offsetX,
				Y:   float64(r) * rowHeight,
			}
		}
	}

	keys := make(map[string]struct{})
	for r, count := range rows {
		for c := range count {
			dot := layout[r][c]

			if c < count-1 {
				keys[entity.LineKey(dot, layout[r][c+1])] = struct{}{}
			}

			if r == len(rows)-1 {
				continue
			}

			next := rows[r+1]
			shift := float64(next-count) / 2
			left := int(math.Floor(float64(c) + shift))
			right := int(math.Ceil(float64(c) + shift))

			if left >= 0 && left < next {
				keys[entity.LineKey(dot, layout[r+1][left])] = struct{}{}
			}

			if right >= 0 && right < next && right != left {
				keys[entity.LineKey(dot, layout[r+1][right])] = struct{}{}
			}
		}
	}

	grid := newGrid(rows, layout, keys)
	grid.triangles = grid.enumerateTriangles()

	return grid, nil
}

// FromState - rebuilds a grid and its board from a client-provided state. Structural lines are
// the keys of lines; triangles are derived from the dots when none are given.
func FromState(dots [][]entity.Dot, lines map[string]entity.LineState, triangles []entity.TriangleState) (*Grid, *Board, error) {
	if len(dots) == 0 {
		return nil, nil, fmt.Errorf("%w: no dots", ErrMalformedRows)
	}

	rows := make([]int, len(dots))
	for r, row := range dots {
		rows[r] = len(row)
	}

	keys := make(map[string]struct{}, len(lines))
	for key := range lines {
		keys[key] = struct{}{}
	}

	grid := newGrid(rows, dots, keys)

	for key := range lines {
		a, b, err := parseKey(key)
		if err != nil {
			return nil, nil, err
		}

		if _, ok := grid.dotIndex[a]; !ok {
			return nil, nil, fmt.Errorf("%w: %d,%d in line %s", ErrUnknownDot, a[0], a[1], key)
		}

		if _, ok := grid.dotIndex[b]; !ok {
			return nil, nil, fmt.Errorf("%w: %d,%d in line %s", ErrUnknownDot, b[0], b[1], key)
		}
	}

	if len(triangles) == 0 {
		grid.triangles = grid.enumerateTriangles()
	} else {
		grid.triangles = make([]Triangle, len(triangles))
		for t, tri := range triangles {
			if len(tri.LineKeys) != 3 {
				return nil, nil, fmt.Errorf("%w: triangle %d has %d lines", ErrUnknownLine, t, len(tri.LineKeys))
			}

			for i, key := range tri.LineKeys {
				index, ok := grid.lineIndex[key]
				if !ok {
					return nil, nil, fmt.Errorf("%w: %s in triangle %d", ErrUnknownLine, key, t)
				}
				grid.triangles[t].Lines[i] = index
			}
		}
	}

	board, err := BoardFromState(grid, lines, triangles)
	if err != nil {
		return nil, nil, err
	}

	return grid, board, nil
}

func validateRows(rows []int) error {
	if len(rows) == 0 {
		return fmt.Errorf("%w: no rows", ErrMalformedRows)
	}

	for r, count := range rows {
		if count < 1 {
			return fmt.Errorf("%w: row %d has %d dots", ErrMalformedRows, r, count)
		}

		// rows must be offset by half a spacing, otherwise diagonals leave the lattice
		if r > 0 && (count-rows[r-1])%2 == 0 {
			return fmt.Errorf("%w: rows %d and %d differ by an even count", ErrMalformedRows, r-1, r)
		}
	}

	return nil
}

func newGrid(rows []int, layout [][]entity.Dot, keys map[string]struct{}) *Grid {
	grid := &Grid{
		rows:      slices.Clone(rows),
		spacing:   DefaultSpacing,
		dotIndex:  make(map[[2]int]int),
		lineIndex: make(map[string]int, len(keys)),
	}

	for _, row := range layout {
		for _, dot := range row {
			grid.dotIndex[[2]int{dot.Row, dot.Col}] = len(grid.dots)
			grid.dots = append(grid.dots, dot)
		}
	}

	grid.keys = make([]string, 0, len(keys))
	for key := range keys {
		grid.keys = append(grid.keys, key)
	}
	sort.Strings(grid.keys)

	for i, key := range grid.keys {
		grid.lineIndex[key] = i
	}

	return grid
}

// enumerateTriangles - every triple of dots whose three pairwise lines are structural.
func (that *Grid) enumerateTriangles() []Triangle {
	var triangles []Triangle

	for i := range that.dots {
		for j := i + 1; j < len(that.dots); j++ {
			ab, ok := that.lineIndex[entity.LineKey(that.dots[i], that.dots[j])]
			if !ok {
				continue
			}

			for k := j + 1; k < len(that.dots); k++ {
				ac, ok := that.lineIndex[entity.LineKey(that.dots[i], that.dots[k])]
				if !ok {
					continue
				}

				bc, ok := that.lineIndex[entity.LineKey(that.dots[j], that.dots[k])]
				if !ok {
					continue
				}

				triangles = append(triangles, Triangle{Lines: [3]int{ab, ac, bc}})
			}
		}
	}

	return triangles
}

func parseKey(key string) ([2]int, [2]int, error) {
	first, second, ok := strings.Cut(key, "_")
	if !ok {
		return [2]int{}, [2]int{}, fmt.Errorf("%w: malformed key %q", ErrUnknownLine, key)
	}

	a, err := parseDot(first)
	if err != nil {
		return [2]int{}, [2]int{}, fmt.Errorf("%w: malformed key %q", ErrUnknownLine, key)
	}

	b, err := parseDot(second)
	if err != nil {
		return [2]int{}, [2]int{}, fmt.Errorf("%w: malformed key %q", ErrUnknownLine, key)
	}

	return a, b, nil
}

func parseDot(s string) ([2]int, error) {
	row, col, ok := strings.Cut(s, ",")
	if !ok {
		return [2]int{}, ErrUnknownDot
	}

	r, err := strconv.Atoi(row)
	if err != nil {
		return [2]int{}, err
	}

	c, err := strconv.Atoi(col)
	if err != nil {
		return [2]int{}, err
	}

	return [2]int{r, c}, nil
}

func (that *Grid) Rows() []int {
	return slices.Clone(that.rows)
}

func (that *Grid) Spacing() float64 {
	return that.spacing
}

// Dots - all dots in row-major order. The slice is shared and must not be modified.
func (that *Grid) Dots() []entity.Dot {
	return that.dots
}

func (that *Grid) Dot(row, col int) (entity.Dot, bool) {
	index, ok := that.dotIndex[[2]int{row, col}]
	if !ok {
		return entity.Dot{}, false
	}
	return that.dots[index], true
}

func (that *Grid) LineCount() int {
	return len(that.keys)
}

func (that *Grid) LineKey(index int) string {
	return that.keys[index]
}

func (that *Grid) LineIndex(key string) (int, bool) {
	index, ok := that.lineIndex[key]
	return index, ok
}

// Triangles - the fixed triangle topology. The slice is shared and must not be modified.
func (that *Grid) Triangles() []Triangle {
	return that.triangles
}

func (that *Grid) TriangleCount() int {
	return len(that.triangles)
}

// TriangleKeys - the canonical keys of the lines bounding a triangle.
func (that *Grid) TriangleKeys(index int) []string {
	tri := that.triangles[index]
	return []string{that.keys[tri.Lines[0]], that.keys[tri.Lines[1]], that.keys[tri.Lines[2]]}
}

// Layout - dots grouped by row.
func (that *Grid) Layout() [][]entity.Dot {
	layout := make([][]entity.Dot, len(that.rows))
	for _, dot := range that.dots {
		layout[dot.Row] = append(layout[dot.Row], dot)
	}
	return layout
}
