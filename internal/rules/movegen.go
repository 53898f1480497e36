// Package rules enumerates, validates and applies moves on a lattice board.
package rules

import (
	"errors"
	"math"
	"slices"

	"github.com/rocketscienceinc/triangles-backend/internal/entity"
	"github.com/rocketscienceinc/triangles-backend/internal/lattice"
)

const (
	// angleTolerance - allowed deviation in degrees from a lattice direction.
	angleTolerance = 2.5
	// degenerateDelta - displacements below this on both axes skip the angle filter.
	degenerateDelta = 0.1
	// boxPadding and crossEpsilon are scaled by the lattice spacing.
	boxPadding   = 0.05
	crossEpsilon = 1e-6
	sortEpsilon  = 1e-6
)

var ErrInvalidMove = errors.New("invalid move")

var latticeAngles = [...]float64{0, 60, 120, 180}

type Options struct {
	RequiredLength int
	AllowShorter   bool
}

// Generator - enumerates legal moves for one grid and move length. The geometric part of the
// validation depends only on the grid, so it runs once per pair at construction; legality on a
// board then only checks for an undrawn segment.
type Generator struct {
	grid *lattice.Grid
	opts Options

	candidates []entity.Move
}

func NewGenerator(grid *lattice.Grid, opts Options) *Generator {
	if opts.RequiredLength < 1 {
		opts.RequiredLength = 1
	}

	generator := &Generator{
		grid: grid,
		opts: opts,
	}

	dots := grid.Dots()
	for i := range dots {
		for j := i + 1; j < len(dots); j++ {
			if move, ok := generator.geometry(dots[i], dots[j]); ok {
				generator.candidates = append(generator.candidates, move)
			}
		}
	}

	return generator
}

func (that *Generator) Grid() *lattice.Grid {
	return that.grid
}

func (that *Generator) Options() Options {
	return that.opts
}

// Legal - every legal move on the board. Legality does not depend on whose turn it is.
func (that *Generator) Legal(board *lattice.Board) []entity.Move {
	moves := make([]entity.Move, 0, len(that.candidates))
	for _, move := range that.candidates {
		if hasUndrawn(move, board) {
			moves = append(moves, move)
		}
	}
	return moves
}

// Validate - runs the full validation for a dot pair given by row and col.
func (that *Generator) Validate(from, to entity.Dot, board *lattice.Board) (entity.Move, bool) {
	a, ok := that.grid.Dot(from.Row, from.Col)
	if !ok {
		return entity.Move{}, false
	}

	b, ok := that.grid.Dot(to.Row, to.Col)
	if !ok {
		return entity.Move{}, false
	}

	move, ok := that.geometry(a, b)
	if !ok || !hasUndrawn(move, board) {
		return entity.Move{}, false
	}

	return move, true
}

// geometry - angle filter, collinear chain, segment decomposition and the length and
// existence checks.
func (that *Generator) geometry(a, b entity.Dot) (entity.Move, bool) {
	if a.Same(b) {
		return entity.Move{}, false
	}

	dx, dy := b.X-a.X, b.Y-a.Y
	if math.Abs(dx) > degenerateDelta || math.Abs(dy) > degenerateDelta {
		if !onLatticeAngle(dx, dy) {
			return entity.Move{}, false
		}
	}

	chain := that.collinear(a, b)

	count := len(chain) - 1
	if that.opts.AllowShorter {
		if count < 1 || count > that.opts.RequiredLength {
			return entity.Move{}, false
		}
	} else if count != that.opts.RequiredLength {
		return entity.Move{}, false
	}

	move := entity.Move{
		From:     a,
		To:       b,
		Segments: make([]string, count),
		Lines:    make([]int, count),
	}

	for i := range count {
		key := entity.LineKey(chain[i], chain[i+1])

		index, ok := that.grid.LineIndex(key)
		if !ok {
			return entity.Move{}, false
		}

		move.Segments[i] = key
		move.Lines[i] = index
	}

	return move, true
}

// collinear - the dots inside the padded bounding box of a and b lying on line ab,
// ordered by x and then y.
func (that *Generator) collinear(a, b entity.Dot) []entity.Dot {
	spacing := that.grid.Spacing()
	padding := boxPadding * spacing
	epsilon := crossEpsilon * spacing * spacing

	minX, maxX := math.Min(a.X, b.X)-padding, math.Max(a.X, b.X)+padding
	minY, maxY := math.Min(a.Y, b.Y)-padding, math.Max(a.Y, b.Y)+padding

	var chain []entity.Dot
	for _, dot := range that.grid.Dots() {
		if dot.X < minX || dot.X > maxX || dot.Y < minY || dot.Y > maxY {
			continue
		}

		cross := (b.Y-a.Y)*(dot.X-b.X) - (dot.Y-b.Y)*(b.X-a.X)
		if math.Abs(cross) < epsilon {
			chain = append(chain, dot)
		}
	}

	slices.SortFunc(chain, func(p, q entity.Dot) int {
		if math.Abs(p.X-q.X) > sortEpsilon {
			return compare(p.X, q.X)
		}
		return compare(p.Y, q.Y)
	})

	return chain
}

func onLatticeAngle(dx, dy float64) bool {
	angle := math.Abs(math.Atan2(dy, dx) * 180 / math.Pi)
	for _, target := range latticeAngles {
		if math.Abs(angle-target) < angleTolerance {
			return true
		}
	}
	return false
}

func hasUndrawn(move entity.Move, board *lattice.Board) bool {
	for _, line := range move.Lines {
		if !board.Line(line).Drawn {
			return true
		}
	}
	return false
}

func compare(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
