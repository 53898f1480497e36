package lattice

import (
	"fmt"

	"github.com/rocketscienceinc/triangles-backend/internal/entity"
)

// TriangleFill - the mutable part of a triangle.
type TriangleFill struct {
	Filled bool
	Owner  entity.Mark
}

// Board - a snapshot of lines and triangles over a shared Grid. Snapshots are treated as values:
// callers Clone before mutating.
type Board struct {
	grid      *Grid
	lines     []entity.LineState
	triangles []TriangleFill
}

func NewBoard(grid *Grid) *Board {
	return &Board{
		grid:      grid,
		lines:     make([]entity.LineState, grid.LineCount()),
		triangles: make([]TriangleFill, grid.TriangleCount()),
	}
}

// BoardFromState - loads line and triangle states by key. Triangles are matched by position.
func BoardFromState(grid *Grid, lines map[string]entity.LineState, triangles []entity.TriangleState) (*Board, error) {
	board := NewBoard(grid)

	for key, state := range lines {
		index, ok := grid.LineIndex(key)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownLine, key)
		}
		board.lines[index] = state
	}

	if len(triangles) == 0 {
		return board, nil
	}

	if len(triangles) != grid.TriangleCount() {
		return nil, fmt.Errorf("%w: %d triangles for a grid of %d", ErrUnknownLine, len(triangles), grid.TriangleCount())
	}

	for t, state := range triangles {
		board.triangles[t] = TriangleFill{Filled: state.Filled, Owner: state.Player}
	}

	return board, nil
}

func (that *Board) Grid() *Grid {
	return that.grid
}

func (that *Board) Clone() *Board {
	lines := make([]entity.LineState, len(that.lines))
	copy(lines, that.lines)

	triangles := make([]TriangleFill, len(that.triangles))
	copy(triangles, that.triangles)

	return &Board{
		grid:      that.grid,
		lines:     lines,
		triangles: triangles,
	}
}

func (that *Board) Line(index int) entity.LineState {
	return that.lines[index]
}

func (that *Board) LineByKey(key string) (entity.LineState, bool) {
	index, ok := that.grid.LineIndex(key)
	if !ok {
		return entity.LineState{}, false
	}
	return that.lines[index], true
}

func (that *Board) Triangle(index int) TriangleFill {
	return that.triangles[index]
}

// Draw - marks an undrawn line as drawn by mark. Reports whether the line changed.
func (that *Board) Draw(index int, mark entity.Mark) bool {
	line := &that.lines[index]
	if line.Drawn {
		return false
	}

	line.Drawn = true
	line.Player = mark

	return true
}

// Share - records mark as the secondary claimant of a line drawn by the other player.
// The owner never changes and a line is shared at most once.
func (that *Board) Share(index int, mark entity.Mark) bool {
	line := &that.lines[index]
	if !line.Drawn || line.Player == entity.NoPlayer || line.Player == mark || line.SharedBy != entity.NoPlayer {
		return false
	}

	line.SharedBy = mark

	return true
}

// Fill - marks a triangle as completed by mark. A filled triangle keeps its first owner.
func (that *Board) Fill(index int, mark entity.Mark) bool {
	tri := &that.triangles[index]
	if tri.Filled {
		return false
	}

	tri.Filled = true
	tri.Owner = mark

	return true
}

// Closed - reports whether all three lines of a triangle are drawn.
func (that *Board) Closed(index int) bool {
	for _, line := range that.grid.triangles[index].Lines {
		if !that.lines[line].Drawn {
			return false
		}
	}
	return true
}

func (that *Board) DrawnCount() int {
	count := 0
	for _, line := range that.lines {
		if line.Drawn {
			count++
		}
	}
	return count
}

func (that *Board) UndrawnCount() int {
	return len(that.lines) - that.DrawnCount()
}

func (that *Board) FilledCount() int {
	count := 0
	for _, tri := range that.triangles {
		if tri.Filled {
			count++
		}
	}
	return count
}

// Full - every triangle is filled.
func (that *Board) Full() bool {
	return that.FilledCount() == len(that.triangles)
}

func (that *Board) Score(mark entity.Mark) int {
	count := 0
	for _, tri := range that.triangles {
		if tri.Filled && tri.Owner == mark {
			count++
		}
	}
	return count
}

// LineStates - exports lines keyed by their canonical key.
func (that *Board) LineStates() map[string]entity.LineState {
	states := make(map[string]entity.LineState, len(that.lines))
	for i, line := range that.lines {
		states[that.grid.keys[i]] = line
	}
	return states
}

// TriangleStates - exports triangles in topology order.
func (that *Board) TriangleStates() []entity.TriangleState {
	states := make([]entity.TriangleState, len(that.triangles))
	for i, tri := range that.triangles {
		states[i] = entity.TriangleState{
			LineKeys: that.grid.TriangleKeys(i),
			Filled:   tri.Filled,
			Player:   tri.Owner,
		}
	}
	return states
}
