package engine

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/rocketscienceinc/triangles-backend/internal/entity"
	"github.com/rocketscienceinc/triangles-backend/internal/lattice"
)

// searchContext - everything besides the board that changes a search result. Entries computed
// under one context must never answer lookups made under another.
type searchContext struct {
	weights        entity.Weights
	requiredLength int
	allowShorter   bool
	scoreAgain     bool
	maxBranch      int
}

func (that searchContext) fingerprint(grid *lattice.Grid) uint64 {
	digest := xxhash.New()
	buf := make([]byte, 0, 64)

	for _, value := range []float64{
		that.weights.ScoreScale,
		that.weights.P1ThreatVal,
		that.weights.P2ThreatVal,
		that.weights.P1DoubleVal,
		that.weights.P2DoubleVal,
	} {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(value))
	}

	buf = binary.LittleEndian.AppendUint32(buf, uint32(that.requiredLength))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(that.maxBranch))
	buf = append(buf, boolByte(that.allowShorter), boolByte(that.scoreAgain))
	_, _ = digest.Write(buf)

	for _, row := range grid.Rows() {
		_, _ = digest.Write(binary.LittleEndian.AppendUint32(nil, uint32(row)))
	}
	for i := range grid.LineCount() {
		_, _ = digest.WriteString(grid.LineKey(i))
		_, _ = digest.Write([]byte{';'})
	}

	// client boards may share rows and lines but place dots or triangles differently
	buf = buf[:0]
	for _, dot := range grid.Dots() {
		buf = binary.AppendUvarint(buf, uint64(dot.Row))
		buf = binary.AppendUvarint(buf, uint64(dot.Col))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(dot.X))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(dot.Y))
	}
	buf = append(buf, '|')
	for _, tri := range grid.Triangles() {
		for _, line := range tri.Lines {
			buf = binary.AppendUvarint(buf, uint64(line))
		}
	}
	_, _ = digest.Write(buf)

	return digest.Sum64()
}

// hasher - builds transposition keys from the side to move, drawn lines with their owners and
// filled triangles with their owners. Each section is prefixed with its length. Line indices
// follow the sorted key order of the grid.
type hasher struct {
	context uint64
	buf     []byte
}

func newHasher(context uint64) *hasher {
	return &hasher{context: context}
}

func (that *hasher) key(board *lattice.Board, maximizing bool) uint64 {
	buf := binary.LittleEndian.AppendUint64(that.buf[:0], that.context)
	buf = append(buf, boolByte(maximizing))

	buf = binary.AppendUvarint(buf, uint64(board.DrawnCount()))
	for i := range board.Grid().LineCount() {
		line := board.Line(i)
		if !line.Drawn {
			continue
		}
		buf = binary.AppendUvarint(buf, uint64(i))
		buf = append(buf, byte(line.Player), byte(line.SharedBy))
	}

	buf = binary.AppendUvarint(buf, uint64(board.FilledCount()))
	for i := range board.Grid().TriangleCount() {
		fill := board.Triangle(i)
		if !fill.Filled {
			continue
		}
		buf = binary.AppendUvarint(buf, uint64(i))
		buf = append(buf, byte(fill.Owner))
	}

	that.buf = buf

	return xxhash.Sum64(buf)
}

func boolByte(value bool) byte {
	if value {
		return 1
	}
	return 0
}
