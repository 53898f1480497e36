package entity

import "strconv"

// Dot - a lattice point. Identity is (Row, Col); X and Y come from the lattice layout.
type Dot struct {
	Row int     `json:"r"`
	Col int     `json:"c"`
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
}

func (that Dot) Same(other Dot) bool {
	return that.Row == other.Row && that.Col == other.Col
}

// LineKey - returns the canonical key of the line between two dots: lower row first, then lower col.
func LineKey(a, b Dot) string {
	if a.Row > b.Row || (a.Row == b.Row && a.Col > b.Col) {
		a, b = b, a
	}

	return strconv.Itoa(a.Row) + "," + strconv.Itoa(a.Col) + "_" + strconv.Itoa(b.Row) + "," + strconv.Itoa(b.Col)
}

type LineState struct {
	Drawn    bool `json:"drawn"`
	Player   Mark `json:"player"`
	SharedBy Mark `json:"sharedBy"`
}

type TriangleState struct {
	LineKeys []string `json:"lineKeys"`
	Filled   bool     `json:"filled"`
	Player   Mark     `json:"player"`
}

// Move - a candidate action between two dots. Segments lists the canonical keys of the unit
// segments from one end of the chain to the other; Lines holds their lattice indices.
type Move struct {
	From     Dot      `json:"dot1"`
	To       Dot      `json:"dot2"`
	Segments []string `json:"segmentIds"`
	Lines    []int    `json:"-"`
}
