package entity

// Mark - identifies a side. The search maximizes for Player2 and minimizes for Player1.
type Mark int

const (
	NoPlayer Mark = 0
	Player1  Mark = 1
	Player2  Mark = 2
)

func (that Mark) Opponent() Mark {
	switch that {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return NoPlayer
	}
}

func (that Mark) IsPlayer() bool {
	return that == Player1 || that == Player2
}

// Maximizing - reports whether the mark is the maximizing side of the evaluation.
func (that Mark) Maximizing() bool {
	return that == Player2
}
