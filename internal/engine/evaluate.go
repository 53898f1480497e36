package engine

import (
	"github.com/rocketscienceinc/triangles-backend/internal/entity"
	"github.com/rocketscienceinc/triangles-backend/internal/lattice"
)

// Features - the board counts the evaluation is built from.
type Features struct {
	P1Filled  int
	P2Filled  int
	P1Threats int
	P2Threats int
	P1Doubles int
	P2Doubles int
}

// Score - weighted sum of the features. Positive favors player 2, negative player 1.
func (that Features) Score(weights entity.Weights) float64 {
	score := float64(that.P2Filled-that.P1Filled) * weights.ScoreScale
	score += float64(that.P1Threats)*weights.P1ThreatVal + float64(that.P2Threats)*weights.P2ThreatVal
	score += float64(that.P1Doubles)*weights.P1DoubleVal + float64(that.P2Doubles)*weights.P2DoubleVal
	return score
}

func Evaluate(board *lattice.Board, weights entity.Weights) float64 {
	return Analyze(board).Score(weights)
}

// Analyze - counts filled triangles per owner, exposed two-edge triangles per threatening player
// and forks where one missing line would close two of a single player's threats.
func Analyze(board *lattice.Board) Features {
	var features Features

	// missing line -> players threatening through it
	threatened := make(map[int][]entity.Mark)

	for i, tri := range board.Grid().Triangles() {
		fill := board.Triangle(i)
		if fill.Filled {
			switch fill.Owner {
			case entity.Player1:
				features.P1Filled++
			case entity.Player2:
				features.P2Filled++
			}
			continue
		}

		drawn, missing := 0, -1
		credits := [3]int{}
		for _, index := range tri.Lines {
			line := board.Line(index)
			if !line.Drawn {
				missing = index
				continue
			}

			drawn++
			if line.Player.IsPlayer() {
				credits[line.Player]++
			}
			if line.SharedBy.IsPlayer() {
				credits[line.SharedBy]++
			}
		}

		if drawn != 2 {
			continue
		}

		var threat entity.Mark
		switch {
		case credits[entity.Player1] > credits[entity.Player2]:
			threat = entity.Player1
			features.P1Threats++
		case credits[entity.Player2] > credits[entity.Player1]:
			threat = entity.Player2
			features.P2Threats++
		default:
			continue
		}

		threatened[missing] = append(threatened[missing], threat)
	}

	for _, players := range threatened {
		if len(players) < 2 || !samePlayer(players) {
			continue
		}

		if players[0] == entity.Player1 {
			features.P1Doubles++
		} else {
			features.P2Doubles++
		}
	}

	return features
}

func samePlayer(players []entity.Mark) bool {
	for _, player := range players[1:] {
		if player != players[0] {
			return false
		}
	}
	return true
}
