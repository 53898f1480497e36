package engine

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/triangles-backend/internal/entity"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

type Strategy string

const (
	StrategyMinimax Strategy = "minimax"
	StrategyWinning Strategy = "winning_strategy"
	StrategyGreedy  Strategy = "greedy"
)

// Weights - the evaluation weights a searching strategy starts from.
func (that Strategy) Weights() (entity.Weights, error) {
	switch that {
	case StrategyMinimax, "":
		return entity.DefaultWeights(), nil
	case StrategyWinning:
		return entity.Weights{
			ScoreScale:  1000,
			P1ThreatVal: 10,
			P2ThreatVal: -10,
			P1DoubleVal: 300,
			P2DoubleVal: -300,
		}, nil
	case StrategyGreedy:
		return entity.Weights{}, nil
	default:
		return entity.Weights{}, fmt.Errorf("%w: %s", ErrUnknownStrategy, that)
	}
}

func ParseStrategy(name string) (Strategy, error) {
	strategy := Strategy(name)
	if _, err := strategy.Weights(); err != nil {
		return "", err
	}
	return strategy, nil
}
