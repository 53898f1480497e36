package engine

import (
	"context"
	"math"

	"github.com/rocketscienceinc/triangles-backend/internal/entity"
	"github.com/rocketscienceinc/triangles-backend/internal/lattice"
	"github.com/rocketscienceinc/triangles-backend/internal/rules"
)

const (
	// CaptureBonus - value of one completed triangle along a searched line.
	CaptureBonus = 5000

	cancelCheckInterval = 1024
)

type Stats struct {
	Nodes     int
	CacheHits int
}

// searcher - one minimax run. The maximizing side plays as player 2 and the minimizing side as
// player 1, regardless of who asked for the move.
type searcher struct {
	ctx       context.Context
	generator *rules.Generator
	weights   entity.Weights

	scoreAgain bool
	maxBranch  int
	pruning    bool

	cache  Cache
	hasher *hasher

	stats Stats
}

func newSearcher(ctx context.Context, generator *rules.Generator, sc searchContext, cache Cache, pruning bool) *searcher {
	search := &searcher{
		ctx:        ctx,
		generator:  generator,
		weights:    sc.weights,
		scoreAgain: sc.scoreAgain,
		maxBranch:  sc.maxBranch,
		pruning:    pruning,
		cache:      cache,
	}

	if cache != nil {
		search.hasher = newHasher(sc.fingerprint(generator.Grid()))
	}

	return search
}

// candidates - legal moves in search order, capped to the branch limit.
func (that *searcher) candidates(board *lattice.Board) []entity.Move {
	moves := Order(that.generator.Legal(board), board)
	if that.maxBranch > 0 && len(moves) > that.maxBranch {
		moves = moves[:that.maxBranch]
	}
	return moves
}

// advance - a scoring move keeps the turn and the depth when score-again is on.
func (that *searcher) advance(depth int, maximizing bool, outcome rules.Outcome) (int, bool) {
	if outcome.ExtraTurn(that.scoreAgain) {
		return depth, maximizing
	}
	return depth - 1, !maximizing
}

func mover(maximizing bool) entity.Mark {
	if maximizing {
		return entity.Player2
	}
	return entity.Player1
}

// bias - immediate captures are added for the maximizing side and subtracted for the other.
func bias(maximizing bool, score int) float64 {
	if maximizing {
		return float64(score) * CaptureBonus
	}
	return -float64(score) * CaptureBonus
}

func (that *searcher) search(board *lattice.Board, depth int, maximizing bool, alpha, beta float64) (float64, error) {
	that.stats.Nodes++
	if that.stats.Nodes%cancelCheckInterval == 0 {
		if err := that.ctx.Err(); err != nil {
			return 0, err
		}
	}

	alphaOrig, betaOrig := alpha, beta

	var key uint64
	if that.cache != nil {
		key = that.hasher.key(board, maximizing)

		if entry, ok := that.cache.Get(key); ok && entry.Depth >= depth {
			that.stats.CacheHits++

			switch entry.Bound {
			case Exact:
				return entry.Score, nil
			case LowerBound:
				alpha = math.Max(alpha, entry.Score)
			case UpperBound:
				beta = math.Min(beta, entry.Score)
			}

			if alpha >= beta {
				return entry.Score, nil
			}
		}
	}

	if depth <= 0 || board.Full() {
		return Evaluate(board, that.weights), nil
	}

	moves := that.candidates(board)
	if len(moves) == 0 {
		return Evaluate(board, that.weights), nil
	}

	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}

	searched := false
	for _, move := range moves {
		outcome, ok := rules.Simulate(move, board, mover(maximizing))
		if !ok {
			continue
		}
		searched = true

		nextDepth, nextMaximizing := that.advance(depth, maximizing, outcome)

		value, err := that.search(outcome.Board, nextDepth, nextMaximizing, alpha, beta)
		if err != nil {
			return 0, err
		}
		value += bias(maximizing, outcome.Score)

		if maximizing {
			best = math.Max(best, value)
			alpha = math.Max(alpha, value)
		} else {
			best = math.Min(best, value)
			beta = math.Min(beta, value)
		}

		if that.pruning && beta <= alpha {
			break
		}
	}

	if !searched {
		return Evaluate(board, that.weights), nil
	}

	if that.cache != nil {
		bound := Exact
		switch {
		case best <= alphaOrig:
			bound = UpperBound
		case best >= betaOrig:
			bound = LowerBound
		}

		that.cache.Put(key, Entry{Depth: depth, Score: best, Bound: bound})
	}

	return best, nil
}
