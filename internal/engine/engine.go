// Package engine picks moves for the automated player: board evaluation, minimax search with
// alpha-beta pruning and a transposition cache, and the root move selection.
package engine

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"lukechampine.com/frand"

	"github.com/rocketscienceinc/triangles-backend/internal/entity"
	"github.com/rocketscienceinc/triangles-backend/internal/lattice"
	"github.com/rocketscienceinc/triangles-backend/internal/rules"
)

// tieTolerance - root values closer than this to the best are treated as equally good.
const tieTolerance = 0.1

var (
	ErrInvalidDepth  = errors.New("invalid search depth")
	ErrInvalidPlayer = errors.New("invalid player")
)

type Config struct {
	// Depth - fixed search depth; 0 picks the depth from the number of undrawn lines.
	Depth int
	// MaxBranch - moves searched per interior node; 0 searches all of them. Root moves are
	// always scored.
	MaxBranch int
	// Seed - seeds shuffling and tie-breaking; 0 seeds from the system entropy source.
	Seed          uint64
	SearchTimeout time.Duration
	// DisablePruning - full-width minimax, used to cross-check alpha-beta.
	DisablePruning bool
}

// Request - one decision: the board, the player to move and the rules it is played under.
type Request struct {
	Board          *lattice.Board
	Player         entity.Mark
	RequiredLength int
	AllowShorter   bool
	ScoreAgain     bool
	Strategy       Strategy
	// Weights - overrides of the strategy's evaluation weights.
	Weights *entity.WeightOverrides
}

// Decision - the chosen move, or Found == false when the player has no legal move.
type Decision struct {
	Move       entity.Move
	Found      bool
	Value      float64
	Depth      int
	Candidates int
	// Partial - the search timed out and only part of the root moves were scored.
	Partial bool
	Stats   Stats
}

type Engine interface {
	Select(ctx context.Context, req Request) (Decision, error)
	CacheLen() int
}

type engine struct {
	logger *slog.Logger
	config Config
	cache  Cache

	mu  sync.Mutex
	rng *frand.RNG
}

// New - cache may be nil, which disables the transposition table.
func New(logger *slog.Logger, config Config, cache Cache) Engine {
	return &engine{
		logger: logger.With("component", "engine"),
		config: config,
		cache:  cache,
		rng:    newRNG(config.Seed),
	}
}

func newRNG(seed uint64) *frand.RNG {
	if seed == 0 {
		return frand.New()
	}

	key := make([]byte, 32)
	binary.LittleEndian.PutUint64(key, seed)

	return frand.NewCustom(key, 1024, 12)
}

func (that *engine) CacheLen() int {
	if that.cache == nil {
		return 0
	}
	return that.cache.Len()
}

func (that *engine) Select(ctx context.Context, req Request) (Decision, error) {
	log := that.logger.With("method", "Select")

	if !req.Player.IsPlayer() {
		return Decision{}, fmt.Errorf("%w: %d", ErrInvalidPlayer, req.Player)
	}

	if that.config.SearchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, that.config.SearchTimeout)
		defer cancel()
	}

	generator := rules.NewGenerator(req.Board.Grid(), rules.Options{
		RequiredLength: req.RequiredLength,
		AllowShorter:   req.AllowShorter,
	})

	if req.Strategy == "" {
		req.Strategy = StrategyMinimax
	}

	if req.Strategy == StrategyGreedy {
		return that.greedy(generator, req)
	}

	weights, err := req.Strategy.Weights()
	if err != nil {
		return Decision{}, err
	}
	weights = req.Weights.Apply(weights)

	depth := that.config.Depth
	if depth == 0 {
		depth = AdaptiveDepth(req.Board.UndrawnCount(), req.RequiredLength)
	}
	if depth < 0 {
		return Decision{}, fmt.Errorf("%w: %d", ErrInvalidDepth, depth)
	}

	decision, err := that.minimax(ctx, generator, req, weights, depth)
	if err != nil {
		return Decision{}, err
	}

	log.Debug("move selected",
		"player", req.Player,
		"strategy", req.Strategy,
		"depth", depth,
		"found", decision.Found,
		"value", decision.Value,
		"candidates", decision.Candidates,
		"partial", decision.Partial,
		"nodes", decision.Stats.Nodes,
		"cache_hits", decision.Stats.CacheHits,
		"cache_size", that.CacheLen(),
	)

	return decision, nil
}

type scored struct {
	move  entity.Move
	value float64
}

func (that *engine) minimax(ctx context.Context, generator *rules.Generator, req Request, weights entity.Weights, depth int) (Decision, error) {
	board := req.Board

	moves := generator.Legal(board)
	that.shuffle(moves)
	moves = Order(moves, board)

	if len(moves) == 0 {
		return Decision{Depth: depth}, nil
	}

	search := newSearcher(ctx, generator, searchContext{
		weights:        weights,
		requiredLength: generator.Options().RequiredLength,
		allowShorter:   req.AllowShorter,
		scoreAgain:     req.ScoreAgain,
		maxBranch:      that.config.MaxBranch,
	}, that.cache, !that.config.DisablePruning)

	maximizing := req.Player.Maximizing()
	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}

	partial := false
	candidates := make([]scored, 0, len(moves))
	for _, move := range moves {
		outcome, ok := rules.Simulate(move, board, req.Player)
		if !ok {
			continue
		}

		nextDepth, nextMaximizing := search.advance(depth, maximizing, outcome)

		value, err := search.search(outcome.Board, nextDepth, nextMaximizing, math.Inf(-1), math.Inf(1))
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) && len(candidates) > 0 {
				partial = true
				break
			}
			return Decision{}, fmt.Errorf("failed to search move: %w", err)
		}
		value += bias(maximizing, outcome.Score)

		candidates = append(candidates, scored{move: move, value: value})

		if (maximizing && value > best) || (!maximizing && value < best) {
			best = value
		}
	}

	decision := Decision{
		Value:      best,
		Depth:      depth,
		Candidates: len(candidates),
		Partial:    partial,
		Stats:      search.stats,
	}

	var ties []entity.Move
	for _, candidate := range candidates {
		if math.Abs(candidate.value-best) < tieTolerance {
			ties = append(ties, candidate.move)
		}
	}

	if len(ties) > 0 {
		decision.Move, decision.Found = ties[that.intn(len(ties))], true
	}

	if !decision.Found || !that.playable(generator, decision.Move, req) {
		decision.Move, decision.Found = that.fallback(generator, moves, req)
	}

	return decision, nil
}

// playable - re-validates a chosen move against the live board.
func (that *engine) playable(generator *rules.Generator, move entity.Move, req Request) bool {
	validated, ok := generator.Validate(move.From, move.To, req.Board)
	if !ok {
		return false
	}

	_, ok = rules.Simulate(validated, req.Board, req.Player)
	return ok
}

// fallback - the first move in search order that still validates.
func (that *engine) fallback(generator *rules.Generator, moves []entity.Move, req Request) (entity.Move, bool) {
	that.logger.Warn("selected move is not playable, falling back", "method", "fallback")

	for _, move := range moves {
		if that.playable(generator, move, req) {
			return move, true
		}
	}
	return entity.Move{}, false
}

func (that *engine) shuffle(moves []entity.Move) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.rng.Shuffle(len(moves), func(i, j int) {
		moves[i], moves[j] = moves[j], moves[i]
	})
}

func (that *engine) intn(n int) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rng.Intn(n)
}

// AdaptiveDepth - searches deeper as the board empties out. Single segment moves branch the most
// and stay capped.
func AdaptiveDepth(undrawn, requiredLength int) int {
	depth := 3
	switch {
	case undrawn < 10:
		depth = 7
	case undrawn < 15:
		depth = 5
	case undrawn < 30:
		depth = 4
	}

	if requiredLength <= 1 && depth > 4 {
		depth = 4
	}

	return depth
}
