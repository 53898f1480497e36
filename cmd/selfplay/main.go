// Command selfplay runs engine-vs-engine matches concurrently and reports the tally.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/triangles-backend/internal/engine"
	"github.com/rocketscienceinc/triangles-backend/internal/entity"
	"github.com/rocketscienceinc/triangles-backend/internal/lattice"
)

type tally struct {
	mu     sync.Mutex
	wins   map[entity.Mark]int
	moves  int
	played int
}

func (that *tally) add(res result) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.wins[res.winner()]++
	that.moves += res.moves
	that.played++
}

func main() {
	os.Exit(execute(os.Args[1:]))
}

// execute - returns the exit code so deferred profile writers run before the process exits.
func execute(args []string) int {
	fs := flag.NewFlagSet("selfplay", flag.ContinueOnError)

	var (
		matches     = fs.Int("matches", 10, "number of matches to play")
		parallel    = fs.Int("parallel", runtime.NumCPU(), "matches played at once")
		preset      = fs.String("preset", lattice.DefaultPreset, "board preset")
		length      = fs.Int("length", 1, "required line length")
		shorter     = fs.Bool("allow-shorter", false, "allow lines shorter than the required length")
		scoreAgain  = fs.Bool("score-again", true, "a scoring player moves again")
		p1Strategy  = fs.String("p1", string(engine.StrategyMinimax), "strategy of Player1")
		p2Strategy  = fs.String("p2", string(engine.StrategyWinning), "strategy of Player2")
		p1Depth     = fs.Int("p1-depth", 0, "search depth of Player1, 0 is adaptive")
		p2Depth     = fs.Int("p2-depth", 0, "search depth of Player2, 0 is adaptive")
		seed        = fs.Uint64("seed", 0, "engine seed, 0 is random")
		cachePolicy = fs.String("cache", engine.PolicyLRU, "transposition cache policy (lru|reset)")
		timeout     = fs.Duration("timeout", 10*time.Second, "search timeout per move")
		profileMode = fs.String("profile", "", "write a cpu or mem profile")
		profileDir  = fs.String("profile-dir", ".", "directory the profile is written to")
		verbose     = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	switch *profileMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*profileDir), profile.Quiet, profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(*profileDir), profile.Quiet, profile.NoShutdownHook).Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, options{
		matches:     *matches,
		parallel:    *parallel,
		preset:      *preset,
		length:      *length,
		shorter:     *shorter,
		scoreAgain:  *scoreAgain,
		strategies:  [2]string{*p1Strategy, *p2Strategy},
		depths:      [2]int{*p1Depth, *p2Depth},
		seed:        *seed,
		cachePolicy: *cachePolicy,
		timeout:     *timeout,
	}); err != nil {
		logger.Error("self-play failed", "error", err)
		return 1
	}

	return 0
}

type options struct {
	matches     int
	parallel    int
	preset      string
	length      int
	shorter     bool
	scoreAgain  bool
	strategies  [2]string
	depths      [2]int
	seed        uint64
	cachePolicy string
	timeout     time.Duration
}

func newSide(logger *slog.Logger, opts options, seat int) (side, error) {
	strategy, err := engine.ParseStrategy(opts.strategies[seat])
	if err != nil {
		return side{}, err
	}

	cache, err := engine.NewCache(opts.cachePolicy, engine.DefaultCacheCapacity)
	if err != nil {
		return side{}, err
	}

	seed := opts.seed
	if seed != 0 {
		seed += uint64(seat)
	}

	return side{
		engine: engine.New(logger.With("seat", seat+1), engine.Config{
			Depth:         opts.depths[seat],
			Seed:          seed,
			SearchTimeout: opts.timeout,
		}, cache),
		strategy: strategy,
	}, nil
}

func run(ctx context.Context, logger *slog.Logger, opts options) error {
	rows, err := lattice.Preset(opts.preset)
	if err != nil {
		return err
	}

	player1, err := newSide(logger, opts, 0)
	if err != nil {
		return fmt.Errorf("player 1: %w", err)
	}

	player2, err := newSide(logger, opts, 1)
	if err != nil {
		return fmt.Errorf("player 2: %w", err)
	}

	mr := matchRules{
		rows:           rows,
		requiredLength: opts.length,
		allowShorter:   opts.shorter,
		scoreAgain:     opts.scoreAgain,
	}

	results := &tally{wins: make(map[entity.Mark]int)}
	started := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.parallel, 1))

	for i := 0; i < opts.matches; i++ {
		g.Go(func() error {
			res, err := playMatch(ctx, mr, player1, player2)
			if err != nil {
				return fmt.Errorf("match %d: %w", i, err)
			}

			results.add(res)
			logger.Info("match finished", "match", i, "p1", res.score1, "p2", res.score2, "moves", res.moves)

			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return err
	}

	fmt.Printf("played %d matches on %s in %s\n", results.played, opts.preset, time.Since(started).Round(time.Millisecond))
	fmt.Printf("  %s (p1): %d wins\n", opts.strategies[0], results.wins[entity.Player1])
	fmt.Printf("  %s (p2): %d wins\n", opts.strategies[1], results.wins[entity.Player2])
	fmt.Printf("  draws: %d\n", results.wins[entity.NoPlayer])
	if results.played > 0 {
		fmt.Printf("  average moves: %.1f\n", float64(results.moves)/float64(results.played))
	}

	return nil
}
