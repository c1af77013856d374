package engine

import (
	"context"
	"fmt"
	"log"
	"math"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"checkers/internal/checkers"
)

// Bounds of the alpha-beta window.
const (
	scoreMin = math.MinInt
	scoreMax = math.MaxInt
)

type SearchResult struct {
	Move     checkers.Move  // chosen ply; zero when Depth is 0
	Board    checkers.Board // board after Move; the input board when Depth is 0
	Score    int            // from the searching player's side
	Depth    int
	Nodes    int64
	TimeUsed time.Duration
	Found    bool // false: the player has no legal ply
}

// Search picks the best successor for player with minimax and alpha-beta
// pruning to cfg.MaxDepth plies. Ties keep the first successor in generator
// order, with or without Parallel. The only error is a cancelled ctx.
func (e *Engine) Search(ctx context.Context, b checkers.Board, player checkers.Player) (SearchResult, error) {
	start := time.Now()
	atomic.StoreInt64(&e.nodes, 0)
	depth := e.cfg.MaxDepth

	if depth == 0 {
		atomic.StoreInt64(&e.nodes, 1)
		return SearchResult{
			Board:    b,
			Score:    Evaluate(b, player),
			Nodes:    1,
			TimeUsed: time.Since(start),
			Found:    true,
		}, nil
	}

	children := checkers.GenerateMoves(b, player)
	if len(children) == 0 {
		return SearchResult{
			Score:    Evaluate(b, player),
			Depth:    depth,
			Nodes:    1,
			TimeUsed: time.Since(start),
		}, nil
	}

	var (
		score, best int
		err         error
	)
	if e.cfg.Parallel && len(children) > 1 {
		score, best, err = e.searchRootParallel(ctx, children, depth, player)
	} else {
		score, best, err = e.searchRoot(ctx, children, depth, player)
	}
	if err != nil {
		return SearchResult{}, fmt.Errorf("search %v at depth %d: %w", player, depth, err)
	}

	res := SearchResult{
		Move:     children[best].Move,
		Board:    children[best].Board,
		Score:    score,
		Depth:    depth,
		Nodes:    atomic.LoadInt64(&e.nodes),
		TimeUsed: time.Since(start),
		Found:    true,
	}
	if e.cfg.LogStats {
		log.Printf("[engine] %v depth=%d move=%s score=%d nodes=%d candidates=%d time=%v",
			player, res.Depth, res.Move, res.Score, res.Nodes, len(children), res.TimeUsed)
	}
	return res, nil
}

// searchRoot is a max node over precomputed children, checking ctx between them.
func (e *Engine) searchRoot(ctx context.Context, children []checkers.Successor, depth int, root checkers.Player) (int, int, error) {
	e.nodes++
	alpha, beta := scoreMin, scoreMax
	value, best := scoreMin, -1
	for i := range children {
		if err := ctx.Err(); err != nil {
			return 0, -1, err
		}
		v := e.minNode(children[i].Board, depth-1, root, alpha, beta)
		if v > value {
			value, best = v, i
		}
		alpha = max(alpha, value)
		if e.prune(alpha, beta) {
			break
		}
	}
	return value, best, nil
}

// searchRootParallel scores every root child with a full window on its own
// goroutine, then keeps the first strictly best one. Full windows make each
// score exact, so the pick equals the sequential alpha-beta pick.
func (e *Engine) searchRootParallel(ctx context.Context, children []checkers.Successor, depth int, root checkers.Player) (int, int, error) {
	atomic.AddInt64(&e.nodes, 1)
	scores := make([]int, len(children))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := range children {
		i := i // per-iteration copy (go directive < 1.22)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// one Engine per goroutine; node counts are summed afterwards
			local := &Engine{cfg: e.cfg}
			scores[i] = local.minNode(children[i].Board, depth-1, root, scoreMin, scoreMax)
			atomic.AddInt64(&e.nodes, local.nodes)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, -1, err
	}

	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return scores[best], best, nil
}

// maxNode: root is to move. Leaves and dead ends are scored for root.
func (e *Engine) maxNode(b checkers.Board, depth int, root checkers.Player, alpha, beta int) int {
	e.nodes++
	if depth == 0 {
		return Evaluate(b, root)
	}
	children := checkers.GenerateMoves(b, root)
	if len(children) == 0 {
		return Evaluate(b, root)
	}

	value := scoreMin
	for i := range children {
		v := e.minNode(children[i].Board, depth-1, root, alpha, beta)
		if v > value {
			value = v
		}
		alpha = max(alpha, value)
		if e.prune(alpha, beta) {
			break
		}
	}
	return value
}

// minNode: root's opponent is to move.
func (e *Engine) minNode(b checkers.Board, depth int, root checkers.Player, alpha, beta int) int {
	e.nodes++
	if depth == 0 {
		return Evaluate(b, root)
	}
	children := checkers.GenerateMoves(b, root.Opponent())
	if len(children) == 0 {
		return Evaluate(b, root)
	}

	value := scoreMax
	for i := range children {
		v := e.maxNode(children[i].Board, depth-1, root, alpha, beta)
		if v < value {
			value = v
		}
		beta = min(beta, value)
		if e.prune(alpha, beta) {
			break
		}
	}
	return value
}

func (e *Engine) prune(alpha, beta int) bool {
	return !e.cfg.Exhaustive && beta <= alpha
}
