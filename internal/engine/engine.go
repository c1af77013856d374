package engine

import (
	"context"
	"sync/atomic"

	"checkers/internal/checkers"
)

// DefaultDepth is the search horizon in plies used by the console game.
const DefaultDepth = 5

type SearchConfig struct {
	MaxDepth   int  // plies; 0 scores the root without expanding it, <0 means DefaultDepth
	Parallel   bool // search root successors concurrently
	Exhaustive bool // plain minimax, no alpha-beta cutoffs
	LogStats   bool // log one line per search
}

func DefaultSearchConfig() SearchConfig {
	return SearchConfig{MaxDepth: DefaultDepth}
}

type Engine struct {
	cfg   SearchConfig
	nodes int64
}

func NewEngine(cfg SearchConfig) *Engine {
	if cfg.MaxDepth < 0 {
		cfg.MaxDepth = DefaultDepth
	}
	return &Engine{cfg: cfg}
}

func (e *Engine) Config() SearchConfig { return e.cfg }

// Nodes is the node count of the last search.
func (e *Engine) Nodes() int64 { return atomic.LoadInt64(&e.nodes) }

// FindBestMove returns the successor board chosen for player, or false when
// player has no legal ply.
func (e *Engine) FindBestMove(b checkers.Board, player checkers.Player) (checkers.Board, bool) {
	res, err := e.Search(context.Background(), b, player)
	if err != nil || !res.Found {
		return checkers.Board{}, false
	}
	return res.Board, true
}

// FindBestMove searches with DefaultSearchConfig.
func FindBestMove(b checkers.Board, player checkers.Player) (checkers.Board, bool) {
	return NewEngine(DefaultSearchConfig()).FindBestMove(b, player)
}
