package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"checkers/internal/checkers"
	"checkers/internal/engine"
	"checkers/internal/game"
)

// ErrInputClosed is returned when input ends while waiting for a human move.
var ErrInputClosed = errors.New("input closed")

type Config struct {
	Human    checkers.Player // NoPlayer lets the computer play both sides
	MaxPlies int             // 0 = no limit
	Verbose  bool            // log search statistics and game events
}

// Outcome describes how a finished session ended.
type Outcome struct {
	Loser     checkers.Player // side left without a ply; NoPlayer if stopped by MaxPlies
	Plies     int
	Truncated bool
}

type Loop struct {
	cfg    Config
	game   *game.Game
	engine *engine.Engine
	in     *bufio.Scanner
	out    io.Writer
}

func NewLoop(cfg Config, g *game.Game, e *engine.Engine, in io.Reader, out io.Writer) *Loop {
	return &Loop{
		cfg:    cfg,
		game:   g,
		engine: e,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

func (l *Loop) Game() *game.Game { return l.game }

// Run alternates turns until the side to move has no ply, MaxPlies is hit,
// input closes (ErrInputClosed) or ctx is cancelled.
func (l *Loop) Run(ctx context.Context) (Outcome, error) {
	g := l.game
	if l.cfg.Verbose {
		log.Printf("[game %s] start %v to move, human=%v", g.ID, g.ToMove, l.cfg.Human)
	}
	for {
		if err := Render(l.out, g.Board); err != nil {
			return Outcome{}, fmt.Errorf("render: %w", err)
		}
		if g.Over() {
			fmt.Fprintf(l.out, "%v has no moves. Game over.\n", g.ToMove)
			if l.cfg.Verbose {
				log.Printf("[game %s] over after %d plies, %v cannot move", g.ID, g.Plies, g.ToMove)
			}
			return Outcome{Loser: g.ToMove, Plies: g.Plies}, nil
		}
		if l.cfg.MaxPlies > 0 && g.Plies >= l.cfg.MaxPlies {
			fmt.Fprintf(l.out, "Stopped after %d plies.\n", g.Plies)
			return Outcome{Loser: checkers.NoPlayer, Plies: g.Plies, Truncated: true}, nil
		}

		if g.ToMove == l.cfg.Human {
			s, err := l.readHumanMove()
			if err != nil {
				return Outcome{Loser: checkers.NoPlayer, Plies: g.Plies}, err
			}
			g.Apply(s)
			if l.cfg.Verbose {
				log.Printf("[game %s] ply %d human %v: %s", g.ID, g.Plies, g.ToMove.Opponent(), s.Move)
			}
			continue
		}

		fmt.Fprintf(l.out, "Computer (%v) is thinking...\n", g.ToMove)
		res, err := g.ComputerMove(ctx, l.engine)
		if err != nil {
			return Outcome{Loser: checkers.NoPlayer, Plies: g.Plies}, fmt.Errorf("computer move: %w", err)
		}
		fmt.Fprintf(l.out, "Computer plays %s\n", res.Move)
		if l.cfg.Verbose {
			log.Printf("[game %s] ply %d engine %v: %s score=%d nodes=%d time=%v",
				g.ID, g.Plies, g.ToMove.Opponent(), res.Move, res.Score, res.Nodes, res.TimeUsed)
		}
		if n := g.Seen(); n > 1 {
			fmt.Fprintf(l.out, "Position repeated %d times.\n", n)
		}
	}
}

// readHumanMove prompts until a legal ply is entered. Invalid input is
// reported and the prompt repeats.
func (l *Loop) readHumanMove() (checkers.Successor, error) {
	for {
		fmt.Fprintf(l.out, "Your move as %v (fromRow fromCol toRow toCol): ", l.game.ToMove)
		if !l.in.Scan() {
			if err := l.in.Err(); err != nil {
				return checkers.Successor{}, fmt.Errorf("read move: %w", err)
			}
			return checkers.Successor{}, ErrInputClosed
		}
		from, to, err := ParseMove(l.in.Text())
		if err != nil {
			fmt.Fprintf(l.out, "Invalid input format: %v. Try again.\n", err)
			continue
		}
		s, err := l.game.ResolveHumanMove(from, to)
		if err != nil {
			fmt.Fprintf(l.out, "Invalid move: %v. Try again.\n", err)
			continue
		}
		return s, nil
	}
}
