package main

import (
	"context"
	"fmt"
	"log"

	"checkers/internal/checkers"
	"checkers/internal/engine"
	"checkers/internal/game"
)

type PlayerConfig struct {
	Name string
	Cfg  engine.SearchConfig
}

const (
	resultWhite = "White"
	resultBlack = "Black"
	resultDraw  = "Draw"
)

// playGame runs one engine-vs-engine game from the opening position.
// The game is drawn at maxPlies or on the third repetition of a position.
func playGame(ctx context.Context, white, black PlayerConfig, maxPlies int, verbose bool) (string, error) {
	g := game.NewStandard()
	engines := map[checkers.Player]*engine.Engine{
		checkers.White: engine.NewEngine(white.Cfg),
		checkers.Black: engine.NewEngine(black.Cfg),
	}

	for g.Plies < maxPlies {
		mover := g.ToMove
		res, err := g.ComputerMove(ctx, engines[mover])
		if err != nil {
			return "", fmt.Errorf("game %s ply %d: %w", g.ID, g.Plies, err)
		}
		if !res.Found {
			// side to move has no ply and loses
			if mover == checkers.White {
				return resultBlack, nil
			}
			return resultWhite, nil
		}
		if verbose {
			pos := g.Position()
			log.Printf("[selfplay] ply %d %v %s score=%d nodes=%d time=%v position=%q",
				g.Plies, mover, res.Move, res.Score, res.Nodes, res.TimeUsed, pos.Encode())
		}
		if g.Seen() >= 3 {
			return resultDraw, nil
		}
	}
	return resultDraw, nil
}

type matchScore struct {
	aWins, bWins, draws int
}

// runMatch plays games alternating colours so each side opens half the time.
func runMatch(ctx context.Context, a, b PlayerConfig, games, maxPlies int, verbose bool) (matchScore, error) {
	var s matchScore
	for i := 0; i < games; i++ {
		white, black := a, b
		if i%2 == 1 {
			white, black = b, a
		}
		fmt.Printf("\n=== Game %d: White [%s] vs Black [%s] ===\n", i+1, white.Name, black.Name)

		winner, err := playGame(ctx, white, black, maxPlies, verbose)
		if err != nil {
			return s, err
		}
		aIsWhite := i%2 == 0
		switch {
		case winner == resultDraw:
			s.draws++
			fmt.Println("Result: Draw")
		case (winner == resultWhite) == aIsWhite:
			s.aWins++
			fmt.Printf("Result: %s wins\n", a.Name)
		default:
			s.bWins++
			fmt.Printf("Result: %s wins\n", b.Name)
		}
	}
	return s, nil
}
