package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"checkers/internal/checkers"
	"checkers/internal/console"
	"checkers/internal/engine"
	"checkers/internal/game"
)

func parseSide(s string) (checkers.Player, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return checkers.White, nil
	case "black", "b":
		return checkers.Black, nil
	case "none", "":
		return checkers.NoPlayer, nil
	}
	return checkers.NoPlayer, fmt.Errorf("unknown side %q (want white, black or none)", s)
}

func main() {
	depth := flag.Int("depth", engine.DefaultDepth, "search depth in plies (>= 1)")
	human := flag.String("human", "white", "side played by the human: white, black or none")
	position := flag.String("position", "", "start position, e.g. \"1m1m1m1m/m1m1m1m1/1m1m1m1m/8/8/M1M1M1M1/1M1M1M1M/M1M1M1M1 w\"")
	parallel := flag.Bool("parallel", false, "search root moves concurrently")
	maxPlies := flag.Int("maxplies", 0, "stop after this many plies (0 = no limit)")
	verbose := flag.Bool("v", false, "log search statistics")
	flag.Parse()

	if *depth < 1 {
		log.Fatalf("-depth must be at least 1, got %d", *depth)
	}
	side, err := parseSide(*human)
	if err != nil {
		log.Fatal(err)
	}

	g := game.NewStandard()
	if *position != "" {
		pos, err := checkers.DecodePosition(*position)
		if err != nil {
			log.Fatalf("bad -position: %v", err)
		}
		g = game.FromPosition(pos)
	}

	e := engine.NewEngine(engine.SearchConfig{
		MaxDepth: *depth,
		Parallel: *parallel,
		LogStats: *verbose,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	loop := console.NewLoop(console.Config{
		Human:    side,
		MaxPlies: *maxPlies,
		Verbose:  *verbose,
	}, g, e, os.Stdin, os.Stdout)

	res, err := loop.Run(ctx)
	switch {
	case errors.Is(err, console.ErrInputClosed):
		fmt.Println("\nInput closed, leaving the game.")
	case err != nil:
		log.Fatalf("game %s: %v", g.ID, err)
	case res.Loser != checkers.NoPlayer:
		fmt.Printf("%v wins after %d plies.\n", res.Loser.Opponent(), res.Plies)
	}
}
