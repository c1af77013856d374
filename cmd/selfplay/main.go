package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"

	"checkers/internal/engine"
)

func main() {
	depthA := flag.Int("depth-a", engine.DefaultDepth, "search depth of player A")
	depthB := flag.Int("depth-b", 3, "search depth of player B")
	totalGames := flag.Int("games", 2, "number of games to play")
	maxPlies := flag.Int("maxplies", 200, "ply limit per game before it is drawn")
	parallel := flag.Bool("parallel", false, "parallel root search for both players")
	exhaustive := flag.Bool("exhaustive", false, "disable alpha-beta cutoffs (reference minimax)")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	verbose := flag.Bool("v", false, "log every move")
	flag.Parse()

	if *depthA < 1 || *depthB < 1 {
		log.Fatalf("depths must be at least 1 (got %d and %d)", *depthA, *depthB)
	}

	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof listening on %s", *pprofAddr)
			if err := http.ListenAndServe(*pprofAddr, nil); err != nil {
				log.Printf("pprof failed: %v", err)
			}
		}()
	}

	mkPlayer := func(depth int) PlayerConfig {
		name := fmt.Sprintf("Alpha-Beta (Depth %d)", depth)
		if *exhaustive {
			name = fmt.Sprintf("Minimax (Depth %d)", depth)
		}
		return PlayerConfig{
			Name: name,
			Cfg: engine.SearchConfig{
				MaxDepth:   depth,
				Parallel:   *parallel,
				Exhaustive: *exhaustive,
			},
		}
	}
	a := mkPlayer(*depthA)
	b := mkPlayer(*depthB)
	b.Name += " [B]"

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	score, err := runMatch(ctx, a, b, *totalGames, *maxPlies, *verbose)
	if err != nil {
		log.Fatalf("selfplay: %v", err)
	}

	fmt.Printf("\n=== Final Score ===\n")
	fmt.Printf("%s: %d\n", a.Name, score.aWins)
	fmt.Printf("%s: %d\n", b.Name, score.bWins)
	fmt.Printf("Draws: %d\n", score.draws)
}
