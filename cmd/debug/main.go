package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"checkers/internal/checkers"
	"checkers/internal/engine"
)

type moveDump struct {
	Move     checkers.Move `json:"move"`
	Position string        `json:"position"`
	Eval     int           `json:"eval"`
}

func main() {
	position := flag.String("position", "", "position to inspect (default: opening)")
	asJSON := flag.Bool("json", false, "dump generated moves as JSON")
	flag.Parse()

	pos := &checkers.Position{Board: checkers.NewInitialBoard(), SideToMove: checkers.White}
	if *position != "" {
		p, err := checkers.DecodePosition(*position)
		if err != nil {
			log.Fatalf("bad -position: %v", err)
		}
		pos = p
	}

	moves := checkers.GenerateMoves(pos.Board, pos.SideToMove)
	if *asJSON {
		out := make([]moveDump, len(moves))
		for i, s := range moves {
			next := checkers.Position{Board: s.Board, SideToMove: pos.SideToMove.Opponent()}
			out[i] = moveDump{
				Move:     s.Move,
				Position: next.Encode(),
				Eval:     engine.Evaluate(s.Board, pos.SideToMove),
			}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			log.Fatal(err)
		}
		return
	}

	fmt.Println("Position:", pos.Encode())
	fmt.Printf("Hash: %016x\n", pos.Hash())
	fmt.Println("Eval:", engine.Evaluate(pos.Board, pos.SideToMove))
	fmt.Println("Legal moves:", len(moves))
	for _, s := range moves {
		fmt.Printf("  %s  eval=%d\n", s.Move, engine.Evaluate(s.Board, pos.SideToMove))
	}
}
