package main

import (
	"fmt"
	"os"

	"fingersnake/internal/game"
)

func main() {
	cfg, err := game.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := game.Run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
