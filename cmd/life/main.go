package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"lifefx/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}

	if err := app.Run(cfg); err != nil {
		if errors.Is(err, app.ErrNoGUI) {
			fmt.Fprintln(os.Stderr, "The window build of lifefx requires the ebiten build tag.")
			fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/life` or use ./cmd/life-term.")
			os.Exit(2)
		}
		log.Fatal(err)
	}
}
