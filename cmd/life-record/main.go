package main

import (
	"flag"
	"log"
	"os"

	"lifefx/internal/app"
	"lifefx/internal/record"
)

func main() {
	cfg := app.NewConfig()
	cfg.Width, cfg.Height = 480, 270
	cfg.Bind(flag.CommandLine)
	out := flag.String("out", "life.gif", "output GIF path")
	gens := flag.Int("generations", 120, "generation steps to record")
	scale := flag.Float64("dpr", 1, "device pixel ratio of the recorded frames")
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create %s: %v", *out, err)
	}
	res, err := record.Record(f, cfg, record.Options{Generations: *gens, Scale: *scale})
	if cerr := f.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		log.Fatalf("record: %v", err)
	}
	log.Printf("wrote %s: %d frames, generation %d, population %d", *out, res.Frames, res.Generation, res.Population)
}
