// Command ordorate reads a results list and a set of configuration
// knobs, runs the rating pipeline, and prints the report.
package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"

	"ordorate/internal/archive"
	"ordorate/internal/config"
	"ordorate/internal/report"
	"ordorate/internal/rating"
	"ordorate/internal/seed"
	"ordorate/internal/serve"
	"ordorate/internal/termui"
)

func main() {
	log.SetFlags(log.LstdFlags)
	cfg := config.Load()
	termui.UseColor = cfg.UseColor

	var (
		inputPath  string
		anchorName string
		adjustWAdv bool
		warmStart  bool
		csvOut     bool
		quiet      bool
	)
	for _, a := range os.Args[1:] {
		switch {
		case a == "--adjust-white-adv":
			adjustWAdv = true
		case a == "--warm-start":
			warmStart = true
		case a == "--csv":
			csvOut = true
		case a == "--quiet":
			quiet = true
		case strings.HasPrefix(a, "--input="):
			inputPath = strings.TrimPrefix(a, "--input=")
		case strings.HasPrefix(a, "--anchor="):
			anchorName = strings.TrimPrefix(a, "--anchor=")
		}
	}

	if inputPath == "" {
		log.Fatal("usage: ordorate --input=<results.txt> [--anchor=NAME] [--adjust-white-adv] [--warm-start] [--csv] [--quiet]")
	}

	f, err := os.Open(inputPath)
	if err != nil {
		log.Fatalf("open input: %v", err)
	}
	defer f.Close()

	games, err := readResultsList(f)
	if err != nil {
		log.Fatalf("parse input: %v", err)
	}

	poolAverage := atofDef(os.Getenv("POOL_AVERAGE"), 1500)
	whiteAdv := atofDef(os.Getenv("WHITE_ADVANTAGE"), 0)
	rtngAt76Pct := atofDef(os.Getenv("RTNG_AT_76PCT"), 200)
	drawRateEq := atofDef(os.Getenv("DRAW_RATE_EQ"), 0.3)
	simReplicates := atoiDef(os.Getenv("SIMULATE"), 0)
	confidencePct := atofDef(os.Getenv("CONFIDENCE_PCT"), 95)
	minGames := atoiDef(os.Getenv("MIN_GAMES_TO_REPORT"), 0)

	c, index, err := buildContext(games, poolAverage, whiteAdv, rtngAt76Pct, drawRateEq)
	if err != nil {
		log.Fatalf("build context: %v", err)
	}
	c.Quiet = quiet

	if anchorName != "" {
		idx, ok := index[anchorName]
		if !ok {
			log.Fatalf("anchor %q not found among competitors", anchorName)
		}
		if err := c.SetAnchor(idx); err != nil {
			log.Fatalf("set anchor: %v", err)
		}
	}

	if warmStart {
		seed.SeedElo(c, poolAverage, 24)
		if !quiet {
			termui.Section("warm start")
			log.Printf("seeded %d competitors from an incremental Elo pass", c.N())
		}
	}

	glickoCheck := seed.SeedGlicko(c)

	if !quiet {
		termui.Section("solving")
	}
	rpt, err := rating.Run(c, rating.PipelineOptions{
		AdjustWhiteAdvantage: adjustWAdv,
		Simulate:             simReplicates,
		ConfidencePct:        confidencePct,
		MinGamesToReport:     minGames,
		RNG:                  rand.New(rand.NewSource(time.Now().UnixNano())),
		SeedGlickoRatings:    glickoCheck,
	})
	if err != nil {
		log.Fatalf("run: %v", err)
	}
	if rpt.NonConverged != nil && !quiet {
		log.Print(termui.Warn(rpt.NonConverged.Error()))
	}

	if csvOut {
		if err := report.WriteCSV(os.Stdout, rpt); err != nil {
			log.Fatalf("write csv: %v", err)
		}
	} else {
		if err := report.WriteText(os.Stdout, rpt); err != nil {
			log.Fatalf("write text: %v", err)
		}
	}

	ctx := context.Background()
	if cfg.ArchiveDSN != "" {
		db, err := archive.Open(ctx, cfg.ArchiveDSN)
		if err != nil {
			log.Printf("archive disabled (open failed): %v", err)
		} else {
			defer db.Close()
			if err := db.Migrate(ctx); err != nil {
				log.Printf("archive disabled (migrate failed): %v", err)
			} else if _, err := db.ArchiveReport(ctx, inputPath, rpt); err != nil {
				log.Printf("archive write failed: %v", err)
			}
		}
	}

	if cfg.ServeAddr != "" {
		snap := &serve.Snapshot{}
		snap.Store(rpt)
		log.Printf("serving report on %s", cfg.ServeAddr)
		if err := http.ListenAndServe(cfg.ServeAddr, serve.Router(snap)); err != nil {
			log.Printf("serve exited: %v", err)
		}
	}
}
