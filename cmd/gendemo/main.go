// Command gendemo synthesizes a pairwise game database from
// real-hand-evaluator poker deals and writes it as an ordorate results
// list, so the pipeline can be exercised end to end without a real
// competition history.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"ordorate/internal/demogen"
	"ordorate/internal/rating"
)

func main() {
	var (
		competitors = 8
		hands       = 25
		seedVal     = int64(1)
		out         = ""
	)
	for _, a := range os.Args[1:] {
		switch {
		case strings.HasPrefix(a, "--competitors="):
			competitors = atoiOrFatal(strings.TrimPrefix(a, "--competitors="))
		case strings.HasPrefix(a, "--hands="):
			hands = atoiOrFatal(strings.TrimPrefix(a, "--hands="))
		case strings.HasPrefix(a, "--seed="):
			seedVal = atoi64OrFatal(strings.TrimPrefix(a, "--seed="))
		case strings.HasPrefix(a, "--out="):
			out = strings.TrimPrefix(a, "--out=")
		}
	}

	db, err := demogen.Generate(demogen.Options{
		Competitors:     competitors,
		HandsPerPairing: hands,
		Seed:            seedVal,
		PoolAverage:     1500,
		RtngAt76Pct:     200,
		DrawRateEq:      0.3,
	})
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	w := os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			log.Fatalf("create %s: %v", out, err)
		}
		defer f.Close()
		w = f
	}

	for _, g := range db.Games {
		white := db.Competitors[g.White].Name
		black := db.Competitors[g.Black].Name
		var result string
		switch g.Outcome {
		case rating.WhiteWin:
			result = "1-0"
		case rating.Draw:
			result = "1/2-1/2"
		case rating.BlackWin:
			result = "0-1"
		default:
			result = "*"
		}
		fmt.Fprintf(w, "%s %s %s\n", white, black, result)
	}
}

func atoiOrFatal(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid integer %q: %v", s, err)
	}
	return n
}

func atoi64OrFatal(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		log.Fatalf("invalid integer %q: %v", s, err)
	}
	return n
}
