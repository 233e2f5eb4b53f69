package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ordorate/internal/rating"
)

// parsedGame names its two sides directly; indices are resolved once
// every name has been seen, since a results list may reference a
// competitor before or after their other games.
type parsedGame struct {
	white, black string
	outcome      rating.Outcome
}

// readResultsList parses the simple space-delimited results format
// this CLI accepts: one game per non-blank, non-comment line,
// "<white> <black> <result>" where result is one of 1-0, 0-1, 1/2-1/2,
// or * (discard). Lines starting with '#' are comments. This is
// deliberately not a PGN reader: full PGN parsing is out of scope, and
// this format is just enough to drive the core from a plain text file.
func readResultsList(r io.Reader) ([]parsedGame, error) {
	var games []parsedGame
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: expected \"white black result\", got %q", lineNo, line)
		}
		outcome, err := parseResult(fields[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		games = append(games, parsedGame{white: fields[0], black: fields[1], outcome: outcome})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return games, nil
}

func parseResult(s string) (rating.Outcome, error) {
	switch s {
	case "1-0":
		return rating.WhiteWin, nil
	case "0-1":
		return rating.BlackWin, nil
	case "1/2-1/2", "0.5-0.5":
		return rating.Draw, nil
	case "*":
		return rating.Discard, nil
	default:
		return 0, fmt.Errorf("unrecognized result %q", s)
	}
}

// buildContext assigns a stable index to every distinct competitor
// name in first-appearance order and loads every game into a fresh
// Context.
func buildContext(games []parsedGame, poolAverage, whiteAdv, rtngAt76Pct, drawRateEq float64) (*rating.Context, map[string]int, error) {
	index := make(map[string]int)
	var names []string
	nameIndex := func(name string) int {
		if idx, ok := index[name]; ok {
			return idx
		}
		idx := len(names)
		index[name] = idx
		names = append(names, name)
		return idx
	}
	for _, g := range games {
		nameIndex(g.white)
		nameIndex(g.black)
	}

	c := rating.NewContext(len(names), poolAverage, whiteAdv, rtngAt76Pct, drawRateEq)
	for i, name := range names {
		c.Competitors[i].Name = name
	}
	for _, g := range games {
		if err := c.AddGame(index[g.white], index[g.black], g.outcome); err != nil {
			return nil, nil, err
		}
	}
	return c, index, nil
}

func atofDef(s string, def float64) float64 {
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}

func atoiDef(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
