/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// cmd/chessgo is the small process surface spec.md §6.4 calls for: choose a
// side, optionally turn on debug logging, play against the engine on
// stdin/stdout, or run a perft count and exit. Flag wiring follows
// cmd/FrankyGo/main.go's own shape; -profile switches on the profiling hook
// that file leaves commented out.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/op/go-logging"
	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kopp/chessgo/internal/config"
	chessgologging "github.com/kopp/chessgo/internal/logging"
	"github.com/kopp/chessgo/internal/move"
	"github.com/kopp/chessgo/internal/movegen"
	"github.com/kopp/chessgo/internal/perft"
	"github.com/kopp/chessgo/internal/position"
	"github.com/kopp/chessgo/internal/search"
	. "github.com/kopp/chessgo/internal/types"
	"github.com/kopp/chessgo/internal/util"
)

var out = message.NewPrinter(language.English)

// logLevels maps the -loglvl flag's accepted strings to op/go-logging
// levels; an unknown string falls back to info.
var logLevels = map[string]logging.Level{
	"critical": logging.CRITICAL,
	"error":    logging.ERROR,
	"warning":  logging.WARNING,
	"notice":   logging.NOTICE,
	"info":     logging.INFO,
	"debug":    logging.DEBUG,
}

func main() {
	configFile := flag.String("config", "", "path to configuration settings file (TOML); unset keeps compiled-in defaults")
	logLvl := flag.String("loglvl", "info", "standard log level (critical|error|warning|notice|info|debug)")
	debug := flag.Bool("debug", false, "enable debug logging")
	fen := flag.String("fen", position.StartFen, "starting position, in FEN")
	side := flag.String("side", "white", "human side: white|black")
	depth := flag.Int("depth", 0, "search depth limit; 0 uses the configured default")
	perftDepth := flag.Int("perft", 0, "run perft to the given depth from -fen and exit")
	profileFlag := flag.Bool("profile", false, "wrap the run in a CPU profile (writes ./cpu.pprof)")
	flag.Parse()

	if *profileFlag {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	if err := config.Setup(*configFile); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	level, found := logLevels[strings.ToLower(*logLvl)]
	if !found {
		level = logging.INFO
	}
	if *debug {
		level = logging.DEBUG
	}
	chessgologging.SetLevel(level, "")

	if *perftDepth > 0 {
		runPerft(*fen, *perftDepth)
		os.Exit(0)
	}

	humanSide := White
	if strings.EqualFold(*side, "black") {
		humanSide = Black
	}

	os.Exit(runGame(*fen, humanSide, *depth))
}

func runPerft(fen string, depth int) {
	pos, err := position.NewPositionFromFEN(fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fen: %v\n", err)
		os.Exit(1)
	}
	p := perft.New()
	nodes := p.RunReport(pos, depth)
	out.Printf("perft(%d) = %d nodes\n", depth, nodes)
}

// runGame plays a console game against the engine until the human quits or
// the position reaches a terminal state; returns the process exit code
// (spec.md §6.4: "Exit codes: 0 on clean quit").
func runGame(fen string, humanSide Color, depth int) int {
	pos, err := position.NewPositionFromFEN(fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fen: %v\n", err)
		return 1
	}

	s := search.NewSearch()
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print(pos.String())

		legal := movegen.Generate(pos, movegen.GenAll)
		if len(legal) == 0 {
			if movegen.InCheck(pos, pos.Side()) {
				fmt.Println("checkmate")
			} else {
				fmt.Println("stalemate")
			}
			return 0
		}

		if pos.Side() == humanSide {
			fmt.Print("your move (or 'quit'): ")
			line, readErr := reader.ReadString('\n')
			if readErr != nil {
				return 0
			}
			line = strings.TrimSpace(line)
			if line == "quit" {
				return 0
			}
			m, found := matchMove(legal, line, pos.Side())
			if !found {
				fmt.Println("not a legal move")
				continue
			}
			pos.Make(m)
		} else {
			result := s.FindBestMove(pos, search.Limits{MaxDepth: depth})
			nps := util.Nps(uint64(result.Nodes), result.SearchTime)
			fmt.Printf("engine plays %s (depth %d, value %d, %d nodes, %d nps)\n",
				result.BestMove.Algebra(pos.Side()), result.Depth, result.Value, result.Nodes, nps)
			pos.Make(result.BestMove)
		}
	}
}

// matchMove resolves a user-typed algebraic string (e.g. "e2e4", "e7e8q",
// "O-O") against the legal move list (spec.md §6.3).
func matchMove(legal []move.Move, text string, side Color) (move.Move, bool) {
	for _, m := range legal {
		if strings.EqualFold(m.Algebra(side), text) {
			return m, true
		}
	}
	return move.Move{}, false
}
