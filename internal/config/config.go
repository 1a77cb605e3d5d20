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

// Package config holds the engine's tunable settings, loaded once from a
// TOML file into a package-level Settings struct (falling back to the
// compiled-in defaults below when the file is missing), the way
// internal/config/config.go's Setup() does.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Settings is the global configuration, populated by Setup.
var Settings conf

var initialized = false

type conf struct {
	Log    LogConfig
	Search SearchConfig
	Eval   EvalConfig
}

// LogConfig selects the verbosity of the general and search-specific logs.
type LogConfig struct {
	LogLvl       string
	SearchLogLvl string
}

// SearchConfig controls the iterative-deepening search (spec.md §4.8).
type SearchConfig struct {
	MaxDepth    int // iterative deepening target, spec.md §4.8's DEPTH
	TTSizeMB    int
	UseTT       bool
	UseKillers  bool
	UseHistory  bool
	Quiescence  bool
}

// EvalConfig controls material weights and static evaluation features
// (spec.md §4.7), mirroring the knob-per-feature shape of
// internal/config/evalconfig.go.
type EvalConfig struct {
	PawnValue   int
	KnightValue int
	BishopValue int
	RookValue   int
	QueenValue  int

	UsePSQT bool
	Tempo   int
}

func init() {
	setDefaults()
}

func setDefaults() {
	Settings.Log.LogLvl = "info"
	Settings.Log.SearchLogLvl = "info"

	Settings.Search.MaxDepth = 6
	Settings.Search.TTSizeMB = 64
	Settings.Search.UseTT = true
	Settings.Search.UseKillers = true
	Settings.Search.UseHistory = true
	Settings.Search.Quiescence = true

	Settings.Eval.PawnValue = 100
	Settings.Eval.KnightValue = 320
	Settings.Eval.BishopValue = 330
	Settings.Eval.RookValue = 500
	Settings.Eval.QueenValue = 900
	Settings.Eval.UsePSQT = true
	Settings.Eval.Tempo = 10
}

// Setup reads path (a TOML file) into Settings, leaving the compiled-in
// defaults for anything the file omits or if the file does not exist - a
// missing file is not an error, matching internal/config/config.go's own
// Setup(). A file that exists but fails to decode returns the decode error.
func Setup(path string) error {
	if initialized {
		return nil
	}
	initialized = true
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		return err
	}
	return nil
}

// Reset clears the initialized guard and restores defaults; used by tests
// that need a clean Settings each run.
func Reset() {
	initialized = false
	setDefaults()
}
