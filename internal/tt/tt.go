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

// Package tt implements the search's transposition table (spec.md §3.1,
// §4.8 steps 1/6): a preallocated, always-replace array of fixed-size
// entries keyed by Zobrist hash, sized in MB like
// transpositiontable/tt.go's NewTtTable/Resize.
package tt

import (
	"github.com/kopp/chessgo/internal/move"
	. "github.com/kopp/chessgo/internal/types"
	"github.com/kopp/chessgo/internal/zobrist"
)

// Flag classifies a stored score relative to the search window it was
// found with (spec.md §4.8 step 1).
type Flag int8

const (
	None Flag = iota
	Exact
	Lower
	Upper
)

// Entry is one slot of the table, stored as a plain struct rather than the
// bit-packed 16-byte layout transpositiontable/ttentry.go uses.
type Entry struct {
	Key   zobrist.Key
	Move  move.Move
	Value Value
	Depth int8
	Flag  Flag
}

const EntrySize = 32 // bytes per slot assumed when sizing the table; at least the Go size of Entry

// Table is a fixed-size, always-replace transposition table.
type Table struct {
	data []Entry
	mask uint64

	puts  uint64
	hits  uint64
	probe uint64
}

// New allocates a table sized to hold roughly sizeMB megabytes of entries,
// rounding down to the nearest power of two slot count the way
// transpositiontable/tt.go masks its index with hashKeyMask.
func New(sizeMB int) *Table {
	if sizeMB <= 0 {
		sizeMB = 1
	}
	wanted := uint64(sizeMB) * 1024 * 1024 / EntrySize
	n := uint64(1)
	for n*2 <= wanted {
		n *= 2
	}
	if n == 0 {
		n = 1
	}
	return &Table{data: make([]Entry, n), mask: n - 1}
}

func (t *Table) index(key zobrist.Key) uint64 {
	return uint64(key) & t.mask
}

// Probe returns the entry stored for key, or nil if the slot holds a
// different key (a miss) or is still empty.
func (t *Table) Probe(key zobrist.Key) *Entry {
	t.probe++
	e := &t.data[t.index(key)]
	if e.Key != key || e.Flag == None {
		return nil
	}
	t.hits++
	return e
}

// Put stores an entry, always replacing whatever occupied the slot
// (spec.md §5 Memory: "eviction is always-replace").
func (t *Table) Put(key zobrist.Key, m move.Move, value Value, depth int8, flag Flag) {
	t.puts++
	t.data[t.index(key)] = Entry{Key: key, Move: m, Value: value, Depth: depth, Flag: flag}
}

// Clear wipes every entry, used between unrelated searches.
func (t *Table) Clear() {
	for i := range t.data {
		t.data[i] = Entry{}
	}
	t.puts, t.hits, t.probe = 0, 0, 0
}

// Hashfull reports the table's fill ratio in permille (0-1000), the
// standard UCI-style statistic transpositiontable/tt.go's Hashfull also
// returns, sampled over the first 1000 slots to stay O(1).
func (t *Table) Hashfull() int {
	sample := len(t.data)
	if sample > 1000 {
		sample = 1000
	}
	if sample == 0 {
		return 0
	}
	used := 0
	for i := 0; i < sample; i++ {
		if t.data[i].Flag != None {
			used++
		}
	}
	return used * 1000 / sample
}

// Stats returns (probes, hits) recorded since the last Clear, from which a
// TT hit rate can be derived; no code in this module calls it.
func (t *Table) Stats() (probes, hits uint64) {
	return t.probe, t.hits
}
