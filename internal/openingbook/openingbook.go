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

// Package openingbook holds a trie of known opening lines keyed by
// algebraic move sequence (spec.md §3.1/§4.9), in place of the teacher's
// zobrist-keyed BookEntry map - lookup(moveSequenceSoFarInAlgebraicForm)
// walks one child per move and returns the distribution available from
// there. Parsing Simple/SAN/PGN game files into this structure is out of
// scope (spec.md's opening-book file parser Non-goal); the trie is built
// with Add and persisted with the teacher's own encoding/gob cache idiom.
package openingbook

import (
	"encoding/gob"
	"errors"
	"math/rand"
	"os"
	"sync"

	"github.com/kopp/chessgo/internal/logging"
)

var log = logging.GetLog("openingbook")

// ErrOutOfBook is returned by Lookup once a move sequence has left every
// known line.
var ErrOutOfBook = errors.New("openingbook: sequence not in book")

// Child links to a successor node and the number of recorded games that
// took this move, used for weighted random selection (spec.md §4.9).
type Child struct {
	Node   *Node
	Weight int
}

// Node is one position in the book trie: a move away from its parent,
// reachable by further moves keyed in Children.
type Node struct {
	Children map[string]*Child
	Terminal bool
}

func newNode() *Node {
	return &Node{Children: make(map[string]*Child)}
}

// Book owns the book trie's root and serializes mutation, the way the
// teacher's Book guards bookMap with bookLock.
type Book struct {
	mu   sync.Mutex
	root *Node
}

// NewBook returns an empty book; populate it with Add or Load.
func NewBook() *Book {
	return &Book{root: newNode()}
}

// Add records one known game as a sequence of algebraic moves, creating
// trie nodes as needed and incrementing the weight of every edge walked.
func (b *Book) Add(moves []string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := b.root
	for _, mv := range moves {
		c, ok := n.Children[mv]
		if !ok {
			c = &Child{Node: newNode()}
			n.Children[mv] = c
		}
		c.Weight++
		n = c.Node
	}
	n.Terminal = true
}

// Lookup walks moves from the root and returns the node reached, or
// ErrOutOfBook once a move isn't a known child (spec.md §4.9).
func (b *Book) Lookup(moves []string) (*Node, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := b.root
	for _, mv := range moves {
		c, ok := n.Children[mv]
		if !ok {
			return nil, ErrOutOfBook
		}
		n = c.Node
	}
	return n, nil
}

// Choose picks one of node's children at random, weighted by how often it
// was recorded (spec.md §4.9: "uniformly at random, or by weight if
// weights are present"); ok is false if node has no children.
func Choose(node *Node) (move string, ok bool) {
	if node == nil || len(node.Children) == 0 {
		return "", false
	}
	total := 0
	for _, c := range node.Children {
		total += c.Weight
	}
	if total == 0 {
		// no weights recorded - fall back to a uniform pick.
		n := rand.Intn(len(node.Children))
		i := 0
		for mv := range node.Children {
			if i == n {
				return mv, true
			}
			i++
		}
	}
	pick := rand.Intn(total)
	for mv, c := range node.Children {
		if pick < c.Weight {
			return mv, true
		}
		pick -= c.Weight
	}
	return "", false
}

// cacheEntry is the gob-encoded wire form of a trie edge, flattened because
// gob cannot round-trip the Node/Child pointer cycle directly.
type cacheEntry struct {
	Path   []string
	Weight int
}

// Save persists the book to path as a gob-encoded edge list, the cache
// format idiom openingbook/openingbook.go uses to avoid re-parsing a large
// game database on every startup.
func (b *Book) Save(path string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var entries []cacheEntry
	var walk func(n *Node, prefix []string)
	walk = func(n *Node, prefix []string) {
		for mv, c := range n.Children {
			path := append(append([]string{}, prefix...), mv)
			entries = append(entries, cacheEntry{Path: path, Weight: c.Weight})
			walk(c.Node, path)
		}
	}
	walk(b.root, nil)

	log.Infof("opening book: writing %d cached lines to %s", len(entries), path)
	return gob.NewEncoder(f).Encode(entries)
}

// Load replaces the book's contents with the cache written by Save.
func (b *Book) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var entries []cacheEntry
	if err := gob.NewDecoder(f).Decode(&entries); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.root = newNode()
	for _, e := range entries {
		n := b.root
		for i, mv := range e.Path {
			c, ok := n.Children[mv]
			if !ok {
				c = &Child{Node: newNode()}
				n.Children[mv] = c
			}
			if i == len(e.Path)-1 {
				c.Weight = e.Weight
			}
			n = c.Node
		}
	}
	log.Infof("opening book: loaded %d cached lines from %s", len(entries), path)
	return nil
}
