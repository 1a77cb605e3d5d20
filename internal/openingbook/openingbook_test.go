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

package openingbook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddThenLookupFindsKnownLine(t *testing.T) {
	b := NewBook()
	b.Add([]string{"e2e4", "e7e5", "g1f3"})
	b.Add([]string{"e2e4", "c7c5"})

	n, err := b.Lookup([]string{"e2e4"})
	require.NoError(t, err)
	assert.Len(t, n.Children, 2)
	assert.Contains(t, n.Children, "e7e5")
	assert.Contains(t, n.Children, "c7c5")
}

func TestLookupOutOfBookReturnsError(t *testing.T) {
	b := NewBook()
	b.Add([]string{"e2e4", "e7e5"})

	_, err := b.Lookup([]string{"d2d4"})
	assert.ErrorIs(t, err, ErrOutOfBook)
}

func TestLookupAtLeafHasNoChildren(t *testing.T) {
	b := NewBook()
	b.Add([]string{"e2e4"})

	n, err := b.Lookup([]string{"e2e4"})
	require.NoError(t, err)
	assert.True(t, n.Terminal)
	assert.Empty(t, n.Children)
}

func TestChooseOnlyReturnsActualChildren(t *testing.T) {
	b := NewBook()
	b.Add([]string{"e2e4"})
	b.Add([]string{"e2e4"})
	b.Add([]string{"d2d4"})

	n, err := b.Lookup(nil)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		mv, ok := Choose(n)
		require.True(t, ok)
		assert.Contains(t, []string{"e2e4", "d2d4"}, mv)
	}
}

func TestChooseOnEmptyNodeReportsNotOk(t *testing.T) {
	_, ok := Choose(newNode())
	assert.False(t, ok)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	b := NewBook()
	b.Add([]string{"e2e4", "e7e5"})
	b.Add([]string{"e2e4", "c7c5"})
	b.Add([]string{"d2d4"})

	path := filepath.Join(t.TempDir(), "book.cache")
	require.NoError(t, b.Save(path))

	loaded := NewBook()
	require.NoError(t, loaded.Load(path))

	n, err := loaded.Lookup([]string{"e2e4"})
	require.NoError(t, err)
	assert.Len(t, n.Children, 2)
	assert.Equal(t, 1, n.Children["e7e5"].Weight)
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	b := NewBook()
	err := b.Load(filepath.Join(os.TempDir(), "does-not-exist-chessgo-book.cache"))
	assert.Error(t, err)
}
