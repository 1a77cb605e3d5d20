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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsArePopulated(t *testing.T) {
	Reset()
	assert.Equal(t, 100, Settings.Eval.PawnValue)
	assert.Equal(t, 6, Settings.Search.MaxDepth)
}

func TestSetupMissingFileKeepsDefaults(t *testing.T) {
	Reset()
	err := Setup("/does/not/exist.toml")
	require.NoError(t, err)
	assert.Equal(t, 100, Settings.Eval.PawnValue)
}

func TestSetupOverridesFromFile(t *testing.T) {
	Reset()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := "[Search]\nMaxDepth = 9\n\n[Eval]\nPawnValue = 105\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	require.NoError(t, Setup(path))
	assert.Equal(t, 9, Settings.Search.MaxDepth)
	assert.Equal(t, 105, Settings.Eval.PawnValue)
}
