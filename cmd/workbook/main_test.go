package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()

	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return buf.String()
}

func TestSquares(t *testing.T) {
	out := runCommand(t, "squares")
	assert.Contains(t, out, "[1 4 9 16 25]")
}

func TestKeep(t *testing.T) {
	out := runCommand(t, "keep", "--limit", "5")
	assert.Contains(t, out, "[3 2 5]")
}

func TestGrades(t *testing.T) {
	out := runCommand(t, "grades")
	// The regrade (84 -> B) overwrites the first "ada" entry.
	assert.Contains(t, out, "ada: B")
	assert.Contains(t, out, "max: A")
}

func TestMatrix(t *testing.T) {
	out := runCommand(t, "matrix", "--size", "3")
	assert.Contains(t, out, "1.00")
	assert.Contains(t, out, "0.50")
	assert.Contains(t, out, "0.33")
}

func TestPairs(t *testing.T) {
	out := runCommand(t, "pairs")
	assert.NotContains(t, out, "(0, 0", "diagonal pairs are filtered out")
	assert.Contains(t, out, "(1, 0, 2.000)")
	assert.Contains(t, out, "(2, 1, 1.500)")
}
