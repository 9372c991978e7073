package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLP(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestVetCleanFileIsNotIssued(t *testing.T) {
	dir := t.TempDir()
	path := writeLP(t, dir, "ok.lp", "min\nobj: x + y;\nst\nc1: x + y <= 1;\nend\n")

	err, issued := vet(path, true, "")
	require.NoError(t, err)
	assert.False(t, issued)
}

func TestVetMalformedFileReportsError(t *testing.T) {
	dir := t.TempDir()
	path := writeLP(t, dir, "bad.lp", "obj: x + y;\nst\nc1: x <= 1;\nend\n")

	err, issued := vet(path, false, "")
	require.Error(t, err)
	assert.False(t, issued)
}

func TestVetWarnsOnUnusedDeclaredVar(t *testing.T) {
	dir := t.TempDir()
	path := writeLP(t, dir, "unused.lp", "min\nobj: x;\nst\nc1: x <= 1;\nintegers\ny\nend\n")

	err, issued := vet(path, true, "")
	require.NoError(t, err)
	assert.True(t, issued)
}

func TestVetWritesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeLP(t, dir, "p.lp", "min\nobj: x;\nst\nc1: x <= 1;\nend\n")
	yamlPath := filepath.Join(dir, "p.yaml")

	err, _ := vet(path, false, yamlPath)
	require.NoError(t, err)

	data, rerr := os.ReadFile(yamlPath)
	require.NoError(t, rerr)
	assert.Contains(t, string(data), "sense: minimize")
}

func TestLinecolReportsLineAndColumn(t *testing.T) {
	text := "min\nobj: x\nbad"
	assert.Equal(t, "1:1", linecol(text, 0))
	assert.Equal(t, "2:1", linecol(text, 4))
	assert.Equal(t, "3:1", linecol(text, 11))
}
