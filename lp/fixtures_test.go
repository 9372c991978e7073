package lp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These fixtures are small, hand-written stand-ins for the named regression
// corpora (pulp, sc50a, ...) referenced by the original implementation's
// test suite, scaled down since the full corpora aren't available here.

func readFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(data)
}

func TestFixturePulpStyleHasNoProblemName(t *testing.T) {
	p, err := Parse(readFixture(t, "pulp_style.lp"))
	require.NoError(t, err)
	assert.Equal(t, "", p.Name())
	assert.Equal(t, 1, p.ObjectiveCount())
	assert.Equal(t, 3, p.ConstraintCount())
	for _, name := range []string{"x", "y", "z"} {
		assert.Contains(t, p.Variables, name)
	}
}

func TestFixtureSc50aStyleBounds(t *testing.T) {
	p, err := Parse(readFixture(t, "sc50a_style.lp"))
	require.NoError(t, err)
	assert.Equal(t, "sc50a-small", p.Name())
	assert.Equal(t, 4, p.ConstraintCount())

	assert.Equal(t, 0.0, p.Variables["x1"].Bounds.Lower)
	assert.Equal(t, 30.0, p.Variables["x1"].Bounds.Upper)

	x3 := p.Variables["x3"]
	assert.Equal(t, 50.0, x3.Bounds.Upper)

	x4 := p.Variables["x4"]
	assert.True(t, x4.Bounds.Free)

	x5 := p.Variables["x5"]
	assert.Equal(t, 12.0, x5.Bounds.Lower)
	assert.Equal(t, 12.0, x5.Bounds.Upper)

	r3, ok := p.Constraints["r3"]
	require.True(t, ok)
	assert.Equal(t, RangedConstraint, r3.Kind)
	assert.Equal(t, -5.0, r3.Lower)
	assert.Equal(t, 5.0, r3.Upper)
}
