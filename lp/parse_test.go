package lp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMinimalProblem(t *testing.T) {
	text := `\* tiny *\
min
obj: 2 x + 3 y;
st
c1: x + y <= 10;
bounds
x <= 5;
y <= 5;
end`
	p, err := Parse(text)
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, "tiny", p.Name())
	assert.True(t, p.IsMinimization())
	assert.Equal(t, 1, p.ObjectiveCount())
	assert.Equal(t, 1, p.ConstraintCount())

	obj, ok := p.Objectives["obj"]
	require.True(t, ok)
	require.Len(t, obj.Coefficients, 2)
	assert.Equal(t, Coefficient{Name: "x", Value: 2}, obj.Coefficients[0])
	assert.Equal(t, Coefficient{Name: "y", Value: 3}, obj.Coefficients[1])

	c1, ok := p.Constraints["c1"]
	require.True(t, ok)
	assert.Equal(t, StandardConstraint, c1.Kind)
	assert.Equal(t, LE, c1.Op)
	assert.Equal(t, 10.0, c1.RHS)
}

func TestParseMaximizeSpellings(t *testing.T) {
	for _, kw := range []string{"max", "MAX", "maximize", "Maximise"} {
		text := kw + `
obj: x;
subject to
c1: x <= 1;
end`
		p, err := Parse(text)
		require.NoError(t, err, kw)
		assert.False(t, p.IsMinimization(), kw)
	}
}

func TestParseUnnamedConstraintsGetSyntheticNames(t *testing.T) {
	text := `min
obj: x + y;
st
x + y <= 1;
x - y <= 1;
end`
	p, err := Parse(text)
	require.NoError(t, err)
	_, ok1 := p.Constraints["c_1"]
	_, ok2 := p.Constraints["c_2"]
	assert.True(t, ok1)
	assert.True(t, ok2)
}

func TestParseRangedConstraint(t *testing.T) {
	text := `min
obj: x;
st
r1: -5 <= x + 1 <= 5;
end`
	p, err := Parse(text)
	require.NoError(t, err)
	c, ok := p.Constraints["r1"]
	require.True(t, ok)
	assert.Equal(t, RangedConstraint, c.Kind)
	assert.Equal(t, -5.0, c.Lower)
	assert.Equal(t, 5.0, c.Upper)
}

func TestParseIndicatorConstraint(t *testing.T) {
	text := `min
obj: x;
st
ind1: a = 1 -> x + y <= 10;
end`
	p, err := Parse(text)
	require.NoError(t, err)
	c, ok := p.Constraints["ind1"]
	require.True(t, ok)
	assert.Equal(t, IndicatorConstraint, c.Kind)
	assert.Equal(t, "a", c.IndicatorVar)
	assert.Equal(t, 1, c.IndicatorValue)
	require.NotNil(t, c.Inner)
	assert.Equal(t, LE, c.Inner.Op)
}

func TestParseBoundsForms(t *testing.T) {
	text := `min
obj: x + y + z + w;
st
c1: x + y + z + w <= 100;
bounds
0 <= x <= 10;
y >= -5;
z = 3;
w free;
end`
	p, err := Parse(text)
	require.NoError(t, err)

	x := p.Variables["x"]
	require.NotNil(t, x)
	assert.Equal(t, 0.0, x.Bounds.Lower)
	assert.Equal(t, 10.0, x.Bounds.Upper)

	y := p.Variables["y"]
	require.NotNil(t, y)
	assert.Equal(t, -5.0, y.Bounds.Lower)

	z := p.Variables["z"]
	require.NotNil(t, z)
	assert.Equal(t, 3.0, z.Bounds.Lower)
	assert.Equal(t, 3.0, z.Bounds.Upper)

	w := p.Variables["w"]
	require.NotNil(t, w)
	assert.True(t, w.Bounds.Free)
}

func TestParseTypedVarSections(t *testing.T) {
	text := `min
obj: x + y + z;
st
c1: x + y + z <= 10;
generals
x
integers
y
binaries
z
end`
	p, err := Parse(text)
	require.NoError(t, err)
	assert.Equal(t, General, p.Variables["x"].Type)
	assert.Equal(t, Integer, p.Variables["y"].Type)
	assert.Equal(t, Binary, p.Variables["z"].Type)
	assert.Equal(t, 0.0, p.Variables["z"].Bounds.Lower)
	assert.Equal(t, 1.0, p.Variables["z"].Bounds.Upper)
}

func TestParseSOSSection(t *testing.T) {
	text := `min
obj: x + y + z;
st
c1: x + y + z <= 10;
sos
set1: s1 :: x:1 y:2 z:3
end`
	p, err := Parse(text)
	require.NoError(t, err)
	s, ok := p.SOSSets["set1"]
	require.True(t, ok)
	assert.Equal(t, SOS1, s.Kind)
	require.Len(t, s.Weights, 3)
	assert.Equal(t, "x", s.Weights[0].Name)
}

func TestParseImplicitCoefficientOne(t *testing.T) {
	text := `min
obj: x + y;
st
c1: x + y <= 1;
end`
	p, err := Parse(text)
	require.NoError(t, err)
	obj := p.Objectives["obj"]
	assert.Equal(t, 1.0, obj.Coefficients[0].Value)
	assert.Equal(t, 1.0, obj.Coefficients[1].Value)
}

func TestParseMissingSenseFails(t *testing.T) {
	text := `obj: x + y;
st
c1: x <= 1;
end`
	_, err := Parse(text)
	require.Error(t, err)
	lerr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, MissingSense, lerr.Kind)
}

func TestParseUnterminatedBlockCommentFails(t *testing.T) {
	text := `\* never closed
min
obj: x;
st
c1: x <= 1;
end`
	_, err := Parse(text)
	require.Error(t, err)
	lerr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, UnterminatedComment, lerr.Kind)
}

func TestParseDuplicateConstraintNameFails(t *testing.T) {
	text := `min
obj: x;
st
c1: x <= 1;
c1: x >= 0;
end`
	_, err := Parse(text)
	require.Error(t, err)
	lerr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, DuplicateName, lerr.Kind)
}

func TestParseInvertedBoundsFails(t *testing.T) {
	text := `min
obj: x;
st
c1: x <= 1;
bounds
10 <= x <= 1;
end`
	_, err := Parse(text)
	require.Error(t, err)
	lerr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, InvalidBounds, lerr.Kind)
}

func TestParseTrailingContentFails(t *testing.T) {
	text := `min
obj: x;
st
c1: x <= 1;
end
garbage`
	_, err := Parse(text)
	require.Error(t, err)
	lerr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, TrailingContent, lerr.Kind)
}

func TestParseDiagnosticsCollected(t *testing.T) {
	text := `min
obj: 0 x + y;
st
c1: x + y <= 1;
end`
	sink := &CollectingSink{}
	p, err := ParseWithOptions(text, ParseOptions{Sink: sink})
	require.NoError(t, err)
	require.NotNil(t, p)
	require.NotEmpty(t, sink.Diagnostics)
	assert.Equal(t, DiagZeroCoefficient, sink.Diagnostics[0].Kind)
}

func TestParseCRLFAndCRLineEndings(t *testing.T) {
	for _, nl := range []string{"\r\n", "\r"} {
		text := "min" + nl + "obj: x;" + nl + "st" + nl + "c1: x <= 1;" + nl + "end"
		p, err := Parse(text)
		require.NoError(t, err, nl)
		assert.Equal(t, 1, p.ConstraintCount(), nl)
	}
}

func TestParseProblemNameFromLastComment(t *testing.T) {
	text := `\* ENCODING=ISO-8859-1 *\
\* Problem name: widget-mix *\
min
obj: x;
st
c1: x <= 1;
end`
	p, err := Parse(text)
	require.NoError(t, err)
	assert.Equal(t, "widget-mix", p.Name())
}

func TestParseEmptyNameWhenNoComment(t *testing.T) {
	text := `min
obj: x;
st
c1: x <= 1;
end`
	p, err := Parse(text)
	require.NoError(t, err)
	assert.Equal(t, "", p.Name())
}
