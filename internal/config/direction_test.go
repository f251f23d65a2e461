package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type point struct{ X, Y float64 }

func TestResolveSelectsCandidate(t *testing.T) {
	tests := []struct {
		d    Direction
		want string
	}{
		{Vertical, "v"},
		{DefaultVertical, "v"},
		{Horizontal, "h"},
		{HorizontalWithVerticalContent, "hv"},
		{Direction(99), "v"},
	}
	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.d, "v", "h", "hv"))
		})
	}
}

func TestResolveThirdCandidateDefaultsToVertical(t *testing.T) {
	for _, d := range []Direction{Vertical, DefaultVertical, Horizontal, HorizontalWithVerticalContent} {
		assert.Equal(t, Resolve(d, 1.5, 2.5, 1.5), Resolve(d, 1.5, 2.5), d.String())
	}
	assert.Equal(t, point{X: 1}, Resolve(HorizontalWithVerticalContent, point{X: 1}, point{Y: 1}))
}

func TestResolveIsGeneric(t *testing.T) {
	offset := Resolve(Horizontal, point{Y: 120}, point{X: 320})
	assert.Equal(t, point{X: 320}, offset)

	n := Resolve(Vertical, 10, 20, 30)
	assert.Equal(t, 10, n)
}

func TestAxis(t *testing.T) {
	assert.Equal(t, AxisVertical, Vertical.Axis())
	assert.Equal(t, AxisVertical, DefaultVertical.Axis())
	assert.Equal(t, AxisHorizontal, Horizontal.Axis())
	assert.Equal(t, AxisHorizontal, HorizontalWithVerticalContent.Axis())
}

func TestDirectionIs(t *testing.T) {
	assert.True(t, Horizontal.Is(Vertical, Horizontal))
	assert.False(t, DefaultVertical.Is(Vertical))
	assert.False(t, Vertical.Is())
}

func TestParseDirection(t *testing.T) {
	for d := range directionNames {
		got, err := ParseDirection(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	got, err := ParseDirection("HORIZONTAL")
	require.NoError(t, err)
	assert.Equal(t, Horizontal, got)

	_, err = ParseDirection("diagonal")
	assert.Error(t, err)
	assert.Equal(t, "Direction(7)", Direction(7).String())
}

func TestDirectionYAML(t *testing.T) {
	type doc struct {
		Direction Direction `yaml:"direction"`
	}
	out, err := yaml.Marshal(doc{Direction: HorizontalWithVerticalContent})
	require.NoError(t, err)
	assert.Equal(t, "direction: horizontal_with_vertical_content\n", string(out))

	var in doc
	require.NoError(t, yaml.Unmarshal([]byte("direction: vertical\n"), &in))
	assert.Equal(t, Vertical, in.Direction)

	assert.Error(t, yaml.Unmarshal([]byte("direction: sideways\n"), &in))
}
