package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chip/board"
)

func TestHeatColorBucketsByFraction(t *testing.T) {
	assert.Equal(t, heatRamp[0], heatColor(0, 10))
	assert.Equal(t, heatRamp[0], heatColor(0, 0))
	assert.Equal(t, heatRamp[len(heatRamp)-1], heatColor(10, 10))
}

func TestRenderLayerShowsGlyphs(t *testing.T) {
	b, warnings, err := board.Build("A-a", board.Stack)
	require.NoError(t, err)
	require.Empty(t, warnings)

	m := model{b: b}
	rendered := m.renderLayer()
	assert.True(t, strings.Contains(rendered, "A"))
	assert.True(t, strings.Contains(rendered, "a"))
}

func TestRenderLayerOutOfRangeIsEmpty(t *testing.T) {
	b, _, err := board.Build("A-a", board.Stack)
	require.NoError(t, err)

	m := model{b: b, layer: 5}
	assert.Equal(t, "(empty board)", m.renderLayer())
}
