package tui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeader_PlainOffTerminal(t *testing.T) {
	var buf bytes.Buffer
	Header(&buf, 7, "hosts")
	assert.Equal(t, "hosts\n", buf.String())
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "1.2.3")
	assert.Equal(t, "logstate v1.2.3 - log-search view state\n", buf.String())
}

func TestNewRenderer(t *testing.T) {
	render, err := NewRenderer(60)
	require.NoError(t, err)

	out, err := render("## hosts\n\n- c6401\n")
	require.NoError(t, err)
	assert.Contains(t, out, "c6401")
}
