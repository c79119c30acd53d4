package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/endlessgrid/point"
)

func TestTrace(t *testing.T) {
	g := coordGrid(64)
	assert.Equal(t, 64*64, g.Len())

	var buf bytes.Buffer
	n := trace(&buf, g, point.V(31.5, 51.5), point.V(32.5, 52.5))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, n, len(lines))
	require.Equal(t, 3, n)
	assert.True(t, strings.HasPrefix(lines[0], "(31,51) value=(31,51) dist=0.000"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "(31,52) "), "diagonal ties step y first: %s", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "(32,52) "), lines[2])
}
