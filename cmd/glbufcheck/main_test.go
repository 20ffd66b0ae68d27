// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gioui.org/glbuf"
	"gioui.org/glbuf/driver"
	"gioui.org/glbuf/driver/drivertest"
)

func TestCheck(t *testing.T) {
	dev := drivertest.New()
	var out bytes.Buffer
	require.NoError(t, check(&out, dev, 1024, driver.UsageStaticDraw))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "target=array size=1020 usage=static draw attributes=[0] element=false")
	assert.Contains(t, lines[1], "target=element array size=170 usage=static draw attributes=[] element=true")
	assert.Equal(t, 0, dev.LiveHandles())
	assert.Empty(t, dev.Errors)
}

func TestParseUsage(t *testing.T) {
	u, err := parseUsage("dynamic-draw")
	require.NoError(t, err)
	assert.Equal(t, driver.UsageDynamicDraw, u)

	_, err = parseUsage("draw")
	assert.Error(t, err)
}

func TestVerboseLogger(t *testing.T) {
	var buf bytes.Buffer
	glbuf.SetLogger(newLogger(&buf, true))
	defer glbuf.SetLogger(nil)

	b := glbuf.NewArrayBuffer(drivertest.New())
	b.Release()
	assert.Contains(t, buf.String(), "glbuf: buffer released")

	buf.Reset()
	assert.False(t, newLogger(&buf, false).Enabled(context.Background(), slog.LevelDebug))
}
