package ui_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dublyo/dockergen/internal/ui"
)

func TestPrinterPlainWhenNotTerminal(t *testing.T) {
	var out, errOut bytes.Buffer
	p := ui.NewPrinter(&out, &errOut, false)

	p.Info("Scanning %s...", "/app")
	p.Success("Dockerfile created at %s", "/app/Dockerfile")
	p.Warn("low confidence")
	p.Field("Type", "react")
	p.Error("write failed")

	assert.Contains(t, out.String(), "Scanning /app...\n")
	assert.Contains(t, out.String(), "✓ Dockerfile created at /app/Dockerfile")
	assert.Contains(t, out.String(), "⚠ low confidence")
	assert.Contains(t, out.String(), "Type:")
	assert.Contains(t, out.String(), "react")
	assert.NotContains(t, out.String(), "\x1b[", "no ANSI escapes for a buffer")
	assert.Equal(t, "Error: write failed\n", errOut.String())
}

func TestPrinterQuiet(t *testing.T) {
	var out, errOut bytes.Buffer
	p := ui.NewPrinter(&out, &errOut, true)

	p.Info("hidden")
	p.Success("hidden")
	p.Warn("hidden")
	p.Field("Type", "hidden")
	p.Error("shown")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "shown")
}
