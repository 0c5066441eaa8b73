package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestDemo_EmitsPassingStream(t *testing.T) {
	var buf bytes.Buffer
	demoCmd.SetOut(&buf)
	demoCommand(demoCmd, nil)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "1..9\n"))
	assert.Contains(t, out, "ok 1 - the first one's free\n")
	assert.Contains(t, out, "# TODO not reliable yet\n")
	assert.Contains(t, out, "ok 3 - # SKIP failure is not an option 1/2\n")
	assert.Contains(t, out, "    ok 1 - errors are raised\n")
	assert.Contains(t, out, "ok 9 - we're done\n")
	assert.NotContains(t, out, "not ok")
}

func TestTintWriter_UncoloredPassthrough(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	var buf bytes.Buffer
	tw := newTintWriter(&buf)
	in := "ok 1 - fine\nnot ok 2 - broken\n# a comment\nBail out! done\n1..2\n"
	_, err := tw.Write([]byte(in))
	assert.NoError(t, err)
	assert.Equal(t, in, buf.String())
}

func TestTintWriter_BuffersPartialLines(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	var buf bytes.Buffer
	tw := newTintWriter(&buf)
	tw.Write([]byte("ok 1 - sp"))
	assert.Empty(t, buf.String())
	tw.Write([]byte("lit write\n"))
	assert.Equal(t, "ok 1 - split write\n", buf.String())
}
