package cmd

import (
	"bytes"
	"io"
	"strings"

	"github.com/fatih/color"
)

// tintWriter colorizes complete protocol lines for human preview.
// The tinted stream is for eyeballs, not for a TAP parser.
type tintWriter struct {
	w   io.Writer
	buf []byte
}

func newTintWriter(w io.Writer) *tintWriter {
	return &tintWriter{w: w}
}

func (tw *tintWriter) Write(p []byte) (int, error) {
	tw.buf = append(tw.buf, p...)
	for {
		i := bytes.IndexByte(tw.buf, '\n')
		if i < 0 {
			return len(p), nil
		}
		if err := tw.writeLine(string(tw.buf[:i])); err != nil {
			return len(p), err
		}
		tw.buf = tw.buf[i+1:]
	}
}

func (tw *tintWriter) writeLine(line string) error {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	trimmed := strings.TrimLeft(line, " ")
	var tinted string
	switch {
	case strings.HasPrefix(trimmed, "not ok "):
		tinted = red(line)
	case strings.HasPrefix(trimmed, "ok "):
		tinted = green(line)
	case strings.HasPrefix(trimmed, "#"):
		tinted = cyan(line)
	case strings.HasPrefix(trimmed, "Bail out!"):
		tinted = bold(red(line))
	default:
		tinted = line
	}
	_, err := io.WriteString(tw.w, tinted+"\n")
	return err
}
