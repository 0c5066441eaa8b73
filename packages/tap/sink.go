package tap

import (
	"bytes"
	"io"
)

// lineWriter prefixes every line passed through it, buffering partial
// writes until their newline arrives. Sub-sessions use it to nest
// their protocol lines beneath the parent stream.
type lineWriter struct {
	w      io.Writer
	prefix string
	buf    []byte
}

func (lw *lineWriter) Write(p []byte) (int, error) {
	lw.buf = append(lw.buf, p...)
	for {
		i := bytes.IndexByte(lw.buf, '\n')
		if i < 0 {
			return len(p), nil
		}
		if _, err := io.WriteString(lw.w, lw.prefix); err != nil {
			return len(p), err
		}
		if _, err := lw.w.Write(lw.buf[:i+1]); err != nil {
			return len(p), err
		}
		lw.buf = lw.buf[i+1:]
	}
}
