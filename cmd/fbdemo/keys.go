package main

import (
	"errors"
	"os"

	"github.com/cwbudde/algo-filterbank/dsp/filterbank/control"
	"golang.org/x/term"
)

const keyCtrlC = 0x03

var errNotTerminal = errors.New("stdin is not a terminal")

// keyReader delivers raw key presses from the terminal.
type keyReader struct {
	fd   int
	old  *term.State
	keys chan byte
}

// startKeys switches stdin to raw mode and starts reading keys. Close
// restores the terminal.
func startKeys() (*keyReader, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, errNotTerminal
	}
	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}

	k := &keyReader{fd: fd, old: old, keys: make(chan byte, 16)}
	go func() {
		defer close(k.keys)
		buf := make([]byte, 1)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				return
			}
			if n == 1 {
				k.keys <- buf[0]
			}
		}
	}()
	return k, nil
}

// Keys returns the key channel. It is closed when stdin ends.
func (k *keyReader) Keys() <-chan byte { return k.keys }

// Close restores the terminal state.
func (k *keyReader) Close() error {
	return term.Restore(k.fd, k.old)
}

// tripleDecoder assembles command triples from a key stream, skipping
// whitespace between them.
type tripleDecoder struct {
	buf [3]byte
	n   int
}

// Feed adds one key and returns a command once three symbols are in.
func (d *tripleDecoder) Feed(b byte) (control.Command, bool) {
	switch b {
	case ' ', '\t', '\r', '\n', ',':
		return control.Command{}, false
	}
	d.buf[d.n] = b
	d.n++
	if d.n < len(d.buf) {
		return control.Command{}, false
	}
	d.n = 0
	return control.ParseCommand(d.buf[:])
}

// Pending reports whether a partial triple is buffered.
func (d *tripleDecoder) Pending() bool { return d.n > 0 }

// Reset drops a partial triple.
func (d *tripleDecoder) Reset() { d.n = 0 }

// decodeAll decodes every complete triple in s.
func decodeAll(s string) []control.Command {
	var d tripleDecoder
	var out []control.Command
	for i := 0; i < len(s); i++ {
		if cmd, ok := d.Feed(s[i]); ok {
			out = append(out, cmd)
		}
	}
	return out
}
