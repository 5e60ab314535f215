package input

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// KeyReader reads single key presses from a terminal in raw mode
type KeyReader struct {
	fd       int
	oldState *term.State
	in       *bufio.Reader
}

// OpenKeyReader puts stdin into raw mode. Call Close to restore the terminal.
func OpenKeyReader() (*KeyReader, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	return &KeyReader{fd: fd, oldState: oldState, in: bufio.NewReader(os.Stdin)}, nil
}

// Close restores the terminal state
func (k *KeyReader) Close() error {
	if k.oldState == nil {
		return nil
	}
	err := term.Restore(k.fd, k.oldState)
	k.oldState = nil
	return err
}

// ReadCode blocks until a key is pressed and returns its code
func (k *KeyReader) ReadCode() (string, error) {
	return readCode(k.in)
}

// Pump reads keys until an error and sends their codes to out.
// It closes out when it returns.
func (k *KeyReader) Pump(out chan<- string) {
	defer close(out)
	for {
		code, err := k.ReadCode()
		if err != nil {
			return
		}
		if code != "" {
			out <- code
		}
	}
}

// readCode decodes one key press, including arrow key escape sequences
func readCode(r io.ByteReader) (string, error) {
	b, err := r.ReadByte()
	if err != nil {
		return "", err
	}

	switch {
	case b == 0x1b:
		return readEscape(r)
	case b == 3:
		return "ctrl_c", nil
	case b == '\r' || b == '\n':
		return "enter", nil
	case b == ' ':
		return "space", nil
	case b >= 33 && b < 127:
		return string(rune(b)), nil
	default:
		return "", nil
	}
}

// readEscape reads the rest of an escape sequence after ESC.
// Handles both CSI sequences (ESC [) and SS3 sequences (ESC O).
func readEscape(r io.ByteReader) (string, error) {
	if br, ok := r.(*bufio.Reader); ok && br.Buffered() == 0 {
		// A lone ESC press
		return "escape", nil
	}
	b2, err := r.ReadByte()
	if err != nil {
		return "", err
	}
	if b2 != '[' && b2 != 'O' {
		return "escape", nil
	}
	b3, err := r.ReadByte()
	if err != nil {
		return "", err
	}
	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}
	// Unknown escape sequence - discard it
	return "", nil
}
