package terminal

import (
	"bufio"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"golang.org/x/term"

	"github.com/multa-cli/multa/card"
)

const (
	enterAltScreen = "\033[?1049h"
	leaveAltScreen = "\033[?1049l"
	clearAll       = "\033[2J\033[H"
	clearToEnd     = "\033[K"
	moveLeft       = "\033[D"
	green          = "\033[32m"
	red            = "\033[31m"
	reset          = "\033[0m"
)

// Terminal runs the interactive part of a session on the controlling
// terminal: raw mode, alternate screen, direct ANSI output.
type Terminal struct {
	in      *bufio.Reader
	out     *os.File
	restore func() error
}

// Open puts the terminal into raw mode and switches to the alternate screen.
func Open() (*Terminal, error) {
	fd := int(os.Stdin.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, eris.Wrap(err, "failed to enable raw mode")
	}

	t := &Terminal{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
		restore: func() error {
			return term.Restore(fd, state)
		},
	}
	fmt.Fprint(t.out, enterAltScreen, clearAll)
	return t, nil
}

// Close leaves the alternate screen and restores the terminal state.
func (t *Terminal) Close() error {
	fmt.Fprint(t.out, leaveAltScreen)
	return t.restore()
}

// Clear wipes the screen and homes the cursor.
func (t *Terminal) Clear() {
	fmt.Fprint(t.out, clearAll)
}

// Ask prints the prompt for a fact and leaves the cursor after the equals
// sign.
func (t *Terminal) Ask(f card.Factors) {
	fmt.Fprintf(t.out, "%s = ", f)
}

// PrintOK reports a correct answer.
func (t *Terminal) PrintOK(f card.Factors, answer string) {
	fmt.Fprintf(t.out, "%s = %s%s OK%s\r\n", f, answer, green, reset)
}

// PrintKO reports a wrong answer together with the expected product.
func (t *Terminal) PrintKO(f card.Factors, answer string, expected uint8) {
	fmt.Fprintf(t.out, "%s != %s%s KO!!!%s => %d\r\n", f, answer, red, reset, expected)
}

// ReadAnswer reads one answer in raw mode. Digits echo and accumulate,
// Backspace erases, Enter or Space submits, Ctrl-C quits. Everything else,
// escape sequences included, is ignored.
func (t *Terminal) ReadAnswer() (string, bool, error) {
	var line []byte
	for {
		b, err := t.in.ReadByte()
		if err != nil {
			return "", false, eris.Wrap(err, "failed to read input")
		}

		switch {
		case b == 0x03: // Ctrl-C
			return "", true, nil

		case b == '\r' || b == '\n' || b == ' ':
			return string(line), false, nil

		case b == 0x7f || b == 0x08: // Backspace
			if len(line) > 0 {
				line = line[:len(line)-1]
				fmt.Fprint(t.out, moveLeft, clearToEnd)
			}

		case b == 0x1b:
			t.discardEscape()

		case b >= '0' && b <= '9':
			line = append(line, b)
			fmt.Fprintf(t.out, "%c", b)
		}
	}
}

// discardEscape swallows the remainder of an escape sequence. CSI sequences
// end with a byte in 0x40..0x7e; anything else is treated as a two-byte
// sequence.
func (t *Terminal) discardEscape() {
	b, err := t.in.ReadByte()
	if err != nil || b != '[' {
		return
	}
	for {
		b, err := t.in.ReadByte()
		if err != nil || (b >= 0x40 && b <= 0x7e) {
			return
		}
	}
}
