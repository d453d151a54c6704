// Package term reads interactive input for the review loop: single
// keystrokes, whole lines, and yes/no confirmations.
package term

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// TTY reads from standard input. Single keystrokes are read unbuffered in
// raw mode when stdin is a terminal; otherwise (pipes, tests) the first
// byte of the next line is used so scripted input still works.
type TTY struct {
	file   *os.File
	reader *bufio.Reader
	out    io.Writer
}

func New() *TTY {
	return &TTY{
		file:   os.Stdin,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

// ReadChar reads one lowercased keystroke.
func (t *TTY) ReadChar() (byte, error) {
	if t.file == nil || !term.IsTerminal(int(t.file.Fd())) {
		line, err := t.readLine()
		if err != nil {
			return 0, err
		}
		if line == "" {
			return '\n', nil
		}
		return lower(line[0]), nil
	}

	old, err := term.MakeRaw(int(t.file.Fd()))
	if err != nil {
		return 0, fmt.Errorf("entering raw mode: %w", err)
	}
	defer term.Restore(int(t.file.Fd()), old)

	buf := make([]byte, 1)
	if _, err := t.file.Read(buf); err != nil {
		return 0, fmt.Errorf("reading keystroke: %w", err)
	}

	// raw mode suppresses echo, so show what was typed
	fmt.Fprintf(t.out, "%c\r\n", buf[0])
	return lower(buf[0]), nil
}

// ReadLine reads one line without its trailing newline.
func (t *TTY) ReadLine() (string, error) {
	return t.readLine()
}

// Confirm asks a yes/no question, defaulting to no.
func (t *TTY) Confirm(prompt string) (bool, error) {
	fmt.Fprintf(t.out, "%s [y/N] ", prompt)

	line, err := t.readLine()
	if err != nil {
		return false, err
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

func (t *TTY) readLine() (string, error) {
	line, err := t.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
