package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// ErrInterrupted is returned by a LineReader when the user discards the
// line being typed.
var ErrInterrupted = errors.New("line interrupted")

// LineReader yields one input line per call and io.EOF at end of input.
type LineReader interface {
	ReadLine() (string, error)
	Close() error
}

type plainReader struct {
	reader *bufio.Reader
	out    io.Writer
	prompt string
}

// NewPlainReader reads lines of any length from in, printing prompt to
// out before each line.
func NewPlainReader(in io.Reader, out io.Writer, prompt string) LineReader {
	return &plainReader{
		reader: bufio.NewReader(in),
		out:    out,
		prompt: prompt,
	}
}

func (r *plainReader) ReadLine() (string, error) {
	_, _ = fmt.Fprint(r.out, r.prompt)
	line, err := r.reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (r *plainReader) Close() error {
	return nil
}

type readlineReader struct {
	instance *readline.Instance
}

func (r *readlineReader) ReadLine() (string, error) {
	line, err := r.instance.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", ErrInterrupted
	}
	return line, err
}

func (r *readlineReader) Close() error {
	return r.instance.Close()
}

// NewTerminalReader uses line editing with history and completion when in is
// a terminal and falls back to plain line reading otherwise.
func NewTerminalReader(in *os.File, out io.Writer, prompt string, completer readline.AutoCompleter) (LineReader, error) {
	if !term.IsTerminal(int(in.Fd())) {
		return NewPlainReader(in, out, prompt), nil
	}

	instance, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdin:           in,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize line editor: %w", err)
	}
	return &readlineReader{instance: instance}, nil
}
