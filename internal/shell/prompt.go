package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter is the narrow console-input interface the shell depends on, so
// flows can be driven by a scripted implementation in tests.
type Prompter interface {
	// Line prints the label and reads one line, trimmed of surrounding
	// whitespace.
	Line(label string) (string, error)

	// Secret prints the label and reads one line with terminal echo
	// suppressed. Falls back to a plain read when stdin is not a
	// terminal (pipes, tests).
	Secret(label string) (string, error)

	// Block prints the label and reads lines until EOF (Ctrl+D),
	// joining them with commas.
	Block(label string) (string, error)
}

type termPrompter struct {
	in  *bufio.Reader
	out io.Writer

	// stdinFd is the file descriptor used for echo-suppressed reads;
	// negative when the input is not a real terminal.
	stdinFd int
}

// NewTermPrompter builds the interactive prompter. Hidden input is only
// attempted when in is an *os.File attached to a terminal.
func NewTermPrompter(in io.Reader, out io.Writer) Prompter {
	fd := -1
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd = int(f.Fd())
	}

	return &termPrompter{
		in:      bufio.NewReader(in),
		out:     out,
		stdinFd: fd,
	}
}

func (p *termPrompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)

	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *termPrompter) Secret(label string) (string, error) {
	if p.stdinFd < 0 {
		return p.Line(label)
	}

	fmt.Fprint(p.out, label)
	secret, err := term.ReadPassword(p.stdinFd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("reading secret: %w", err)
	}
	return strings.TrimSpace(string(secret)), nil
}

func (p *termPrompter) Block(label string) (string, error) {
	fmt.Fprintln(p.out, label)

	var lines []string
	for {
		line, err := p.in.ReadString('\n')
		if line != "" {
			lines = append(lines, strings.TrimRight(line, "\r\n"))
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return "", err
		}
	}
	return strings.Join(lines, ","), nil
}
