package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter asks the user for one line of input.
type Prompter interface {
	Prompt(label string) (string, error)
}

// LinePrompter writes a label and reads a line.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Prompt returns the trimmed line. io.EOF is only returned when nothing was read.
func (p *LinePrompter) Prompt(label string) (string, error) {
	if _, err := fmt.Fprint(p.out, label); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
