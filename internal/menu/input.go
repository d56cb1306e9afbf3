package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Re-prompt messages printed when input has the wrong shape.
const (
	EnterNumberMessage  = "\tEnter a number please."
	EnterBooleanMessage = "\tEnter yes or no please."
	EnterTextMessage    = "\tThis field cannot be blank."
)

// Prompter reads typed values from line-oriented input. Every Read method
// prints its prompt first and returns io.EOF once input is exhausted.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter reading from in and prompting on out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// readLine returns the next line without its terminator. A final line with
// no newline is returned as is; io.EOF is returned only when nothing is left.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *Prompter) prompt(prompt string) {
	if prompt != "" {
		_, _ = fmt.Fprint(p.out, prompt)
	}
}

// ReadNextLine reads one line of free text, which may be empty.
func (p *Prompter) ReadNextLine(prompt string) (string, error) {
	p.prompt(prompt)
	return p.readLine()
}

// ReadNonBlankLine reads one line, re-prompting until it holds more than
// whitespace. Surrounding whitespace is trimmed.
func (p *Prompter) ReadNonBlankLine(prompt string) (string, error) {
	for {
		p.prompt(prompt)
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		if s := strings.TrimSpace(line); s != "" {
			return s, nil
		}
		_, _ = fmt.Fprintln(p.out, EnterTextMessage)
	}
}

// ReadNextInt reads the first token of a line as an integer, re-prompting
// until one parses.
func (p *Prompter) ReadNextInt(prompt string) (int, error) {
	for {
		p.prompt(prompt)
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		if fields := strings.Fields(line); len(fields) > 0 {
			if n, err := strconv.Atoi(fields[0]); err == nil {
				return n, nil
			}
		}
		_, _ = fmt.Fprintln(p.out, EnterNumberMessage)
	}
}

// ReadNextChar returns the first rune of the first token on the next
// non-blank line.
func (p *Prompter) ReadNextChar(prompt string) (rune, error) {
	for {
		p.prompt(prompt)
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		if fields := strings.Fields(line); len(fields) > 0 {
			r, _ := utf8.DecodeRuneInString(fields[0])
			return r, nil
		}
	}
}

// ReadNextBoolean reads true/false, yes/no, or y/n in any case,
// re-prompting on anything else.
func (p *Prompter) ReadNextBoolean(prompt string) (bool, error) {
	for {
		p.prompt(prompt)
		line, err := p.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "true", "yes", "y":
			return true, nil
		case "false", "no", "n":
			return false, nil
		}
		_, _ = fmt.Fprintln(p.out, EnterBooleanMessage)
	}
}
