// Package prompt implements line-based interactive prompting for spinup.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	spinerrors "github.com/spinup-cli/spinup/internal/errors"
)

// Prompter reads answers line by line from an input stream and writes
// questions to an output stream. Invalid answers are re-asked until a
// valid one is read; the input closing mid-question is an error.
type Prompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// New creates a Prompter reading from r and writing questions to w.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(r),
		writer: w,
	}
}

// Ask prompts for a free-text answer, re-asking until it is non-empty.
// When def is non-empty it is shown in brackets and an empty answer
// accepts it.
func (p *Prompter) Ask(question, def string) (string, error) {
	for {
		if def != "" {
			fmt.Fprintf(p.writer, "%s [%s]: ", question, def)
		} else {
			fmt.Fprintf(p.writer, "%s: ", question)
		}

		answer, err := p.readLine()
		if err != nil {
			return "", err
		}
		if answer == "" {
			answer = def
		}
		if answer != "" {
			return answer, nil
		}
	}
}

// AskChoice prompts until the answer is a member of choices. A non-empty
// def pre-fills the prompt and an empty answer accepts it.
func (p *Prompter) AskChoice(question string, choices []string, def string) (string, error) {
	for {
		answer, err := p.Ask(fmt.Sprintf("%s (%s)", question, strings.Join(choices, " / ")), def)
		if err != nil {
			return "", err
		}

		for _, c := range choices {
			if answer == c {
				return answer, nil
			}
		}
		fmt.Fprintf(p.writer, "Please enter one of: %s\n", strings.Join(choices, ", "))
	}
}

// Confirm asks a yes/no question that defaults to no. Only "y" or "yes"
// (case-insensitive) count as confirmation.
func (p *Prompter) Confirm(question string) (bool, error) {
	fmt.Fprintf(p.writer, "%s (y/N): ", question)

	answer, err := p.readLine()
	if err != nil {
		return false, err
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// readLine reads one trimmed line of input. A closed input stream maps to
// ErrInputClosed so callers can distinguish it from an empty answer.
func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		if err == io.EOF {
			return "", spinerrors.ErrInputClosed
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
