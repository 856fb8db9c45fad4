package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kzmdstu/tccalc/timecode"
	"github.com/pkg/errors"
)

// Prompter asks questions on out and reads answers line by line from in.
// Every question is asked again until a valid answer is given.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter creates a new Prompter.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// ask prints the question and returns the trimmed answer.
// def is shown in brackets and returned for an empty answer.
func (p *Prompter) ask(question, def string) (string, error) {
	if def != "" {
		question = strings.TrimSuffix(question, ": ") + " [" + def + "]: "
	}
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", errors.Wrap(err, "reading answer")
		}
		return "", errors.Wrap(io.ErrUnexpectedEOF, "reading answer")
	}
	ans := strings.TrimSpace(p.in.Text())
	if ans == "" {
		ans = def
	}
	return ans, nil
}

func (p *Prompter) invalid(err error, hint string) {
	fmt.Fprintf(p.out, "Invalid input: %v. %v\n", err, hint)
}

// String asks for a non empty answer.
func (p *Prompter) String(question, def string) (string, error) {
	for {
		ans, err := p.ask(question, def)
		if err != nil {
			return "", err
		}
		if ans == "" {
			p.invalid(errors.New("This field cannot be empty"), "Please try again.")
			continue
		}
		return ans, nil
	}
}

// Choice asks for one of the given answers, case insensitive.
func (p *Prompter) Choice(question, def string, choices ...string) (string, error) {
	for {
		ans, err := p.String(question, def)
		if err != nil {
			return "", err
		}
		ans = strings.ToLower(ans)
		for _, c := range choices {
			if ans == c {
				return ans, nil
			}
		}
		p.invalid(fmt.Errorf("Please enter %v", quoteChoices(choices)), "Please try again.")
	}
}

// Positive asks for a positive integer.
// def of 0 means no default.
func (p *Prompter) Positive(question string, def int, hint string) (int, error) {
	d := ""
	if def > 0 {
		d = strconv.Itoa(def)
	}
	for {
		ans, err := p.ask(question, d)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(ans)
		if err != nil {
			p.invalid(fmt.Errorf("not an integer: %q", ans), hint)
			continue
		}
		if n <= 0 {
			p.invalid(errors.New("must be a positive integer"), hint)
			continue
		}
		return n, nil
	}
}

// FrameRate asks for a frame rate.
func (p *Prompter) FrameRate(question string, def int) (int, error) {
	return p.Positive(question, def, "Please enter a positive integer for the frame rate.")
}

// DropFrame asks a yes or no question.
func (p *Prompter) DropFrame(question string, def *bool) (bool, error) {
	d := ""
	if def != nil {
		d = "no"
		if *def {
			d = "yes"
		}
	}
	ans, err := p.Choice(question, d, "yes", "no")
	if err != nil {
		return false, err
	}
	return ans == "yes", nil
}

// Timecode asks for a HH:MM:SS:FF or MM:SS:FF timecode.
// Only the shape is checked, values are checked against the frame rate later.
func (p *Prompter) Timecode(question, def string) (string, error) {
	for {
		ans, err := p.String(question, def)
		if err != nil {
			return "", err
		}
		if err := timecode.Validate(ans); err != nil {
			p.invalid(err, "Please enter the timecode in HH:MM:SS:FF or MM:SS:FF format.")
			continue
		}
		return ans, nil
	}
}

func quoteChoices(choices []string) string {
	q := make([]string, len(choices))
	for i, c := range choices {
		q[i] = "'" + c + "'"
	}
	return strings.Join(q, " or ")
}
