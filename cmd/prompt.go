package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// prompter reads answers from a line oriented input.
//
// Every method prints its prompt and reads one line. Methods that validate
// their input print a message and ask again until the answer is valid. They
// return io.EOF when the input is exhausted.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

// line returns the next line, without its line terminator.
func (p *prompter) line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		fmt.Fprintln(p.out)
		return "", io.EOF
	}
	return strings.TrimSuffix(p.in.Text(), "\r"), nil
}

// nonEmpty returns the next non empty line.
func (p *prompter) nonEmpty(prompt string) (string, error) {
	for {
		s, err := p.line(prompt)
		if err != nil || s != "" {
			return s, err
		}
		fmt.Fprintln(p.out, "Input cannot be empty. Please try again.")
	}
}

// integer returns the next line that is an integer in [min, max].
func (p *prompter) integer(prompt string, min, max int) (int, error) {
	for {
		s, err := p.line(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err == nil && v >= min && v <= max {
			return v, nil
		}
		fmt.Fprintln(p.out, "Invalid input. Please enter a valid number.")
	}
}

// amount returns the next line that is a decimal greater than or equal to min.
func (p *prompter) amount(prompt string, min decimal.Decimal) (decimal.Decimal, error) {
	for {
		s, err := p.line(prompt)
		if err != nil {
			return decimal.Zero, err
		}
		v, err := decimal.NewFromString(strings.TrimSpace(s))
		if err == nil && v.GreaterThanOrEqual(min) {
			return v, nil
		}
		fmt.Fprintln(p.out, "Invalid input. Please enter a valid number.")
	}
}
