package cmd

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestPrompter(t *testing.T) {
	var out strings.Builder
	p := newPrompter(strings.NewReader("  Jane Doe \r\n\nBob\n 42 \n0.1\n"), &out)

	if got, err := p.line("Name: "); err != nil || got != "  Jane Doe " {
		t.Errorf("line() = %q, %v, want %q", got, err, "  Jane Doe ")
	}
	if got, err := p.nonEmpty("Name: "); err != nil || got != "Bob" {
		t.Errorf("nonEmpty() = %q, %v, want Bob", got, err)
	}
	if got, err := p.integer("Number: ", 1, 100); err != nil || got != 42 {
		t.Errorf("integer() = %d, %v, want 42", got, err)
	}
	got, err := p.amount("Amount: ", decimal.Zero)
	if err != nil || !got.Equal(decimal.RequireFromString("0.1")) {
		t.Errorf("amount() = %s, %v, want 0.1", got, err)
	}
	if _, err := p.line("More: "); !errors.Is(err, io.EOF) {
		t.Errorf("line() at end of input: got %v, want io.EOF", err)
	}
	if !strings.Contains(out.String(), "Input cannot be empty. Please try again.") {
		t.Errorf("empty answer was not reported:\n%s", out.String())
	}
}

func TestPrompter_Bounds(t *testing.T) {
	var out strings.Builder
	p := newPrompter(strings.NewReader("0\n11\n2.5\n10\n0.001\n0.01\n"), &out)

	if got, err := p.integer("Choice: ", 1, 10); err != nil || got != 10 {
		t.Errorf("integer() = %d, %v, want 10", got, err)
	}
	got, err := p.amount("Amount: ", minAmount)
	if err != nil || !got.Equal(minAmount) {
		t.Errorf("amount() = %s, %v, want %s", got, err, minAmount)
	}
	if n := strings.Count(out.String(), "Invalid input."); n != 4 {
		t.Errorf("got %d invalid input messages, want 4:\n%s", n, out.String())
	}
}

func TestPrompter_EOFWhileRetrying(t *testing.T) {
	p := newPrompter(strings.NewReader("x\n"), io.Discard)
	if _, err := p.integer("Choice: ", 0, 10); !errors.Is(err, io.EOF) {
		t.Errorf("integer() = %v, want io.EOF", err)
	}
}
