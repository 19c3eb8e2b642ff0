package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/bank"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

func account(number int, holder, balance string) bank.Account {
	return bank.Account{Number: number, Holder: holder, Balance: decimal.RequireFromString(balance)}
}

// tableCells parses md as GitHub flavored markdown and returns the text of
// every body cell, row by row.
func tableCells(t *testing.T, md string) [][]string {
	t.Helper()
	source := []byte(md)
	root := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(source))

	var rows [][]string
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		row, ok := n.(*east.TableRow)
		if !ok {
			return ast.WalkContinue, nil
		}
		var cells []string
		for c := row.FirstChild(); c != nil; c = c.NextSibling() {
			var b strings.Builder
			for t := c.FirstChild(); t != nil; t = t.NextSibling() {
				if txt, ok := t.(*ast.Text); ok {
					b.Write(txt.Segment.Value(source))
				}
			}
			cells = append(cells, b.String())
		}
		rows = append(rows, cells)
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		t.Fatalf("walking markdown: %v", err)
	}
	return rows
}

func TestAccounts(t *testing.T) {
	md := Accounts("All Accounts", []bank.Account{
		account(3, "Alice", "1234.5"),
		account(1, "Bob", "10"),
	}, "USD")

	if !strings.HasPrefix(md, "## All Accounts\n") {
		t.Errorf("missing title in:\n%s", md)
	}
	if !strings.Contains(md, "**Total:** $1,244.50 in 2 account(s)") {
		t.Errorf("missing total in:\n%s", md)
	}

	got := tableCells(t, md)
	want := [][]string{
		{"3", "Alice", "$1,234.50"},
		{"1", "Bob", "$10.00"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d table rows, want %d:\n%s", len(got), len(want), md)
	}
	for i := range want {
		if strings.Join(got[i], "|") != strings.Join(want[i], "|") {
			t.Errorf("row %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAccounts_Empty(t *testing.T) {
	md := Accounts("Accounts with at least $100.00", nil, "USD")
	if !strings.Contains(md, "_No accounts._") {
		t.Errorf("empty listing does not say so:\n%s", md)
	}
	if rows := tableCells(t, md); len(rows) != 0 {
		t.Errorf("empty listing has %d table rows", len(rows))
	}
}

func TestAccounts_HolderEscaping(t *testing.T) {
	md := Accounts("All Accounts", []bank.Account{
		account(1, "Pipe | Holder\nWith newline", "1"),
		account(2, "Second", "2"),
	}, "USD")

	rows := tableCells(t, md)
	if len(rows) != 2 {
		t.Fatalf("a holder with a pipe or a newline broke the table, got %d rows:\n%s", len(rows), md)
	}
	if len(rows[0]) != 3 {
		t.Errorf("first row has %d cells, want 3: %q", len(rows[0]), rows[0])
	}
}

func TestAccount(t *testing.T) {
	got := Account(account(42, "Ada_Lovelace", "0.5"), "USD")
	want := "**Ada\\_Lovelace** (account 42): $0.50\n"
	if got != want {
		t.Errorf("Account() = %q, want %q", got, want)
	}
}
