// Package renderer turns ledger data into markdown documents.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/bank"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.md
var templates embed.FS

// accountRow is an account as displayed in a table.
type accountRow struct {
	Number  int
	Holder  string
	Balance string
}

// accountsView is the data of the accounts template.
type accountsView struct {
	Title string
	Rows  []accountRow
	Total string
}

func newRow(a bank.Account, currency string) accountRow {
	return accountRow{
		Number:  a.Number,
		Holder:  a.Holder,
		Balance: bank.M(a.Balance, currency).String(),
	}
}

// Accounts renders a table of accounts, in the given order, followed by their
// total balance.
func Accounts(title string, accounts []bank.Account, currency string) string {
	v := accountsView{Title: title}
	total := decimal.Zero
	for _, a := range accounts {
		v.Rows = append(v.Rows, newRow(a, currency))
		total = total.Add(a.Balance)
	}
	v.Total = bank.M(total, currency).String()
	partials := map[string]string{
		"accounts_table": "accounts_table.md",
	}
	return renderTemplate("accounts", "accounts.md", partials, v)
}

// Account renders a single account.
func Account(a bank.Account, currency string) string {
	return renderTemplate("account", "account.md", nil, newRow(a, currency))
}

// cell escapes s for a markdown table cell: pipes would split the cell and
// line breaks would end the row.
func cell(s string) string {
	r := strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ", "\r", " ")
	return r.Replace(s)
}

// inline escapes s for inline markdown text.
func inline(s string) string {
	r := strings.NewReplacer(`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "\r\n", " ", "\n", " ", "\r", " ")
	return r.Replace(s)
}

var funcs = template.FuncMap{
	"cell":   cell,
	"inline": inline,
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, "templates/"+file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
