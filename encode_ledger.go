package bank

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// The ledger text format has one account per line:
//
//	number balance digest "holder"
//
// Fields are separated by whitespace. The holder is enclosed in double quotes,
// with '"' and '\' escaped by a backslash. A quoted holder may contain any
// other byte, spaces and line breaks included, so decoding works on tokens
// rather than on lines.

// maxToken bounds the size of a single token, a holder name in practice.
const maxToken = 1 << 20

// Encode writes accounts to w, one per line, in order.
func Encode(w io.Writer, accounts []Account) error {
	bw := bufio.NewWriter(w)
	for _, a := range accounts {
		if _, err := fmt.Fprintf(bw, "%d %s %s %s\n", a.Number, a.Balance.String(), a.digest, quote(a.Holder)); err != nil {
			return fmt.Errorf("failed to write account %d: %w", a.Number, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write accounts: %w", err)
	}
	return nil
}

// Decode reads accounts from r.
//
// Decoding stops at the first record that cannot be parsed: the accounts read
// so far are returned and the rest of the stream is ignored. A record is
// invalid if a field is missing or malformed, if the balance is negative, if
// the holder is empty or if the account number was already read. Only I/O
// errors from r are reported.
func Decode(r io.Reader) ([]Account, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxToken)
	scanner.Split(scanTokens)

	accounts := make([]Account, 0)
	seen := make(map[int]bool)
	for {
		a, ok := decodeAccount(scanner)
		if !ok || seen[a.Number] {
			break
		}
		seen[a.Number] = true
		accounts = append(accounts, a)
	}

	if err := scanner.Err(); err != nil && !errors.Is(err, bufio.ErrTooLong) {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return accounts, nil
}

// decodeAccount reads the four tokens of the next record.
func decodeAccount(scanner *bufio.Scanner) (a Account, ok bool) {
	var fields [4]string
	for i := range fields {
		if !scanner.Scan() {
			return a, false
		}
		fields[i] = scanner.Text()
	}

	number, err := strconv.Atoi(fields[0])
	if err != nil || number <= 0 {
		return a, false
	}
	// exponent notation is accepted, older ledgers hold large balances that way.
	balance, err := decimal.NewFromString(fields[1])
	if err != nil || balance.IsNegative() {
		return a, false
	}
	holder, err := unquote(fields[3])
	if err != nil || holder == "" {
		return a, false
	}

	return Account{
		Number:  number,
		Holder:  holder,
		Balance: balance,
		digest:  digest(fields[2]),
	}, true
}

// quote encloses s in double quotes, escaping '"' and '\'.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if c := s[i]; c == '"' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('"')
	return b.String()
}

// unquote reverses quote. A token that does not start with a quote is
// returned as is.
func unquote(tok string) (string, error) {
	if !strings.HasPrefix(tok, `"`) {
		return tok, nil
	}
	var b strings.Builder
	for i := 1; i < len(tok); i++ {
		switch c := tok[i]; c {
		case '\\':
			i++
			if i == len(tok) {
				return "", fmt.Errorf("dangling escape in %q", tok)
			}
			b.WriteByte(tok[i])
		case '"':
			if i != len(tok)-1 {
				return "", fmt.Errorf("unexpected quote in %q", tok)
			}
			return b.String(), nil
		default:
			b.WriteByte(c)
		}
	}
	return "", fmt.Errorf("missing closing quote in %q", tok)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// scanTokens is a bufio.SplitFunc returning whitespace separated words and
// quoted strings. A quoted string is returned with its quotes and escapes, it
// ends at the first unescaped quote. At EOF, an unterminated quoted string is
// returned as is, and fails to unquote.
func scanTokens(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && isSpace(data[start]) {
		start++
	}
	if start == len(data) {
		if atEOF {
			return len(data), nil, nil
		}
		return start, nil, nil
	}

	if data[start] == '"' {
		for i := start + 1; i < len(data); i++ {
			switch data[i] {
			case '\\':
				i++
			case '"':
				return i + 1, data[start : i+1], nil
			}
		}
	} else if i := bytes.IndexFunc(data[start:], func(r rune) bool { return r < 0x80 && isSpace(byte(r)) }); i >= 0 {
		return start + i, data[start : start+i], nil
	}

	if atEOF {
		return len(data), data[start:], nil
	}
	// Request more data.
	return start, nil, nil
}
