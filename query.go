package bank

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/gval"
	"github.com/PaesslerAG/jsonpath"
)

// queryLanguage is JSONPath with the gval operators, filters need them for
// comparisons.
var queryLanguage = gval.NewLanguage(gval.Full(), jsonpath.Language())

// Query evaluates a JSONPath expression against accounts.
//
// The document is the JSON array of the accounts, in order, each one encoded
// with Account.MarshalJSON, for instance:
//
//	$[*].holder
//	$[?(@.balance >= 1000)].number
//
// Numbers in the document are float64, the result is whatever the expression
// selects.
func Query(expr string, accounts []Account) (any, error) {
	if accounts == nil {
		accounts = []Account{}
	}
	raw, err := json.Marshal(accounts)
	if err != nil {
		return nil, fmt.Errorf("cannot encode accounts: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("cannot decode accounts: %w", err)
	}

	v, err := queryLanguage.Evaluate(expr, doc)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", expr, err)
	}
	return v, nil
}
