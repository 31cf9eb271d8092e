package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/stockbook"
)

// Query evaluates a JSONPath expression against the JSON form of the
// inventory state and returns the result as indented JSON.
//
// For instance "$.products[*].name" lists the product names and
// "$.sales[?(@.product == 'Potato')].quantity" the quantities of Potato sold.
func Query(state stockbook.State, path string) (string, error) {
	b, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("cannot encode state: %w", err)
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return "", fmt.Errorf("cannot decode state: %w", err)
	}
	result, err := jsonpath.Get(path, doc)
	if err != nil {
		return "", fmt.Errorf("cannot evaluate %q: %w", path, err)
	}
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("cannot encode result: %w", err)
	}
	return string(out), nil
}
