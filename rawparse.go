package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// maxQuantity caps parsed quantities so per-recipe products cannot overflow.
const maxQuantity = 1_000_000_000

// parseQuantity mirrors how the page read its number fields: an optional sign
// and the leading run of digits are used, anything else yields 0. Negative
// values are clamped to 0.
func parseQuantity(s string) int {
	s = strings.TrimSpace(s)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 || neg {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n > maxQuantity {
		return maxQuantity
	}
	return n
}

// quantityFromJSON coerces any JSON value to a non-negative quantity.
// Numbers are truncated, numeric strings go through parseQuantity, and
// everything else (null, bools, objects, arrays) is 0.
func quantityFromJSON(v gjson.Result) int {
	switch v.Type {
	case gjson.Number:
		if v.Num <= 0 || math.IsNaN(v.Num) {
			return 0
		}
		if v.Num > maxQuantity {
			return maxQuantity
		}
		return int(v.Num)
	case gjson.String:
		return parseQuantity(v.Str)
	}
	return 0
}

// ParseStockJSON reads a JSON object of ingredient name to quantity. Missing
// ingredients are 0, malformed quantities are coerced to 0 and unknown names
// are ignored. Only a syntactically broken document or a non-object is an
// error.
func ParseStockJSON(s string) (Stock, error) {
	var stock Stock
	if !gjson.Valid(s) {
		return stock, fmt.Errorf("%w: malformed JSON", ErrInvalidStock)
	}
	root := gjson.Parse(s)
	if !root.IsObject() {
		return stock, fmt.Errorf("%w: expected a JSON object", ErrInvalidStock)
	}
	readStockObject(root, &stock)
	return stock, nil
}

func readStockObject(obj gjson.Result, stock *Stock) {
	obj.ForEach(func(key, val gjson.Result) bool {
		ing := parseIngredient(key.String())
		if ing == IngNone {
			if Verbose {
				fmt.Fprintf(os.Stderr, "stock: ignoring unknown ingredient %q\n", key.String())
			}
			return true
		}
		stock[ing] = quantityFromJSON(val)
		return true
	})
}

// LoadStock reads a stock JSON file.
func LoadStock(path string) (Stock, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Stock{}, fmt.Errorf("read stock: %w", err)
	}
	stock, err := ParseStockJSON(string(data))
	if err != nil {
		return Stock{}, fmt.Errorf("%s: %w", path, err)
	}
	return stock, nil
}

// ParseStockArgs reads "name=qty" pairs from the command line into an empty
// stock.
func ParseStockArgs(args []string) (Stock, error) {
	var stock Stock
	err := ApplyStockArgs(&stock, args)
	return stock, err
}

// ApplyStockArgs sets the ingredients named by "name=qty" pairs, leaving the
// rest of the stock as is. Quantities are coerced like form input; unknown
// names and missing '=' are rejected since a typo would otherwise silently
// zero an ingredient.
func ApplyStockArgs(stock *Stock, args []string) error {
	for _, a := range args {
		name, qty, ok := strings.Cut(a, "=")
		if !ok {
			return fmt.Errorf("%w: %q is not name=qty", ErrInvalidStock, a)
		}
		ing := parseIngredient(strings.TrimSpace(name))
		if ing == IngNone {
			return fmt.Errorf("%w: %q", ErrUnknownIngredient, name)
		}
		stock[ing] = parseQuantity(qty)
	}
	return nil
}

// ParseRecipeTableJSON reads a table of the form
//
//	{"dish": {"ingredient": qty, ...}, ...}
//
// Recipe and requirement order follow the document. The result is validated.
func ParseRecipeTableJSON(s string) (RecipeTable, error) {
	if !gjson.Valid(s) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidTable)
	}
	root := gjson.Parse(s)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrInvalidTable)
	}

	var table RecipeTable
	var perr error
	root.ForEach(func(key, val gjson.Result) bool {
		r := Recipe{Name: key.String()}
		if !val.IsObject() {
			perr = wrapTableErr(ErrInvalidTable, "%s: requirements must be an object", r.Name)
			return false
		}
		val.ForEach(func(k, v gjson.Result) bool {
			ing := parseIngredient(k.String())
			if ing == IngNone {
				perr = wrapTableErr(ErrUnknownIngredient, "%s: %q", r.Name, k.String())
				return false
			}
			if v.Type != gjson.Number || v.Num != math.Trunc(v.Num) {
				perr = wrapTableErr(ErrInvalidTable, "%s: %s quantity must be an integer", r.Name, ing)
				return false
			}
			r.Requires = append(r.Requires, Requirement{Ingredient: ing, Quantity: int(v.Int())})
			return true
		})
		if perr != nil {
			return false
		}
		table = append(table, r)
		return true
	})
	if perr != nil {
		return nil, perr
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

// LoadRecipeTable reads and validates a recipe table file.
func LoadRecipeTable(path string) (RecipeTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recipes: %w", err)
	}
	table, err := ParseRecipeTableJSON(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}
