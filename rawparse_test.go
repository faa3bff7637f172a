package main

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"0", 0},
		{"7", 7},
		{"  12 ", 12},
		{"+5", 5},
		{"12abc", 12},
		{"3.9", 3},
		{"abc", 0},
		{"-3", 0},
		{"-", 0},
		{"99999999999999999999999", maxQuantity},
	}
	for _, tt := range tests {
		if got := parseQuantity(tt.in); got != tt.want {
			t.Errorf("parseQuantity(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseStockJSON(t *testing.T) {
	stock, err := ParseStockJSON(`{
		"ターキー": 2,
		"バター": "1",
		"秘伝調味料": 1.8,
		"ミルク": "lots",
		"卵": -4,
		"水": null,
		"ジャガイモ": true,
		"potato": 6,
		"ケーキ": 3
	}`)
	if err != nil {
		t.Fatalf("ParseStockJSON: %v", err)
	}

	want := stockOf(map[Ingredient]int{
		IngTurkey:          2,
		IngButter:          1,
		IngSecretSeasoning: 1,
		IngPotato:          6,
	})
	if stock != want {
		t.Errorf("stock = %v, want %v", stock, want)
	}
}

func TestParseStockJSONErrors(t *testing.T) {
	for _, in := range []string{`{"ターキー": `, `[1, 2]`, `"x"`} {
		if _, err := ParseStockJSON(in); !errors.Is(err, ErrInvalidStock) {
			t.Errorf("ParseStockJSON(%q) err = %v, want ErrInvalidStock", in, err)
		}
	}
}

func TestApplyStockArgs(t *testing.T) {
	stock := stockOf(map[Ingredient]int{IngMilk: 9, IngEgg: 9})
	if err := ApplyStockArgs(&stock, []string{"卵=2", "potato=4x", "turkey=-1"}); err != nil {
		t.Fatalf("ApplyStockArgs: %v", err)
	}
	want := stockOf(map[Ingredient]int{IngMilk: 9, IngEgg: 2, IngPotato: 4})
	if stock != want {
		t.Errorf("stock = %v, want %v", stock, want)
	}

	if _, err := ParseStockArgs([]string{"cake=1"}); !errors.Is(err, ErrUnknownIngredient) {
		t.Errorf("unknown name: err = %v, want ErrUnknownIngredient", err)
	}
	if _, err := ParseStockArgs([]string{"milk"}); !errors.Is(err, ErrInvalidStock) {
		t.Errorf("missing '=': err = %v, want ErrInvalidStock", err)
	}
}

func TestParseRecipeTableJSON(t *testing.T) {
	table, err := ParseRecipeTableJSON(`{
		"マッシュポテト": {"ミルク": 1, "卵": 1, "ジャガイモ": 2},
		"とうもろこしパン": {"flour": 1, "egg": 1, "corn": 2}
	}`)
	if err != nil {
		t.Fatalf("ParseRecipeTableJSON: %v", err)
	}

	want := RecipeTable{
		{Name: "マッシュポテト", Requires: []Requirement{{IngMilk, 1}, {IngEgg, 1}, {IngPotato, 2}}},
		{Name: "とうもろこしパン", Requires: []Requirement{{IngFlour, 1}, {IngEgg, 1}, {IngCorn, 2}}},
	}
	if !reflect.DeepEqual(table, want) {
		t.Errorf("table = %+v, want %+v", table, want)
	}

	// Document order decides who gets the shared egg.
	res := Allocate(stockOf(map[Ingredient]int{IngMilk: 1, IngEgg: 1, IngPotato: 2, IngFlour: 1, IngCorn: 2}), table)
	if res.Dishes[0].Count != 1 || res.Dishes[1].Count != 0 {
		t.Errorf("counts %d/%d, want 1/0", res.Dishes[0].Count, res.Dishes[1].Count)
	}
}

func TestParseRecipeTableJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"malformed", `{"a": `, ErrInvalidTable},
		{"not object", `[]`, ErrInvalidTable},
		{"empty table", `{}`, ErrInvalidTable},
		{"empty recipe", `{"air": {}}`, ErrEmptyRecipe},
		{"unknown ingredient", `{"cake": {"sugar": 1}}`, ErrUnknownIngredient},
		{"zero quantity", `{"soup": {"水": 0}}`, ErrInvalidTable},
		{"fractional quantity", `{"soup": {"水": 1.5}}`, ErrInvalidTable},
		{"string quantity", `{"soup": {"水": "1"}}`, ErrInvalidTable},
		{"requirements not object", `{"soup": 3}`, ErrInvalidTable},
		{"duplicate recipe", `{"soup": {"水": 1}, "soup": {"水": 2}}`, ErrDuplicateRecipe},
		{"duplicate ingredient", `{"soup": {"水": 1, "water": 2}}`, ErrInvalidTable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseRecipeTableJSON(tt.in); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	stockPath := filepath.Join(dir, "stock.json")
	recipesPath := filepath.Join(dir, "recipes.json")
	if err := os.WriteFile(stockPath, []byte(`{"秘伝調味料": 1, "バター": 1, "ターキー": 2}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(recipesPath, []byte(`{"ローストターキー": {"秘伝調味料": 1, "バター": 1, "ターキー": 2}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	stock, err := LoadStock(stockPath)
	if err != nil {
		t.Fatalf("LoadStock: %v", err)
	}
	table, err := LoadRecipeTable(recipesPath)
	if err != nil {
		t.Fatalf("LoadRecipeTable: %v", err)
	}
	if res := Allocate(stock, table); res.TotalDishes != 1 {
		t.Errorf("totalDishes %d, want 1", res.TotalDishes)
	}

	if _, err := LoadStock(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("LoadStock(missing) succeeded")
	}
	if _, err := LoadRecipeTable(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("LoadRecipeTable(missing) succeeded")
	}
}

func TestDefaultRecipeTable(t *testing.T) {
	table := DefaultRecipeTable()
	if err := table.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(table) != NumDishes {
		t.Fatalf("got %d recipes, want %d", len(table), NumDishes)
	}

	// Every ingredient is used by at least one dish.
	var used [NumIngredients]bool
	for _, r := range table {
		for _, req := range r.Requires {
			used[req.Ingredient] = true
		}
	}
	for ing, ok := range used {
		if !ok {
			t.Errorf("%s unused by the default table", Ingredient(ing))
		}
	}

	// Copies are independent.
	table[0].Requires[0].Quantity = 99
	if DefaultRecipeTable()[0].Requires[0].Quantity != 1 {
		t.Error("DefaultRecipeTable shares storage between calls")
	}
}

func TestParseIngredientRoundTrip(t *testing.T) {
	for ing := Ingredient(0); ing < NumIngredients; ing++ {
		if got := parseIngredient(ing.String()); got != ing {
			t.Errorf("parseIngredient(%q) = %d, want %d", ing.String(), got, ing)
		}
	}
	if IngNone.String() != "" {
		t.Errorf("IngNone.String() = %q, want empty", IngNone.String())
	}
}
