package main

import (
	"fmt"
	"strings"
)

// AmountView is one ingredient quantity in JSON output.
type AmountView struct {
	Ingredient string `json:"ingredient"`
	Quantity   int    `json:"quantity"`
}

// DishView is the JSON form of a DishResult.
type DishView struct {
	Name               string       `json:"name"`
	Count              int          `json:"count"`
	LimitingIngredient string       `json:"limitingIngredient,omitempty"`
	RequiredForNext    []AmountView `json:"requiredForNext"`
	Inconsistent       bool         `json:"inconsistent,omitempty"`
}

// IngredientView reports usage against stock for one ingredient.
type IngredientView struct {
	Ingredient string `json:"ingredient"`
	Used       int    `json:"used"`
	Held       int    `json:"held"`
	Remaining  int    `json:"remaining"`
}

// ResultView is the JSON-serializable form of a Result. Slices keep table and
// ingredient order, which a JSON object would not.
type ResultView struct {
	Dishes          []DishView       `json:"dishes"`
	IngredientUsage []IngredientView `json:"ingredientUsage"`
	TotalDishes     int              `json:"totalDishes"`
}

// RecipeView is the JSON form of a Recipe.
type RecipeView struct {
	Name     string       `json:"name"`
	Requires []AmountView `json:"requires"`
}

func amountViews(reqs []Requirement) []AmountView {
	out := make([]AmountView, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, AmountView{Ingredient: r.Ingredient.String(), Quantity: r.Quantity})
	}
	return out
}

// NewResultView converts a Result for JSON output. Usage is listed for every
// known ingredient, used or not.
func NewResultView(res *Result) ResultView {
	v := ResultView{
		Dishes:          make([]DishView, len(res.Dishes)),
		IngredientUsage: make([]IngredientView, 0, NumIngredients),
		TotalDishes:     res.TotalDishes,
	}
	for i := range res.Dishes {
		d := &res.Dishes[i]
		v.Dishes[i] = DishView{
			Name:               d.Name,
			Count:              d.Count,
			LimitingIngredient: d.Limiting.String(),
			RequiredForNext:    amountViews(d.RequiredForNext),
			Inconsistent:       d.Inconsistent,
		}
	}
	for ing := Ingredient(0); ing < NumIngredients; ing++ {
		v.IngredientUsage = append(v.IngredientUsage, IngredientView{
			Ingredient: ing.String(),
			Used:       res.Usage[ing],
			Held:       res.Initial[ing],
			Remaining:  res.Remaining[ing],
		})
	}
	return v
}

// NewRecipeViews converts a table for JSON output.
func NewRecipeViews(table RecipeTable) []RecipeView {
	out := make([]RecipeView, len(table))
	for i := range table {
		out[i] = RecipeView{Name: table[i].Name, Requires: amountViews(table[i].Requires)}
	}
	return out
}

// FormatResult renders the production panel and the usage panel as text.
func FormatResult(res *Result) string {
	var b strings.Builder

	b.WriteString("最大生産可能数\n")
	for i := range res.Dishes {
		d := &res.Dishes[i]
		if d.Inconsistent {
			fmt.Fprintf(&b, "%s: %d個 (材料未設定)\n", d.Name, d.Count)
			continue
		}
		fmt.Fprintf(&b, "%s: %d個\n", d.Name, d.Count)
		if len(d.RequiredForNext) > 0 {
			parts := make([]string, 0, len(d.RequiredForNext))
			for _, r := range d.RequiredForNext {
				parts = append(parts, fmt.Sprintf("%s %d個", r.Ingredient, r.Quantity))
			}
			fmt.Fprintf(&b, "  あと1品作るために必要な材料: %s\n", strings.Join(parts, " "))
		}
	}
	fmt.Fprintf(&b, "合計料理数: %d個\n", res.TotalDishes)

	b.WriteString("===================\n")
	b.WriteString("材料の使用量と残数\n")
	for ing := Ingredient(0); ing < NumIngredients; ing++ {
		fmt.Fprintf(&b, "%s: 使用: %d個 / 所持: %d個 (残: %d個)\n",
			ing, res.Usage[ing], res.Initial[ing], res.Remaining[ing])
	}

	return b.String()
}
