package main

import (
	"fmt"
	"math"
	"os"
)

// DishResult is the allocation outcome for one recipe.
type DishResult struct {
	Name  string
	Count int
	// Limiting is the first requirement (in declaration order) that reached
	// the minimum. IngNone when the recipe has no usable requirements.
	Limiting Ingredient
	// RequiredForNext lists only the ingredients whose remainder is short of
	// one more unit, with the missing amount.
	RequiredForNext []Requirement
	// Inconsistent is set for recipes with no positive requirements. Their
	// count would be unbounded, so it is reported as 0 instead.
	Inconsistent bool
}

// Result is the full allocation for one stock snapshot.
type Result struct {
	Dishes      []DishResult // same order as the recipe table
	Initial     Stock
	Usage       Stock
	Remaining   Stock
	TotalDishes int
}

// Allocate runs one greedy pass over the table in declaration order. Each
// recipe takes as many units as the running remainder allows before the next
// recipe is considered; nothing is rebalanced afterwards. Negative stock is
// treated as zero. Neither argument is modified.
func Allocate(stock Stock, table RecipeTable) *Result {
	initial := stock.normalized()
	res := &Result{
		Dishes:  make([]DishResult, len(table)),
		Initial: initial,
	}

	remaining := initial
	for ri := range table {
		r := &table[ri]
		d := &res.Dishes[ri]
		d.Name = r.Name

		count, limiting := recipeQuantity(r, &remaining)
		if limiting == IngNone {
			d.Limiting = IngNone
			d.Inconsistent = true
			if Verbose {
				fmt.Fprintf(os.Stderr, "allocate: %s has no requirements, reporting 0\n", r.Name)
			}
			continue
		}
		d.Count = count
		d.Limiting = limiting

		consumeStock(&remaining, r, count)
		d.RequiredForNext = shortfall(r, &remaining)
		res.TotalDishes += count

		if Verbose {
			fmt.Fprintf(os.Stderr, "allocate: %s x%d (limited by %s)\n", r.Name, count, limiting)
		}
	}

	for ri := range table {
		n := res.Dishes[ri].Count
		for _, req := range table[ri].Requires {
			if req.Quantity > 0 && req.Ingredient.Valid() {
				res.Usage[req.Ingredient] += req.Quantity * n
			}
		}
	}
	for i := range res.Remaining {
		res.Remaining[i] = initial[i] - res.Usage[i]
	}
	return res
}

// recipeQuantity returns the number of units the remainder can cover and the
// ingredient that bounds it. Requirements with a non-positive quantity or an
// unknown ingredient never bound the count. If no requirement bounds it the
// ingredient is IngNone.
func recipeQuantity(r *Recipe, remaining *Stock) (int, Ingredient) {
	best := math.MaxInt
	limiting := IngNone
	for _, req := range r.Requires {
		if req.Quantity <= 0 || !req.Ingredient.Valid() {
			continue
		}
		c := remaining[req.Ingredient] / req.Quantity
		if c < best {
			best = c
			limiting = req.Ingredient
		}
	}
	if limiting == IngNone {
		return 0, IngNone
	}
	return best, limiting
}

// consumeStock subtracts the ingredients used by cooking a recipe n times.
func consumeStock(remaining *Stock, r *Recipe, n int) {
	if n <= 0 {
		return
	}
	for _, req := range r.Requires {
		if req.Quantity <= 0 || !req.Ingredient.Valid() {
			continue
		}
		remaining[req.Ingredient] -= req.Quantity * n
	}
}

func shortfall(r *Recipe, remaining *Stock) []Requirement {
	var out []Requirement
	for _, req := range r.Requires {
		if req.Quantity <= 0 || !req.Ingredient.Valid() {
			continue
		}
		if have := remaining[req.Ingredient]; have < req.Quantity {
			out = append(out, Requirement{Ingredient: req.Ingredient, Quantity: req.Quantity - have})
		}
	}
	return out
}
