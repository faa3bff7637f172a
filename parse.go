package main

import "time"

// CalcResult holds the allocation and timing for a single compute run.
type CalcResult struct {
	Result *Result
	TimeUs int64
}

// Input pairs a stock snapshot with the recipe table it is allocated against.
type Input struct {
	Stock   Stock
	Recipes RecipeTable
}

// FindRecipe returns the recipe with the given name, or nil if not found.
func FindRecipe(table RecipeTable, name string) *Recipe {
	for i := range table {
		if table[i].Name == name {
			return &table[i]
		}
	}
	return nil
}

// Calculate runs the allocator once over the input.
func (in *Input) Calculate() CalcResult {
	start := time.Now()
	res := Allocate(in.Stock, in.Recipes)
	return CalcResult{Result: res, TimeUs: time.Since(start).Microseconds()}
}
