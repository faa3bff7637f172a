package main

// Indices of the built-in dishes in DefaultRecipeTable.
const (
	DishRoastTurkey = iota // ローストターキー
	DishCornBread          // とうもろこしパン
	DishPumpkinPie         // カボチャパイ
	DishGreenBeanBake      // サヤインゲンの焼き物
	DishMashedPotato       // マッシュポテト
	DishCranberryJam       // クランベリージャム

	NumDishes
)

var thanksgivingRecipes = RecipeTable{
	DishRoastTurkey: {Name: "ローストターキー", Requires: []Requirement{
		{IngSecretSeasoning, 1}, {IngButter, 1}, {IngTurkey, 2},
	}},
	DishCornBread: {Name: "とうもろこしパン", Requires: []Requirement{
		{IngFlour, 1}, {IngEgg, 1}, {IngCorn, 2},
	}},
	DishPumpkinPie: {Name: "カボチャパイ", Requires: []Requirement{
		{IngPumpkin, 2}, {IngMilk, 1}, {IngFlour, 1},
	}},
	DishGreenBeanBake: {Name: "サヤインゲンの焼き物", Requires: []Requirement{
		{IngWater, 1}, {IngButter, 1}, {IngGreenBean, 2},
	}},
	DishMashedPotato: {Name: "マッシュポテト", Requires: []Requirement{
		{IngMilk, 1}, {IngEgg, 1}, {IngPotato, 2},
	}},
	DishCranberryJam: {Name: "クランベリージャム", Requires: []Requirement{
		{IngWater, 1}, {IngSecretSeasoning, 1}, {IngCranberry, 2},
	}},
}

// DefaultRecipeTable returns a fresh copy of the Thanksgiving event table.
func DefaultRecipeTable() RecipeTable {
	return thanksgivingRecipes.Clone()
}
