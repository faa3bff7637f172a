package main

type Ingredient int

const (
	IngPumpkin         Ingredient = iota // かぼちゃ
	IngMilk                              // ミルク
	IngFlour                             // 小麦粉
	IngEgg                               // 卵
	IngCorn                              // とうもろこし
	IngWater                             // 水
	IngSecretSeasoning                   // 秘伝調味料
	IngButter                            // バター
	IngTurkey                            // ターキー
	IngGreenBean                         // サヤインゲン
	IngPotato                            // ジャガイモ
	IngCranberry                         // クランベリー

	NumIngredients
)

// IngNone marks "no ingredient", e.g. the limiting ingredient of a recipe
// that has no requirements.
const IngNone Ingredient = -1

var ingredientNames = [NumIngredients]string{
	IngPumpkin:         "かぼちゃ",
	IngMilk:            "ミルク",
	IngFlour:           "小麦粉",
	IngEgg:             "卵",
	IngCorn:            "とうもろこし",
	IngWater:           "水",
	IngSecretSeasoning: "秘伝調味料",
	IngButter:          "バター",
	IngTurkey:          "ターキー",
	IngGreenBean:       "サヤインゲン",
	IngPotato:          "ジャガイモ",
	IngCranberry:       "クランベリー",
}

func (i Ingredient) Valid() bool {
	return i >= 0 && i < NumIngredients
}

// String returns the in-game (Japanese) name, or "" for IngNone.
func (i Ingredient) String() string {
	if !i.Valid() {
		return ""
	}
	return ingredientNames[i]
}

// parseIngredient accepts the in-game name or a lowercase ASCII alias so the
// CLI stays usable without a Japanese input method.
func parseIngredient(s string) Ingredient {
	switch s {
	case "かぼちゃ", "pumpkin":
		return IngPumpkin
	case "ミルク", "milk":
		return IngMilk
	case "小麦粉", "flour":
		return IngFlour
	case "卵", "egg":
		return IngEgg
	case "とうもろこし", "corn":
		return IngCorn
	case "水", "water":
		return IngWater
	case "秘伝調味料", "seasoning":
		return IngSecretSeasoning
	case "バター", "butter":
		return IngButter
	case "ターキー", "turkey":
		return IngTurkey
	case "サヤインゲン", "greenbean":
		return IngGreenBean
	case "ジャガイモ", "potato":
		return IngPotato
	case "クランベリー", "cranberry":
		return IngCranberry
	}
	return IngNone
}

// Stock is the on-hand quantity per ingredient, indexed by Ingredient.
type Stock [NumIngredients]int

// normalized returns a copy with negative quantities clamped to zero.
func (s Stock) normalized() Stock {
	for i := range s {
		if s[i] < 0 {
			s[i] = 0
		}
	}
	return s
}

func (s Stock) Total() int {
	n := 0
	for _, q := range s {
		n += q
	}
	return n
}

// Requirement is a quantity of one ingredient. In a Recipe it is the amount
// consumed per unit; in a DishResult it is a shortfall.
type Requirement struct {
	Ingredient Ingredient
	Quantity   int
}

type Recipe struct {
	Name     string
	Requires []Requirement // declaration order; decides limiting-ingredient ties
}

// RecipeTable lists recipes in declaration order. Allocation walks it front to
// back, so earlier recipes win any shared ingredient.
type RecipeTable []Recipe

// Clone returns a deep copy so callers can never mutate a shared table.
func (t RecipeTable) Clone() RecipeTable {
	out := make(RecipeTable, len(t))
	for i := range t {
		out[i] = Recipe{
			Name:     t[i].Name,
			Requires: append([]Requirement(nil), t[i].Requires...),
		}
	}
	return out
}

// Validate reports the first structural problem in the table: empty or
// duplicate recipe names, recipes without requirements, unknown ingredients,
// non-positive quantities, or an ingredient listed twice in one recipe.
func (t RecipeTable) Validate() error {
	if len(t) == 0 {
		return ErrInvalidTable
	}
	seen := make(map[string]bool, len(t))
	for i := range t {
		r := &t[i]
		if r.Name == "" {
			return wrapTableErr(ErrInvalidTable, "recipe %d has no name", i)
		}
		if seen[r.Name] {
			return wrapTableErr(ErrDuplicateRecipe, "%s", r.Name)
		}
		seen[r.Name] = true
		if len(r.Requires) == 0 {
			return wrapTableErr(ErrEmptyRecipe, "%s", r.Name)
		}
		var used [NumIngredients]bool
		for _, req := range r.Requires {
			if !req.Ingredient.Valid() {
				return wrapTableErr(ErrUnknownIngredient, "%s: ingredient %d", r.Name, int(req.Ingredient))
			}
			if req.Quantity <= 0 {
				return wrapTableErr(ErrInvalidTable, "%s: %s quantity %d must be positive", r.Name, req.Ingredient, req.Quantity)
			}
			if used[req.Ingredient] {
				return wrapTableErr(ErrInvalidTable, "%s: %s listed twice", r.Name, req.Ingredient)
			}
			used[req.Ingredient] = true
		}
	}
	return nil
}
