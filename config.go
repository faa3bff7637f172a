package main

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds runtime settings shared by the CLI, the local server and the
// Lambda entry point.
type Config struct {
	// Addr is the listen address for -serve.
	Addr string
	// RecipesPath points at a custom recipe table; empty uses the built-in one.
	RecipesPath string
	// Verbose prints allocation progress to stderr.
	Verbose bool
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Addr: ":8080",
	}
}

// LoadConfig layers a .env file (outside production) and the environment on
// top of DefaultConfig. Flags are applied afterwards by the caller.
func LoadConfig() Config {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg := DefaultConfig()
	if v := strings.TrimSpace(os.Getenv("RECIPE_CALC_ADDR")); v != "" {
		cfg.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv("RECIPE_CALC_RECIPES")); v != "" {
		cfg.RecipesPath = v
	}
	switch strings.ToLower(strings.TrimSpace(os.Getenv("RECIPE_CALC_VERBOSE"))) {
	case "1", "true", "yes", "on":
		cfg.Verbose = true
	}
	return cfg
}

// RecipeTable loads the configured table, falling back to the built-in one.
func (c Config) RecipeTable() (RecipeTable, error) {
	if c.RecipesPath == "" {
		return DefaultRecipeTable(), nil
	}
	return LoadRecipeTable(c.RecipesPath)
}

// Verbose controls whether allocation and parsing details are printed to stderr.
var Verbose bool
