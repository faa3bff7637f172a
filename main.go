//go:build !lambda

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
)

func runServer(cfg Config, table RecipeTable) error {
	fmt.Fprintf(os.Stderr, "Serving %d recipes on %s\n", len(table), cfg.Addr)
	return NewRouter(table).Run(cfg.Addr)
}

func runOnce(in *Input, jsonOut bool) {
	r := in.Calculate()
	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(computeResponse{ResultView: NewResultView(r.Result), TimeUs: r.TimeUs})
		return
	}
	fmt.Print(FormatResult(r.Result))
}

const usage = `Usage: recipe-calc [flags] [name=qty ...]

Positional arguments:
  name=qty   Stock for one ingredient, by in-game name or alias
             (pumpkin, milk, flour, egg, corn, water, seasoning,
             butter, turkey, greenbean, potato, cranberry)

Environment:
  RECIPE_CALC_ADDR, RECIPE_CALC_RECIPES, RECIPE_CALC_VERBOSE
  (also read from .env unless APP_ENV=production)

Flags:
`

func main() {
	cfg := LoadConfig()

	jsonOut := flag.Bool("json", false, "Output results as JSON")
	verbose := flag.Bool("verbose", cfg.Verbose, "Print allocation details to stderr")
	stockPath := flag.String("stock", "", "Path to stock JSON (name -> qty); positional pairs override it")
	recipesPath := flag.String("recipes", cfg.RecipesPath, "Path to a custom recipe table JSON")
	serve := flag.Bool("serve", false, "Run the HTTP API instead of a single calculation")
	addr := flag.String("addr", cfg.Addr, "Listen address for -serve")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg.Verbose = *verbose
	cfg.RecipesPath = *recipesPath
	cfg.Addr = *addr
	Verbose = cfg.Verbose

	table, err := cfg.RecipeTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if Verbose {
		fmt.Fprintf(os.Stderr, "Loaded %d recipes\n", len(table))
	}

	if *serve {
		if err := runServer(cfg, table); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var stock Stock
	if *stockPath != "" {
		stock, err = LoadStock(*stockPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
	if flag.NArg() > 0 {
		if err := ApplyStockArgs(&stock, flag.Args()); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			flag.Usage()
			os.Exit(1)
		}
	}

	if Verbose {
		fmt.Fprintf(os.Stderr, "Stock: %d items\n", stock.Total())
	}
	runOnce(&Input{Stock: stock, Recipes: table}, *jsonOut)
}
