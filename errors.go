package main

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownIngredient = errors.New("unknown ingredient")
	ErrEmptyRecipe       = errors.New("recipe has no requirements")
	ErrDuplicateRecipe   = errors.New("duplicate recipe")
	ErrInvalidTable      = errors.New("invalid recipe table")
	ErrInvalidStock      = errors.New("invalid stock")
)

func wrapTableErr(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}

var (
	errMalformedBody  = fmt.Errorf("%w: malformed JSON body", ErrInvalidStock)
	errStockNotObject = fmt.Errorf("%w: stock must be a JSON object", ErrInvalidStock)
)
