package generate

import (
	"strings"

	"fridgechef/internal/pkg/common"
)

// Filters are the dietary switches sent with a generation request.
type Filters struct {
	Vegetarian bool `json:"vegetarian"`
	Vegan      bool `json:"vegan"`
	GlutenFree bool `json:"gluten_free"`
	DairyFree  bool `json:"dairy_free"`
}

// Request is one generation request. Constructed once per submit and
// immutable afterwards.
type Request struct {
	Ingredients string  `json:"ingredients"`
	Notes       string  `json:"notes"`
	Filters     Filters `json:"filters"`
	Limit       int     `json:"limit"`
}

// NewRequest validates and builds a Request. Empty-after-trim ingredients are
// rejected locally; no network call may be made for them.
func NewRequest(ingredients, notes string, filters Filters, limit int) (Request, error) {
	ingredients = strings.TrimSpace(ingredients)
	if ingredients == "" {
		return Request{}, common.NewValidationError("Please enter ingredients")
	}

	return Request{
		Ingredients: ingredients,
		Notes:       strings.TrimSpace(notes),
		Filters:     filters,
		Limit:       limit,
	}, nil
}
