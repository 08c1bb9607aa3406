package devserver

import (
	"fmt"
	"strings"
)

// Recipe is the wire shape the generate endpoint emits.
type Recipe struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	PrepMinutes int      `json:"prep_minutes"`
	CookMinutes int      `json:"cook_minutes"`
}

var recipeShapes = []struct {
	title string
	steps []string
	prep  int
	cook  int
}{
	{
		title: "%s Skillet",
		steps: []string{
			"Warm a splash of oil in a heavy skillet over medium heat.",
			"Add the firm ingredients first and soften for five minutes.",
			"Fold in everything else, season, and cook until fragrant.",
			"Serve hot straight from the pan.",
		},
		prep: 10,
		cook: 15,
	},
	{
		title: "Roasted %s Medley",
		steps: []string{
			"Heat the oven to 200°C and line a tray.",
			"Toss everything with oil, salt, and pepper.",
			"Roast until the edges caramelize, turning once.",
		},
		prep: 15,
		cook: 30,
	},
	{
		title: "%s Soup",
		steps: []string{
			"Sweat an onion in butter until translucent.",
			"Add the ingredients and cover with stock.",
			"Simmer for twenty minutes, then blend to taste.",
			"Adjust seasoning and finish with fresh herbs.",
		},
		prep: 10,
		cook: 25,
	},
	{
		title: "Quick %s Stir-Fry",
		steps: []string{
			"Slice everything thin so it cooks in minutes.",
			"Get a wok ripping hot and add oil.",
			"Stir-fry in batches, then combine with the sauce.",
		},
		prep: 12,
		cook: 8,
	},
	{
		title: "%s Grain Bowl",
		steps: []string{
			"Cook a pot of grains while you prep the toppings.",
			"Arrange the ingredients over the grains.",
			"Drizzle with dressing and serve.",
		},
		prep: 20,
		cook: 20,
	},
	{
		title: "Baked %s Gratin",
		steps: []string{
			"Layer the ingredients in a buttered dish.",
			"Pour over cream and top generously.",
			"Bake until golden and bubbling.",
		},
		prep: 15,
		cook: 35,
	},
}

// cookRecipes produces a deterministic canned recipe list from the request.
// The same ingredients always yield the same suggestions, which makes the
// client's render path easy to eyeball during development.
func cookRecipes(ingredients, notes string, filters map[string]bool, limit int) []Recipe {
	if limit <= 0 {
		limit = 3
	}
	if limit > len(recipeShapes) {
		limit = len(recipeShapes)
	}

	parts := splitIngredients(ingredients)
	headline := headlineFor(parts)

	var tags []string
	for _, name := range []string{"vegetarian", "vegan", "gluten_free", "dairy_free"} {
		if filters[name] {
			tags = append(tags, strings.ReplaceAll(name, "_", "-"))
		}
	}

	recipes := make([]Recipe, 0, limit)
	for i := 0; i < limit; i++ {
		shape := recipeShapes[i]

		desc := fmt.Sprintf("A simple dish built around %s.", strings.Join(parts, ", "))
		if len(tags) > 0 {
			desc += fmt.Sprintf(" Suits a %s diet.", strings.Join(tags, ", "))
		}
		if notes != "" {
			desc += fmt.Sprintf(" Request notes: %s.", notes)
		}

		recipes = append(recipes, Recipe{
			Title:       fmt.Sprintf(shape.title, headline),
			Description: desc,
			Ingredients: parts,
			Steps:       shape.steps,
			PrepMinutes: shape.prep,
			CookMinutes: shape.cook,
		})
	}
	return recipes
}

func splitIngredients(ingredients string) []string {
	var parts []string
	for _, p := range strings.Split(ingredients, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

func headlineFor(parts []string) string {
	if len(parts) == 0 {
		return "Pantry"
	}
	head := parts[0]
	if len(head) > 0 {
		head = strings.ToUpper(head[:1]) + head[1:]
	}
	if len(parts) > 1 {
		second := parts[1]
		return head + " & " + strings.ToUpper(second[:1]) + second[1:]
	}
	return head
}
