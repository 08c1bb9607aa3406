package render

import (
	"fmt"
)

const (
	// maxIngredientTags is a display budget, not data loss: the card shows at
	// most this many ingredient tags and silently truncates the rest.
	maxIngredientTags = 6

	// placeholderImage keys the fallback image by card position so repeated
	// renders of the same list stay visually stable.
	placeholderImage = "https://source.unsplash.com/collection/1199681/400x300?sig=%d"

	// Toggle labels. Exactly one is active per card at any time.
	LabelShowSteps = "Show steps"
	LabelHideSteps = "Hide steps"
)

// Card is the deterministic view model built from one untrusted recipe.
// Text fields are raw here; escaping happens at the markup boundary.
type Card struct {
	Index       int
	Title       string
	Description string
	Image       string
	Ingredients []string
	Steps       []string
	PrepLabel   string
	CookLabel   string

	expanded bool
}

// NewCard maps a recipe into a card, applying every fallback the display
// contract requires.
func NewCard(index int, r Recipe) *Card {
	card := &Card{
		Index:       index,
		Title:       r.Title,
		Description: r.Description,
		Image:       r.Image,
		Steps:       r.Steps,
		PrepLabel:   minutesLabel(r.PrepMinutes),
		CookLabel:   minutesLabel(r.CookMinutes),
	}

	if card.Title == "" {
		card.Title = "Untitled"
	}
	if card.Image == "" {
		card.Image = fmt.Sprintf(placeholderImage, index)
	}

	ingredients := r.Ingredients
	if len(ingredients) > maxIngredientTags {
		ingredients = ingredients[:maxIngredientTags]
	}
	card.Ingredients = ingredients

	return card
}

// Expanded reports whether the step list is open.
func (c *Card) Expanded() bool {
	return c.expanded
}

// Toggle flips the step list open or closed.
func (c *Card) Toggle() {
	c.expanded = !c.expanded
}

// ToggleLabel returns the active toggle label for the current state.
func (c *Card) ToggleLabel() string {
	if c.expanded {
		return LabelHideSteps
	}
	return LabelShowSteps
}

// TimeSummary renders the prep/cook line, with "-" standing in for missing values.
func (c *Card) TimeSummary() string {
	return fmt.Sprintf("Prep: %s min • Cook: %s min", c.PrepLabel, c.CookLabel)
}

func minutesLabel(minutes *int) string {
	if minutes == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *minutes)
}
