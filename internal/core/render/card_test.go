package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestNewCardAppliesFallbacks(t *testing.T) {
	card := NewCard(2, Recipe{})

	assert.Equal(t, "Untitled", card.Title)
	assert.Equal(t, "https://source.unsplash.com/collection/1199681/400x300?sig=2", card.Image)
	assert.Equal(t, "-", card.PrepLabel)
	assert.Equal(t, "-", card.CookLabel)
	assert.Equal(t, "Prep: - min • Cook: - min", card.TimeSummary())
}

func TestNewCardKeepsProvidedFields(t *testing.T) {
	card := NewCard(0, Recipe{
		Title:       "Frittata",
		Image:       "https://img.example/f.jpg",
		PrepMinutes: intPtr(5),
		CookMinutes: intPtr(0),
	})

	assert.Equal(t, "Frittata", card.Title)
	assert.Equal(t, "https://img.example/f.jpg", card.Image)
	assert.Equal(t, "Prep: 5 min • Cook: 0 min", card.TimeSummary())
}

func TestNewCardCapsIngredientTags(t *testing.T) {
	card := NewCard(0, Recipe{
		Ingredients: []string{"a", "b", "c", "d", "e", "f", "g", "h"},
	})
	require.Len(t, card.Ingredients, 6)
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, card.Ingredients)

	short := NewCard(0, Recipe{Ingredients: []string{"a", "b"}})
	assert.Len(t, short.Ingredients, 2)
}

func TestCardToggleFlipsLabel(t *testing.T) {
	card := NewCard(0, Recipe{Title: "Soup"})

	assert.False(t, card.Expanded())
	assert.Equal(t, LabelShowSteps, card.ToggleLabel())

	card.Toggle()
	assert.True(t, card.Expanded())
	assert.Equal(t, LabelHideSteps, card.ToggleLabel())

	card.Toggle()
	assert.False(t, card.Expanded())
	assert.Equal(t, LabelShowSteps, card.ToggleLabel())
}

func TestPlaceholderImageIsPositionStable(t *testing.T) {
	first := NewCard(4, Recipe{})
	second := NewCard(4, Recipe{})
	other := NewCard(5, Recipe{})

	assert.Equal(t, first.Image, second.Image)
	assert.NotEqual(t, first.Image, other.Image)
}
